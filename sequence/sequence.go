// Package sequence holds the three point containers and their algebra.
//
// OSequence tracks offsets: concatenation shifts the right operand by the
// left operand's next offset and merge interleaves by offset. HSequence only
// knows list order and can be laid out into an OSequence from durations.
// VSequence holds coincident points; merging never reorders or shifts.
//
// Every operation returns a new sequence and never aliases caller-owned
// points: Append copies its argument, At and Points return copies. The one
// sanctioned exception is Ref, which hands out the stored point so it can be
// annotated in place (velocity, lilypond text, ...).
//
// Sequences are not safe for concurrent mutation. A fully built sequence may
// be shared for reading.
package sequence

import (
	"errors"

	"github.com/jsphweid/motif/point"
)

// ErrMissingDuration is returned when a layout needs a duration the point
// does not carry.
var ErrMissingDuration = errors.New("point has no duration")

// Sequence is the read side shared by all three kinds.
type Sequence interface {
	Len() int
	At(i int) point.Point
	Points() []point.Point
}

type base struct {
	points []point.Point
}

// Len returns the number of points.
func (b *base) Len() int {
	return len(b.points)
}

// At returns a copy of the i-th point.
func (b *base) At(i int) point.Point {
	return b.points[i].Clone()
}

// Ref returns the stored i-th point itself. Mutating it changes the
// sequence; this is meant for post-hoc annotation only.
func (b *base) Ref(i int) point.Point {
	return b.points[i]
}

// Points returns copies of all points in order.
func (b *base) Points() []point.Point {
	res := make([]point.Point, len(b.points))
	for i, p := range b.points {
		res[i] = p.Clone()
	}
	return res
}

func (b *base) clonePoints() []point.Point {
	return b.Points()
}

func (b *base) mapped(f point.Func) []point.Point {
	res := make([]point.Point, len(b.points))
	for i, p := range b.points {
		res[i] = f(p.Clone()).Clone()
	}
	return res
}

func equalPoints(a, b []point.Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
