package sequence

import (
	"sort"

	"github.com/jsphweid/motif/point"
)

// OSequence is an ordered list of points positioned by point.Offset and
// optionally sized by point.Duration, both in 64th-note ticks.
type OSequence struct {
	base
}

// Transform maps an offset sequence to a new one.
type Transform func(*OSequence) *OSequence

// NewOSequence appends each point in turn, so points without an offset are
// placed at the running next offset.
func NewOSequence(points ...point.Point) *OSequence {
	s := &OSequence{}
	for _, p := range points {
		s.Append(p)
	}
	return s
}

// Append stores a copy of p, giving it the current next offset if it has
// none. The caller's point is not modified.
func (s *OSequence) Append(p point.Point) {
	c := p.Clone()
	if !c.Has(point.Offset) {
		c[point.Offset] = s.NextOffset()
	}
	s.points = append(s.points, c)
}

// LastPoint returns a copy of the point with the greatest offset. Among
// equal offsets the later point wins. An empty sequence yields
// {offset: 0, duration: 0}.
func (s *OSequence) LastPoint() point.Point {
	if len(s.points) == 0 {
		return point.Point{point.Offset: 0, point.Duration: 0}
	}
	last := 0
	for i, p := range s.points {
		if offsetOf(p) >= offsetOf(s.points[last]) {
			last = i
		}
	}
	return s.points[last].Clone()
}

// NextOffset is where a following sequence would start: the last point's
// offset plus its duration (0 if it has none).
func (s *OSequence) NextOffset() int {
	p := s.LastPoint()
	return offsetOf(p) + p.IntOr(point.Duration, 0)
}

// Concat returns s followed by next, with next's offsets shifted by
// s.NextOffset(). Neither operand changes.
func (s *OSequence) Concat(next *OSequence) *OSequence {
	shift := s.NextOffset()
	res := &OSequence{base{points: s.clonePoints()}}
	for _, p := range next.points {
		c := p.Clone()
		c[point.Offset] = offsetOf(p) + shift
		res.points = append(res.points, c)
	}
	return res
}

// Repeat concatenates s to the empty sequence n times. n <= 0 yields an
// empty sequence.
func (s *OSequence) Repeat(n int) *OSequence {
	res := &OSequence{}
	for i := 0; i < n; i++ {
		res = res.Concat(s)
	}
	return res
}

// Merge combines the points of s and other in ascending offset order. The
// sort is stable, so at equal offsets s's points come first. Points
// without an offset sort as 0.
func (s *OSequence) Merge(other *OSequence) *OSequence {
	points := append(s.clonePoints(), other.clonePoints()...)
	sort.SliceStable(points, func(i, j int) bool {
		return offsetOf(points[i]) < offsetOf(points[j])
	})
	return &OSequence{base{points: points}}
}

// MapPoints applies f to a copy of every point.
func (s *OSequence) MapPoints(f point.Func) *OSequence {
	return &OSequence{base{points: s.mapped(f)}}
}

// Transform applies f to s.
func (s *OSequence) Transform(f Transform) *OSequence {
	return f(s)
}

// Pipe applies each transform in order.
func (s *OSequence) Pipe(fs ...Transform) *OSequence {
	res := s
	for _, f := range fs {
		res = f(res)
	}
	return res
}

// Map lifts a point function into a Transform.
func Map(f point.Func) Transform {
	return func(s *OSequence) *OSequence {
		return s.MapPoints(f)
	}
}

// Clone returns a deep copy of s.
func (s *OSequence) Clone() *OSequence {
	return &OSequence{base{points: s.clonePoints()}}
}

// Equal reports whether both sequences hold equal points in the same order.
func (s *OSequence) Equal(other *OSequence) bool {
	return equalPoints(s.points, other.points)
}

// SortedByOffset returns a copy stably sorted by offset.
func (s *OSequence) SortedByOffset() *OSequence {
	return s.Merge(&OSequence{})
}

func offsetOf(p point.Point) int {
	return p.IntOr(point.Offset, 0)
}
