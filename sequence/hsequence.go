package sequence

import (
	"fmt"

	"github.com/jsphweid/motif/point"
)

// HSequence is a horizontal sequence: each point follows the previous one
// and list position is the only ordering.
type HSequence struct {
	base
}

func NewHSequence(points ...point.Point) *HSequence {
	s := &HSequence{}
	for _, p := range points {
		s.Append(p)
	}
	return s
}

// Append stores a copy of p.
func (s *HSequence) Append(p point.Point) {
	s.points = append(s.points, p.Clone())
}

func (s *HSequence) Concat(next *HSequence) *HSequence {
	return &HSequence{base{points: append(s.clonePoints(), next.clonePoints()...)}}
}

func (s *HSequence) Repeat(n int) *HSequence {
	res := &HSequence{}
	for i := 0; i < n; i++ {
		res = res.Concat(s)
	}
	return res
}

func (s *HSequence) MapPoints(f point.Func) *HSequence {
	return &HSequence{base{points: s.mapped(f)}}
}

func (s *HSequence) Pipe(fs ...func(*HSequence) *HSequence) *HSequence {
	res := s
	for _, f := range fs {
		res = f(res)
	}
	return res
}

func (s *HSequence) Equal(other *HSequence) bool {
	return equalPoints(s.points, other.points)
}

// ToOSequence lays the points out end to end: each is appended to a new
// OSequence and so lands at the running total of the durations before it.
// Every point must carry a duration.
func (s *HSequence) ToOSequence() (*OSequence, error) {
	res := &OSequence{}
	for i, p := range s.points {
		if !p.Has(point.Duration) {
			return nil, fmt.Errorf("point %d %v: %w", i, p, ErrMissingDuration)
		}
		res.Append(p)
	}
	return res, nil
}
