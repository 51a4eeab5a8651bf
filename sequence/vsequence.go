package sequence

import "github.com/jsphweid/motif/point"

// VSequence is a vertical sequence of points that sound together.
type VSequence struct {
	base
}

func NewVSequence(points ...point.Point) *VSequence {
	s := &VSequence{}
	for _, p := range points {
		s.Append(p)
	}
	return s
}

// Append stores a copy of p without touching its offset.
func (s *VSequence) Append(p point.Point) {
	s.points = append(s.points, p.Clone())
}

// Merge concatenates the two point lists. Nothing is sorted or shifted.
func (s *VSequence) Merge(other *VSequence) *VSequence {
	return &VSequence{base{points: append(s.clonePoints(), other.clonePoints()...)}}
}

func (s *VSequence) MapPoints(f point.Func) *VSequence {
	return &VSequence{base{points: s.mapped(f)}}
}

func (s *VSequence) Equal(other *VSequence) bool {
	return equalPoints(s.points, other.points)
}
