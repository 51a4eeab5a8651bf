// Package transform holds reusable point and sequence transforms.
//
// Point level transforms return a point.Func so they work on all three
// sequence kinds; Each lifts them for use with OSequence.Pipe.
package transform

import (
	"sort"

	"github.com/jsphweid/motif/point"
	"github.com/jsphweid/motif/sequence"
	"github.com/jsphweid/motif/theory"
)

// Each applies fs in order to every point.
func Each(fs ...point.Func) sequence.Transform {
	return sequence.Map(func(p point.Point) point.Point {
		for _, f := range fs {
			p = f(p)
		}
		return p
	})
}

// Add overwrites the given attributes on every point.
func Add(props point.Point) point.Func {
	return func(p point.Point) point.Point {
		for k, v := range props {
			p[k] = v
		}
		return p
	}
}

// Transpose shifts point.Pitch by semitones when present.
func Transpose(semitones int) point.Func {
	return func(p point.Point) point.Point {
		if n, ok := p.Int(point.Pitch); ok {
			p[point.Pitch] = n + semitones
		}
		return p
	}
}

// Stretch scales offsets and durations, truncating toward zero.
func Stretch(k float64) point.Func {
	return func(p point.Point) point.Point {
		if n, ok := p.Int(point.Offset); ok {
			p[point.Offset] = int(float64(n) * k)
		}
		if n, ok := p.Int(point.Duration); ok {
			p[point.Duration] = int(float64(n) * k)
		}
		return p
	}
}

// Invert mirrors point.Pitch around pivot.
func Invert(pivot int) point.Func {
	return func(p point.Point) point.Point {
		if n, ok := p.Int(point.Pitch); ok {
			p[point.Pitch] = pivot - (n - pivot)
		}
		return p
	}
}

// Reverse mirrors a sequence inside [0, NextOffset). A sequence that does
// not start at 0 keeps its leading silence as trailing silence, carried by
// an offset-only point.
func Reverse() sequence.Transform {
	return func(s *sequence.OSequence) *sequence.OSequence {
		last := s.NextOffset()
		points := s.Points()
		if len(points) > 0 && points[0].IntOr(point.Offset, 0) != 0 {
			points = append([]point.Point{{point.Offset: 0}}, points...)
		}

		res := make([]point.Point, 0, len(points))
		for _, p := range points {
			p[point.Offset] = last - p.IntOr(point.Offset, 0) - p.IntOr(point.Duration, 0)
			if len(p) == 1 && p.IntOr(point.Offset, -1) == 0 {
				continue
			}
			res = append(res, p)
		}
		sort.SliceStable(res, func(i, j int) bool {
			return res[i].IntOr(point.Offset, 0) < res[j].IntOr(point.Offset, 0)
		})
		return sequence.NewOSequence(res...)
	}
}

// Subseq keeps points with start <= offset < end.
func Subseq(start, end int) sequence.Transform {
	return func(s *sequence.OSequence) *sequence.OSequence {
		res := sequence.NewOSequence()
		for _, p := range s.Points() {
			if o := p.IntOr(point.Offset, 0); o >= start && o < end {
				res.Append(p)
			}
		}
		return res
	}
}

// DegreeInKey sets point.ScalePitch from point.Degree.
func DegreeInKey(key theory.Key) point.Func {
	return func(p point.Point) point.Point {
		if d, ok := p.Int(point.Degree); ok {
			p[point.ScalePitch] = key.DegreeToPitch(d)
		}
		return p
	}
}

// DegreeInKeyWithOctave is DegreeInKey that also sets point.Octave,
// counting degrees past 7 as octaves above baseOctave.
func DegreeInKeyWithOctave(key theory.Key, baseOctave int) point.Func {
	return func(p point.Point) point.Point {
		if d, ok := p.Int(point.Degree); ok {
			pitch, octave := key.DegreeToPitchAndOctave(d)
			p[point.ScalePitch] = pitch
			p[point.Octave] = octave + baseOctave
		}
		return p
	}
}

var letterSemitones = [7]int{2, 9, 4, 11, 5, 0, 7}

// MidiPitch derives point.Pitch from point.ScalePitch and point.Octave.
func MidiPitch() point.Func {
	return func(p point.Point) point.Point {
		pitch, ok := p.Int(point.ScalePitch)
		if !ok {
			return p
		}
		octave, ok := p.Int(point.Octave)
		if !ok {
			return p
		}
		p[point.Pitch] = letterSemitones[((pitch%7)+7)%7] + theory.Modifiers(pitch) + 12*octave
		return p
	}
}
