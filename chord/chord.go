package chord

import (
	"fmt"
	"sort"

	"github.com/jsphweid/motif/model"
	"github.com/jsphweid/motif/point"
	"github.com/jsphweid/motif/sequence"
)

// New builds a chord of pitches that all share duration.
func New(duration int, pitches ...int) *sequence.VSequence {
	v := sequence.NewVSequence()
	for _, p := range pitches {
		v.Append(point.Point{point.Pitch: p, point.Duration: duration})
	}
	return v
}

// Key sorts pitches in place and joins them as "48-52-55".
func Key(pitches []int) string {
	sort.Ints(pitches)
	var res string
	for i, p := range pitches {
		res += fmt.Sprintf("%v", p)
		if i < len(pitches)-1 {
			res += "-"
		}
	}
	return res
}

type reducedEvent struct {
	offset    int
	isNoteOff bool
	pitch     int
}

func getChord(offset int, pressed map[int]int, formedByNoteOn bool) model.Chord {
	c := model.Chord{Offset: offset, FormedByNoteOn: formedByNoteOn}
	for pitch := range pressed {
		c.Pitches = append(c.Pitches, pitch)
	}
	sort.Ints(c.Pitches)
	return c
}

// Group sweeps the sequence and returns the set of sounding pitches at
// every offset where it changes. Points without a pitch or a positive
// duration are ignored. Silent stretches produce no chord.
func Group(s *sequence.OSequence) []model.Chord {
	var reducedEvents []reducedEvent
	for _, p := range s.Points() {
		pitch, ok := p.Int(point.Pitch)
		if !ok {
			continue
		}
		d := p.IntOr(point.Duration, 0)
		if d <= 0 {
			continue
		}
		offset := p.IntOr(point.Offset, 0)
		reducedEvents = append(reducedEvents,
			reducedEvent{offset: offset, pitch: pitch},
			reducedEvent{offset: offset + d, pitch: pitch, isNoteOff: true},
		)
	}

	// smaller offsets first, then note offs
	sort.SliceStable(reducedEvents, func(i, j int) bool {
		if reducedEvents[i].offset != reducedEvents[j].offset {
			return reducedEvents[i].offset < reducedEvents[j].offset
		}
		return reducedEvents[i].isNoteOff && !reducedEvents[j].isNoteOff
	})

	offsetToChord := make(map[int]model.Chord)
	// a pitch can be struck again before an earlier strike ends
	pressed := make(map[int]int)
	for _, evt := range reducedEvents {
		if evt.isNoteOff {
			pressed[evt.pitch]--
			if pressed[evt.pitch] <= 0 {
				delete(pressed, evt.pitch)
			}
		} else {
			pressed[evt.pitch]++
		}
		prev, seen := offsetToChord[evt.offset]
		formed := !evt.isNoteOff || (seen && prev.FormedByNoteOn)
		offsetToChord[evt.offset] = getChord(evt.offset, pressed, formed)
	}

	var chords []model.Chord
	for _, c := range offsetToChord {
		if len(c.Pitches) > 0 {
			chords = append(chords, c)
		}
	}
	sort.Slice(chords, func(i, j int) bool {
		return chords[i].Offset < chords[j].Offset
	})
	return chords
}
