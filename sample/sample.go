package sample

import (
	"github.com/jsphweid/motif/midi"
	"github.com/jsphweid/motif/point"
	"github.com/jsphweid/motif/sequence"
)

func firstNote(s *sequence.OSequence, offset int) (int, bool) {
	found := false
	var first int
	for _, p := range s.Points() {
		o := p.IntOr(point.Offset, 0)
		if o < offset || !p.Has(point.Pitch) {
			continue
		}
		if !found || o < first {
			first, found = o, true
		}
	}
	return first, found
}

func excerpt(s *sequence.OSequence, offset, maxNotes, base int) *sequence.OSequence {
	res := sequence.NewOSequence()
	for _, p := range s.SortedByOffset().Points() {
		if res.Len() >= maxNotes {
			break
		}
		o := p.IntOr(point.Offset, 0)
		if o < offset || !p.Has(point.Pitch) {
			continue
		}
		res.Append(p.With(point.Offset, o-base))
	}
	return res
}

// Create excerpts up to maxNotes notes starting at or after offset and
// moves them so the excerpt starts at 0. Points without a pitch are
// dropped.
func Create(s *sequence.OSequence, offset int, maxNotes int) *sequence.OSequence {
	base, ok := firstNote(s, offset)
	if !ok {
		return sequence.NewOSequence()
	}
	return excerpt(s, offset, maxNotes, base)
}

// Song excerpts every track from the same offset. Tracks share one rebase
// so they stay aligned.
func Song(song midi.Song, offset int, maxNotes int) midi.Song {
	res := song
	res.Tracks = nil

	base, found := 0, false
	for _, tr := range song.Tracks {
		if o, ok := firstNote(tr, offset); ok && (!found || o < base) {
			base, found = o, true
		}
	}
	if !found {
		return res
	}
	for _, tr := range song.Tracks {
		res.Tracks = append(res.Tracks, excerpt(tr, offset, maxNotes, base))
	}
	return res
}
