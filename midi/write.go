package midi

import (
	"io"
	"sort"

	"github.com/pkg/errors"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/motif/constants"
	"github.com/jsphweid/motif/point"
	"github.com/jsphweid/motif/sequence"
)

type noteEvent struct {
	tick      int
	isNoteOff bool
	pitch     uint8
	velocity  uint8
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func trackEvents(s *sequence.OSequence) []noteEvent {
	var events []noteEvent
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
		key := uint8(clamp(pitch, 0, 127))
		vel := uint8(clamp(p.IntOr(point.Velocity, constants.DefaultVelocity), 1, 127))
		events = append(events,
			noteEvent{tick: offset, pitch: key, velocity: vel},
			noteEvent{tick: offset + d, pitch: key, isNoteOff: true},
		)
	}
	// earlier ticks first, then note offs so repeated notes retrigger
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].tick != events[j].tick {
			return events[i].tick < events[j].tick
		}
		return events[i].isNoteOff && !events[j].isNoteOff
	})
	return events
}

// NewSMF builds a format 1 file: a conductor track with meter, key, tempo
// and title followed by one track per sequence. Events before tick 0
// (grace notes) shift the whole song so the earliest one starts at 0.
func NewSMF(song Song) (*smf.SMF, error) {
	title := song.Title
	if title == "" {
		title = "untitled"
	}
	tempo := song.Tempo
	if tempo <= 0 {
		tempo = constants.DefaultTempo
	}

	tracks := make([][]noteEvent, len(song.Tracks))
	shift := 0
	for i, s := range song.Tracks {
		tracks[i] = trackEvents(s)
		if len(tracks[i]) > 0 && -tracks[i][0].tick > shift {
			shift = -tracks[i][0].tick
		}
	}

	s := smf.NewSMF1()
	s.TimeFormat = smf.MetricTicks(constants.TicksPerQuarter)

	var conductor smf.Track
	conductor.Add(0, smf.MetaMeter(4, 4))
	conductor.Add(0, smf.MetaKey(0, true, 0, false))
	conductor.Add(0, smf.MetaTempo(tempo))
	conductor.Add(0, smf.MetaTrackSequenceName(title))
	conductor.Close(0)
	if err := s.Add(conductor); err != nil {
		return nil, errors.Wrap(err, "adding conductor track")
	}

	for i, events := range tracks {
		ch := uint8(i % 16)
		var program uint8
		if i < len(song.Instruments) {
			program = song.Instruments[i]
		}

		var tr smf.Track
		tr.Add(0, gomidi.ProgramChange(ch, program))
		prev := 0
		for _, ev := range events {
			tick := ev.tick + shift
			delta := uint32(tick - prev)
			if ev.isNoteOff {
				tr.Add(delta, gomidi.NoteOff(ch, ev.pitch))
			} else {
				tr.Add(delta, gomidi.NoteOn(ch, ev.pitch, ev.velocity))
			}
			prev = tick
		}
		end := song.Tracks[i].NextOffset() + shift
		if end < prev {
			end = prev
		}
		tr.Close(uint32(end - prev))
		if err := s.Add(tr); err != nil {
			return nil, errors.Wrapf(err, "adding track %d", i)
		}
	}
	return s, nil
}

func Write(w io.Writer, song Song) error {
	s, err := NewSMF(song)
	if err != nil {
		return err
	}
	_, err = s.WriteTo(w)
	return errors.Wrap(err, "writing midi")
}

func WriteFile(path string, song Song) error {
	s, err := NewSMF(song)
	if err != nil {
		return err
	}
	return errors.Wrapf(s.WriteFile(path), "writing %v", path)
}
