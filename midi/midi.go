// Package midi converts offset sequences to and from Standard MIDI Files.
// One tick of the file is one 64th note (16 ticks per quarter).
package midi

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/motif/constants"
	"github.com/jsphweid/motif/point"
	"github.com/jsphweid/motif/sequence"
)

// Song is a multi-track passage. Track i plays on channel i%16 with
// Instruments[i] as its program (0 when missing).
type Song struct {
	Title       string
	Tempo       float64
	Tracks      []*sequence.OSequence
	Instruments []uint8
}

func ReadFile(path string) (*Song, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading midi file")
	}
	return Read(bytes.NewReader(dat))
}

// Read decodes an SMF. Note on/off pairs become points carrying offset,
// pitch, duration and velocity, rescaled to 64th-note ticks. Tracks with no
// notes are dropped.
func Read(r io.Reader) (song *Song, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if rec := recover(); rec != nil {
			e = errors.Errorf("parsing midi file: %v", rec)
		}
	}()

	s, err := smf.ReadFrom(r)
	if err != nil {
		return nil, errors.Wrap(err, "parsing midi file")
	}
	mt, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return nil, errors.New("only metric time formats are supported")
	}
	resolution := int64(mt.Resolution())
	if resolution == 0 {
		return nil, errors.New("midi file has zero resolution")
	}
	scale := func(ticks int64) int {
		return int(ticks * constants.TicksPerQuarter / resolution)
	}

	song = &Song{Tempo: constants.DefaultTempo}
	for _, track := range s.Tracks {
		type held struct {
			offset   int64
			velocity uint8
		}
		pressed := make(map[[2]uint8][]held)
		var points []point.Point
		var absTicks int64

		for _, ev := range track {
			absTicks += int64(ev.Delta)
			var ch, key, vel uint8
			var bpm float64
			var text string
			msg := gomidi.Message(ev.Message)
			switch {
			case msg.GetNoteStart(&ch, &key, &vel):
				k := [2]uint8{ch, key}
				pressed[k] = append(pressed[k], held{offset: absTicks, velocity: vel})
			case msg.GetNoteEnd(&ch, &key):
				k := [2]uint8{ch, key}
				queue := pressed[k]
				if len(queue) == 0 {
					continue
				}
				on := queue[0]
				pressed[k] = queue[1:]
				offset := scale(on.offset)
				points = append(points, point.Point{
					point.Offset:   offset,
					point.Pitch:    int(key),
					point.Duration: scale(absTicks) - offset,
					point.Velocity: int(on.velocity),
				})
			case ev.Message.GetMetaTempo(&bpm):
				song.Tempo = bpm
			case ev.Message.GetMetaTrackName(&text):
				if song.Title == "" {
					song.Title = text
				}
			}
		}
		if len(points) > 0 {
			song.Tracks = append(song.Tracks, sequence.NewOSequence(points...).SortedByOffset())
		}
	}
	return song, nil
}
