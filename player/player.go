// Package player plays songs through an external program or a MIDI out
// port.
package player

import (
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/pkg/errors"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"

	"github.com/jsphweid/motif/constants"
	"github.com/jsphweid/motif/midi"
	"github.com/jsphweid/motif/point"
	"github.com/jsphweid/motif/util"
)

var ErrNoPlayer = errors.New("no MIDI player configured; set MOTIF_PLAYER or MOTIF_MIDI_PORT")

// Play uses the configured port when MOTIF_MIDI_PORT is set and the
// external player otherwise.
func Play(ctx context.Context, song midi.Song) error {
	if port := constants.GetMidiPort(); port != "" {
		return PlayPort(ctx, song, port)
	}
	return PlayExternal(ctx, song, constants.GetPlayer())
}

// PlayExternal writes song to a temporary file and runs program on it,
// waiting for it to exit.
func PlayExternal(ctx context.Context, song midi.Song, program string) error {
	if program == "" {
		return ErrNoPlayer
	}
	f, err := os.CreateTemp("", "motif-*.mid")
	if err != nil {
		return errors.Wrap(err, "could not create temp file")
	}
	defer os.Remove(f.Name())

	err = midi.Write(f, song)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	args := strings.Fields(program)
	cmd := exec.CommandContext(ctx, args[0], append(args[1:], f.Name())...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return errors.Wrapf(cmd.Run(), "running %v", program)
}

// FindOutPort returns the first out port whose name contains name.
func FindOutPort(name string) (drivers.Out, error) {
	for _, port := range gomidi.GetOutPorts() {
		if strings.Contains(port.String(), name) {
			return port, nil
		}
	}
	return nil, errors.Errorf("no MIDI out port matching %q", name)
}

// PlayPort sends song to the named out port in real time. Cancelling ctx
// silences every sounding note and returns ctx.Err().
func PlayPort(ctx context.Context, song midi.Song, portName string) error {
	port, err := FindOutPort(portName)
	if err != nil {
		return err
	}
	send, err := gomidi.SendTo(port)
	if err != nil {
		return errors.Wrap(err, "could not open out port")
	}
	return play(ctx, song, send)
}

type timedMessage struct {
	tick int
	msg  gomidi.Message
}

func schedule(song midi.Song) []timedMessage {
	var msgs []timedMessage
	for i, tr := range song.Tracks {
		ch := uint8(i % 16)
		var program uint8
		if i < len(song.Instruments) {
			program = song.Instruments[i]
		}
		msgs = append(msgs, timedMessage{tick: minTick(song), msg: gomidi.ProgramChange(ch, program)})
		for _, p := range tr.Points() {
			pitch, ok := p.Int(point.Pitch)
			d := p.IntOr(point.Duration, 0)
			if !ok || d <= 0 {
				continue
			}
			offset := p.IntOr(point.Offset, 0)
			key := uint8(clamp(pitch, 0, 127))
			vel := uint8(clamp(p.IntOr(point.Velocity, constants.DefaultVelocity), 1, 127))
			msgs = append(msgs,
				timedMessage{tick: offset, msg: gomidi.NoteOn(ch, key, vel)},
				timedMessage{tick: offset + d, msg: gomidi.NoteOff(ch, key)},
			)
		}
	}
	sortMessages(msgs)
	return msgs
}

func clamp(n, lo, hi int) int {
	return util.Min(util.Max(n, lo), hi)
}

func minTick(song midi.Song) int {
	first := 0
	for _, tr := range song.Tracks {
		for _, p := range tr.Points() {
			if o := p.IntOr(point.Offset, 0); o < first && p.Has(point.Pitch) {
				first = o
			}
		}
	}
	return first
}

func tickDuration(tempo float64) time.Duration {
	if tempo <= 0 {
		tempo = constants.DefaultTempo
	}
	return time.Duration(float64(time.Minute) / tempo / constants.TicksPerQuarter)
}

func play(ctx context.Context, song midi.Song, send func(gomidi.Message) error) error {
	msgs := schedule(song)
	if len(msgs) == 0 {
		return nil
	}
	tick := tickDuration(song.Tempo)
	start := time.Now()
	first := msgs[0].tick

	sounding := make(map[[2]uint8]bool)
	silence := func() {
		for k := range sounding {
			send(gomidi.NoteOff(k[0], k[1]))
		}
	}

	timer := time.NewTimer(0)
	defer timer.Stop()
	for _, m := range msgs {
		at := start.Add(time.Duration(m.tick-first) * tick)
		timer.Reset(time.Until(at))
		select {
		case <-ctx.Done():
			silence()
			return ctx.Err()
		case <-timer.C:
		}

		var ch, key, vel uint8
		switch {
		case m.msg.GetNoteStart(&ch, &key, &vel):
			sounding[[2]uint8{ch, key}] = true
		case m.msg.GetNoteEnd(&ch, &key):
			delete(sounding, [2]uint8{ch, key})
		}
		if err := send(m.msg); err != nil {
			silence()
			return errors.Wrap(err, "could not send midi message")
		}
	}
	return nil
}
