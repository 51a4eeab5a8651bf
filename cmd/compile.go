package cmd

import (
	"log"

	"github.com/pkg/errors"

	"github.com/jsphweid/motif/file"
	"github.com/jsphweid/motif/lily"
	"github.com/jsphweid/motif/midi"
	"github.com/jsphweid/motif/model"
	"github.com/jsphweid/motif/point"
	"github.com/jsphweid/motif/sequence"
)

func compileSource(source string, offset int) (*lily.Result, error) {
	res, err := lily.Compile(source, lily.Options{Offset: offset})
	if err != nil {
		return nil, err
	}
	for _, w := range res.Warnings {
		log.Printf("warning: %v", w)
	}
	return res, nil
}

func compileFile(path string, offset int) (*lily.Result, error) {
	source, err := file.ReadSource(path)
	if err != nil {
		return nil, err
	}
	res, err := compileSource(source, offset)
	return res, errors.Wrapf(err, "compiling %v", path)
}

// compileSong compiles each source into one track.
func compileSong(sources []string, title string, tempo int) (midi.Song, []string, error) {
	song := midi.Song{Title: title, Tempo: float64(tempo)}
	var warnings []string
	for i, src := range sources {
		res, err := compileSource(src, 0)
		if err != nil {
			return song, nil, errors.Wrapf(err, "track %d", i+1)
		}
		song.Tracks = append(song.Tracks, res.Sequence)
		warnings = append(warnings, warningStrings(res.Warnings)...)
	}
	return song, warnings, nil
}

func warningStrings(ws []lily.OctaveCheckWarning) []string {
	res := make([]string, 0, len(ws))
	for _, w := range ws {
		res = append(res, w.String())
	}
	return res
}

func toModelPoints(s *sequence.OSequence) []model.Point {
	res := make([]model.Point, 0, s.Len())
	for _, p := range s.Points() {
		mp := make(model.Point, len(p))
		for _, a := range p.Attributes() {
			mp[a.String()] = p[a]
		}
		res = append(res, mp)
	}
	return res
}

func noteCount(s *sequence.OSequence) int {
	var n int
	for _, p := range s.Points() {
		if p.Has(point.Pitch) {
			n++
		}
	}
	return n
}
