package transform

import (
	"strings"

	"github.com/jsphweid/motif/lily"
	"github.com/jsphweid/motif/point"
	"github.com/jsphweid/motif/theory"
)

// Lilypond writes note text into point.Lilypond unless it is already set.
// Pitched points need point.ScalePitch (octave defaults to 4); points
// without a pitch render as an x-note on c' so rhythms can be engraved.
func Lilypond() point.Func {
	return func(p point.Point) point.Point {
		if p.Has(point.Lilypond) {
			return p
		}
		dur, _ := lily.FormatDuration(p.IntOr(point.Duration, 0))

		pitch, ok := p.Int(point.ScalePitch)
		if !ok {
			if dur == "" {
				p[point.Lilypond] = ""
			} else {
				p[point.Lilypond] = `\xNote c'` + dur
			}
			return p
		}

		var octave string
		switch o := p.IntOr(point.Octave, 4); {
		case o > 4:
			octave = strings.Repeat("'", o-4)
		case o < 4:
			octave = strings.Repeat(",", 4-o)
		}

		var accidental string
		switch m := theory.Modifiers(pitch); {
		case m > 0:
			accidental = strings.Repeat("is", m)
		case m < 0:
			accidental = strings.Repeat("es", -m)
		}

		p[point.Lilypond] = strings.ToLower(theory.Letter(pitch)) + accidental + octave + dur
		return p
	}
}
