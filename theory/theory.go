// Package theory works on the line of fifths with D at the origin:
//
//	... Bb  F   C   G   D   A   E   B   F#  C# ...
//	... -4  -3  -2  -1  0   +1  +2  +3  +4  +5 ...
//
// Moving 7 steps right adds a sharp, 7 steps left adds a flat.
package theory

import (
	"strings"

	"github.com/pkg/errors"
)

func mod(a, n int) int {
	return ((a % n) + n) % n
}

func floorDiv(a, n int) int {
	return (a - mod(a, n)) / n
}

func Natural(v int) bool     { return v > -4 && v < 4 }
func SingleSharp(v int) bool { return v > 3 && v < 11 }
func SingleFlat(v int) bool  { return v < -3 && v > -11 }
func DoubleSharp(v int) bool { return v > 10 && v < 18 }
func DoubleFlat(v int) bool  { return v < -10 && v > -18 }

// Modifiers counts sharps (positive) or flats (negative).
func Modifiers(v int) int {
	return floorDiv(v+3, 7)
}

// Letter returns the upper case note letter.
func Letter(v int) string {
	return string("DAEBFCG"[mod(v, 7)])
}

// Name spells v as a letter followed by #, x... or b...
func Name(v int) string {
	m := Modifiers(v)
	switch {
	case m == 1:
		return Letter(v) + "#"
	case m > 1:
		return Letter(v) + strings.Repeat("x", m-1)
	case m < 0:
		return Letter(v) + strings.Repeat("b", -m)
	}
	return Letter(v)
}

// Value parses a name written the way Name writes it.
func Value(name string) (int, error) {
	if name == "" {
		return 0, errors.New("empty note name")
	}
	base := strings.IndexByte("FCGDAEB", name[0]) - 3
	if base == -4 {
		return 0, errors.Errorf("unknown note letter %q", name[:1])
	}

	var m int
	switch suffix := name[1:]; {
	case suffix == "":
	case suffix == "#":
		m = 1
	case strings.Trim(suffix, "x") == "":
		m = len(suffix) + 1
	case strings.Trim(suffix, "b") == "":
		m = -len(suffix)
	default:
		return 0, errors.Errorf("bad modifier %q in %q", suffix, name)
	}
	return base + 7*m, nil
}

func ToneAbove(v int) int     { return v + 2 }
func ToneBelow(v int) int     { return v - 2 }
func SemitoneAbove(v int) int { return v - 5 }
func SemitoneBelow(v int) int { return v + 5 }

// Augment raises v a semitone keeping its letter.
func Augment(v int) int { return v + 7 }

// Diminish lowers v a semitone keeping its letter.
func Diminish(v int) int { return v - 7 }

// Enharmonic reports whether two values sound the same.
func Enharmonic(a, b int) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d%12 == 0
}

// Scale builds the seven notes of a scale from its tonic.
type Scale func(tonic int) []int

func offsets(tonic int, steps ...int) []int {
	res := make([]int, len(steps))
	for i, s := range steps {
		res[i] = tonic + s
	}
	return res
}

func MajorScale(tonic int) []int {
	return offsets(tonic, 0, 2, 4, -1, 1, 3, 5)
}

func MinorScale(tonic int) []int {
	return offsets(tonic, 0, 2, -3, -1, 1, -4, -2)
}

// ScaleByName returns "major" or "minor".
func ScaleByName(name string) (Scale, bool) {
	switch strings.ToLower(name) {
	case "major":
		return MajorScale, true
	case "minor":
		return MinorScale, true
	}
	return nil, false
}
