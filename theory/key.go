package theory

import "github.com/pkg/errors"

// Key maps 1-based scale degrees to line-of-fifths values.
type Key struct {
	Tonic string
	Notes []int
}

func NewKey(tonic string, scale Scale) (Key, error) {
	v, err := Value(tonic)
	if err != nil {
		return Key{}, errors.Wrap(err, "key tonic")
	}
	return Key{Tonic: tonic, Notes: scale(v)}, nil
}

// DegreeToPitch wraps degrees outside 1..7 around the scale.
func (k Key) DegreeToPitch(degree int) int {
	return k.Notes[mod(degree-1, len(k.Notes))]
}

// DegreeToPitchAndOctave also returns how many octaves degree lies above
// (or below) the first seven.
func (k Key) DegreeToPitchAndOctave(degree int) (pitch, octave int) {
	n := len(k.Notes)
	return k.Notes[mod(degree-1, n)], floorDiv(degree-1, n)
}
