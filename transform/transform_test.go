package transform

import (
	"testing"

	"github.com/jsphweid/motif/point"
	"github.com/jsphweid/motif/sequence"
	"github.com/jsphweid/motif/theory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makePoint(offset int) point.Point {
	return point.Point{
		point.Offset:   16 + offset,
		point.Pitch:    50 + offset,
		point.Duration: 17 + offset,
	}
}

func makeSequence() *sequence.OSequence {
	return sequence.NewOSequence(makePoint(0), makePoint(3))
}

func degrees() *sequence.HSequence {
	h := sequence.NewHSequence()
	for _, d := range []int{1, 2, 3, 1} {
		h.Append(point.Point{point.Degree: d})
	}
	return h
}

func values(s sequence.Sequence, a point.Attribute) []any {
	var res []any
	for _, p := range s.Points() {
		res = append(res, p[a])
	}
	return res
}

func TestTranspose(t *testing.T) {
	s := makeSequence()
	transposed := s.Transform(Each(Transpose(12)))

	assert := assert.New(t)
	assert.Equal([]any{62, 65}, values(transposed, point.Pitch))
	assert.True(s.Pipe(Each(Transpose(5)), Each(Transpose(-5))).Equal(s))
	assert.Equal([]any{50, 53}, values(s, point.Pitch))
}

func TestTransposeSkipsUnpitched(t *testing.T) {
	s := sequence.NewOSequence(point.Point{point.Duration: 4})
	assert.False(t, s.Transform(Each(Transpose(3))).At(0).Has(point.Pitch))
}

func TestReverse(t *testing.T) {
	s := makeSequence()
	reversed := s.Transform(Reverse())

	assert := assert.New(t)
	assert.True(reversed.Equal(sequence.NewOSequence(
		point.Point{point.Pitch: 53, point.Offset: 0, point.Duration: 20},
		point.Point{point.Pitch: 50, point.Offset: 6, point.Duration: 17},
		point.Point{point.Offset: 39},
	)))
	assert.Equal(s.NextOffset(), reversed.NextOffset())
	assert.True(s.Pipe(Reverse(), Reverse()).Equal(s))
}

func TestReverseEmpty(t *testing.T) {
	assert.Equal(t, 0, sequence.NewOSequence().Transform(Reverse()).Len())
}

func TestStretch(t *testing.T) {
	s := makeSequence()
	stretched := s.Transform(Each(Stretch(2)))

	assert := assert.New(t)
	assert.Equal([]any{32, 38}, values(stretched, point.Offset))
	assert.Equal([]any{34, 40}, values(stretched, point.Duration))
	assert.True(stretched.Transform(Each(Stretch(0.5))).Equal(s))
}

func TestInvert(t *testing.T) {
	s := makeSequence()

	assert := assert.New(t)
	assert.Equal([]any{50, 47}, values(s.Transform(Each(Invert(50))), point.Pitch))
	assert.True(s.Pipe(Each(Invert(50)), Each(Invert(50))).Equal(s))
}

func TestDynamics(t *testing.T) {
	ff, err := Dynamics("ff")
	require.NoError(t, err)
	assert.Equal(t, []any{94, 94}, values(makeSequence().Transform(ff), point.Velocity))

	for marker := range Velocities {
		d, err := Dynamics(marker)
		require.NoError(t, err)
		assert.True(t, makeSequence().Transform(d).At(0).Has(point.Velocity), marker)
	}
}

func TestDynamicsCrescendo(t *testing.T) {
	s := makeSequence().Repeat(5)
	cresc, err := Dynamics("ppp", "fff")
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal([]any{24, 34, 44, 54, 64, 74, 84, 94, 104, 114}, values(s.Transform(cresc), point.Velocity))
	assert.False(s.At(0).Has(point.Velocity))
}

func TestDynamicsUnknown(t *testing.T) {
	_, err := Dynamics("fffff")
	assert.Error(t, err)
	_, err = Dynamics("p", "loud")
	assert.Error(t, err)
}

func TestAdd(t *testing.T) {
	added := degrees().MapPoints(Add(point.Point{point.Octave: 4, point.Duration: 8}))

	for i, d := range []int{1, 2, 3, 1} {
		assert.Equal(t, point.Point{point.Degree: d, point.Octave: 4, point.Duration: 8}, added.At(i))
	}
}

func TestDegreeInKey(t *testing.T) {
	g, err := theory.NewKey("G", theory.MajorScale)
	require.NoError(t, err)

	keyed := degrees().MapPoints(DegreeInKey(g))
	assert.Equal(t, []any{-1, 1, 3, -1}, values(keyed, point.ScalePitch))
}

func TestDegreeInKeyWithOctave(t *testing.T) {
	c, err := theory.NewKey("C", theory.MajorScale)
	require.NoError(t, err)

	keyed := degrees().MapPoints(DegreeInKeyWithOctave(c, 4))

	assert := assert.New(t)
	assert.Equal([]any{-2, 0, 2, -2}, values(keyed, point.ScalePitch))
	assert.Equal([]any{4, 4, 4, 4}, values(keyed, point.Octave))
}

func TestMidiPitch(t *testing.T) {
	g, err := theory.NewKey("G", theory.MajorScale)
	require.NoError(t, err)

	pitched := degrees().Pipe(
		func(h *sequence.HSequence) *sequence.HSequence { return h.MapPoints(DegreeInKey(g)) },
		func(h *sequence.HSequence) *sequence.HSequence {
			return h.MapPoints(Add(point.Point{point.Octave: 4, point.Duration: 8}))
		},
		func(h *sequence.HSequence) *sequence.HSequence { return h.MapPoints(MidiPitch()) },
	)
	assert.Equal(t, []any{55, 57, 59, 55}, values(pitched, point.Pitch))
}

func TestMidiPitchNeedsOctave(t *testing.T) {
	p := MidiPitch()(point.Point{point.ScalePitch: 0})
	assert.False(t, p.Has(point.Pitch))
}

func TestLilypond(t *testing.T) {
	var points []point.Point
	for _, pitch := range []int{0, 1, 2, 3, 4, 11, -4, -11} {
		points = append(points, point.Point{point.ScalePitch: pitch, point.Octave: 4, point.Duration: 8})
	}
	points[3][point.Octave] = 5
	points[4][point.Octave] = 3

	h := sequence.NewHSequence(points...).MapPoints(Lilypond())
	assert.Equal(t,
		[]any{"d8", "a8", "e8", "b'8", "fis,8", "fisis8", "bes8", "beses8"},
		values(h, point.Lilypond))
}

func TestLilypondRhythms(t *testing.T) {
	h := sequence.NewHSequence(
		point.Point{point.Duration: 64},
		point.Point{point.Duration: 0},
		point.Point{},
		point.Point{point.Lilypond: "r4"},
	).MapPoints(Lilypond())
	assert.Equal(t, []any{`\xNote c'1`, "", "", "r4"}, values(h, point.Lilypond))
}

func TestSubseq(t *testing.T) {
	a := point.Register("a")
	s := sequence.NewOSequence()
	for _, o := range []int{0, 20, 25, 30, 50} {
		s.Append(point.Point{a: 2, point.Offset: o})
	}

	want := sequence.NewOSequence(point.Point{a: 2, point.Offset: 20}, point.Point{a: 2, point.Offset: 25})
	assert.True(t, s.Transform(Subseq(20, 30)).Equal(want))
}
