package sequence

import (
	"errors"
	"testing"

	"github.com/jsphweid/motif/point"
	"github.com/stretchr/testify/assert"
)

var a = point.Register("a")

func makePoint(offset int) point.Point {
	return point.Point{
		point.Offset:   16 + offset,
		point.Pitch:    50 + offset,
		point.Duration: 17 + offset,
	}
}

func makeSequence(offset int) *OSequence {
	return NewOSequence(makePoint(offset), makePoint(offset+3))
}

func triples(s Sequence) [][]any {
	var res [][]any
	for _, p := range s.Points() {
		res = append(res, p.Tuple(point.Offset, point.Pitch, point.Duration))
	}
	return res
}

func TestMakeSequence(t *testing.T) {
	s := NewOSequence(makePoint(0), makePoint(50))
	assert.Equal(t, [][]any{{16, 50, 17}, {66, 100, 67}}, triples(s))
}

func TestConstructorsAgree(t *testing.T) {
	p1 := point.Point{a: 3}
	p2 := point.Point{a: 5}

	s1 := NewOSequence(p1, p2)
	s2 := NewOSequence(p1).Concat(NewOSequence(p2))
	assert.True(t, s1.Equal(s2))
}

func TestAppendAssignsOffsets(t *testing.T) {
	s := NewOSequence()
	s.Append(point.Point{point.Duration: 10})
	s.Append(point.Point{point.Duration: 10})

	assert := assert.New(t)
	assert.Equal(20, s.NextOffset())
	assert.Equal(0, s.At(0).IntOr(point.Offset, -1))
	assert.Equal(10, s.At(1).IntOr(point.Offset, -1))
}

func TestAppendCopiesThePoint(t *testing.T) {
	p := point.Point{point.Duration: 10}
	s := NewOSequence()
	s.Append(p)
	p.Set(point.Duration, 99)

	assert := assert.New(t)
	assert.False(p.Has(point.Offset))
	assert.Equal(10, s.At(0).IntOr(point.Duration, 0))
}

func TestAtCopiesButRefAliases(t *testing.T) {
	s := makeSequence(0)
	s.At(0).Set(point.Velocity, 10)
	assert.False(t, s.At(0).Has(point.Velocity))

	s.Ref(0).Set(point.Velocity, 10)
	assert.Equal(t, 10, s.At(0).IntOr(point.Velocity, 0))
}

func TestHAndVSequencesDoNotTrackOffsets(t *testing.T) {
	h := NewHSequence()
	h.Append(point.Point{point.Duration: 10})
	h.Append(point.Point{point.Duration: 10})
	v := NewVSequence()
	v.Append(point.Point{point.Duration: 10})
	v.Append(point.Point{point.Duration: 10})

	for _, p := range append(h.Points(), v.Points()...) {
		assert.False(t, p.Has(point.Offset))
	}
}

func TestLastPoint(t *testing.T) {
	var points []point.Point
	for x := 100; x >= 0; x -= 10 {
		points = append(points, makePoint(x))
	}
	s := NewOSequence(points...)
	assert.Equal(t, makePoint(100), s.LastPoint())
}

func TestLastPointEmpty(t *testing.T) {
	s := NewOSequence()

	assert := assert.New(t)
	assert.Equal(point.Point{point.Offset: 0, point.Duration: 0}, s.LastPoint())
	assert.Equal(0, s.NextOffset())
}

func TestLastPointPrefersLaterOnTies(t *testing.T) {
	s := NewOSequence(
		point.Point{point.Offset: 8, point.Duration: 4},
		point.Point{point.Offset: 8, point.Duration: 2},
	)
	assert.Equal(t, 10, s.NextOffset())
}

func TestReflexiveConcat(t *testing.T) {
	s := makeSequence(0)
	assert.Equal(t, [][]any{
		{16, 50, 17},
		{19, 53, 20},
		{55, 50, 17},
		{58, 53, 20},
	}, triples(s.Concat(s)))
}

func TestConcat(t *testing.T) {
	s1 := makeSequence(0)
	s2 := makeSequence(50)
	c := s1.Concat(s2)

	assert := assert.New(t)
	assert.Equal([][]any{
		{16, 50, 17},
		{19, 53, 20},
		{105, 100, 67},
		{108, 103, 70},
	}, triples(c))
	// operands untouched
	assert.Equal([][]any{{66, 100, 67}, {69, 103, 70}}, triples(s2))
}

func TestConcatNextOffsetAdds(t *testing.T) {
	cases := []struct {
		name string
		a, b *OSequence
	}{
		{"pair", makeSequence(0), makeSequence(50)},
		{"empty left", NewOSequence(), makeSequence(3)},
		{"empty right", makeSequence(3), NewOSequence()},
		{"appended", NewOSequence(point.Point{point.Duration: 7}), NewOSequence(point.Point{point.Duration: 5}, point.Point{point.Duration: 1})},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.a.NextOffset()+c.b.NextOffset(), c.a.Concat(c.b).NextOffset())
		})
	}
}

func TestRepeat(t *testing.T) {
	s := makeSequence(0)

	assert := assert.New(t)
	assert.Equal(0, s.Repeat(0).Len())
	assert.True(s.Repeat(1).Equal(s))
	assert.True(s.Repeat(2).Equal(s.Concat(s)))
	assert.True(s.Repeat(3).Equal(s.Concat(s).Concat(s)))
	assert.Equal([][]any{
		{16, 50, 17},
		{19, 53, 20},
		{55, 50, 17},
		{58, 53, 20},
		{94, 50, 17},
		{97, 53, 20},
	}, triples(s.Repeat(3)))
}

func TestMergeOrdersByOffset(t *testing.T) {
	s1 := NewOSequence(point.Point{a: 1, point.Offset: 0}, point.Point{a: 2, point.Offset: 20})
	s2 := NewOSequence(point.Point{a: 3, point.Offset: 10})
	m := s1.Merge(s2)

	assert := assert.New(t)
	assert.Equal(3, m.Len())
	assert.Equal(3, m.At(1).IntOr(a, 0))
}

func TestMergeIdentity(t *testing.T) {
	s := makeSequence(0)

	assert := assert.New(t)
	assert.True(s.Merge(NewOSequence()).Equal(s))
	assert.True(NewOSequence().Merge(s).Equal(s))
}

func TestMergeOfRepeatedTracks(t *testing.T) {
	quarters := NewOSequence(point.Point{point.Pitch: 60, point.Duration: 16}).Repeat(4)
	eighths := NewOSequence(point.Point{point.Pitch: 72, point.Duration: 8}).Repeat(8)
	m := quarters.Merge(eighths)

	assert := assert.New(t)
	assert.Equal(12, m.Len())
	assert.Equal([][]any{
		{0, 60, 16}, {0, 72, 8}, {8, 72, 8},
		{16, 60, 16}, {16, 72, 8}, {24, 72, 8},
		{32, 60, 16}, {32, 72, 8}, {40, 72, 8},
		{48, 60, 16}, {48, 72, 8}, {56, 72, 8},
	}, triples(m))
	assert.Equal(64, m.NextOffset())
}

func TestMapPoints(t *testing.T) {
	s := NewOSequence(point.Point{a: 3, point.Offset: 0}, point.Point{a: 5})
	double := func(p point.Point) point.Point {
		if n, ok := p.Int(a); ok {
			p[a] = n * 2
		}
		return p
	}
	m := s.MapPoints(double)

	assert := assert.New(t)
	assert.Equal(6, m.At(0).IntOr(a, 0))
	assert.Equal(10, m.At(m.Len()-1).IntOr(a, 0))
	// the source keeps its values
	assert.Equal(3, s.At(0).IntOr(a, 0))
}

func TestPipe(t *testing.T) {
	s := makeSequence(0)
	shift := Map(func(p point.Point) point.Point {
		p[point.Pitch] = p.IntOr(point.Pitch, 0) + 1
		return p
	})
	res := s.Pipe(shift, shift).Transform(shift)
	assert.Equal(t, [][]any{{16, 53, 17}, {19, 56, 20}}, triples(res))
}

func TestHSequenceAlgebra(t *testing.T) {
	h := NewHSequence(point.Point{point.Degree: 1}, point.Point{point.Degree: 2})

	assert := assert.New(t)
	assert.Equal(4, h.Concat(h).Len())
	assert.True(h.Repeat(2).Equal(h.Concat(h)))
	assert.Equal(0, h.Repeat(0).Len())
	assert.Equal(2, h.Repeat(3).At(5).IntOr(point.Degree, 0))
}

func TestHSequenceToOSequence(t *testing.T) {
	h := NewHSequence(
		point.Point{point.Pitch: 60, point.Duration: 16},
		point.Point{point.Pitch: 62, point.Duration: 8},
		point.Point{point.Pitch: 64, point.Duration: 8},
	)
	o, err := h.ToOSequence()

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([][]any{{0, 60, 16}, {16, 62, 8}, {24, 64, 8}}, triples(o))
	assert.Equal(32, o.NextOffset())
}

func TestHSequenceToOSequenceNeedsDurations(t *testing.T) {
	h := NewHSequence(point.Point{point.Pitch: 60})
	_, err := h.ToOSequence()
	assert.True(t, errors.Is(err, ErrMissingDuration))
}

func TestVSequenceMergeConcatenates(t *testing.T) {
	v1 := NewVSequence(point.Point{point.Pitch: 64}, point.Point{point.Pitch: 60})
	v2 := NewVSequence(point.Point{point.Pitch: 55, point.Offset: 4})
	m := v1.Merge(v2)

	assert := assert.New(t)
	assert.Equal([][]any{{nil, 64, nil}, {nil, 60, nil}, {4, 55, nil}}, triples(m))
	assert.True(v1.Merge(NewVSequence()).Equal(v1))
}
