package transform

import (
	"github.com/pkg/errors"

	"github.com/jsphweid/motif/point"
	"github.com/jsphweid/motif/sequence"
)

// Velocities of the dynamic markings.
var Velocities = map[string]int{
	"pppppp": 10,
	"ppppp":  16,
	"pppp":   20,
	"ppp":    24,
	"pp":     36,
	"p":      48,
	"mp":     64,
	"mf":     74,
	"f":      84,
	"ff":     94,
	"fff":    114,
	"ffff":   127,
}

// Dynamics sets point.Velocity from a marking, or ramps linearly from
// start to end across the sequence when end is given.
func Dynamics(start string, end ...string) (sequence.Transform, error) {
	if len(end) > 1 {
		return nil, errors.New("dynamics takes at most two markings")
	}
	from, ok := Velocities[start]
	if !ok {
		return nil, errors.Errorf("unknown dynamic %q", start)
	}
	to := from
	if len(end) == 1 {
		if to, ok = Velocities[end[0]]; !ok {
			return nil, errors.Errorf("unknown dynamic %q", end[0])
		}
	}

	return func(s *sequence.OSequence) *sequence.OSequence {
		res := s.Clone()
		n := res.Len()
		for i := 0; i < n; i++ {
			v := from
			if n > 1 {
				v = int(float64(from) + float64(to-from)/float64(n-1)*float64(i))
			}
			res.Ref(i).Set(point.Velocity, v)
		}
		return res
	}, nil
}
