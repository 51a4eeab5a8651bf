package lily

import (
	"math"
	"strconv"
	"strings"
)

// TicksPerWhole is the length of a whole note in 64th-note ticks.
const TicksPerWhole = 64

const maxDots = 6

// ParseDuration converts a marker such as "4" or "8.." into ticks:
// (2 - 2^-dots) * 64 / core, truncated. The core must be a power of two
// from 1 to 64.
func ParseDuration(marker string) (int, bool) {
	digits := strings.TrimRight(marker, ".")
	dots := len(marker) - len(digits)
	core, err := strconv.Atoi(digits)
	if err != nil || core < 1 || core > TicksPerWhole || core&(core-1) != 0 {
		return 0, false
	}
	return int((2 - math.Pow(2, -float64(dots))) * TicksPerWhole / float64(core)), true
}

// FormatDuration is the inverse of ParseDuration for exact tick counts,
// preferring the marker with the fewest dots.
func FormatDuration(ticks int) (string, bool) {
	if ticks <= 0 {
		return "", false
	}
	for dots := 0; dots <= maxDots; dots++ {
		for core := 1; core <= TicksPerWhole; core *= 2 {
			exact := (2 - math.Pow(2, -float64(dots))) * TicksPerWhole / float64(core)
			if exact == float64(ticks) {
				return strconv.Itoa(core) + strings.Repeat(".", dots), true
			}
		}
	}
	return "", false
}
