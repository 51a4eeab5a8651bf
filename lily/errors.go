package lily

import "fmt"

// Position is a 1-based line and column in the source text.
type Position struct {
	Line int
	Col  int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// TokenizeError reports text that no token matches.
type TokenizeError struct {
	Pos  Position
	Near string
}

func (e *TokenizeError) Error() string {
	return fmt.Sprintf("unknown token at %s: %q", e.Pos, e.Near)
}

// TieMismatchError reports a tie between notes of different pitch.
type TieMismatchError struct {
	Pos  Position
	Want int
	Got  int
}

func (e *TieMismatchError) Error() string {
	return fmt.Sprintf("tie at %s joins pitch %d to %d; ties need the same pitch", e.Pos, e.Want, e.Got)
}

// UnsupportedDurationError reports a duration marker that is not a power of
// two between 1 and 64, optionally dotted.
type UnsupportedDurationError struct {
	Pos    Position
	Marker string
}

func (e *UnsupportedDurationError) Error() string {
	return fmt.Sprintf("unsupported duration %q at %s", e.Marker, e.Pos)
}

// ParseError reports a structural problem: unbalanced braces, a command
// missing its arguments or a tie left open at the end of input.
type ParseError struct {
	Pos     Position
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Pos)
}

// OctaveCheckWarning is reported when a note's computed octave differs
// from the one asserted with =. The asserted octave is used.
type OctaveCheckWarning struct {
	Pos      Position
	Note     string
	Computed int
	Asserted int
}

func (w OctaveCheckWarning) String() string {
	return fmt.Sprintf("failed octave check for %q at %s: computed octave %d, using %d", w.Note, w.Pos, w.Computed, w.Asserted)
}
