// Package lily compiles a LilyPond-like note entry language into offset
// sequences.
//
// Supported input: notes a-g with is/es accidentals, ' and , octave marks,
// =' octave checks, dotted durations, ~ ties, r rests, { } blocks,
// \relative <note> { ... } and \acciaccatura <note> <note>. Text after % up
// to the end of the line is ignored, including between a note and its ~.
//
// Blocks share one state: the offset, the sticky duration and, in relative
// mode, the previous note. A grace note counts as the previous note for the
// note it ornaments.
//
// Output points carry point.Offset, point.Pitch and point.Duration in
// 64th-note ticks. Every block, the top level included, ends with a point
// carrying only the offset at which the block finished.
package lily

import (
	"log"

	"github.com/jsphweid/motif/point"
	"github.com/jsphweid/motif/sequence"
)

const (
	defaultOctave   = 4
	defaultDuration = 16
)

var letterBase = map[byte]int{'c': 0, 'd': 2, 'e': 4, 'f': 5, 'g': 7, 'a': 9, 'b': 11}

// Options configures Compile.
type Options struct {
	// Offset is the tick at which the passage starts.
	Offset int
}

// Result is a compiled passage.
type Result struct {
	Sequence *sequence.OSequence
	Warnings []OctaveCheckWarning
}

// Parse compiles text starting at offset 0. Octave check warnings are
// logged.
func Parse(text string) (*sequence.OSequence, error) {
	res, err := Compile(text, Options{})
	if err != nil {
		return nil, err
	}
	for _, w := range res.Warnings {
		log.Printf("warning: %v", w)
	}
	return res.Sequence, nil
}

// MustParse is like Parse but panics on error. It is meant for literals in
// code and tests.
func MustParse(text string) *sequence.OSequence {
	s, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return s
}

// Compile tokenizes and parses text. Any error aborts the whole document.
func Compile(text string, opts Options) (*Result, error) {
	tokens, err := Tokenize(text)
	if err != nil {
		return nil, err
	}

	p := &parser{tokens: tokens}
	p.offset = opts.Offset
	p.duration = defaultDuration

	events, end, err := p.block()
	if err != nil {
		return nil, err
	}
	if end == endOfBlock {
		return nil, &ParseError{Pos: p.last.Pos, Message: "unmatched }"}
	}
	if p.tie != nil {
		return nil, &ParseError{Pos: p.tie.pos, Message: "tie is not followed by a note"}
	}

	return &Result{
		Sequence: sequence.NewOSequence(events...),
		Warnings: p.warnings,
	}, nil
}

type notePitch struct {
	base        int
	accidentals int
	octave      int
}

func (n notePitch) value() int {
	return n.base + 12*n.octave + n.accidentals
}

// resolve computes a note's pitch. With prev set (relative mode) the octave
// is chosen so the note lands within a fifth or so of the previous one,
// before the note's own octave marks are applied.
func resolve(tok Token, prev *notePitch) (notePitch, *OctaveCheckWarning) {
	base := letterBase[tok.Letter]
	octave := defaultOctave
	if prev != nil {
		octave = prev.octave
		switch diff := base - prev.base; {
		case diff >= 7:
			octave--
		case diff <= -7:
			octave++
		}
	}
	octave += tok.Octave

	var warn *OctaveCheckWarning
	if tok.HasCheck {
		if want := defaultOctave + tok.Check; octave != want {
			warn = &OctaveCheckWarning{Pos: tok.Pos, Note: tok.Text, Computed: octave, Asserted: want}
			octave = want
		}
	}
	return notePitch{base: base, accidentals: tok.Sharps - tok.Flats, octave: octave}, warn
}

type pendingTie struct {
	pitch    int
	duration int
	pos      Position
}

// state is shared by every block of a document.
type state struct {
	offset int
	// duration is sticky: notes and rests without a marker reuse it.
	duration int
	relative bool
	prev     notePitch
	tie      *pendingTie
}

type parser struct {
	state
	tokens   []Token
	pos      int
	last     Token
	warnings []OctaveCheckWarning
}

type blockEnd int

const (
	endOfInput blockEnd = iota
	endOfBlock
)

func (p *parser) next() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	p.last = p.tokens[p.pos]
	p.pos++
	return p.last, true
}

// block consumes tokens up to a closing brace or the end of input and
// reports which one stopped it. The block's offset sentinel is the last
// event.
func (p *parser) block() ([]point.Point, blockEnd, error) {
	var events []point.Point
	for {
		tok, ok := p.next()
		if !ok {
			return append(events, p.sentinel()), endOfInput, nil
		}

		var emitted []point.Point
		var err error
		switch tok.Kind {
		case TokenOpenBrace:
			emitted, err = p.nested(tok)
		case TokenCloseBrace:
			return append(events, p.sentinel()), endOfBlock, nil
		case TokenCommand:
			switch tok.Command {
			case CommandRelative:
				emitted, err = p.relativeBlock(tok)
			case CommandAcciaccatura:
				emitted, err = p.acciaccatura(tok)
			}
		case TokenNote:
			emitted, err = p.note(tok)
		case TokenRest:
			err = p.rest(tok)
		}
		if err != nil {
			return nil, 0, err
		}
		events = append(events, emitted...)
	}
}

func (p *parser) nested(open Token) ([]point.Point, error) {
	events, end, err := p.block()
	if err != nil {
		return nil, err
	}
	if end != endOfBlock {
		return nil, &ParseError{Pos: open.Pos, Message: "unclosed {"}
	}
	return events, nil
}

func (p *parser) relativeBlock(cmd Token) ([]point.Point, error) {
	tok, ok := p.next()
	if !ok || tok.Kind != TokenNote {
		return nil, &ParseError{Pos: cmd.Pos, Message: `\relative must be followed by a note`}
	}
	if tok.Duration != "" || tok.Tie {
		return nil, &ParseError{Pos: tok.Pos, Message: `\relative note takes no duration or tie`}
	}
	basis, warn := resolve(tok, nil)
	p.warn(warn)

	open, ok := p.next()
	if !ok || open.Kind != TokenOpenBrace {
		return nil, &ParseError{Pos: cmd.Pos, Message: `\relative must be followed by a note then {...}`}
	}

	savedRelative, savedPrev := p.relative, p.prev
	p.relative, p.prev = true, basis
	events, err := p.nested(open)
	p.relative, p.prev = savedRelative, savedPrev
	return events, err
}

// acciaccatura places the grace note before the main note: it borrows half
// of its own written duration from the time before the current offset, so
// only the main note advances the cursor.
func (p *parser) acciaccatura(cmd Token) ([]point.Point, error) {
	if p.tie != nil {
		return nil, &ParseError{Pos: cmd.Pos, Message: "tie interrupted by grace note"}
	}
	grace, ok := p.next()
	if !ok || grace.Kind != TokenNote {
		return nil, &ParseError{Pos: cmd.Pos, Message: `\acciaccatura must be followed by two notes`}
	}
	if grace.Tie {
		return nil, &ParseError{Pos: grace.Pos, Message: "grace notes cannot be tied"}
	}
	main, ok := p.next()
	if !ok || main.Kind != TokenNote {
		return nil, &ParseError{Pos: cmd.Pos, Message: `\acciaccatura must be followed by two notes`}
	}

	pitch := p.pitch(grace)
	d := p.duration
	if grace.Duration != "" {
		var ok bool
		if d, ok = ParseDuration(grace.Duration); !ok {
			return nil, &UnsupportedDurationError{Pos: grace.Pos, Marker: grace.Duration}
		}
	}
	half := d / 2
	events := []point.Point{{
		point.Offset:   p.offset - half,
		point.Pitch:    pitch,
		point.Duration: half,
	}}

	rest, err := p.note(main)
	if err != nil {
		return nil, err
	}
	return append(events, rest...), nil
}

func (p *parser) note(tok Token) ([]point.Point, error) {
	pitch := p.pitch(tok)
	d, err := p.noteDuration(tok)
	if err != nil {
		return nil, err
	}

	if p.tie != nil {
		if pitch != p.tie.pitch {
			return nil, &TieMismatchError{Pos: tok.Pos, Want: p.tie.pitch, Got: pitch}
		}
		d += p.tie.duration
		p.tie = nil
	}
	if tok.Tie {
		p.tie = &pendingTie{pitch: pitch, duration: d, pos: tok.Pos}
		return nil, nil
	}

	ev := point.Point{point.Offset: p.offset, point.Pitch: pitch, point.Duration: d}
	p.offset += d
	return []point.Point{ev}, nil
}

func (p *parser) rest(tok Token) error {
	if p.tie != nil {
		return &ParseError{Pos: tok.Pos, Message: "tie must be followed by a note"}
	}
	if tok.Tie {
		return &ParseError{Pos: tok.Pos, Message: "rests cannot be tied"}
	}
	d, err := p.noteDuration(tok)
	if err != nil {
		return err
	}
	p.offset += d
	return nil
}

func (p *parser) pitch(tok Token) int {
	var prev *notePitch
	if p.relative {
		prev = &p.prev
	}
	np, warn := resolve(tok, prev)
	p.warn(warn)
	p.prev = np
	return np.value()
}

func (p *parser) noteDuration(tok Token) (int, error) {
	if tok.Duration == "" {
		return p.duration, nil
	}
	d, ok := ParseDuration(tok.Duration)
	if !ok {
		return 0, &UnsupportedDurationError{Pos: tok.Pos, Marker: tok.Duration}
	}
	p.duration = d
	return d, nil
}

func (p *parser) sentinel() point.Point {
	return point.Point{point.Offset: p.offset}
}

func (p *parser) warn(w *OctaveCheckWarning) {
	if w != nil {
		p.warnings = append(p.warnings, *w)
	}
}
