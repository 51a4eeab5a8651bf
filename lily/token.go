package lily

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// TokenKind is the type of a lexer token.
type TokenKind uint8

const (
	TokenNote TokenKind = iota
	TokenRest
	TokenCommand
	TokenOpenBrace
	TokenCloseBrace
)

func (k TokenKind) String() string {
	switch k {
	case TokenNote:
		return "NOTE"
	case TokenRest:
		return "REST"
	case TokenCommand:
		return "COMMAND"
	case TokenOpenBrace:
		return "{"
	case TokenCloseBrace:
		return "}"
	default:
		return "UNKNOWN"
	}
}

// Commands understood after a backslash.
const (
	CommandRelative     = "relative"
	CommandAcciaccatura = "acciaccatura"
)

// Token is one lexeme. Note fields are only set for TokenNote; Duration and
// Tie apply to notes and rests.
type Token struct {
	Kind TokenKind
	Text string
	Pos  Position

	Letter byte
	Sharps int
	Flats  int
	// Octave is the signed count of ' (up) or , (down) marks.
	Octave int
	// HasCheck is set by an "=" octave check; Check is its signed mark count.
	HasCheck bool
	Check    int

	// Duration is the raw marker, e.g. "4.", or "" when absent.
	Duration string
	Tie      bool

	Command string
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
}

var tokenPattern = regexp.MustCompile(`^(?:` +
	`(?:(?P<note>[a-g])(?:(?P<sharp>(?:is)+)|(?P<flat>(?:es)+))?(?P<octave>'+|,+)?(?P<check>=(?:'+|,+)?)?|(?P<rest>r))` +
	`(?P<duration>\d+\.*)?(?:(?:\s|%[^\n]*)*(?P<tie>~))?` +
	`|\\(?P<command>relative|acciaccatura)\b` +
	`|(?P<open>\{)|(?P<close>\})` +
	`)`)

var (
	groupNote     = tokenPattern.SubexpIndex("note")
	groupSharp    = tokenPattern.SubexpIndex("sharp")
	groupFlat     = tokenPattern.SubexpIndex("flat")
	groupOctave   = tokenPattern.SubexpIndex("octave")
	groupCheck    = tokenPattern.SubexpIndex("check")
	groupRest     = tokenPattern.SubexpIndex("rest")
	groupDuration = tokenPattern.SubexpIndex("duration")
	groupTie      = tokenPattern.SubexpIndex("tie")
	groupCommand  = tokenPattern.SubexpIndex("command")
	groupOpen     = tokenPattern.SubexpIndex("open")
	groupClose    = tokenPattern.SubexpIndex("close")
)

// Lexer tokenizes notation text.
type Lexer struct {
	input string
	pos   int
	line  int
	col   int
}

func NewLexer(input string) *Lexer {
	return &Lexer{input: input, line: 1, col: 1}
}

// Tokenize lexes the whole input.
func Tokenize(input string) ([]Token, error) {
	return NewLexer(input).Tokenize()
}

// Tokenize returns all remaining tokens.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, ok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// Next returns the next token. ok is false at the end of input.
func (l *Lexer) Next() (tok Token, ok bool, err error) {
	l.skipSpaceAndComments()
	if l.pos >= len(l.input) {
		return Token{}, false, nil
	}

	rest := l.input[l.pos:]
	m := tokenPattern.FindStringSubmatchIndex(rest)
	if m == nil || m[1] == 0 {
		near := rest
		if len(near) > 20 {
			near = near[:20]
		}
		return Token{}, false, &TokenizeError{Pos: l.position(), Near: near}
	}

	group := func(i int) string {
		if m[2*i] < 0 {
			return ""
		}
		return rest[m[2*i]:m[2*i+1]]
	}

	tok = Token{Text: rest[:m[1]], Pos: l.position()}
	switch {
	case group(groupNote) != "":
		tok.Kind = TokenNote
		tok.Letter = group(groupNote)[0]
		tok.Sharps = len(group(groupSharp)) / 2
		tok.Flats = len(group(groupFlat)) / 2
		tok.Octave = marks(group(groupOctave))
		if check := group(groupCheck); check != "" {
			tok.HasCheck = true
			tok.Check = marks(check[1:])
		}
		tok.Duration = group(groupDuration)
		tok.Tie = group(groupTie) != ""
	case group(groupRest) != "":
		tok.Kind = TokenRest
		tok.Duration = group(groupDuration)
		tok.Tie = group(groupTie) != ""
	case group(groupCommand) != "":
		tok.Kind = TokenCommand
		tok.Command = group(groupCommand)
	case group(groupOpen) != "":
		tok.Kind = TokenOpenBrace
	case group(groupClose) != "":
		tok.Kind = TokenCloseBrace
	}

	l.advance(m[1])
	return tok, true, nil
}

func (l *Lexer) skipSpaceAndComments() {
	for l.pos < len(l.input) {
		c := rune(l.input[l.pos])
		switch {
		case unicode.IsSpace(c):
			l.advance(1)
		case c == '%':
			end := strings.IndexByte(l.input[l.pos:], '\n')
			if end < 0 {
				end = len(l.input) - l.pos
			}
			l.advance(end)
		default:
			return
		}
	}
}

func (l *Lexer) advance(n int) {
	for _, c := range l.input[l.pos : l.pos+n] {
		if c == '\n' {
			l.line++
			l.col = 1
		} else {
			l.col++
		}
	}
	l.pos += n
}

func (l *Lexer) position() Position {
	return Position{Line: l.line, Col: l.col}
}

// marks turns a run of ' or , into a signed step count.
func marks(s string) int {
	if strings.HasPrefix(s, ",") {
		return -len(s)
	}
	return len(s)
}
