// Package tokenizer turns source text into a chunk.List: the first
// stage of the formatting cascade. The scanning loop is a
// rune-at-a-time reader with one-token lookahead and per-literal-kind
// read helpers, parameterized by the language mask for the C-family
// grammars internal/lang enumerates: multiple comment styles,
// preprocessor lines, and a greedy multi-character operator table.
package tokenizer

import (
	"unicode"
	"unicode/utf8"

	"github.com/cwbudde/go-uncgo/internal/chartable"
	"github.com/cwbudde/go-uncgo/internal/chunk"
	"github.com/cwbudde/go-uncgo/internal/lang"
)

// Option configures a Tokenizer.
type Option func(*Tokenizer)

// WithLanguage selects the active language mask; defaults to lang.C.
func WithLanguage(f lang.Flag) Option {
	return func(t *Tokenizer) { t.lang = f }
}

// Tokenizer scans source text into a chunk.List.
type Tokenizer struct {
	input        string
	lang         lang.Flag
	position     int
	readPosition int
	line         int
	column       int
	ch           rune
	errs         []error
}

// state captures enough of Tokenizer to backtrack a speculative scan
// (readNumber uses it to undo an `e`/`E` that does not start an
// exponent).
type state struct {
	position, readPosition, line, column int
	ch                                   rune
}

// New creates a Tokenizer for input with the given options applied.
func New(input string, opts ...Option) *Tokenizer {
	t := &Tokenizer{input: input, lang: lang.C, line: 1, column: 0}
	for _, o := range opts {
		o(t)
	}
	t.readChar()
	return t
}

func (t *Tokenizer) saveState() state {
	return state{t.position, t.readPosition, t.line, t.column, t.ch}
}

func (t *Tokenizer) restoreState(s state) {
	t.position, t.readPosition, t.line, t.column, t.ch = s.position, s.readPosition, s.line, s.column, s.ch
}

func (t *Tokenizer) readChar() {
	if t.readPosition >= len(t.input) {
		t.ch = 0
		t.position = t.readPosition
		return
	}
	r, size := utf8.DecodeRuneInString(t.input[t.readPosition:])
	t.ch = r
	t.position = t.readPosition
	t.readPosition += size
	t.column++
}

func (t *Tokenizer) peekChar() rune {
	if t.readPosition >= len(t.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(t.input[t.readPosition:])
	return r
}

func (t *Tokenizer) peekCharN(n int) rune {
	pos := t.readPosition
	for i := 0; i < n-1 && pos < len(t.input); i++ {
		_, size := utf8.DecodeRuneInString(t.input[pos:])
		pos += size
	}
	if pos >= len(t.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(t.input[pos:])
	return r
}

func (t *Tokenizer) pos() chunk.Position {
	return chunk.Position{Line: t.line, Col: t.column}
}

// Errors returns every recoverable scanning error accumulated
// (unterminated strings/comments); the tokenizer never aborts on one.
func (t *Tokenizer) Errors() []error { return t.errs }

func (t *Tokenizer) addErr(err error) { t.errs = append(t.errs, err) }

// Tokenize scans the entire input and returns the resulting chunk list.
func (t *Tokenizer) Tokenize() *chunk.List {
	list := chunk.NewList()
	atLineStart := true
	for t.ch != 0 {
		switch {
		case t.ch == '\n':
			start := t.pos()
			t.readChar()
			t.line++
			t.column = 1 // t.ch is now the new line's first rune
			nl := chunk.New(chunk.Newline, "\n", start)
			nl.NLCount = 1
			list.AddTail(nl)
			atLineStart = true
			continue

		case t.ch == ' ' || t.ch == '\t' || t.ch == '\r':
			t.readChar()
			continue

		case t.ch == '#' && atLineStart && t.lang != lang.Pawn:
			list.AddTail(t.readPreproc())

		case t.ch == '/' && t.peekChar() == '/':
			list.AddTail(t.readLineComment())

		case t.ch == '/' && t.peekChar() == '*':
			list.AddTail(t.readBlockComment())

		case t.ch == '"':
			list.AddTail(t.readString('"'))

		case t.ch == '\'':
			list.AddTail(t.readChar2())

		case chartable.IsIdentStart(byteOrZero(t.ch)) || unicode.IsLetter(t.ch):
			list.AddTail(t.readIdentifier())

		case isDigit(t.ch):
			list.AddTail(t.readNumber())

		default:
			list.AddTail(t.readOperator())
		}
		atLineStart = false
	}
	list.AddTail(chunk.New(chunk.EOF, "", t.pos()))
	return list
}

func byteOrZero(r rune) byte {
	if r < 128 {
		return byte(r)
	}
	return 0
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func (t *Tokenizer) readIdentifier() *chunk.Chunk {
	start := t.pos()
	startByte := t.position
	for chartable.IsIdentCont(byteOrZero(t.ch)) || unicode.IsLetter(t.ch) || unicode.IsDigit(t.ch) {
		t.readChar()
	}
	text := t.input[startByte:t.position]
	k := lang.LookupIdent(text, t.lang)
	c := chunk.New(k, text, start)
	c.OrigEnd = start.Col + len([]rune(text))
	return c
}

func (t *Tokenizer) readNumber() *chunk.Chunk {
	start := t.pos()
	startByte := t.position

	if t.ch == '0' && (t.peekChar() == 'x' || t.peekChar() == 'X') {
		t.readChar()
		t.readChar()
		for isHex(t.ch) || t.ch == '_' {
			t.readChar()
		}
	} else if t.ch == '0' && (t.peekChar() == 'b' || t.peekChar() == 'B') {
		t.readChar()
		t.readChar()
		for t.ch == '0' || t.ch == '1' || t.ch == '_' {
			t.readChar()
		}
	} else {
		for isDigit(t.ch) || t.ch == '_' {
			t.readChar()
		}
		if t.ch == '.' && isDigit(t.peekChar()) {
			t.readChar()
			for isDigit(t.ch) || t.ch == '_' {
				t.readChar()
			}
		}
		if t.ch == 'e' || t.ch == 'E' {
			save := t.saveState()
			t.readChar()
			if t.ch == '+' || t.ch == '-' {
				t.readChar()
			}
			if isDigit(t.ch) {
				for isDigit(t.ch) {
					t.readChar()
				}
			} else {
				t.restoreState(save)
			}
		}
	}
	// trailing numeric-literal suffixes: L, UL, f, etc.
	for isLetter(t.ch) {
		t.readChar()
	}

	text := t.input[startByte:t.position]
	c := chunk.New(chunk.Number, text, start)
	c.OrigEnd = start.Col + len([]rune(text))
	return c
}

func isHex(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isLetter(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func (t *Tokenizer) readString(quote rune) *chunk.Chunk {
	start := t.pos()
	startByte := t.position
	t.readChar() // opening quote
	terminated := false
	for t.ch != 0 {
		if t.ch == '\\' {
			t.readChar()
			if t.ch != 0 {
				t.readChar()
			}
			continue
		}
		if t.ch == quote {
			t.readChar()
			terminated = true
			break
		}
		if t.ch == '\n' {
			break // unterminated on this line
		}
		t.readChar()
	}
	text := t.input[startByte:t.position]
	if !terminated {
		t.addErr(&ScanError{Pos: start, Msg: "unterminated string literal"})
	}
	c := chunk.New(chunk.String, text, start)
	c.OrigEnd = start.Col + len([]rune(text))
	return c
}

// readChar2 reads a C-family character literal; named to avoid
// colliding with the scanner's own readChar.
func (t *Tokenizer) readChar2() *chunk.Chunk {
	start := t.pos()
	startByte := t.position
	t.readChar() // opening quote
	for t.ch != 0 && t.ch != '\'' && t.ch != '\n' {
		if t.ch == '\\' {
			t.readChar()
		}
		if t.ch != 0 {
			t.readChar()
		}
	}
	if t.ch == '\'' {
		t.readChar()
	}
	text := t.input[startByte:t.position]
	c := chunk.New(chunk.Char, text, start)
	c.OrigEnd = start.Col + len([]rune(text))
	return c
}

func (t *Tokenizer) readLineComment() *chunk.Chunk {
	start := t.pos()
	startByte := t.position
	for t.ch != '\n' && t.ch != 0 {
		t.readChar()
	}
	text := t.input[startByte:t.position]
	c := chunk.New(chunk.Comment, text, start)
	c.OrigEnd = start.Col + len([]rune(text))
	return c
}

func (t *Tokenizer) readBlockComment() *chunk.Chunk {
	start := t.pos()
	startByte := t.position
	t.readChar()
	t.readChar()
	multi := false
	terminated := false
	for t.ch != 0 {
		if t.ch == '*' && t.peekChar() == '/' {
			t.readChar()
			t.readChar()
			terminated = true
			break
		}
		if t.ch == '\n' {
			multi = true
			t.line++
			t.column = 0
		}
		t.readChar()
	}
	if !terminated {
		t.addErr(&ScanError{Pos: start, Msg: "unterminated block comment"})
	}
	text := t.input[startByte:t.position]
	k := chunk.Comment
	if multi {
		k = chunk.CommentMulti
	}
	c := chunk.New(k, text, start)
	c.OrigEnd = start.Col + len([]rune(text))
	return c
}

func (t *Tokenizer) readPreproc() *chunk.Chunk {
	start := t.pos()
	startByte := t.position
	for t.ch != '\n' && t.ch != 0 {
		if t.ch == '\\' && t.peekChar() == '\n' {
			t.readChar()
			t.readChar()
			t.line++
			t.column = 1 // t.ch is now the continued line's first rune
			continue
		}
		t.readChar()
	}
	text := t.input[startByte:t.position]
	c := chunk.New(chunk.Preproc, text, start)
	c.OrigEnd = start.Col + len([]rune(text))
	return c
}

// operators is a greedy-match table, longest operators first,
// covering the combined C-family punctuator set.
var operators = []struct {
	text string
	kind chunk.Kind
}{
	{"<<=", chunk.Assign}, {">>=", chunk.Assign}, {"...", chunk.Ellipsis},
	{"->*", chunk.Arrow}, {"::*", chunk.DCMember},
	{"==", chunk.Compare}, {"!=", chunk.Compare}, {"<=", chunk.Compare}, {">=", chunk.Compare},
	{"&&", chunk.BoolOp}, {"||", chunk.BoolOp},
	{"++", chunk.Incr}, {"--", chunk.Decr},
	{"+=", chunk.Assign}, {"-=", chunk.Assign}, {"*=", chunk.Assign}, {"/=", chunk.Assign},
	{"%=", chunk.Assign}, {"&=", chunk.Assign}, {"|=", chunk.Assign}, {"^=", chunk.Assign},
	{"<<", chunk.Arith}, {">>", chunk.Arith},
	{"->", chunk.Arrow}, {"::", chunk.DCMember},
	{"??", chunk.BoolOp}, {"?.", chunk.NullCond},
	{"+", chunk.Arith}, {"-", chunk.Arith}, {"*", chunk.Arith}, {"/", chunk.Arith}, {"%", chunk.Arith},
	{"=", chunk.Assign},
	{"<", chunk.AngleOpen}, {">", chunk.AngleClose},
	{"&", chunk.Addr}, {"|", chunk.Arith}, {"^", chunk.Arith}, {"~", chunk.BitNot},
	{"!", chunk.Not},
	{"(", chunk.ParenOpen}, {")", chunk.ParenClose},
	{"{", chunk.BraceOpen}, {"}", chunk.BraceClose},
	{"[", chunk.SquareOpen}, {"]", chunk.SquareClose},
	{";", chunk.Semicolon}, {",", chunk.Comma}, {":", chunk.Colon},
	{".", chunk.Member}, {"?", chunk.Question}, {"@", chunk.Unknown},
}

func (t *Tokenizer) readOperator() *chunk.Chunk {
	start := t.pos()
	for _, op := range operators {
		if t.matches(op.text) {
			c := chunk.New(op.kind, op.text, start)
			c.OrigEnd = start.Col + len([]rune(op.text))
			return c
		}
	}
	// Unrecognized byte: emit as a single-rune Unknown chunk rather
	// than aborting the whole scan.
	r := t.ch
	t.readChar()
	return chunk.New(chunk.Unknown, string(r), start)
}

func (t *Tokenizer) matches(text string) bool {
	runes := []rune(text)
	if runes[0] != t.ch {
		return false
	}
	for i := 1; i < len(runes); i++ {
		if t.peekCharN(i) != runes[i] {
			return false
		}
	}
	for range runes {
		t.readChar()
	}
	return true
}

// ScanError is a recoverable tokenizer diagnostic (unterminated
// string or comment); errors accumulate and scanning continues rather
// than aborting.
type ScanError struct {
	Pos chunk.Position
	Msg string
}

func (e *ScanError) Error() string { return e.Msg }
