// Package chunk implements the token graph at the center of the
// beautifier: a doubly-linked list of Chunks that every pass in
// internal/format reads or mutates in place.
package chunk

// Position is a 1-based source position, immutable after tokenization.
type Position struct {
	Line   int
	Col    int
	ColEnd int
}

// Chunk is one token, whitespace run, comment, preprocessor directive,
// or synthetic sentinel in the global token graph.
//
// Chunk is a plain struct linked by pointer, not an arena index: an
// arena with stable indices buys ownership discipline under manual
// memory management, which doesn't apply under Go's garbage
// collector. List links Chunks directly and the collector reclaims
// unreachable nodes after Pop/Del.
type Chunk struct {
	Kind  Kind
	PKind Kind // parent/context kind, e.g. a '{' whose PKind = KwIf
	Str   string

	OrigLine int
	OrigCol  int
	OrigEnd  int

	Column int

	Level      int
	BraceLevel int
	PPLevel    int

	NLCount int // for Newline chunks: run length; blank lines = NLCount-1

	Flags Flags

	next, prev *Chunk
}

// New creates a detached chunk (not yet linked into any List).
func New(k Kind, str string, pos Position) *Chunk {
	return &Chunk{
		Kind:     k,
		Str:      str,
		OrigLine: pos.Line,
		OrigCol:  pos.Col,
		OrigEnd:  pos.ColEnd,
	}
}

// NewVirtual creates an invisible chunk (virtual brace, virtual
// semicolon): empty Str, positioned at the given origin for diagnostic
// purposes but never emitted as text by the output pass.
func NewVirtual(k Kind, pos Position) *Chunk {
	return &Chunk{Kind: k, OrigLine: pos.Line, OrigCol: pos.Col, OrigEnd: pos.Col}
}

// Clone copies the chunk's classification and propagating flags but
// not its list links; used when materializing a virtual brace/paren
// into a real one or splicing header-comment payloads.
func (c *Chunk) Clone() *Chunk {
	cl := *c
	cl.next = nil
	cl.prev = nil
	cl.Flags = c.Flags.Copied()
	return &cl
}

// Next returns the next chunk in the list, or nil at the tail.
func (c *Chunk) Next() *Chunk { return c.next }

// Prev returns the previous chunk in the list, or nil at the head.
func (c *Chunk) Prev() *Chunk { return c.prev }

// Len returns the rune length of the chunk's literal text.
func (c *Chunk) Len() int { return len([]rune(c.Str)) }

// IsNewline reports whether c is a physical or virtual line break.
func (c *Chunk) IsNewline() bool { return c.Kind == Newline || c.Kind == NLCont }

// IsVirtualBrace reports whether c is a synthesized (invisible) brace.
func (c *Chunk) IsVirtualBrace() bool { return c.Kind == VbraceOpen || c.Kind == VbraceClose }

// IsBlank reports whether c carries no visible text in the output
// (virtual braces, virtual semicolons with no literal form).
func (c *Chunk) IsBlank() bool { return c.Str == "" && c.Kind != Newline }
