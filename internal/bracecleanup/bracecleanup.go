// Package bracecleanup assigns nesting-depth fields (Level,
// BraceLevel, PPLevel) to every chunk and synthesizes virtual braces
// around braceless control-flow bodies.
package bracecleanup

import (
	"github.com/cwbudde/go-uncgo/internal/chunk"
	"github.com/cwbudde/go-uncgo/internal/format"
)

// Pass walks the chunk list once, tracking a parse-frame stack of open
// delimiters and preprocessor conditionals, and assigns each chunk's
// Level/BraceLevel/PPLevel accordingly. A second walk inserts a
// VbraceOpen/VbraceClose pair around any single-statement control-flow
// body that has no real braces, so every later pass can treat braced
// and braceless bodies identically.
type Pass struct{}

func (Pass) Name() string { return "brace-cleanup" }

func (p Pass) Run(ctx *format.Context) error {
	retypeControlParens(ctx.List)
	assignLevels(ctx.List)
	insertVirtualBraces(ctx.List)
	// Inserted virtual braces need Level/BraceLevel of their own, and
	// they shift the BraceLevel of everything they enclose.
	assignLevels(ctx.List)
	setBraceParents(ctx.List)
	return nil
}

// setBraceParents records, on every real brace pair, which construct
// introduced it (if/else/for/while/switch/do/namespace/try/catch) so
// the indent and braces passes can treat switch bodies, namespace
// bodies, and control bodies differently without re-deriving the
// context each time. Braces whose parent was already settled (e.g.
// aggregate bodies marked by combine) are left alone.
func setBraceParents(list *chunk.List) {
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind != chunk.BraceOpen && c.Kind != chunk.VbraceOpen {
			continue
		}
		if c.PKind != chunk.Unknown {
			continue
		}
		intro := introducerOf(c)
		if intro == chunk.Unknown {
			continue
		}
		c.PKind = intro
		if close_ := chunk.SkipToMatch(c, chunk.ScopeAll); close_ != nil {
			close_.PKind = intro
		}
	}
}

func introducerOf(open *chunk.Chunk) chunk.Kind {
	prev := chunk.PrevNCNNL(open, chunk.ScopeAll)
	if prev == nil {
		return chunk.Unknown
	}
	if prev.Kind == chunk.SparenClose {
		sparenOpen := chunk.SkipToMatch(prev, chunk.ScopeAll)
		if sparenOpen == nil {
			return chunk.Unknown
		}
		kw := chunk.PrevNCNNL(sparenOpen, chunk.ScopeAll)
		if kw == nil {
			return chunk.Unknown
		}
		switch kw.Kind {
		case chunk.KwIf, chunk.KwElseif, chunk.KwFor, chunk.KwWhile,
			chunk.KwSwitch, chunk.KwForeach, chunk.KwCatch, chunk.KwUsing:
			return kw.Kind
		}
		return chunk.Unknown
	}
	switch prev.Kind {
	case chunk.KwElse, chunk.KwDo, chunk.KwTry, chunk.KwFinally:
		return prev.Kind
	case chunk.Word, chunk.Type:
		before := chunk.PrevNCNNL(prev, chunk.ScopeAll)
		if before != nil && before.Kind == chunk.KwNamespace {
			return chunk.KwNamespace
		}
	case chunk.KwNamespace:
		return chunk.KwNamespace
	}
	return chunk.Unknown
}

// controlKeywords introduce statement parens: the `(`...`)` after one
// of these is SparenOpen/SparenClose, not a grouping or call paren.
var controlKeywords = map[chunk.Kind]bool{
	chunk.KwIf: true, chunk.KwElseif: true, chunk.KwFor: true,
	chunk.KwWhile: true, chunk.KwSwitch: true, chunk.KwForeach: true,
	chunk.KwCatch: true, chunk.KwUsing: true,
}

func retypeControlParens(list *chunk.List) {
	for c := list.Head(); c != nil; c = c.Next() {
		if !controlKeywords[c.Kind] {
			continue
		}
		open := chunk.NextNCNNL(c, chunk.ScopeAll)
		if open == nil || open.Kind != chunk.ParenOpen {
			continue
		}
		open.Kind = chunk.SparenOpen
		depth := 0
	scan:
		for m := open.Next(); m != nil; m = m.Next() {
			switch m.Kind {
			case chunk.ParenOpen, chunk.SparenOpen, chunk.FparenOpen, chunk.TparenOpen:
				depth++
			case chunk.ParenClose:
				if depth == 0 {
					m.Kind = chunk.SparenClose
					break scan
				}
				depth--
			case chunk.SparenClose, chunk.FparenClose, chunk.TparenClose:
				depth--
			}
		}
	}
}

// frame is one entry of the parse-frame stack: what kind of nesting
// this level represents, for the benefit of BraceLevel (only real {}
// nesting increments it; () and [] increment Level but not BraceLevel).
type frame struct {
	kind chunk.Kind
}

func assignLevels(list *chunk.List) {
	var stack []frame
	ppLevel := 0
	braceLevel := 0

	for c := list.Head(); c != nil; c = c.Next() {
		switch c.Kind {
		case chunk.PPIf:
			c.PPLevel = ppLevel
			ppLevel++
			continue
		case chunk.PPElse:
			c.PPLevel = ppLevel - 1
			continue
		case chunk.PPEndif:
			ppLevel--
			if ppLevel < 0 {
				ppLevel = 0
			}
			c.PPLevel = ppLevel
			continue
		case chunk.Preproc, chunk.PPDefine, chunk.PPInclude, chunk.PPPragma, chunk.PPRegion, chunk.PPEndregion, chunk.PPOther:
			c.PPLevel = ppLevel
			c.Flags = c.Flags.Set(chunk.InPreproc)
			continue
		}
		c.PPLevel = ppLevel

		switch c.Kind {
		case chunk.ParenOpen, chunk.SparenOpen, chunk.FparenOpen, chunk.TparenOpen,
			chunk.SquareOpen, chunk.AngleOpen:
			c.Level = len(stack)
			stack = append(stack, frame{kind: c.Kind})
			c.BraceLevel = braceLevel

		case chunk.BraceOpen, chunk.VbraceOpen:
			c.Level = len(stack)
			c.BraceLevel = braceLevel
			stack = append(stack, frame{kind: c.Kind})
			braceLevel++

		case chunk.ParenClose, chunk.SparenClose, chunk.FparenClose, chunk.TparenClose,
			chunk.SquareClose, chunk.AngleClose:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			c.Level = len(stack)
			c.BraceLevel = braceLevel

		case chunk.BraceClose, chunk.VbraceClose:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			braceLevel--
			if braceLevel < 0 {
				braceLevel = 0
			}
			c.Level = len(stack)
			c.BraceLevel = braceLevel

		default:
			c.Level = len(stack)
			c.BraceLevel = braceLevel
		}
	}
}

// bodyIntroducers are the keywords whose following single statement
// (absent real braces) gets wrapped in a virtual brace pair.
var bodyIntroducers = map[chunk.Kind]bool{
	chunk.KwIf: true, chunk.KwElse: true, chunk.KwElseif: true,
	chunk.KwFor: true, chunk.KwWhile: true, chunk.KwDo: true,
	chunk.KwForeach: true,
}

func insertVirtualBraces(list *chunk.List) {
	for c := list.Head(); c != nil; c = c.Next() {
		if !bodyIntroducers[c.Kind] {
			continue
		}
		after := chunk.NextNCNNL(c, chunk.ScopeAll)
		if after == nil {
			continue
		}
		// else/do need no statement-paren before the body; if/for/while
		// consume a SparenClose first.
		bodyStart := after
		if after.Kind == chunk.SparenOpen {
			close_ := chunk.SkipToMatch(after, chunk.ScopeAll)
			if close_ == nil {
				continue
			}
			bodyStart = chunk.NextNCNNL(close_, chunk.ScopeAll)
		}
		if bodyStart == nil || bodyStart.Kind == chunk.BraceOpen || bodyStart.Kind == chunk.VbraceOpen {
			continue // already braced
		}

		open := chunk.NewVirtual(chunk.VbraceOpen, chunk.Position{Line: bodyStart.OrigLine, Col: bodyStart.OrigCol})
		list.AddBefore(open, bodyStart)

		end := findStatementEnd(bodyStart)
		close_ := chunk.NewVirtual(chunk.VbraceClose, chunk.Position{Line: end.OrigLine, Col: end.OrigEnd})
		list.AddAfter(close_, end)
	}
}

// findStatementEnd walks forward from a braceless body's first chunk
// to its terminating Semicolon/Vsemicolon at the same Level, the
// single-statement boundary a virtual brace pair closes around.
func findStatementEnd(start *chunk.Chunk) *chunk.Chunk {
	level := start.Level
	for c := start; c != nil; c = c.Next() {
		if (c.Kind == chunk.Semicolon || c.Kind == chunk.Vsemicolon) && c.Level == level {
			return c
		}
		if c.Kind == chunk.BraceClose && c.Level < level {
			p := chunk.PrevNCNNL(c, chunk.ScopeAll)
			if p != nil {
				return p
			}
			return c
		}
	}
	return start
}

var _ format.Pass = Pass{}
