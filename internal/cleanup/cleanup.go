// Package cleanup implements the tokenize-cleanup pass: the narrowing
// step that reinterprets raw tokenizer output before combine's heavier
// reclassification.
package cleanup

import (
	"github.com/cwbudde/go-uncgo/internal/chunk"
	"github.com/cwbudde/go-uncgo/internal/format"
	"github.com/cwbudde/go-uncgo/internal/lang"
)

// Pass merges `[` `]` into Tsquare, splits a mistokenized `>>`/`>>>` back
// into AngleClose chunks inside a suspected template argument list
// (a `>=` after a template argument is not split and stays Compare),
// and reclassifies a handful of context-free punctuator ambiguities
// the tokenizer can't resolve single-token-at-a-time.
type Pass struct{}

func (Pass) Name() string { return "tokenize-cleanup" }

func (p Pass) Run(ctx *format.Context) error {
	classifyPreproc(ctx.List)
	mergeSquareBrackets(ctx.List)
	splitAngleCloseRuns(ctx.List)
	detectTemplates(ctx.List, ctx.Lang)
	reclassifyByLanguage(ctx.List, ctx.Lang)
	return nil
}

// classifyPreproc narrows a generic Preproc chunk to its directive
// sub-kind by looking at the word after the '#'. The pp-level tracking
// in brace-cleanup and the ifdef-squeeze logic in the blanklines pass
// both dispatch on these.
func classifyPreproc(list *chunk.List) {
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind != chunk.Preproc {
			continue
		}
		word := directiveWord(c.Str)
		switch word {
		case "define":
			c.Kind = chunk.PPDefine
		case "include", "import":
			c.Kind = chunk.PPInclude
		case "if", "ifdef", "ifndef":
			c.Kind = chunk.PPIf
		case "else", "elif":
			c.Kind = chunk.PPElse
		case "endif":
			c.Kind = chunk.PPEndif
			c.Flags = c.Flags.Set(chunk.WFEndif)
		case "pragma":
			c.Kind = chunk.PPPragma
		case "region":
			c.Kind = chunk.PPRegion
		case "endregion":
			c.Kind = chunk.PPEndregion
		default:
			c.Kind = chunk.PPOther
		}
		c.Flags = c.Flags.Set(chunk.InPreproc)
	}
}

// directiveWord extracts the directive name from a raw `#...` line,
// tolerating space between the hash and the word (`#  define`).
func directiveWord(s string) string {
	i := 0
	for i < len(s) && (s[i] == '#' || s[i] == ' ' || s[i] == '\t') {
		i++
	}
	j := i
	for j < len(s) && ((s[j] >= 'a' && s[j] <= 'z') || (s[j] >= 'A' && s[j] <= 'Z')) {
		j++
	}
	return s[i:j]
}

// mergeSquareBrackets folds an adjacent `[` `]` pair with nothing
// between them into a single Tsquare chunk, used for array-of-type
// declarators (`int[]`) and operator[].
func mergeSquareBrackets(list *chunk.List) {
	for c := list.Head(); c != nil; {
		next := c.Next()
		if c.Kind == chunk.SquareOpen && next != nil && next.Kind == chunk.SquareClose {
			merged := chunk.New(chunk.Tsquare, "[]", chunk.Position{Line: c.OrigLine, Col: c.OrigCol, ColEnd: next.OrigEnd})
			list.AddAfter(merged, next)
			list.Del(c)
			list.Del(next)
			c = merged.Next()
			continue
		}
		c = next
	}
}

// splitAngleCloseRuns breaks a tokenizer-level `>>`/`>>>` Arith chunk
// into individual AngleClose chunks when it immediately follows
// another AngleClose, or a Word/Type with at least as many `<` still
// open in the statement as the run has characters; detectTemplates
// then decides whether the resulting AngleClose run is really a
// template close or is rewritten to Compare.
func splitAngleCloseRuns(list *chunk.List) {
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind != chunk.Arith || (c.Str != ">>" && c.Str != ">>>") {
			continue
		}
		prev := chunk.PrevNC(c, chunk.ScopeAll)
		if prev == nil {
			continue
		}
		if prev.Kind != chunk.AngleClose {
			if prev.Kind != chunk.Word && prev.Kind != chunk.Type {
				continue
			}
			// Template context: enough '<' still open in this statement.
			open := 0
			for p := prev; p != nil && p.Kind != chunk.Semicolon &&
				p.Kind != chunk.BraceOpen && p.Kind != chunk.BraceClose; p = p.Prev() {
				switch p.Kind {
				case chunk.AngleOpen:
					open++
				case chunk.AngleClose:
					open--
				}
			}
			if open < len(c.Str) {
				continue
			}
		}
		n := len(c.Str)
		pos := chunk.Position{Line: c.OrigLine, Col: c.OrigCol}
		cursor := c
		for i := 0; i < n; i++ {
			part := chunk.New(chunk.AngleClose, ">", pos)
			pos.Col++
			list.AddAfter(part, cursor)
			cursor = part
		}
		list.Del(c)
	}
}

// detectTemplates decides, for every AngleOpen, whether it really
// opens a template argument list or is a less-than comparison. The
// opener must be preceded by a word/type/operator-value/comma, and a
// forward scan must reach a matching `>` without meeting a comparison
// operator, brace, or semicolon at depth 0. On a hit, both angles get
// PKind KwTemplate and every intermediate chunk is flagged InTemplate;
// on a miss both angles are rewritten to Compare.
func detectTemplates(list *chunk.List, active lang.Flag) {
	if !active.Has(lang.CPP | lang.CS | lang.D | lang.Java | lang.Vala) {
		// No templates in this language: every angle is a comparison.
		for c := list.Head(); c != nil; c = c.Next() {
			if c.Kind == chunk.AngleOpen || c.Kind == chunk.AngleClose {
				c.Kind = chunk.Compare
			}
		}
		return
	}
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind != chunk.AngleOpen {
			continue
		}
		prev := chunk.PrevNCNNL(c, chunk.ScopeAll)
		introducer := prev != nil &&
			(prev.Kind == chunk.Word || prev.Kind == chunk.Type ||
				prev.Kind == chunk.KwOperator || prev.Kind == chunk.Comma ||
				prev.Kind == chunk.KwTemplate)
		var close_ *chunk.Chunk
		if introducer {
			close_ = templateClose(c)
		}
		if close_ == nil {
			c.Kind = chunk.Compare
			continue
		}
		c.PKind = chunk.KwTemplate
		close_.PKind = chunk.KwTemplate
		for m := c.Next(); m != nil && m != close_; m = m.Next() {
			m.Flags = m.Flags.Set(chunk.InTemplate)
		}
		c = close_
	}
	// A '>' that no template opener claimed is a greater-than.
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind == chunk.AngleClose && c.PKind != chunk.KwTemplate &&
			!c.Flags.Has(chunk.InTemplate) {
			c.Kind = chunk.Compare
		}
	}
}

// templateClose scans forward from an AngleOpen for the `>` that would
// close it, tracking angle and paren depth. Returns nil — meaning "not
// a template" — when a brace, a semicolon, or a comparison operator is
// met at depth 0 before any closer.
func templateClose(open *chunk.Chunk) *chunk.Chunk {
	angleDepth := 0
	parenDepth := 0
	for c := open.Next(); c != nil; c = c.Next() {
		switch c.Kind {
		case chunk.AngleOpen:
			angleDepth++
		case chunk.AngleClose:
			if parenDepth == 0 && angleDepth == 0 {
				return c
			}
			if angleDepth > 0 {
				angleDepth--
			}
		case chunk.ParenOpen, chunk.SquareOpen:
			parenDepth++
		case chunk.ParenClose, chunk.SquareClose:
			if parenDepth == 0 {
				return nil
			}
			parenDepth--
		case chunk.Compare, chunk.BoolOp, chunk.BraceOpen, chunk.BraceClose,
			chunk.Semicolon, chunk.Assign:
			if parenDepth == 0 && angleDepth == 0 {
				return nil
			}
		}
	}
	return nil
}

// reclassifyByLanguage applies the reclassifications that depend on
// the active language: in Objective-C, an `@` chunk directly followed
// by a Word becomes OCScope. Other languages are left untouched.
func reclassifyByLanguage(list *chunk.List, active lang.Flag) {
	if !active.Has(lang.ObjC) {
		return
	}
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind == chunk.Unknown && c.Str == "@" {
			next := c.Next()
			if next != nil && next.Kind == chunk.Word {
				c.Kind = chunk.OCScope
			}
		}
	}
}

var _ format.Pass = Pass{}
