package combine

import (
	"github.com/cwbudde/go-uncgo/internal/chunk"
	"github.com/cwbudde/go-uncgo/internal/lang"
)

// combineLabels is sub-pass B: every remaining generic Colon chunk is
// settled into the specific sub-kind its construct implies — case,
// goto label, access specifier, ternary, constructor initializer list,
// class base clause, bitfield, for-range, C# attribute target, or
// Objective-C dictionary key. A chunk.Stack of open `[` chunks rides
// along with the walk so a colon can ask what bracket context it sits
// in without a backward rescan; an opener whose close never arrives is
// invalidated in place when the statement ends.
func combineLabels(list *chunk.List, active lang.Flag) {
	if active.Has(lang.CS) {
		markCSAttributeColons(list)
	}
	squares := chunk.NewStack()
	for c := list.Head(); c != nil; c = c.Next() {
		switch c.Kind {
		case chunk.SquareOpen:
			squares.Push(c, c.OrigLine)
			continue
		case chunk.SquareClose:
			squares.Pop()
			continue
		case chunk.Semicolon, chunk.Vsemicolon:
			// An opener still pending at a statement boundary is
			// unmatched; mark the gap and compact.
			if top, ok := squares.Top(); ok && top.Level >= c.Level {
				squares.Invalidate(top)
				squares.Collapse()
			}
			continue
		}
		if c.Kind != chunk.Colon {
			continue
		}
		prev := chunk.PrevNCNNL(c, chunk.ScopeAll)
		if prev == nil {
			continue
		}

		if caseKeywordBefore(c) {
			c.Kind = chunk.CaseColon
			continue
		}

		switch prev.Kind {
		case chunk.KwPublic, chunk.KwPrivate, chunk.KwProtected:
			c.Kind = chunk.PrivateColon
			continue
		case chunk.KwDefault:
			c.Kind = chunk.CaseColon
			continue
		}

		if active.Has(lang.ObjC) && prev.Kind == chunk.Word {
			if top, ok := squares.Top(); ok && top.PKind == chunk.OCMsg {
				c.Kind = chunk.OCColon
				continue
			}
		}
		if active.Has(lang.ObjC) && dictLiteralColon(c) {
			c.Kind = chunk.OCDictColon
			continue
		}

		if hasMatchingQuestion(c) {
			c.Kind = chunk.CondColon
			continue
		}

		if classBaseColon(c, prev) {
			c.Kind = chunk.ClassColon
			continue
		}

		if constructorColon(c, prev, active) {
			c.Kind = chunk.ConstrColon
			continue
		}

		if forColon(c) {
			c.Kind = chunk.ForColon
			continue
		}

		if bitfieldColon(c, prev) {
			c.Kind = chunk.BitColon
			continue
		}

		if prev.Kind == chunk.Word && isLabelPosition(c) {
			c.Kind = chunk.LabelColon
			prev.Kind = chunk.Label
			continue
		}
	}
}

// caseKeywordBefore scans back from the colon to the start of its
// statement looking for `case`; `case FOO + 1:` has several tokens
// between keyword and colon, so checking only the immediate neighbor
// is not enough.
func caseKeywordBefore(colon *chunk.Chunk) bool {
	for c := chunk.PrevNCNNL(colon, chunk.ScopeAll); c != nil; c = chunk.PrevNCNNL(c, chunk.ScopeAll) {
		switch c.Kind {
		case chunk.KwCase:
			return true
		case chunk.Semicolon, chunk.Vsemicolon, chunk.BraceOpen, chunk.BraceClose,
			chunk.Colon, chunk.CaseColon, chunk.Question:
			return false
		}
	}
	return false
}

// hasMatchingQuestion scans backward at the same Level for an
// unmatched Question chunk, the cheap approximation of the ternary
// grammar that doesn't need a full expression parser.
func hasMatchingQuestion(colon *chunk.Chunk) bool {
	depth := 0
	for c := chunk.Prev(colon); c != nil; c = chunk.Prev(c) {
		if c.Level < colon.Level {
			return false
		}
		if c.Level != colon.Level {
			continue
		}
		switch c.Kind {
		case chunk.Colon, chunk.CondColon:
			depth++
		case chunk.Question:
			if depth == 0 {
				return true
			}
			depth--
		case chunk.Semicolon, chunk.BraceOpen, chunk.BraceClose:
			return false
		}
	}
	return false
}

// classBaseColon reports whether the colon introduces a base-class
// list: `class NAME: public Base {`.
func classBaseColon(colon, prev *chunk.Chunk) bool {
	if prev.Kind != chunk.Word && prev.Kind != chunk.Type {
		return false
	}
	before := chunk.PrevNCNNL(prev, chunk.ScopeAll)
	if before == nil {
		return false
	}
	return before.Kind == chunk.KwClass || before.Kind == chunk.KwStruct
}

// constructorColon reports whether the colon starts a C++ constructor
// initializer list: `Ctor(args): member(init) {`.
func constructorColon(colon, prev *chunk.Chunk, active lang.Flag) bool {
	if !active.Has(lang.CPP) {
		return false
	}
	if prev.Kind != chunk.ParenClose && prev.Kind != chunk.FparenClose {
		return false
	}
	next := chunk.NextNCNNL(colon, chunk.ScopeAll)
	// fixFunctions has already retyped `member(` as a call or definition.
	if next == nil || (next.Kind != chunk.Word && next.Kind != chunk.Type &&
		next.Kind != chunk.FuncCall && next.Kind != chunk.FuncDef) {
		return false
	}
	afterNext := chunk.NextNCNNL(next, chunk.ScopeAll)
	return afterNext != nil && (afterNext.Kind == chunk.ParenOpen ||
		afterNext.Kind == chunk.FparenOpen || afterNext.Kind == chunk.BraceOpen)
}

// forColon reports whether the colon sits directly inside the parens
// of a `for` statement — a C++ range-based for or a Pawn for-colon.
func forColon(colon *chunk.Chunk) bool {
	depth := 0
	for c := chunk.Prev(colon); c != nil; c = chunk.Prev(c) {
		switch {
		case c.Kind.IsClosing():
			depth++
		case c.Kind.IsOpening():
			if depth == 0 {
				if c.Kind != chunk.ParenOpen && c.Kind != chunk.SparenOpen {
					return false
				}
				kw := chunk.PrevNCNNL(c, chunk.ScopeAll)
				return kw != nil && (kw.Kind == chunk.KwFor || kw.Kind == chunk.KwForeach)
			}
			depth--
		case c.Kind == chunk.Semicolon && depth == 0:
			return false
		}
	}
	return false
}

// bitfieldColon reports whether the colon declares a bit width:
// `unsigned int flag: 1;` inside a struct/union body.
func bitfieldColon(colon, prev *chunk.Chunk) bool {
	if prev.Kind != chunk.Word {
		return false
	}
	next := chunk.NextNCNNL(colon, chunk.ScopeAll)
	if next == nil || next.Kind != chunk.Number {
		return false
	}
	after := chunk.NextNCNNL(next, chunk.ScopeAll)
	return after != nil && (after.Kind == chunk.Semicolon || after.Kind == chunk.Comma)
}

// isLabelPosition reports whether colon sits right after a lone word
// at statement-start — the shape of a goto label.
func isLabelPosition(colon *chunk.Chunk) bool {
	next := chunk.NextNCNNL(colon, chunk.ScopeAll)
	prevWord := chunk.PrevNCNNL(colon, chunk.ScopeAll)
	if prevWord == nil {
		return false
	}
	beforeWord := chunk.PrevNCNNL(prevWord, chunk.ScopeAll)
	startsStatement := beforeWord == nil || beforeWord.Kind == chunk.Semicolon ||
		beforeWord.Kind == chunk.BraceOpen || beforeWord.Kind == chunk.BraceClose ||
		beforeWord.Kind == chunk.VbraceOpen || beforeWord.Kind == chunk.CaseColon
	return startsStatement && next != nil
}

// markCSAttributeColons tags the target colon of a C# attribute list
// (`[assembly: AssemblyTitle("x")]`) as CSSqColon so the space pass
// can treat it separately from every other colon.
func markCSAttributeColons(list *chunk.List) {
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind != chunk.SquareOpen {
			continue
		}
		first := chunk.NextNCNNL(c, chunk.ScopeAll)
		if first == nil || first.Kind != chunk.Word {
			continue
		}
		switch first.Str {
		case "assembly", "module", "return", "field", "event", "method", "param", "property", "type":
		default:
			continue
		}
		colon := chunk.NextNCNNL(first, chunk.ScopeAll)
		if colon != nil && colon.Kind == chunk.Colon {
			colon.Kind = chunk.CSSqColon
		}
	}
}
