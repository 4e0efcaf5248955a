package combine

import (
	"github.com/cwbudde/go-uncgo/internal/chunk"
)

// markOCClasses handles the @interface/@implementation/@protocol...
// @end block structure: the keyword after the `@` scope marker becomes
// OCClass (or OCProperty for @property), and the class name that
// follows is settled as a Type.
func markOCClasses(list *chunk.List) {
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind != chunk.OCScope {
			continue
		}
		word := chunk.NextNC(c, chunk.ScopeAll)
		if word == nil || word.Kind != chunk.Word {
			continue
		}
		switch word.Str {
		case "interface", "implementation", "protocol":
			word.Kind = chunk.OCClass
			name := chunk.NextNCNNL(word, chunk.ScopeAll)
			if name != nil && name.Kind == chunk.Word {
				name.Kind = chunk.Type
			}
		case "property":
			word.Kind = chunk.OCProperty
		}
	}
}

// markOCMessages recognizes a message send `[receiver selector:arg...]`
// and retags its bracket pair with PKind OCMsg, flags the enclosed
// chunks InOCMsg, and leaves the selector colons for combineLabels to
// settle as OCColon.
func markOCMessages(list *chunk.List) {
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind != chunk.SquareOpen {
			continue
		}
		close_ := chunk.SkipToMatch(c, chunk.ScopeAll)
		if close_ == nil {
			continue
		}
		if !looksLikeMessage(c, close_) {
			continue
		}
		c.PKind = chunk.OCMsg
		close_.PKind = chunk.OCMsg
		for m := c.Next(); m != nil && m != close_; m = m.Next() {
			m.Flags = m.Flags.Set(chunk.InOCMsg)
		}
	}
}

// looksLikeMessage checks the bracketed region for the message-send
// shape: a receiver (word, type, or nested message; a literal receiver
// is not recognized) followed by a selector
// word, with either a colon after the selector or the close bracket
// (unary message). An array subscript `a[i]` fails the receiver check
// because the opener follows a value; an array literal fails the
// selector check.
func looksLikeMessage(open, close_ *chunk.Chunk) bool {
	prev := chunk.PrevNCNNL(open, chunk.ScopeAll)
	if isValueEnd(prev) || (prev != nil && prev.Kind == chunk.Word) {
		return false // subscript
	}
	recv := chunk.NextNCNNL(open, chunk.ScopeAll)
	if recv == nil || recv == close_ {
		return false
	}
	if recv.Kind != chunk.Word && recv.Kind != chunk.Type && recv.Kind != chunk.SquareOpen {
		return false
	}
	sel := recv
	if recv.Kind == chunk.SquareOpen {
		inner := chunk.SkipToMatch(recv, chunk.ScopeAll)
		if inner == nil {
			return false
		}
		sel = inner
	}
	sel = chunk.NextNCNNL(sel, chunk.ScopeAll)
	if sel == nil || sel == close_ || sel.Kind != chunk.Word {
		return false
	}
	after := chunk.NextNCNNL(sel, chunk.ScopeAll)
	return after == close_ || (after != nil && after.Kind == chunk.Colon)
}

// dictLiteralColon reports whether the colon separates a key/value
// pair inside an Objective-C dictionary literal `@{ key : value }`.
func dictLiteralColon(colon *chunk.Chunk) bool {
	depth := 0
	for c := chunk.Prev(colon); c != nil; c = chunk.Prev(c) {
		switch {
		case c.Kind == chunk.BraceClose:
			depth++
		case c.Kind == chunk.BraceOpen:
			if depth > 0 {
				depth--
				continue
			}
			prev := chunk.PrevNCNNL(c, chunk.ScopeAll)
			return prev != nil && prev.Kind == chunk.OCScope
		case c.Kind == chunk.Semicolon && depth == 0:
			return false
		}
	}
	return false
}

// markOCBlocks settles the `^` of a block literal `^RET(ARGS){BODY}`
// or block type `RET (^NAME)(ARGS)` as OCBlockCaret, recognized by the
// caret sitting adjacent to a paren or brace rather than between two
// values.
func markOCBlocks(list *chunk.List) {
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind != chunk.Arith || c.Str != "^" {
			continue
		}
		next := chunk.NextNC(c, chunk.ScopeAll)
		if next == nil {
			continue
		}
		prev := chunk.PrevNCNNL(c, chunk.ScopeAll)
		adjacentOpen := next.Kind == chunk.ParenOpen || next.Kind == chunk.FparenOpen ||
			next.Kind == chunk.BraceOpen || next.Kind == chunk.Word || next.Kind == chunk.Type
		if !adjacentOpen || isValueEnd(prev) {
			continue
		}
		c.Kind = chunk.OCBlockCaret
	}
}
