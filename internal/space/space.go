// Package space decides, for every adjacent pair of non-whitespace
// chunks on the same line, whether a single space separates them.
// Policy is a table of (left kind, right
// kind) -> option name, consulted in order; the first matching rule
// wins. Width/indent/align run after this pass and may still shift a
// chunk's Column, but the "is there a space here at all" decision is
// made once, here.
package space

import (
	"github.com/cwbudde/go-uncgo/internal/chunk"
	"github.com/cwbudde/go-uncgo/internal/format"
	"github.com/cwbudde/go-uncgo/internal/options"
)

type Pass struct{}

func (Pass) Name() string { return "space" }

func (p Pass) Run(ctx *format.Context) error {
	list := ctx.List
	opts := ctx.Opts

	for a := list.Head(); a != nil; a = a.Next() {
		b := a.Next()
		if b == nil || a.IsNewline() || b.IsNewline() || a.Kind.IsComment() {
			continue
		}
		policy := rulePolicy(a, b, opts)
		applySpace(list, a, b, policy)
	}
	return nil
}

// rule is one (left, right) predicate pair mapped to an option name;
// rules are evaluated top to bottom and the first match wins, most
// specific first.
type rule struct {
	match  func(a, b *chunk.Chunk) bool
	option string
}

func kindIs(k chunk.Kind) func(c *chunk.Chunk) bool {
	return func(c *chunk.Chunk) bool { return c.Kind == k }
}

var rules = []rule{
	{func(a, b *chunk.Chunk) bool { return a.Kind == chunk.ParenOpen || b.Kind == chunk.ParenClose }, "sp_inside_paren"},
	{func(a, b *chunk.Chunk) bool { return a.Kind == chunk.ParenClose && b.Kind == chunk.ParenOpen }, "sp_paren_paren"},
	{func(a, b *chunk.Chunk) bool {
		return b.Kind == chunk.FparenOpen && (a.Kind == chunk.FuncDef || a.Kind == chunk.FuncClassDef ||
			a.Kind == chunk.Destructor || a.Kind == chunk.FuncProto || a.Kind == chunk.FuncClassProto)
	}, "sp_func_def_paren"},
	{func(a, b *chunk.Chunk) bool { return b.Kind == chunk.FparenOpen }, "sp_func_call_paren"},
	{func(a, b *chunk.Chunk) bool {
		return (a.Kind == chunk.KwIf || a.Kind == chunk.KwFor || a.Kind == chunk.KwWhile ||
			a.Kind == chunk.KwSwitch || a.Kind == chunk.KwCatch) && b.Kind == chunk.SparenOpen
	}, "sp_before_sparen"},
	{func(a, b *chunk.Chunk) bool { return a.Kind == chunk.SparenClose }, "sp_after_sparen"},
	{func(a, b *chunk.Chunk) bool { return a.Kind == chunk.Deref || a.Kind == chunk.Byref }, "sp_after_ptr_star"},
	{func(a, b *chunk.Chunk) bool { return b.Kind == chunk.Deref || b.Kind == chunk.Byref }, "sp_before_ptr_star"},
	{func(a, b *chunk.Chunk) bool {
		return a.Kind == chunk.BraceOpen && b.Kind == chunk.BraceClose
	}, "sp_inside_braces_empty"},
	{func(a, b *chunk.Chunk) bool { return a.Kind == chunk.BraceOpen || b.Kind == chunk.BraceClose }, "sp_inside_braces"},
	{func(a, b *chunk.Chunk) bool { return a.Kind == chunk.Assign || b.Kind == chunk.Assign }, "sp_assign"},
	{func(a, b *chunk.Chunk) bool { return a.Kind == chunk.Compare || b.Kind == chunk.Compare }, "sp_compare"},
	{func(a, b *chunk.Chunk) bool { return a.Kind == chunk.BoolOp || b.Kind == chunk.BoolOp }, "sp_bool"},
	{func(a, b *chunk.Chunk) bool { return a.Kind == chunk.Arith || b.Kind == chunk.Arith }, "sp_arith"},
}

func rulePolicy(a, b *chunk.Chunk, opts *options.Set) options.IARF {
	for _, r := range rules {
		if r.match(a, b) {
			return opts.ARF(r.option)
		}
	}
	return defaultPolicy(a, b)
}

// defaultPolicy covers every pair the rule table doesn't name
// explicitly: a space between two word-like/literal tokens, none
// around tight punctuation (`,` `;` unary ops), matching the original
// tool's built-in fallback before its configurable table applies.
func defaultPolicy(a, b *chunk.Chunk) options.IARF {
	switch {
	case b.Kind.IsComment():
		// a trailing comment keeps at least one space before it
		return options.Add
	case a.Kind == chunk.Comma, a.Kind == chunk.Semicolon,
		a.Kind == chunk.ParenOpen, b.Kind == chunk.ParenClose,
		a.Kind == chunk.SquareOpen, b.Kind == chunk.SquareClose,
		b.Kind == chunk.Comma, b.Kind == chunk.Semicolon:
		return options.Remove
	case a.Kind == chunk.Deref || a.Kind == chunk.Not || a.Kind == chunk.BitNot ||
		a.Kind == chunk.Incr || a.Kind == chunk.Decr || a.Kind == chunk.Pos || a.Kind == chunk.Neg:
		return options.Remove
	case a.Kind == chunk.Member || b.Kind == chunk.Member || a.Kind == chunk.Arrow || b.Kind == chunk.Arrow:
		return options.Remove
	case (a.Kind.IsLiteral() || a.Kind.IsKeyword()) && (b.Kind.IsLiteral() || b.Kind.IsKeyword()):
		return options.Force
	default:
		return options.Ignore
	}
}

// applySpace inserts or removes the zero-or-one-space gap between a
// and b. Since the chunk graph has no dedicated whitespace chunk
// between adjacent tokens on the same line (only Column tracks it),
// "space" here is recorded on b via a synthetic leading-space marker
// consumed by internal/output; Force/Add set it, Remove clears it, and
// Ignore leaves whatever the tokenizer originally observed.
func applySpace(list *chunk.List, a, b *chunk.Chunk, policy options.IARF) {
	switch policy {
	case options.Force, options.Add:
		b.Flags = b.Flags.Clear(chunk.NoSpaceBefore)
		b.Column = a.Column + a.Len() + 1
	case options.Remove:
		b.Flags = b.Flags.Set(chunk.NoSpaceBefore)
		b.Column = a.Column + a.Len()
	default: // Ignore: preserve whatever gap the source had
		// Chunks from different original lines only share a line now
		// because a newline was removed between them; gluing them
		// together would weld tokens the author never wrote adjacent.
		if b.OrigLine != a.OrigLine || b.OrigCol > a.OrigEnd {
			b.Flags = b.Flags.Clear(chunk.NoSpaceBefore)
			b.Column = a.Column + a.Len() + 1
		} else {
			b.Flags = b.Flags.Set(chunk.NoSpaceBefore)
			b.Column = a.Column + a.Len()
		}
	}
}

var _ format.Pass = Pass{}
