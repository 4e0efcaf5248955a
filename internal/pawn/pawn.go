// Package pawn implements the Pawn-specific virtual-semicolon pass:
// Pawn statements are newline-terminated unless a continuation is
// syntactically obvious, so a Vsemicolon sentinel is inserted at each
// statement boundary and later passes treat it exactly like a real
// Semicolon.
package pawn

import (
	"github.com/cwbudde/go-uncgo/internal/chunk"
	"github.com/cwbudde/go-uncgo/internal/format"
	"github.com/cwbudde/go-uncgo/internal/lang"
)

type Pass struct{}

func (Pass) Name() string { return "pawn" }

func (p Pass) Run(ctx *format.Context) error {
	if !ctx.Lang.Has(lang.Pawn) {
		return nil
	}
	insertVsemicolons(ctx.List, ctx.Opts.Bool("pawn_semicolon"))
	scrubRedundant(ctx.List)
	return nil
}

// continuationEnders are chunk kinds after which a newline does NOT
// end a Pawn statement: the line obviously continues (open
// brackets/operators/comma, or a still-open nesting level).
func continuationEnders(c *chunk.Chunk) bool {
	switch c.Kind {
	case chunk.ParenOpen, chunk.SquareOpen, chunk.BraceOpen, chunk.Comma,
		chunk.Arith, chunk.Assign, chunk.Compare, chunk.BoolOp, chunk.Question, chunk.CondColon,
		chunk.Member, chunk.Deref, chunk.Addr:
		return true
	}
	return false
}

// insertVsemicolons adds a terminator sentinel at each statement end.
// With literal set (pawn_semicolon), the sentinel carries a real ";"
// so the output pass emits it.
func insertVsemicolons(list *chunk.List, literal bool) {
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind != chunk.Newline {
			continue
		}
		prev := chunk.PrevNC(c, chunk.ScopeAll)
		if prev == nil || continuationEnders(prev) {
			continue
		}
		if prev.Kind == chunk.Semicolon || prev.Kind == chunk.Vsemicolon ||
			prev.Kind == chunk.BraceClose || prev.Kind == chunk.VbraceClose {
			continue
		}
		if prev.Level > prev.BraceLevel {
			// still inside an open () or [] spanning lines; brace
			// nesting alone doesn't continue a statement
			continue
		}
		if next := chunk.NextNNL(c, chunk.ScopeAll); next != nil && next.Kind == chunk.BraceOpen {
			// function/struct header line: the body brace follows
			continue
		}
		vsemi := chunk.NewVirtual(chunk.Vsemicolon, chunk.Position{Line: prev.OrigLine, Col: prev.OrigEnd})
		if literal {
			vsemi.Str = ";"
		}
		vsemi.Level = prev.Level
		vsemi.BraceLevel = prev.BraceLevel
		list.AddAfter(vsemi, prev)
	}
}

// scrubRedundant removes a Vsemicolon immediately followed by a real
// Semicolon or another Vsemicolon once newlines have been normalized,
// and one sitting right after the close brace of a control body
// (if/else/switch/case/while-of-do), where Pawn needs no terminator.
func scrubRedundant(list *chunk.List) {
	for c := list.Head(); c != nil; {
		next := c.Next()
		if c.Kind == chunk.Vsemicolon {
			after := chunk.NextNCNNL(c, chunk.ScopeAll)
			if after != nil && (after.Kind == chunk.Semicolon || after.Kind == chunk.Vsemicolon) {
				list.Del(c)
			} else if prev := chunk.PrevNCNNL(c, chunk.ScopeAll); prev != nil &&
				prev.Kind == chunk.BraceClose && controlParent(prev.PKind) {
				list.Del(c)
			}
		}
		c = next
	}
}

func controlParent(k chunk.Kind) bool {
	switch k {
	case chunk.KwIf, chunk.KwElse, chunk.KwElseif, chunk.KwSwitch,
		chunk.KwCase, chunk.KwWhile, chunk.KwFor:
		return true
	}
	return false
}

var _ format.Pass = Pass{}
