// Package rewrite implements the semicolon/parens/returns pass family:
// stripping redundant semicolons, forcing or removing the parens
// around a `return` expression, and removing a stray semicolon right
// after an opening brace.
package rewrite

import (
	"github.com/cwbudde/go-uncgo/internal/chunk"
	"github.com/cwbudde/go-uncgo/internal/format"
	"github.com/cwbudde/go-uncgo/internal/options"
)

type Pass struct{}

func (Pass) Name() string { return "rewrite" }

func (p Pass) Run(ctx *format.Context) error {
	if ctx.Opts.Bool("mod_remove_extra_semicolon") {
		removeExtraSemicolons(ctx.List)
	}
	if ctx.Opts.Bool("mod_remove_empty_return") {
		removeEmptyReturns(ctx.List)
	}
	if ctx.Opts.Bool("mod_full_paren_if_bool") {
		fullParenConditions(ctx.List)
	}
	applyReturnParens(ctx.List, ctx.Opts)
	return nil
}

// removeEmptyReturns strips a bare `return;` whose next statement-level
// token is the function's closing brace, where falling off the end
// does the same thing.
func removeEmptyReturns(list *chunk.List) {
	for c := list.Head(); c != nil; {
		next := c.Next()
		if c.Kind == chunk.KwReturn {
			semi := chunk.NextNCNNL(c, chunk.ScopeAll)
			if semi != nil && (semi.Kind == chunk.Semicolon || semi.Kind == chunk.Vsemicolon) {
				after := chunk.NextNCNNL(semi, chunk.ScopeAll)
				if after != nil && after.Kind == chunk.BraceClose && after.PKind == chunk.Unknown {
					next = semi.Next()
					list.Del(c)
					list.Del(semi)
				}
			}
		}
		c = next
	}
}

// fullParenConditions wraps each operand of a top-level &&/|| inside
// an if/while condition in its own parens: `if (a && b > c)` becomes
// `if ((a) && (b > c))`. Operands already parenthesized are left
// alone.
func fullParenConditions(list *chunk.List) {
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind != chunk.SparenOpen {
			continue
		}
		kw := chunk.PrevNCNNL(c, chunk.ScopeAll)
		if kw == nil || (kw.Kind != chunk.KwIf && kw.Kind != chunk.KwElseif && kw.Kind != chunk.KwWhile) {
			continue
		}
		close_ := chunk.SkipToMatch(c, chunk.ScopeAll)
		if close_ == nil {
			continue
		}
		lvl := c.Level + 1

		// Segment the condition at top-level boolean operators.
		type segment struct{ start, end *chunk.Chunk }
		var segs []segment
		var anyBool bool
		segStart := chunk.NextNCNNL(c, chunk.ScopeAll)
		var last *chunk.Chunk
		for m := chunk.Next(c); m != nil && m != close_; m = chunk.Next(m) {
			if m.IsNewline() || m.Kind.IsComment() {
				continue
			}
			if m.Kind == chunk.BoolOp && m.Level == lvl {
				anyBool = true
				if segStart != nil && last != nil {
					segs = append(segs, segment{segStart, last})
				}
				segStart = chunk.NextNCNNL(m, chunk.ScopeAll)
				last = nil
				continue
			}
			last = m
		}
		if segStart != nil && last != nil {
			segs = append(segs, segment{segStart, last})
		}
		if !anyBool {
			continue
		}

		for _, s := range segs {
			if s.start == s.end && s.start.Kind == chunk.ParenOpen {
				continue
			}
			if s.start.Kind == chunk.ParenOpen && chunk.SkipToMatch(s.start, chunk.ScopeAll) == s.end {
				continue
			}
			open := chunk.New(chunk.ParenOpen, "(", chunk.Position{Line: s.start.OrigLine, Col: s.start.OrigCol})
			open.Level = s.start.Level
			open.Flags = open.Flags.Set(chunk.Inserted)
			pclose := chunk.New(chunk.ParenClose, ")", chunk.Position{Line: s.end.OrigLine, Col: s.end.OrigEnd})
			pclose.Level = s.end.Level
			pclose.Flags = pclose.Flags.Set(chunk.Inserted)
			list.AddBefore(open, s.start)
			list.AddAfter(pclose, s.end)
		}
	}
}

// removeExtraSemicolons deletes a Semicolon that immediately follows
// another Semicolon, or one that directly follows a `{` (an empty
// statement at the start of a block), since neither changes
// program meaning in any of the supported languages.
func removeExtraSemicolons(list *chunk.List) {
	for c := list.Head(); c != nil; {
		next := c.Next()
		if c.Kind != chunk.Semicolon {
			c = next
			continue
		}
		prev := chunk.PrevNCNNL(c, chunk.ScopeAll)
		if prev != nil && (prev.Kind == chunk.Semicolon || prev.Kind == chunk.BraceOpen) {
			list.Del(c)
		}
		c = next
	}
}

// applyReturnParens adds or removes the parentheses around a `return`
// expression per mod_paren_on_return.
func applyReturnParens(list *chunk.List, opts *options.Set) {
	policy := opts.ARF("mod_paren_on_return")
	if policy == options.Ignore {
		return
	}
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind != chunk.KwReturn {
			continue
		}
		next := chunk.NextNCNNL(c, chunk.ScopeAll)
		if next == nil || next.Kind == chunk.Semicolon || next.Kind == chunk.Vsemicolon {
			continue // bare `return;`
		}
		if next.Kind == chunk.ParenOpen {
			if policy == options.Remove {
				removeReturnParens(list, c, next)
			}
			continue
		}
		if policy == options.Add || policy == options.Force {
			wrapReturnExpr(list, c, next)
		}
	}
}

func removeReturnParens(list *chunk.List, _ *chunk.Chunk, open *chunk.Chunk) {
	close_ := chunk.SkipToMatch(open, chunk.ScopeAll)
	if close_ == nil {
		return
	}
	after := chunk.NextNCNNL(close_, chunk.ScopeAll)
	if after == nil || (after.Kind != chunk.Semicolon && after.Kind != chunk.Vsemicolon) {
		return // parens are load-bearing (e.g. a cast or call), leave them
	}
	list.Del(open)
	list.Del(close_)
}

func wrapReturnExpr(list *chunk.List, kwReturn, exprStart *chunk.Chunk) {
	end := findReturnExprEnd(exprStart)
	open := chunk.New(chunk.ParenOpen, "(", chunk.Position{Line: exprStart.OrigLine, Col: exprStart.OrigCol})
	close_ := chunk.New(chunk.ParenClose, ")", chunk.Position{Line: end.OrigLine, Col: end.OrigEnd})
	list.AddBefore(open, exprStart)
	list.AddAfter(close_, end)
}

func findReturnExprEnd(start *chunk.Chunk) *chunk.Chunk {
	level := start.Level
	end := start
	for c := chunk.Next(start); c != nil; c = chunk.Next(c) {
		if (c.Kind == chunk.Semicolon || c.Kind == chunk.Vsemicolon) && c.Level == level {
			break
		}
		end = c
	}
	return end
}

var _ format.Pass = Pass{}
