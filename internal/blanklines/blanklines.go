// Package blanklines normalizes runs of blank lines against
// context-specific maxima and the eat-blanks-near-braces policies.
// It runs after internal/newlines so every newline opportunity it
// cares about has already been resolved to at least the minimum the
// newline pass requires.
package blanklines

import (
	"github.com/cwbudde/go-uncgo/internal/chunk"
	"github.com/cwbudde/go-uncgo/internal/format"
	"github.com/cwbudde/go-uncgo/internal/options"
)

type Pass struct{}

func (Pass) Name() string { return "blank-lines" }

func (p Pass) Run(ctx *format.Context) error {
	capRuns(ctx.List, ctx.Opts)
	eatNearBraces(ctx.List, ctx.Opts)
	if ctx.Opts.Bool("nl_squeeze_ifdef") {
		squeezeIfdef(ctx.List)
	}
	if min := ctx.Opts.UInt("nl_after_func_body"); min > 0 {
		ensureAfterFuncBody(ctx.List, int(min))
	}
	if min := ctx.Opts.UInt("nl_before_block_comment"); min > 0 {
		ensureBeforeBlockComment(ctx.List, int(min))
	}
	return nil
}

// runLength sums the newline count of the maximal Newline-chunk run
// starting at c (a single chunk may carry a multi-line run in NLCount).
func runLength(c *chunk.Chunk) (total int, last *chunk.Chunk) {
	last = c
	for n := c; n != nil && n.Kind == chunk.Newline; n = n.Next() {
		count := n.NLCount
		if count < 1 {
			count = 1
		}
		total += count
		last = n
	}
	return total, last
}

// clampRun rewrites the Newline run starting at c to exactly want
// newlines: the first chunk keeps the whole count, the rest go.
func clampRun(list *chunk.List, c *chunk.Chunk, want int) {
	if want < 1 {
		want = 1
	}
	c.NLCount = want
	n := c.Next()
	for n != nil && n.Kind == chunk.Newline {
		next := n.Next()
		list.Del(n)
		n = next
	}
}

// capRuns clamps every blank-line run to at most nl_max blank lines
// (nl_max+1 newlines), when nl_max > 0.
func capRuns(list *chunk.List, opts *options.Set) {
	max := int(opts.UInt("nl_max"))
	if max == 0 {
		return
	}
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind != chunk.Newline {
			continue
		}
		total, last := runLength(c)
		if total > max+1 {
			clampRun(list, c, max+1)
		}
		c = last
	}
}

// eatNearBraces removes blank lines immediately after an opening brace
// and immediately before a closing brace when the corresponding eat_*
// option is set, the same normalization applied around every brace
// pair regardless of what introduced it.
func eatNearBraces(list *chunk.List, opts *options.Set) {
	eatAfterOpen := opts.Bool("eat_blanks_after_open_brace")
	eatBeforeClose := opts.Bool("eat_blanks_before_close_brace")

	for c := list.Head(); c != nil; c = c.Next() {
		switch c.Kind {
		case chunk.BraceOpen:
			if eatAfterOpen {
				if n := c.Next(); n != nil && n.Kind == chunk.Newline {
					clampRun(list, n, 1)
				}
			}
		case chunk.BraceClose:
			if eatBeforeClose {
				if p := firstOfRunBefore(c); p != nil {
					clampRun(list, p, 1)
				}
			}
		}
	}
}

// firstOfRunBefore walks back from c to the first Newline chunk of the
// run that immediately precedes it, or nil when no newline does.
func firstOfRunBefore(c *chunk.Chunk) *chunk.Chunk {
	p := c.Prev()
	if p == nil || p.Kind != chunk.Newline {
		return nil
	}
	for p.Prev() != nil && p.Prev().Kind == chunk.Newline {
		p = p.Prev()
	}
	return p
}

// squeezeIfdef collapses blank lines touching a preprocessor
// conditional: the runs directly before a #if/#else and directly after
// an #else/#endif shrink to a single newline.
func squeezeIfdef(list *chunk.List) {
	for c := list.Head(); c != nil; c = c.Next() {
		switch c.Kind {
		case chunk.PPIf, chunk.PPElse:
			if p := firstOfRunBefore(c); p != nil {
				clampRun(list, p, 1)
			}
		}
		switch c.Kind {
		case chunk.PPElse, chunk.PPEndif:
			if !c.Flags.Has(chunk.WFEndif) && c.Kind == chunk.PPEndif {
				continue
			}
			if n := c.Next(); n != nil && n.Kind == chunk.Newline {
				clampRun(list, n, 1)
			}
		}
	}
}

// ensureAfterFuncBody guarantees at least min newlines after the close
// brace of a function body, so consecutive definitions stay visually
// separated.
func ensureAfterFuncBody(list *chunk.List, min int) {
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind != chunk.BraceClose || c.BraceLevel != 0 || c.PKind != chunk.Unknown {
			continue
		}
		open := chunk.SkipToMatch(c, chunk.ScopeAll)
		if open == nil || !isFunctionBodyOpen(open) {
			continue
		}
		n := c.Next()
		if n == nil {
			continue // end of file; nl_end_of_file owns the tail
		}
		if n.Kind != chunk.Newline {
			continue
		}
		total, last := runLength(n)
		if next := last.Next(); next == nil || next.Kind == chunk.EOF {
			continue // nothing follows; nl_end_of_file owns the tail
		}
		if total < min {
			n.NLCount += min - total
		}
	}
}

func isFunctionBodyOpen(open *chunk.Chunk) bool {
	prev := chunk.PrevNCNNL(open, chunk.ScopeAll)
	return prev != nil && (prev.Kind == chunk.FparenClose || prev.Kind == chunk.ParenClose)
}

// ensureBeforeBlockComment guarantees at least min newlines before a
// block comment that starts its own line.
func ensureBeforeBlockComment(list *chunk.List, min int) {
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind != chunk.CommentMulti {
			continue
		}
		p := firstOfRunBefore(c)
		if p == nil {
			continue // trailing comment, not a line-leading one
		}
		if p.Prev() == nil {
			continue // start of file
		}
		total, _ := runLength(p)
		if total < min {
			p.NLCount += min - total
		}
	}
}

var _ format.Pass = Pass{}
