// Package align implements alignment runs: consecutive lines sharing
// a construct (variable declarations, assignments, trailing comments,
// enum initializers) get their shared anchor column pushed out to the
// widest line in the run. Also covers align_nl_cont (backslash
// line-continuation alignment) and align_enum_equ_span (enumerator
// '=' alignment).
package align

import (
	"github.com/cwbudde/go-uncgo/internal/chunk"
	"github.com/cwbudde/go-uncgo/internal/format"
)

type Pass struct{}

func (Pass) Name() string { return "align" }

func (p Pass) Run(ctx *format.Context) error {
	opts := ctx.Opts
	chunk.NormalizeColumns(ctx.List)
	if span := opts.UInt("align_var_def_span"); span > 0 {
		alignVarDefs(ctx.List, int(span), false)
	}
	if opts.Bool("align_func_params") {
		alignVarDefs(ctx.List, 1, true)
	}
	if span := opts.UInt("align_assign_span"); span > 0 {
		alignAssigns(ctx.List, int(span))
	}
	if span := opts.UInt("align_right_cmt_span"); span > 0 {
		alignTrailingComments(ctx.List, int(span))
	}
	if span := opts.UInt("align_enum_equ_span"); span > 0 {
		alignEnumEquals(ctx.List, int(span))
	}
	if opts.Bool("align_nl_cont") {
		alignLineContinuations(ctx.List)
	}
	return nil
}

// run groups consecutive matching lines (gap <= span blank-free lines)
// sharing an anchor chunk to align, the shape every alignment kind
// below reduces to.
type run struct {
	anchors []*chunk.Chunk
}

// collectRuns gathers pending anchors on a chunk.Stack, sequenced by
// source line; the span check compares each anchor's line with the
// last pushed line. A line that stops matching, or a gap wider than
// span, flushes the stack into a run.
func collectRuns(list *chunk.List, span int, anchorOf func(lineStart *chunk.Chunk) *chunk.Chunk) []run {
	var runs []run
	pending := chunk.NewStack()
	var lastLine int

	flush := func() {
		if pending.Len() > 1 {
			runs = append(runs, run{anchors: pending.All()})
		}
		pending = chunk.NewStack()
	}

	lineStart := list.Head()
	for lineStart != nil && lineStart.IsNewline() {
		lineStart = lineStart.Next()
	}
	for ; lineStart != nil; lineStart = nextLineStart(lineStart) {
		anchor := anchorOf(lineStart)
		if anchor == nil {
			flush()
			continue
		}
		if !pending.Empty() && lineStart.OrigLine-lastLine > span {
			flush()
		}
		pending.Push(anchor, lineStart.OrigLine)
		lastLine = lineStart.OrigLine
	}
	flush()
	return runs
}

// nextLineStart returns the first chunk of the line after c's line, or
// nil at end of list.
func nextLineStart(c *chunk.Chunk) *chunk.Chunk {
	cur := c
	for cur != nil && !cur.IsNewline() {
		cur = cur.Next()
	}
	for cur != nil && cur.IsNewline() {
		cur = cur.Next()
	}
	return cur
}

func applyRun(r run) {
	target := 0
	for _, a := range r.anchors {
		if a.Column > target {
			target = a.Column
		}
	}
	for _, a := range r.anchors {
		a.Column = target
		a.Flags = a.Flags.Set(chunk.WasAligned)
	}
}

// alignVarDefs aligns the first declarator name after a leading type
// run across consecutive declaration lines. With paramsOnly set, only
// lines inside a function definition's parameter list participate
// (align_func_params); otherwise parameter lines are skipped so the
// two alignment classes never fight over the same anchors.
func alignVarDefs(list *chunk.List, span int, paramsOnly bool) {
	runs := collectRuns(list, span, func(lineStart *chunk.Chunk) *chunk.Chunk {
		if lineStart.Flags.Has(chunk.InFcnDef) != paramsOnly {
			return nil
		}
		if lineStart.Kind != chunk.Type && lineStart.Kind != chunk.PtrType &&
			lineStart.Kind != chunk.KwConst && lineStart.Kind != chunk.KwStatic {
			return nil
		}
		for c := lineStart; c != nil && !c.IsNewline(); c = chunk.Next(c) {
			switch c.Kind {
			case chunk.Type, chunk.PtrType, chunk.KwConst, chunk.KwStatic, chunk.KwVolatile:
				continue
			case chunk.Word:
				return c
			}
			return nil
		}
		return nil
	})
	for _, r := range runs {
		applyRun(r)
	}
}

// alignAssigns aligns the `=` of consecutive simple assignment
// statements.
func alignAssigns(list *chunk.List, span int) {
	runs := collectRuns(list, span, func(lineStart *chunk.Chunk) *chunk.Chunk {
		for c := lineStart; c != nil && !c.IsNewline(); c = chunk.Next(c) {
			if c.Kind == chunk.Assign {
				return c
			}
			if c.Kind == chunk.Semicolon {
				return nil
			}
		}
		return nil
	})
	for _, r := range runs {
		applyRun(r)
	}
}

// alignTrailingComments aligns a same-line trailing // or /* */
// comment across consecutive lines.
func alignTrailingComments(list *chunk.List, span int) {
	runs := collectRuns(list, span, func(lineStart *chunk.Chunk) *chunk.Chunk {
		var last *chunk.Chunk
		for c := lineStart; c != nil && !c.IsNewline(); c = chunk.Next(c) {
			last = c
		}
		if last != nil && last.Kind.IsComment() {
			return last
		}
		return nil
	})
	for _, r := range runs {
		applyRun(r)
	}
}

// alignEnumEquals aligns the `=` of enumerator initializers inside an
// enum body.
func alignEnumEquals(list *chunk.List, span int) {
	runs := collectRuns(list, span, func(lineStart *chunk.Chunk) *chunk.Chunk {
		if !lineStart.Flags.Has(chunk.InEnum) {
			return nil
		}
		for c := lineStart; c != nil && !c.IsNewline(); c = chunk.Next(c) {
			if c.Kind == chunk.Assign {
				return c
			}
			if c.Kind == chunk.Comma {
				return nil
			}
		}
		return nil
	})
	for _, r := range runs {
		applyRun(r)
	}
}

// alignLineContinuations aligns the trailing `\` of consecutive
// backslash-continued macro lines (no span limit: the run always
// breaks naturally when a line doesn't end in NLCont).
func alignLineContinuations(list *chunk.List) {
	pending := chunk.NewStack()
	flush := func() {
		if pending.Len() > 1 {
			applyRun(run{anchors: pending.All()})
		}
		pending = chunk.NewStack()
	}
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind == chunk.NLCont {
			pending.Push(c, c.OrigLine)
			continue
		}
		if c.Kind == chunk.Newline {
			flush()
		}
	}
	flush()
}

var _ format.Pass = Pass{}
