// Package width implements line-splitting at priority-ordered break
// points when a line exceeds `code_width`. It is the other half of
// the indent<->width fixed-point loop internal/format's top-level
// driver owns: indent assigns columns,
// width decides a line is still too long and inserts a break, and the
// driver re-runs indent because the break changed how many lines there
// are.
package width

import (
	"github.com/cwbudde/go-uncgo/internal/chunk"
	"github.com/cwbudde/go-uncgo/internal/format"
	"github.com/cwbudde/go-uncgo/internal/options"
)

type Pass struct{}

func (Pass) Name() string { return "width" }

func (p Pass) Run(ctx *format.Context) error {
	limit := int(ctx.Opts.UInt("code_width"))
	if limit <= 0 {
		return nil
	}
	splitFullParams := ctx.Opts.Bool("ls_func_split_full")
	chunk.NormalizeColumns(ctx.List)

	// One forward pass per Run call: a split moves the chunks after it
	// onto a new line, and the caller's indent<->width loop (bounded by
	// its iteration cap) re-runs indent and width to measure them again.
	for c := list(ctx).Head(); c != nil; c = c.Next() {
		if c.IsNewline() || c.Kind == chunk.EOF {
			continue
		}
		if c.Prev() != nil && !c.Prev().IsNewline() {
			continue // only start from the first chunk of each line
		}
		lineEnd := endOfLine(c)
		if lineEnd == nil {
			continue
		}
		endCol := lineEnd.Column + lineEnd.Len()
		if endCol <= limit {
			continue
		}
		splitLine(ctx, c, lineEnd, limit, splitFullParams)
	}
	return nil
}

func list(ctx *format.Context) *chunk.List { return ctx.List }

func endOfLine(start *chunk.Chunk) *chunk.Chunk {
	end := start
	for n := chunk.Next(end); n != nil && !n.IsNewline() && n.Kind != chunk.EOF; n = chunk.Next(end) {
		end = n
	}
	return end
}

// priority ranks break sites: lower is preferred, zero means "not a
// break site". The full tier list: `;`(1), `,`(2), boolean(3),
// compare(4), arithmetic(5), `^`(6), assign(7), string-concat(8),
// for-colon(9); sites at 20 and above (`?:`, function open paren,
// qualifier/type) are eligible only when ls_code_width is on.
func priority(c *chunk.Chunk, allowHighPriority bool) int {
	switch c.Kind {
	case chunk.Semicolon:
		return 1
	case chunk.Comma:
		return 2
	case chunk.BoolOp:
		return 3
	case chunk.Compare:
		return 4
	case chunk.Arith:
		if c.Str == "^" {
			return 6
		}
		return 5
	case chunk.Assign:
		return 7
	case chunk.String, chunk.StringMulti:
		// Adjacent literals concatenate; the seam between two is a
		// legal break site.
		if next := chunk.NextNCNNL(c, chunk.ScopeAll); next != nil &&
			(next.Kind == chunk.String || next.Kind == chunk.StringMulti) {
			return 8
		}
		return 0
	case chunk.ForColon:
		return 9
	}
	if allowHighPriority {
		switch c.Kind {
		case chunk.Question, chunk.CondColon:
			return 20
		case chunk.FparenOpen:
			return 21
		case chunk.Type, chunk.PtrType, chunk.KwConst, chunk.KwStatic, chunk.KwVolatile:
			return 25
		}
	}
	return 0
}

// splitLine finds the best break point on the line [start, lineEnd]
// (the lowest priority number among sites whose Column is within the
// limit; among equal priorities the leftmost wins) and inserts a
// newline there.
func splitLine(ctx *format.Context, start, lineEnd *chunk.Chunk, limit int, splitFullParams bool) {
	allowHigh := ctx.Opts.Bool("ls_code_width")

	var best *chunk.Chunk
	bestPriority := 1 << 30
	for c := start; c != nil; c = c.Next() {
		pr := priority(c, allowHigh)
		if pr == 0 {
			if c == lineEnd {
				break
			}
			continue
		}
		if pr < bestPriority && c.Column <= limit {
			bestPriority = pr
			best = c
		}
		if c == lineEnd {
			break
		}
	}

	if best == nil {
		return
	}

	if splitFullParams && best.Kind == chunk.FparenOpen {
		splitEveryComma(ctx, best)
		return
	}

	if breakBefore(ctx, best) {
		prev := chunk.PrevNC(best, chunk.ScopeAll)
		if prev != nil {
			insertBreakAfter(ctx, prev)
			return
		}
	}
	insertBreakAfter(ctx, best)
}

// breakBefore consults the pos_* option for the chosen break site: a
// LEAD position puts the operator at the start of the continuation
// line, so the break lands before it instead of after.
func breakBefore(ctx *format.Context, c *chunk.Chunk) bool {
	var name string
	switch c.Kind {
	case chunk.Arith:
		name = "pos_arith"
	case chunk.Assign:
		name = "pos_assign"
	case chunk.BoolOp:
		name = "pos_bool"
	default:
		return false
	}
	return ctx.Opts.Position(name) == options.PosLead
}

// splitEveryComma inserts a newline after every top-level comma inside
// the parameter list opened by open (ls_func_split_full).
func splitEveryComma(ctx *format.Context, open *chunk.Chunk) {
	close_ := chunk.SkipToMatch(open, chunk.ScopeAll)
	if close_ == nil {
		return
	}
	insertBreakAfter(ctx, open)
	for c := chunk.Next(open); c != nil && c != close_; c = chunk.Next(c) {
		if c.Kind == chunk.Comma && c.Level == open.Level+1 {
			insertBreakAfter(ctx, c)
		}
	}
}

// insertBreakAfter splices a real Newline chunk immediately after c,
// unless one is already there.
func insertBreakAfter(ctx *format.Context, c *chunk.Chunk) {
	if n := c.Next(); n != nil && n.IsNewline() {
		return
	}
	nl := chunk.New(chunk.Newline, "\n", chunk.Position{Line: c.OrigLine, Col: c.OrigEnd})
	nl.NLCount = 1
	ctx.List.AddAfter(nl, c)
	ctx.IncChanges()
}

var _ format.Pass = Pass{}
