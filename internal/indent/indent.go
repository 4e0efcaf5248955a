// Package indent assigns each line's leading column via a stack of
// open indent frames. It runs inside the indent<->width fixed-point
// loop internal/format's top-level driver owns: indent fixes Column
// on the first chunk of every line; width may re-break a line, which
// changes how many lines there are to indent, so the loop re-runs
// indent after every width pass until nothing changes or the cap is
// hit.
package indent

import (
	"github.com/cwbudde/go-uncgo/internal/chunk"
	"github.com/cwbudde/go-uncgo/internal/format"
	"github.com/cwbudde/go-uncgo/internal/options"
)

type Pass struct{}

func (Pass) Name() string { return "indent" }

// frame is one entry of the indent-frame stack: what opened it, the
// construct it belongs to, and the columns new lines inside it start
// at. openCol remembers the indent of the opener's own line so the
// matching closer returns there.
type frame struct {
	kind    chunk.Kind
	pkind   chunk.Kind
	openCol int
	bodyCol int
	caseCol int
}

func (p Pass) Run(ctx *format.Context) error {
	indentWidth := int(ctx.Opts.UInt("indent_columns"))
	if indentWidth <= 0 {
		indentWidth = 4
	}
	contIndent := int(ctx.Opts.UInt("indent_continue"))
	if contIndent <= 0 {
		contIndent = indentWidth
	}
	switchIndent := int(ctx.Opts.UInt("indent_switch_case"))
	labelCol := int(ctx.Opts.Int("indent_label"))
	accessCol := int(ctx.Opts.Int("indent_access_spec"))
	nsIndent := ctx.Opts.Bool("indent_namespace")
	classIndent := ctx.Opts.Bool("indent_class")
	ppIndent := ctx.Opts.ARF("pp_indent")

	base := 0
	if ctx.Opts.Bool("frag") {
		// Fragment input: the first line's original indent is the base
		// every computed column shifts by.
		if first := ctx.List.Head(); first != nil && first.OrigCol > 1 {
			base = first.OrigCol - 1
		}
	}
	stack := []frame{{openCol: base, bodyCol: base, caseCol: base}}

	list := ctx.List
	atLineStart := true
	lineCol := 0
	for c := list.Head(); c != nil; c = c.Next() {
		if c.IsNewline() {
			atLineStart = true
			continue
		}
		if c.IsBlank() {
			// Virtual braces/semicolons are invisible: they adjust the
			// frame stack below but never begin a visible line.
			p.adjustFrames(&stack, c, lineCol, indentWidth, contIndent, switchIndent, nsIndent, classIndent)
			continue
		}

		if atLineStart {
			lineCol = p.lineColumn(stack, c, contIndent, labelCol, accessCol, ppIndent)
			if c.Column != lineCol {
				c.Column = lineCol
				ctx.IncChanges()
			}
			atLineStart = false
		}

		p.adjustFrames(&stack, c, lineCol, indentWidth, contIndent, switchIndent, nsIndent, classIndent)
	}
	return nil
}

// lineColumn computes the target column of the first visible chunk on
// a line from the current frame stack plus the per-construct policies.
func (p Pass) lineColumn(stack []frame, c *chunk.Chunk, contIndent, labelCol, accessCol int, ppIndent options.IARF) int {
	top := stack[len(stack)-1]

	switch {
	case c.Kind.IsPreproc() || c.Flags.Has(chunk.InPreproc):
		// The '#' column is independent of code indent; the default
		// keeps every directive hard against column 1.
		if ppIndent == options.Add || ppIndent == options.Force {
			return top.bodyCol
		}
		return 0

	case c.Kind == chunk.BraceOpen:
		// A '{' opening its own line sits at the enclosing body indent.
		return top.bodyCol

	case c.Kind == chunk.BraceClose:
		return top.openCol

	case c.Kind == chunk.KwCase, c.Kind == chunk.KwDefault:
		return caseColumn(stack)

	case c.Kind == chunk.Label:
		if labelCol > 0 {
			return labelCol - 1
		}
		return top.bodyCol + labelCol

	case c.Kind == chunk.KwPublic, c.Kind == chunk.KwPrivate, c.Kind == chunk.KwProtected:
		next := chunk.NextNCNNL(c, chunk.ScopeAll)
		if next != nil && next.Kind == chunk.PrivateColon {
			// indent_access_spec is relative to the class brace's own
			// indent, so a default of 1 nudges `public:` one column in.
			col := top.openCol + accessCol
			if col < 0 {
				col = 0
			}
			return col
		}
		return top.bodyCol

	case c.Kind.IsComment():
		return top.bodyCol

	case c.Flags.Has(chunk.StmtStart):
		return top.bodyCol

	default:
		// Second and later lines of a statement: continuation indent,
		// unless an open paren frame already set a deeper column.
		if top.kind == chunk.ParenOpen || top.kind == chunk.SparenOpen ||
			top.kind == chunk.FparenOpen || top.kind == chunk.TparenOpen ||
			top.kind == chunk.SquareOpen {
			return top.bodyCol
		}
		return top.bodyCol + contIndent
	}
}

// caseColumn finds the nearest enclosing switch frame's case column;
// when no switch is open (malformed input) the innermost body column
// is the fallback.
func caseColumn(stack []frame) int {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].pkind == chunk.KwSwitch {
			return stack[i].caseCol
		}
	}
	return stack[len(stack)-1].bodyCol
}

// adjustFrames pushes/pops indent frames as openers and closers go by.
func (p Pass) adjustFrames(stack *[]frame, c *chunk.Chunk, lineCol, indentWidth, contIndent, switchIndent int, nsIndent, classIndent bool) {
	switch c.Kind {
	case chunk.BraceOpen, chunk.VbraceOpen:
		f := frame{kind: c.Kind, pkind: c.PKind, openCol: lineCol}
		switch {
		case c.PKind == chunk.KwSwitch:
			f.caseCol = lineCol + switchIndent
			f.bodyCol = f.caseCol + indentWidth
		case c.PKind == chunk.KwNamespace && !nsIndent:
			f.bodyCol = lineCol
		case c.PKind == chunk.KwClass && !classIndent:
			f.bodyCol = lineCol
		default:
			f.bodyCol = lineCol + indentWidth
		}
		*stack = append(*stack, f)

	case chunk.BraceClose, chunk.VbraceClose:
		popTo(stack, chunk.BraceOpen, chunk.VbraceOpen)

	case chunk.ParenOpen, chunk.SparenOpen, chunk.FparenOpen, chunk.TparenOpen, chunk.SquareOpen:
		*stack = append(*stack, frame{kind: c.Kind, openCol: lineCol, bodyCol: lineCol + contIndent})

	case chunk.ParenClose, chunk.SparenClose, chunk.FparenClose, chunk.TparenClose, chunk.SquareClose:
		popTo(stack, chunk.ParenOpen, chunk.SparenOpen, chunk.FparenOpen, chunk.TparenOpen, chunk.SquareOpen)
	}
}

// popTo removes the innermost frame whose kind matches one of want,
// tolerating unbalanced input by leaving the stack alone when nothing
// matches.
func popTo(stack *[]frame, want ...chunk.Kind) {
	s := *stack
	for i := len(s) - 1; i >= 1; i-- {
		for _, w := range want {
			if s[i].kind == w {
				*stack = append(s[:i], s[i+1:]...)
				return
			}
		}
	}
}

var _ format.Pass = Pass{}
