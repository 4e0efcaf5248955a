// Package braces adds or removes braces per option policy, converting
// between virtual and real brace chunks.
// Virtual braces were inserted uniformly by internal/bracecleanup;
// this pass is where that uniform representation splits back out into
// what the user actually asked for.
package braces

import (
	"github.com/cwbudde/go-uncgo/internal/chunk"
	"github.com/cwbudde/go-uncgo/internal/format"
	"github.com/cwbudde/go-uncgo/internal/options"
)

type Pass struct{}

func (Pass) Name() string { return "braces" }

func (p Pass) Run(ctx *format.Context) error {
	markOneLiners(ctx.List, ctx.Opts)
	materializeOrElide(ctx.List, ctx.Opts)
	removeBraces(ctx.List, ctx.Opts, ctx)
	addLongCloseBraceComments(ctx.List, ctx.Opts)
	return nil
}

// policyFor maps a control-flow introducer kind to the option
// governing whether its body gets real braces.
func policyFor(opts *options.Set, introducer chunk.Kind) (options.IARF, bool) {
	switch introducer {
	case chunk.KwIf, chunk.KwElse, chunk.KwElseif:
		return opts.ARF("mod_full_brace_if"), true
	case chunk.KwFor, chunk.KwForeach:
		return opts.ARF("mod_full_brace_for"), true
	case chunk.KwWhile:
		return opts.ARF("mod_full_brace_while"), true
	case chunk.KwDo:
		return opts.ARF("mod_full_brace_do"), true
	}
	return options.Ignore, false
}

// materializeOrElide turns each VbraceOpen/VbraceClose pair into a
// real BraceOpen/BraceClose (ADD) or leaves it virtual (REMOVE,
// IGNORE). It never touches real brace pairs; converting those to
// virtual under REMOVE is removeBraces' job.
func materializeOrElide(list *chunk.List, opts *options.Set) {
	keepSingleLine := opts.Bool("mod_full_brace_single_line")
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind != chunk.VbraceOpen {
			continue
		}
		introducer := findIntroducer(c)
		policy, ok := policyFor(opts, introducer)
		if !ok || policy != options.Add {
			continue
		}
		closeV := matchingVbraceClose(c)
		if closeV == nil {
			continue
		}
		c.Kind = chunk.BraceOpen
		c.Str = "{"
		closeV.Kind = chunk.BraceClose
		closeV.Str = "}"
		if !keepSingleLine {
			// The freshly braced body must move onto its own lines.
			for m := c; m != nil; m = chunk.Next(m) {
				m.Flags = m.Flags.Clear(chunk.OneLiner)
				if m == closeV {
					break
				}
			}
		}
	}
}

func matchingVbraceClose(open *chunk.Chunk) *chunk.Chunk {
	depth := 0
	for c := chunk.Next(open); c != nil; c = chunk.Next(c) {
		switch c.Kind {
		case chunk.VbraceOpen, chunk.BraceOpen:
			depth++
		case chunk.VbraceClose, chunk.BraceClose:
			if depth == 0 {
				return c
			}
			depth--
		}
	}
	return nil
}

// findIntroducer walks backward from a virtual brace open to the
// control-flow keyword that owns it (skipping a statement-paren
// group, if any).
func findIntroducer(open *chunk.Chunk) chunk.Kind {
	prev := chunk.PrevNCNNL(open, chunk.ScopeAll)
	if prev == nil {
		return chunk.Unknown
	}
	if prev.Kind == chunk.SparenClose {
		matchOpen := chunk.SkipToMatch(prev, chunk.ScopeAll)
		if matchOpen != nil {
			kw := chunk.PrevNCNNL(matchOpen, chunk.ScopeAll)
			if kw != nil {
				return kw.Kind
			}
		}
		return chunk.Unknown
	}
	return prev.Kind
}

// removeBraces converts a real brace pair around a single-statement
// control body back into a virtual pair when the governing option is
// REMOVE. The body must not be inside a preprocessor run, must hold
// exactly one statement with no nested braces and no variable
// definitions, must not create an if/else ambiguity, and must span no
// more newlines than mod_full_brace_nl allows (0 = no limit).
func removeBraces(list *chunk.List, opts *options.Set, ctx *format.Context) {
	nlLimit := int(opts.UInt("mod_full_brace_nl"))
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind != chunk.BraceOpen {
			continue
		}
		policy, ok := policyFor(opts, c.PKind)
		if !ok || policy != options.Remove {
			continue
		}
		if c.Flags.Has(chunk.InPreproc) || c.Flags.Has(chunk.KeepBrace) {
			continue
		}
		close_ := matchingVbraceClose(c)
		if close_ == nil {
			continue
		}
		if !removableBody(c, close_, nlLimit) {
			continue
		}
		c.Kind = chunk.VbraceOpen
		c.Str = ""
		close_.Kind = chunk.VbraceClose
		close_.Str = ""
		ctx.IncChanges()
	}
}

// removableBody mirrors the conditions removeBraces enforces, so the
// checker and the rewriter always agree.
func removableBody(open, close_ *chunk.Chunk, nlLimit int) bool {
	stmts := 0
	newlines := 0
	for c := chunk.Next(open); c != nil && c != close_; c = chunk.Next(c) {
		switch {
		case c.Kind == chunk.BraceOpen || c.Kind == chunk.VbraceOpen:
			return false
		case c.Flags.Has(chunk.VarDef):
			return false
		case c.Kind == chunk.KwIf || c.Kind == chunk.KwElse:
			// unbracing would attach a dangling else to the wrong if
			return false
		case c.IsNewline():
			newlines += c.NLCount
		case c.Kind == chunk.Semicolon || c.Kind == chunk.Vsemicolon:
			stmts++
		}
	}
	if stmts != 1 {
		return false
	}
	return nlLimit == 0 || newlines <= nlLimit
}

// addLongCloseBraceComments synthesizes a trailing comment naming the
// construct after a close brace whose pair spans more newlines than
// the mod_add_long_*_closebrace_comment threshold.
func addLongCloseBraceComments(list *chunk.List, opts *options.Set) {
	fnLimit := int(opts.UInt("mod_add_long_function_closebrace_comment"))
	nsLimit := int(opts.UInt("mod_add_long_namespace_closebrace_comment"))
	if fnLimit == 0 && nsLimit == 0 {
		return
	}
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind != chunk.BraceOpen {
			continue
		}
		var limit int
		var label string
		switch {
		case c.PKind == chunk.KwNamespace && nsLimit > 0:
			limit = nsLimit
			label = "namespace " + namespaceName(c)
		case fnLimit > 0 && functionName(c) != "":
			limit = fnLimit
			label = functionName(c)
		default:
			continue
		}
		close_ := matchingVbraceClose(c)
		if close_ == nil {
			continue
		}
		if spanNewlines(c, close_) <= limit {
			continue
		}
		next := chunk.NextNC(close_, chunk.ScopeAll)
		if next != nil && next.Kind.IsComment() {
			continue // already annotated
		}
		cmt := chunk.New(chunk.Comment, "/* "+label+" */", chunk.Position{Line: close_.OrigLine, Col: close_.OrigEnd})
		cmt.Flags = cmt.Flags.Set(chunk.RightComment | chunk.Inserted)
		list.AddAfter(cmt, close_)
	}
}

func spanNewlines(open, close_ *chunk.Chunk) int {
	n := 0
	for c := chunk.Next(open); c != nil && c != close_; c = chunk.Next(c) {
		if c.IsNewline() {
			n += c.NLCount
		}
	}
	return n
}

func namespaceName(open *chunk.Chunk) string {
	name := chunk.PrevNCNNL(open, chunk.ScopeAll)
	if name != nil && (name.Kind == chunk.Word || name.Kind == chunk.Type) {
		return name.Str
	}
	return ""
}

// functionName walks back from a function body's open brace to the
// FuncDef/FuncClassDef chunk that owns it, or "" when the brace does
// not belong to a function definition.
func functionName(open *chunk.Chunk) string {
	prev := chunk.PrevNCNNL(open, chunk.ScopeAll)
	if prev == nil || (prev.Kind != chunk.FparenClose && prev.Kind != chunk.ParenClose) {
		return ""
	}
	parenOpen := chunk.SkipToMatch(prev, chunk.ScopeAll)
	if parenOpen == nil {
		return ""
	}
	name := chunk.PrevNCNNL(parenOpen, chunk.ScopeAll)
	if name == nil {
		return ""
	}
	switch name.Kind {
	case chunk.FuncDef, chunk.FuncClassDef, chunk.Destructor:
		return name.Str
	}
	return ""
}

// markOneLiners sets the OneLiner flag on any brace pair whose every
// interior chunk started on the opening brace's original source line,
// so no later pass breaks the pair without an explicit override.
func markOneLiners(list *chunk.List, opts *options.Set) {
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind != chunk.BraceOpen && c.Kind != chunk.VbraceOpen {
			continue
		}
		close_ := matchingVbraceClose(c)
		if close_ == nil {
			continue
		}
		allSameLine := true
		for inner := chunk.Next(c); inner != nil && inner != close_; inner = chunk.Next(inner) {
			if inner.OrigLine != c.OrigLine {
				allSameLine = false
				break
			}
		}
		if allSameLine {
			for m := c; m != nil; m = chunk.Next(m) {
				m.Flags = m.Flags.Set(chunk.OneLiner)
				if m == close_ {
					break
				}
			}
			if c.Next() == close_ {
				c.Flags = c.Flags.Set(chunk.EmptyBody)
				close_.Flags = close_.Flags.Set(chunk.EmptyBody)
			}
		}
	}
}

var _ format.Pass = Pass{}
