// Package newlines applies the IARF newline policy at every
// configurable "newline opportunity" between adjacent non-whitespace
// chunks.
package newlines

import (
	"github.com/cwbudde/go-uncgo/internal/chunk"
	"github.com/cwbudde/go-uncgo/internal/format"
	"github.com/cwbudde/go-uncgo/internal/options"
)

type Pass struct{}

func (Pass) Name() string { return "newlines" }

func (p Pass) Run(ctx *format.Context) error {
	list := ctx.List
	opts := ctx.Opts

	for c := list.Head(); c != nil; c = c.Next() {
		switch {
		case c.Kind == chunk.BraceOpen || c.Kind == chunk.VbraceOpen:
			applyAfterOpenBrace(list, c, opts)
		case c.Kind == chunk.KwElse:
			applyBeforeElse(list, c, opts)
		case c.Kind == chunk.KwIf:
			applyAfterSparenBeforeBrace(list, c, opts.ARF("nl_if_brace"))
		case c.Kind == chunk.FparenClose && followedByFuncDefBrace(c):
			apply(list, c, opts.ARF("nl_func_def_start"))
		case c.Kind == chunk.FparenClose && followedByCallBrace(c):
			apply(list, c, opts.ARF("nl_fcall_brace"))
		case c.Kind == chunk.FuncDef:
			applyFuncDefArgs(list, c, opts)
		case c.Kind == chunk.KwEnum:
			applyAfterSparenBeforeBrace(list, c, opts.ARF("nl_enum_brace"))
		}
	}

	applyEndOfFile(list, opts)
	return nil
}

// followedByCallBrace reports a call's close paren directly followed
// by an open brace (a call taking a braced initializer/closure-style
// argument in the languages that allow it).
func followedByCallBrace(fparenClose *chunk.Chunk) bool {
	open := chunk.SkipToMatch(fparenClose, chunk.ScopeAll)
	if open == nil {
		return false
	}
	name := chunk.PrevNCNNL(open, chunk.ScopeAll)
	if name == nil || name.Kind != chunk.FuncCall {
		return false
	}
	after := chunk.NextNCNNL(fparenClose, chunk.ScopeAll)
	return after != nil && after.Kind == chunk.BraceOpen
}

// applyFuncDefArgs applies nl_func_def_args to each comma of a
// definition's parameter list and nl_func_def_end before the closing
// paren.
func applyFuncDefArgs(list *chunk.List, def *chunk.Chunk, opts *options.Set) {
	open := chunk.NextNC(def, chunk.ScopeAll)
	if open == nil || open.Kind != chunk.FparenOpen {
		return
	}
	close_ := chunk.SkipToMatch(open, chunk.ScopeAll)
	if close_ == nil {
		return
	}
	argPolicy := opts.ARF("nl_func_def_args")
	if argPolicy != options.Ignore {
		for c := chunk.Next(open); c != nil && c != close_; c = chunk.Next(c) {
			if c.Kind == chunk.Comma && c.Level == open.Level+1 {
				apply(list, c, argPolicy)
			}
		}
	}
	if endPolicy := opts.ARF("nl_func_def_end"); endPolicy != options.Ignore {
		prev := chunk.PrevNC(close_, chunk.ScopeAll)
		if prev != nil && prev != open {
			apply(list, prev, endPolicy)
		}
	}
}

// apply enforces a single IARF decision on the newline run (if any)
// immediately after a (a comment right after a is not skipped): Force ensures
// at least one Newline chunk exists, Remove deletes every Newline chunk
// between them, Add behaves like Force only when none exists already,
// Ignore leaves the run untouched.
func apply(list *chunk.List, a *chunk.Chunk, policy options.IARF) {
	if policy == options.Ignore {
		return
	}
	b := a.Next()
	if b == nil {
		if policy == options.Force || policy == options.Add {
			nl := chunk.New(chunk.Newline, "\n", chunk.Position{Line: a.OrigLine, Col: a.OrigEnd})
			nl.NLCount = 1
			list.AddAfter(nl, a)
		}
		return
	}

	hasNL := false
	cursor := b
	for cursor != nil && cursor.IsNewline() {
		hasNL = true
		if policy == options.Remove {
			next := cursor.Next()
			list.Del(cursor)
			cursor = next
			continue
		}
		cursor = cursor.Next()
	}

	if (policy == options.Force || policy == options.Add) && !hasNL {
		nl := chunk.New(chunk.Newline, "\n", chunk.Position{Line: a.OrigLine, Col: a.OrigEnd})
		nl.NLCount = 1
		list.AddAfter(nl, a)
	}
}

func applyAfterOpenBrace(list *chunk.List, open *chunk.Chunk, opts *options.Set) {
	if open.Flags.Has(chunk.OneLiner) {
		return
	}
	apply(list, open, options.Force)
}

func applyBeforeElse(list *chunk.List, elseKw *chunk.Chunk, opts *options.Set) {
	prev := chunk.PrevNCNNL(elseKw, chunk.ScopeAll)
	if prev == nil || (prev.Kind != chunk.BraceClose && prev.Kind != chunk.VbraceClose) {
		return
	}
	// "cuddled" `} else` policy: collapse or force the run between the
	// close brace and else.
	policy := opts.ARF("nl_brace_else")
	if policy == options.Ignore {
		policy = opts.ARF("nl_else_brace")
	}
	apply(list, prev, policy)
}

func applyAfterSparenBeforeBrace(list *chunk.List, kw *chunk.Chunk, policy options.IARF) {
	sparenOpen := chunk.NextNC(kw, chunk.ScopeAll)
	if sparenOpen == nil || sparenOpen.Kind != chunk.SparenOpen {
		return
	}
	close_ := chunk.SkipToMatch(sparenOpen, chunk.ScopeAll)
	if close_ == nil {
		return
	}
	apply(list, close_, policy)
}

func followedByFuncDefBrace(fparenClose *chunk.Chunk) bool {
	after := chunk.NextNCNNL(fparenClose, chunk.ScopeAll)
	return after != nil && (after.Kind == chunk.BraceOpen || after.Kind == chunk.VbraceOpen)
}

// applyEndOfFile enforces nl_end_of_file: the last real chunk in the
// list is followed by exactly one Newline.
func applyEndOfFile(list *chunk.List, opts *options.Set) {
	policy := opts.ARF("nl_end_of_file")
	if policy == options.Ignore {
		return
	}
	last := list.Tail()
	for last != nil && (last.Kind == chunk.Newline || last.Kind == chunk.EOF) {
		last = last.Prev()
	}
	if last == nil {
		return
	}
	apply(list, last, policy)
}

var _ format.Pass = Pass{}
