package newlines_test

import (
	"testing"

	"github.com/cwbudde/go-uncgo/internal/chunk"
	"github.com/cwbudde/go-uncgo/internal/format"
	"github.com/cwbudde/go-uncgo/internal/lang"
	"github.com/cwbudde/go-uncgo/internal/newlines"
	"github.com/cwbudde/go-uncgo/internal/options"
)

func TestForceNewlineAfterOpenBrace(t *testing.T) {
	list := chunk.NewList()
	open := chunk.New(chunk.BraceOpen, "{", chunk.Position{Line: 1, Col: 1})
	body := chunk.New(chunk.Word, "x", chunk.Position{Line: 1, Col: 2})
	list.AddTail(open)
	list.AddTail(body)

	ctx := format.NewContext(list, options.NewDefaultSet(), lang.C, "", nil)
	if err := (newlines.Pass{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if n := open.Next(); n == nil || !n.IsNewline() {
		t.Fatal("expected a forced newline immediately after the open brace")
	}
}

func TestOneLinerBraceKeepsNoNewline(t *testing.T) {
	list := chunk.NewList()
	open := chunk.New(chunk.BraceOpen, "{", chunk.Position{Line: 1, Col: 1})
	open.Flags = open.Flags.Set(chunk.OneLiner)
	body := chunk.New(chunk.Word, "x", chunk.Position{Line: 1, Col: 2})
	close_ := chunk.New(chunk.BraceClose, "}", chunk.Position{Line: 1, Col: 3})
	close_.Flags = close_.Flags.Set(chunk.OneLiner)
	list.AddTail(open)
	list.AddTail(body)
	list.AddTail(close_)

	ctx := format.NewContext(list, options.NewDefaultSet(), lang.C, "", nil)
	if err := (newlines.Pass{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if n := open.Next(); n != body {
		t.Fatal("a OneLiner brace should not have a newline forced after it")
	}
}

func TestEndOfFileNewlineForced(t *testing.T) {
	list := chunk.NewList()
	last := chunk.New(chunk.Semicolon, ";", chunk.Position{Line: 1, Col: 1})
	list.AddTail(last)

	ctx := format.NewContext(list, options.NewDefaultSet(), lang.C, "", nil)
	if err := (newlines.Pass{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if n := list.Tail(); n == nil || !n.IsNewline() {
		t.Fatal("nl_end_of_file defaults to force; expected a trailing newline")
	}
}

func TestRemoveCollapsesBraceElseRun(t *testing.T) {
	list := chunk.NewList()
	close_ := chunk.New(chunk.BraceClose, "}", chunk.Position{Line: 1, Col: 1})
	nl := chunk.New(chunk.Newline, "\n", chunk.Position{Line: 1, Col: 2})
	nl.NLCount = 1
	elseKw := chunk.New(chunk.KwElse, "else", chunk.Position{Line: 2, Col: 1})
	list.AddTail(close_)
	list.AddTail(nl)
	list.AddTail(elseKw)

	ctx := format.NewContext(list, options.NewDefaultSet(), lang.C, "", nil)
	if err := (newlines.Pass{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if n := close_.Next(); n != elseKw {
		t.Fatal("nl_brace_else defaults to remove; expected '} else' to collapse onto one line")
	}
}
