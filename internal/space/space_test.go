package space_test

import (
	"testing"

	"github.com/cwbudde/go-uncgo/internal/chunk"
	"github.com/cwbudde/go-uncgo/internal/format"
	"github.com/cwbudde/go-uncgo/internal/lang"
	"github.com/cwbudde/go-uncgo/internal/options"
	"github.com/cwbudde/go-uncgo/internal/space"
)

func pair(a, b *chunk.Chunk) *chunk.List {
	l := chunk.NewList()
	l.AddTail(a)
	l.AddTail(b)
	return l
}

func TestNoSpaceBeforeComma(t *testing.T) {
	a := chunk.New(chunk.Word, "x", chunk.Position{Line: 1, Col: 1})
	comma := chunk.New(chunk.Comma, ",", chunk.Position{Line: 1, Col: 2})
	list := pair(a, comma)
	ctx := format.NewContext(list, options.NewDefaultSet(), lang.C, "", nil)
	if err := (space.Pass{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !comma.Flags.Has(chunk.NoSpaceBefore) {
		t.Fatal("comma should never be preceded by a space")
	}
}

func TestSpaceForcedBetweenTwoKeywords(t *testing.T) {
	a := chunk.New(chunk.KwElse, "else", chunk.Position{Line: 1, Col: 1})
	b := chunk.New(chunk.KwIf, "if", chunk.Position{Line: 1, Col: 5})
	list := pair(a, b)
	ctx := format.NewContext(list, options.NewDefaultSet(), lang.C, "", nil)
	if err := (space.Pass{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if b.Flags.Has(chunk.NoSpaceBefore) {
		t.Fatal("two adjacent keywords must keep a space between them")
	}
}

func TestSpInsideParenEmptyDefault(t *testing.T) {
	open := chunk.New(chunk.ParenOpen, "(", chunk.Position{Line: 1, Col: 1})
	close_ := chunk.New(chunk.ParenClose, ")", chunk.Position{Line: 1, Col: 2})
	list := pair(open, close_)
	ctx := format.NewContext(list, options.NewDefaultSet(), lang.C, "", nil)
	if err := (space.Pass{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !close_.Flags.Has(chunk.NoSpaceBefore) {
		t.Fatal("sp_inside_paren default is remove; empty parens should stay tight")
	}
}

func TestDerefHasNoTrailingSpace(t *testing.T) {
	// sp_after_ptr_star defaults to remove, so a dereference should
	// stay tight against its operand out of the box.
	star := chunk.New(chunk.Deref, "*", chunk.Position{Line: 1, Col: 1})
	word := chunk.New(chunk.Word, "p", chunk.Position{Line: 1, Col: 2})
	list := pair(star, word)
	ctx := format.NewContext(list, options.NewDefaultSet(), lang.C, "", nil)
	if err := (space.Pass{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !word.Flags.Has(chunk.NoSpaceBefore) {
		t.Fatal("sp_after_ptr_star=remove should suppress the space after a dereference")
	}
}
