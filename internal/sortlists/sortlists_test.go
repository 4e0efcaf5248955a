package sortlists_test

import (
	"testing"

	"github.com/cwbudde/go-uncgo/internal/chunk"
	"github.com/cwbudde/go-uncgo/internal/format"
	"github.com/cwbudde/go-uncgo/internal/lang"
	"github.com/cwbudde/go-uncgo/internal/options"
	"github.com/cwbudde/go-uncgo/internal/sortlists"
)

func preproc(text string, line int) *chunk.Chunk {
	return chunk.New(chunk.PPInclude, text, chunk.Position{Line: line, Col: 1})
}

func newline(line int) *chunk.Chunk {
	c := chunk.New(chunk.Newline, "\n", chunk.Position{Line: line, Col: 1})
	c.NLCount = 1
	return c
}

func TestSortIncludesWithinBucket(t *testing.T) {
	list := chunk.NewList()
	list.AddTail(preproc(`#include <zlib.h>`, 1))
	list.AddTail(newline(1))
	list.AddTail(preproc(`#include <alpha.h>`, 2))
	list.AddTail(newline(2))
	list.AddTail(preproc(`#include "local.h"`, 3))

	opts := options.NewDefaultSet()
	if err := opts.Set("mod_sort_include", options.Bool(true)); err != nil {
		t.Fatal(err)
	}
	ctx := format.NewContext(list, opts, lang.C, "", nil)
	if err := (sortlists.Pass{}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	var texts []string
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind == chunk.PPInclude {
			texts = append(texts, c.Str)
		}
	}
	want := []string{`#include <alpha.h>`, `#include <zlib.h>`, `#include "local.h"`}
	if len(texts) != len(want) {
		t.Fatalf("got %v, want %v", texts, want)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Errorf("position %d: got %q, want %q", i, texts[i], want[i])
		}
	}
}

func TestSortIncludesDisabledByDefault(t *testing.T) {
	list := chunk.NewList()
	list.AddTail(preproc(`#include <zlib.h>`, 1))
	list.AddTail(newline(1))
	list.AddTail(preproc(`#include <alpha.h>`, 2))

	ctx := format.NewContext(list, options.NewDefaultSet(), lang.C, "", nil)
	if err := (sortlists.Pass{}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	first := list.Head()
	if first.Str != `#include <zlib.h>` {
		t.Fatalf("mod_sort_include defaults to false; order should be unchanged, got %q first", first.Str)
	}
}
