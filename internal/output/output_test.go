package output_test

import (
	"testing"

	"github.com/cwbudde/go-uncgo/internal/chunk"
	"github.com/cwbudde/go-uncgo/internal/output"
	"github.com/cwbudde/go-uncgo/internal/source"
)

func TestRenderBasicLine(t *testing.T) {
	list := chunk.NewList()
	a := chunk.New(chunk.Word, "int", chunk.Position{Line: 1, Col: 1})
	a.Column = 0
	b := chunk.New(chunk.Word, "x", chunk.Position{Line: 1, Col: 5})
	b.Column = 4
	semi := chunk.New(chunk.Semicolon, ";", chunk.Position{Line: 1, Col: 6})
	semi.Column = 5
	semi.Flags = semi.Flags.Set(chunk.NoSpaceBefore)
	list.AddTail(a)
	list.AddTail(b)
	list.AddTail(semi)
	list.AddTail(chunk.New(chunk.EOF, "", chunk.Position{Line: 1, Col: 6}))

	got := output.Render(list)
	want := "int x;"
	if got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestRenderSkipsVirtualBraces(t *testing.T) {
	list := chunk.NewList()
	open := chunk.NewVirtual(chunk.VbraceOpen, chunk.Position{Line: 1, Col: 1})
	open.Column = 0
	word := chunk.New(chunk.Word, "y", chunk.Position{Line: 1, Col: 1})
	word.Column = 0
	close_ := chunk.NewVirtual(chunk.VbraceClose, chunk.Position{Line: 1, Col: 2})
	list.AddTail(open)
	list.AddTail(word)
	list.AddTail(close_)
	list.AddTail(chunk.New(chunk.EOF, "", chunk.Position{Line: 1, Col: 2}))

	got := output.Render(list)
	if got != "y" {
		t.Fatalf("Render() = %q, want %q (virtual braces must emit no text)", got, "y")
	}
}

func TestRenderNewlineRunsProduceBlankLines(t *testing.T) {
	list := chunk.NewList()
	a := chunk.New(chunk.Word, "a", chunk.Position{Line: 1, Col: 1})
	nl := chunk.New(chunk.Newline, "\n", chunk.Position{Line: 1, Col: 2})
	nl.NLCount = 2 // one blank line between statements
	b := chunk.New(chunk.Word, "b", chunk.Position{Line: 3, Col: 1})
	list.AddTail(a)
	list.AddTail(nl)
	list.AddTail(b)
	list.AddTail(chunk.New(chunk.EOF, "", chunk.Position{Line: 3, Col: 2}))

	got := output.Render(list)
	want := "a\n\nb"
	if got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestRenderEncodedRoundTripsBOM(t *testing.T) {
	list := chunk.NewList()
	w := chunk.New(chunk.Word, "x", chunk.Position{Line: 1, Col: 1})
	list.AddTail(w)
	list.AddTail(chunk.New(chunk.EOF, "", chunk.Position{Line: 1, Col: 2}))

	out, err := output.RenderEncoded(list, source.UTF8BOM)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) < 3 || out[0] != 0xEF || out[1] != 0xBB || out[2] != 0xBF {
		t.Fatalf("RenderEncoded(UTF8BOM) did not restore the BOM: %x", out)
	}
}
