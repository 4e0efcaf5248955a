package tokenizer_test

import (
	"testing"

	"github.com/cwbudde/go-uncgo/internal/chunk"
	"github.com/cwbudde/go-uncgo/internal/lang"
	"github.com/cwbudde/go-uncgo/internal/tokenizer"
)

func kinds(list *chunk.List) []chunk.Kind {
	var out []chunk.Kind
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind == chunk.EOF {
			continue
		}
		out = append(out, c.Kind)
	}
	return out
}

func TestTokenizeSimpleStatement(t *testing.T) {
	list := tokenizer.New("int x = 1;", tokenizer.WithLanguage(lang.C)).Tokenize()

	got := kinds(list)
	want := []chunk.Kind{chunk.Type, chunk.Word, chunk.Assign, chunk.Number, chunk.Semicolon}
	if len(got) != len(want) {
		t.Fatalf("got %v kinds, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("kind[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTokenizeLineComment(t *testing.T) {
	list := tokenizer.New("x; // trailing\ny;", tokenizer.WithLanguage(lang.C)).Tokenize()
	var comment *chunk.Chunk
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind == chunk.Comment {
			comment = c
		}
	}
	if comment == nil {
		t.Fatal("expected a COMMENT chunk")
	}
	if comment.Str != "// trailing" {
		t.Errorf("comment text = %q, want %q", comment.Str, "// trailing")
	}
}

func TestTokenizeUnterminatedStringRecordsError(t *testing.T) {
	tok := tokenizer.New(`char *s = "oops;`, tokenizer.WithLanguage(lang.C))
	tok.Tokenize()
	if len(tok.Errors()) == 0 {
		t.Fatal("expected an unterminated-string error to be recorded")
	}
}

func TestTokenizeMultiCharOperatorsGreedy(t *testing.T) {
	list := tokenizer.New("a <<= b", tokenizer.WithLanguage(lang.C)).Tokenize()
	got := kinds(list)
	want := []chunk.Kind{chunk.Word, chunk.Assign, chunk.Word}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("kind[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTokenizePreservesNewlineCount(t *testing.T) {
	list := tokenizer.New("a;\nb;", tokenizer.WithLanguage(lang.C)).Tokenize()
	var nl *chunk.Chunk
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind == chunk.Newline {
			nl = c
			break
		}
	}
	if nl == nil {
		t.Fatal("expected a NEWLINE chunk")
	}
	if nl.NLCount != 1 {
		t.Errorf("NLCount = %d, want 1", nl.NLCount)
	}
}

func TestTokenizePreprocDirective(t *testing.T) {
	list := tokenizer.New("#include <foo.h>\nint x;", tokenizer.WithLanguage(lang.C)).Tokenize()
	first := list.Head()
	if first.Kind != chunk.Preproc {
		t.Fatalf("first chunk kind = %v, want PREPROC", first.Kind)
	}
	if first.Str != "#include <foo.h>" {
		t.Errorf("preproc text = %q", first.Str)
	}
}
