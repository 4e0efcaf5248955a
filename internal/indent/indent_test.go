package indent_test

import (
	"testing"

	"github.com/cwbudde/go-uncgo/internal/bracecleanup"
	"github.com/cwbudde/go-uncgo/internal/chunk"
	"github.com/cwbudde/go-uncgo/internal/cleanup"
	"github.com/cwbudde/go-uncgo/internal/combine"
	"github.com/cwbudde/go-uncgo/internal/format"
	"github.com/cwbudde/go-uncgo/internal/indent"
	"github.com/cwbudde/go-uncgo/internal/lang"
	"github.com/cwbudde/go-uncgo/internal/options"
	"github.com/cwbudde/go-uncgo/internal/tokenizer"
)

func run(t *testing.T, src string, opts *options.Set) *chunk.List {
	t.Helper()
	list := tokenizer.New(src, tokenizer.WithLanguage(lang.C)).Tokenize()
	ctx := format.NewContext(list, opts, lang.C, "", nil)
	passes := []format.Pass{cleanup.Pass{}, bracecleanup.Pass{}, combine.Pass{}, indent.Pass{}}
	for _, p := range passes {
		if err := p.Run(ctx); err != nil {
			t.Fatalf("%s.Run: %v", p.Name(), err)
		}
	}
	return ctx.List
}

func firstOnLine(list *chunk.List, text string) *chunk.Chunk {
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Str == text {
			return c
		}
	}
	return nil
}

func TestBodyIndentedOneLevel(t *testing.T) {
	list := run(t, "void f(void)\n{\nreturn;\n}\n", options.NewDefaultSet())
	ret := firstOnLine(list, "return")
	if ret == nil || ret.Column != 4 {
		t.Fatalf("return column = %d, want 4", ret.Column)
	}
	close_ := firstOnLine(list, "}")
	if close_ == nil || close_.Column != 0 {
		t.Fatalf("close brace column = %d, want 0", close_.Column)
	}
}

func TestNestedBodies(t *testing.T) {
	list := run(t, "void f(void)\n{\nif (x) {\ny = 1;\n}\n}\n", options.NewDefaultSet())
	y := firstOnLine(list, "y")
	if y == nil || y.Column != 8 {
		t.Fatalf("y column = %d, want 8", y.Column)
	}
}

func TestSwitchCaseColumns(t *testing.T) {
	opts := options.NewDefaultSet()
	list := run(t, "void f(void)\n{\nswitch (x) {\ncase 1:\nbreak;\n}\n}\n", opts)
	caseKw := firstOnLine(list, "case")
	if caseKw == nil || caseKw.Column != 8 {
		t.Fatalf("case column = %d, want 8 (body 4 + indent_switch_case 4)", caseKw.Column)
	}
	brk := firstOnLine(list, "break")
	if brk == nil || brk.Column != 12 {
		t.Fatalf("break column = %d, want 12", brk.Column)
	}
}

func TestPreprocAtColumnOne(t *testing.T) {
	list := run(t, "void f(void)\n{\n#ifdef X\ny = 1;\n#endif\n}\n", options.NewDefaultSet())
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind.IsPreproc() && c.Column != 0 {
			t.Fatalf("preproc %q column = %d, want 0", c.Str, c.Column)
		}
	}
}

func TestLabelColumnPolicy(t *testing.T) {
	list := run(t, "void f(void)\n{\nx = 1;\ndone:\nreturn;\n}\n", options.NewDefaultSet())
	label := firstOnLine(list, "done")
	if label == nil {
		t.Fatal("no label chunk found")
	}
	if label.Column != 0 {
		t.Fatalf("label column = %d, want 0 (indent_label default 1, 1-based)", label.Column)
	}
}

func TestContinuationLineIndent(t *testing.T) {
	list := run(t, "x = a +\nb;\n", options.NewDefaultSet())
	b := firstOnLine(list, "b")
	if b == nil || b.Column != 4 {
		t.Fatalf("continuation column = %d, want 4", b.Column)
	}
}

func TestNamespaceIndentOptionOff(t *testing.T) {
	opts := options.NewDefaultSet()
	if err := opts.SetRaw("indent_namespace", "false"); err != nil {
		t.Fatal(err)
	}
	list := tokenizer.New("namespace ns {\nint x;\n}\n", tokenizer.WithLanguage(lang.CPP)).Tokenize()
	ctx := format.NewContext(list, opts, lang.CPP, "", nil)
	for _, p := range []format.Pass{cleanup.Pass{}, bracecleanup.Pass{}, combine.Pass{}, indent.Pass{}} {
		if err := p.Run(ctx); err != nil {
			t.Fatalf("%s.Run: %v", p.Name(), err)
		}
	}
	x := firstOnLine(list, "int")
	if x == nil || x.Column != 0 {
		t.Fatalf("namespace body column = %d, want 0 with indent_namespace=false", x.Column)
	}
}
