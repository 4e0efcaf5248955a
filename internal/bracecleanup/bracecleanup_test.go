package bracecleanup_test

import (
	"testing"

	"github.com/cwbudde/go-uncgo/internal/bracecleanup"
	"github.com/cwbudde/go-uncgo/internal/chunk"
	"github.com/cwbudde/go-uncgo/internal/cleanup"
	"github.com/cwbudde/go-uncgo/internal/format"
	"github.com/cwbudde/go-uncgo/internal/lang"
	"github.com/cwbudde/go-uncgo/internal/options"
	"github.com/cwbudde/go-uncgo/internal/tokenizer"
)

func run(t *testing.T, src string, l lang.Flag) *chunk.List {
	t.Helper()
	list := tokenizer.New(src, tokenizer.WithLanguage(l)).Tokenize()
	ctx := format.NewContext(list, options.NewDefaultSet(), l, "", nil)
	for _, p := range []format.Pass{cleanup.Pass{}, bracecleanup.Pass{}} {
		if err := p.Run(ctx); err != nil {
			t.Fatalf("%s.Run: %v", p.Name(), err)
		}
	}
	return ctx.List
}

func TestLevelsAssigned(t *testing.T) {
	list := run(t, "void f(void) { if (x) { y = 1; } }", lang.C)
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Str == "y" {
			if c.BraceLevel != 2 {
				t.Fatalf("y brace level = %d, want 2", c.BraceLevel)
			}
			if c.Level != 2 {
				t.Fatalf("y level = %d, want 2", c.Level)
			}
			return
		}
	}
	t.Fatal("no y chunk found")
}

func TestControlParensRetyped(t *testing.T) {
	list := run(t, "if (x) { }", lang.C)
	var open, close_ *chunk.Chunk
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind == chunk.SparenOpen {
			open = c
		}
		if c.Kind == chunk.SparenClose {
			close_ = c
		}
	}
	if open == nil || close_ == nil {
		t.Fatal("expected the if-condition parens to be SPAREN_OPEN/SPAREN_CLOSE")
	}
}

func TestVirtualBracesAroundBracelessBody(t *testing.T) {
	list := run(t, "if (x) y;", lang.C)
	var vopen, vclose *chunk.Chunk
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind == chunk.VbraceOpen {
			vopen = c
		}
		if c.Kind == chunk.VbraceClose {
			vclose = c
		}
	}
	if vopen == nil || vclose == nil {
		t.Fatal("expected a VBRACE pair around the unbraced body")
	}
	if vopen.Str != "" || vclose.Str != "" {
		t.Error("virtual braces must carry no text")
	}
	// The virtual open must sit before y and the close after the ';'.
	seenY := false
	for c := vopen; c != nil && c != vclose; c = c.Next() {
		if c.Str == "y" {
			seenY = true
		}
	}
	if !seenY {
		t.Error("VBRACE pair does not enclose the body statement")
	}
}

func TestNoVirtualBracesWhenAlreadyBraced(t *testing.T) {
	list := run(t, "if (x) { y; }", lang.C)
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind == chunk.VbraceOpen || c.Kind == chunk.VbraceClose {
			t.Fatal("no virtual braces expected when the body is braced")
		}
	}
}

func TestDelimiterBalanceAfterPass(t *testing.T) {
	list := run(t, "void f(int a[2]) { g(a, (b + c)); }", lang.C)
	for c := list.Head(); c != nil; c = c.Next() {
		if !c.Kind.IsOpening() {
			continue
		}
		match := chunk.SkipToMatch(c, chunk.ScopeAll)
		if match == nil {
			t.Fatalf("no match for opener %q", c.Str)
		}
		if match.Kind != c.Kind.Inverse() {
			t.Fatalf("opener %q matched %v, want %v", c.Str, match.Kind, c.Kind.Inverse())
		}
		if match.Level != c.Level {
			t.Fatalf("opener %q level %d, closer level %d", c.Str, c.Level, match.Level)
		}
	}
}

func TestPPLevelTracksConditionals(t *testing.T) {
	list := run(t, "#if A\n#if B\nx;\n#endif\n#endif\n", lang.C)
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Str == "x" && c.PPLevel != 2 {
			t.Fatalf("x pp level = %d, want 2", c.PPLevel)
		}
	}
}

func TestSwitchBraceParent(t *testing.T) {
	list := run(t, "switch (x) { case 1: break; }", lang.C)
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind == chunk.BraceOpen {
			if c.PKind != chunk.KwSwitch {
				t.Fatalf("switch brace PKind = %v, want SWITCH", c.PKind)
			}
			return
		}
	}
	t.Fatal("no brace found")
}

func TestElseChainVirtualBraces(t *testing.T) {
	list := run(t, "if (x) a; else b;", lang.C)
	var opens int
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind == chunk.VbraceOpen {
			opens++
		}
	}
	if opens != 2 {
		t.Fatalf("got %d VBRACE_OPEN chunks, want 2 (if body and else body)", opens)
	}
}
