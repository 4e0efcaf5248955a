package combine_test

import (
	"testing"

	"github.com/cwbudde/go-uncgo/internal/bracecleanup"
	"github.com/cwbudde/go-uncgo/internal/chunk"
	"github.com/cwbudde/go-uncgo/internal/cleanup"
	"github.com/cwbudde/go-uncgo/internal/combine"
	"github.com/cwbudde/go-uncgo/internal/format"
	"github.com/cwbudde/go-uncgo/internal/lang"
	"github.com/cwbudde/go-uncgo/internal/options"
	"github.com/cwbudde/go-uncgo/internal/tokenizer"
)

func run(t *testing.T, src string, l lang.Flag) *chunk.List {
	t.Helper()
	list := tokenizer.New(src, tokenizer.WithLanguage(l)).Tokenize()
	ctx := format.NewContext(list, options.NewDefaultSet(), l, "", nil)
	for _, p := range []format.Pass{cleanup.Pass{}, bracecleanup.Pass{}, combine.Pass{}} {
		if err := p.Run(ctx); err != nil {
			t.Fatalf("%s.Run: %v", p.Name(), err)
		}
	}
	return ctx.List
}

func findStr(list *chunk.List, text string) *chunk.Chunk {
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Str == text {
			return c
		}
	}
	return nil
}

func findNthStr(list *chunk.List, text string, n int) *chunk.Chunk {
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Str == text {
			if n == 0 {
				return c
			}
			n--
		}
	}
	return nil
}

func TestStarIsDereferenceAfterAssign(t *testing.T) {
	list := run(t, "x = *p;", lang.C)
	star := findStr(list, "*")
	if star == nil || star.Kind != chunk.Deref {
		t.Fatalf("star kind = %v, want DEREF", star.Kind)
	}
}

func TestStarIsMultiplyAfterValue(t *testing.T) {
	list := run(t, "y = a * b;", lang.C)
	star := findStr(list, "*")
	if star == nil || star.Kind != chunk.Arith {
		t.Fatalf("star kind = %v, want ARITH", star.Kind)
	}
}

func TestStarAfterTypeIsPointerType(t *testing.T) {
	// int *p = &q; a = b*c;
	list := run(t, "int *p = &q; a = b*c;", lang.C)
	first := findNthStr(list, "*", 0)
	if first == nil || first.Kind != chunk.PtrType {
		t.Fatalf("first star kind = %v, want PTR_TYPE", first.Kind)
	}
	amp := findStr(list, "&")
	if amp == nil || amp.Kind != chunk.Addr {
		t.Fatalf("amp kind = %v, want ADDR", amp.Kind)
	}
	second := findNthStr(list, "*", 1)
	if second == nil || second.Kind != chunk.Arith {
		t.Fatalf("second star kind = %v, want ARITH", second.Kind)
	}
}

func TestStarAfterUserTypeAtStatementStart(t *testing.T) {
	list := run(t, "MyType *p;", lang.C)
	star := findStr(list, "*")
	if star == nil || star.Kind != chunk.PtrType {
		t.Fatalf("star kind = %v, want PTR_TYPE", star.Kind)
	}
}

func TestUnaryMinusAfterAssign(t *testing.T) {
	list := run(t, "x = -1;", lang.C)
	minus := findStr(list, "-")
	if minus == nil || minus.Kind != chunk.Neg {
		t.Fatalf("minus kind = %v, want NEG", minus.Kind)
	}
}

func TestTernaryColonsClassified(t *testing.T) {
	list := run(t, "x = a ? b: c;", lang.C)
	var question, colon *chunk.Chunk
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind == chunk.Question {
			question = c
		}
		if c.Kind == chunk.CondColon {
			colon = c
		}
	}
	if question == nil {
		t.Fatal("expected a QUESTION chunk")
	}
	if colon == nil {
		t.Fatal("expected the ':' to be classified as COND_COLON")
	}
}

func TestCaseColonClassified(t *testing.T) {
	list := run(t, "switch(x){case 1: break;}", lang.C)
	var found bool
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind == chunk.CaseColon {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a CASE_COLON chunk after 'case 1'")
	}
}

func TestCaseColonWithExpression(t *testing.T) {
	list := run(t, "switch(x){case FOO + 1: break;}", lang.C)
	var found bool
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind == chunk.CaseColon {
			found = true
		}
	}
	if !found {
		t.Fatal("expected CASE_COLON even with an expression between case and ':'")
	}
}

func TestBitfieldColon(t *testing.T) {
	list := run(t, "struct s { unsigned flag: 1; };", lang.C)
	var found bool
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind == chunk.BitColon {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a BIT_COLON in the bitfield declaration")
	}
}

func TestGotoLabel(t *testing.T) {
	list := run(t, "x = 1; done: return;", lang.C)
	label := findStr(list, "done")
	if label == nil || label.Kind != chunk.Label {
		t.Fatalf("done kind = %v, want LABEL", label.Kind)
	}
}

func TestCStyleCastDetection(t *testing.T) {
	list := run(t, "x = (size_t)y;", lang.C)
	var open *chunk.Chunk
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind == chunk.TparenOpen {
			open = c
		}
	}
	if open == nil {
		t.Fatal("expected '(size_t)' to be reclassified as a C-style cast")
	}
	if open.PKind != chunk.CCast {
		t.Fatalf("cast paren PKind = %v, want C_CAST", open.PKind)
	}
	inner := findStr(list, "size_t")
	if inner == nil || inner.Kind != chunk.Type {
		t.Fatalf("size_t kind = %v, want TYPE", inner.Kind)
	}
	y := findStr(list, "y")
	if y == nil || !y.Flags.Has(chunk.ExprStart) {
		t.Fatal("expected the cast operand to be flagged EXPR_START")
	}
}

func TestFunctionCallVsDef(t *testing.T) {
	list := run(t, "foo(1); int bar(int x) { return x; }", lang.C)
	callChunk := findStr(list, "foo")
	defChunk := findStr(list, "bar")
	if callChunk == nil || callChunk.Kind != chunk.FuncCall {
		t.Fatalf("foo kind = %v, want FUNC_CALL", callChunk.Kind)
	}
	if defChunk == nil || defChunk.Kind != chunk.FuncDef {
		t.Fatalf("bar kind = %v, want FUNC_DEF", defChunk.Kind)
	}
}

func TestFunctionPrototype(t *testing.T) {
	list := run(t, "int frobnicate(int a, char b);", lang.C)
	proto := findStr(list, "frobnicate")
	if proto == nil || proto.Kind != chunk.FuncProto {
		t.Fatalf("frobnicate kind = %v, want FUNC_PROTO", proto.Kind)
	}
}

func TestCtorVarConservativeChoice(t *testing.T) {
	list := run(t, "void f() { MyType obj(arg); }", lang.CPP)
	obj := findStr(list, "obj")
	if obj == nil || obj.Kind != chunk.FuncCtorVar {
		t.Fatalf("obj kind = %v, want FUNC_CTOR_VAR", obj.Kind)
	}
}

func TestClassMethodDefinition(t *testing.T) {
	list := run(t, "void Widget::Widget(int x) { }", lang.CPP)
	name := findNthStr(list, "Widget", 1)
	if name == nil || name.Kind != chunk.FuncClassDef {
		t.Fatalf("Widget kind = %v, want FUNC_CLASS_DEF", name.Kind)
	}
}

func TestDestructor(t *testing.T) {
	list := run(t, "Widget::~Widget() { }", lang.CPP)
	var dtor *chunk.Chunk
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind == chunk.Destructor {
			dtor = c
		}
	}
	if dtor == nil {
		t.Fatal("expected ~Widget to be classified DESTRUCTOR")
	}
}

func TestFunctionPointerVariable(t *testing.T) {
	list := run(t, "int (*handler)(int);", lang.C)
	name := findStr(list, "handler")
	if name == nil || name.Kind != chunk.FuncVar {
		t.Fatalf("handler kind = %v, want FUNC_VAR", name.Kind)
	}
}

func TestTypedefMarksNewType(t *testing.T) {
	list := run(t, "typedef unsigned long ulong_t;", lang.C)
	name := findStr(list, "ulong_t")
	if name == nil || name.Kind != chunk.Type {
		t.Fatalf("ulong_t kind = %v, want TYPE", name.Kind)
	}
	if !name.Flags.Has(chunk.InTypedef) {
		t.Fatal("expected the typedef body to be flagged IN_TYPEDEF")
	}
}

func TestFunctionTypedef(t *testing.T) {
	list := run(t, "typedef int (*cmp_fn)(int, int);", lang.C)
	name := findStr(list, "cmp_fn")
	if name == nil || name.Kind != chunk.FuncType {
		t.Fatalf("cmp_fn kind = %v, want FUNC_TYPE", name.Kind)
	}
}

func TestStructBodyFlags(t *testing.T) {
	list := run(t, "struct point { int x; int y; } origin;", lang.C)
	x := findStr(list, "x")
	if x == nil || !x.Flags.Has(chunk.InStruct) {
		t.Fatal("expected struct body chunks to be flagged IN_STRUCT")
	}
	name := findStr(list, "point")
	if name == nil || name.Kind != chunk.Type {
		t.Fatalf("point kind = %v, want TYPE", name.Kind)
	}
	v := findStr(list, "origin")
	if v == nil || !v.Flags.Has(chunk.VarDef) {
		t.Fatal("expected trailing declarator to be flagged VAR_DEF")
	}
}

func TestEnumBodyFlags(t *testing.T) {
	list := run(t, "enum color { RED, GREEN = 2 };", lang.C)
	red := findStr(list, "RED")
	if red == nil || !red.Flags.Has(chunk.InEnum) {
		t.Fatal("expected enum body chunks to be flagged IN_ENUM")
	}
}

func TestClassBaseColon(t *testing.T) {
	list := run(t, "class Derived: public Base { };", lang.CPP)
	var found bool
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind == chunk.ClassColon {
			found = true
		}
	}
	if !found {
		t.Fatal("expected the base-clause ':' to be CLASS_COLON")
	}
}

func TestConstructorInitColon(t *testing.T) {
	list := run(t, "Widget::Widget(int x): n(x) { }", lang.CPP)
	var found bool
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind == chunk.ConstrColon {
			found = true
		}
	}
	if !found {
		t.Fatal("expected the initializer-list ':' to be CONSTR_COLON")
	}
}

func TestRangeForColon(t *testing.T) {
	list := run(t, "for (x: items) { use(x); }", lang.CPP)
	var found bool
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind == chunk.ForColon {
			found = true
		}
	}
	if !found {
		t.Fatal("expected the range-for ':' to be FOR_COLON")
	}
}

func TestAccessSpecifierColon(t *testing.T) {
	list := run(t, "class A { public: int x; };", lang.CPP)
	var found bool
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind == chunk.PrivateColon {
			found = true
		}
	}
	if !found {
		t.Fatal("expected 'public:' colon to be PRIVATE_COLON")
	}
}

func TestLambdaRecognized(t *testing.T) {
	list := run(t, "auto f = [](int x) { return x; };", lang.CPP)
	var capture *chunk.Chunk
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind == chunk.Tsquare && c.PKind == chunk.CppLambda {
			capture = c
		}
	}
	if capture == nil {
		t.Fatal("expected the empty capture '[]' (TSQUARE) to carry PKind CPP_LAMBDA")
	}
}

func TestOCMessageSend(t *testing.T) {
	list := run(t, "x = [receiver doWith:arg];", lang.ObjC)
	var msgOpen, ocColon *chunk.Chunk
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind == chunk.SquareOpen && c.PKind == chunk.OCMsg {
			msgOpen = c
		}
		if c.Kind == chunk.OCColon {
			ocColon = c
		}
	}
	if msgOpen == nil {
		t.Fatal("expected the message '[' to carry PKind OC_MSG")
	}
	if ocColon == nil {
		t.Fatal("expected the selector ':' to be OC_COLON")
	}
}

func TestCSAttributeColon(t *testing.T) {
	list := run(t, "[assembly: AssemblyTitle(\"x\")]", lang.CS)
	var found bool
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind == chunk.CSSqColon {
			found = true
		}
	}
	if !found {
		t.Fatal("expected the attribute-target ':' to be CS_SQ_COLON")
	}
}

func TestStatementStartFlags(t *testing.T) {
	list := run(t, "a = 1; b = 2;", lang.C)
	a := findStr(list, "a")
	b := findStr(list, "b")
	if a == nil || !a.Flags.Has(chunk.StmtStart) {
		t.Fatal("expected 'a' to be flagged STMT_START")
	}
	if b == nil || !b.Flags.Has(chunk.StmtStart) {
		t.Fatal("expected 'b' to be flagged STMT_START")
	}
}
