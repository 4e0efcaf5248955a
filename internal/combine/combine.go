// Package combine is the heavy reclassifier: it resolves every
// ambiguity the tokenizer and tokenize-cleanup pass left open by
// looking at each token's neighbors.
// Sub-pass A (fix_symbols) settles stars/amps/plus/minus, C casts,
// typedefs, aggregate bodies, lambdas, Objective-C constructs, and the
// function call/definition/prototype/ctor-variable split. Sub-pass B
// (combine_labels, labels.go) classifies every colon. After the pass,
// no Word/Colon/star/amp chunk remains in a role later passes cannot
// rely on.
package combine

import (
	"github.com/cwbudde/go-uncgo/internal/chunk"
	"github.com/cwbudde/go-uncgo/internal/format"
	"github.com/cwbudde/go-uncgo/internal/lang"
)

type Pass struct{}

func (Pass) Name() string { return "combine" }

func (p Pass) Run(ctx *format.Context) error {
	list := ctx.List

	markStatementStarts(list)
	fixStarAmp(list)
	fixUnaryPosNeg(list)
	fixCasts(list)
	markTypedefs(list)
	markAggregates(list)
	markNamespaces(list)
	if ctx.Lang.Has(lang.CPP) {
		markLambdas(list)
	}
	if ctx.Lang.Has(lang.ObjC) {
		markOCClasses(list)
		markOCMessages(list)
		markOCBlocks(list)
	}
	fixFunctionPointers(list)
	fixFunctions(list)
	combineLabels(list, ctx.Lang)
	return nil
}

// markStatementStarts flags the first token of every statement
// (StmtStart|ExprStart) and the first token of every sub-expression
// (ExprStart), the context fix_symbols keys unary-vs-binary decisions
// off. Runs before any reclassification so the flags describe the raw
// token stream.
func markStatementStarts(list *chunk.List) {
	stmt := true
	expr := true
	for c := list.Head(); c != nil; c = c.Next() {
		if c.IsNewline() || c.Kind.IsComment() || c.Kind.IsPreproc() || c.Flags.Has(chunk.InPreproc) {
			continue
		}
		if stmt {
			c.Flags = c.Flags.Set(chunk.StmtStart | chunk.ExprStart)
		} else if expr {
			c.Flags = c.Flags.Set(chunk.ExprStart)
		}
		stmt = false
		expr = false

		switch c.Kind {
		case chunk.Semicolon, chunk.Vsemicolon, chunk.BraceOpen, chunk.BraceClose,
			chunk.VbraceOpen, chunk.VbraceClose, chunk.Colon, chunk.CaseColon,
			chunk.LabelColon, chunk.PrivateColon:
			stmt = true
			expr = true
		case chunk.ParenOpen, chunk.SparenOpen, chunk.FparenOpen, chunk.TparenOpen,
			chunk.SquareOpen, chunk.Comma, chunk.Assign, chunk.Arith, chunk.Compare,
			chunk.BoolOp, chunk.Question, chunk.CondColon, chunk.KwReturn, chunk.KwCase,
			chunk.Not, chunk.BitNot, chunk.Addr, chunk.Deref:
			expr = true
		}
	}
}

// isValueEnd reports whether c is a chunk that could be the last token
// of a complete expression — if so, a following `*`/`&`/`+`/`-` is
// binary, not unary/pointer.
func isValueEnd(c *chunk.Chunk) bool {
	if c == nil {
		return false
	}
	switch {
	case c.Kind.IsLiteral() && c.Kind != chunk.Type && c.Kind != chunk.PtrType,
		c.Kind == chunk.ParenClose, c.Kind == chunk.FparenClose,
		c.Kind == chunk.SquareClose, c.Kind == chunk.Tsquare,
		c.Kind == chunk.IncrAfter, c.Kind == chunk.DecrAfter,
		c.Kind == chunk.Incr, c.Kind == chunk.Decr:
		return true
	}
	return false
}

// endsType walks backward from c over type-ish tokens (qualifier,
// type, aggregate tag, `::`, pointer star, plain word), reporting true
// when it reaches a statement start or terminator having seen at least
// one; any other token ends the scan with false. This is the
// backward scan that resolves `WORD *` as a declaration rather than a
// multiply.
func endsType(c *chunk.Chunk) bool {
	seen := 0
	for p := c; p != nil; p = chunk.PrevNCNNL(p, chunk.ScopePreproc) {
		switch p.Kind {
		case chunk.Type, chunk.PtrType, chunk.KwConst, chunk.KwStatic, chunk.KwVolatile,
			chunk.KwStruct, chunk.KwUnion, chunk.KwEnum, chunk.KwClass, chunk.DCMember,
			chunk.Word:
			seen++
			if p.Flags.Has(chunk.StmtStart) {
				return true
			}
		case chunk.Semicolon, chunk.Vsemicolon, chunk.BraceOpen, chunk.BraceClose,
			chunk.VbraceOpen, chunk.VbraceClose:
			return seen > 0
		default:
			return false
		}
	}
	return seen > 0
}

// fixStarAmp settles every `*` and `&` into pointer-type, dereference,
// address-of, by-reference, or plain binary operator.
func fixStarAmp(list *chunk.List) {
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Str != "*" && c.Str != "&" {
			continue
		}
		prev := chunk.PrevNCNNL(c, chunk.ScopeAll)
		next := chunk.NextNCNNL(c, chunk.ScopeAll)

		typeBefore := prev != nil && (prev.Kind == chunk.Type || prev.Kind == chunk.PtrType ||
			prev.Kind == chunk.KwConst || prev.Kind == chunk.KwVolatile ||
			prev.Kind == chunk.DCMember ||
			(prev.Kind == chunk.Word && endsType(prev) && !c.Flags.Has(chunk.ExprStart)))

		if c.Str == "*" {
			switch {
			case typeBefore:
				c.Kind = chunk.PtrType
			case prev != nil && (prev.Kind == chunk.KwSizeof || prev.Kind == chunk.KwDelete):
				c.Kind = chunk.Deref
			case c.Flags.Has(chunk.ExprStart):
				c.Kind = chunk.Deref
			case next != nil && (next.Kind == chunk.ParenClose || next.Kind == chunk.FparenClose ||
				next.Kind == chunk.Comma):
				c.Kind = chunk.PtrType
			case isValueEnd(prev) || (prev != nil && prev.Kind == chunk.Word):
				c.Kind = chunk.Arith
			default:
				c.Kind = chunk.Deref
			}
			continue
		}

		switch {
		case typeBefore:
			c.Kind = chunk.Byref
		case c.Flags.Has(chunk.ExprStart):
			c.Kind = chunk.Addr
		case isValueEnd(prev) || (prev != nil && prev.Kind == chunk.Word):
			c.Kind = chunk.Arith // binary bitwise-and
		default:
			c.Kind = chunk.Addr
		}
	}
}

// fixUnaryPosNeg reclassifies a tokenizer-level Arith('+'/'-') chunk as
// unary Pos/Neg when it cannot be a binary operator at this position.
func fixUnaryPosNeg(list *chunk.List) {
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind != chunk.Arith || (c.Str != "+" && c.Str != "-") {
			continue
		}
		prev := chunk.PrevNCNNL(c, chunk.ScopeAll)
		if prev == nil || c.Flags.Has(chunk.ExprStart) || isUnaryContext(prev) {
			if c.Str == "+" {
				c.Kind = chunk.Pos
			} else {
				c.Kind = chunk.Neg
			}
		}
	}
}

func isUnaryContext(prev *chunk.Chunk) bool {
	if isValueEnd(prev) {
		return false
	}
	switch prev.Kind {
	case chunk.Word, chunk.Type:
		return false
	}
	return true
}

// fixCasts reclassifies `(` type-run `)` immediately followed by a
// value-starting token as a C-style cast: the parens become Tparen*
// with PKind CCast, the inner run is settled as a type, and the token
// after the cast is flagged as an expression start.
func fixCasts(list *chunk.List) {
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind != chunk.ParenOpen {
			continue
		}
		inner := chunk.NextNCNNL(c, chunk.ScopeAll)
		if inner == nil || (inner.Kind != chunk.Type && inner.Kind != chunk.Word) {
			continue
		}
		afterInner := chunk.NextNCNNL(inner, chunk.ScopeAll)
		var close_ *chunk.Chunk
		if afterInner != nil && (afterInner.Kind == chunk.Deref || afterInner.Kind == chunk.PtrType ||
			afterInner.Kind == chunk.Arith && afterInner.Str == "*" || afterInner.Kind == chunk.Tsquare) {
			close_ = chunk.NextNCNNL(afterInner, chunk.ScopeAll)
		} else {
			close_ = afterInner
		}
		if close_ == nil || close_.Kind != chunk.ParenClose {
			continue
		}
		after := chunk.NextNCNNL(close_, chunk.ScopeAll)
		if after == nil {
			continue
		}
		// A cast of a Word-typed inner only counts when the inner isn't
		// a plausible call/expression; a known Type always counts.
		valueStart := after.Kind.IsLiteral() || after.Kind == chunk.Word ||
			after.Kind == chunk.Deref || after.Kind == chunk.Addr ||
			after.Kind == chunk.ParenOpen || after.Kind == chunk.Not ||
			after.Kind == chunk.BitNot
		if !valueStart {
			continue
		}
		if inner.Kind == chunk.Word && after.Kind != chunk.Word && !after.Kind.IsLiteral() {
			continue
		}
		c.Kind = chunk.TparenOpen
		c.PKind = chunk.CCast
		close_.Kind = chunk.TparenClose
		close_.PKind = chunk.CCast
		inner.Kind = chunk.Type
		if afterInner != nil && afterInner != close_ && afterInner.Str == "*" {
			afterInner.Kind = chunk.PtrType
		}
		after.Flags = after.Flags.Set(chunk.ExprStart)
	}
}

// markTypedefs flags everything between `typedef` and its terminating
// `;` as InTypedef and settles the new type name: the last identifier
// before the `;`, or — for a function typedef `typedef R (*NAME)(A)` —
// the identifier inside the first paren pair.
func markTypedefs(list *chunk.List) {
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind != chunk.KwTypedef {
			continue
		}
		var lastWord, fnName *chunk.Chunk
		for m := c.Next(); m != nil; m = m.Next() {
			if m.Kind == chunk.Semicolon && m.Level == c.Level {
				break
			}
			m.Flags = m.Flags.Set(chunk.InTypedef)
			switch m.Kind {
			case chunk.Word:
				lastWord = m
				if fnName == nil && m.Level > c.Level {
					prev := chunk.PrevNCNNL(m, chunk.ScopeAll)
					if prev != nil && (prev.Str == "*" || prev.Kind == chunk.PtrType || prev.Kind == chunk.Deref) {
						fnName = m
					}
				}
			}
		}
		if fnName != nil {
			// Function typedef: leave the name a Word so
			// fixFunctionPointers settles it as FuncType.
			fnName.Flags = fnName.Flags.Set(chunk.Anchor)
		} else if lastWord != nil {
			lastWord.Kind = chunk.Type
			lastWord.Flags = lastWord.Flags.Set(chunk.Anchor)
		}
	}
}

// markAggregates handles `struct|union|enum|class NAME {... } vars;`:
// the tag name becomes a Type, the body braces get the tag as PKind,
// every body chunk is flagged with the matching In* context bit, and
// the identifiers between `}` and `;` are flagged as variable
// definitions of the aggregate.
func markAggregates(list *chunk.List) {
	for c := list.Head(); c != nil; c = c.Next() {
		var bodyFlag chunk.Flags
		switch c.Kind {
		case chunk.KwStruct, chunk.KwUnion:
			bodyFlag = chunk.InStruct
		case chunk.KwEnum:
			bodyFlag = chunk.InEnum
		case chunk.KwClass:
			bodyFlag = chunk.InClass
		default:
			continue
		}

		cursor := chunk.NextNCNNL(c, chunk.ScopeAll)
		// `enum class NAME` / `enum struct NAME` (C++11 scoped enum)
		if c.Kind == chunk.KwEnum && cursor != nil &&
			(cursor.Kind == chunk.KwClass || cursor.Kind == chunk.KwStruct) {
			cursor = chunk.NextNCNNL(cursor, chunk.ScopeAll)
		}
		if cursor != nil && (cursor.Kind == chunk.Word || cursor.Kind == chunk.Type) {
			cursor.Kind = chunk.Type
			cursor = chunk.NextNCNNL(cursor, chunk.ScopeAll)
		}
		// Skip a base/underlying-type clause up to the brace.
		for cursor != nil && cursor.Kind != chunk.BraceOpen &&
			cursor.Kind != chunk.Semicolon && cursor.Kind != chunk.Comma &&
			!cursor.Kind.IsClosing() {
			cursor = chunk.NextNCNNL(cursor, chunk.ScopeAll)
		}
		if cursor == nil || cursor.Kind != chunk.BraceOpen {
			continue // forward declaration or tag-only use
		}

		open := cursor
		open.PKind = c.Kind
		close_ := chunk.SkipToMatch(open, chunk.ScopeAll)
		if close_ == nil {
			continue
		}
		close_.PKind = c.Kind
		for m := open.Next(); m != nil && m != close_; m = m.Next() {
			m.Flags = m.Flags.Set(bodyFlag)
		}

		// `} a, b;` — trailing declarators are variables of the aggregate.
		first := true
		for m := chunk.NextNCNNL(close_, chunk.ScopeAll); m != nil; m = chunk.NextNCNNL(m, chunk.ScopeAll) {
			if m.Kind == chunk.Semicolon || m.Kind.IsClosing() || m.Kind == chunk.BraceOpen {
				break
			}
			if m.Kind == chunk.Word {
				m.Flags = m.Flags.Set(chunk.VarDef)
				if first {
					m.Flags = m.Flags.Set(chunk.Var1st)
					first = false
				}
			}
		}
	}
}

// markNamespaces flags the body of every namespace brace pair (the
// PKind is settled by brace-cleanup) as InNamespace. The namespace name
// is left as it is; the braces pass reads it from the chunk before the
// open brace.
func markNamespaces(list *chunk.List) {
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind != chunk.BraceOpen || c.PKind != chunk.KwNamespace {
			continue
		}
		close_ := chunk.SkipToMatch(c, chunk.ScopeAll)
		if close_ == nil {
			continue
		}
		for m := c.Next(); m != nil && m != close_; m = m.Next() {
			m.Flags = m.Flags.Set(chunk.InNamespace)
		}
	}
}

// markLambdas recognizes a C++ lambda `[capture](params) mutable -> ret
// { body }` and tags all of its delimiter pairs with PKind CppLambda.
// An empty capture list arrives as the single Tsquare chunk that
// tokenize-cleanup merged from `[]`.
func markLambdas(list *chunk.List) {
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind != chunk.SquareOpen && c.Kind != chunk.Tsquare {
			continue
		}
		prev := chunk.PrevNCNNL(c, chunk.ScopeAll)
		if isValueEnd(prev) || (prev != nil && (prev.Kind == chunk.Word || prev.Kind == chunk.Type)) {
			continue // subscript, not a capture list
		}
		squareClose := c
		if c.Kind == chunk.SquareOpen {
			squareClose = chunk.SkipToMatch(c, chunk.ScopeAll)
		}
		if squareClose == nil {
			continue
		}
		after := chunk.NextNCNNL(squareClose, chunk.ScopeAll)
		var parenOpen, parenClose *chunk.Chunk
		if after != nil && after.Kind == chunk.ParenOpen {
			parenOpen = after
			parenClose = chunk.SkipToMatch(parenOpen, chunk.ScopeAll)
			if parenClose == nil {
				continue
			}
			after = chunk.NextNCNNL(parenClose, chunk.ScopeAll)
		}
		// optional `mutable`, optional `-> ret`
		for after != nil && (after.Str == "mutable" || after.Kind == chunk.Arrow ||
			after.Kind == chunk.Word || after.Kind == chunk.Type || after.Kind == chunk.PtrType) {
			if after.Kind == chunk.BraceOpen {
				break
			}
			after = chunk.NextNCNNL(after, chunk.ScopeAll)
		}
		if after == nil || after.Kind != chunk.BraceOpen {
			continue
		}
		braceClose := chunk.SkipToMatch(after, chunk.ScopeAll)
		c.PKind = chunk.CppLambda
		squareClose.PKind = chunk.CppLambda
		if parenOpen != nil {
			parenOpen.Kind = chunk.FparenOpen
			parenOpen.PKind = chunk.CppLambda
			parenClose.Kind = chunk.FparenClose
			parenClose.PKind = chunk.CppLambda
		}
		after.PKind = chunk.CppLambda
		if braceClose != nil {
			braceClose.PKind = chunk.CppLambda
		}
	}
}

// fixFunctionPointers recognizes `RET (*NAME)(ARGS)` and settles the
// declarator parens as type parens, NAME as FuncVar (FuncType inside a
// typedef), and the argument parens as function parens.
func fixFunctionPointers(list *chunk.List) {
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind != chunk.ParenOpen {
			continue
		}
		star := chunk.NextNCNNL(c, chunk.ScopeAll)
		if star == nil || (star.Str != "*" && star.Kind != chunk.Deref && star.Kind != chunk.PtrType) {
			continue
		}
		name := chunk.NextNCNNL(star, chunk.ScopeAll)
		if name == nil || name.Kind != chunk.Word {
			continue
		}
		close_ := chunk.NextNCNNL(name, chunk.ScopeAll)
		if close_ == nil || close_.Kind != chunk.ParenClose {
			continue
		}
		argOpen := chunk.NextNCNNL(close_, chunk.ScopeAll)
		if argOpen == nil || argOpen.Kind != chunk.ParenOpen {
			continue
		}
		argClose := chunk.SkipToMatch(argOpen, chunk.ScopeAll)
		if argClose == nil {
			continue
		}
		c.Kind = chunk.TparenOpen
		close_.Kind = chunk.TparenClose
		star.Kind = chunk.PtrType
		if name.Flags.Has(chunk.InTypedef) {
			name.Kind = chunk.FuncType
		} else {
			name.Kind = chunk.FuncVar
		}
		argOpen.Kind = chunk.FparenOpen
		argOpen.PKind = chunk.FuncType
		argClose.Kind = chunk.FparenClose
		argClose.PKind = chunk.FuncType
	}
}

// fixFunctions tags every word-then-paren site as call, definition,
// prototype, class method, destructor, or constructor-style variable.
// Decisions here are final; later passes rely on them without
// re-checking.
func fixFunctions(list *chunk.List) {
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Kind != chunk.Word {
			continue
		}
		paren := chunk.NextNC(c, chunk.ScopeAll)
		if paren == nil || paren.Kind != chunk.ParenOpen {
			continue
		}
		close_ := chunk.SkipToMatch(paren, chunk.ScopeAll)
		if close_ == nil {
			continue
		}
		paren.Kind = chunk.FparenOpen
		close_.Kind = chunk.FparenClose

		after := chunk.NextNCNNL(close_, chunk.ScopeAll)
		prev := chunk.PrevNCNNL(c, chunk.ScopeAll)

		// `Class::name(...)` and `Class::~name(...)`
		if prev != nil && prev.Kind == chunk.BitNot {
			c.Kind = chunk.Destructor
			markArgRegion(paren, close_, chunk.InFcnDef)
			continue
		}
		if prev != nil && prev.Kind == chunk.DCMember {
			className := chunk.PrevNCNNL(prev, chunk.ScopeAll)
			if className != nil && (className.Kind == chunk.Word || className.Kind == chunk.Type) &&
				className.Str == c.Str {
				if bodyFollows(close_) {
					c.Kind = chunk.FuncClassDef
					markArgRegion(paren, close_, chunk.InFcnDef)
				} else {
					c.Kind = chunk.FuncClassProto
				}
				continue
			}
		}

		typeBefore := prev != nil && (prev.Kind == chunk.Type || prev.Kind == chunk.PtrType ||
			(prev.Kind == chunk.Word && endsType(prev)))

		switch {
		case c.Flags.Has(chunk.InTypedef):
			c.Kind = chunk.FuncType
		case after != nil && (after.Kind == chunk.BraceOpen || after.Kind == chunk.VbraceOpen):
			c.Kind = chunk.FuncDef
			markArgRegion(paren, close_, chunk.InFcnDef)
		case typeBefore && after != nil && after.Kind == chunk.Semicolon:
			if c.BraceLevel > 0 && ctorVarShaped(paren, close_) {
				// `Type name(arg);` inside a body: a variable definition
				// that happens to look like a call. The conservative
				// choice when the arguments are all value-shaped.
				c.Kind = chunk.FuncCtorVar
				c.Flags = c.Flags.Set(chunk.VarDef)
			} else {
				c.Kind = chunk.FuncProto
			}
		case typeBefore && bodyFollows(close_):
			c.Kind = chunk.FuncDef
			markArgRegion(paren, close_, chunk.InFcnDef)
		case after != nil && after.Kind == chunk.Semicolon && prev != nil &&
			(prev.Kind == chunk.KwVirtual || prev.Kind == chunk.KwStatic):
			c.Kind = chunk.FuncProto
		default:
			c.Kind = chunk.FuncCall
			markArgRegion(paren, close_, chunk.InFcnCall)
		}
	}
}

// bodyFollows reports whether a `{` comes before any `;` after the
// argument close paren — a method definition rather than a prototype,
// tolerating qualifiers and a constructor initializer list between
// the two.
func bodyFollows(close_ *chunk.Chunk) bool {
	for m := chunk.NextNCNNL(close_, chunk.ScopeAll); m != nil; m = chunk.NextNCNNL(m, chunk.ScopeAll) {
		switch m.Kind {
		case chunk.BraceOpen, chunk.VbraceOpen:
			return true
		case chunk.Semicolon, chunk.Vsemicolon:
			return false
		}
	}
	return false
}

// ctorVarShaped reports whether the argument region contains only
// value-shaped tokens (words, literals, commas) — the shape where
// `Type name(args);` is more plausibly a constructor-style variable
// definition than a prototype. Prototype-shaped arguments (a type run,
// a `*`, an ellipsis) disqualify it.
func ctorVarShaped(open, close_ *chunk.Chunk) bool {
	sawValue := false
	for m := chunk.NextNCNNL(open, chunk.ScopeAll); m != nil && m != close_; m = chunk.NextNCNNL(m, chunk.ScopeAll) {
		switch m.Kind {
		case chunk.Number, chunk.String, chunk.Char, chunk.Word:
			sawValue = true
		case chunk.Comma:
		case chunk.Type, chunk.PtrType, chunk.Deref, chunk.Byref, chunk.Ellipsis:
			return false
		default:
			return false
		}
	}
	return sawValue
}

func markArgRegion(open, close_ *chunk.Chunk, flag chunk.Flags) {
	for m := open.Next(); m != nil && m != close_; m = m.Next() {
		m.Flags = m.Flags.Set(flag)
	}
}

var _ format.Pass = Pass{}
