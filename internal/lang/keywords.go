package lang

import "github.com/cwbudde/go-uncgo/internal/chunk"

// keyword pairs a reserved word's canonical Kind with the set of
// languages it's reserved in.
type keyword struct {
	kind chunk.Kind
	mask Flag
}

var keywords = map[string]keyword{
	"if":       {chunk.KwIf, All},
	"else":     {chunk.KwElse, All},
	"elseif":   {chunk.KwElseif, Pawn},
	"for":      {chunk.KwFor, All},
	"foreach":  {chunk.KwForeach, CS | D | Java | Vala},
	"while":    {chunk.KwWhile, All},
	"do":       {chunk.KwDo, All},
	"switch":   {chunk.KwSwitch, All},
	"case":     {chunk.KwCase, CLike | Pawn},
	"default":  {chunk.KwDefault, CLike | Pawn},
	"return":   {chunk.KwReturn, CLike | Pawn},
	"break":    {chunk.KwBreak, CLike | Pawn},
	"continue": {chunk.KwContinue, CLike | Pawn},
	"goto":     {chunk.KwGoto, C | CPP | CS | D},
	"try":      {chunk.KwTry, CPP | CS | Java | D | Vala | ECMA},
	"catch":    {chunk.KwCatch, CPP | CS | Java | D | Vala | ECMA},
	"finally":  {chunk.KwFinally, CS | Java | D | Vala | ECMA},
	"throw":    {chunk.KwThrow, CPP | CS | Java | D | Vala | ECMA},
	"using":    {chunk.KwUsing, CPP | CS},
	"namespace": {chunk.KwNamespace, CPP | CS | D},
	"class":    {chunk.KwClass, CPP | CS | Java | D | Vala | ECMA},
	"struct":   {chunk.KwStruct, C | CPP | CS | D},
	"union":    {chunk.KwUnion, C | CPP | D},
	"enum":     {chunk.KwEnum, All},
	"typedef":  {chunk.KwTypedef, C | CPP | D},
	"template": {chunk.KwTemplate, CPP | D},
	"operator": {chunk.KwOperator, CPP | CS | D},
	"sizeof":   {chunk.KwSizeof, C | CPP | CS | D},
	"delete":   {chunk.KwDelete, CPP | D | ECMA},
	"new":      {chunk.KwNew, CPP | CS | Java | D | Vala | ECMA},
	"const":    {chunk.KwConst, CLike &^ Pawn},
	"static":   {chunk.KwStatic, CLike &^ Pawn},
	"volatile": {chunk.KwVolatile, C | CPP | CS | D},
	"public":   {chunk.KwPublic, CPP | CS | Java | D | Vala},
	"private":  {chunk.KwPrivate, CPP | CS | Java | D | Vala},
	"protected": {chunk.KwProtected, CPP | CS | Java | D | Vala},
	"virtual":  {chunk.KwVirtual, CPP | CS | D},

	// Pawn contextual keywords share a slot with foreach's "for each"
	// two-word idiom; lang_pawn.h enumerates them as plain reserved
	// words rather than a contextual state, so they're listed here too.
	"new_state": {chunk.KwNew, Pawn},
	"state":     {chunk.Word, Pawn},
}

// builtinTypes maps the primitive type names of each language to the
// languages they are primitive in. Resolved to chunk.Type at lookup
// time; user-defined type names are discovered later by the combine
// pass, not here.
var builtinTypes = map[string]Flag{
	"void":     CLike,
	"int":      CLike,
	"char":     CLike &^ (ECMA | Pawn),
	"short":    C | CPP | CS | D | ObjC,
	"long":     C | CPP | CS | Java | D | ObjC,
	"float":    CLike &^ (ECMA | Pawn),
	"double":   CLike &^ (ECMA | Pawn),
	"signed":   C | CPP | ObjC,
	"unsigned": C | CPP | ObjC,
	"bool":     CPP | CS | D | Vala | Pawn,
	"boolean":  Java | ECMA,
	"byte":     CS | Java | D | Vala,
	"string":   CS | D | Vala,
	"wchar_t":  C | CPP,
	"id":       ObjC,
	"BOOL":     ObjC,
	"SEL":      ObjC,
	"Float":    Pawn,
	"Tag":      Pawn,
}

// LookupIdent resolves a raw identifier to its keyword Kind for the
// active language set, or Word if ident is not reserved under any
// language in active.
func LookupIdent(ident string, active Flag) chunk.Kind {
	if kw, ok := keywords[ident]; ok && kw.mask&active != 0 {
		return kw.kind
	}
	if mask, ok := builtinTypes[ident]; ok && mask&active != 0 {
		return chunk.Type
	}
	return chunk.Word
}

// IsKeyword reports whether ident is reserved under any language in
// active, without returning its specific Kind.
func IsKeyword(ident string, active Flag) bool {
	return LookupIdent(ident, active) != chunk.Word
}
