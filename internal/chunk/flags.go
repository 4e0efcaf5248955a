package chunk

// Flags is the per-chunk context bitset.
// It records classification context that doesn't fit in Kind alone —
// most of it set once by brace-cleanup or combine and read by every
// later pass.
type Flags uint64

const (
	InPreproc Flags = 1 << iota
	InStruct
	InEnum
	InClass
	InNamespace
	InFcnDef
	InFcnCall
	InSparen
	InFor
	InOCMsg
	InTemplate
	InTypedef
	InConstArgs
	InArrayAssign
	InClassBase

	StmtStart
	ExprStart

	VarDef
	Var1st
	VarType
	VarInline

	OneLiner
	EmptyBody
	KeepBrace

	Lvalue
	OldFcnParams
	RightComment
	DontIndent
	AlignStart
	WasAligned
	Anchor
	Punctuator
	Inserted
	LongBlock
	OCBoxed
	OCRType
	OCAType
	WFEndif
	InQtMacro

	// NoSpaceBefore marks a chunk the space pass decided has no gap
	// before it; output reads this instead of recomputing the decision.
	NoSpaceBefore
)

// CopyMask is the set of flags propagated when a chunk is cloned (for
// example when a virtual brace is materialized into a real one): bits
// that describe surrounding context travel with the clone, while
// purely local decisions (KeepBrace, WasAligned, Inserted, ...) do not
// leak from the original into the copy.
const CopyMask = InPreproc | InStruct | InEnum | InClass | InNamespace |
	InFcnDef | InFcnCall | InSparen | InFor | InOCMsg | InTemplate |
	InTypedef | InConstArgs | InArrayAssign | InClassBase

// Has reports whether all bits in mask are set.
func (f Flags) Has(mask Flags) bool { return f&mask == mask }

// Any reports whether any bit in mask is set.
func (f Flags) Any(mask Flags) bool { return f&mask != 0 }

// Set returns f with mask set.
func (f Flags) Set(mask Flags) Flags { return f | mask }

// Clear returns f with mask cleared.
func (f Flags) Clear(mask Flags) Flags { return f &^ mask }

// Copied returns the subset of f that propagates across a clone.
func (f Flags) Copied() Flags { return f & CopyMask }
