package chunk

// Scope controls whether preprocessor-isolated navigation is allowed
// to cross out of a `#...` run.
type Scope int

const (
	// ScopeAll respects preprocessor isolation in one direction only: a
	// cursor inside a preprocessor run refuses to step out of it. A
	// cursor outside one is not kept out: it steps onto preprocessor
	// chunks like any other chunk; runs are not skipped.
	ScopeAll Scope = iota
	// ScopePreproc ignores preprocessor isolation entirely.
	ScopePreproc
)

// List is the owning doubly-linked token graph: the single source of
// truth every pass in internal/format operates on.
type List struct {
	head, tail *Chunk
	count      int
}

// NewList returns an empty chunk list.
func NewList() *List { return &List{} }

// Head returns the first chunk, or nil if the list is empty.
func (l *List) Head() *Chunk { return l.head }

// Tail returns the last chunk, or nil if the list is empty.
func (l *List) Tail() *Chunk { return l.tail }

// Len returns the number of chunks currently in the list.
func (l *List) Len() int { return l.count }

// AddTail appends c to the end of the list.
func (l *List) AddTail(c *Chunk) {
	c.prev = l.tail
	c.next = nil
	if l.tail != nil {
		l.tail.next = c
	} else {
		l.head = c
	}
	l.tail = c
	l.count++
}

// AddHead prepends c to the start of the list.
func (l *List) AddHead(c *Chunk) {
	c.next = l.head
	c.prev = nil
	if l.head != nil {
		l.head.prev = c
	} else {
		l.tail = c
	}
	l.head = c
	l.count++
}

// AddAfter splices c in immediately after ref. If ref is nil, c
// becomes the new head.
func (l *List) AddAfter(c, ref *Chunk) {
	if ref == nil {
		l.AddHead(c)
		return
	}
	c.prev = ref
	c.next = ref.next
	if ref.next != nil {
		ref.next.prev = c
	} else {
		l.tail = c
	}
	ref.next = c
	l.count++
}

// AddBefore splices c in immediately before ref. If ref is nil, c
// becomes the new tail.
func (l *List) AddBefore(c, ref *Chunk) {
	if ref == nil {
		l.AddTail(c)
		return
	}
	c.next = ref
	c.prev = ref.prev
	if ref.prev != nil {
		ref.prev.next = c
	} else {
		l.head = c
	}
	ref.prev = c
	l.count++
}

// Pop unlinks c from the list without discarding it; the caller owns
// whatever happens to the detached chunk afterward. c's own next/prev
// are left untouched so callers can still read its old neighbors.
func (l *List) Pop(c *Chunk) {
	if c.prev != nil {
		c.prev.next = c.next
	} else {
		l.head = c.next
	}
	if c.next != nil {
		c.next.prev = c.prev
	} else {
		l.tail = c.prev
	}
	l.count--
}

// Del unlinks and discards c.
func (l *List) Del(c *Chunk) { l.Pop(c) }

// Swap exchanges the list positions of two chunks a and b, adjacent or
// not.
func (l *List) Swap(a, b *Chunk) {
	if a == b || a == nil || b == nil {
		return
	}

	if a.next == b {
		aPrev, bNext := a.prev, b.next
		l.Pop(a)
		l.Pop(b)
		l.AddAfter(b, aPrev)
		l.AddAfter(a, b)
		_ = bNext
		return
	}
	if b.next == a {
		l.Swap(b, a)
		return
	}

	aPrev, bPrev := a.prev, b.prev
	l.Pop(a)
	l.Pop(b)
	l.AddAfter(b, aPrev)
	l.AddAfter(a, bPrev)
}

// SwapLines swaps the two whole source lines containing a and b by
// splicing out each line's run of chunks (up to but not including the
// terminating Newline) and re-inserting them in the other's place.
// a and b must not be on the same line.
func (l *List) SwapLines(a, b *Chunk) {
	lineStart := func(c *Chunk) *Chunk { return GetFirstOnLine(c) }
	lineEnd := func(start *Chunk) *Chunk {
		end := start
		for n := Next(end); n != nil && !n.IsNewline(); n = Next(end) {
			end = n
		}
		return end
	}

	aStart := lineStart(a)
	aEnd := lineEnd(aStart)
	bStart := lineStart(b)
	bEnd := lineEnd(bStart)
	if aStart == nil || bStart == nil {
		return
	}

	var aChunks, bChunks []*Chunk
	for c := aStart;; c = Next(c) {
		aChunks = append(aChunks, c)
		if c == aEnd {
			break
		}
	}
	for c := bStart;; c = Next(c) {
		bChunks = append(bChunks, c)
		if c == bEnd {
			break
		}
	}

	aAnchorPrev := Prev(aStart)
	bAnchorPrev := Prev(bStart)

	for _, c := range aChunks {
		l.Pop(c)
	}
	for _, c := range bChunks {
		l.Pop(c)
	}

	insertAfter := func(anchor *Chunk, chunks []*Chunk) {
		cur := anchor
		for _, c := range chunks {
			l.AddAfter(c, cur)
			cur = c
		}
	}
	insertAfter(bAnchorPrev, aChunks)
	insertAfter(aAnchorPrev, bChunks)
}

// Next returns the chunk after c, or nil at the tail.
func Next(c *Chunk) *Chunk {
	if c == nil {
		return nil
	}
	return c.next
}

// Prev returns the chunk before c, or nil at the head.
func Prev(c *Chunk) *Chunk {
	if c == nil {
		return nil
	}
	return c.prev
}

// crossable reports whether, under scope, navigation is allowed to
// step from chunk cur across the preprocessor boundary toward next.
func crossable(scope Scope, cur, nxt *Chunk) bool {
	if scope == ScopePreproc || cur == nil || nxt == nil {
		return true
	}
	// Inside a preproc run: refuse to step out of it.
	if cur.Flags.Has(InPreproc) && !nxt.Flags.Has(InPreproc) {
		return false
	}
	return true
}

// NextNC returns the next chunk after c that is not a comment, honoring scope.
func NextNC(c *Chunk, scope Scope) *Chunk {
	for n := Next(c); n != nil; n = Next(n) {
		if !crossable(scope, c, n) {
			return nil
		}
		if !n.Kind.IsComment() {
			return n
		}
		c = n
	}
	return nil
}

// PrevNC returns the previous chunk before c that is not a comment.
func PrevNC(c *Chunk, scope Scope) *Chunk {
	for p := Prev(c); p != nil; p = Prev(p) {
		if !crossable(scope, c, p) {
			return nil
		}
		if !p.Kind.IsComment() {
			return p
		}
		c = p
	}
	return nil
}

// NextNNL returns the next chunk that is not a newline.
func NextNNL(c *Chunk, scope Scope) *Chunk {
	for n := Next(c); n != nil; n = Next(n) {
		if !crossable(scope, c, n) {
			return nil
		}
		if !n.IsNewline() {
			return n
		}
		c = n
	}
	return nil
}

// PrevNNL returns the previous chunk that is not a newline.
func PrevNNL(c *Chunk, scope Scope) *Chunk {
	for p := Prev(c); p != nil; p = Prev(p) {
		if !crossable(scope, c, p) {
			return nil
		}
		if !p.IsNewline() {
			return p
		}
		c = p
	}
	return nil
}

// NextNCNNL returns the next chunk that is neither a comment nor a newline.
func NextNCNNL(c *Chunk, scope Scope) *Chunk {
	for n := Next(c); n != nil; n = Next(n) {
		if !crossable(scope, c, n) {
			return nil
		}
		if !n.IsNewline() && !n.Kind.IsComment() {
			return n
		}
		c = n
	}
	return nil
}

// PrevNCNNL returns the previous chunk that is neither a comment nor a newline.
func PrevNCNNL(c *Chunk, scope Scope) *Chunk {
	for p := Prev(c); p != nil; p = Prev(p) {
		if !crossable(scope, c, p) {
			return nil
		}
		if !p.IsNewline() && !p.Kind.IsComment() {
			return p
		}
		c = p
	}
	return nil
}

// NextNblank returns the next chunk that is neither a comment, newline,
// nor a blank (IsBlank) synthetic chunk.
func NextNblank(c *Chunk, scope Scope) *Chunk {
	for n := NextNCNNL(c, scope); n != nil; n = NextNCNNL(n, scope) {
		if !n.IsBlank() {
			return n
		}
	}
	return nil
}

// NextType returns the next chunk of the given kind at the same Level
// as start (or any level if level < 0), honoring scope.
func NextType(c *Chunk, k Kind, level int, scope Scope) *Chunk {
	for n := Next(c); n != nil; n = Next(n) {
		if !crossable(scope, c, n) {
			return nil
		}
		if n.Kind == k && (level < 0 || n.Level == level) {
			return n
		}
		c = n
	}
	return nil
}

// PrevType returns the previous chunk of the given kind at the same Level.
func PrevType(c *Chunk, k Kind, level int, scope Scope) *Chunk {
	for p := Prev(c); p != nil; p = Prev(p) {
		if !crossable(scope, c, p) {
			return nil
		}
		if p.Kind == k && (level < 0 || p.Level == level) {
			return p
		}
		c = p
	}
	return nil
}

// NextStr returns the next chunk whose Str matches s (optionally at a
// given Level).
func NextStr(c *Chunk, s string, level int, scope Scope) *Chunk {
	for n := Next(c); n != nil; n = Next(n) {
		if !crossable(scope, c, n) {
			return nil
		}
		if n.Str == s && (level < 0 || n.Level == level) {
			return n
		}
		c = n
	}
	return nil
}

// SkipToMatch returns the closing delimiter matching an opener, or the
// opening delimiter matching a closer. Returns nil if no matching
// chunk exists at the same Level before the list ends.
func SkipToMatch(c *Chunk, scope Scope) *Chunk {
	if c == nil || (!c.Kind.IsOpening() && !c.Kind.IsClosing()) {
		return nil
	}
	self := c.Kind
	want := self.Inverse()
	level := c.Level
	if self.IsOpening() {
		depth := 0
		for n := Next(c); n != nil; n = Next(n) {
			if !crossable(scope, c, n) {
				return nil
			}
			if n.Kind == self {
				depth++
			} else if n.Kind == want {
				if depth == 0 && n.Level == level {
					return n
				}
				if depth > 0 {
					depth--
				}
			}
			c = n
		}
		return nil
	}
	depth := 0
	for p := Prev(c); p != nil; p = Prev(p) {
		if !crossable(scope, c, p) {
			return nil
		}
		if p.Kind == self {
			depth++
		} else if p.Kind == want {
			if depth == 0 && p.Level == level {
				return p
			}
			if depth > 0 {
				depth--
			}
		}
		c = p
	}
	return nil
}

// SkipTemplate returns the AngleClose matching an AngleOpen template
// header, or nil if c is not an AngleOpen.
func SkipTemplate(c *Chunk, scope Scope) *Chunk {
	if c == nil || c.Kind != AngleOpen {
		return nil
	}
	return SkipToMatch(c, scope)
}

// SkipTsquare returns the chunk after a Tsquare (or a SquareOpen/Close
// pair) — the array-brackets elision helper.
func SkipTsquare(c *Chunk, scope Scope) *Chunk {
	if c == nil {
		return nil
	}
	if c.Kind == Tsquare {
		return NextNC(c, scope)
	}
	if c.Kind == SquareOpen {
		if close_ := SkipToMatch(c, scope); close_ != nil {
			return NextNC(close_, scope)
		}
	}
	return nil
}

// SkipAttribute returns the chunk after a `__attribute__((...))` run
// starting at c (c must be the WORD "__attribute__"), or nil if c does
// not introduce one.
func SkipAttribute(c *Chunk, scope Scope) *Chunk {
	if c == nil || c.Str != "__attribute__" {
		return nil
	}
	open := NextNC(c, scope)
	if open == nil || open.Kind != ParenOpen {
		return nil
	}
	close_ := SkipToMatch(open, scope)
	if close_ == nil {
		return nil
	}
	return NextNC(close_, scope)
}

// GetFirstOnLine walks backward from c until the previous chunk is a
// newline (or the head), returning the first non-newline chunk on c's
// source line.
func GetFirstOnLine(c *Chunk) *Chunk {
	if c == nil {
		return nil
	}
	first := c
	for p := Prev(first); p != nil && !p.IsNewline(); p = Prev(first) {
		first = p
	}
	return first
}

// Chunks returns every chunk in the list, head to tail, as a slice.
// Intended for tests and for passes that need random access (align,
// width) rather than pure forward/backward walks.
func (l *List) Chunks() []*Chunk {
	out := make([]*Chunk, 0, l.count)
	for c := l.head; c != nil; c = c.next {
		out = append(out, c)
	}
	return out
}
