package chunk_test

import (
	"testing"

	"github.com/cwbudde/go-uncgo/internal/chunk"
)

func word(s string, line int) *chunk.Chunk {
	return chunk.New(chunk.Word, s, chunk.Position{Line: line, Col: 1})
}

func TestStackPushPopOrder(t *testing.T) {
	s := chunk.NewStack()
	a, b := word("a", 1), word("b", 2)
	s.Push(a, 1)
	s.Push(b, 2)

	if got, ok := s.Top(); !ok || got != b {
		t.Fatalf("Top() = %v, want b", got)
	}
	if got, ok := s.Pop(); !ok || got != b {
		t.Fatalf("Pop() = %v, want b", got)
	}
	if got, ok := s.Pop(); !ok || got != a {
		t.Fatalf("Pop() = %v, want a", got)
	}
	if _, ok := s.Pop(); ok {
		t.Fatal("Pop() on an empty stack should report false")
	}
}

func TestStackInvalidateLeavesGap(t *testing.T) {
	s := chunk.NewStack()
	a, b, c := word("a", 1), word("b", 2), word("c", 3)
	s.Push(a, 1)
	s.Push(b, 2)
	s.Push(c, 3)

	s.Invalidate(b)
	if s.Len() != 2 {
		t.Fatalf("Len() = %d after one Invalidate, want 2", s.Len())
	}
	// Pop skips over the invalidated gap.
	if got, ok := s.Pop(); !ok || got != c {
		t.Fatalf("Pop() = %v, want c", got)
	}
	if got, ok := s.Pop(); !ok || got != a {
		t.Fatalf("Pop() skipped to %v, want a (b was invalidated)", got)
	}
}

func TestStackCollapseCompacts(t *testing.T) {
	s := chunk.NewStack()
	a, b, c := word("a", 1), word("b", 2), word("c", 3)
	s.Push(a, 1)
	s.Push(b, 2)
	s.Push(c, 3)

	s.Invalidate(a)
	s.Invalidate(c)
	s.Collapse()

	all := s.All()
	if len(all) != 1 || all[0] != b {
		t.Fatalf("All() after Collapse = %v, want [b]", all)
	}
	if s.Empty() {
		t.Fatal("stack with one valid entry must not report Empty")
	}
}

func TestStackAllBottomToTop(t *testing.T) {
	s := chunk.NewStack()
	a, b := word("a", 1), word("b", 2)
	s.Push(a, 1)
	s.Push(b, 2)
	all := s.All()
	if len(all) != 2 || all[0] != a || all[1] != b {
		t.Fatalf("All() = %v, want bottom-to-top [a b]", all)
	}
}
