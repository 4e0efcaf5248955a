package diff_test

import (
	"strings"
	"testing"

	"github.com/cwbudde/go-uncgo/internal/diff"
)

func TestHasChanges(t *testing.T) {
	if diff.HasChanges("a\nb\n", "a\nb\n") {
		t.Fatal("identical text reported as changed")
	}
	if !diff.HasChanges("a\nb\n", "a\nc\n") {
		t.Fatal("differing text reported as unchanged")
	}
}

func TestUnifiedEmptyForIdenticalInput(t *testing.T) {
	if got := diff.Unified("f.c", "a\nb\n", "a\nb\n"); got != "" {
		t.Fatalf("Unified() = %q, want empty for identical input", got)
	}
}

func TestUnifiedMarksAddedAndRemovedLines(t *testing.T) {
	before := "int a;\nint b;\n"
	after := "int a;\nint c;\n"
	got := diff.Unified("f.c", before, after)

	if !strings.Contains(got, "--- f.c") || !strings.Contains(got, "+++ f.c") {
		t.Fatalf("Unified() missing file headers: %q", got)
	}
	if !strings.Contains(got, "-int b;") {
		t.Fatalf("Unified() missing removed line: %q", got)
	}
	if !strings.Contains(got, "+int c;") {
		t.Fatalf("Unified() missing added line: %q", got)
	}
	if !strings.Contains(got, " int a;") {
		t.Fatalf("Unified() missing unchanged context line: %q", got)
	}
}

func TestComputeReturnsSingleEqualHunkWhenIdentical(t *testing.T) {
	hunks := diff.Compute("same\n", "same\n")
	if len(hunks) != 1 || hunks[0].Op != diff.Equal {
		t.Fatalf("Compute() = %+v, want a single Equal hunk", hunks)
	}
}
