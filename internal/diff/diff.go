// Package diff renders a unified-style diff between an original file
// and its formatted output, for `uncgo format -d`, using a proper
// Myers diff rather than a naive positional line comparison.
package diff

import (
	"fmt"
	"strings"

	"github.com/gkampitakis/go-diff/diffmatchpatch"
)

// Hunk is one run of added, removed, or unchanged lines.
type Hunk struct {
	Op    Op
	Lines []string
}

// Op classifies a Hunk.
type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

// Unified computes a line-granular diff between before and after and
// renders it in unified-diff style (` `/`+`/`-` line prefixes, no
// hunk headers since callers already know the file path).
func Unified(path, before, after string) string {
	hunks := Compute(before, after)
	if len(hunks) == 1 && hunks[0].Op == Equal {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- %s\n+++ %s\n", path, path)
	for _, h := range hunks {
		prefix := " "
		switch h.Op {
		case Insert:
			prefix = "+"
		case Delete:
			prefix = "-"
		}
		for _, line := range h.Lines {
			sb.WriteString(prefix)
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Compute runs a line-mode Myers diff (the dmp.DiffLinesToChars /
// DiffMain / DiffCharsToLines recipe: each distinct line is mapped to
// a single rune so the character-level diff engine operates over
// whole lines) and regroups the result into Hunks.
func Compute(before, after string) []Hunk {
	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var hunks []Hunk
	for _, d := range diffs {
		lines := splitLines(d.Text)
		if len(lines) == 0 {
			continue
		}
		var op Op
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			op = Insert
		case diffmatchpatch.DiffDelete:
			op = Delete
		default:
			op = Equal
		}
		hunks = append(hunks, Hunk{Op: op, Lines: lines})
	}
	if len(hunks) == 0 {
		hunks = []Hunk{{Op: Equal}}
	}
	return hunks
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// HasChanges reports whether before and after differ at all, the
// entry point `uncgo format -l` (list-differs) uses without paying for
// a full render.
func HasChanges(before, after string) bool { return before != after }
