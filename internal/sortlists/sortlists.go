// Package sortlists implements the sortable-list half of the rewrite
// family: stable reordering of adjacent #include/import/using
// directives. Directives are bucketed by a regex before sorting each
// bucket independently rather than sorting the whole run as one flat
// list, so system headers, local headers, and the rest each stay
// together as their own sorted group.
package sortlists

import (
	"regexp"
	"sort"
	"strings"

	"github.com/cwbudde/go-uncgo/internal/chunk"
	"github.com/cwbudde/go-uncgo/internal/format"
)

type Pass struct{}

func (Pass) Name() string { return "sort-lists" }

func (p Pass) Run(ctx *format.Context) error {
	opts := ctx.Opts
	if opts.Bool("mod_sort_include") {
		sortRuns(ctx.List, chunk.PPInclude, defaultBuckets)
	}
	if opts.Bool("mod_sort_import") || opts.Bool("mod_sort_using") {
		sortStatementRuns(ctx.List, chunk.KwUsing)
	}
	return nil
}

// sortStatementRuns handles multi-chunk directives such as
// `using a.b;`: each maximal run of consecutive lines beginning with
// kind k is ordered by whole-line text, swapping entire lines so the
// statements' own chunk structure never needs rebuilding. Run calls it
// with KwUsing only, for both mod_sort_using and mod_sort_import;
// `import` lines carry no keyword kind and are not sorted.
func sortStatementRuns(list *chunk.List, k chunk.Kind) {
	for c := list.Head(); c != nil; {
		if c.Kind != k || chunk.GetFirstOnLine(c) != c {
			c = c.Next()
			continue
		}
		starts := []*chunk.Chunk{c}
		for cur := c;; {
			next := firstOnNextLine(cur)
			if next == nil || next.Kind != k {
				break
			}
			starts = append(starts, next)
			cur = next
		}
		for i := 0; i < len(starts); i++ {
			min := i
			for j := i + 1; j < len(starts); j++ {
				if lineText(starts[j]) < lineText(starts[min]) {
					min = j
				}
			}
			if min != i {
				list.SwapLines(starts[i], starts[min])
				starts[i], starts[min] = starts[min], starts[i]
			}
		}
		c = chunk.Next(starts[len(starts)-1])
	}
}

func firstOnNextLine(c *chunk.Chunk) *chunk.Chunk {
	cur := c
	for cur != nil && !cur.IsNewline() {
		cur = cur.Next()
	}
	if cur == nil {
		return nil
	}
	return cur.Next()
}

func lineText(start *chunk.Chunk) string {
	var sb strings.Builder
	for c := start; c != nil && !c.IsNewline(); c = c.Next() {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.Str)
	}
	return sb.String()
}

// bucket pairs a regex with the relative priority its matches sort
// into; directives matching no bucket fall into one final catch-all
// bucket, sorted after all the others.
type bucket struct {
	pattern *regexp.Regexp
	prio    int
}

// defaultBuckets is the default category split:
// angle-bracket system headers first, then quoted local headers.
var defaultBuckets = []bucket{
	{regexp.MustCompile(`^#include\s*<`), 0},
	{regexp.MustCompile(`^#include\s*"`), 1},
}

// sortRuns finds every maximal run of adjacent (separated only by
// newlines) chunks of kind k and stably sorts each run by bucket
// priority then lexical text (only identical texts keep their original
// relative order), leaving the surrounding code untouched.
func sortRuns(list *chunk.List, k chunk.Kind, buckets []bucket) {
	for c := list.Head(); c != nil; {
		if c.Kind != k {
			c = c.Next()
			continue
		}
		run, after := collectRun(c, k)
		sortRun(list, run, buckets)
		c = after
	}
}

func collectRun(start *chunk.Chunk, k chunk.Kind) ([]*chunk.Chunk, *chunk.Chunk) {
	var run []*chunk.Chunk
	c := start
	for c != nil && (c.Kind == k || (c.IsNewline() && chunk.NextNNL(c, chunk.ScopeAll) != nil && chunk.NextNNL(c, chunk.ScopeAll).Kind == k)) {
		if c.Kind == k {
			run = append(run, c)
		}
		c = c.Next()
	}
	return run, c
}

func sortRun(list *chunk.List, run []*chunk.Chunk, buckets []bucket) {
	if len(run) < 2 {
		return
	}
	type item struct {
		c    *chunk.Chunk
		prio int
	}
	items := make([]item, len(run))
	for i, c := range run {
		items[i] = item{c: c, prio: bucketOf(c.Str, buckets)}
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].prio != items[j].prio {
			return items[i].prio < items[j].prio
		}
		return strings.Compare(items[i].c.Str, items[j].c.Str) < 0
	})

	// Reassign each original slot's text from the sorted order, rather
	// than re-splicing chunks, so nothing else about the run's
	// surrounding whitespace needs to move. Texts are snapshotted first:
	// the sorted items alias the same chunks as the slots being written.
	texts := make([]string, len(items))
	for i, it := range items {
		texts[i] = it.c.Str
	}
	for i, slot := range run {
		slot.Str = texts[i]
	}
}

func bucketOf(text string, buckets []bucket) int {
	for _, b := range buckets {
		if b.pattern.MatchString(text) {
			return b.prio
		}
	}
	return len(buckets)
}

var _ format.Pass = Pass{}
