package format

import (
	"github.com/cwbudde/go-uncgo/internal/chunk"
	"github.com/cwbudde/go-uncgo/internal/diag"
	"github.com/cwbudde/go-uncgo/internal/lang"
	"github.com/cwbudde/go-uncgo/internal/options"
)

// Context is the shared state threaded through every Pass, in place
// of a process-global state struct.
type Context struct {
	// List is the chunk graph every pass reads or mutates in place.
	List *chunk.List

	// Opts is the resolved option set driving every pass's policy
	// decisions (spacing, newlines, indentation width, alignment spans).
	Opts *options.Set

	// Lang is the active language mask for this file.
	Lang lang.Flag

	// File is the source path, used only for diagnostics; empty for
	// stdin input.
	File string

	// Diag collects warnings/errors raised by passes (malformed input
	// that couldn't be recovered, conflicting option combinations).
	Diag *diag.Sink

	// Trace, if non-nil, is invoked with each pass's name immediately
	// before it runs (wired to the --trace CLI flag).
	Trace func(passName string)

	// widthIteration counts indent<->width fixed-point iterations
	//; passes that need to
	// know whether they're on a re-run (e.g. to suppress duplicate
	// diagnostics) read this.
	widthIteration int

	// Changes is the mutation counter used for convergence detection.
	// It is bumped by the width pass for each line break it inserts, by
	// indent for each line-leading column it moves, and by braces for
	// each real pair it turns virtual; other passes' edits are not
	// counted. The indent<->width loop in run.go stops early once a full
	// iteration leaves this unchanged.
	Changes int
}

// IncChanges records that a pass made a structural change to the
// chunk list during this run.
func (c *Context) IncChanges() { c.Changes++ }

// NewContext builds a Context ready to run a Pipeline against list.
func NewContext(list *chunk.List, opts *options.Set, language lang.Flag, file string, sink *diag.Sink) *Context {
	return &Context{List: list, Opts: opts, Lang: language, File: file, Diag: sink}
}

// WidthIteration returns which indent/width fixed-point pass this is
// (0-based).
func (c *Context) WidthIteration() int { return c.widthIteration }

// beginWidthIteration is called by the driver between indent and width
// re-runs; unexported because only Config.Run
// (internal/format/run.go) owns the loop.
func (c *Context) beginWidthIteration(n int) { c.widthIteration = n }
