// Package uncgo assembles the leaf pass packages into the concrete
// formatting pipeline, in its fixed order. It is
// the one place allowed to import every pass package at once: each
// pass package imports internal/format for the Pass interface, so the
// wiring that imports *all* of them has to live one layer above
// internal/format to avoid a cycle.
package uncgo

import (
	"path/filepath"
	"strings"

	"github.com/cwbudde/go-uncgo/internal/align"
	"github.com/cwbudde/go-uncgo/internal/blanklines"
	"github.com/cwbudde/go-uncgo/internal/bracecleanup"
	"github.com/cwbudde/go-uncgo/internal/braces"
	"github.com/cwbudde/go-uncgo/internal/chunk"
	"github.com/cwbudde/go-uncgo/internal/cleanup"
	"github.com/cwbudde/go-uncgo/internal/combine"
	"github.com/cwbudde/go-uncgo/internal/diag"
	"github.com/cwbudde/go-uncgo/internal/format"
	"github.com/cwbudde/go-uncgo/internal/indent"
	"github.com/cwbudde/go-uncgo/internal/lang"
	"github.com/cwbudde/go-uncgo/internal/newlines"
	"github.com/cwbudde/go-uncgo/internal/options"
	"github.com/cwbudde/go-uncgo/internal/output"
	"github.com/cwbudde/go-uncgo/internal/pawn"
	"github.com/cwbudde/go-uncgo/internal/rewrite"
	"github.com/cwbudde/go-uncgo/internal/sortlists"
	"github.com/cwbudde/go-uncgo/internal/source"
	"github.com/cwbudde/go-uncgo/internal/space"
	"github.com/cwbudde/go-uncgo/internal/tokenizer"
	"github.com/cwbudde/go-uncgo/internal/width"
)

// Pipeline returns the pass cascade in its fixed order:
// tokenize-cleanup, brace-cleanup, combine, pawn, braces, newlines,
// blank-lines, semicolons/parens/returns/sort, space, then the
// indent<->width fixed-point loop, then align.
func Pipeline() format.Config {
	return format.Config{
		Passes: []format.Pass{
			cleanup.Pass{},
			bracecleanup.Pass{},
			combine.Pass{},
			pawn.Pass{},
			braces.Pass{},
			newlines.Pass{},
			blanklines.Pass{},
			rewrite.Pass{},
			sortlists.Pass{},
			space.Pass{},
		},
		Indent: indent.Pass{},
		Width:  width.Pass{},
		Align:  align.Pass{},
	}
}

// LanguageFor resolves the active language flag for a file: an
// explicit override (CLI `--lang`) wins, otherwise the extension of
// path is looked up in internal/lang.ByExtension.
func LanguageFor(path string, override lang.Flag) lang.Flag {
	if override != lang.None {
		return override
	}
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	return lang.FromExtension(ext)
}

// Result is everything a caller (cmd/uncgo, tests) might want back
// from a single Format call.
type Result struct {
	// Output is the formatted, re-encoded file content.
	Output []byte
	// Changed reports whether Output differs from the original text
	// (decoded, pre-format), the signal `format -l`/`format --check` need.
	Changed bool
	// Before and After are the decoded (pre-encode) text, for callers
	// that want to build a diff (internal/diff.Unified).
	Before, After string
	// Diag collects every warning/error raised during the run.
	Diag *diag.Sink
	// List is the final chunk list, exposed for `uncgo tokenize`-style
	// introspection and tests.
	List *chunk.List
}

// Format runs the full cascade over raw (the undecoded file bytes),
// returning the re-formatted, re-encoded output plus enough metadata
// to implement every `uncgo format` flag.
func Format(raw []byte, path string, opts *options.Set, langOverride lang.Flag, trace func(string)) (*Result, error) {
	enc, text, err := source.Detect(raw)
	if err != nil {
		return nil, err
	}

	activeLang := LanguageFor(path, langOverride)
	list := tokenizer.New(text, tokenizer.WithLanguage(activeLang)).Tokenize()

	sink := diag.NewSink(nil)
	ctx := format.NewContext(list, opts, activeLang, path, sink)
	ctx.Trace = trace

	if err := Pipeline().Run(ctx); err != nil {
		return nil, err
	}

	style := output.Style{
		IndentWithTabs: opts.UInt("indent_with_tabs") > 0,
		TabWidth:       int(opts.UInt("indent_columns")),
	}
	after := output.RenderStyled(list, style)

	// utf8_bom can force the BOM on or off regardless of what the
	// input carried; IGNORE keeps the detected state.
	switch opts.ARF("utf8_bom") {
	case options.Add, options.Force:
		if enc == source.UTF8 {
			enc = source.UTF8BOM
		}
	case options.Remove:
		if enc == source.UTF8BOM {
			enc = source.UTF8
		}
	}

	// The `newlines` option respells line endings in the encoded
	// output; "auto" keeps plain LF.
	encodedText := after
	switch opts.String("newlines") {
	case "crlf":
		encodedText = strings.ReplaceAll(after, "\n", "\r\n")
	case "cr":
		encodedText = strings.ReplaceAll(after, "\n", "\r")
	}

	encoded, err := source.Encode(enc, encodedText)
	if err != nil {
		return nil, err
	}

	return &Result{
		Output:  encoded,
		Changed: after != text,
		Before:  text,
		After:   after,
		Diag:    sink,
		List:    list,
	}, nil
}
