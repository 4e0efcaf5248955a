// Package output serializes a formatted chunk.List back to text:
// every visible chunk's Str with the gap the space pass decided on,
// virtual chunks as nothing, and whatever encoding/BOM
// internal/source detected on input restored on the way out.
package output

import (
	"strings"

	"github.com/cwbudde/go-uncgo/internal/chunk"
	"github.com/cwbudde/go-uncgo/internal/source"
)

// Style controls the physical spelling of line-leading whitespace.
// The zero value renders every column as spaces.
type Style struct {
	// IndentWithTabs spells line-leading indent as tabs of TabWidth
	// columns each, with a space remainder (indent_with_tabs).
	IndentWithTabs bool
	TabWidth       int
}

// Render walks list head to tail and produces the final text. Newline
// chunks emit NLCount line breaks (NLCount-1 blank lines between
// statements); every other visible chunk is padded with spaces out to
// its Column, and by at least one space, unless its NoSpaceBefore flag
// is set or it is the first chunk on its line (indent owns
// line-leading whitespace via Column).
func Render(list *chunk.List) string { return RenderStyled(list, Style{}) }

// RenderStyled is Render with explicit whitespace spelling.
func RenderStyled(list *chunk.List, style Style) string {
	var sb strings.Builder

	atLineStart := true
	col := 0
	for c := list.Head(); c != nil; c = c.Next() {
		switch {
		case c.Kind == chunk.EOF:
			continue

		case c.Kind == chunk.Newline || c.Kind == chunk.NLCont:
			n := c.NLCount
			if n < 1 {
				n = 1
			}
			for i := 0; i < n; i++ {
				sb.WriteByte('\n')
			}
			atLineStart = true
			col = 0
			continue

		case c.IsBlank():
			// Virtual braces/semicolons carry no text.
			continue
		}

		if atLineStart {
			pad := c.Column
			if pad < 0 {
				pad = 0
			}
			sb.WriteString(leadingWhitespace(pad, style))
			col = pad
			atLineStart = false
		} else if !c.Flags.Has(chunk.NoSpaceBefore) {
			want := c.Column
			if want <= col {
				want = col + 1
			}
			sb.WriteString(strings.Repeat(" ", want-col))
			col = want
		}

		sb.WriteString(c.Str)
		col += c.Len()
	}

	return sb.String()
}

// leadingWhitespace spells pad columns of indent per style: all
// spaces, or full tabs plus a space remainder.
func leadingWhitespace(pad int, style Style) string {
	if !style.IndentWithTabs || style.TabWidth <= 0 {
		return strings.Repeat(" ", pad)
	}
	tabs := pad / style.TabWidth
	rest := pad % style.TabWidth
	return strings.Repeat("\t", tabs) + strings.Repeat(" ", rest)
}

// RenderEncoded renders list and re-encodes the result using enc (the
// encoding/BOM internal/source.Detect observed on the original input),
// so the byte stream round-trips the detected encoding.
func RenderEncoded(list *chunk.List, enc source.Encoding) ([]byte, error) {
	text := Render(list)
	return source.Encode(enc, text)
}
