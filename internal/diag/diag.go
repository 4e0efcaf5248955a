// Package diag formats diagnostics (errors, warnings, and verbose
// trace messages) with source position and optional color.
package diag

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Severity classifies a Diagnostic.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// Diagnostic is a single positioned message.
type Diagnostic struct {
	Severity Severity
	File     string
	Line     int
	Col      int
	Message  string
	Rule     string // originating rule/option name, e.g. "sp_arith"
}

// Error implements the error interface so a Diagnostic can be returned
// directly from a fallible operation.
func (d *Diagnostic) Error() string { return d.Format(false) }

// Format renders the diagnostic as "file:line:col: severity[rule]: msg",
// colorizing the severity tag when color is true.
func (d *Diagnostic) Format(useColor bool) string {
	var sb strings.Builder
	if d.File != "" {
		fmt.Fprintf(&sb, "%s:%d:%d: ", d.File, d.Line, d.Col)
	} else {
		fmt.Fprintf(&sb, "%d:%d: ", d.Line, d.Col)
	}

	tag := d.Severity.String()
	if useColor {
		switch d.Severity {
		case Error:
			tag = color.New(color.FgRed, color.Bold).Sprint(tag)
		case Warning:
			tag = color.New(color.FgYellow, color.Bold).Sprint(tag)
		default:
			tag = color.New(color.FgCyan).Sprint(tag)
		}
	}
	sb.WriteString(tag)

	if d.Rule != "" {
		fmt.Fprintf(&sb, "[%s]", d.Rule)
	}
	sb.WriteString(": ")
	sb.WriteString(d.Message)
	return sb.String()
}

// Sink collects diagnostics emitted over the course of a run and
// reports whether any reached Error severity (the CLI's format command
// checks HasErrors to decide the process exit status).
type Sink struct {
	diags []*Diagnostic
	color bool
}

// NewSink creates a Sink. color is on when stdout is a terminal
// (mirrors the common fatih/color +
// mattn/go-isatty pairing used throughout the CLI ecosystem this
// corpus draws from); pass forceColor to override.
func NewSink(forceColor *bool) *Sink {
	useColor := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if forceColor != nil {
		useColor = *forceColor
	}
	return &Sink{color: useColor}
}

// Add records a diagnostic.
func (s *Sink) Add(d *Diagnostic) { s.diags = append(s.diags, d) }

// Errorf is a convenience constructor for an Error-severity diagnostic.
func (s *Sink) Errorf(file string, line, col int, rule, format string, a ...any) {
	s.Add(&Diagnostic{Severity: Error, File: file, Line: line, Col: col, Rule: rule, Message: fmt.Sprintf(format, a...)})
}

// Warnf is a convenience constructor for a Warning-severity diagnostic.
func (s *Sink) Warnf(file string, line, col int, rule, format string, a ...any) {
	s.Add(&Diagnostic{Severity: Warning, File: file, Line: line, Col: col, Rule: rule, Message: fmt.Sprintf(format, a...)})
}

// HasErrors reports whether any recorded diagnostic reached Error severity.
func (s *Sink) HasErrors() bool {
	for _, d := range s.diags {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// All returns every recorded diagnostic in emission order.
func (s *Sink) All() []*Diagnostic { return s.diags }

// WriteTo prints every diagnostic, one per line, to w.
func (s *Sink) WriteTo(w *os.File) {
	for _, d := range s.diags {
		fmt.Fprintln(w, d.Format(s.color))
	}
}
