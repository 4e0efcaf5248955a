// Package config loads an options.Set from the two file formats the
// CLI accepts: the tool's native "name = value" config format, and a
// YAML config for projects that prefer a structured file.
package config

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cwbudde/go-uncgo/internal/options"
)

// LoadINI reads the native "key = value" config format into s,
// one assignment per line. '#' introduces a line comment; blank lines
// and lines containing only a comment are skipped. Mirrors the
// original config file's own grammar.
func LoadINI(r io.Reader, s *options.Set) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		eq := strings.IndexByte(line, '=')
		if eq < 0 {
			return fmt.Errorf("config line %d: missing '=' in %q", lineNo, line)
		}
		name := strings.TrimSpace(line[:eq])
		val := strings.TrimSpace(line[eq+1:])
		if err := s.SetRaw(name, val); err != nil {
			return fmt.Errorf("config line %d: %w", lineNo, err)
		}
	}
	return scanner.Err()
}
