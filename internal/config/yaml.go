package config

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/cwbudde/go-uncgo/internal/options"
)

// LoadYAML reads a structured config of the shape:
//	space:
//	  sp_arith: add
//	indent:
//	  indent_columns: 4
// into s. Grouping by the option's Group is purely cosmetic on the
// YAML side — every leaf is still resolved by flat option name, so a
// top-level key also works. Generalizes the flat "name = value" INI
// grammar for projects already standardized on YAML config.
func LoadYAML(r io.Reader, s *options.Set) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parsing yaml config: %w", err)
	}

	flat := make(map[string]any)
	flatten(doc, flat)

	for name, v := range flat {
		if _, ok := s.Spec(name); !ok {
			continue // unrecognized keys are ignored, e.g. grouping headers
		}
		if err := s.SetRaw(name, fmt.Sprintf("%v", v)); err != nil {
			return fmt.Errorf("yaml option %q: %w", name, err)
		}
	}
	return nil
}

// flatten walks a nested map produced by YAML grouping headers
// (space:, indent:, ...) and collects every leaf keyed by its own name,
// since options.Set resolves by flat option name regardless of how the
// file visually grouped it.
func flatten(m map[string]any, out map[string]any) {
	for k, v := range m {
		if nested, ok := v.(map[string]any); ok {
			flatten(nested, out)
			continue
		}
		out[k] = v
	}
}
