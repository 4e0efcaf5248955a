package options

import "fmt"

// Spec declares one named option's datatype, default, and grouping.
// The registry is a flat name-to-value table with no richer
// structure.
type Spec struct {
	Name    string
	Kind    Kind
	Default Value
	Group   string // e.g. "space", "newline", "indent", "align", "blank_line"
	Doc     string
}

// Set is the process-wide option store: every named option resolved
// to exactly one typed Value, loaded once before tokenization and
// read-only thereafter.
type Set struct {
	specs  map[string]Spec
	values map[string]Value
	order  []string // registration order, for deterministic dump output
}

// NewSet builds a Set pre-populated with every Spec's default value.
func NewSet(specs []Spec) *Set {
	s := &Set{
		specs:  make(map[string]Spec, len(specs)),
		values: make(map[string]Value, len(specs)),
	}
	for _, sp := range specs {
		s.specs[sp.Name] = sp
		s.values[sp.Name] = sp.Default
		s.order = append(s.order, sp.Name)
	}
	return s
}

// Names returns every registered option name in registration order.
func (s *Set) Names() []string { return append([]string(nil), s.order...) }

// Spec returns the declared shape of a named option.
func (s *Set) Spec(name string) (Spec, bool) {
	sp, ok := s.specs[name]
	return sp, ok
}

// Get returns the current value of a named option.
func (s *Set) Get(name string) (Value, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Bool, UInt, Int, ARF, Pos, and String are typed accessors for call
// sites that know an option's kind statically (every pass does); they
// panic on a missing name since that indicates a registry bug, not bad
// input.
func (s *Set) Bool(name string) bool {
	return s.mustGet(name).B
}
func (s *Set) UInt(name string) uint64 {
	return s.mustGet(name).U
}
func (s *Set) Int(name string) int64 {
	return s.mustGet(name).I
}
func (s *Set) ARF(name string) IARF {
	return s.mustGet(name).A
}
func (s *Set) Position(name string) Position {
	return s.mustGet(name).P
}
func (s *Set) String(name string) string {
	return s.mustGet(name).S
}

func (s *Set) mustGet(name string) Value {
	v, ok := s.values[name]
	if !ok {
		panic(fmt.Sprintf("options: unregistered option %q", name))
	}
	return v
}

// Set assigns a named option's value after validating it matches the
// declared Kind, used by both the config-file loader and CLI
// `--set name=value` overrides.
func (s *Set) Set(name string, v Value) error {
	sp, ok := s.specs[name]
	if !ok {
		return fmt.Errorf("unknown option %q", name)
	}
	if v.Kind != sp.Kind {
		return fmt.Errorf("option %q expects kind %v, got %v", name, sp.Kind, v.Kind)
	}
	s.values[name] = v
	return nil
}

// SetRaw parses raw against the option's declared Kind and assigns it,
// the entry point both the INI-style config loader and YAML loader use.
func (s *Set) SetRaw(name, raw string) error {
	sp, ok := s.specs[name]
	if !ok {
		return fmt.Errorf("unknown option %q", name)
	}
	v, err := ParseValue(sp.Kind, raw)
	if err != nil {
		return fmt.Errorf("option %q: %w", name, err)
	}
	s.values[name] = v
	return nil
}

// Clone returns an independent copy, so detect.go can propose a
// complete option set from a sample file without mutating the caller's
// baseline until the caller accepts it.
func (s *Set) Clone() *Set {
	c := &Set{
		specs:  s.specs,
		values: make(map[string]Value, len(s.values)),
		order:  append([]string(nil), s.order...),
	}
	for k, v := range s.values {
		c.values[k] = v
	}
	return c
}
