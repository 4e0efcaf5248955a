package config_test

import (
	"strings"
	"testing"

	"github.com/cwbudde/go-uncgo/internal/config"
	"github.com/cwbudde/go-uncgo/internal/options"
)

func TestLoadINI(t *testing.T) {
	src := `
# spacing
sp_arith = remove
indent_columns = 8

mod_sort_include = true  # trailing comment
`
	s := options.NewDefaultSet()
	if err := config.LoadINI(strings.NewReader(src), s); err != nil {
		t.Fatal(err)
	}
	if got := s.ARF("sp_arith"); got != options.Remove {
		t.Errorf("sp_arith = %v, want REMOVE", got)
	}
	if got := s.UInt("indent_columns"); got != 8 {
		t.Errorf("indent_columns = %d, want 8", got)
	}
	if !s.Bool("mod_sort_include") {
		t.Error("mod_sort_include not set")
	}
}

func TestLoadINIRejectsMalformedLine(t *testing.T) {
	s := options.NewDefaultSet()
	err := config.LoadINI(strings.NewReader("indent_columns 8\n"), s)
	if err == nil {
		t.Fatal("expected an error for a line without '='")
	}
}

func TestLoadINIRejectsUnknownOption(t *testing.T) {
	s := options.NewDefaultSet()
	err := config.LoadINI(strings.NewReader("frobnicate = 1\n"), s)
	if err == nil {
		t.Fatal("expected an error for an unknown option")
	}
}

func TestLoadYAMLGrouped(t *testing.T) {
	src := `
space:
  sp_arith: force
indent:
  indent_columns: 2
`
	s := options.NewDefaultSet()
	if err := config.LoadYAML(strings.NewReader(src), s); err != nil {
		t.Fatal(err)
	}
	if got := s.ARF("sp_arith"); got != options.Force {
		t.Errorf("sp_arith = %v, want FORCE", got)
	}
	if got := s.UInt("indent_columns"); got != 2 {
		t.Errorf("indent_columns = %d, want 2", got)
	}
}

func TestLoadYAMLFlat(t *testing.T) {
	s := options.NewDefaultSet()
	if err := config.LoadYAML(strings.NewReader("code_width: 100\n"), s); err != nil {
		t.Fatal(err)
	}
	if got := s.UInt("code_width"); got != 100 {
		t.Errorf("code_width = %d, want 100", got)
	}
}
