package uncgo

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/go-uncgo/internal/chunk"
	"github.com/cwbudde/go-uncgo/internal/lang"
	"github.com/cwbudde/go-uncgo/internal/options"
)

func TestMain(m *testing.M) {
	code := m.Run()
	snaps.Clean(m)
	os.Exit(code)
}

// fixturePaths lists the input files under testdata/, skipping any
// subdirectory (go-snaps keeps its __snapshots__ directory beside
// testdata/, not inside it).
func fixturePaths(t *testing.T) []string {
	t.Helper()
	entries, err := filepath.Glob("testdata/*")
	require.NoError(t, err)
	var paths []string
	for _, p := range entries {
		info, err := os.Stat(p)
		require.NoError(t, err)
		if !info.IsDir() {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)
	return paths
}

// TestFormatFixtures runs every file under testdata/ through the full
// cascade and snapshots the output, the golden-file harness the
// before/after formatting behavior is pinned by.
func TestFormatFixtures(t *testing.T) {
	entries := fixturePaths(t)
	require.NotEmpty(t, entries, "no fixtures under testdata/")

	for _, path := range entries {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			raw, err := os.ReadFile(path)
			require.NoError(t, err)

			res, err := Format(raw, path, options.NewDefaultSet(), lang.None, nil)
			require.NoError(t, err)
			snaps.MatchSnapshot(t, res.After)
		})
	}
}

// TestIdempotence: formatting a second time changes nothing.
func TestIdempotence(t *testing.T) {
	for _, path := range fixturePaths(t) {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			raw, err := os.ReadFile(path)
			require.NoError(t, err)

			once, err := Format(raw, path, options.NewDefaultSet(), lang.None, nil)
			require.NoError(t, err)
			twice, err := Format([]byte(once.After), path, options.NewDefaultSet(), lang.None, nil)
			require.NoError(t, err)
			require.Equal(t, once.After, twice.After, "second format run must be a no-op")
		})
	}
}

// TestListIntegrity: after the full cascade, every chunk's prev/next
// links agree in both directions.
func TestListIntegrity(t *testing.T) {
	src := []byte("int main(void)\n{\n\tif (x)\n\t\treturn 1;\n\treturn 0;\n}\n")
	res, err := Format(src, "main.c", options.NewDefaultSet(), lang.None, nil)
	require.NoError(t, err)

	list := res.List
	require.NotNil(t, list.Head())
	require.Nil(t, list.Head().Prev())
	require.Nil(t, list.Tail().Next())
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Next() != nil {
			require.Same(t, c, c.Next().Prev(), "next/prev mismatch at %q", c.Str)
		}
		if c.Prev() != nil {
			require.Same(t, c, c.Prev().Next(), "prev/next mismatch at %q", c.Str)
		}
	}
}

// TestDelimiterBalance: every opener's SkipToMatch lands on the
// inverse kind at the same level.
func TestDelimiterBalance(t *testing.T) {
	src := []byte("void f(int a)\n{\n\twhile (a > 0) {\n\t\tg(a, b[1]);\n\t\ta = a - 1;\n\t}\n}\n")
	res, err := Format(src, "f.c", options.NewDefaultSet(), lang.None, nil)
	require.NoError(t, err)

	for c := res.List.Head(); c != nil; c = c.Next() {
		if !c.Kind.IsOpening() {
			continue
		}
		match := chunk.SkipToMatch(c, chunk.ScopeAll)
		require.NotNil(t, match, "unmatched opener %q (%v) at line %d", c.Str, c.Kind, c.OrigLine)
		require.Equal(t, c.Kind.Inverse(), match.Kind, "wrong closer for %q", c.Str)
		require.Equal(t, c.Level, match.Level, "level mismatch for %q", c.Str)
	}
}

// TestPreprocIsolation: directive chunks carry IN_PREPROC.
func TestPreprocIsolation(t *testing.T) {
	src := []byte("#ifdef FOO\nint x;\n#endif\nint y;\n")
	res, err := Format(src, "p.c", options.NewDefaultSet(), lang.None, nil)
	require.NoError(t, err)

	for c := res.List.Head(); c != nil; c = c.Next() {
		if c.Kind.IsPreproc() {
			require.True(t, c.Flags.Has(chunk.InPreproc), "directive %q missing IN_PREPROC", c.Str)
		}
	}
}

// TestEmptyFile: empty in, empty out.
func TestEmptyFile(t *testing.T) {
	res, err := Format(nil, "empty.c", options.NewDefaultSet(), lang.None, nil)
	require.NoError(t, err)
	require.Empty(t, res.Output)
	require.False(t, res.Changed)
}

func TestLanguageForExtension(t *testing.T) {
	require.Equal(t, lang.CPP, LanguageFor("x.cpp", lang.None))
	require.Equal(t, lang.ObjC, LanguageFor("x.m", lang.None))
	require.Equal(t, lang.C, LanguageFor("x.unknown", lang.None))
	require.Equal(t, lang.D, LanguageFor("x.cpp", lang.D), "explicit override wins")
}
