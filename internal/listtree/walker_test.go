package listtree_test

import (
	"path"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/joeblew999/glob/internal/fsadapter"
	"github.com/joeblew999/glob/internal/listtree"
)

// fixtureDoc is a small YAML document listing the files a fixture
// filesystem should contain; directories are implied by their parents.
type fixtureDoc struct {
	Files []string `yaml:"files"`
}

const fixtureYAML = `
files:
  - foo/bar
  - foo/baz/qux
  - foo/baz/bang
`

func buildFixture(t *testing.T) fsadapter.Filesystem {
	t.Helper()
	var doc fixtureDoc
	require.NoError(t, yaml.Unmarshal([]byte(fixtureYAML), &doc))

	mem := afero.NewMemMapFs()
	for _, f := range doc.Files {
		require.NoError(t, mem.MkdirAll(path.Dir(f), 0755))
		require.NoError(t, afero.WriteFile(mem, f, []byte("x"), 0644))
	}
	return fsadapter.New(mem)
}

func listPaths(t *testing.T, pattern string, caseSensitive bool) []string {
	t.Helper()
	tree := plan(t, pattern, caseSensitive)
	w := listtree.NewWalker(buildFixture(t), caseSensitive, true, nil)
	entries, err := listtree.ListSync(w, tree, ".", listtree.CanOverlap(tree, caseSensitive))
	if err != nil {
		t.Fatalf("ListSync(%q) error: %v", pattern, err)
	}
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Path
	}
	return out
}

func assertPaths(t *testing.T, got []string, want ...string) {
	t.Helper()
	require.ElementsMatch(t, want, got)
}

func TestWalkerRecursiveDescent(t *testing.T) {
	got := listPaths(t, "foo/**", true)
	assertPaths(t, got, "foo/bar", "foo/baz", "foo/baz/qux", "foo/baz/bang")
}

func TestWalkerSingleCharWildcard(t *testing.T) {
	got := listPaths(t, "foo/ba?", true)
	assertPaths(t, got, "foo/bar", "foo/baz")
}

func TestWalkerRootNotFoundPropagates(t *testing.T) {
	tree := plan(t, "non/existent/**", true)
	w := listtree.NewWalker(buildFixture(t), true, true, nil)
	_, err := listtree.ListSync(w, tree, ".", false)
	if err == nil {
		t.Fatal("expected an error for a root-level not-found directory")
	}
	if !fsadapter.IsNotFound(err) {
		t.Errorf("expected IsNotFound(err), got %v", err)
	}
}

func TestWalkerNotFoundBelowWildcardIsAbsorbed(t *testing.T) {
	got := listPaths(t, "foo/*/nonexistent/**", true)
	if got != nil {
		t.Errorf("not-found below a wildcard match should yield no entries, got %v", got)
	}
}

func TestWalkerIntermediateCaseSensitiveDescent(t *testing.T) {
	got := listPaths(t, "foo/baz/qux", true)
	assertPaths(t, got, "foo/baz/qux")
}

func TestWalkerIntermediateCaseInsensitiveDescent(t *testing.T) {
	got := listPaths(t, "FOO/BAZ/qux", false)
	assertPaths(t, got, "foo/baz/qux")
}
