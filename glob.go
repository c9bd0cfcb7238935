// Package glob compiles POSIX-style shell glob patterns into matchers
// usable both as a string-pattern test and as a filesystem traversal
// driver that enumerates only the directories that could possibly contain
// matching entries.
//
// A Glob is immutable after New returns: its compiled pattern tree never
// changes, and its list-tree (the filesystem-descent plan used by List and
// ListSync) is built once, lazily, on first use.
package glob

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/joeblew999/glob/internal/ast"
	"github.com/joeblew999/glob/internal/flatten"
	"github.com/joeblew999/glob/internal/fsadapter"
	"github.com/joeblew999/glob/internal/listtree"
	"github.com/joeblew999/glob/internal/parseglob"
	"github.com/joeblew999/glob/internal/pathstyle"
)

// ErrNotFound is the sentinel a FilesystemError wraps when the underlying
// filesystem reports a missing entry (POSIX errno 2, Windows errno 3).
// Check with errors.Is(err, glob.ErrNotFound).
var ErrNotFound = fsadapter.ErrNotFound

// Glob is the compiled, immutable representation of a pattern. Construct
// one with New or Must.
type Glob struct {
	pattern       string
	adapter       pathstyle.Adapter
	recursive     bool
	caseSensitive bool
	logger        zerolog.Logger

	tree         *ast.Node
	absoluteRoot bool

	listOnce sync.Once
	listTree listtree.Tree
	listErr  error
	overlap  bool
}

// New compiles pattern into a Glob. Defaults: context is the running
// platform's native style, recursive is false, and caseSensitive is false
// under a Windows context and true otherwise (spec §6).
func New(pattern string, opts ...Option) (*Glob, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	adapter, err := pathstyle.For(cfg.style)
	if err != nil {
		return nil, err
	}

	res, err := parseglob.Parse(pattern, adapter, cfg.caseSensitive)
	if err != nil {
		return nil, wrapParseError(pattern, err)
	}

	tree := res.Tree
	if cfg.recursive {
		tree = parseglob.Recursive(tree)
	}

	return &Glob{
		pattern:       pattern,
		adapter:       adapter,
		recursive:     cfg.recursive,
		caseSensitive: cfg.caseSensitive,
		logger:        cfg.logger,
		tree:          tree,
		absoluteRoot:  res.AbsoluteRoot,
	}, nil
}

// Must is New, panicking on ParseError. Intended for package-level var
// initialization of fixed patterns, the same convenience
// regexp.MustCompile offers.
func Must(pattern string, opts ...Option) *Glob {
	g, err := New(pattern, opts...)
	if err != nil {
		panic(err)
	}
	return g
}

// String returns the original pattern text the Glob was compiled from.
func (g *Glob) String() string { return g.pattern }

// IsRecursive reports whether the Glob was constructed with WithRecursive.
func (g *Glob) IsRecursive() bool { return g.recursive }

// CaseSensitive reports the Glob's effective case-sensitivity.
func (g *Glob) CaseSensitive() bool { return g.caseSensitive }

// quoteMeta is the meta-character set Quote escapes (spec §4.7): the
// pattern grammar's meta characters, including the range-only '-', plus
// parens for parity with shell quoting conventions other glob libraries in
// the corpus follow. '^' is left unescaped; it is literal outside a class.
const quoteMeta = `*{[?\}],-()`

// Quote returns s with every meta character prefixed by a backslash, so
// that New(Quote(s)).Matches(s) is true and no other distinct path matches
// (spec §8's quoting round-trip property).
func Quote(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if strings.IndexByte(quoteMeta, c) >= 0 {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}

// Union returns a new Glob matching any path either g or other matches.
// It fails when the two Globs were compiled with different contexts or
// different case-sensitivity (spec §4.7, §7).
func (g *Glob) Union(other *Glob) (*Glob, error) {
	if g.adapter.Style() != other.adapter.Style() {
		return nil, &IncompatibleUnionError{Reason: "different contexts"}
	}
	if g.caseSensitive != other.caseSensitive {
		return nil, &IncompatibleUnionError{Reason: "different case-sensitivity"}
	}
	combined := &ast.Node{
		Kind:          ast.KindOptions,
		CaseSensitive: g.caseSensitive,
		Children:      []*ast.Node{g.tree, other.tree},
	}
	return &Glob{
		pattern:       "{" + g.pattern + "," + other.pattern + "}",
		adapter:       g.adapter,
		recursive:     g.recursive || other.recursive,
		caseSensitive: g.caseSensitive,
		logger:        g.logger,
		tree:          combined,
		absoluteRoot:  g.absoluteRoot || other.absoluteRoot,
	}, nil
}

// buildListTree builds and caches g's list-tree (spec §3's ListTree
// lifecycle: built once per Glob during its first list call, never
// mutated afterwards). Concurrent first calls are safe: sync.Once
// guarantees exactly one build runs, and every caller observes the same
// result, satisfying spec §5's "build under a guard" option.
func (g *Glob) buildListTree() (listtree.Tree, bool, error) {
	g.listOnce.Do(func() {
		flat := flatten.Flatten(g.tree, g.caseSensitive)
		tree := listtree.Plan(flat, g.caseSensitive)
		g.listTree = tree
		g.overlap = listtree.CanOverlap(tree, g.caseSensitive)
	})
	return g.listTree, g.overlap, g.listErr
}

// checkContext enforces spec §4.7's "list/listSync fail if the Glob's
// context disagrees with the running platform's path style".
func (g *Glob) checkContext() error {
	system := pathstyle.System().Style()
	if g.adapter.Style() != system {
		return &ContextMismatchError{Context: g.adapter.Style(), System: system}
	}
	return nil
}

// resolveRoot determines the concrete directory the "." list-tree root
// listing starts from: the supplied root, or the adapter's current
// directory when root is empty (spec §6's "root: defaults to the
// adapter's current directory").
func (g *Glob) resolveRoot(root string) (string, error) {
	if root != "" {
		return root, nil
	}
	return g.adapter.Current()
}

// ListSync materializes every filesystem entity the Glob's pattern can
// match, starting from root (the adapter's current directory when root is
// empty), following symlinks when followLinks is true.
func (g *Glob) ListSync(root string, followLinks bool) ([]fsadapter.Entry, error) {
	if err := g.checkContext(); err != nil {
		return nil, err
	}
	tree, overlap, err := g.buildListTree()
	if err != nil {
		return nil, err
	}
	listRoot, err := g.resolveRoot(root)
	if err != nil {
		return nil, err
	}
	w := listtree.NewWalker(fsadapter.NewOS(), g.caseSensitive, followLinks, &g.logger)
	entries, err := listtree.ListSync(w, tree, listRoot, overlap)
	if err != nil {
		return nil, &FilesystemError{Path: listRoot, Err: err}
	}
	return entries, nil
}

// List returns a cancellable stream of filesystem entities the Glob's
// pattern can match. Each list-tree root is walked to completion before its
// entries are sent; cancelling ctx stops the sending without leaking
// goroutines, but does not interrupt a walk already in progress.
func (g *Glob) List(ctx context.Context, root string, followLinks bool) (<-chan fsadapter.Entry, <-chan error) {
	if err := g.checkContext(); err != nil {
		errc := make(chan error, 1)
		errc <- err
		close(errc)
		out := make(chan fsadapter.Entry)
		close(out)
		return out, errc
	}
	tree, overlap, err := g.buildListTree()
	if err != nil {
		errc := make(chan error, 1)
		errc <- err
		close(errc)
		out := make(chan fsadapter.Entry)
		close(out)
		return out, errc
	}
	listRoot, err := g.resolveRoot(root)
	if err != nil {
		errc := make(chan error, 1)
		errc <- err
		close(errc)
		out := make(chan fsadapter.Entry)
		close(out)
		return out, errc
	}
	w := listtree.NewWalker(fsadapter.NewOS(), g.caseSensitive, followLinks, &g.logger)
	return listtree.ListAsync(ctx, w, tree, listRoot, overlap)
}
