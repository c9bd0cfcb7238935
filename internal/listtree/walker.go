package listtree

import (
	"context"
	"path"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/joeblew999/glob/internal/ast"
	"github.com/joeblew999/glob/internal/diag"
	"github.com/joeblew999/glob/internal/fsadapter"
	"github.com/joeblew999/glob/internal/matcher"
)

// Walker drives a Tree against a Filesystem (spec §4.6). Construct with
// NewWalker, which supplies diag.NopLogger by default; the root glob
// package injects a real logger via glob.WithLogger.
type Walker struct {
	FS            fsadapter.Filesystem
	CaseSensitive bool
	FollowLinks   bool
	Logger        zerolog.Logger
}

// NewWalker returns a ready-to-use Walker, defaulting logger to
// diag.NopLogger.
func NewWalker(fs fsadapter.Filesystem, caseSensitive, followLinks bool, logger *zerolog.Logger) *Walker {
	l := diag.NopLogger
	if logger != nil {
		l = *logger
	}
	return &Walker{FS: fs, CaseSensitive: caseSensitive, FollowLinks: followLinks, Logger: l}
}

// ListSync walks every root in tree starting from listRoot (the "." root's
// concrete directory; absolute roots start from themselves) and returns the
// full, deduplicated-if-needed result set.
func ListSync(w *Walker, tree Tree, listRoot string, overlap bool) ([]fsadapter.Entry, error) {
	var all []fsadapter.Entry
	for key, node := range tree {
		d := key
		if key == "." {
			d = listRoot
		}
		entries, err := w.walk(d, node, true)
		if err != nil {
			return nil, err
		}
		all = append(all, entries...)
	}
	if overlap {
		all = dedup(all)
	}
	return all, nil
}

// ListAsync mirrors ListSync's result set but delivers it over a channel.
// One goroutine per root key walks that root synchronously to completion
// and then sends its entries; ctx cancellation stops the sending, but the
// walks themselves do not observe ctx and are not interrupted.
func ListAsync(ctx context.Context, w *Walker, tree Tree, listRoot string, overlap bool) (<-chan fsadapter.Entry, <-chan error) {
	out := make(chan fsadapter.Entry)
	errc := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(errc)

		var mu sync.Mutex
		seen := make(map[string]struct{})

		g, gctx := errgroup.WithContext(ctx)
		for key, node := range tree {
			key, node := key, node
			g.Go(func() error {
				d := key
				if key == "." {
					d = listRoot
				}
				entries, err := w.walk(d, node, true)
				if err != nil {
					return err
				}
				for _, e := range entries {
					if overlap {
						mu.Lock()
						_, dup := seen[e.Path]
						if !dup {
							seen[e.Path] = struct{}{}
						}
						mu.Unlock()
						if dup {
							continue
						}
					}
					select {
					case out <- e:
					case <-gctx.Done():
						return gctx.Err()
					}
				}
				return nil
			})
		}
		errc <- g.Wait()
	}()

	return out, errc
}

func (w *Walker) walk(d string, node *Node, isRoot bool) ([]fsadapter.Entry, error) {
	w.Logger.Debug().
		Str("dir", d).
		Bool("recursive", node.Recursive).
		Bool("intermediate", node.Intermediate).
		Bool("canOverlap", node.CanOverlap).
		Msg("entering directory")
	switch {
	case node.Recursive:
		return w.walkRecursive(d, node, isRoot)
	case node.Intermediate && w.CaseSensitive:
		return w.walkIntermediateCaseSensitive(d, node, isRoot)
	case node.Intermediate:
		return w.walkIntermediateCaseInsensitive(d, node, isRoot)
	default:
		return w.walkGeneral(d, node, isRoot)
	}
}

func (w *Walker) walkRecursive(d string, node *Node, isRoot bool) ([]fsadapter.Entry, error) {
	entries, err := w.FS.ListDirRecursiveSync(d, w.FollowLinks)
	if err != nil {
		if !isRoot && fsadapter.IsNotFound(err) {
			w.Logger.Debug().Str("dir", d).Msg("not-found below wildcard, absorbed")
			return nil, nil
		}
		return nil, err
	}
	var out []fsadapter.Entry
	for _, e := range entries {
		rel := relativeTo(d, e.Path)
		if matchValidator(node.Validator, rel) {
			out = append(out, e)
		}
	}
	return out, nil
}

// walkIntermediateCaseSensitive descends straight into every literal child
// without listing d first. isRoot carries through unchanged: a literal
// descent never turns a required chain into an optional one, so a
// not-found here propagates exactly when it would have propagated at d.
func (w *Walker) walkIntermediateCaseSensitive(d string, node *Node, isRoot bool) ([]fsadapter.Entry, error) {
	var out []fsadapter.Entry
	for key, child := range node.Children {
		sub, err := w.walk(path.Join(d, key.LiteralText()), child, isRoot)
		if err != nil {
			return nil, err
		}
		out = append(out, sub...)
	}
	return out, nil
}

// walkIntermediateCaseInsensitive enumerates d to match literal children
// case-insensitively, then forces a direct list of any child that matched
// no entry, so the filesystem raises the same not-found error the
// case-sensitive path would raise directly.
func (w *Walker) walkIntermediateCaseInsensitive(d string, node *Node, isRoot bool) ([]fsadapter.Entry, error) {
	entries, err := w.FS.ListDirSync(d, w.FollowLinks)
	if err != nil {
		if !isRoot && fsadapter.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	var out []fsadapter.Entry
	matched := make(map[*ast.Node]bool, len(node.Children))
	for _, e := range entries {
		if e.Kind != fsadapter.Directory {
			continue
		}
		base := path.Base(e.Path)
		for key, child := range node.Children {
			if asciiFoldEqual(base, key.LiteralText()) {
				matched[key] = true
				sub, err := w.walk(e.Path, child, isRoot)
				if err != nil {
					return nil, err
				}
				out = append(out, sub...)
			}
		}
	}
	for key := range node.Children {
		if matched[key] {
			continue
		}
		if _, err := w.FS.ListDirSync(path.Join(d, key.LiteralText()), w.FollowLinks); err != nil {
			if !isRoot && fsadapter.IsNotFound(err) {
				continue
			}
			return nil, err
		}
	}
	return out, nil
}

func (w *Walker) walkGeneral(d string, node *Node, isRoot bool) ([]fsadapter.Entry, error) {
	entries, err := w.FS.ListDirSync(d, w.FollowLinks)
	if err != nil {
		if !isRoot && fsadapter.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	var out []fsadapter.Entry
	for _, e := range entries {
		base := path.Base(e.Path)
		if node.Validator != nil && matchValidator(node.Validator, base) {
			out = append(out, e)
		}
		if e.Kind != fsadapter.Directory {
			continue
		}
		for key, child := range node.Children {
			if !matcher.Match(key, base) {
				continue
			}
			sub, err := w.walk(e.Path, child, false)
			if err != nil {
				if fsadapter.IsNotFound(err) {
					w.Logger.Debug().Str("dir", e.Path).Msg("not-found below wildcard, absorbed")
					continue
				}
				return nil, err
			}
			out = append(out, sub...)
		}
	}
	return out, nil
}

func matchValidator(validator *ast.Node, s string) bool {
	return validator != nil && matcher.Match(validator, s)
}

func relativeTo(d, full string) string {
	rel := strings.TrimPrefix(full, d)
	return strings.TrimPrefix(rel, "/")
}

func asciiFoldEqual(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if asciiLower(a[i]) != asciiLower(b[i]) {
			return false
		}
	}
	return true
}

func asciiLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 32
	}
	return c
}

func dedup(entries []fsadapter.Entry) []fsadapter.Entry {
	seen := make(map[string]struct{}, len(entries))
	out := entries[:0]
	for _, e := range entries {
		if _, ok := seen[e.Path]; ok {
			continue
		}
		seen[e.Path] = struct{}{}
		out = append(out, e)
	}
	return out
}
