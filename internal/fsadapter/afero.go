package fsadapter

import (
	"context"
	"os"
	"path"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// AferoFilesystem implements Filesystem over an afero.Fs. afero.NewOsFs()
// backs real enumeration; afero.NewMemMapFs() lets list-tree/walker tests
// build fixture trees without touching disk.
type AferoFilesystem struct {
	fs afero.Fs
}

// New wraps an arbitrary afero.Fs.
func New(fs afero.Fs) *AferoFilesystem { return &AferoFilesystem{fs: fs} }

// NewOS returns a Filesystem backed by the real operating system.
func NewOS() *AferoFilesystem { return New(afero.NewOsFs()) }

// NewMem returns a Filesystem backed by an in-memory afero.Fs, for tests.
func NewMem() *AferoFilesystem { return New(afero.NewMemMapFs()) }

func (a *AferoFilesystem) ListDirSync(dir string, followLinks bool) ([]Entry, error) {
	infos, err := afero.ReadDir(a.fs, dir)
	if err != nil {
		return nil, wrapErr(dir, err)
	}
	entries := make([]Entry, 0, len(infos))
	for _, info := range infos {
		p := path.Join(dir, info.Name())
		entries = append(entries, Entry{Path: p, Kind: a.classify(p, info, followLinks)})
	}
	return entries, nil
}

func (a *AferoFilesystem) ListDirRecursiveSync(dir string, followLinks bool) ([]Entry, error) {
	var entries []Entry
	err := afero.Walk(a.fs, dir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if p == dir {
			return nil
		}
		entries = append(entries, Entry{Path: p, Kind: a.classify(p, info, followLinks)})
		return nil
	})
	if err != nil {
		return nil, wrapErr(dir, err)
	}
	return entries, nil
}

func (a *AferoFilesystem) ListDirAsync(ctx context.Context, dir string, followLinks bool) (<-chan Entry, <-chan error) {
	out := make(chan Entry)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		entries, err := a.ListDirSync(dir, followLinks)
		if err != nil {
			errc <- err
			return
		}
		for _, e := range entries {
			select {
			case out <- e:
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
	}()
	return out, errc
}

// ListDirRecursiveAsync fans out one goroutine per directory it descends
// into via errgroup.WithContext, emitting entries onto a single merged
// channel as soon as each underlying listing produces them (spec §5's
// cooperative, cancellation-aware walker).
func (a *AferoFilesystem) ListDirRecursiveAsync(ctx context.Context, dir string, followLinks bool) (<-chan Entry, <-chan error) {
	out := make(chan Entry)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.walkAsync(gctx, dir, followLinks, out)
	})
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		errc <- g.Wait()
		close(errc)
	}()
	return out, errc
}

func (a *AferoFilesystem) walkAsync(ctx context.Context, dir string, followLinks bool, out chan<- Entry) error {
	entries, err := a.ListDirSync(dir, followLinks)
	if err != nil {
		return err
	}
	g, gctx := errgroup.WithContext(ctx)
	for _, e := range entries {
		e := e
		select {
		case out <- e:
		case <-ctx.Done():
			return ctx.Err()
		}
		if e.Kind == Directory {
			g.Go(func() error {
				return a.walkAsync(gctx, e.Path, followLinks, out)
			})
		}
	}
	return g.Wait()
}

func (a *AferoFilesystem) classify(fullPath string, info os.FileInfo, followLinks bool) EntryKind {
	if info.Mode()&os.ModeSymlink != 0 {
		if !followLinks {
			return Symlink
		}
		if target, err := a.fs.Stat(fullPath); err == nil {
			if target.IsDir() {
				return Directory
			}
			return File
		}
		return Symlink
	}
	if info.IsDir() {
		return Directory
	}
	return File
}
