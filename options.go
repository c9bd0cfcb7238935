package glob

import (
	"github.com/rs/zerolog"

	"github.com/joeblew999/glob/internal/diag"
	"github.com/joeblew999/glob/internal/pathstyle"
)

// config accumulates constructor options before New resolves defaults
// (spec §6: context defaults to system, recursive defaults false,
// caseSensitive defaults false under Windows and true elsewhere).
type config struct {
	style            pathstyle.Style
	styleSet         bool
	recursive        bool
	caseSensitive    bool
	caseSensitiveSet bool
	logger           zerolog.Logger
}

// Option configures a Glob at construction time. The functional-options
// shape mirrors the wider corpus's option-struct idiom (cobra command
// construction, process-compose's option structs) more than it mirrors any
// single pattern already in the teacher, which favors plain struct
// literals for its own config types; functional options are adopted here
// because New's defaults (case-sensitivity keyed off context) can't be
// resolved until all options are known.
type Option func(*config)

// WithContext selects the path style (POSIX, Windows, or URL) the pattern
// is compiled against. Defaults to pathstyle.System().Style().
func WithContext(style pathstyle.Style) Option {
	return func(c *config) {
		c.style = style
		c.styleSet = true
	}
}

// WithRecursive requests that the compiled pattern also match every path
// below a full match, i.e. any path whose segment-aligned prefix matches
// (spec §4.2: pattern is rewritten to "{original, original/**}").
func WithRecursive(recursive bool) Option {
	return func(c *config) { c.recursive = recursive }
}

// WithCaseSensitive overrides the context-keyed case-sensitivity default.
func WithCaseSensitive(caseSensitive bool) Option {
	return func(c *config) {
		c.caseSensitive = caseSensitive
		c.caseSensitiveSet = true
	}
}

// WithLogger injects a structured-logging sink the list-tree walker uses
// for debug-level tracing: directories entered with each list-tree node's
// computed recursive/intermediate/overlap flags, and not-found errors
// absorbed by a recursive listing below a wildcard (other absorbed
// not-found errors are not logged). Defaults to a no-op logger; this package never
// mutates zerolog's global level itself (that is a CLI binary's call, not
// a library's — see internal/diag).
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

func newConfig(opts []Option) (config, error) {
	c := config{logger: diag.NopLogger}
	for _, opt := range opts {
		opt(&c)
	}
	if !c.styleSet {
		c.style = pathstyle.System().Style()
	}
	if !c.caseSensitiveSet {
		c.caseSensitive = c.style != pathstyle.Windows
	}
	return c, nil
}
