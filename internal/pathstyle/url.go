package pathstyle

import (
	"net/url"
	"strings"
)

// URLAdapter implements Adapter for "scheme://authority/path" strings.
// Patterns and paths are both treated as URL-style strings: the core never
// dials the network here, and treats "scheme://authority" as a single
// absolute root. EncodeLiteral is available for percent-encoding, but
// neither the parser nor the matcher applies it: pattern literals are
// matched against paths byte for byte, as written.
type URLAdapter struct{}

func (URLAdapter) Style() Style { return URL }

func (URLAdapter) Separator() byte { return '/' }

func (URLAdapter) ToPOSIX(p string) string { return p }

func (a URLAdapter) IsAbsolute(p string) bool {
	_, ok := a.splitRoot(p)
	return ok
}

// splitRoot extracts "scheme://authority" from a URL-style string.
func (URLAdapter) splitRoot(p string) (root string, ok bool) {
	idx := strings.Index(p, "://")
	if idx <= 0 {
		return "", false
	}
	scheme := p[:idx]
	for _, c := range scheme {
		if !(c == '+' || c == '-' || c == '.' ||
			(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')) {
			return "", false
		}
	}
	rest := p[idx+3:]
	slash := strings.IndexByte(rest, '/')
	if slash == -1 {
		return p, true
	}
	return p[:idx+3+slash], true
}

func (a URLAdapter) Normalize(p string) string {
	root, ok := a.splitRoot(p)
	if !ok {
		return normalizeSegments(false, splitSegments(p))
	}
	rest := strings.TrimPrefix(p[len(root):], "/")
	return root + normalizeSegments(true, splitSegments(rest))
}

func (a URLAdapter) Absolute(p string) (string, error) {
	if a.IsAbsolute(p) {
		return a.Normalize(p), nil
	}
	return "", &NoCurrentDirectoryError{Style: URL}
}

func (a URLAdapter) Relative(base, target string) (string, error) {
	baseRoot, baseOK := a.splitRoot(base)
	targetRoot, targetOK := a.splitRoot(target)
	if !baseOK || !targetOK || baseRoot != targetRoot {
		return "", &RelativeRootMismatchError{Base: base, Target: target}
	}
	baseSegs := splitSegments(strings.TrimPrefix(base[len(baseRoot):], "/"))
	targetSegs := splitSegments(strings.TrimPrefix(target[len(targetRoot):], "/"))
	i := 0
	for i < len(baseSegs) && i < len(targetSegs) && baseSegs[i] == targetSegs[i] {
		i++
	}
	var out []string
	for range baseSegs[i:] {
		out = append(out, "..")
	}
	out = append(out, targetSegs[i:]...)
	if len(out) == 0 {
		return ".", nil
	}
	return strings.Join(out, "/"), nil
}

func (URLAdapter) Current() (string, error) {
	return "", &NoCurrentDirectoryError{Style: URL}
}

func (a URLAdapter) DetectPatternRoot(pattern string) (int, bool) {
	root, ok := a.splitRoot(pattern)
	if !ok {
		return 0, false
	}
	return len(root), true
}

// EncodeLiteral percent-encodes a literal path segment the way a URL
// adapter must before matching it against a real URL path, per spec §4.1's
// "For URL style, %xx escapes inside literal runs are preserved verbatim
// (the path adapter URL-encodes paths before matching)".
func EncodeLiteral(s string) string {
	return (&url.URL{Path: s}).EscapedPath()
}

// NoCurrentDirectoryError reports that a style with no notion of "here"
// (URL) was asked for one.
type NoCurrentDirectoryError struct{ Style Style }

func (e *NoCurrentDirectoryError) Error() string {
	return "pathstyle: " + e.Style.String() + " has no current directory"
}
