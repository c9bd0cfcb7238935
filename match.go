package glob

import "github.com/joeblew999/glob/internal/matcher"

// Match describes a single match span within a path string, in byte
// offsets. Non-goals (spec §1) exclude capture groups and matches not
// anchored at position 0, so a Match is always {Start: 0, End: n}.
type Match struct {
	Start, End int
}

// Matches reports whether the Glob matches path as a whole string (spec
// §4.3, §4.7). A malformed or unnormalizable path produces false, never an
// error (spec §7: "matching never fails").
func (g *Glob) Matches(path string) bool {
	for _, candidate := range g.candidates(path) {
		if matcher.Match(g.tree, candidate) {
			return true
		}
	}
	return false
}

// MatchAsPrefix reports the longest prefix of path (anchored at start)
// that the pattern can match in full, or false if none exists. Per spec
// §7's non-goal on anchored-prefix matches beyond position 0, any start
// other than 0 unconditionally returns no match.
func (g *Glob) MatchAsPrefix(path string, start int) (Match, bool) {
	if start != 0 {
		return Match{}, false
	}
	norm := g.adapter.Normalize(path)
	ends := matcher.ReachEnds(g.tree, norm)
	best := -1
	for end := range ends {
		if end > best {
			best = end
		}
	}
	if best < 0 {
		return Match{}, false
	}
	return Match{Start: 0, End: best}, true
}

// AllMatches returns the zero- or one-element sequence of matches starting
// at start (spec §4.7: this pattern grammar never produces more than one,
// since there are no capture groups and no overlapping-match semantics).
func (g *Glob) AllMatches(path string, start int) []Match {
	m, ok := g.MatchAsPrefix(path, start)
	if !ok {
		return nil
	}
	return []Match{m}
}

// candidates returns the normalized path forms worth trying against the
// pattern tree: the path normalized as given, plus — when the path's
// absoluteness doesn't already match the pattern's — the other form,
// resolved against the adapter's current directory (spec §4.3 step 1).
// Trying an extra candidate never produces a false positive (the matcher
// itself is exact); it only prevents a false negative when a relative
// pattern is asked about an absolute path or vice versa.
func (g *Glob) candidates(path string) []string {
	out := []string{g.adapter.Normalize(path)}

	isAbs := g.adapter.IsAbsolute(path)
	switch {
	case isAbs && !g.absoluteRoot:
		if cwd, err := g.adapter.Current(); err == nil {
			if rel, err := g.adapter.Relative(cwd, path); err == nil {
				out = append(out, g.adapter.Normalize(rel))
			}
		}
	case !isAbs && g.absoluteRoot:
		if abs, err := g.adapter.Absolute(path); err == nil {
			out = append(out, g.adapter.Normalize(abs))
		}
	}
	return out
}
