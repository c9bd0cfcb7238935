// Package matcher evaluates a compiled internal/ast pattern tree against a
// normalized path string (spec §4.3). Evaluation is NFA-equivalent: each
// node maps a set of start offsets to the set of offsets reachable after
// consuming it, so a Sequence's children fold left without backtracking.
package matcher

import "github.com/joeblew999/glob/internal/ast"

// Match reports whether tree matches s as a whole string. s must already be
// in normalized POSIX form (internal/pathstyle.Adapter.Normalize).
func Match(tree *ast.Node, s string) bool {
	return ReachEnds(tree, s)[len(s)]
}

// ReachEnds returns every byte offset in s reachable by matching tree
// starting at offset 0. Match is the special case of testing membership of
// len(s) in this set; the public facade's matchAsPrefix/allMatches (spec
// §4.7) use the full set to find the longest prefix of s the pattern can
// match without requiring the match to span the whole string.
func ReachEnds(tree *ast.Node, s string) map[int]bool {
	dotDotEnd := dotDotPrefixLen(s)
	return reach(tree, s, map[int]bool{0: true}, dotDotEnd)
}

// dotDotPrefixLen returns the byte length of the leading run of unresolved
// ".." segments in s (e.g. 2 for "../foo", 5 for "../../foo", 0 for any s
// that doesn't start with one). A normalized path can only carry ".."
// segments in this leading run; everything else is guaranteed free of them.
func dotDotPrefixLen(s string) int {
	confirmedEnd := 0
	cursor := 0
	for cursor+2 <= len(s) && s[cursor] == '.' && s[cursor+1] == '.' &&
		(cursor+2 == len(s) || s[cursor+2] == '/') {
		cursor += 2
		confirmedEnd = cursor
		if cursor < len(s) && s[cursor] == '/' {
			cursor++
			continue
		}
		break
	}
	return confirmedEnd
}

// reach computes the set of end offsets reachable by matching n starting at
// any offset in starts.
func reach(n *ast.Node, s string, starts map[int]bool, dotDotEnd int) map[int]bool {
	switch n.Kind {
	case ast.KindSequence:
		return reachSequence(n, s, starts, dotDotEnd)
	case ast.KindOptions:
		out := make(map[int]bool)
		for _, alt := range n.Children {
			mergeInto(out, reach(alt, s, starts, dotDotEnd))
		}
		return out
	case ast.KindLiteral, ast.KindRoot:
		return reachLiteral(n, s, starts)
	case ast.KindSeparator:
		return reachSeparator(s, starts)
	case ast.KindAnyChar:
		return reachAnyChar(s, starts)
	case ast.KindStar:
		return reachStar(s, starts)
	case ast.KindDoubleStar:
		return reachDoubleStar(s, starts, dotDotEnd)
	case ast.KindRange:
		return reachRange(n, s, starts)
	default:
		return nil
	}
}

// reachSequence folds a Sequence's children left to right, special-casing a
// Separator directly adjacent to a DoubleStar (either order): the pair may
// also collapse to nothing as a unit, which is what lets "foo/**" match
// "foo" and "**/foo" match "foo" without letting the wildcard cross a
// separator that was never actually there.
func reachSequence(seq *ast.Node, s string, starts map[int]bool, dotDotEnd int) map[int]bool {
	cur := starts
	children := seq.Children
	for i := 0; i < len(children); i++ {
		c := children[i]
		switch {
		case c.Kind == ast.KindSeparator && i+1 < len(children) && children[i+1].Kind == ast.KindDoubleStar:
			skip := cur
			afterSep := reach(c, s, cur, dotDotEnd)
			afterBoth := reach(children[i+1], s, afterSep, dotDotEnd)
			merged := make(map[int]bool, len(skip)+len(afterBoth))
			mergeInto(merged, skip)
			mergeInto(merged, afterBoth)
			cur = merged
			i++
		case c.Kind == ast.KindDoubleStar && i+1 < len(children) && children[i+1].Kind == ast.KindSeparator:
			afterDS := reach(c, s, cur, dotDotEnd)
			afterBoth := reach(children[i+1], s, afterDS, dotDotEnd)
			merged := make(map[int]bool, len(cur)+len(afterBoth))
			mergeInto(merged, cur)
			mergeInto(merged, afterBoth)
			cur = merged
			i++
		default:
			cur = reach(c, s, cur, dotDotEnd)
		}
		if len(cur) == 0 {
			return cur
		}
	}
	return cur
}

func mergeInto(dst, src map[int]bool) {
	for k := range src {
		dst[k] = true
	}
}
