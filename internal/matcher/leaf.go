package matcher

import (
	"unicode/utf8"

	"github.com/joeblew999/glob/internal/ast"
)

func reachLiteral(n *ast.Node, s string, starts map[int]bool) map[int]bool {
	out := make(map[int]bool, len(starts))
	for st := range starts {
		end := st + len(n.Text)
		if end > len(s) {
			continue
		}
		if textEqual(s[st:end], n.Text, n.CaseSensitive) {
			out[end] = true
		}
	}
	return out
}

func reachSeparator(s string, starts map[int]bool) map[int]bool {
	out := make(map[int]bool, len(starts))
	for st := range starts {
		if st < len(s) && s[st] == '/' {
			out[st+1] = true
		}
	}
	return out
}

func reachAnyChar(s string, starts map[int]bool) map[int]bool {
	out := make(map[int]bool, len(starts))
	for st := range starts {
		if st >= len(s) {
			continue
		}
		r, width := utf8.DecodeRuneInString(s[st:])
		if r == '/' {
			continue
		}
		out[st+width] = true
	}
	return out
}

// reachStar matches zero or more non-separator bytes. Scanning byte-wise
// (rather than rune-wise) is safe here: '/' never appears as part of a
// multi-byte UTF-8 sequence, so a byte-level scan for the next '/' finds
// exactly the same boundary a rune-level scan would.
func reachStar(s string, starts map[int]bool) map[int]bool {
	out := make(map[int]bool, len(starts))
	for st := range starts {
		if st > len(s) {
			continue
		}
		end := st
		out[end] = true
		for end < len(s) && s[end] != '/' {
			end++
			out[end] = true
		}
	}
	return out
}

// reachDoubleStar matches zero or more bytes, including separators, except
// it may never begin consuming inside the leading unresolved ".." run: from
// such a start it can only stay put (zero-width).
func reachDoubleStar(s string, starts map[int]bool, dotDotEnd int) map[int]bool {
	out := make(map[int]bool, len(starts))
	for st := range starts {
		if st < dotDotEnd {
			out[st] = true
			continue
		}
		for end := st; end <= len(s); end++ {
			out[end] = true
		}
	}
	return out
}

func reachRange(n *ast.Node, s string, starts map[int]bool) map[int]bool {
	out := make(map[int]bool, len(starts))
	for st := range starts {
		if st >= len(s) {
			continue
		}
		r, width := utf8.DecodeRuneInString(s[st:])
		if r == '/' {
			continue
		}
		if rangeMatches(n, r) {
			out[st+width] = true
		}
	}
	return out
}

func rangeMatches(n *ast.Node, r rune) bool {
	in := false
	for _, item := range n.Ranges {
		if n.CaseSensitive {
			if r >= item.Lo && r <= item.Hi {
				in = true
				break
			}
			continue
		}
		if runeInRangeFold(r, item.Lo, item.Hi) {
			in = true
			break
		}
	}
	if n.Negate {
		return !in
	}
	return in
}

func runeInRangeFold(r, lo, hi rune) bool {
	if r >= lo && r <= hi {
		return true
	}
	if alt := asciiSwapCase(r); alt != r && alt >= lo && alt <= hi {
		return true
	}
	return false
}

func asciiSwapCase(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z':
		return r - 32
	case r >= 'A' && r <= 'Z':
		return r + 32
	default:
		return r
	}
}

func textEqual(a, b string, caseSensitive bool) bool {
	if caseSensitive {
		return a == b
	}
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
