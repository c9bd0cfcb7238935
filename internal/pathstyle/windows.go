package pathstyle

import (
	"strings"
)

// WindowsAdapter implements Adapter for Windows paths: drive letters, UNC
// roots, and either '/' or '\\' accepted as separators in native input.
// Patterns themselves are always '/'-separated (spec §4.1) — backslashes
// inside a *pattern* are escapes, never separators; only concrete
// filesystem paths being matched or listed use WindowsAdapter's backslash
// handling.
type WindowsAdapter struct{}

func (WindowsAdapter) Style() Style { return Windows }

func (WindowsAdapter) Separator() byte { return '\\' }

// ToPOSIX canonicalizes a native Windows path to '/' separators without
// resolving '.'/'..'. This is the step spec §9's design note calls out: the
// original source computed this via a discarded text.replaceAll return
// value, which looked like a no-op bug; here the replacement is actually
// used before any root detection happens.
func (WindowsAdapter) ToPOSIX(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}

func (a WindowsAdapter) IsAbsolute(p string) bool {
	p = a.ToPOSIX(p)
	if strings.HasPrefix(p, "//") {
		return true // UNC root
	}
	if len(p) >= 2 && isDriveLetter(p[0]) && p[1] == ':' {
		return true
	}
	return strings.HasPrefix(p, "/")
}

func isDriveLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// windowsRoot splits a POSIX-form (already '/'-converted) Windows path into
// its root prefix ("C:", "//host/share", or "") and the remainder.
func windowsRoot(p string) (root, rest string) {
	if strings.HasPrefix(p, "//") {
		// UNC: //host/share/rest...
		body := p[2:]
		parts := strings.SplitN(body, "/", 3)
		switch len(parts) {
		case 0, 1:
			return "//" + body, ""
		case 2:
			return "//" + parts[0] + "/" + parts[1], ""
		default:
			return "//" + parts[0] + "/" + parts[1], parts[2]
		}
	}
	if len(p) >= 2 && isDriveLetter(p[0]) && p[1] == ':' {
		rest := ""
		if len(p) > 2 {
			rest = strings.TrimPrefix(p[2:], "/")
		}
		return strings.ToUpper(p[:2]), rest
	}
	if strings.HasPrefix(p, "/") {
		return "/", strings.TrimPrefix(p, "/")
	}
	return "", p
}

func (a WindowsAdapter) Normalize(p string) string {
	posix := a.ToPOSIX(p)
	root, rest := windowsRoot(posix)
	segs := normalizeSegments(root != "", splitSegments(rest))
	if root == "" {
		return segs
	}
	if strings.HasPrefix(segs, "/") {
		return root + segs
	}
	if segs == "." {
		return root + "/"
	}
	return root + "/" + segs
}

func (a WindowsAdapter) Absolute(p string) (string, error) {
	if a.IsAbsolute(p) {
		return a.Normalize(p), nil
	}
	cwd, err := currentDir()
	if err != nil {
		return "", err
	}
	return a.Normalize(cwd + "/" + p), nil
}

func (a WindowsAdapter) Relative(base, target string) (string, error) {
	baseRoot, baseRest := windowsRoot(a.Normalize(base))
	targetRoot, targetRest := windowsRoot(a.Normalize(target))
	if !strings.EqualFold(baseRoot, targetRoot) {
		return "", &RelativeRootMismatchError{Base: base, Target: target}
	}

	baseSegs := splitSegments(baseRest)
	targetSegs := splitSegments(targetRest)
	i := 0
	for i < len(baseSegs) && i < len(targetSegs) && strings.EqualFold(baseSegs[i], targetSegs[i]) {
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

func (WindowsAdapter) Current() (string, error) { return currentDir() }

// DetectPatternRoot recognizes a drive ("C:/") or UNC ("//host/share/")
// prefix at the start of a pattern string. Patterns are always
// '/'-separated, so no backslash handling is needed here.
func (WindowsAdapter) DetectPatternRoot(pattern string) (int, bool) {
	if strings.HasPrefix(pattern, "//") {
		rest := pattern[2:]
		parts := strings.SplitN(rest, "/", 3)
		if len(parts) >= 2 && parts[0] != "" && parts[1] != "" {
			return len("//" + parts[0] + "/" + parts[1]), true
		}
		return 0, false
	}
	if len(pattern) >= 2 && isDriveLetter(pattern[0]) && pattern[1] == ':' {
		n := 2
		if len(pattern) > 2 && pattern[2] == '/' {
			n = 3
		}
		return n, true
	}
	return 0, false
}

// RelativeRootMismatchError reports that Relative was asked to relate two
// paths with different roots (e.g. different Windows drive letters, or
// different URL scheme+authority).
type RelativeRootMismatchError struct {
	Base, Target string
}

func (e *RelativeRootMismatchError) Error() string {
	return "pathstyle: " + e.Base + " and " + e.Target + " do not share a root"
}
