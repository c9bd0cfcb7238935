package pathstyle

import (
	"path"
	"strings"
)

// POSIXAdapter implements Adapter for '/'-separated, case-sensitive paths.
type POSIXAdapter struct{}

func (POSIXAdapter) Style() Style { return POSIX }

func (POSIXAdapter) Separator() byte { return '/' }

func (POSIXAdapter) IsAbsolute(p string) bool {
	return strings.HasPrefix(p, "/")
}

func (POSIXAdapter) ToPOSIX(p string) string { return p }

func (a POSIXAdapter) Normalize(p string) string {
	abs := a.IsAbsolute(p)
	return normalizeSegments(abs, splitSegments(strings.TrimPrefix(p, "/")))
}

func (a POSIXAdapter) Absolute(p string) (string, error) {
	if a.IsAbsolute(p) {
		return path.Clean(p), nil
	}
	cwd, err := currentDir()
	if err != nil {
		return "", err
	}
	return path.Join(cwd, p), nil
}

func (POSIXAdapter) Relative(base, target string) (string, error) {
	baseSegs := splitSegments(strings.TrimPrefix(path.Clean(base), "/"))
	targetSegs := splitSegments(strings.TrimPrefix(path.Clean(target), "/"))

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

func (POSIXAdapter) Current() (string, error) { return currentDir() }

func (POSIXAdapter) DetectPatternRoot(pattern string) (int, bool) {
	if strings.HasPrefix(pattern, "/") {
		return 1, true
	}
	return 0, false
}
