package pathstyle_test

import (
	"testing"

	"github.com/joeblew999/glob/internal/pathstyle"
)

func TestWindowsNormalize(t *testing.T) {
	a := pathstyle.WindowsAdapter{}
	tests := []struct{ in, want string }{
		{`C:\foo\bar`, "C:/foo/bar"},
		{`C:\foo\..\bar`, "C:/bar"},
		{`foo\bar`, "foo/bar"},
		{`\\host\share\foo`, "//host/share/foo"},
		{`\\host\share`, "//host/share/"},
		{"c:/foo", "C:/foo"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := a.Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestWindowsIsAbsolute(t *testing.T) {
	a := pathstyle.WindowsAdapter{}
	tests := []struct {
		in   string
		want bool
	}{
		{`C:\foo`, true},
		{`C:/foo`, true},
		{`\\host\share`, true},
		{`foo\bar`, false},
		{`/foo`, true},
	}
	for _, tt := range tests {
		if got := a.IsAbsolute(tt.in); got != tt.want {
			t.Errorf("IsAbsolute(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWindowsDetectPatternRoot(t *testing.T) {
	a := pathstyle.WindowsAdapter{}
	tests := []struct {
		pattern string
		wantLen int
		wantOK  bool
	}{
		{"C:/foo/*", 3, true},
		{"C:*", 2, true},
		{"//host/share/*", len("//host/share"), true},
		{"foo/*", 0, false},
	}
	for _, tt := range tests {
		n, ok := a.DetectPatternRoot(tt.pattern)
		if ok != tt.wantOK || (ok && n != tt.wantLen) {
			t.Errorf("DetectPatternRoot(%q) = (%d, %v), want (%d, %v)", tt.pattern, n, ok, tt.wantLen, tt.wantOK)
		}
	}
}

func TestWindowsBackslashIsEscapeNotSeparatorInPatterns(t *testing.T) {
	// Patterns are always '/'-separated (spec §4.1): WindowsAdapter's
	// ToPOSIX/Normalize only apply to concrete filesystem paths being
	// matched or listed, never to the pattern string itself. The parser
	// (internal/parseglob) never calls into the adapter's backslash
	// handling except to detect an absolute root prefix.
	a := pathstyle.WindowsAdapter{}
	if _, ok := a.DetectPatternRoot(`foo\bar`); ok {
		t.Error("a bare backslash should never be mistaken for a root prefix")
	}
}
