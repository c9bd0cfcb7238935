package pathstyle_test

import (
	"testing"

	"github.com/joeblew999/glob/internal/pathstyle"
)

func TestPOSIXNormalize(t *testing.T) {
	a := pathstyle.POSIXAdapter{}
	tests := []struct{ in, want string }{
		{"foo/bar", "foo/bar"},
		{"foo/./bar", "foo/bar"},
		{"foo//bar", "foo/bar"},
		{"foo/../bar", "bar"},
		{"../foo", "../foo"},
		{"../../foo", "../../foo"},
		{"/foo/../bar", "/bar"},
		{"/../foo", "/foo"},
		{".", "."},
		{"", "."},
		{"/", "/"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := a.Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPOSIXNormalizeIdempotent(t *testing.T) {
	a := pathstyle.POSIXAdapter{}
	paths := []string{"foo/bar", "foo/./bar", "../foo", "/foo/../bar", "foo//bar/../baz"}
	for _, p := range paths {
		once := a.Normalize(p)
		twice := a.Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q then %q", p, once, twice)
		}
	}
}

func TestPOSIXIsAbsolute(t *testing.T) {
	a := pathstyle.POSIXAdapter{}
	if !a.IsAbsolute("/foo") {
		t.Error("/foo should be absolute")
	}
	if a.IsAbsolute("foo") {
		t.Error("foo should not be absolute")
	}
}

func TestPOSIXDetectPatternRoot(t *testing.T) {
	a := pathstyle.POSIXAdapter{}
	if n, ok := a.DetectPatternRoot("/foo/*"); !ok || n != 1 {
		t.Errorf("DetectPatternRoot(/foo/*) = (%d, %v), want (1, true)", n, ok)
	}
	if _, ok := a.DetectPatternRoot("foo/*"); ok {
		t.Error("DetectPatternRoot(foo/*) should not find a root")
	}
}

func TestPOSIXRelative(t *testing.T) {
	a := pathstyle.POSIXAdapter{}
	rel, err := a.Relative("/a/b", "/a/b/c")
	if err != nil {
		t.Fatalf("Relative error: %v", err)
	}
	if rel != "c" {
		t.Errorf("Relative = %q, want %q", rel, "c")
	}
	rel, err = a.Relative("/a/b/c", "/a/b")
	if err != nil {
		t.Fatalf("Relative error: %v", err)
	}
	if rel != ".." {
		t.Errorf("Relative = %q, want %q", rel, "..")
	}
}
