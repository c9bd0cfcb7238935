package pathstyle_test

import (
	"testing"

	"github.com/joeblew999/glob/internal/pathstyle"
)

func TestURLNormalize(t *testing.T) {
	a := pathstyle.URLAdapter{}
	tests := []struct{ in, want string }{
		{"http://host/foo/bar", "http://host/foo/bar"},
		{"http://host/foo/./bar", "http://host/foo/bar"},
		{"http://host/foo/../bar", "http://host/bar"},
		{"http://host", "http://host/"},
		{"foo/bar", "foo/bar"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := a.Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestURLIsAbsolute(t *testing.T) {
	a := pathstyle.URLAdapter{}
	if !a.IsAbsolute("https://example.com/foo") {
		t.Error("scheme://authority should be absolute")
	}
	if a.IsAbsolute("foo/bar") {
		t.Error("plain relative string should not be absolute")
	}
}

func TestURLDetectPatternRoot(t *testing.T) {
	a := pathstyle.URLAdapter{}
	n, ok := a.DetectPatternRoot("https://example.com/*/foo")
	if !ok || n != len("https://example.com") {
		t.Errorf("DetectPatternRoot = (%d, %v), want (%d, true)", n, ok, len("https://example.com"))
	}
	if _, ok := a.DetectPatternRoot("foo/*"); ok {
		t.Error("relative pattern should not detect a root")
	}
}

func TestURLCurrentDirectoryUnsupported(t *testing.T) {
	a := pathstyle.URLAdapter{}
	if _, err := a.Current(); err == nil {
		t.Error("URL style has no current directory, expected error")
	}
}

func TestURLEncodeLiteral(t *testing.T) {
	if got := pathstyle.EncodeLiteral("a b"); got != "a%20b" {
		t.Errorf("EncodeLiteral(%q) = %q, want %q", "a b", got, "a%20b")
	}
}
