// Package diag renders pattern diagnostics and carries the library's
// structured-logging hook. It has no opinion about global logger state: the
// root glob package injects a logger explicitly rather than mutating
// zerolog's package-level configuration, which is a CLI binary's prerogative,
// not a library's.
package diag

import (
	"strings"

	"github.com/fatih/color"
)

// Caret renders a two-line diagnostic: the pattern text, then a line with a
// '^' under byte offset pos. ParseError.Pretty renders the same layout
// through PlainCaret and ColorCaret.
func Caret(pattern string, pos int) string {
	if pos < 0 {
		pos = 0
	}
	if pos > len(pattern) {
		pos = len(pattern)
	}
	return pattern + "\n" + strings.Repeat(" ", pos) + "^"
}

// ColorCaret is Caret with the caret line colorized (red, bold) through
// fatih/color, which emits it uncolored when its color output is disabled
// (for example when stdout is not a terminal). Grounded on the teacher's internal/env/cli_validate.go,
// which uses fatih/color the same way: colorize the diagnostic line, leave
// the source line plain.
func ColorCaret(pattern string, pos int) string {
	return colorCaret(pattern, pos, true)
}

// PlainCaret is Caret with color forced off, for non-terminal output.
func PlainCaret(pattern string, pos int) string {
	return colorCaret(pattern, pos, false)
}

func colorCaret(pattern string, pos int, useColor bool) string {
	if pos < 0 {
		pos = 0
	}
	if pos > len(pattern) {
		pos = len(pattern)
	}
	caretLine := strings.Repeat(" ", pos) + "^"
	if !useColor {
		return pattern + "\n" + caretLine
	}
	c := color.New(color.FgRed, color.Bold)
	return pattern + "\n" + c.Sprint(caretLine)
}
