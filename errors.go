package glob

import (
	"fmt"

	"github.com/joeblew999/glob/internal/diag"
	"github.com/joeblew999/glob/internal/parseglob"
	"github.com/joeblew999/glob/internal/pathstyle"
)

// ParseError reports a malformed pattern at a specific byte offset (spec
// §7). Construction fails outright with one of these; there is no partial
// Glob to recover.
type ParseError struct {
	Pattern string
	Pos     int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("glob: parse %q: %s at position %d", e.Pattern, e.Message, e.Pos)
}

// Pretty renders a two-line caret diagnostic under the offending byte,
// colorized when useColor is true (internal/diag, grounded on the
// teacher's own fatih/color usage for CLI diagnostics).
func (e *ParseError) Pretty(useColor bool) string {
	if useColor {
		return diag.ColorCaret(e.Pattern, e.Pos)
	}
	return diag.PlainCaret(e.Pattern, e.Pos)
}

func wrapParseError(pattern string, err error) error {
	if err == nil {
		return nil
	}
	if pe, ok := err.(*parseglob.Error); ok {
		return &ParseError{Pattern: pattern, Pos: pe.Pos, Message: pe.Message}
	}
	return err
}

// ContextMismatchError reports that List/ListSync was invoked on a Glob
// whose path-style context disagrees with the running platform's native
// style (spec §7).
type ContextMismatchError struct {
	Context pathstyle.Style
	System  pathstyle.Style
}

func (e *ContextMismatchError) Error() string {
	return fmt.Sprintf("glob: context %s does not match running platform's %s style", e.Context, e.System)
}

// IncompatibleUnionError reports that Union was asked to combine two Globs
// with different contexts or case-sensitivity (spec §7).
type IncompatibleUnionError struct {
	Reason string
}

func (e *IncompatibleUnionError) Error() string {
	return "glob: incompatible union: " + e.Reason
}

// FilesystemError wraps an error propagated from the filesystem adapter,
// distinguishing "not found" from other failures (spec §7). Check with
// errors.Is(err, glob.ErrNotFound).
type FilesystemError struct {
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("glob: list %s: %v", e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }

// InvariantViolation reports a pattern tree in an illegal state: always a
// bug in this package, never a user-input error (spec §7).
type InvariantViolation struct {
	Detail string
}

func (e *InvariantViolation) Error() string {
	return "glob: invariant violation: " + e.Detail
}
