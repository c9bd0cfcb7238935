package parseglob

import "fmt"

// Error is a malformed-pattern diagnostic with a byte position, so callers
// can render a caret under the offending character (internal/diag.Caret).
type Error struct {
	Pos     int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("glob: %s at position %d", e.Message, e.Pos)
}
