package diag

import (
	"os"

	"github.com/rs/zerolog"
)

// NopLogger is the no-op logger the walker and the root glob package use
// when no logger is injected; the root glob package's WithLogger option
// supplies a different logger per Glob without reassigning this variable.
// Nothing in this package ever calls
// zerolog.SetGlobalLevel or otherwise touches process-wide logger state —
// that mutation belongs to the binary that links this library, not the
// library itself.
var NopLogger = zerolog.Nop()

// LevelFromEnv parses envVar as a zerolog level name, falling back to
// fallback when the variable is unset or unparseable. This is the
// level-selection half of the teacher's internal/bootstrap package, kept as
// a pure function: bootstrap also called zerolog.SetGlobalLevel and
// os.Setenv from an init(), which is the right shape for a CLI entrypoint
// but wrong for a library an importer doesn't expect to have side effects.
// Callers that want bootstrap's original behavior can do
// "zerolog.SetGlobalLevel(diag.LevelFromEnv(...))" themselves in main.
func LevelFromEnv(envVar string, fallback zerolog.Level) zerolog.Level {
	raw := os.Getenv(envVar)
	if raw == "" {
		return fallback
	}
	level, err := zerolog.ParseLevel(raw)
	if err != nil {
		return fallback
	}
	return level
}
