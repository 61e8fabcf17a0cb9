package consttable

import (
	"context"
	"log/slog"
	"reflect"
)

// LevelFatal is the most severe level understood by the logging collaborator.
// It is above slog.LevelError so slog handlers print it as "ERROR+4".
const LevelFatal = slog.Level(12)

// Logger is the logging collaborator. *slog.Logger implements it.
//
// Calls are advisory: they never change query results. Implementations must
// be safe for concurrent use.
type Logger interface {
	Log(ctx context.Context, level slog.Level, msg string, args ...any)
}

// usable reports whether l can receive log calls. A typed nil pointer stored
// in the interface is not usable.
func usable(l Logger) bool {
	if l == nil {
		return false
	}
	v := reflect.ValueOf(l)
	switch v.Kind() { //nolint:exhaustive // Only nil-able kinds matter.
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Func, reflect.Chan, reflect.Slice:
		return !v.IsNil()
	}
	return true
}

// log sends a message to the table's logger. It returns a LoggerError when no
// sink is configured; callers on the query path join it with their own error.
func (t *Table[K]) log(level slog.Level, msg string, args ...any) error {
	if !usable(t.logger) {
		return loggerError(t.name)
	}
	t.logger.Log(context.Background(), level, msg, append([]any{"table", t.name}, args...)...)
	return nil
}
