package cli

import (
	"context"
	"io"

	charmlog "github.com/charmbracelet/log"

	"github.com/wudi/gridkit/observability"
)

// newLogger creates a logger with timestamp formatting that writes to w and
// filters messages at the given level.
func newLogger(w io.Writer, level charmlog.Level) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *charmlog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

func loggerFromContext(ctx context.Context) *charmlog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*charmlog.Logger); ok {
		return l
	}
	return charmlog.Default()
}

// charmAdapter bridges the library's observability.Logger to charmbracelet/log.
type charmAdapter struct {
	l *charmlog.Logger
}

func (a charmAdapter) Debug(msg string, fields ...observability.Field) { a.l.Debug(msg, kv(fields)...) }
func (a charmAdapter) Info(msg string, fields ...observability.Field)  { a.l.Info(msg, kv(fields)...) }
func (a charmAdapter) Warn(msg string, fields ...observability.Field)  { a.l.Warn(msg, kv(fields)...) }
func (a charmAdapter) Error(msg string, fields ...observability.Field) { a.l.Error(msg, kv(fields)...) }

func (a charmAdapter) With(fields ...observability.Field) observability.Logger {
	return charmAdapter{l: a.l.With(kv(fields)...)}
}

func kv(fields []observability.Field) []interface{} {
	pairs := make([]interface{}, 0, len(fields)*2)
	for _, f := range fields {
		pairs = append(pairs, f.Key(), f.Value())
	}
	return pairs
}
