package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"time"

	"hermannm.dev/devlog"
)

// slogLogger forwards formatted messages to an slog.Handler.
type slogLogger struct {
	level   Level
	handler slog.Handler
	attrs   []slog.Attr
}

// NewSlogLogger adapts an slog.Handler to the Logger interface.
// Extra attributes are attached to every record, e.g. a render ID.
func NewSlogLogger(handler slog.Handler, level Level, attrs ...slog.Attr) Logger {
	return &slogLogger{level: level, handler: handler, attrs: attrs}
}

// NewDevLogger returns a colorized human readable logger for terminals.
func NewDevLogger(output io.Writer, level Level) Logger {
	handler := devlog.NewHandler(output, &devlog.Options{Level: toSlogLevel(level)})
	return NewSlogLogger(handler, level)
}

// With returns a logger that attaches attrs to every record. Loggers that
// are not slog backed are returned unchanged.
func With(l Logger, attrs ...slog.Attr) Logger {
	sl, ok := l.(*slogLogger)
	if !ok {
		return l
	}
	merged := make([]slog.Attr, 0, len(sl.attrs)+len(attrs))
	merged = append(merged, sl.attrs...)
	merged = append(merged, attrs...)
	return &slogLogger{level: sl.level, handler: sl.handler, attrs: merged}
}

func (l *slogLogger) Debug(format string, args ...interface{}) {
	l.log(DEBUG, format, args...)
}

func (l *slogLogger) Info(format string, args ...interface{}) {
	l.log(INFO, format, args...)
}

func (l *slogLogger) Warn(format string, args ...interface{}) {
	l.log(WARN, format, args...)
}

func (l *slogLogger) Error(format string, args ...interface{}) {
	l.log(ERROR, format, args...)
}

func (l *slogLogger) SetLevel(level Level) {
	l.level = level
}

func (l *slogLogger) log(level Level, format string, args ...interface{}) {
	if l.level == OFF || level < l.level {
		return
	}
	slevel := toSlogLevel(level)
	ctx := context.Background()
	if !l.handler.Enabled(ctx, slevel) {
		return
	}

	// skip Callers, log and the public level method
	var callers [1]uintptr
	runtime.Callers(3, callers[:])

	record := slog.NewRecord(time.Now(), slevel, fmt.Sprintf(format, args...), callers[0])
	record.AddAttrs(l.attrs...)
	_ = l.handler.Handle(ctx, record)
}

func toSlogLevel(level Level) slog.Level {
	switch level {
	case DEBUG:
		return slog.LevelDebug
	case WARN:
		return slog.LevelWarn
	case ERROR:
		return slog.LevelError
	case OFF:
		return slog.LevelError + 4
	default:
		return slog.LevelInfo
	}
}
