package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	slogsentry "github.com/samber/slog-sentry/v2"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	Env   string
	Level string
	// File, when set, receives a copy of every record with size-based rotation.
	File string
	// Sentry forwards error records to the initialised Sentry hub.
	Sentry bool
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New builds the application logger: JSON in prod, text otherwise. The
// returned closer flushes the log file, if any.
func New(o Options) (*slog.Logger, io.Closer) {
	level := ParseLevel(o.Level, o.Env)
	opts := &slog.HandlerOptions{Level: level}

	var out io.Writer = os.Stdout
	var closer io.Closer = nopCloser{}
	if o.File != "" {
		lj := &lumberjack.Logger{
			Filename:   o.File,
			MaxSize:    10, // MB
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		}
		out = io.MultiWriter(os.Stdout, lj)
		closer = lj
	}

	var h slog.Handler
	if o.Env == "prod" {
		h = slog.NewJSONHandler(out, opts)
	} else {
		h = slog.NewTextHandler(out, opts)
	}

	handlers := []slog.Handler{h}
	if o.Sentry {
		handlers = append(handlers, slogsentry.Option{Level: slog.LevelError}.NewSentryHandler())
	}

	return slog.New(NewContextHandler(Fanout(handlers...))), closer
}

// ParseLevel maps a level name to slog.Level. Unknown names fall back to
// info in prod and debug elsewhere.
func ParseLevel(name, env string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	if env == "prod" {
		return slog.LevelInfo
	}
	return slog.LevelDebug
}
