package logger

import (
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	Encoding string `envconfig:"LOG_ENCODING" default:"text"`
	Level    string `envconfig:"LOG_LEVEL" default:"info"`
}

// New builds the application logger. Unknown encodings fall back to text so a
// bad env value never prevents startup.
func New(app string, cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Encoding) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default:
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler).With("app", app)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
