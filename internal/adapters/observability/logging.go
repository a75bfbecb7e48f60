package observability

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns the process-wide zerolog Logger, stamped with the
// service name and the resolved content mode. APP_ENV=dev (or development)
// switches to a human-friendly console writer; LOG_LEVEL overrides the
// default info level.
func NewLogger(env, mode string) zerolog.Logger {
	var out = zerolog.New(os.Stdout)
	if env == "dev" || env == "development" {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}
	level := zerolog.InfoLevel
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if parsed, err := zerolog.ParseLevel(raw); err == nil {
			level = parsed
		}
	}
	return out.Level(level).With().
		Timestamp().
		Str("service", "atrium-api").
		Str("content_mode", mode).
		Logger()
}
