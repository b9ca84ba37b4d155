package logging

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"

	"weather-cli/config"
)

// New builds the process logger. Text output is colorized by tint; json
// output is meant for wrappers that scrape stderr.
func New(w io.Writer, env config.Env) *slog.Logger {
	if env.LogFormat == "json" {
		h := slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: env.LogLevel,
		})
		return slog.New(h).With("app", config.AppName)
	}

	h := tint.NewHandler(w, &tint.Options{
		Level:      env.LogLevel,
		TimeFormat: time.Kitchen,
	})
	return slog.New(h)
}
