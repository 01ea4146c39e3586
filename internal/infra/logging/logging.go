package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/ormanli/savings-account/internal/app/savings"
)

// Setup installs the default logger writing to w, which must not be the console the shell prints to.
// Debug records are enabled by cfg.InitDebug, cfg.LogFormat selects "json" or text output.
func Setup(cfg savings.Config, w io.Writer) {
	level := slog.LevelInfo
	if cfg.InitDebug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(cfg.LogFormat, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	slog.SetDefault(slog.New(handler))

	slog.Debug("Initializing debug level logging", "format", cfg.LogFormat)
}
