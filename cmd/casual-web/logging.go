package main

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// parseLevel accepts debug, info, warn and error.
func parseLevel(s string) (log.Level, error) {
	return log.ParseLevel(s)
}

// newLogger returns a slog logger backed by a charm log handler. Production
// logs are JSON; development logs use the colored text format.
func newLogger(w io.Writer, cfg *appConfig) *slog.Logger {
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}

	handler := log.NewWithOptions(w, log.Options{
		Prefix:          "casual-web",
		Level:           level,
		ReportTimestamp: true,
	})

	if cfg.Production() {
		handler.SetFormatter(log.JSONFormatter)
	} else {
		styles := log.DefaultStyles()
		styles.Prefix = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
		styles.Levels[log.DebugLevel] = styles.Levels[log.DebugLevel].Foreground(ColorVerbose)
		styles.Levels[log.InfoLevel] = styles.Levels[log.InfoLevel].Foreground(ColorSuccess)
		styles.Levels[log.WarnLevel] = styles.Levels[log.WarnLevel].Foreground(ColorWarning)
		styles.Levels[log.ErrorLevel] = styles.Levels[log.ErrorLevel].Foreground(ColorError)
		styles.Keys["error"] = lipgloss.NewStyle().Foreground(ColorError)
		styles.Key = lipgloss.NewStyle().Foreground(ColorMuted)
		handler.SetStyles(styles)
	}
	return slog.New(handler)
}
