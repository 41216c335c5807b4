package hooks

import (
	"context"
	"strings"
)

// Logger is the structured logger the logging hooks write to.
// *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// LoggingHooks writes one diagnostic line per CLI call and per artifact wait.
// It is meant for development; production only logs failures.
type LoggingHooks struct {
	logger Logger
}

// NewLoggingHooks creates logging hooks with the provided logger
func NewLoggingHooks(logger Logger) *LoggingHooks {
	return &LoggingHooks{logger: logger}
}

// Register attaches the logging hooks to r.
func (h *LoggingHooks) Register(r *Registry) {
	r.OnBeforeInvoke(h.BeforeInvoke)
	r.OnAfterInvoke(h.AfterInvoke)
	r.OnArtifact(h.Artifact)
}

// BeforeInvoke logs the command line about to run
func (h *LoggingHooks) BeforeInvoke(ctx context.Context, inv *Invocation) error {
	h.logger.Debug("cli invoke",
		"program", inv.Program,
		"command", inv.Command,
		"mode", inv.Mode,
		"argv", strings.Join(inv.Argv, " "),
	)
	return nil
}

// AfterInvoke logs how the command ended
func (h *LoggingHooks) AfterInvoke(ctx context.Context, inv *Invocation, out *Outcome) error {
	if out.Err != nil {
		h.logger.Debug("cli spawn failed",
			"program", inv.Program,
			"command", inv.Command,
			"error", out.Err,
		)
		return nil
	}
	stderrPreview := out.Stderr
	if len(stderrPreview) > 200 {
		stderrPreview = stderrPreview[:200] + "..."
	}
	h.logger.Debug("cli exited",
		"program", inv.Program,
		"command", inv.Command,
		"exit_code", out.ExitCode,
		"stdout_bytes", out.Stdout,
		"stderr", stderrPreview,
		"duration", out.Duration,
	)
	return nil
}

// Artifact logs the end of an artifact wait
func (h *LoggingHooks) Artifact(ctx context.Context, artifact *Artifact) error {
	h.logger.Debug("artifact wait ended",
		"keywords", strings.Join(artifact.Keywords, ","),
		"state", artifact.State,
		"file", artifact.Filename,
		"waited", artifact.Waited,
	)
	return nil
}
