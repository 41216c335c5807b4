package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
)

// newRootCommand builds the command tree. Every subcommand shares one loaded
// configuration.
func newRootCommand() *cobra.Command {
	var cfgFile string
	app := &app{}

	root := &cobra.Command{
		Use:   "casual-web",
		Short: "Web frontend for casual-cli",
		Long: TitleStyle.Render("casual-web") + SubtitleStyle.Render(" - back office pages for casual-cli") + `

casual-web renders accounts, projects, contracts, schedule and finance
pages from casual-cli output and forwards every form back to the cli.

` + SubtitleStyle.Render("Examples:") + `
  casual-web serve                      Listen on :3000
  casual-web invoke project ls -m json  Run one cli call through the invoker
  casual-web config                     Print the effective configuration`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd.Flags(), cfgFile)
			if err != nil {
				return err
			}
			app.cfg = cfg
			app.logger = newLogger(cmd.ErrOrStderr(), cfg)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (toml, yaml or json)")
	root.PersistentFlags().String("log-level", "", "debug, info, warn or error (default debug, info in production)")

	root.AddCommand(newServeCommand(app))
	root.AddCommand(newInvokeCommand(app))
	root.AddCommand(newConfigCommand(app))
	return root
}

func versionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// Execute runs the root command and exits with a non-zero code on failure.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		newRootCommand(),
		fang.WithVersion(versionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// ExitError carries a process exit code out of a RunE handler.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }
