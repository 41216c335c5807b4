package ccli

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"mvdan.cc/sh/v3/shell"

	"github.com/casual-erp/casual-web/hooks"
)

// Defaults for Config.
const (
	DefaultBinary     = "casual-cli"
	DefaultDevCommand = "cargo run --quiet --"
)

// ServerErrorText is the Result text reported when the CLI could not be spawned.
const ServerErrorText = "Server error"

// Logger interface for structured logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// Config configures an Invoker.
type Config struct {
	// Production runs Binary directly. Otherwise DevCommand is used, which
	// builds and runs the CLI from source.
	Production bool

	// Binary is the CLI executable used in production.
	// Defaults to "casual-cli".
	Binary string

	// DevCommand is the command prefix used in development, split with
	// shell word rules. Defaults to "cargo run --quiet --".
	DevCommand string

	// Dir is the working directory for the subprocess.
	Dir string

	// Env holds extra KEY=VALUE pairs for the subprocess.
	Env []string

	// Runner starts processes. Defaults to an ExecRunner using Dir and Env.
	Runner Runner

	// Hooks are triggered around every invocation. May be nil.
	Hooks *hooks.Registry

	// Logger for structured logging.
	// If nil, logging is disabled.
	Logger Logger
}

func (c *Config) applyDefaults() {
	if c.Binary == "" {
		c.Binary = DefaultBinary
	}
	if c.DevCommand == "" {
		c.DevCommand = DefaultDevCommand
	}
	if c.Runner == nil {
		c.Runner = &ExecRunner{Dir: c.Dir, Env: c.Env}
	}
	if c.Logger == nil {
		c.Logger = nopLogger{}
	}
}

// Invoker runs casual-cli commands and interprets their output.
// It is safe for concurrent use; each call spawns its own process.
type Invoker struct {
	prefix []string
	runner Runner
	hooks  *hooks.Registry
	logger Logger
}

// New creates an Invoker. The production/development choice is fixed here.
func New(cfg *Config) (*Invoker, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	c := *cfg
	c.applyDefaults()

	var prefix []string
	if c.Production {
		prefix = []string{c.Binary}
	} else {
		fields, err := shell.Fields(c.DevCommand, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: dev command: %v", ErrInvalidConfig, err)
		}
		prefix = fields
	}
	if len(prefix) == 0 || prefix[0] == "" {
		return nil, fmt.Errorf("%w: empty command", ErrInvalidConfig)
	}

	return &Invoker{
		prefix: prefix,
		runner: c.Runner,
		hooks:  c.Hooks,
		logger: c.Logger,
	}, nil
}

// Result is the interpreted output of a successful CLI call.
type Result struct {
	Mode Mode

	// Text is the stdout: raw in value and json mode, percent-decoded
	// otherwise. It is ServerErrorText when the process could not be spawned.
	Text string

	// JSON is the parsed stdout in json mode.
	JSON gjson.Result

	ExitCode int
	Stderr   string

	unavailable bool
}

// Unavailable reports whether the CLI could not be spawned at all.
func (r *Result) Unavailable() bool {
	return r != nil && r.unavailable
}

// CommandLine builds the argv for one call without running it.
func (inv *Invoker) CommandLine(program Program, command Command, args Args, mode Mode) []string {
	argv := make([]string, 0, len(inv.prefix)+4+len(args)*2)
	argv = append(argv, inv.prefix...)
	argv = append(argv, "-m", string(mode), string(program), string(command))
	return append(argv, args.Argv()...)
}

// Invoke runs one CLI command and waits for it.
//
// It returns (nil, nil) when the command exited nonzero. An error is
// returned only for calls outside the vocabulary, vetoing hooks and
// undecodable output. An empty mode means html.
//
// The subprocess is not tied to ctx cancellation: once started it runs to
// completion even if the caller goes away.
func (inv *Invoker) Invoke(ctx context.Context, program Program, command Command, args Args, mode Mode) (*Result, error) {
	if mode == "" {
		mode = ModeHTML
	}
	wrap := func(err error) error {
		return &InvocationError{Program: program, Command: command, Mode: mode, Err: err}
	}
	if !mode.IsValid() {
		return nil, wrap(fmt.Errorf("%w: %q", ErrUnknownMode, mode))
	}
	if err := Validate(program, command); err != nil {
		return nil, wrap(err)
	}

	argv := inv.CommandLine(program, command, args, mode)

	event := &hooks.Invocation{
		Program: string(program),
		Command: string(command),
		Mode:    string(mode),
		Argv:    argv,
	}
	if err := inv.hooks.TriggerBeforeInvoke(ctx, event); err != nil {
		return nil, wrap(err)
	}

	started := time.Now()
	out, runErr := inv.runner.Run(context.WithoutCancel(ctx), argv)

	outcome := &hooks.Outcome{Duration: time.Since(started), Err: runErr}
	if out != nil {
		outcome.ExitCode = out.ExitCode
		outcome.Stdout = len(out.Stdout)
		outcome.Stderr = string(out.Stderr)
	}
	if err := inv.hooks.TriggerAfterInvoke(ctx, event, outcome); err != nil {
		inv.logger.Warn("after-invoke hook failed", "command", command, "error", err)
	}

	if runErr != nil {
		inv.logger.Error("cli error",
			"program", program,
			"command", command,
			"error", runErr,
		)
		return &Result{Mode: mode, Text: ServerErrorText, ExitCode: -1, unavailable: true}, nil
	}
	if out.ExitCode != 0 {
		inv.logger.Error("cli failed",
			"program", program,
			"command", command,
			"exit_code", out.ExitCode,
			"stderr", strings.TrimSpace(string(out.Stderr)),
		)
		return nil, nil
	}

	res := &Result{Mode: mode, Stderr: string(out.Stderr)}
	stdout := string(out.Stdout)
	switch mode {
	case ModeJSON:
		if !gjson.Valid(stdout) {
			return nil, wrap(fmt.Errorf("%w: invalid json", ErrDecode))
		}
		res.Text = stdout
		res.JSON = gjson.Parse(stdout)
	case ModeValue:
		res.Text = stdout
	default:
		decoded, err := url.PathUnescape(stdout)
		if err != nil {
			return nil, wrap(fmt.Errorf("%w: %v", ErrDecode, err))
		}
		res.Text = decoded
	}
	return res, nil
}

// Start runs Invoke in the background. done, when non-nil, receives the
// result once the process exits.
func (inv *Invoker) Start(ctx context.Context, program Program, command Command, args Args, mode Mode, done func(*Result, error)) {
	ctx = context.WithoutCancel(ctx)
	go func() {
		res, err := inv.Invoke(ctx, program, command, args, mode)
		if err != nil {
			inv.logger.Error("background cli call failed", "command", command, "error", err)
		}
		if done != nil {
			done(res, err)
		}
	}()
}
