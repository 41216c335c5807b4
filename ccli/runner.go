package ccli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
)

// Output is what a finished CLI process left behind.
type Output struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Runner starts a process and waits for it to exit.
//
// Run returns an error only when the process could not be run at all
// (binary missing, permission denied). A process that ran and exited nonzero
// is reported through Output.ExitCode with a nil error.
type Runner interface {
	Run(ctx context.Context, argv []string) (*Output, error)
}

// ExecRunner runs processes with os/exec.
type ExecRunner struct {
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Env is appended to the parent environment.
	Env []string
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, argv []string) (*Output, error) {
	if len(argv) == 0 {
		return nil, errors.New("ccli: empty command line")
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = r.Dir
	if len(r.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := &Output{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			out.ExitCode = exitErr.ExitCode()
			return out, nil
		}
		return nil, err
	}
	return out, nil
}
