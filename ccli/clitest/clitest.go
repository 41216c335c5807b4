// Package clitest provides a scripted ccli.Runner for tests.
package clitest

import (
	"context"
	"slices"
	"sync"
	"testing"

	"github.com/casual-erp/casual-web/ccli"
)

// Response is the scripted result of one CLI call.
type Response struct {
	Stdout   string
	Stderr   string
	ExitCode int
	// Err simulates a spawn failure.
	Err error
}

// Responder computes a Response from the full argv.
type Responder func(argv []string) Response

// Runner is a fake ccli.Runner that answers by program and command and
// records every argv it sees. Calls without a script exit 1.
type Runner struct {
	mu         sync.Mutex
	responders map[string]Responder
	calls      [][]string
}

// NewRunner creates an empty Runner.
func NewRunner() *Runner {
	return &Runner{responders: make(map[string]Responder)}
}

// On scripts a fixed response for program/command.
func (r *Runner) On(program ccli.Program, command ccli.Command, resp Response) *Runner {
	return r.OnFunc(program, command, func([]string) Response { return resp })
}

// OnFunc scripts a computed response for program/command.
func (r *Runner) OnFunc(program ccli.Program, command ccli.Command, fn Responder) *Runner {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.responders[key(program, command)] = fn
	return r
}

// Run implements ccli.Runner.
func (r *Runner) Run(ctx context.Context, argv []string) (*ccli.Output, error) {
	r.mu.Lock()
	r.calls = append(r.calls, slices.Clone(argv))
	program, command := Split(argv)
	fn, ok := r.responders[key(program, command)]
	r.mu.Unlock()

	resp := Response{ExitCode: 1, Stderr: "clitest: no response scripted for " + string(program) + " " + string(command)}
	if ok {
		resp = fn(argv)
	}
	if resp.Err != nil {
		return nil, resp.Err
	}
	return &ccli.Output{
		Stdout:   []byte(resp.Stdout),
		Stderr:   []byte(resp.Stderr),
		ExitCode: resp.ExitCode,
	}, nil
}

// Calls returns a copy of every argv seen so far.
func (r *Runner) Calls() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([][]string, len(r.calls))
	for i, c := range r.calls {
		out[i] = slices.Clone(c)
	}
	return out
}

// CallsFor returns the argvs seen for program/command.
func (r *Runner) CallsFor(program ccli.Program, command ccli.Command) [][]string {
	var out [][]string
	for _, argv := range r.Calls() {
		p, c := Split(argv)
		if p == program && c == command {
			out = append(out, argv)
		}
	}
	return out
}

// Split extracts the program and command that follow "-m <mode>" in argv.
func Split(argv []string) (ccli.Program, ccli.Command) {
	i := slices.Index(argv, "-m")
	if i < 0 || i+3 >= len(argv) {
		return "", ""
	}
	return ccli.Program(argv[i+2]), ccli.Command(argv[i+3])
}

// Tail returns the arguments after the command in argv.
func Tail(argv []string) []string {
	i := slices.Index(argv, "-m")
	if i < 0 || i+4 > len(argv) {
		return nil
	}
	return argv[i+4:]
}

// NewInvoker returns a production-mode invoker backed by r.
func NewInvoker(t testing.TB, r *Runner) *ccli.Invoker {
	t.Helper()
	inv, err := ccli.New(&ccli.Config{Production: true, Runner: r})
	if err != nil {
		t.Fatalf("ccli.New: %v", err)
	}
	return inv
}

func key(program ccli.Program, command ccli.Command) string {
	return string(program) + " " + string(command)
}
