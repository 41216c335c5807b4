package ccli_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casual-erp/casual-web/ccli"
	"github.com/casual-erp/casual-web/ccli/clitest"
	"github.com/casual-erp/casual-web/hooks"
)

func TestInvokeCommandLine(t *testing.T) {
	runner := clitest.NewRunner().On(ccli.ProgramProject, "add", clitest.Response{Stdout: "7\n"})
	inv := clitest.NewInvoker(t, runner)

	res, err := inv.Invoke(context.Background(), ccli.ProgramProject, "add", ccli.Args{
		ccli.F("-t", "Foo"),
		ccli.F("-d", ""),
		ccli.F("-c", "3"),
	}, ccli.ModeValue)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "7\n", res.Text)

	calls := runner.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"casual-cli", "-m", "value", "project", "add", "-t", "Foo", "-c", "3"}, calls[0])
}

func TestInvokeDevCommand(t *testing.T) {
	runner := clitest.NewRunner().On(ccli.ProgramAccount, "list", clitest.Response{Stdout: "<p>x</p>"})
	inv, err := ccli.New(&ccli.Config{Runner: runner})
	require.NoError(t, err)

	_, err = inv.Invoke(context.Background(), ccli.ProgramAccount, "list", nil, ccli.ModeHTML)
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"cargo", "run", "--quiet", "--", "-m", "html", "account", "list"},
		runner.Calls()[0])
}

func TestInvokePassesValuesVerbatim(t *testing.T) {
	t.Setenv("HOME", "/home/server")

	tests := []struct {
		name  string
		value string
	}{
		{"single quote", "O'Brien"},
		{"parentheses", "Acme+(NL)"},
		{"tilde", "~"},
		{"variable", "$HOME"},
		{"spaces", "Bob Smith"},
		{"double quote", `say "hi"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := clitest.NewRunner().On(ccli.ProgramAccount, "add", clitest.Response{Stdout: "1"})
			inv := clitest.NewInvoker(t, runner)

			res, err := inv.Invoke(context.Background(), ccli.ProgramAccount, "add",
				ccli.Args{ccli.F("-n", tt.value)}, ccli.ModeValue)
			require.NoError(t, err)
			require.NotNil(t, res)

			calls := runner.Calls()
			require.Len(t, calls, 1)
			assert.Equal(t, []string{"-n", tt.value}, clitest.Tail(calls[0]))
		})
	}
}

func TestInvokeModes(t *testing.T) {
	runner := clitest.NewRunner().
		On(ccli.ProgramAccount, "get", clitest.Response{Stdout: `{"id":5,"name":"Bob"}`}).
		On(ccli.ProgramAccount, "list", clitest.Response{Stdout: "Caf%C3%A9+Bar%20x"}).
		On(ccli.ProgramAccount, "add", clitest.Response{Stdout: "5\n"})
	inv := clitest.NewInvoker(t, runner)
	ctx := context.Background()

	t.Run("json", func(t *testing.T) {
		res, err := inv.Invoke(ctx, ccli.ProgramAccount, "get", ccli.Args{ccli.ID(5)}, ccli.ModeJSON)
		require.NoError(t, err)
		assert.Equal(t, "Bob", res.JSON.Get("name").String())
		assert.EqualValues(t, 5, res.JSON.Get("id").Int())
	})

	t.Run("value is raw", func(t *testing.T) {
		res, err := inv.Invoke(ctx, ccli.ProgramAccount, "add", nil, ccli.ModeValue)
		require.NoError(t, err)
		assert.Equal(t, "5\n", res.Text)
	})

	t.Run("html is percent-decoded", func(t *testing.T) {
		res, err := inv.Invoke(ctx, ccli.ProgramAccount, "list", nil, ccli.ModeHTML)
		require.NoError(t, err)
		assert.Equal(t, "Café+Bar x", res.Text)
	})

	t.Run("empty mode means html", func(t *testing.T) {
		res, err := inv.Invoke(ctx, ccli.ProgramAccount, "list", nil, "")
		require.NoError(t, err)
		assert.Equal(t, ccli.ModeHTML, res.Mode)
	})
}

func TestInvokeDecodeFaults(t *testing.T) {
	runner := clitest.NewRunner().
		On(ccli.ProgramAccount, "get", clitest.Response{Stdout: `{"id":`}).
		On(ccli.ProgramAccount, "list", clitest.Response{Stdout: "100%"})
	inv := clitest.NewInvoker(t, runner)

	_, err := inv.Invoke(context.Background(), ccli.ProgramAccount, "get", nil, ccli.ModeJSON)
	require.ErrorIs(t, err, ccli.ErrDecode)
	var invErr *ccli.InvocationError
	require.ErrorAs(t, err, &invErr)
	assert.Equal(t, ccli.Command("get"), invErr.Command)

	_, err = inv.Invoke(context.Background(), ccli.ProgramAccount, "list", nil, ccli.ModeNormal)
	require.ErrorIs(t, err, ccli.ErrDecode)
}

func TestInvokeNonzeroExitIsAbsent(t *testing.T) {
	runner := clitest.NewRunner().On(ccli.ProgramAccount, "get", clitest.Response{ExitCode: 2, Stderr: "no such account"})
	inv := clitest.NewInvoker(t, runner)

	res, err := inv.Invoke(context.Background(), ccli.ProgramAccount, "get", ccli.Args{ccli.ID(9)}, ccli.ModeJSON)
	assert.NoError(t, err)
	assert.Nil(t, res)
}

func TestInvokeSpawnFailure(t *testing.T) {
	runner := clitest.NewRunner().On(ccli.ProgramAccount, "list", clitest.Response{Err: errors.New("exec: not found")})
	inv := clitest.NewInvoker(t, runner)

	res, err := inv.Invoke(context.Background(), ccli.ProgramAccount, "list", nil, ccli.ModeHTML)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.Unavailable())
	assert.Equal(t, ccli.ServerErrorText, res.Text)
}

func TestInvokeUnknownCommand(t *testing.T) {
	runner := clitest.NewRunner()
	inv := clitest.NewInvoker(t, runner)

	_, err := inv.Invoke(context.Background(), ccli.ProgramFinance, "list", nil, ccli.ModeHTML)
	require.ErrorIs(t, err, ccli.ErrUnknownCommand)

	_, err = inv.Invoke(context.Background(), ccli.ProgramFinance, "report", nil, "yaml")
	require.ErrorIs(t, err, ccli.ErrUnknownMode)

	assert.Empty(t, runner.Calls())
}

func TestInvokeHooks(t *testing.T) {
	runner := clitest.NewRunner().On(ccli.ProgramSchedule, "list", clitest.Response{Stdout: "ok", Stderr: "warn"})
	registry := hooks.NewRegistry()

	var before *hooks.Invocation
	var after *hooks.Outcome
	registry.OnBeforeInvoke(func(ctx context.Context, inv *hooks.Invocation) error {
		before = inv
		return nil
	})
	registry.OnAfterInvoke(func(ctx context.Context, inv *hooks.Invocation, out *hooks.Outcome) error {
		after = out
		return nil
	})

	inv, err := ccli.New(&ccli.Config{Production: true, Runner: runner, Hooks: registry})
	require.NoError(t, err)

	_, err = inv.Invoke(context.Background(), ccli.ProgramSchedule, "list", nil, ccli.ModeHTML)
	require.NoError(t, err)

	require.NotNil(t, before)
	assert.Equal(t, "schedule", before.Program)
	assert.Equal(t, []string{"casual-cli", "-m", "html", "schedule", "list"}, before.Argv)
	require.NotNil(t, after)
	assert.Equal(t, 2, after.Stdout)
	assert.Equal(t, "warn", after.Stderr)
}

func TestInvokeHookVeto(t *testing.T) {
	runner := clitest.NewRunner().On(ccli.ProgramSchedule, "remove", clitest.Response{Stdout: "1"})
	registry := hooks.NewRegistry()
	veto := errors.New("read-only")
	registry.OnBeforeInvoke(func(ctx context.Context, inv *hooks.Invocation) error {
		return veto
	})

	inv, err := ccli.New(&ccli.Config{Production: true, Runner: runner, Hooks: registry})
	require.NoError(t, err)

	_, err = inv.Invoke(context.Background(), ccli.ProgramSchedule, "remove", ccli.Args{ccli.ID(1)}, ccli.ModeValue)
	require.ErrorIs(t, err, veto)
	assert.Empty(t, runner.Calls())
}

func TestInvokeOutlivesCaller(t *testing.T) {
	runner := clitest.NewRunner().OnFunc(ccli.ProgramProject, "list", func(argv []string) clitest.Response {
		return clitest.Response{Stdout: "done"}
	})
	inv := clitest.NewInvoker(t, runner)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := inv.Invoke(ctx, ccli.ProgramProject, "list", nil, ccli.ModeHTML)
	require.NoError(t, err)
	assert.Equal(t, "done", res.Text)
}

func TestStart(t *testing.T) {
	runner := clitest.NewRunner().On(ccli.ProgramProject, "make-quote", clitest.Response{Stdout: "/out/quote-3.pdf"})
	inv := clitest.NewInvoker(t, runner)

	var mu sync.Mutex
	var got string
	inv.Start(context.Background(), ccli.ProgramProject, "make-quote", ccli.Args{ccli.FInt("-p", 3)}, ccli.ModeValue,
		func(res *ccli.Result, err error) {
			mu.Lock()
			defer mu.Unlock()
			if err == nil && res != nil {
				got = res.Text
			}
		})

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return got == "/out/quote-3.pdf"
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"-p", "3"}, clitest.Tail(runner.Calls()[0]))
}

func TestNewInvalidDevCommand(t *testing.T) {
	_, err := ccli.New(&ccli.Config{DevCommand: `cargo "run`})
	require.ErrorIs(t, err, ccli.ErrInvalidConfig)
}
