// Package hooks lets callers observe casual-cli invocations and generated
// artifacts without touching the invoker or the HTTP handlers.
package hooks

import (
	"context"
	"sync"
	"time"
)

// Invocation describes a CLI call about to run.
type Invocation struct {
	Program string
	Command string
	Mode    string
	Argv    []string
}

// Outcome describes how a CLI call ended.
type Outcome struct {
	ExitCode int
	Stdout   int // bytes written to stdout
	Stderr   string
	Duration time.Duration
	Err      error // spawn failure, nil when the process ran
}

// Artifact describes the end of a wait for a generated file.
type Artifact struct {
	Keywords   []string
	State      string
	Filename   string
	PublicPath string
	Waited     time.Duration
}

// BeforeInvokeHook is called before the CLI process is started.
// Returning an error aborts the invocation.
type BeforeInvokeHook func(ctx context.Context, inv *Invocation) error

// AfterInvokeHook is called once the CLI process has exited or failed to start.
type AfterInvokeHook func(ctx context.Context, inv *Invocation, out *Outcome) error

// ArtifactHook is called when a wait for a generated file ends.
type ArtifactHook func(ctx context.Context, artifact *Artifact) error

// Registry holds all registered hooks
type Registry struct {
	mu           sync.RWMutex
	beforeInvoke []BeforeInvokeHook
	afterInvoke  []AfterInvokeHook
	artifact     []ArtifactHook
}

// NewRegistry creates a new hook registry
func NewRegistry() *Registry {
	return &Registry{
		beforeInvoke: []BeforeInvokeHook{},
		afterInvoke:  []AfterInvokeHook{},
		artifact:     []ArtifactHook{},
	}
}

// OnBeforeInvoke registers a hook to be called before each CLI call
func (r *Registry) OnBeforeInvoke(hook BeforeInvokeHook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.beforeInvoke = append(r.beforeInvoke, hook)
}

// OnAfterInvoke registers a hook to be called after each CLI call
func (r *Registry) OnAfterInvoke(hook AfterInvokeHook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.afterInvoke = append(r.afterInvoke, hook)
}

// OnArtifact registers a hook to be called when an artifact wait ends
func (r *Registry) OnArtifact(hook ArtifactHook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.artifact = append(r.artifact, hook)
}

// TriggerBeforeInvoke calls all registered before-invoke hooks.
// It stops at the first error.
func (r *Registry) TriggerBeforeInvoke(ctx context.Context, inv *Invocation) error {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	hooks := make([]BeforeInvokeHook, len(r.beforeInvoke))
	copy(hooks, r.beforeInvoke)
	r.mu.RUnlock()

	for _, hook := range hooks {
		if err := hook(ctx, inv); err != nil {
			return err
		}
	}
	return nil
}

// TriggerAfterInvoke calls all registered after-invoke hooks.
// It stops at the first error.
func (r *Registry) TriggerAfterInvoke(ctx context.Context, inv *Invocation, out *Outcome) error {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	hooks := make([]AfterInvokeHook, len(r.afterInvoke))
	copy(hooks, r.afterInvoke)
	r.mu.RUnlock()

	for _, hook := range hooks {
		if err := hook(ctx, inv, out); err != nil {
			return err
		}
	}
	return nil
}

// TriggerArtifact calls all registered artifact hooks.
// It stops at the first error.
func (r *Registry) TriggerArtifact(ctx context.Context, artifact *Artifact) error {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	hooks := make([]ArtifactHook, len(r.artifact))
	copy(hooks, r.artifact)
	r.mu.RUnlock()

	for _, hook := range hooks {
		if err := hook(ctx, artifact); err != nil {
			return err
		}
	}
	return nil
}
