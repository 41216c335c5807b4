// Package watcher waits for generated PDFs to appear in the CLI output
// directory.
//
// Generation is asynchronous: the handler registers an expectation with
// Expect before the generating command starts, fires the command, and then
// calls Wait. The expectation resolves when the command reports the produced
// path through Deliver, or when a file whose base name contains one of the
// keywords is created in (or renamed into) the directory.
//
// A delivered path always wins. The directory is shared by concurrent
// requests, so a matching fsnotify event only settles the expectation when no
// path is delivered within DeliverGrace of it.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Default configuration values.
const (
	DefaultRetries   = 10
	DefaultInterval  = time.Second
	DefaultPDFPrefix = "/pdfs"

	DefaultDeliverGrace = 500 * time.Millisecond
)

// Keyword sets for the generated documents.
var (
	QuoteKeywords   = []string{"quote", "offerte"}
	InvoiceKeywords = []string{"invoice", "factuur"}
)

// ErrInvalidConfig indicates invalid watcher configuration.
var ErrInvalidConfig = errors.New("watcher: invalid configuration")

// Logger interface for structured logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Config holds watcher configuration.
type Config struct {
	// Dir is the directory the CLI writes PDFs to. Required.
	Dir string

	// Retries is the number of Interval ticks Wait allows.
	// Defaults to 10.
	Retries int

	// Interval between retries. Defaults to 1 second.
	Interval time.Duration

	// PDFPrefix is the URL prefix under which Dir is served.
	// Defaults to "/pdfs".
	PDFPrefix string

	// DeliverGrace is how long a file seen by fsnotify waits for the command
	// to deliver its own path. Defaults to 500ms.
	DeliverGrace time.Duration

	// Logger for structured logging.
	// If nil, logging is disabled.
	Logger Logger
}

func (c *Config) applyDefaults() {
	if c.Retries == 0 {
		c.Retries = DefaultRetries
	}
	if c.Interval == 0 {
		c.Interval = DefaultInterval
	}
	if c.PDFPrefix == "" {
		c.PDFPrefix = DefaultPDFPrefix
	}
	if c.DeliverGrace == 0 {
		c.DeliverGrace = DefaultDeliverGrace
	}
}

func (c *Config) validate() error {
	if c.Dir == "" {
		return fmt.Errorf("%w: missing output directory", ErrInvalidConfig)
	}
	if c.Retries < 1 {
		return fmt.Errorf("%w: retries must be positive", ErrInvalidConfig)
	}
	if c.Interval <= 0 {
		return fmt.Errorf("%w: interval must be positive", ErrInvalidConfig)
	}
	if c.DeliverGrace < 0 {
		return fmt.Errorf("%w: deliver grace must not be negative", ErrInvalidConfig)
	}
	if !strings.HasPrefix(c.PDFPrefix, "/") {
		return fmt.Errorf("%w: pdf prefix must start with /", ErrInvalidConfig)
	}
	return nil
}

// Watcher creates expectations on one output directory.
type Watcher struct {
	cfg Config
}

// New creates a Watcher.
func New(cfg *Config) (*Watcher, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}
	c := *cfg
	c.applyDefaults()
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &Watcher{cfg: c}, nil
}

// Dir returns the watched output directory.
func (w *Watcher) Dir() string {
	return w.cfg.Dir
}

// PDFPrefix returns the URL prefix the output directory is served under.
func (w *Watcher) PDFPrefix() string {
	return w.cfg.PDFPrefix
}

// PublicPath maps a file name in the output directory to its URL path.
func (w *Watcher) PublicPath(filename string) string {
	return path.Join(w.cfg.PDFPrefix, filepath.Base(filename))
}

// Outcome is the result of a wait.
type Outcome struct {
	State      State
	Filename   string
	PublicPath string
	Waited     time.Duration
}

// Expectation is one pending wait for a file. It holds an fsnotify watch
// until Wait returns or Close is called.
type Expectation struct {
	w        *Watcher
	keywords []string
	fsw      *fsnotify.Watcher
	created  time.Time

	mu       sync.Mutex
	state    State
	filename string
	observed string // first matching fsnotify name

	seen      chan struct{}
	found     chan struct{}
	stop      chan struct{}
	loopDone  chan struct{}
	closeOnce sync.Once
}

// Expect starts watching for a file whose base name contains any of keywords.
// Call it before starting the command that produces the file.
func (w *Watcher) Expect(keywords ...string) (*Expectation, error) {
	if len(keywords) == 0 {
		return nil, errors.New("watcher: no keywords")
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watcher: create: %w", err)
	}
	if err := fsw.Add(w.cfg.Dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watcher: watch %s: %w", w.cfg.Dir, err)
	}

	e := &Expectation{
		w:        w,
		keywords: keywords,
		fsw:      fsw,
		created:  time.Now(),
		state:    StateWaiting,
		seen:     make(chan struct{}),
		found:    make(chan struct{}),
		stop:     make(chan struct{}),
		loopDone: make(chan struct{}),
	}
	go e.loop()
	return e, nil
}

func (e *Expectation) loop() {
	defer close(e.loopDone)
	for {
		select {
		case <-e.stop:
			return
		case event, ok := <-e.fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			e.observe(filepath.Base(event.Name))
		case err, ok := <-e.fsw.Errors:
			if !ok {
				return
			}
			if e.w.cfg.Logger != nil {
				e.w.cfg.Logger.Warn("output directory watch error", "dir", e.w.cfg.Dir, "error", err)
			}
		}
	}
}

// Deliver resolves the expectation with a path reported by the generating
// command. Paths whose base name matches no keyword are ignored.
func (e *Expectation) Deliver(p string) {
	p = strings.TrimSpace(p)
	if p == "" {
		return
	}
	e.resolve(filepath.Base(p))
}

func (e *Expectation) resolve(name string) {
	if !e.matches(name) {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settleLocked(name)
}

// observe records the first matching file seen in the directory.
func (e *Expectation) observe(name string) {
	if !e.matches(name) {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.observed != "" || e.state != StateWaiting {
		return
	}
	e.observed = name
	close(e.seen)
}

func (e *Expectation) settleLocked(name string) {
	if !e.state.CanTransitionTo(StateFound) {
		return
	}
	e.state = StateFound
	e.filename = name
	close(e.found)
}

// settleObserved falls back to the file seen by fsnotify.
func (e *Expectation) settleObserved() Outcome {
	e.mu.Lock()
	if e.observed != "" {
		e.settleLocked(e.observed)
	}
	e.mu.Unlock()
	return e.outcome()
}

func (e *Expectation) matches(name string) bool {
	for _, kw := range e.keywords {
		if kw != "" && strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

// State returns the current state.
func (e *Expectation) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Wait blocks until a matching file shows up, Retries*Interval elapses or ctx
// is done, then releases the watch. A timeout is reported in the Outcome,
// never as an error.
func (e *Expectation) Wait(ctx context.Context) Outcome {
	defer e.Close()

	ticker := time.NewTicker(e.w.cfg.Interval)
	defer ticker.Stop()

	seen := e.seen
	var grace <-chan time.Time
	for attempt := 0; attempt < e.w.cfg.Retries; {
		select {
		case <-e.found:
			return e.outcome()
		case <-seen:
			seen = nil
			grace = time.After(e.w.cfg.DeliverGrace)
		case <-grace:
			return e.settleObserved()
		case <-ctx.Done():
			return e.finish()
		case <-ticker.C:
			attempt++
		}
	}
	return e.finish()
}

// finish resolves a wait that ran out of time. A delivered path or an
// observed file still counts.
func (e *Expectation) finish() Outcome {
	select {
	case <-e.found:
		return e.outcome()
	case <-e.seen:
		return e.settleObserved()
	default:
		return e.timeout()
	}
}

func (e *Expectation) timeout() Outcome {
	e.mu.Lock()
	if e.state.CanTransitionTo(StateTimedOut) {
		e.state = StateTimedOut
	}
	e.mu.Unlock()
	return e.outcome()
}

func (e *Expectation) outcome() Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := Outcome{
		State:    e.state,
		Filename: e.filename,
		Waited:   time.Since(e.created),
	}
	if e.state == StateFound {
		out.PublicPath = e.w.PublicPath(e.filename)
	}
	return out
}

// Close releases the watch. It is safe to call more than once.
func (e *Expectation) Close() error {
	var err error
	e.closeOnce.Do(func() {
		close(e.stop)
		err = e.fsw.Close()
		<-e.loopDone
	})
	return err
}
