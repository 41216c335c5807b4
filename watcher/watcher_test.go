package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestWatcher(t *testing.T, retries int) *Watcher {
	t.Helper()
	w, err := New(&Config{Dir: t.TempDir(), Retries: retries, Interval: 20 * time.Millisecond, DeliverGrace: 20 * time.Millisecond})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return w
}

func writeFile(t *testing.T, name string) {
	t.Helper()
	if err := os.WriteFile(name, []byte("%PDF-1.7"), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestNewConfig(t *testing.T) {
	w, err := New(&Config{Dir: "/tmp/out"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if w.cfg.Retries != DefaultRetries || w.cfg.Interval != DefaultInterval || w.PDFPrefix() != DefaultPDFPrefix || w.cfg.DeliverGrace != DefaultDeliverGrace {
		t.Errorf("defaults not applied: %+v", w.cfg)
	}

	invalid := []*Config{
		nil,
		{},
		{Dir: "/tmp/out", Retries: -1},
		{Dir: "/tmp/out", Interval: -time.Second},
		{Dir: "/tmp/out", PDFPrefix: "pdfs"},
		{Dir: "/tmp/out", DeliverGrace: -time.Second},
	}
	for i, cfg := range invalid {
		if _, err := New(cfg); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("case %d: expected ErrInvalidConfig, got %v", i, err)
		}
	}
}

func TestPublicPath(t *testing.T) {
	w := newTestWatcher(t, 1)
	if got := w.PublicPath("/usr/src/app/public/pdfs/quote-12.pdf"); got != "/pdfs/quote-12.pdf" {
		t.Errorf("PublicPath() = %q", got)
	}
}

func TestWaitFound(t *testing.T) {
	w := newTestWatcher(t, 50)

	exp, err := w.Expect(QuoteKeywords...)
	if err != nil {
		t.Fatalf("Expect: %v", err)
	}
	writeFile(t, filepath.Join(w.Dir(), "offerte-2024-3.pdf"))

	out := exp.Wait(context.Background())
	if out.State != StateFound {
		t.Fatalf("expected found, got %s", out.State)
	}
	if out.Filename != "offerte-2024-3.pdf" {
		t.Errorf("Filename = %q", out.Filename)
	}
	if out.PublicPath != "/pdfs/offerte-2024-3.pdf" {
		t.Errorf("PublicPath = %q", out.PublicPath)
	}
}

func TestWaitFoundOnRename(t *testing.T) {
	w := newTestWatcher(t, 50)
	staging := t.TempDir()
	src := filepath.Join(staging, "invoice-8.pdf")
	writeFile(t, src)

	exp, err := w.Expect(InvoiceKeywords...)
	if err != nil {
		t.Fatalf("Expect: %v", err)
	}
	if err := os.Rename(src, filepath.Join(w.Dir(), "invoice-8.pdf")); err != nil {
		t.Fatalf("rename: %v", err)
	}

	if out := exp.Wait(context.Background()); out.State != StateFound {
		t.Fatalf("expected found, got %s", out.State)
	}
}

func TestWaitTimesOut(t *testing.T) {
	w := newTestWatcher(t, 3)

	exp, err := w.Expect(QuoteKeywords...)
	if err != nil {
		t.Fatalf("Expect: %v", err)
	}
	writeFile(t, filepath.Join(w.Dir(), "invoice-1.pdf"))
	writeFile(t, filepath.Join(w.Dir(), "Quote-1.pdf"))

	out := exp.Wait(context.Background())
	if out.State != StateTimedOut {
		t.Fatalf("expected timed_out, got %s", out.State)
	}
	if out.PublicPath != "" {
		t.Errorf("expected no public path, got %q", out.PublicPath)
	}
	if out.Waited < 3*20*time.Millisecond {
		t.Errorf("returned too early: %s", out.Waited)
	}
}

func TestWaitContextDone(t *testing.T) {
	w := newTestWatcher(t, 1000)

	exp, err := w.Expect(QuoteKeywords...)
	if err != nil {
		t.Fatalf("Expect: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if out := exp.Wait(ctx); out.State != StateTimedOut {
		t.Fatalf("expected timed_out, got %s", out.State)
	}
}

func TestDeliver(t *testing.T) {
	w := newTestWatcher(t, 1000)

	exp, err := w.Expect(QuoteKeywords...)
	if err != nil {
		t.Fatalf("Expect: %v", err)
	}
	exp.Deliver("Server error")
	exp.Deliver("")
	if exp.State() != StateWaiting {
		t.Fatalf("non-matching delivery resolved the expectation")
	}
	exp.Deliver("/usr/src/app/public/pdfs/quote-4.pdf\n")

	out := exp.Wait(context.Background())
	if out.State != StateFound || out.PublicPath != "/pdfs/quote-4.pdf" {
		t.Fatalf("unexpected outcome %+v", out)
	}

	// terminal state sticks
	exp.Deliver("/out/quote-5.pdf")
	if got := exp.State(); got != StateFound {
		t.Errorf("state changed after resolution: %s", got)
	}
}

func waitObserved(t *testing.T, exp *Expectation) {
	t.Helper()
	select {
	case <-exp.seen:
	case <-time.After(5 * time.Second):
		t.Fatal("file event never arrived")
	}
}

func TestDeliveredPathWinsOverObservedFile(t *testing.T) {
	w, err := New(&Config{Dir: t.TempDir(), Retries: 1000, Interval: 20 * time.Millisecond, DeliverGrace: 5 * time.Second})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	exp, err := w.Expect(QuoteKeywords...)
	if err != nil {
		t.Fatalf("Expect: %v", err)
	}
	// another request's quote lands first
	writeFile(t, filepath.Join(w.Dir(), "offerte-1.pdf"))
	waitObserved(t, exp)
	if got := exp.State(); got != StateWaiting {
		t.Fatalf("observed file settled the expectation: %s", got)
	}

	exp.Deliver("/out/offerte-2.pdf")

	out := exp.Wait(context.Background())
	if out.State != StateFound || out.Filename != "offerte-2.pdf" {
		t.Fatalf("unexpected outcome %+v", out)
	}
}

func TestObservedFileSettlesAfterGrace(t *testing.T) {
	w := newTestWatcher(t, 1000)

	exp, err := w.Expect(InvoiceKeywords...)
	if err != nil {
		t.Fatalf("Expect: %v", err)
	}
	writeFile(t, filepath.Join(w.Dir(), "invoice-3.pdf"))

	out := exp.Wait(context.Background())
	if out.State != StateFound || out.Filename != "invoice-3.pdf" {
		t.Fatalf("unexpected outcome %+v", out)
	}
	if out.Waited < w.cfg.DeliverGrace {
		t.Errorf("settled before the grace period: %s", out.Waited)
	}
}

func TestObservedFileCountsAtTimeout(t *testing.T) {
	w, err := New(&Config{Dir: t.TempDir(), Retries: 2, Interval: 20 * time.Millisecond, DeliverGrace: time.Minute})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	exp, err := w.Expect(QuoteKeywords...)
	if err != nil {
		t.Fatalf("Expect: %v", err)
	}
	writeFile(t, filepath.Join(w.Dir(), "quote-5.pdf"))
	waitObserved(t, exp)

	out := exp.Wait(context.Background())
	if out.State != StateFound || out.PublicPath != "/pdfs/quote-5.pdf" {
		t.Fatalf("unexpected outcome %+v", out)
	}
}

func TestExpectMissingDir(t *testing.T) {
	w, err := New(&Config{Dir: filepath.Join(t.TempDir(), "missing")})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := w.Expect(QuoteKeywords...); err == nil {
		t.Fatal("expected error for missing directory")
	}
	if _, err := w.Expect(); err == nil {
		t.Fatal("expected error without keywords")
	}
}

func TestCloseIdempotent(t *testing.T) {
	w := newTestWatcher(t, 1)
	exp, err := w.Expect("quote")
	if err != nil {
		t.Fatalf("Expect: %v", err)
	}
	if err := exp.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if err := exp.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestStateTransitions(t *testing.T) {
	tests := []struct {
		from, to State
		want     bool
	}{
		{StateWaiting, StateFound, true},
		{StateWaiting, StateTimedOut, true},
		{StateWaiting, StateWaiting, false},
		{StateFound, StateTimedOut, false},
		{StateTimedOut, StateFound, false},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("%s -> %s = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
	for _, s := range AllStates() {
		if !s.IsValid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if State("bogus").IsValid() {
		t.Error("bogus state should be invalid")
	}
}
