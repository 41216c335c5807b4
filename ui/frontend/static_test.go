package frontend

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func newTestStatic(t *testing.T) *staticFiles {
	t.Helper()
	public := t.TempDir()
	output := t.TempDir()
	if err := os.WriteFile(filepath.Join(public, "app.css"), []byte("body{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(public, "img"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(output, "offerte-1.pdf"), []byte("%PDF"), 0o644); err != nil {
		t.Fatal(err)
	}
	return openStatic(&Config{PublicDir: public, OutputDir: output, PDFPrefix: "/pdfs"})
}

func TestStaticServe(t *testing.T) {
	s := newTestStatic(t)

	w := httptest.NewRecorder()
	if err := s.serve(w, httptest.NewRequest(http.MethodGet, "/app.css", nil), false); err != nil {
		t.Fatalf("serve: %v", err)
	}
	if w.Code != http.StatusOK || w.Body.String() != "body{}" {
		t.Errorf("got %d %q", w.Code, w.Body.String())
	}
}

func TestStaticServePDF(t *testing.T) {
	s := newTestStatic(t)

	w := httptest.NewRecorder()
	if err := s.serve(w, httptest.NewRequest(http.MethodGet, "/pdfs/offerte-1.pdf", nil), true); err != nil {
		t.Fatalf("serve: %v", err)
	}
	if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="offerte-1.pdf"` {
		t.Errorf("Content-Disposition = %q", got)
	}

	w = httptest.NewRecorder()
	if err := s.serve(w, httptest.NewRequest(http.MethodGet, "/pdfs/offerte-1.pdf", nil), false); err != nil {
		t.Fatalf("serve: %v", err)
	}
	if got := w.Header().Get("Content-Disposition"); got != "" {
		t.Errorf("plain request got Content-Disposition %q", got)
	}
}

func TestStaticServeMissing(t *testing.T) {
	s := newTestStatic(t)

	for _, p := range []string{"/nope.css", "/img", "/", "/pdfs/missing.pdf", "/../../etc/passwd"} {
		err := s.serve(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil), false)
		if !errors.Is(err, errNotFound) {
			t.Errorf("serve(%s) = %v, want errNotFound", p, err)
		}
	}
}

func TestStaticWithoutDirectories(t *testing.T) {
	s := openStatic(&Config{PublicDir: filepath.Join(t.TempDir(), "gone")})
	err := s.serve(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/app.css", nil), false)
	if !errors.Is(err, errNotFound) {
		t.Errorf("err = %v, want errNotFound", err)
	}
}
