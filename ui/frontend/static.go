package frontend

import (
	"net/http"
	"os"
	"path"
	"strings"
)

// staticFiles serves the public directory and, under the PDF prefix, the
// CLI output directory. Lookups cannot escape either root.
type staticFiles struct {
	public    *os.Root
	pdfs      *os.Root
	pdfPrefix string
}

func openStatic(cfg *Config) *staticFiles {
	s := &staticFiles{pdfPrefix: strings.TrimSuffix(cfg.PDFPrefix, "/")}
	open := func(dir string) *os.Root {
		if dir == "" {
			return nil
		}
		root, err := os.OpenRoot(dir)
		if err != nil {
			if cfg.Logger != nil {
				cfg.Logger.Warn("static directory unavailable", "dir", dir, "error", err)
			}
			return nil
		}
		return root
	}
	s.public = open(cfg.PublicDir)
	s.pdfs = open(cfg.OutputDir)
	return s
}

// serve answers a GET for a file. A .pdf requested by HTMX is sent as an
// attachment. Anything missing is a 404.
func (s *staticFiles) serve(w http.ResponseWriter, r *http.Request, htmx bool) error {
	clean := path.Clean("/" + r.URL.Path)

	root, name := s.public, strings.TrimPrefix(clean, "/")
	if s.pdfs != nil && s.pdfPrefix != "" && strings.HasPrefix(clean, s.pdfPrefix+"/") {
		root, name = s.pdfs, strings.TrimPrefix(clean, s.pdfPrefix+"/")
	}
	if root == nil || name == "" {
		return errNotFound
	}

	// missing files and paths escaping the root both fail here
	f, err := root.Open(name)
	if err != nil {
		return errNotFound
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		return errNotFound
	}

	if htmx && strings.HasSuffix(name, ".pdf") {
		w.Header().Set("Content-Disposition", `attachment; filename="`+path.Base(name)+`"`)
	}
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
	return nil
}
