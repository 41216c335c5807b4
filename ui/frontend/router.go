package frontend

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/casual-erp/casual-web/hooks"
	"github.com/casual-erp/casual-web/ui/service"
	"github.com/casual-erp/casual-web/watcher"
)

//go:embed templates/*.html templates/fragments/*.html
var templatesFS embed.FS

// Config holds frontend router configuration.
type Config struct {
	// PublicDir holds the static assets served for unmatched GET requests.
	PublicDir string

	// OutputDir is the directory the CLI writes PDFs to. It is served under
	// PDFPrefix and rewritten to PDFPrefix in CLI output.
	OutputDir string

	// PDFPrefix is the URL prefix for generated PDFs.
	PDFPrefix string

	// HomeMarkdown is an optional markdown file rendered on the home page.
	HomeMarkdown string

	// Hooks receive artifact wait results. May be nil.
	Hooks *hooks.Registry

	// Logger for structured logging.
	Logger Logger
}

// Logger interface for structured logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// handlerFunc handles one method of a module. id is the positive integer in
// the second path segment, or 0.
type handlerFunc func(w http.ResponseWriter, r *http.Request, id int64) error

// module is the set of handlers behind one first path segment.
type module struct {
	get, post, put, delete handlerFunc
}

func (m module) handler(method string) handlerFunc {
	switch method {
	case http.MethodGet:
		return m.get
	case http.MethodPost:
		return m.post
	case http.MethodPut:
		return m.put
	case http.MethodDelete:
		return m.delete
	default:
		return nil
	}
}

// router holds the frontend router state.
type router struct {
	svc      *service.Service
	watcher  *watcher.Watcher
	config   *Config
	renderer *renderer
	static   *staticFiles
	modules  map[string]module
}

// NewRouter creates a new frontend router. w may be nil, in which case
// document generation never waits for the PDF.
func NewRouter(svc *service.Service, w *watcher.Watcher, cfg *Config) http.Handler {
	if cfg == nil {
		cfg = &Config{}
	}
	if cfg.PDFPrefix == "" {
		cfg.PDFPrefix = watcher.DefaultPDFPrefix
		if w != nil {
			cfg.PDFPrefix = w.PDFPrefix()
		}
	}

	rt := &router{
		svc:      svc,
		watcher:  w,
		config:   cfg,
		renderer: newRenderer(templatesFS),
		static:   openStatic(cfg),
	}

	rt.modules = map[string]module{
		"":             {get: rt.handleHome},
		"accounts":     {get: rt.handleAccounts, post: rt.handleAddAccount, put: rt.handleUpdateAccount, delete: rt.handleRemoveAccount},
		"companies":    {get: rt.handleCompany, post: rt.handleAddCompany, put: rt.handleUpdateCompany, delete: rt.handleRemoveCompany},
		"contracts":    {get: rt.handleContracts, post: rt.handleAddContract, put: rt.handleUpdateContract},
		"projects":     {get: rt.handleProjects, post: rt.handleAddProject, put: rt.handleUpdateProject, delete: rt.handleRemoveProject},
		"tasks":        {get: rt.handleTask, post: rt.handleAddTask, put: rt.handleUpdateTask, delete: rt.handleRemoveTask},
		"quotes":       {get: rt.handleQuote, delete: rt.handleRemoveQuote},
		"invoices":     {get: rt.handleInvoice, delete: rt.handleRemoveInvoice},
		"schedule":     {get: rt.handleSchedule, post: rt.handleAddSchedule, delete: rt.handleRemoveSchedule},
		"finance":      {get: rt.handleFinance, delete: rt.handleRemoveReport},
		"make-quote":   {get: rt.handleMakeQuote},
		"make-invoice": {get: rt.handleMakeInvoice},
	}

	return withFrontendMiddleware(http.HandlerFunc(rt.dispatch), cfg)
}

// splitPath returns the first path segment and the id in the second one.
// A missing, non-numeric or non-positive id yields 0.
func splitPath(p string) (string, int64) {
	parts := strings.Split(strings.TrimPrefix(p, "/"), "/")
	var id int64
	if len(parts) > 1 {
		if n, err := strconv.ParseInt(parts[1], 10, 64); err == nil && n > 0 {
			id = n
		}
	}
	return parts[0], id
}

func (rt *router) dispatch(w http.ResponseWriter, r *http.Request) {
	segment, id := splitPath(r.URL.Path)

	var err error
	if m, ok := rt.modules[segment]; ok && m.handler(r.Method) != nil {
		err = m.handler(r.Method)(w, r, id)
	} else if r.Method == http.MethodGet {
		err = rt.static.serve(w, r, isHTMX(r))
	} else {
		err = errNotFound
	}
	if err != nil {
		rt.writeError(w, r, err)
	}
}

// httpError is an error answered with its own status and text.
type httpError struct {
	status int
	text   string
}

func (e *httpError) Error() string { return e.text }

var errNotFound = &httpError{status: http.StatusNotFound, text: "404"}

func badRequest(text string) error {
	return &httpError{status: http.StatusBadRequest, text: text}
}

func notFound(text string) error {
	return &httpError{status: http.StatusNotFound, text: text}
}

func (rt *router) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var he *httpError
	switch {
	case errors.As(err, &he):
		writeText(w, he.status, he.text)
	case errors.Is(err, service.ErrNotFound):
		writeText(w, http.StatusNotFound, "Not found")
	case errors.Is(err, service.ErrUnavailable):
		writeText(w, http.StatusInternalServerError, "Server error")
	default:
		rt.logError(r, "request failed", err)
		writeText(w, http.StatusInternalServerError, fmt.Sprintf("Error 500: %v", err))
	}
}

func writeText(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	io.WriteString(w, text)
}

// writeHTML writes a fragment with status 200.
func writeHTML(w http.ResponseWriter, fragment template.HTML) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := io.WriteString(w, string(fragment))
	return err
}

// page writes parts as a fragment for HTMX requests and wrapped in the page
// shell otherwise.
func (rt *router) page(w http.ResponseWriter, r *http.Request, parts ...template.HTML) error {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(string(p))
	}
	content := template.HTML(b.String())
	if isHTMX(r) {
		return writeHTML(w, content)
	}
	return rt.renderer.render(w, r, content)
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") != ""
}

// logError logs an error if the logger is configured.
// It's used for optional data fetches that shouldn't break the page.
func (rt *router) logError(r *http.Request, msg string, err error) {
	if rt.config.Logger != nil {
		rt.config.Logger.Warn(msg, "error", err.Error(), "path", r.URL.Path, "request_id", requestID(r.Context()))
	}
}

// withFrontendMiddleware wraps the handler with frontend-specific middleware.
func withFrontendMiddleware(handler http.Handler, cfg *Config) http.Handler {
	handler = frontendRecoveryMiddleware(handler, cfg.Logger)
	handler = requestIDMiddleware(handler)
	return handler
}

type requestIDKey struct{}

// requestIDMiddleware tags each request with an id, reusing X-Request-Id
// when the client sent one.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

func requestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// frontendRecoveryMiddleware recovers from panics.
func frontendRecoveryMiddleware(next http.Handler, logger Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				if logger != nil {
					logger.Error("panic recovered", "error", err, "path", r.URL.Path, "request_id", requestID(r.Context()))
				}
				writeText(w, http.StatusInternalServerError, fmt.Sprintf("Error 500: %v", err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// publicURL rewrites CLI output paths to URLs the static handler serves.
func (rt *router) publicURL(s string) string {
	if rt.config.OutputDir != "" {
		s = strings.ReplaceAll(s, rt.config.OutputDir, rt.config.PDFPrefix)
	}
	return strings.ReplaceAll(s, containerPublicDir, "")
}

// containerPublicDir is the public directory inside the release container.
// CLI output written there carries the absolute path.
const containerPublicDir = "/usr/src/app/public"

func readFile(name string) (string, error) {
	b, err := os.ReadFile(name)
	return string(b), err
}
