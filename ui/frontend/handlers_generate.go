package frontend

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/casual-erp/casual-web/hooks"
	"github.com/casual-erp/casual-web/watcher"
)

// location is the HX-Location payload sending the client back to the page
// the document belongs to.
type location struct {
	Path   string `json:"path"`
	Target string `json:"target"`
	Swap   string `json:"swap"`
}

func (rt *router) handleMakeQuote(w http.ResponseWriter, r *http.Request, projectID int64) error {
	if projectID == 0 {
		return badRequest("Missing project id")
	}
	back := "/projects/" + strconv.FormatInt(projectID, 10)
	return rt.generate(w, r, watcher.QuoteKeywords, back, func(ctx context.Context, delivered func(string)) {
		rt.svc.MakeQuote(ctx, projectID, delivered)
	})
}

func (rt *router) handleMakeInvoice(w http.ResponseWriter, r *http.Request, quoteID int64) error {
	if quoteID == 0 {
		return badRequest("Missing quote id")
	}
	back := "/projects"
	if pid := rt.svc.QuoteProjectID(r.Context(), quoteID); pid > 0 {
		back += "/" + strconv.FormatInt(pid, 10)
	}
	return rt.generate(w, r, watcher.InvoiceKeywords, back, func(ctx context.Context, delivered func(string)) {
		rt.svc.MakeInvoice(ctx, quoteID, delivered)
	})
}

// generate fires a document command and waits for its PDF. Found redirects
// the browser to the file; anything else answers with a refresh button.
func (rt *router) generate(w http.ResponseWriter, r *http.Request, keywords []string, back string, fire func(context.Context, func(string))) error {
	if rt.watcher == nil {
		fire(r.Context(), nil)
		return rt.processing(w, back)
	}

	exp, err := rt.watcher.Expect(keywords...)
	if err != nil {
		rt.logError(r, "artifact watch failed", err)
		fire(r.Context(), nil)
		return rt.processing(w, back)
	}

	fire(r.Context(), exp.Deliver)
	out := exp.Wait(r.Context())

	if err := rt.config.Hooks.TriggerArtifact(r.Context(), &hooks.Artifact{
		Keywords:   keywords,
		State:      out.State.String(),
		Filename:   out.Filename,
		PublicPath: out.PublicPath,
		Waited:     out.Waited,
	}); err != nil {
		rt.logError(r, "artifact hook failed", err)
	}

	if out.State == watcher.StateFound {
		w.Header().Set("HX-Redirect", out.PublicPath)
		return writeHTML(w, "Done")
	}
	return rt.processing(w, back)
}

func (rt *router) processing(w http.ResponseWriter, back string) error {
	loc, err := json.Marshal(location{
		Path:   back,
		Target: "#main",
		Swap:   "innerHTML transition:true",
	})
	if err != nil {
		return err
	}
	btn, err := rt.renderer.renderFragment("processing", back)
	if err != nil {
		return err
	}
	w.Header().Set("HX-Location", string(loc))
	return writeHTML(w, btn)
}
