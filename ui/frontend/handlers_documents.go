package frontend

import (
	"html/template"
	"net/http"

	"github.com/casual-erp/casual-web/ui/service"
)

type documentView struct {
	Src     string
	JSON    string
	Remarks template.HTML
}

func (rt *router) handleQuote(w http.ResponseWriter, r *http.Request, id int64) error {
	if id == 0 {
		return badRequest("Missing quote id")
	}
	quote, err := rt.svc.GetQuote(r.Context(), id)
	if err != nil {
		return err
	}
	return rt.document(w, quote, "quote_url")
}

func (rt *router) handleInvoice(w http.ResponseWriter, r *http.Request, id int64) error {
	if id == 0 {
		return badRequest("Missing invoice id")
	}
	invoice, err := rt.svc.GetInvoice(r.Context(), id)
	if err != nil {
		return err
	}
	return rt.document(w, invoice, "invoice_url")
}

// document renders the embedded PDF, the record itself and its remarks.
func (rt *router) document(w http.ResponseWriter, rec service.Record, urlField string) error {
	view := documentView{
		JSON: decode(rec.Pretty()),
	}
	if src := rec.String(urlField); src != "" {
		view.Src = rt.publicURL(src)
	}
	if remarks := rec.String("remarks"); remarks != "" {
		html, err := markdown(remarks)
		if err != nil {
			return err
		}
		view.Remarks = html
	}
	fragment, err := rt.renderer.renderFragment("document", view)
	if err != nil {
		return err
	}
	return writeHTML(w, fragment)
}

func (rt *router) handleRemoveQuote(w http.ResponseWriter, r *http.Request, id int64) error {
	if id == 0 {
		return badRequest("Missing id")
	}
	ok, err := rt.svc.RemoveQuote(r.Context(), id)
	if err != nil {
		return err
	}
	return removed(w, ok)
}

func (rt *router) handleRemoveInvoice(w http.ResponseWriter, r *http.Request, id int64) error {
	if id == 0 {
		return badRequest("Missing id")
	}
	ok, err := rt.svc.RemoveInvoice(r.Context(), id)
	if err != nil {
		return err
	}
	return removed(w, ok)
}
