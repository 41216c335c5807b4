package frontend

import (
	"html/template"
	"net/http"
)

func (rt *router) handleFinance(w http.ResponseWriter, r *http.Request, _ int64) error {
	report, err := rt.svc.Report(r.Context())
	if err != nil {
		return err
	}
	body := template.HTML("<p>No report found</p>")
	if report != "" {
		body = template.HTML(listingPolicy.Sanitize(report))
	}
	return rt.page(w, r, title("Finance", 1), body)
}

func (rt *router) handleRemoveReport(w http.ResponseWriter, r *http.Request, id int64) error {
	if id == 0 {
		return badRequest("Missing id")
	}
	ok, err := rt.svc.RemoveReport(r.Context(), id)
	if err != nil {
		return err
	}
	return removed(w, ok)
}
