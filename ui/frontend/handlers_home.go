package frontend

import (
	"html/template"
	"net/http"
)

func (rt *router) handleHome(w http.ResponseWriter, r *http.Request, _ int64) error {
	body := template.HTML("<p>Nothing here</p>")
	if rt.config.HomeMarkdown != "" {
		src, err := readFile(rt.config.HomeMarkdown)
		if err != nil {
			rt.logError(r, "home markdown unavailable", err)
		} else if html, err := markdown(src); err != nil {
			rt.logError(r, "home markdown render failed", err)
		} else {
			body = html
		}
	}
	return rt.page(w, r, title("Home", 1), body)
}
