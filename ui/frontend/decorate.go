package frontend

import (
	"bytes"
	"html/template"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// listingPolicy sanitizes CLI html output while keeping the data attributes
// the action buttons are keyed on.
var listingPolicy = newListingPolicy()

func newListingPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowDataAttributes()
	p.AllowAttrs("class").Globally()
	p.AllowAttrs("target").Matching(regexp.MustCompile(`^_blank$`)).OnElements("a")
	return p
}

// decorateListing sanitizes a CLI listing and appends action buttons to
// every element carrying data-id.
func decorateListing(listing, resource, target string) (template.HTML, error) {
	clean := listingPolicy.Sanitize(listing)

	container := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(clean), container)
	if err != nil {
		return "", err
	}

	d := decorator{resource: resource, target: target}
	var buf bytes.Buffer
	for _, n := range nodes {
		d.walk(n)
		if err := html.Render(&buf, n); err != nil {
			return "", err
		}
	}
	return template.HTML(buf.String()), nil
}

type decorator struct {
	resource string
	target   string
}

func (d decorator) walk(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		d.walk(c)
	}
	if n.Type != html.ElementNode {
		return
	}
	id, ok := attr(n, "data-id")
	if !ok || id == "" || hasChildClass(n, "view-button") {
		return
	}

	entity := singular(d.resource)
	if rid, _ := attr(n, "data-recipient-id"); rid != "" {
		n.AppendChild(button("👨👩",
			"class", "recipient-button outline",
			"hx-get", "/accounts/"+rid,
			"hx-swap", "innerHTML transition:true",
			"hx-target", "#main",
			"hx-push-url", "true",
			"title", "View recipient",
		))
	}

	n.AppendChild(button("❌",
		"class", "delete-button outline",
		"hx-delete", "/"+d.resource+"/"+id,
		"hx-swap", "innerHTML transition:true",
		"hx-target", "#"+d.target,
		"hx-confirm", "This will permanently delete "+entity+", are you sure?",
		"title", "Delete "+entity,
	))

	if d.target == "quote-view" {
		n.AppendChild(button("💶",
			"class", "invoice-button outline",
			"hx-get", "/make-invoice/"+id,
			"hx-swap", "outerHTML",
			"hx-target", "this",
			"title", "Make invoice",
		))
	}

	view := []string{
		"class", "view-button outline",
		"hx-get", "/" + d.resource + "/" + id,
		"hx-target", "#" + d.target,
		"title", "View " + entity,
	}
	if d.target == "main" {
		view = append(view, "hx-swap", "innerHTML transition:true", "hx-push-url", "true")
	} else {
		view = append(view, "hx-swap", "innerHTML")
	}
	n.AppendChild(button("🔍", view...))
}

func button(text string, attrs ...string) *html.Node {
	b := &html.Node{Type: html.ElementNode, Data: "button", DataAtom: atom.Button}
	for i := 0; i+1 < len(attrs); i += 2 {
		b.Attr = append(b.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	b.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return b
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func hasChildClass(n *html.Node, class string) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if v, ok := attr(c, "class"); ok && strings.Contains(" "+v+" ", " "+class+" ") {
			return true
		}
	}
	return false
}

// singular turns a resource path name into the entity name.
func singular(name string) string {
	switch {
	case strings.HasSuffix(name, "ies"):
		return strings.TrimSuffix(name, "ies") + "y"
	case strings.HasSuffix(name, "ses"):
		return strings.TrimSuffix(name, "es")
	case strings.HasSuffix(name, "s"):
		return strings.TrimSuffix(name, "s")
	default:
		return name
	}
}
