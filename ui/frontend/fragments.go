package frontend

import (
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/casual-erp/casual-web/ui/service"
)

// title renders a heading with the percent-decoded text.
func title(text string, level int) template.HTML {
	level = max(1, min(level, 6))
	return template.HTML(fmt.Sprintf("<h%d>%s</h%d>", level, template.HTMLEscapeString(decode(text)), level))
}

type overviewView struct {
	Heading template.HTML
	Name    string
	Listing template.HTML
	Target  string
}

// overview renders a listing section. The listing is sanitized and its
// [data-id] elements get action buttons pointing at /<name>/<id>. Buttons
// target #<target>; any target other than "main" gets its own article.
func (rt *router) overview(name, listing string, level int, target string) (template.HTML, error) {
	decorated, err := decorateListing(listing, name, target)
	if err != nil {
		return "", err
	}
	view := overviewView{
		Heading: title(name, level),
		Name:    name,
		Listing: decorated,
	}
	if target != "main" {
		view.Target = target
	}
	return rt.renderer.renderFragment("overview", view)
}

type formView struct {
	ID          string
	Heading     template.HTML
	Path        string
	Update      bool
	Collapsible bool
	Fields      []formField
}

type formField struct {
	ID          string
	Name        string
	Type        string
	Autofill    string
	ReadOnly    bool
	Min         bool
	HasValue    bool
	Value       string
	Checked     bool
	Placeholder string

	Select   bool
	Choose   bool
	Datalist bool
	Options  []selectOption
}

type selectOption struct {
	Value    string
	Label    string
	Selected bool
}

func formHeading(id string, collapsible bool) template.HTML {
	if collapsible {
		return title(humanize(id), 4)
	}
	return title(humanize(id), 2)
}

func newFormField(formID, name string) formField {
	typ := inputType(name)
	return formField{
		ID:       formID + "-" + name,
		Name:     name,
		Type:     typ,
		Autofill: autofill(name),
		Min:      typ == "number",
	}
}

func toSelectOptions(opts []service.Option, selected string) []selectOption {
	out := make([]selectOption, 0, len(opts))
	for _, o := range opts {
		out = append(out, selectOption{Value: o.Value, Label: o.Label, Selected: selected != "" && o.Value == selected})
	}
	return out
}

// createForm renders a blank form posting to postPath. A preset renders the
// field as a read-only select holding only that choice.
func (rt *router) createForm(id, postPath string, names []string, opts service.Options, presets map[string]service.Option, collapsible bool) (template.HTML, error) {
	heading := humanize(id)
	entity := ""
	if words := strings.Fields(heading); len(words) > 1 {
		entity = words[1]
	}

	view := formView{
		ID:          id,
		Heading:     formHeading(id, collapsible),
		Path:        postPath,
		Collapsible: collapsible,
	}
	for _, name := range names {
		f := newFormField(id, name)
		if f.Type == "text" {
			f.Placeholder = fmt.Sprintf("My cool %s %s", entity, name)
		} else {
			f.Placeholder = "0"
		}

		if preset, ok := presets[name]; ok {
			f.Select = true
			f.ReadOnly = true
			f.Options = []selectOption{{Value: preset.Value, Label: preset.Label, Selected: true}}
		} else if choices, ok := opts[name]; ok {
			if strings.HasSuffix(name, "_id") {
				f.Select = true
				f.Choose = true
				f.ReadOnly = readOnly(name)
			} else {
				f.Datalist = true
			}
			f.Options = toSelectOptions(choices, "")
		}
		view.Fields = append(view.Fields, f)
	}
	return rt.renderer.renderFragment("form", view)
}

// updateForm renders a form pre-filled from rec, putting to putPath. Fields
// follow the record's key order.
func (rt *router) updateForm(id, putPath string, rec service.Record, opts service.Options, collapsible bool) (template.HTML, error) {
	view := formView{
		ID:          id,
		Heading:     formHeading(id, collapsible),
		Path:        putPath,
		Update:      true,
		Collapsible: collapsible,
	}
	for _, field := range rec.Fields() {
		f := newFormField(id, field.Name)
		f.ReadOnly = readOnly(field.Name)

		switch {
		case f.Type == "datetime-local":
			f.HasValue = true
			f.Value = nullable(field.Value)
		case f.Type == "checkbox":
			f.Checked = field.Value.Bool()
		case field.Value.Type == gjson.String:
			f.Placeholder = decode(field.Value.String())
		default:
			f.Placeholder = field.Value.Raw
		}

		if choices, ok := opts[field.Name]; ok {
			if strings.HasSuffix(field.Name, "_id") {
				f.Select = true
				f.Options = toSelectOptions(choices, nullable(field.Value))
			} else {
				f.Datalist = true
				f.Options = toSelectOptions(choices, "")
			}
		}
		view.Fields = append(view.Fields, f)
	}
	return rt.renderer.renderFragment("form", view)
}

func nullable(v gjson.Result) string {
	if v.Type == gjson.Null {
		return ""
	}
	return v.String()
}

type linkButton struct {
	Path  string
	Label string
}

// created answers a create/update with a link to the entity, or "Done" when
// the CLI printed no id.
func (rt *router) created(w http.ResponseWriter, resource, id, label string) error {
	if id == "" {
		return writeHTML(w, "Done")
	}
	btn, err := rt.renderer.renderFragment("link-button", linkButton{
		Path:  "/" + resource + "/" + id,
		Label: label,
	})
	if err != nil {
		return err
	}
	return writeHTML(w, btn)
}

// removed answers a delete.
func removed(w http.ResponseWriter, ok bool) error {
	if ok {
		return writeHTML(w, "Done")
	}
	return writeHTML(w, "Failed")
}

// orElse returns s, or fallback when s is empty.
func orElse(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
