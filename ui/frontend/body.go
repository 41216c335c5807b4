package frontend

import (
	"io"
	"net/http"
	"strings"
)

// formValue is one body field. A key without "=" has no value.
type formValue struct {
	value   string
	defined bool
}

// formValues is a best-effort form body parse. Values are kept exactly as
// received; the CLI does its own decoding.
type formValues map[string]formValue

// Get returns the value of name, or "" when missing or undefined.
func (f formValues) Get(name string) string {
	return f[name].value
}

// Has reports whether name appeared in the body.
func (f formValues) Has(name string) bool {
	_, ok := f[name]
	return ok
}

// Present reports whether name appeared with a non-empty value.
func (f formValues) Present(name string) bool {
	v, ok := f[name]
	return ok && v.defined && v.value != ""
}

// parseBody reads the whole body and splits it on "&" and then "=". Only a
// read error is returned; malformed content never fails.
func parseBody(r io.Reader) (formValues, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	values := make(formValues)
	for _, pair := range strings.Split(string(b), "&") {
		parts := strings.Split(pair, "=")
		v := formValue{}
		if len(parts) > 1 {
			v = formValue{value: parts[1], defined: true}
		}
		values[parts[0]] = v
	}
	return values, nil
}

// readForm parses the request body and checks required fields in order.
func readForm(r *http.Request, required ...string) (formValues, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return nil, badRequest("No body found")
	}
	fields, err := parseBody(r.Body)
	if err != nil {
		return nil, err
	}
	if len(fields) == 1 && fields.Has("") {
		return nil, badRequest("No body found")
	}
	for _, name := range required {
		if !fields.Present(name) {
			return nil, badRequest("Missing " + name)
		}
	}
	return fields, nil
}
