package frontend

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestParseBody(t *testing.T) {
	values, err := parseBody(strings.NewReader("title=Foo%20Bar&empty=&flag&x=1=2"))
	if err != nil {
		t.Fatalf("parseBody: %v", err)
	}

	if got := values.Get("title"); got != "Foo%20Bar" {
		t.Errorf("title = %q, want raw Foo%%20Bar", got)
	}
	if !values.Has("empty") || values.Present("empty") {
		t.Error("empty should be present in the body but not count as set")
	}
	if !values.Has("flag") || values["flag"].defined {
		t.Error("flag without = should be undefined")
	}
	if got := values.Get("x"); got != "1" {
		t.Errorf("x = %q, want 1", got)
	}
	if values.Has("missing") {
		t.Error("missing should not be present")
	}
}

func TestReadForm(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		required []string
		want     string
	}{
		{"no body", "", nil, "No body found"},
		{"missing field", "phone=123", []string{"name"}, "Missing name"},
		{"empty field", "name=", []string{"name"}, "Missing name"},
		{"first missing wins", "title=x", []string{"sender_id", "recipient_id"}, "Missing sender_id"},
		{"ok", "name=Bob", []string{"name"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/accounts", strings.NewReader(tt.body))
			_, err := readForm(req, tt.required...)
			if tt.want == "" {
				if err != nil {
					t.Fatalf("readForm: %v", err)
				}
				return
			}
			var he *httpError
			if !errors.As(err, &he) {
				t.Fatalf("err = %v, want httpError", err)
			}
			if he.status != http.StatusBadRequest || he.text != tt.want {
				t.Errorf("got %d %q, want 400 %q", he.status, he.text, tt.want)
			}
		})
	}
}
