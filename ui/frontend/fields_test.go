package frontend

import "testing"

func TestInputType(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"is_done", "checkbox"},
		{"start_date", "datetime-local"},
		{"created_at", "datetime-local"},
		{"email", "email"},
		{"house_number", "number"},
		{"commerce_number", "text"},
		{"vat_number", "text"},
		{"monthly_rate", "number"},
		{"minutes_spent", "number"},
		{"client_id", "number"},
		{"invoice_period_months", "number"},
		{"password", "password"},
		{"contract_url", "url"},
		{"logo", "url"},
		{"phone", "tel"},
		{"title", "text"},
	}
	for _, tt := range tests {
		if got := inputType(tt.name); got != tt.want {
			t.Errorf("inputType(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestAutofill(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"client_id", "off"},
		{"street", "address-line1"},
		{"city", "address-level2"},
		{"phone", "tel"},
		{"email", "email"},
		{"contract_url", "url"},
		{"name", "name"},
		{"company_name", "organization"},
		{"country", "country-name"},
		{"postalcode", "postal-code"},
		{"title", "on"},
	}
	for _, tt := range tests {
		if got := autofill(tt.name); got != tt.want {
			t.Errorf("autofill(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestReadOnly(t *testing.T) {
	for _, name := range []string{"id", "created_at", "updated_at"} {
		if !readOnly(name) {
			t.Errorf("readOnly(%q) = false, want true", name)
		}
	}
	if readOnly("title") {
		t.Error("readOnly(title) = true, want false")
	}
}

func TestFieldRulesFirstMatchWins(t *testing.T) {
	tests := []struct {
		name      string
		inputType string
		autofill  string
	}{
		// is_ beats the _at suffix
		{"is_created_at", "checkbox", "on"},
		{"is_invoice_id", "checkbox", "off"},
		// email only matches as a suffix, so the id rule takes it
		{"email_id", "number", "off"},
		{"billing_email", "email", "email"},
		// id beats the address rule for autofill
		{"address_id", "number", "off"},
		{"home_address", "text", "address-line1"},
		{"vat_number_id", "number", "off"},
		{"total_phone", "number", "tel"},
		{"password_url", "password", "url"},
		{"due_date", "datetime-local", "on"},
	}
	for _, tt := range tests {
		for range 3 {
			if got := inputType(tt.name); got != tt.inputType {
				t.Errorf("inputType(%q) = %q, want %q", tt.name, got, tt.inputType)
			}
			if got := autofill(tt.name); got != tt.autofill {
				t.Errorf("autofill(%q) = %q, want %q", tt.name, got, tt.autofill)
			}
		}
	}
}
