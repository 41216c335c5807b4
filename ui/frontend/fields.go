package frontend

import "strings"

// fieldRule maps a field name predicate to a value. Rule lists are checked in
// order and the first match wins.
type fieldRule struct {
	value string
	match func(name string) bool
}

func hasSuffix(suffixes ...string) func(string) bool {
	return func(name string) bool {
		for _, s := range suffixes {
			if strings.HasSuffix(name, s) {
				return true
			}
		}
		return false
	}
}

func hasPrefix(prefixes ...string) func(string) bool {
	return func(name string) bool {
		for _, p := range prefixes {
			if strings.HasPrefix(name, p) {
				return true
			}
		}
		return false
	}
}

func equals(want string) func(string) bool {
	return func(name string) bool { return name == want }
}

var inputTypeRules = []fieldRule{
	{"checkbox", hasPrefix("is_")},
	{"datetime-local", hasSuffix("_at", "date")},
	{"email", hasSuffix("email")},
	{"number", func(name string) bool {
		return (strings.HasSuffix(name, "number") && !hasPrefix("commerce_", "vat_")(name)) ||
			strings.HasSuffix(name, "rate") ||
			strings.HasPrefix(name, "minutes_") ||
			strings.HasSuffix(name, "id") ||
			strings.HasSuffix(name, "percentage") ||
			strings.HasPrefix(name, "total") ||
			strings.HasSuffix(name, "discount") ||
			strings.HasSuffix(name, "months")
	}},
	{"password", hasPrefix("password")},
	{"url", hasSuffix("url", "link", "logo")},
	{"tel", hasSuffix("phone")},
}

var autofillRules = []fieldRule{
	{"off", hasSuffix("id")},
	{"address-line1", hasSuffix("street", "address")},
	{"address-level2", hasSuffix("city")},
	{"tel", hasSuffix("phone")},
	{"email", hasSuffix("email")},
	{"url", hasSuffix("url")},
	{"name", equals("name")},
	{"organization", equals("company_name")},
	{"country-name", hasSuffix("country")},
	{"postal-code", hasSuffix("postalcode")},
}

func firstMatch(rules []fieldRule, name, fallback string) string {
	for _, r := range rules {
		if r.match(name) {
			return r.value
		}
	}
	return fallback
}

// inputType picks the HTML input type for a field name.
func inputType(name string) string {
	return firstMatch(inputTypeRules, name, "text")
}

// autofill picks the autocomplete hint for a field name.
func autofill(name string) string {
	return firstMatch(autofillRules, name, "on")
}

// readOnly reports whether a field is managed by the CLI.
func readOnly(name string) bool {
	return name == "id" || name == "created_at" || name == "updated_at"
}
