package service

import (
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	"github.com/casual-erp/casual-web/ccli"
)

// Fields is a parsed form body. Get returns "" for missing fields.
type Fields interface {
	Get(name string) string
}

// FieldMap is a Fields backed by a plain map.
type FieldMap map[string]string

// Get implements Fields.
func (m FieldMap) Get(name string) string {
	return m[name]
}

// flagField maps a CLI flag to the form field that feeds it.
type flagField struct {
	flag  string
	field string
}

// argsFrom builds flag/value pairs from fields in table order, after any
// leading positional args.
func argsFrom(fields Fields, table []flagField, leading ...ccli.Arg) ccli.Args {
	args := make(ccli.Args, 0, len(leading)+len(table))
	args = append(args, leading...)
	for _, ff := range table {
		args = append(args, ccli.F(ff.flag, fields.Get(ff.field)))
	}
	return args
}

// Record is one entity as returned by the CLI in json mode.
// Keys keep the order the CLI printed them in.
type Record struct {
	raw gjson.Result
}

// ParseRecord parses a JSON object.
func ParseRecord(s string) (Record, bool) {
	if !gjson.Valid(s) {
		return Record{}, false
	}
	r := gjson.Parse(s)
	if !r.IsObject() {
		return Record{}, false
	}
	return Record{raw: r}, true
}

// Field is one key/value pair of a Record.
type Field struct {
	Name  string
	Value gjson.Result
}

// Fields returns the record's fields in CLI order.
func (r Record) Fields() []Field {
	var out []Field
	r.raw.ForEach(func(key, value gjson.Result) bool {
		out = append(out, Field{Name: key.String(), Value: value})
		return true
	})
	return out
}

// Keys returns the field names in CLI order.
func (r Record) Keys() []string {
	var keys []string
	r.raw.ForEach(func(key, _ gjson.Result) bool {
		keys = append(keys, key.String())
		return true
	})
	return keys
}

// Get returns the raw value of a field.
func (r Record) Get(name string) gjson.Result {
	return r.raw.Get(gjson.Escape(name))
}

// String returns a field as a string; missing and null fields are "".
func (r Record) String(name string) string {
	v := r.Get(name)
	if v.Type == gjson.Null {
		return ""
	}
	return v.String()
}

// ID returns the record's "id" field.
func (r Record) ID() int64 {
	return r.Get("id").Int()
}

// IsZero reports whether r holds no object.
func (r Record) IsZero() bool {
	return !r.raw.IsObject()
}

// Raw returns the JSON text of the record.
func (r Record) Raw() string {
	return r.raw.Raw
}

// Pretty returns the record indented with four spaces.
func (r Record) Pretty() string {
	return string(pretty.PrettyOptions([]byte(r.raw.Raw), &pretty.Options{
		Width:  80,
		Prefix: "",
		Indent: "    ",
	}))
}

// Option is one choice for a select or datalist.
type Option struct {
	Value string
	Label string
}

// Options maps form field names to their choices.
type Options map[string][]Option

// optionsFrom builds options from records with label derived by fn.
func optionsFrom(records []Record, label func(Record) string) []Option {
	out := make([]Option, 0, len(records))
	for _, r := range records {
		out = append(out, Option{
			Value: strconv.FormatInt(r.ID(), 10),
			Label: label(r),
		})
	}
	return out
}
