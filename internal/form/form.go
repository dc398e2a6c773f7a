// Package form turns key=value lines into ordered form fields.
package form

import (
	"net/url"
	"strings"
)

// Field is one key/value pair from a single input line.
type Field struct {
	Key   string
	Value string
}

// Fields keeps the input order; repeated keys are kept.
type Fields []Field

// Encode splits every non-empty line on its first "=". A line without "="
// becomes a field with the whole line as key and an empty value.
func Encode(text string) Fields {
	var fields Fields

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}

		key, value, _ := strings.Cut(line, "=")
		fields = append(fields, Field{Key: key, Value: value})
	}

	return fields
}

// Encode renders the fields as an application/x-www-form-urlencoded body in
// field order.
func (f Fields) Encode() string {
	var b strings.Builder
	for i, field := range f {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(field.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(field.Value))
	}
	return b.String()
}
