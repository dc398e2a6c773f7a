// Package headers turns the free-form header text a user types into a
// structured header collection, and back.
package headers

import (
	"strings"

	"github.com/artpar/auweb/internal/core"
	"golang.org/x/net/http/httpguts"
)

// WarnFunc receives one human-readable message per rejected line.
type WarnFunc func(message string)

// Parse reads one "Name: Value" header per line. Lines without a colon, with
// a name that is not a valid token, or with a value containing illegal bytes
// are reported to warn and skipped. The value is kept exactly as typed after
// the first colon, leading whitespace included. Repeated names append.
func Parse(text string, warn WarnFunc) *core.Headers {
	result := core.NewHeaders()

	for _, line := range splitLines(text) {
		if strings.TrimSpace(line) == "" {
			continue
		}

		name, value, ok := strings.Cut(line, ":")
		if !ok || !httpguts.ValidHeaderFieldName(name) || !httpguts.ValidHeaderFieldValue(value) {
			if warn != nil {
				warn("Failed to parse header - " + line)
			}
			continue
		}

		result.Add(name, value)
	}

	return result
}

// Collect returns a WarnFunc that appends messages to dst.
func Collect(dst *[]string) WarnFunc {
	return func(message string) {
		*dst = append(*dst, message)
	}
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
