package headers

import (
	"strings"

	"github.com/artpar/auweb/internal/core"
)

// Format renders h as "Name: value" lines in insertion order, one line per
// value.
func Format(h *core.Headers) string {
	if h == nil {
		return ""
	}

	var b strings.Builder
	for _, name := range h.Keys() {
		for _, value := range h.GetAll(name) {
			b.WriteString(name)
			b.WriteString(": ")
			b.WriteString(value)
			b.WriteString("\n")
		}
	}
	return b.String()
}
