// Package beautify pretty-prints response bodies. It never fails: whenever a
// body cannot be parsed in its detected format the original text comes back
// unchanged.
package beautify

import (
	"strings"

	"github.com/artpar/auweb/internal/mimetype"
)

const (
	jsonIndent   = "  "
	markupIndent = "    "
)

// Beautifier formats bodies by kind.
type Beautifier struct {
	strictHTML bool
}

// Option configures a Beautifier.
type Option func(*Beautifier)

// WithStrictHTML makes HTML bodies whose tags do not balance come back
// unchanged instead of being repaired by the HTML5 parser.
func WithStrictHTML(strict bool) Option {
	return func(b *Beautifier) {
		b.strictHTML = strict
	}
}

// New creates a Beautifier.
func New(opts ...Option) *Beautifier {
	b := &Beautifier{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

var defaultBeautifier = New()

// Beautify formats text with the default Beautifier.
func Beautify(kind mimetype.Kind, text string) string {
	return defaultBeautifier.Beautify(kind, text)
}

// Beautify returns text pretty-printed according to kind, or text itself
// when it does not parse.
func (b *Beautifier) Beautify(kind mimetype.Kind, text string) (out string) {
	defer func() {
		if recover() != nil {
			out = text
		}
	}()

	var (
		formatted string
		ok        bool
	)

	switch kind {
	case mimetype.KindJSON:
		formatted, ok = formatJSON(text)
	case mimetype.KindXML:
		formatted, ok = formatXML(text)
	case mimetype.KindHTML:
		if b.strictHTML && !balancedHTML(text) {
			return text
		}
		formatted, ok = formatHTML(text)
	default:
		return text
	}

	if !ok {
		return text
	}
	return formatted
}

func writeIndent(buf *strings.Builder, level int) {
	for i := 0; i < level; i++ {
		buf.WriteString(markupIndent)
	}
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "'", "&#39;", `"`, "&quot;")
)
