// Package highlight colours formatted bodies for terminal display.
package highlight

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Highlighter renders text with a chroma style and formatter.
type Highlighter struct {
	style     *chroma.Style
	formatter chroma.Formatter
}

// New returns a Highlighter. Unknown style or formatter names fall back to
// chroma's defaults.
func New(styleName, formatterName string) *Highlighter {
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	formatter := formatters.Get(formatterName)
	if formatter == nil {
		formatter = formatters.Fallback
	}
	return &Highlighter{style: style, formatter: formatter}
}

// Lexer picks a lexer the way a source view guesses a language: by the
// media type unless an extension override is given, then by a file named
// "dummy.<extension>", then plain text.
func Lexer(extension, mediaType string) chroma.Lexer {
	var lexer chroma.Lexer
	if mediaType != "" {
		lexer = lexers.MatchMimeType(mediaType)
	}
	if lexer == nil && extension != "" {
		lexer = lexers.Match("dummy." + extension)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}

// Highlight renders text. When extension is set it wins over mediaType.
func (h *Highlighter) Highlight(text, extension, mediaType string) (string, error) {
	if extension != "" {
		mediaType = ""
	}

	iterator, err := Lexer(extension, mediaType).Tokenise(nil, text)
	if err != nil {
		return "", fmt.Errorf("tokenising body: %w", err)
	}

	var out strings.Builder
	if err := h.formatter.Format(&out, h.style, iterator); err != nil {
		return "", fmt.Errorf("formatting body: %w", err)
	}
	return out.String(), nil
}

// StyleNames lists the available style names.
func StyleNames() []string {
	return styles.Names()
}
