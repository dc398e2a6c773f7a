// Package mimetype resolves a response's Content-Type into the short kind tag
// that selects a beautifier and a syntax highlighter.
package mimetype

import (
	"mime"
	"strings"

	"github.com/artpar/auweb/internal/core"
)

// Kind is the detected format of response content.
type Kind string

const (
	KindJSON    Kind = "json"
	KindXML     Kind = "xml"
	KindHTML    Kind = "html"
	KindDefault Kind = "default"
)

// Kinds lists every kind, KindDefault last.
var Kinds = []Kind{KindJSON, KindXML, KindHTML, KindDefault}

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// Upper returns the uppercase string for display.
func (k Kind) Upper() string {
	return strings.ToUpper(string(k))
}

// Extension returns the file extension used to guess a highlighter, or ""
// for KindDefault.
func (k Kind) Extension() string {
	switch k {
	case KindJSON, KindXML, KindHTML:
		return string(k)
	default:
		return ""
	}
}

// ParseKind maps a user supplied kind name to a Kind. Unknown names and ""
// map to KindDefault with ok=false.
func ParseKind(s string) (Kind, bool) {
	lower := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, k := range Kinds {
		if k == lower {
			return k, true
		}
	}
	return KindDefault, false
}

// MediaType is a parsed Content-Type value.
type MediaType struct {
	Type    string
	Subtype string
	Params  map[string]string
}

// TextPlain is the media type used when a response carries no usable
// Content-Type.
var TextPlain = MediaType{Type: "text", Subtype: "plain"}

// String returns "type/subtype".
func (m MediaType) String() string {
	return m.Type + "/" + m.Subtype
}

// Parse parses a Content-Type header value. Type and subtype are lowercased.
func Parse(value string) (MediaType, bool) {
	mediatype, params, err := mime.ParseMediaType(value)
	if err != nil {
		return MediaType{}, false
	}
	typ, sub, ok := strings.Cut(mediatype, "/")
	if !ok || typ == "" || sub == "" {
		return MediaType{}, false
	}
	return MediaType{Type: typ, Subtype: sub, Params: params}, true
}

// Detect returns the media type in the content-type header of h, or
// TextPlain when the header is missing or cannot be parsed.
func Detect(h *core.Headers) MediaType {
	if h == nil || !h.Has("content-type") {
		return TextPlain
	}
	m, ok := Parse(h.Get("content-type"))
	if !ok {
		return TextPlain
	}
	return m
}

// Classify maps a media type to its Kind. Only the exact pairs below are
// recognised; everything else is KindDefault.
func Classify(m MediaType) Kind {
	switch {
	case (m.Type == "application" || m.Type == "text") && m.Subtype == "json":
		return KindJSON
	case (m.Type == "application" || m.Type == "text") && m.Subtype == "xml":
		return KindXML
	case m.Type == "text" && m.Subtype == "html":
		return KindHTML
	default:
		return KindDefault
	}
}
