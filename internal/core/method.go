package core

import (
	"fmt"
	"net/http"
	"strings"
)

// Method is the way a request is built from the user's input.
type Method string

const (
	// MethodGet sends a GET with parameters in the URL.
	MethodGet Method = "GET"
	// MethodPostForm sends key=value lines as a form encoded body.
	MethodPostForm Method = "POST_FORM"
	// MethodPostRaw sends the body text as typed.
	MethodPostRaw Method = "POST_RAW"
	MethodPut     Method = "PUT"
	MethodPatch   Method = "PATCH"
	MethodDelete  Method = "DELETE"
	MethodHead    Method = "HEAD"
	MethodOptions Method = "OPTIONS"
)

// Methods lists every method in the order the UI cycles through them.
var Methods = []Method{
	MethodGet,
	MethodPostForm,
	MethodPostRaw,
	MethodPut,
	MethodPatch,
	MethodDelete,
	MethodHead,
	MethodOptions,
}

// ParseMethod accepts a Method name or a plain HTTP verb, case-insensitively.
// A bare POST maps to MethodPostRaw.
func ParseMethod(s string) (Method, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	if upper == "POST" {
		return MethodPostRaw, nil
	}
	for _, m := range Methods {
		if string(m) == upper {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown method %q", s)
}

// Verb returns the HTTP verb sent on the wire.
func (m Method) Verb() string {
	switch m {
	case MethodPostForm, MethodPostRaw:
		return http.MethodPost
	default:
		return string(m)
	}
}

// IsForm reports whether the body is built from key=value lines.
func (m Method) IsForm() bool {
	return m == MethodPostForm
}

// HasBody reports whether the method sends a request body.
func (m Method) HasBody() bool {
	switch m {
	case MethodGet, MethodHead, MethodOptions:
		return false
	default:
		return true
	}
}

// Next returns the method after m in Methods, wrapping around.
func (m Method) Next() Method {
	for i, candidate := range Methods {
		if candidate == m {
			return Methods[(i+1)%len(Methods)]
		}
	}
	return MethodGet
}

func (m Method) String() string {
	return string(m)
}
