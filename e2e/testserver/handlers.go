package testserver

import (
	"encoding/json"
	"net/http"
)

// Handlers provides reusable response handlers.
type Handlers struct{}

// Typed returns a handler that responds with body under contentType. An
// empty contentType sends no Content-Type header at all.
func (Handlers) Typed(code int, contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if contentType == "" {
			// Stop net/http from sniffing one.
			w.Header()["Content-Type"] = nil
		} else {
			w.Header().Set("Content-Type", contentType)
		}
		w.WriteHeader(code)
		_, _ = w.Write([]byte(body))
	}
}

// JSON returns a handler that responds with data encoded compactly.
func (Handlers) JSON(code int, data any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(data)
	}
}

// Echo returns a handler that echoes the request as JSON: method, headers
// and, for form posts, the decoded form.
func (Handlers) Echo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := map[string]any{
			"method":  r.Method,
			"headers": r.Header,
		}
		if err := r.ParseForm(); err == nil && len(r.PostForm) > 0 {
			response["form"] = r.PostForm
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}
}

// Status returns a handler that responds with just a status code.
func (Handlers) Status(code int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(code)
	}
}
