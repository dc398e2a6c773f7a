package core

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	t.Run("creates request with valid HTTP URL", func(t *testing.T) {
		req, err := NewRequest(MethodGet, "https://api.example.com/users")
		require.NoError(t, err)
		assert.NotEmpty(t, req.ID())
		assert.Equal(t, MethodGet, req.Method())
		assert.Equal(t, "https://api.example.com/users", req.Endpoint())
	})

	t.Run("returns error for empty method", func(t *testing.T) {
		_, err := NewRequest("", "https://api.example.com/users")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "method")
	})

	t.Run("returns error for empty endpoint", func(t *testing.T) {
		_, err := NewRequest(MethodGet, "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "endpoint")
	})

	t.Run("generates unique IDs", func(t *testing.T) {
		req1, _ := NewRequest(MethodGet, "https://example.com")
		req2, _ := NewRequest(MethodGet, "https://example.com")
		assert.NotEqual(t, req1.ID(), req2.ID())
	})
}

func TestRequest_Body(t *testing.T) {
	t.Run("returns empty body for new request", func(t *testing.T) {
		req, _ := NewRequest(MethodGet, "https://example.com")
		body := req.Body()
		assert.True(t, body.IsEmpty())
		assert.Equal(t, int64(0), body.Size())
	})

	t.Run("sets raw body", func(t *testing.T) {
		req, _ := NewRequest(MethodPostRaw, "https://example.com")
		req.SetBody(NewRawBody([]byte("hello world"), "text/plain"))

		assert.Equal(t, "hello world", req.Body().String())
		assert.Equal(t, "text/plain", req.Body().ContentType())
	})

	t.Run("sets form body", func(t *testing.T) {
		req, _ := NewRequest(MethodPostForm, "https://example.com")
		req.SetBody(NewFormBody("a=1&b=2"))

		assert.Equal(t, "form", req.Body().Type())
		assert.Equal(t, "application/x-www-form-urlencoded", req.Body().ContentType())
	})

	t.Run("body reader can be read multiple times", func(t *testing.T) {
		content := []byte(`{"key":"value"}`)
		b := NewRawBody(content, "application/json")

		d1, err := io.ReadAll(b.Reader())
		require.NoError(t, err)
		d2, err := io.ReadAll(b.Reader())
		require.NoError(t, err)
		assert.Equal(t, content, d1)
		assert.Equal(t, content, d2)
	})
}

func TestRequest_Clone(t *testing.T) {
	original, _ := NewRequest(MethodPostRaw, "https://example.com")
	original.SetHeader("Authorization", "Bearer token")
	original.SetBody(NewRawBody([]byte("body"), "text/plain"))

	clone := original.Clone()

	assert.Equal(t, original.Method(), clone.Method())
	assert.Equal(t, original.Endpoint(), clone.Endpoint())
	assert.NotEqual(t, original.ID(), clone.ID())

	clone.SetHeader("Authorization", "Bearer different")
	assert.Equal(t, "Bearer token", original.Headers().Get("Authorization"))
}

func TestHeaders(t *testing.T) {
	t.Run("creates empty headers", func(t *testing.T) {
		h := NewHeaders()
		assert.Empty(t, h.Keys())
		assert.Equal(t, 0, h.Len())
	})

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		h := NewHeaders()
		h.Add("Content-Type", "application/json")
		assert.Equal(t, "application/json", h.Get("content-type"))
		assert.Equal(t, "application/json", h.Get("CONTENT-TYPE"))
		assert.True(t, h.Has("content-TYPE"))
	})

	t.Run("first casing is preserved", func(t *testing.T) {
		h := NewHeaders()
		h.Add("X-Token", "a")
		h.Add("x-token", "b")
		assert.Equal(t, []string{"X-Token"}, h.Keys())
		assert.Equal(t, []string{"a", "b"}, h.GetAll("X-TOKEN"))
	})

	t.Run("Set replaces existing value", func(t *testing.T) {
		h := NewHeaders()
		h.Set("Key", "value1")
		h.Set("Key", "value2")
		assert.Equal(t, "value2", h.Get("Key"))
		assert.Len(t, h.GetAll("Key"), 1)
	})

	t.Run("Clone creates independent copy", func(t *testing.T) {
		h := NewHeaders()
		h.Set("Key", "value")
		clone := h.Clone()
		clone.Set("Key", "different")
		assert.Equal(t, "value", h.Get("Key"))
	})
}

func TestMethod(t *testing.T) {
	t.Run("parse accepts verbs and modes", func(t *testing.T) {
		tests := []struct {
			in       string
			expected Method
		}{
			{"get", MethodGet},
			{"POST", MethodPostRaw},
			{"post_form", MethodPostForm},
			{"POST_RAW", MethodPostRaw},
			{" delete ", MethodDelete},
		}
		for _, tt := range tests {
			t.Run(tt.in, func(t *testing.T) {
				m, err := ParseMethod(tt.in)
				require.NoError(t, err)
				assert.Equal(t, tt.expected, m)
			})
		}
	})

	t.Run("parse rejects unknown", func(t *testing.T) {
		_, err := ParseMethod("FETCH")
		assert.Error(t, err)
	})

	t.Run("verb maps post modes to POST", func(t *testing.T) {
		assert.Equal(t, "POST", MethodPostForm.Verb())
		assert.Equal(t, "POST", MethodPostRaw.Verb())
		assert.Equal(t, "GET", MethodGet.Verb())
	})

	t.Run("next wraps around", func(t *testing.T) {
		assert.Equal(t, MethodPostForm, MethodGet.Next())
		assert.Equal(t, MethodGet, MethodOptions.Next())
	})

	t.Run("body methods", func(t *testing.T) {
		assert.False(t, MethodGet.HasBody())
		assert.True(t, MethodPostForm.HasBody())
		assert.True(t, MethodPostForm.IsForm())
		assert.False(t, MethodPostRaw.IsForm())
	})
}
