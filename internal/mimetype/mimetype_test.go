package mimetype

import (
	"testing"

	"github.com/artpar/auweb/internal/core"
	"github.com/stretchr/testify/assert"
)

func headersWith(contentType string) *core.Headers {
	h := core.NewHeaders()
	h.Add("Content-Type", contentType)
	return h
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
		upper    string
		ext      string
	}{
		{KindJSON, "json", "JSON", "json"},
		{KindXML, "xml", "XML", "xml"},
		{KindHTML, "html", "HTML", "html"},
		{KindDefault, "default", "DEFAULT", ""},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
			assert.Equal(t, tt.upper, tt.kind.Upper())
			assert.Equal(t, tt.ext, tt.kind.Extension())
		})
	}
}

func TestParseKind(t *testing.T) {
	k, ok := ParseKind(" JSON ")
	assert.True(t, ok)
	assert.Equal(t, KindJSON, k)

	k, ok = ParseKind("yaml")
	assert.False(t, ok)
	assert.Equal(t, KindDefault, k)
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		headers  *core.Headers
		expected string
	}{
		{"missing header", core.NewHeaders(), "text/plain"},
		{"nil headers", nil, "text/plain"},
		{"plain json", headersWith("application/json"), "application/json"},
		{"params are stripped", headersWith("text/html; charset=utf-8"), "text/html"},
		{"leading space from raw header", headersWith(" application/xml"), "application/xml"},
		{"upper case", headersWith("Application/JSON"), "application/json"},
		{"garbage", headersWith("not a mime"), "text/plain"},
		{"missing subtype", headersWith("text"), "text/plain"},
		{"empty", headersWith(""), "text/plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Detect(tt.headers).String())
		})
	}
}

func TestDetect_LooksUpCaseInsensitively(t *testing.T) {
	h := core.NewHeaders()
	h.Add("CONTENT-TYPE", "text/xml; charset=utf-8")

	m := Detect(h)
	assert.Equal(t, "text/xml", m.String())
	assert.Equal(t, "utf-8", m.Params["charset"])
}

func TestClassify(t *testing.T) {
	tests := []struct {
		mediaType string
		expected  Kind
	}{
		{"application/json", KindJSON},
		{"text/json", KindJSON},
		{"application/xml", KindXML},
		{"text/xml", KindXML},
		{"text/html", KindHTML},
		{"application/html", KindDefault},
		{"application/vnd.api+json", KindDefault},
		{"application/atom+xml", KindDefault},
		{"text/plain", KindDefault},
		{"image/png", KindDefault},
		{"application/octet-stream", KindDefault},
		{"multipart/form-data", KindDefault},
	}

	for _, tt := range tests {
		t.Run(tt.mediaType, func(t *testing.T) {
			m, ok := Parse(tt.mediaType)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, Classify(m))
		})
	}
}

func TestClassify_IsTotal(t *testing.T) {
	types := []string{"application", "text", "image", "audio", "video", "multipart", "x-custom", ""}
	subtypes := []string{"json", "xml", "html", "plain", "css", "javascript", "png", ""}

	for _, typ := range types {
		for _, sub := range subtypes {
			k := Classify(MediaType{Type: typ, Subtype: sub})
			assert.Contains(t, Kinds, k, "%s/%s", typ, sub)
		}
	}
}

func TestDetectThenClassify(t *testing.T) {
	assert.Equal(t, KindJSON, Classify(Detect(headersWith("application/json; charset=utf-8"))))
	assert.Equal(t, KindDefault, Classify(Detect(core.NewHeaders())))
}
