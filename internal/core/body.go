package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// Body represents a request or response body.
type Body interface {
	Type() string
	ContentType() string
	IsEmpty() bool
	Size() int64
	Bytes() []byte
	String() string
	Reader() io.Reader
	JSON() (any, error)
}

type emptyBody struct{}

// NewEmptyBody creates an empty body.
func NewEmptyBody() Body {
	return &emptyBody{}
}

func (b *emptyBody) Type() string        { return "empty" }
func (b *emptyBody) ContentType() string { return "" }
func (b *emptyBody) IsEmpty() bool       { return true }
func (b *emptyBody) Size() int64         { return 0 }
func (b *emptyBody) Bytes() []byte       { return nil }
func (b *emptyBody) String() string      { return "" }
func (b *emptyBody) Reader() io.Reader   { return bytes.NewReader(nil) }
func (b *emptyBody) JSON() (any, error)  { return nil, errors.New("empty body") }

type rawBody struct {
	kind        string
	content     []byte
	contentType string
}

// NewRawBody creates a raw body with the given content and content type.
func NewRawBody(content []byte, contentType string) Body {
	return &rawBody{
		kind:        "raw",
		content:     content,
		contentType: contentType,
	}
}

// NewFormBody creates an application/x-www-form-urlencoded body from
// already encoded form text.
func NewFormBody(encoded string) Body {
	return &rawBody{
		kind:        "form",
		content:     []byte(encoded),
		contentType: "application/x-www-form-urlencoded",
	}
}

func (b *rawBody) Type() string        { return b.kind }
func (b *rawBody) ContentType() string { return b.contentType }
func (b *rawBody) IsEmpty() bool       { return len(b.content) == 0 }
func (b *rawBody) Size() int64         { return int64(len(b.content)) }
func (b *rawBody) Bytes() []byte       { return b.content }
func (b *rawBody) String() string      { return string(b.content) }
func (b *rawBody) Reader() io.Reader   { return bytes.NewReader(b.content) }
func (b *rawBody) JSON() (any, error) {
	var result any
	err := json.Unmarshal(b.content, &result)
	return result, err
}
