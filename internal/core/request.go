package core

import (
	"errors"

	"github.com/google/uuid"
)

// Request is an outgoing HTTP request built from user input.
type Request struct {
	id       string
	method   Method
	endpoint string
	headers  *Headers
	body     Body
}

// NewRequest creates a new request with the given parameters.
func NewRequest(method Method, endpoint string) (*Request, error) {
	if method == "" {
		return nil, errors.New("method cannot be empty")
	}
	if endpoint == "" {
		return nil, errors.New("endpoint cannot be empty")
	}

	return &Request{
		id:       uuid.New().String(),
		method:   method,
		endpoint: endpoint,
		headers:  NewHeaders(),
		body:     NewEmptyBody(),
	}, nil
}

func (r *Request) ID() string {
	return r.id
}

func (r *Request) Method() Method {
	return r.method
}

func (r *Request) Endpoint() string {
	return r.endpoint
}

func (r *Request) Headers() *Headers {
	return r.headers
}

func (r *Request) Body() Body {
	return r.body
}

// SetHeaders replaces the request headers.
func (r *Request) SetHeaders(h *Headers) {
	if h == nil {
		h = NewHeaders()
	}
	r.headers = h
}

func (r *Request) SetHeader(key, value string) {
	r.headers.Set(key, value)
}

func (r *Request) SetBody(body Body) {
	r.body = body
}

// Clone returns a copy with a fresh ID.
func (r *Request) Clone() *Request {
	return &Request{
		id:       uuid.New().String(),
		method:   r.method,
		endpoint: r.endpoint,
		headers:  r.headers.Clone(),
		body:     r.body,
	}
}
