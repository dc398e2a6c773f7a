// Package app wires the text core to the HTTP transport: it turns the user's
// raw input into a request, sends it, and prepares the response for display.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/artpar/auweb/internal/beautify"
	"github.com/artpar/auweb/internal/core"
	"github.com/artpar/auweb/internal/draft"
	"github.com/artpar/auweb/internal/form"
	"github.com/artpar/auweb/internal/headers"
	"github.com/artpar/auweb/internal/interpolate"
	"github.com/artpar/auweb/internal/mimetype"
)

// ErrNoURL is returned when a draft has no URL to send to.
var ErrNoURL = errors.New("url is required")

// ExchangeError is returned when a built request could not be sent. It keeps
// the warnings collected while building the request.
type ExchangeError struct {
	Err      error
	Warnings []string
}

func (e *ExchangeError) Error() string {
	return "request failed: " + e.Err.Error()
}

func (e *ExchangeError) Unwrap() error {
	return e.Err
}

// Warnings returns the request warnings carried by err, if any.
func Warnings(err error) []string {
	var exchangeErr *ExchangeError
	if errors.As(err, &exchangeErr) {
		return exchangeErr.Warnings
	}
	return nil
}

// Requester sends a request and returns the complete response.
type Requester interface {
	Send(ctx context.Context, req *core.Request) (*core.Response, error)
}

// Result is a response prepared for display.
type Result struct {
	Request   *core.Request
	Response  *core.Response
	MediaType mimetype.MediaType
	Kind      mimetype.Kind
	// Extension selects the highlighter; it comes from Kind or from the
	// user's override.
	Extension string
	Override  bool
	Pretty    string
	Warnings  []string
}

// App is the main application container.
type App struct {
	requester  Requester
	beautifier *beautify.Beautifier
	variables  *interpolate.Engine
	logger     *slog.Logger
}

// Option is a function that configures the App.
type Option func(*App)

// WithBeautifier replaces the default beautifier.
func WithBeautifier(b *beautify.Beautifier) Option {
	return func(a *App) {
		a.beautifier = b
	}
}

// WithVariables sets the values substituted for {{name}} placeholders in
// the URL, headers and body.
func WithVariables(vars map[string]string) Option {
	return func(a *App) {
		a.variables = interpolate.NewEngine(vars)
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		a.logger = l
	}
}

// New creates a new App sending through requester.
func New(requester Requester, opts ...Option) *App {
	app := &App{
		requester:  requester,
		beautifier: beautify.New(),
		variables:  interpolate.NewEngine(nil),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// BuildRequest turns a draft into a request. Placeholders are expanded
// first. Header lines that cannot be parsed and placeholders naming unknown
// variables are returned as warnings.
func (a *App) BuildRequest(d draft.Draft) (*core.Request, []string, error) {
	var warnings []string
	expand := func(text string) string {
		out, undefined := a.variables.Expand(text)
		for _, name := range undefined {
			warnings = append(warnings, "Undefined variable - "+name)
		}
		return out
	}
	d.URL, d.Headers, d.Body = expand(d.URL), expand(d.Headers), expand(d.Body)

	url := strings.TrimSpace(d.URL)
	if url == "" {
		return nil, nil, ErrNoURL
	}

	method := d.Method
	if method == "" {
		method = core.MethodGet
	}

	req, err := core.NewRequest(method, url)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.SetHeaders(headers.Parse(d.Headers, headers.Collect(&warnings)))

	switch {
	case method.IsForm():
		req.SetBody(core.NewFormBody(form.Encode(d.Body).Encode()))
	case method.HasBody() && d.Body != "":
		req.SetBody(core.NewRawBody([]byte(d.Body), ""))
	}

	return req, warnings, nil
}

// Exchange builds, sends and presents one request.
func (a *App) Exchange(ctx context.Context, d draft.Draft) (*Result, error) {
	req, warnings, err := a.BuildRequest(d)
	if err != nil {
		return nil, err
	}

	for _, w := range warnings {
		a.logger.Debug("request warning", "request_id", req.ID(), "warning", w)
	}
	a.logger.Debug("sending request",
		"request_id", req.ID(),
		"method", req.Method().Verb(),
		"url", req.Endpoint(),
		"headers", req.Headers().Len(),
		"body_bytes", req.Body().Size(),
	)

	resp, err := a.requester.Send(ctx, req)
	if err != nil {
		a.logger.Debug("request failed", "request_id", req.ID(), "error", err)
		return nil, &ExchangeError{Err: err, Warnings: warnings}
	}

	a.logger.Debug("response received",
		"request_id", req.ID(),
		"status", resp.Status().Code(),
		"body_bytes", resp.Body().Size(),
		"duration", resp.Timing().Total,
	)

	result := a.Present(resp, d.Highlight)
	result.Request = req
	result.Warnings = warnings
	return result, nil
}

// Present classifies and beautifies resp. A non-empty highlight overrides the
// highlighter: a kind name selects that kind's extension, anything else is
// used as a file extension. Beautifying always follows the detected kind.
func (a *App) Present(resp *core.Response, highlight string) *Result {
	mediaType := mimetype.Detect(resp.Headers())
	kind := mimetype.Classify(mediaType)

	result := &Result{
		Response:  resp,
		MediaType: mediaType,
		Kind:      kind,
		Extension: kind.Extension(),
		Pretty:    a.beautifier.Beautify(kind, resp.Body().String()),
	}

	if highlight != "" {
		result.Extension = strings.ToLower(strings.TrimSpace(highlight))
		if override, ok := mimetype.ParseKind(highlight); ok {
			result.Extension = override.Extension()
		}
		result.Override = true
	}

	return result
}
