package display

import (
	"github.com/artpar/auweb/internal/app"
	"github.com/artpar/auweb/internal/headers"
	"github.com/artpar/auweb/internal/highlight"
)

// Context carries the display settings that apply to one view.
type Context struct {
	Highlighter *highlight.Highlighter
	// Extension and MediaType of the last rendered body. Re-rendering after
	// a style change reuses them.
	Extension string
	MediaType string
}

// NewContext creates a Context. A nil highlighter renders plain text.
func NewContext(h *highlight.Highlighter) *Context {
	return &Context{Highlighter: h}
}

// Render writes result's beautified body to body and its headers to hdrs.
// Either container may be nil.
func (c *Context) Render(body, hdrs TextContainer, result *app.Result) error {
	c.Extension = result.Extension
	c.MediaType = result.MediaType.String()
	if result.Override {
		c.MediaType = ""
	}

	if hdrs != nil {
		hdrs.SetText(headers.Format(result.Response.Headers()))
	}
	if body == nil {
		return nil
	}
	return c.RenderBody(body, result.Pretty)
}

// RenderBody replaces the container's text with text highlighted using the
// context's current extension and media type.
func (c *Context) RenderBody(body TextContainer, text string) error {
	body.Clear()
	if c.Highlighter == nil {
		body.AppendStyled(text, "")
		return nil
	}

	highlighted, err := c.Highlighter.Highlight(text, c.Extension, c.MediaType)
	if err != nil {
		body.AppendStyled(text, "")
		return err
	}
	body.AppendStyled(highlighted, "highlighted")
	return nil
}
