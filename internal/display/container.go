// Package display puts exchange results into text containers. The state a
// view needs (which highlighter, which style) travels in a Context value.
package display

import (
	"strings"
	"sync"
)

// TextContainer is anything that holds editable or displayable text.
type TextContainer interface {
	Text() string
	SetText(text string)
	Clear()
	// AppendStyled appends text rendered with a style. Containers that
	// cannot style ignore the style.
	AppendStyled(text, style string)
}

// Buffer is a plain in-memory TextContainer. Styles are ignored.
type Buffer struct {
	mu sync.Mutex
	b  strings.Builder
}

func (b *Buffer) Text() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

func (b *Buffer) SetText(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.b.Reset()
	b.b.WriteString(text)
}

func (b *Buffer) Clear() {
	b.SetText("")
}

func (b *Buffer) AppendStyled(text, _ string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.b.WriteString(text)
}
