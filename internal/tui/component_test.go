package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type fakeComponent struct {
	title   string
	focused bool
}

func (f *fakeComponent) Init() tea.Cmd                           { return nil }
func (f *fakeComponent) Update(msg tea.Msg) (Component, tea.Cmd) { return f, nil }
func (f *fakeComponent) View() string                            { return f.title }
func (f *fakeComponent) Title() string                           { return f.title }
func (f *fakeComponent) Focused() bool                           { return f.focused }
func (f *fakeComponent) Focus()                                  { f.focused = true }
func (f *fakeComponent) Blur()                                   { f.focused = false }
func (f *fakeComponent) SetSize(width, height int)               {}
func (f *fakeComponent) Width() int                              { return 0 }
func (f *fakeComponent) Height() int                             { return 0 }

func TestComponentList(t *testing.T) {
	a, b, c := &fakeComponent{title: "a"}, &fakeComponent{title: "b"}, &fakeComponent{title: "c"}

	t.Run("starts without focus", func(t *testing.T) {
		cl := NewComponentList(a, b, c)
		assert.Equal(t, -1, cl.FocusIndex())
		assert.Nil(t, cl.Focused())
	})

	t.Run("cycles forward and wraps", func(t *testing.T) {
		cl := NewComponentList(a, b, c)
		cl.FocusFirst()
		assert.True(t, a.Focused())

		cl.FocusNext()
		cl.FocusNext()
		assert.False(t, a.Focused())
		assert.True(t, c.Focused())

		cl.FocusNext()
		assert.Equal(t, 0, cl.FocusIndex())
		assert.False(t, c.Focused())
	})

	t.Run("cycles backward and wraps", func(t *testing.T) {
		cl := NewComponentList(a, b, c)
		cl.FocusFirst()
		cl.FocusPrev()
		assert.Equal(t, 2, cl.FocusIndex())
		assert.Same(t, c, cl.Focused())
	})

	t.Run("empty list is a no-op", func(t *testing.T) {
		cl := NewComponentList()
		cl.FocusNext()
		cl.FocusPrev()
		assert.Equal(t, -1, cl.FocusIndex())
		assert.Nil(t, cl.Focused())
	})
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "512B", FormatSize(512))
	assert.Equal(t, "1.5KB", FormatSize(1536))
	assert.Equal(t, "2.0MB", FormatSize(2*1024*1024))
}

func TestRenderBorder(t *testing.T) {
	out := RenderBorder("body", 10, 4, true)
	assert.Contains(t, out, "body")
	assert.Contains(t, out, "╭")
}
