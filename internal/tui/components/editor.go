package components

import (
	"github.com/artpar/auweb/internal/tui"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// Editor is a titled multi-line text area. It is a display.TextContainer.
type Editor struct {
	title  string
	width  int
	height int
	area   textarea.Model
}

// NewEditor creates an editor with placeholder text.
func NewEditor(title, placeholder string) *Editor {
	area := textarea.New()
	area.Placeholder = placeholder
	area.ShowLineNumbers = false
	area.CharLimit = 0
	area.MaxHeight = 0
	area.Prompt = ""

	return &Editor{title: title, area: area}
}

// Init initializes the component.
func (e *Editor) Init() tea.Cmd {
	return nil
}

// Update passes input to the text area while focused.
func (e *Editor) Update(msg tea.Msg) (tui.Component, tea.Cmd) {
	if !e.area.Focused() {
		return e, nil
	}
	var cmd tea.Cmd
	e.area, cmd = e.area.Update(msg)
	return e, cmd
}

// View renders the editor.
func (e *Editor) View() string {
	content := tui.RenderTitle(e.title, e.Focused()) + "\n" + e.area.View()
	return tui.RenderBorder(content, e.width, e.height, e.Focused())
}

// Title returns the component title.
func (e *Editor) Title() string {
	return e.title
}

// Focused returns true if focused.
func (e *Editor) Focused() bool {
	return e.area.Focused()
}

// Focus sets the component as focused.
func (e *Editor) Focus() {
	e.area.Focus()
}

// Blur removes focus.
func (e *Editor) Blur() {
	e.area.Blur()
}

// SetSize sets dimensions. Border and title take three lines.
func (e *Editor) SetSize(width, height int) {
	e.width = width
	e.height = height
	e.area.SetWidth(max(width-2, 1))
	e.area.SetHeight(max(height-3, 1))
}

// Width returns the width.
func (e *Editor) Width() int {
	return e.width
}

// Height returns the height.
func (e *Editor) Height() int {
	return e.height
}

// Text returns the edited text.
func (e *Editor) Text() string {
	return e.area.Value()
}

// SetText replaces the edited text.
func (e *Editor) SetText(text string) {
	e.area.SetValue(text)
}

// Clear empties the editor.
func (e *Editor) Clear() {
	e.area.Reset()
}

// AppendStyled appends text. Text areas hold plain text only, so the style
// is ignored.
func (e *Editor) AppendStyled(text, _ string) {
	e.area.SetValue(e.area.Value() + text)
}
