package components

import (
	"strings"

	"github.com/artpar/auweb/internal/tui"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Viewer is a titled read-only scrolling pane. It is a display.TextContainer;
// styled text is expected to arrive already rendered with ANSI sequences.
type Viewer struct {
	title   string
	status  string
	focused bool
	width   int
	height  int
	text    strings.Builder
	view    viewport.Model
}

// NewViewer creates an empty viewer.
func NewViewer(title string) *Viewer {
	return &Viewer{title: title, view: viewport.New(0, 0)}
}

// Init initializes the component.
func (v *Viewer) Init() tea.Cmd {
	return nil
}

// Update scrolls the pane while focused.
func (v *Viewer) Update(msg tea.Msg) (tui.Component, tea.Cmd) {
	if !v.focused {
		return v, nil
	}
	var cmd tea.Cmd
	v.view, cmd = v.view.Update(msg)
	return v, cmd
}

// View renders the title, the status line and the visible text.
func (v *Viewer) View() string {
	header := tui.RenderTitle(v.title, v.focused)
	if v.status != "" {
		header += " " + v.status
	}
	return tui.RenderBorder(header+"\n"+v.view.View(), v.width, v.height, v.focused)
}

// Title returns the component title.
func (v *Viewer) Title() string {
	return v.title
}

// Focused returns true if focused.
func (v *Viewer) Focused() bool {
	return v.focused
}

// Focus sets the component as focused.
func (v *Viewer) Focus() {
	v.focused = true
}

// Blur removes focus.
func (v *Viewer) Blur() {
	v.focused = false
}

// SetSize sets dimensions. Border and title take three lines.
func (v *Viewer) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.view.Width = max(width-2, 1)
	v.view.Height = max(height-3, 1)
}

// Width returns the width.
func (v *Viewer) Width() int {
	return v.width
}

// Height returns the height.
func (v *Viewer) Height() int {
	return v.height
}

// SetStatus sets the line shown next to the title.
func (v *Viewer) SetStatus(status string) {
	v.status = status
}

// Status returns the line shown next to the title.
func (v *Viewer) Status() string {
	return v.status
}

// Text returns the pane's text.
func (v *Viewer) Text() string {
	return v.text.String()
}

// SetText replaces the pane's text and scrolls to the top.
func (v *Viewer) SetText(text string) {
	v.text.Reset()
	v.text.WriteString(text)
	v.view.SetContent(text)
	v.view.GotoTop()
}

// Clear empties the pane.
func (v *Viewer) Clear() {
	v.SetText("")
}

// AppendStyled appends already rendered text.
func (v *Viewer) AppendStyled(text, _ string) {
	v.text.WriteString(text)
	v.view.SetContent(v.text.String())
}
