package components

import (
	"github.com/artpar/auweb/internal/core"
	"github.com/artpar/auweb/internal/tui"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// URLBar edits the request URL and shows the selected method.
type URLBar struct {
	width  int
	input  textinput.Model
	method core.Method
}

// NewURLBar creates a URL bar.
func NewURLBar() *URLBar {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = "https://api.example.com/endpoint"
	input.CharLimit = 0

	return &URLBar{input: input, method: core.MethodGet}
}

// Init starts the cursor blinking.
func (b *URLBar) Init() tea.Cmd {
	return textinput.Blink
}

// Update passes input to the text field while focused.
func (b *URLBar) Update(msg tea.Msg) (tui.Component, tea.Cmd) {
	if !b.input.Focused() {
		return b, nil
	}
	var cmd tea.Cmd
	b.input, cmd = b.input.Update(msg)
	return b, cmd
}

// View renders the method badge followed by the URL.
func (b *URLBar) View() string {
	badge := lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("214")).
		Render(b.method.String())
	return tui.RenderBorder(badge+" "+b.input.View(), b.width, 3, b.Focused())
}

// Title returns the component title.
func (b *URLBar) Title() string {
	return "URL"
}

// Focused returns true if focused.
func (b *URLBar) Focused() bool {
	return b.input.Focused()
}

// Focus sets the component as focused.
func (b *URLBar) Focus() {
	b.input.Focus()
}

// Blur removes focus.
func (b *URLBar) Blur() {
	b.input.Blur()
}

// SetSize sets the width. The bar is always three lines tall.
func (b *URLBar) SetSize(width, _ int) {
	b.width = width
	// Border, padding and the method badge.
	b.input.Width = max(width-lipgloss.Width(b.method.String())-6, 1)
}

// Width returns the width.
func (b *URLBar) Width() int {
	return b.width
}

// Height returns the height.
func (b *URLBar) Height() int {
	return 3
}

// URL returns the entered URL.
func (b *URLBar) URL() string {
	return b.input.Value()
}

// SetURL replaces the entered URL.
func (b *URLBar) SetURL(url string) {
	b.input.SetValue(url)
}

// Method returns the selected method.
func (b *URLBar) Method() core.Method {
	return b.method
}

// SetMethod selects a method.
func (b *URLBar) SetMethod(m core.Method) {
	b.method = m
	b.SetSize(b.width, 3)
}

// CycleMethod selects the next method.
func (b *URLBar) CycleMethod() {
	b.SetMethod(b.method.Next())
}
