// Package tui holds the building blocks shared by the terminal UI views.
package tui

import (
	"fmt"

	"github.com/artpar/auweb/internal/app"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Component is the interface for all TUI components.
type Component interface {
	// Init initializes the component.
	Init() tea.Cmd

	// Update handles messages and returns the updated component.
	Update(msg tea.Msg) (Component, tea.Cmd)

	// View renders the component.
	View() string

	// Title returns the component title.
	Title() string

	// Focused returns true if the component is focused.
	Focused() bool

	// Focus sets the component as focused.
	Focus()

	// Blur removes focus from the component.
	Blur()

	// SetSize sets the component dimensions, border included.
	SetSize(width, height int)

	// Width returns the component width.
	Width() int

	// Height returns the component height.
	Height() int
}

// Messages

// ResultMsg carries a finished exchange back to the UI goroutine.
type ResultMsg struct {
	Result *app.Result
	// DraftErr is set when the draft could not be saved before sending.
	DraftErr error
}

// ErrorMsg reports a failed exchange.
type ErrorMsg struct {
	Err error
}

// StatusMsg replaces the status line.
type StatusMsg struct {
	Text    string
	IsError bool
}

// ComponentList manages a list of components with focus cycling.
type ComponentList struct {
	components []Component
	focusIndex int
}

// NewComponentList creates a new component list.
func NewComponentList(components ...Component) *ComponentList {
	return &ComponentList{
		components: components,
		focusIndex: -1,
	}
}

func (cl *ComponentList) get(index int) Component {
	if index < 0 || index >= len(cl.components) {
		return nil
	}
	return cl.components[index]
}

// FocusFirst focuses the first component.
func (cl *ComponentList) FocusFirst() {
	if len(cl.components) == 0 {
		return
	}
	cl.setFocus(0)
}

// FocusNext cycles focus to the next component.
func (cl *ComponentList) FocusNext() {
	if len(cl.components) == 0 {
		return
	}
	cl.setFocus((cl.focusIndex + 1) % len(cl.components))
}

// FocusPrev cycles focus to the previous component.
func (cl *ComponentList) FocusPrev() {
	if len(cl.components) == 0 {
		return
	}
	prev := cl.focusIndex - 1
	if prev < 0 {
		prev = len(cl.components) - 1
	}
	cl.setFocus(prev)
}

// FocusIndex returns the current focus index.
func (cl *ComponentList) FocusIndex() int {
	return cl.focusIndex
}

// Focused returns the currently focused component.
func (cl *ComponentList) Focused() Component {
	return cl.get(cl.focusIndex)
}

func (cl *ComponentList) setFocus(index int) {
	if current := cl.Focused(); current != nil {
		current.Blur()
	}
	cl.focusIndex = index
	if next := cl.Focused(); next != nil {
		next.Focus()
	}
}

// Styles

var (
	focusedBorder   = lipgloss.Color("62")
	unfocusedBorder = lipgloss.Color("244")
)

// RenderTitle renders a panel title, highlighted when focused.
func RenderTitle(title string, focused bool) string {
	style := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	if focused {
		style = style.Foreground(lipgloss.Color("229")).Background(focusedBorder)
	} else {
		style = style.Foreground(lipgloss.Color("252")).Background(lipgloss.Color("238"))
	}
	return style.Render(title)
}

// RenderBorder wraps content in a rounded border sized to width x height,
// border included.
func RenderBorder(content string, width, height int, focused bool) string {
	style := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		Width(max(width-2, 0)).
		Height(max(height-2, 0))

	if focused {
		style = style.BorderForeground(focusedBorder)
	} else {
		style = style.BorderForeground(unfocusedBorder)
	}

	return style.Render(content)
}

// StatusStyle colours a status code badge by class.
func StatusStyle(code int) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true).Padding(0, 1)

	switch {
	case code >= 200 && code < 300:
		return style.Background(lipgloss.Color("34")).Foreground(lipgloss.Color("255"))
	case code >= 300 && code < 400:
		return style.Background(lipgloss.Color("214")).Foreground(lipgloss.Color("0"))
	case code >= 400 && code < 500:
		return style.Background(lipgloss.Color("208")).Foreground(lipgloss.Color("255"))
	case code >= 500:
		return style.Background(lipgloss.Color("160")).Foreground(lipgloss.Color("255"))
	default:
		return style.Background(lipgloss.Color("240"))
	}
}

// FormatSize renders a byte count for the status line.
func FormatSize(bytes int64) string {
	switch {
	case bytes < 1024:
		return fmt.Sprintf("%dB", bytes)
	case bytes < 1024*1024:
		return fmt.Sprintf("%.1fKB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%.1fMB", float64(bytes)/(1024*1024))
	}
}
