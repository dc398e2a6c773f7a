// Package views assembles components into full screens.
package views

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/artpar/auweb/internal/app"
	"github.com/artpar/auweb/internal/display"
	"github.com/artpar/auweb/internal/draft"
	"github.com/artpar/auweb/internal/highlight"
	"github.com/artpar/auweb/internal/mimetype"
	"github.com/artpar/auweb/internal/tui"
	"github.com/artpar/auweb/internal/tui/components"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Panel indexes in focus order.
const (
	PaneURL = iota
	PaneHeaders
	PaneBody
	PaneResponse
	PaneResponseHeaders
)

// highlightChoices is the ctrl+o cycle: automatic, then each kind.
var highlightChoices = append([]string{""}, kindNames()...)

func kindNames() []string {
	names := make([]string, len(mimetype.Kinds))
	for i, k := range mimetype.Kinds {
		names[i] = k.String()
	}
	return names
}

type draftLoadedMsg struct {
	draft *draft.Draft
}

// Options configures a MainView.
type Options struct {
	App         *app.App
	Store       draft.Store
	Highlighter *highlight.Highlighter
	// Initial fills the editors when the store holds no draft.
	Initial draft.Draft
	// Copy writes to the clipboard. Defaults to the system clipboard.
	Copy func(string) error
}

// MainView is the single-screen request editor and response viewer.
type MainView struct {
	app   *app.App
	store draft.Store
	copy  func(string) error

	display *display.Context
	result  *app.Result
	// highlight is the current override; "" means automatic.
	highlight string

	url             *components.URLBar
	headers         *components.Editor
	body            *components.Editor
	response        *components.Viewer
	responseHeaders *components.Viewer
	panes           *tui.ComponentList

	spinner   spinner.Model
	sending   bool
	status    string
	statusErr bool

	width  int
	height int
}

// NewMainView creates the main view.
func NewMainView(opts Options) *MainView {
	m := &MainView{
		app:             opts.App,
		store:           opts.Store,
		copy:            opts.Copy,
		display:         display.NewContext(opts.Highlighter),
		url:             components.NewURLBar(),
		headers:         components.NewEditor("Headers", "Content-Type: application/json"),
		body:            components.NewEditor("Body", "key=value"),
		response:        components.NewViewer("Response"),
		responseHeaders: components.NewViewer("Response Headers"),
		spinner:         spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	if m.copy == nil {
		m.copy = clipboard.WriteAll
	}

	m.panes = tui.NewComponentList(m.url, m.headers, m.body, m.response, m.responseHeaders)
	m.panes.FocusFirst()
	m.applyDraft(&opts.Initial)

	return m
}

// Init starts the cursor and loads the saved draft.
func (m *MainView) Init() tea.Cmd {
	return tea.Batch(m.url.Init(), m.loadDraft())
}

// Update handles messages.
func (m *MainView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case draftLoadedMsg:
		m.applyDraft(msg.draft)
		return m, nil

	case tui.ResultMsg:
		m.sending = false
		m.showResult(msg.Result)
		if msg.DraftErr != nil {
			m.setStatus(joinStatus(m.status, fmt.Sprintf("Failed to save draft: %v", msg.DraftErr)), true)
		}
		return m, nil

	case tui.ErrorMsg:
		m.sending = false
		m.setStatus(joinStatus(append(app.Warnings(msg.Err), msg.Err.Error())...), true)
		return m, nil

	case tui.StatusMsg:
		m.setStatus(msg.Text, msg.IsError)
		return m, nil

	case spinner.TickMsg:
		if !m.sending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m.updateFocused(msg)
}

func (m *MainView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "ctrl+q":
		return m, tea.Quit
	case "tab":
		m.panes.FocusNext()
		return m, nil
	case "shift+tab":
		m.panes.FocusPrev()
		return m, nil
	case "ctrl+r", "ctrl+s":
		return m, m.send()
	case "ctrl+t":
		m.url.CycleMethod()
		return m, nil
	case "ctrl+o":
		m.cycleHighlight()
		return m, nil
	case "ctrl+y":
		return m, m.copyBody()
	}
	return m.updateFocused(msg)
}

func (m *MainView) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	focused := m.panes.Focused()
	if focused == nil {
		return m, nil
	}
	_, cmd := focused.Update(msg)
	return m, cmd
}

// Draft returns the request as currently edited.
func (m *MainView) Draft() draft.Draft {
	return draft.Draft{
		URL:       m.url.URL(),
		Method:    m.url.Method(),
		Headers:   m.headers.Text(),
		Body:      m.body.Text(),
		Highlight: m.highlight,
	}
}

func (m *MainView) applyDraft(d *draft.Draft) {
	if d == nil {
		return
	}
	m.url.SetURL(d.URL)
	if d.Method != "" {
		m.url.SetMethod(d.Method)
	}
	m.headers.SetText(d.Headers)
	m.body.SetText(d.Body)
	m.highlight = d.Highlight
}

func (m *MainView) loadDraft() tea.Cmd {
	if m.store == nil {
		return nil
	}
	store := m.store
	return func() tea.Msg {
		d, err := store.Load(context.Background())
		if errors.Is(err, draft.ErrNotFound) {
			return nil
		}
		if err != nil {
			return tui.StatusMsg{Text: fmt.Sprintf("Failed to load draft: %v", err), IsError: true}
		}
		return draftLoadedMsg{draft: d}
	}
}

// send saves the draft and runs the exchange off the UI goroutine.
func (m *MainView) send() tea.Cmd {
	if m.sending {
		return nil
	}
	m.sending = true
	m.setStatus("Sending...", false)

	d := m.Draft()
	a, store := m.app, m.store
	exchange := func() tea.Msg {
		ctx := context.Background()

		var draftErr error
		if store != nil {
			draftErr = store.Save(ctx, &d)
		}

		result, err := a.Exchange(ctx, d)
		if err != nil {
			return tui.ErrorMsg{Err: err}
		}
		return tui.ResultMsg{Result: result, DraftErr: draftErr}
	}

	return tea.Batch(m.spinner.Tick, exchange)
}

func (m *MainView) showResult(result *app.Result) {
	m.result = result
	m.render()

	if len(result.Warnings) > 0 {
		m.setStatus(joinStatus(result.Warnings...), true)
	} else {
		m.setStatus("", false)
	}
}

// joinStatus puts several messages on the one status line, skipping empty ones.
func joinStatus(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "; ")
}

// render redraws the response panes from the current result and override.
func (m *MainView) render() {
	if m.result == nil {
		return
	}
	if err := m.display.Render(m.response, m.responseHeaders, m.result); err != nil {
		m.setStatus(err.Error(), true)
	}
	m.response.SetStatus(m.statusLine())
}

func (m *MainView) statusLine() string {
	resp := m.result.Response
	parts := []string{
		tui.StatusStyle(resp.Status().Code()).Render(fmt.Sprintf("%d", resp.Status().Code())),
		fmt.Sprintf("%dms", resp.Timing().Total.Milliseconds()),
		tui.FormatSize(resp.Body().Size()),
		m.result.Kind.Upper(),
	}
	if m.result.Override {
		parts = append(parts, "hl:"+m.highlight)
	}
	return strings.Join(parts, "  ")
}

func (m *MainView) cycleHighlight() {
	next := 0
	for i, choice := range highlightChoices {
		if choice == m.highlight {
			next = (i + 1) % len(highlightChoices)
			break
		}
	}
	m.highlight = highlightChoices[next]

	if m.result == nil {
		return
	}
	result := m.app.Present(m.result.Response, m.highlight)
	result.Request = m.result.Request
	result.Warnings = m.result.Warnings
	m.result = result
	m.render()
}

func (m *MainView) copyBody() tea.Cmd {
	if m.result == nil {
		return nil
	}
	text, copyFn := m.result.Pretty, m.copy
	return func() tea.Msg {
		if err := copyFn(text); err != nil {
			return tui.StatusMsg{Text: fmt.Sprintf("Copy failed: %v", err), IsError: true}
		}
		return tui.StatusMsg{Text: "Response body copied"}
	}
}

func (m *MainView) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

// Status returns the status line text.
func (m *MainView) Status() string {
	return m.status
}

// Result returns the last exchange result, or nil.
func (m *MainView) Result() *app.Result {
	return m.result
}

// Highlight returns the highlight override; "" means automatic.
func (m *MainView) Highlight() string {
	return m.highlight
}

// FocusedPane returns the index of the focused pane.
func (m *MainView) FocusedPane() int {
	return m.panes.FocusIndex()
}

// layout splits the screen: URL bar on top, request editors on the left,
// response panes on the right, status line at the bottom.
func (m *MainView) layout() {
	m.url.SetSize(m.width, 3)

	remaining := max(m.height-3-1, 2)
	left := m.width / 2
	right := m.width - left

	m.headers.SetSize(left, remaining/2)
	m.body.SetSize(left, remaining-remaining/2)

	respHeight := remaining * 2 / 3
	m.response.SetSize(right, respHeight)
	m.responseHeaders.SetSize(right, remaining-respHeight)
}

// View renders the screen.
func (m *MainView) View() string {
	leftCol := lipgloss.JoinVertical(lipgloss.Left, m.headers.View(), m.body.View())
	rightCol := lipgloss.JoinVertical(lipgloss.Left, m.response.View(), m.responseHeaders.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		m.url.View(),
		lipgloss.JoinHorizontal(lipgloss.Top, leftCol, rightCol),
		m.renderStatusBar(),
	)
}

func (m *MainView) renderStatusBar() string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	text := m.status
	if m.sending {
		text = m.spinner.View() + " " + text
	}
	if m.statusErr {
		style = style.Foreground(lipgloss.Color("160"))
	}
	if text == "" {
		text = "ctrl+r send  ctrl+t method  ctrl+o highlight  ctrl+y copy  tab focus  ctrl+c quit"
	}
	return style.Width(m.width).Render(text)
}
