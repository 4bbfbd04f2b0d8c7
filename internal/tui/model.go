// Package tui provides a read-only terminal browser over rendered task views.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/procrastinot/internal/domain"
)

// chromeHeight is the number of rows used by the tab bar and help line.
const chromeHeight = 4

// View is one browsable tab. Lines are rendered before the program starts.
type View struct {
	Title string
	Lines []domain.Line
}

// Model is the task browser model.
// Fields are ordered to minimize memory padding.
type Model struct {
	views    []View
	keys     KeyMap
	styles   Styles
	help     help.Model
	viewport viewport.Model
	active   int
	ready    bool
}

// New creates a browser over the given views.
func New(views []View) *Model {
	return &Model{
		views:  views,
		keys:   DefaultKeyMap(),
		styles: DefaultStyles(),
		help:   help.New(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		height := max(msg.Height-chromeHeight, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.NextView):
			m.switchView(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevView):
			m.switchView(-1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) switchView(delta int) {
	if len(m.views) == 0 {
		return
	}
	m.active = (m.active + delta + len(m.views)) % len(m.views)
	m.refresh()
	m.viewport.GotoTop()
}

func (m *Model) refresh() {
	if m.ready {
		m.viewport.SetContent(m.content())
	}
}

// content renders the active view's lines.
func (m *Model) content() string {
	if len(m.views) == 0 || len(m.views[m.active].Lines) == 0 {
		return m.styles.Empty.Render("No tasks found.")
	}
	lines := m.views[m.active].Lines
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, m.renderLine(l))
	}
	return strings.Join(out, "\n")
}

func (m *Model) renderLine(l domain.Line) string {
	indent := strings.Repeat("  ", l.Depth)
	text := l.Task.Line()
	switch {
	case l.Task.Completed():
		return indent + m.styles.Done.Render(text)
	case l.Task.Priority() == domain.PriorityHigh:
		return indent + m.styles.High.Render(text)
	case l.Task.Priority() == domain.PriorityMedium:
		return indent + m.styles.Medium.Render(text)
	default:
		return indent + m.styles.Normal.Render(text)
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	parts := []string{m.styles.Title.Render("procrastinot ")}
	for i, v := range m.views {
		style := m.styles.Tab
		if i == m.active {
			style = m.styles.ActiveTab
		}
		parts = append(parts, style.Render(v.Title))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, parts...),
		"",
		m.viewport.View(),
		m.styles.Help.Render(m.help.View(m.keys)),
	)
}

// Run starts the browser in the alternate screen and blocks until it exits.
func Run(views []View) error {
	_, err := tea.NewProgram(New(views), tea.WithAltScreen()).Run()
	return err
}
