// Package tui is a terminal front end for the calculator.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fjl/giocalc/internal/calc"
	"github.com/fjl/giocalc/internal/session"
)

var (
	displayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7A5A5A")).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 1).
			Align(lipgloss.Right)
	errorStyle  = displayStyle.Foreground(lipgloss.Color("#FF7777"))
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#A05A5A")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#777777")).Italic(true)
)

const minDisplayWidth = 24

// Model is the bubbletea model of the calculator screen.
type Model struct {
	session *session.Session
	display calc.Display
	keys    keyMap
	help    help.Model
	width   int
	err     error
}

// NewModel creates a model driving s.
func NewModel(s *session.Session) Model {
	m := Model{
		session: s,
		keys:    newKeyMap(),
		help:    help.New(),
	}
	m.display, m.err = s.Display()
	return m
}

// Display returns what the calculator currently shows.
func (m Model) Display() calc.Display {
	return m.display
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		if b, ok := m.keys.button(msg); ok {
			m.display, m.err = m.session.Press(b)
			if m.err != nil {
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	sb := &strings.Builder{}
	sb.WriteString(titleStyle.Render("termcalc"))
	sb.WriteString("\n")

	width := minDisplayWidth
	if n := lipgloss.Width(m.display.Text) + 2; n > width {
		width = n
	}
	if m.width > 0 && width > m.width-2 {
		width = m.width - 2
	}
	style := displayStyle
	if m.display.HasError {
		style = errorStyle
	}
	sb.WriteString(style.Width(width).Render(m.display.Text))
	sb.WriteString("\n")

	if m.err != nil {
		sb.WriteString(statusStyle.Render(m.err.Error()))
		sb.WriteString("\n")
	}
	sb.WriteString(m.help.View(m.keys))
	sb.WriteString("\n")
	return sb.String()
}
