// Package tui is an interactive terminal driver: each key press turns a
// face of the cube and the unfolded cube is redrawn.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/SeamusWaldron/cubeturn"
	"github.com/SeamusWaldron/cubeturn/internal/render"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// maxShownMoves is how many recent moves the view lists.
const maxShownMoves = 20

// Model is the bubbletea model of the interactive driver.
type Model struct {
	tracker  *cubeturn.Tracker
	renderer *render.Renderer
	keys     KeyMap
	help     help.Model
	logger   *log.Logger

	status   string
	err      error
	quitting bool
}

// New creates a model driving tracker. A nil logger discards log output.
func New(tracker *cubeturn.Tracker, renderer *render.Renderer, logger *log.Logger) *Model {
	return &Model{
		tracker:  tracker,
		renderer: renderer,
		keys:     DefaultKeyMap,
		help:     help.New(),
		logger:   logger,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Undo):
			if mv, ok := m.tracker.Undo(); ok {
				m.setStatus("undid %s", mv)
			} else {
				m.setStatus("nothing to undo")
			}

		case key.Matches(msg, m.keys.Reset):
			m.tracker.Reset()
			m.setStatus("reset")

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		default:
			for _, t := range m.keys.Turns {
				if key.Matches(msg, t.binding) {
					m.turn(t.move)
					break
				}
			}
		}
	}

	return m, nil
}

func (m *Model) turn(mv cubeturn.Move) {
	if err := m.tracker.Apply(mv); err != nil {
		m.err = err
		if m.logger != nil {
			m.logger.Error("turn failed", "move", mv.String(), "err", err)
		}
		return
	}
	m.err = nil
	m.setStatus("turned %s %s", mv.Face, strings.ToLower(mv.Direction.String()))
	if m.logger != nil {
		m.logger.Debug("turn", "move", mv.String(), "count", len(m.tracker.Moves()))
	}
}

func (m *Model) setStatus(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
}

func (m *Model) View() string {
	if m.quitting {
		return "Bye.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("cubeturn"))
	b.WriteString("\n\n")

	b.WriteString(m.renderer.Net(m.tracker.Cube()))
	b.WriteString("\n\n")

	moves := m.tracker.Moves()
	b.WriteString(fmt.Sprintf("Moves: %d", len(moves)))
	if m.tracker.IsSolved() {
		b.WriteString(statusStyle.Render("  (solved)"))
	}
	b.WriteString("\n")
	if len(moves) > 0 {
		start := 0
		if len(moves) > maxShownMoves {
			start = len(moves) - maxShownMoves
			b.WriteString("... ")
		}
		b.WriteString(moveStyle.Render(cubeturn.FormatMoves(moves[start:])))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

// Tracker returns the tracker the model drives.
func (m *Model) Tracker() *cubeturn.Tracker {
	return m.tracker
}
