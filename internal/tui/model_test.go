package tui

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubeturn"
	"github.com/SeamusWaldron/cubeturn/internal/render"
)

func newTestModel() *Model {
	return New(cubeturn.NewTracker(), render.New(&bytes.Buffer{}), nil)
}

func press(m *Model, keys string) tea.Cmd {
	var cmd tea.Cmd
	for _, r := range keys {
		_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return cmd
}

func TestTurnKeys(t *testing.T) {
	m := newTestModel()

	press(m, "fR")

	assert.Equal(t, []cubeturn.Move{cubeturn.F, cubeturn.RPrime}, m.Tracker().Moves())
	want, err := cubeturn.New().Apply(cubeturn.F, cubeturn.RPrime)
	require.NoError(t, err)
	assert.Equal(t, want, m.Tracker().Cube())
}

func TestEveryTurnKeyIsBound(t *testing.T) {
	m := newTestModel()

	press(m, "frubldFRUBLD")

	assert.Len(t, m.Tracker().Moves(), 12)
	for _, mv := range m.Tracker().Moves() {
		assert.True(t, mv.Valid())
	}
}

func TestUndoAndReset(t *testing.T) {
	m := newTestModel()

	press(m, "fu")
	press(m, "z")
	assert.Equal(t, []cubeturn.Move{cubeturn.F}, m.Tracker().Moves())
	assert.Contains(t, m.View(), "undid U")

	press(m, "x")
	assert.Empty(t, m.Tracker().Moves())
	assert.True(t, m.Tracker().Cube().IsDefault())

	press(m, "z")
	assert.Contains(t, m.View(), "nothing to undo")
}

func TestFourTurnsShowSolved(t *testing.T) {
	m := newTestModel()

	press(m, "bbbb")

	assert.True(t, m.Tracker().IsSolved())
	assert.Contains(t, m.View(), "(solved)")
}

func TestQuit(t *testing.T) {
	m := newTestModel()

	cmd := press(m, "q")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Equal(t, "Bye.\n", m.View())
}

func TestViewListsMoves(t *testing.T) {
	m := newTestModel()

	press(m, "fRuB")

	view := m.View()
	assert.Contains(t, view, "Moves: 4")
	assert.Contains(t, view, "F R' U B'")
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel()
	short := m.View()

	press(m, "?")
	assert.True(t, m.help.ShowAll)
	assert.NotEqual(t, short, m.View())
}
