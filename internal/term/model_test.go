package term

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/hello-marquee/internal/marquee"
)

func TestRowShowsEveryLetter(t *testing.T) {
	seq := marquee.BuildSequence("A B")
	m := NewModel(seq)

	assert.Equal(t, "A   B", ansi.Strip(m.Row()))
}

func TestTaskMsgRunsInUpdate(t *testing.T) {
	seq := marquee.BuildSequence("AB")
	cycler := marquee.NewCycler(marquee.DefaultPalette())
	m := NewModel(seq)

	next, cmd := m.Update(taskMsg(func() { cycler.Tick(seq) }))
	assert.Nil(t, cmd)
	require.IsType(t, Model{}, next)

	c, ok := seq.At(0).Color()
	require.True(t, ok)
	assert.Equal(t, "red", c.Name)
	assert.Equal(t, 5, cycler.Start())
}

func TestWindowSizeMsg(t *testing.T) {
	m := NewModel(marquee.BuildSequence("HI"))

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	sized := next.(Model)
	assert.Equal(t, 80, sized.width)
	assert.Equal(t, 24, sized.height)

	lines := 0
	for _, r := range sized.View() {
		if r == '\n' {
			lines++
		}
	}
	assert.Equal(t, 23, lines)
	assert.Contains(t, ansi.Strip(sized.View()), "H I")
}

func TestQuitKeys(t *testing.T) {
	m := NewModel(marquee.BuildSequence("HI"))

	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
		{Type: tea.KeyRunes, Runes: []rune("q")},
	} {
		_, cmd := m.Update(key)
		require.NotNil(t, cmd, key.String())
		assert.Equal(t, tea.Quit(), cmd(), key.String())
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Nil(t, cmd)
}

func TestInitSetsTitle(t *testing.T) {
	m := NewModel(marquee.BuildSequence("HI"))
	assert.NotNil(t, m.Init())
}
