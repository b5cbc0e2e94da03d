// Package term renders the message in the terminal with Bubble Tea.
//
// The Bubble Tea event loop is the UI goroutine here: Program.Send is the
// post-to-UI primitive, and every colour change happens inside Update.
package term

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/iburimskiy/hello-marquee/internal/config"
	"github.com/iburimskiy/hello-marquee/internal/logging"
	"github.com/iburimskiy/hello-marquee/internal/marquee"
)

// taskMsg carries posted work into Update.
type taskMsg func()

var (
	letterStyle = lipgloss.NewStyle().Bold(true).Align(lipgloss.Center)
	frameStyle  = lipgloss.NewStyle().Padding(config.TerminalPaddingY, config.TerminalPaddingX)
	gap         = strings.Repeat(" ", config.TerminalSpacing)
)

// Model is the Bubble Tea model for the message row.
type Model struct {
	seq    *marquee.Sequence
	width  int
	height int
}

// NewModel returns a model over seq.
func NewModel(seq *marquee.Sequence) Model {
	return Model{seq: seq}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(config.WindowTitle)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case taskMsg:
		msg()
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	row := frameStyle.Render(m.Row())
	if m.width == 0 || m.height == 0 {
		return row
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, row)
}

// Row renders the letters in their current colours, separated by the gap.
func (m Model) Row() string {
	parts := make([]string, 0, m.seq.Len())
	for i := 0; i < m.seq.Len(); i++ {
		u := m.seq.At(i)
		style := letterStyle
		if c, ok := u.Color(); ok && !u.IsSpace() {
			style = style.Foreground(lipgloss.Color(c.Hex()))
		}
		parts = append(parts, style.Render(u.Text))
	}
	return strings.Join(parts, gap)
}

// Renderer runs a Model in a Bubble Tea program.
type Renderer struct {
	program *tea.Program
	log     *zap.Logger
}

// NewRenderer builds the program. opts are passed to tea.NewProgram after
// the alt-screen option.
func NewRenderer(seq *marquee.Sequence, opts ...tea.ProgramOption) *Renderer {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	return &Renderer{
		program: tea.NewProgram(NewModel(seq), opts...),
		log:     logging.Named("terminal"),
	}
}

// Post sends fn to the program's event loop. Before the program starts Post
// blocks, and after it ends Post does nothing.
func (r *Renderer) Post(fn func()) {
	r.program.Send(taskMsg(fn))
}

// Run blocks until the user quits or ctx is done.
func (r *Renderer) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, r.program.Quit)
	defer stop()

	r.log.Info("Terminal renderer starting")
	if _, err := r.program.Run(); err != nil {
		return fmt.Errorf("run terminal: %w", err)
	}
	r.log.Info("Terminal renderer stopped")
	return nil
}
