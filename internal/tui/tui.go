// Package tui implements the terminal watch mode: a live, read-only view of
// a running Nerts game fed by the runner's event bus.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/nertsforbots/internal/nerts"
)

// StateMsg delivers a fresh snapshot to the model
type StateMsg struct {
	State *nerts.State
}

// EndMsg signals that the game is over
type EndMsg struct {
	Winner  nerts.PlayerID
	Stalled bool
}

// Model is the Bubble Tea model for watching a game
type Model struct {
	state   *nerts.State
	spin    spinner.Model
	actions int
	done    bool
	stalled bool
	winner  nerts.PlayerID
	width   int
}

// NewModel creates a watch model seeded with the initial snapshot
func NewModel(initial *nerts.State) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return Model{
		state: initial,
		spin:  sp,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.spin.Tick
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case StateMsg:
		m.state = msg.State
		m.actions++

	case EndMsg:
		m.done = true
		m.stalled = msg.Stalled
		m.winner = msg.Winner

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(HeaderStyle.Render(fmt.Sprintf("nerts %s", m.state.GameID)))
	if !m.done {
		b.WriteString(" " + m.spin.View())
	}
	fmt.Fprintf(&b, " %s\n\n", DimStyle.Render(fmt.Sprintf("actions=%d", m.actions)))

	b.WriteString(RenderState(m.state))
	b.WriteString("\n")

	if m.done {
		if m.stalled {
			b.WriteString(StalledStyle.Render("game stalled, no winner"))
		} else {
			b.WriteString(WinnerStyle.Render(fmt.Sprintf("%s wins!", m.winner)))
		}
		b.WriteString("\n")
	}
	b.WriteString(DimStyle.Render("press q to quit"))
	b.WriteString("\n")

	return b.String()
}

// Bridge forwards engine events into a running Bubble Tea program. It
// implements nerts.EventSubscriber; subscribe it to the runner's bus before
// the game starts.
type Bridge struct {
	program *tea.Program
}

// NewBridge creates a bridge targeting the given program
func NewBridge(program *tea.Program) *Bridge {
	return &Bridge{program: program}
}

// OnEvent implements nerts.EventSubscriber
func (br *Bridge) OnEvent(event nerts.GameEvent) {
	switch e := event.(type) {
	case nerts.ActionAppliedEvent:
		br.program.Send(StateMsg{State: e.State})
	case nerts.GameEndEvent:
		br.program.Send(EndMsg{Winner: e.Winner, Stalled: e.Stalled})
	}
}
