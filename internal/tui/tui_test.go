package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/nertsforbots/internal/nerts"
	"github.com/lox/nertsforbots/internal/randutil"
)

func TestRenderStateShowsEveryPlayer(t *testing.T) {
	s := nerts.MustNewGame("g1", []nerts.PlayerID{"alice", "bob"}, randutil.New(42))

	out := RenderState(s)
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "bob")
	assert.Contains(t, out, "foundations")
	assert.Contains(t, out, "score=0")
}

func TestModelUpdatesOnStateMsg(t *testing.T) {
	s := nerts.MustNewGame("g1", []nerts.PlayerID{"alice"}, randutil.New(42))
	m := NewModel(s)

	next := nerts.Apply(s, nerts.Action{Player: "alice", Kind: nerts.StockDraw})
	require.NotSame(t, s, next)

	updated, _ := m.Update(StateMsg{State: next})
	model := updated.(Model)
	assert.Same(t, next, model.state)
	assert.Equal(t, 1, model.actions)
}

func TestModelShowsWinner(t *testing.T) {
	s := nerts.MustNewGame("g1", []nerts.PlayerID{"alice"}, randutil.New(42))
	m := NewModel(s)

	updated, _ := m.Update(EndMsg{Winner: "alice"})
	model := updated.(Model)

	view := model.View()
	assert.Contains(t, view, "alice wins!")
}

func TestModelShowsStall(t *testing.T) {
	s := nerts.MustNewGame("g1", []nerts.PlayerID{"alice"}, randutil.New(42))
	m := NewModel(s)

	updated, _ := m.Update(EndMsg{Stalled: true})
	view := updated.(Model).View()
	assert.Contains(t, view, "stalled")
}

func TestModelQuitKeys(t *testing.T) {
	s := nerts.MustNewGame("g1", []nerts.PlayerID{"alice"}, randutil.New(42))
	m := NewModel(s)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
