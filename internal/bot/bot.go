// Package bot implements the autonomous player policy for Nerts. A bot
// plays under exactly the same rules as a human: it proposes actions and the
// reducer accepts or rejects them.
package bot

import (
	"github.com/charmbracelet/log"

	"github.com/lox/nertsforbots/internal/nerts"
)

// Policy selects moves with a fixed priority cascade. Each invocation is a
// fresh one-ply evaluation: no planning, no memory between calls. Callers
// decide how often a bot gets to act.
type Policy struct {
	logger *log.Logger
}

// New creates a new bot policy
func New(logger *log.Logger) *Policy {
	return &Policy{
		logger: logger.WithPrefix("bot"),
	}
}

// ChooseAction returns the first feasible action in the cascade for the
// given player, or false when the player has no legal move (or is unknown).
// The cascade, highest priority first:
//
//  1. Nerts pile to any foundation slot
//  2. Any tableau top to any foundation slot
//  3. Waste top to any foundation slot
//  4. Nerts pile to any tableau column
//  5. A tableau run to another column, only when the move exposes a
//     face-down card underneath
//  6. Waste top to any tableau column
//  7. Draw from stock
//
// Legality is probed through the shared validator, so the policy itself
// never mutates or even copies state.
func (p *Policy) ChooseAction(s *nerts.State, id nerts.PlayerID) (nerts.Action, bool) {
	ps, ok := s.Players[id]
	if !ok || s.Finished {
		return nerts.Action{}, false
	}

	for fi := range s.Foundations {
		a := nerts.Action{Player: id, Kind: nerts.NertsToFoundation, Foundation: fi}
		if nerts.Legal(s, a) {
			return a, true
		}
	}

	for col := 0; col < nerts.TableauColumns; col++ {
		for fi := range s.Foundations {
			a := nerts.Action{Player: id, Kind: nerts.TableauToFoundation, FromColumn: col, Foundation: fi}
			if nerts.Legal(s, a) {
				return a, true
			}
		}
	}

	for fi := range s.Foundations {
		a := nerts.Action{Player: id, Kind: nerts.WasteToFoundation, Foundation: fi}
		if nerts.Legal(s, a) {
			return a, true
		}
	}

	for col := 0; col < nerts.TableauColumns; col++ {
		a := nerts.Action{Player: id, Kind: nerts.NertsToTableau, ToColumn: col}
		if nerts.Legal(s, a) {
			return a, true
		}
	}

	if a, ok := p.revealingTableauMove(s, ps); ok {
		return a, true
	}

	for col := 0; col < nerts.TableauColumns; col++ {
		a := nerts.Action{Player: id, Kind: nerts.WasteToTableau, ToColumn: col}
		if nerts.Legal(s, a) {
			return a, true
		}
	}

	a := nerts.Action{Player: id, Kind: nerts.StockDraw}
	if nerts.Legal(s, a) {
		return a, true
	}

	return nerts.Action{}, false
}

// revealingTableauMove looks for a run move that exposes a face-down card.
// Moving the shallowest face-up card of a column that still covers a
// face-down card is the only candidate worth trying: any shallower run
// exposes a card that is already face-up, which is a wasted shuffle.
func (p *Policy) revealingTableauMove(s *nerts.State, ps *nerts.PlayerState) (nerts.Action, bool) {
	for from := 0; from < nerts.TableauColumns; from++ {
		column := ps.Tableau[from]

		head := -1
		for i, c := range column {
			if c.FaceUp {
				head = i
				break
			}
		}
		if head <= 0 {
			// Nothing face-down underneath; moving reveals nothing
			continue
		}

		for to := 0; to < nerts.TableauColumns; to++ {
			a := nerts.Action{
				Player:     ps.ID,
				Kind:       nerts.TableauToTableau,
				FromColumn: from,
				ToColumn:   to,
				Card:       column[head].ID,
			}
			if nerts.Legal(s, a) {
				return a, true
			}
		}
	}
	return nerts.Action{}, false
}

// Step chooses and applies a single action for the player, returning the
// resulting snapshot. Unknown players and moveless positions return the
// state unchanged.
func (p *Policy) Step(s *nerts.State, id nerts.PlayerID) *nerts.State {
	a, ok := p.ChooseAction(s, id)
	if !ok {
		return s
	}

	next := nerts.Apply(s, a)
	if next != s {
		p.logger.Debug("applied action",
			"game", s.GameID,
			"action", a.String(),
			"score", next.Score(id))
	}
	return next
}
