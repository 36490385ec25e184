package nerts

import "github.com/lox/nertsforbots/internal/deck"

// canPlaceFoundation reports whether card may be appended to the slot: an
// empty slot accepts only an Ace, a started slot accepts only the next rank
// of its own suit.
func canPlaceFoundation(f Foundation, card deck.Card) bool {
	top, ok := f.Top()
	if !ok {
		return card.Rank == deck.Ace
	}
	return *f.Suit == card.Suit && card.Rank == top.Rank+1
}

// canPlaceTableau reports whether card may be appended to the column.
// Empty columns normally take Kings only; a card arriving from the nerts
// pile may open an empty column at any rank (the house relaxation that keeps
// the race from stalling on King droughts). Started columns always require
// alternating color, descending by exactly one.
func canPlaceTableau(column []TaggedCard, card deck.Card, fromNerts bool) bool {
	if len(column) == 0 {
		return fromNerts || card.Rank == deck.King
	}
	top := column[len(column)-1]
	return top.IsRed() != card.IsRed() && card.Rank == top.Rank-1
}

// runStart locates the run headed by cardID in the column and reports its
// index. A run is only movable when the named card and everything above it
// are face-up.
func runStart(column []TaggedCard, cardID CardID) (int, bool) {
	for i, c := range column {
		if c.ID != cardID {
			continue
		}
		for _, above := range column[i:] {
			if !above.FaceUp {
				return 0, false
			}
		}
		return i, true
	}
	return 0, false
}

// top returns the last card of a pile
func top(pile []TaggedCard) (TaggedCard, bool) {
	if len(pile) == 0 {
		return TaggedCard{}, false
	}
	return pile[len(pile)-1], true
}

// Legal reports whether applying the action would change the state. It is
// pure and total: unknown players, out-of-range indices and unmet
// preconditions are all simply false, never errors, so policies can probe
// hypothetical moves for free.
func Legal(s *State, a Action) bool {
	if s.Finished {
		return false
	}
	ps, ok := s.Players[a.Player]
	if !ok {
		return false
	}

	switch a.Kind {
	case StockDraw:
		return len(ps.Stock) > 0 || len(ps.Waste) > 0

	case WasteToTableau:
		card, ok := top(ps.Waste)
		if !ok || !columnInRange(a.ToColumn) {
			return false
		}
		return canPlaceTableau(ps.Tableau[a.ToColumn], card.Card, false)

	case WasteToFoundation:
		card, ok := top(ps.Waste)
		if !ok || !s.foundationInRange(a.Foundation) {
			return false
		}
		return canPlaceFoundation(s.Foundations[a.Foundation], card.Card)

	case TableauToTableau:
		if !columnInRange(a.FromColumn) || !columnInRange(a.ToColumn) || a.FromColumn == a.ToColumn {
			return false
		}
		src := ps.Tableau[a.FromColumn]
		start, ok := runStart(src, a.Card)
		if !ok {
			return false
		}
		return canPlaceTableau(ps.Tableau[a.ToColumn], src[start].Card, false)

	case TableauToFoundation:
		if !columnInRange(a.FromColumn) || !s.foundationInRange(a.Foundation) {
			return false
		}
		card, ok := top(ps.Tableau[a.FromColumn])
		if !ok || !card.FaceUp {
			return false
		}
		return canPlaceFoundation(s.Foundations[a.Foundation], card.Card)

	case NertsToTableau:
		card, ok := top(ps.Nerts)
		if !ok || !card.FaceUp || !columnInRange(a.ToColumn) {
			return false
		}
		return canPlaceTableau(ps.Tableau[a.ToColumn], card.Card, true)

	case NertsToFoundation:
		card, ok := top(ps.Nerts)
		if !ok || !card.FaceUp || !s.foundationInRange(a.Foundation) {
			return false
		}
		return canPlaceFoundation(s.Foundations[a.Foundation], card.Card)

	default:
		return false
	}
}

func columnInRange(col int) bool {
	return col >= 0 && col < TableauColumns
}

func (s *State) foundationInRange(i int) bool {
	return i >= 0 && i < len(s.Foundations)
}
