package nerts

// Score deltas for foundation plays. Emptying cards out of the nerts pile is
// worth double since that is the race.
const (
	foundationScore = 1
	nertsScore      = 2
)

// Apply is the single reducer entry point: it validates the action against
// the current snapshot and returns either a new snapshot with the move
// applied or the original snapshot untouched. Rejection is silent so that
// speculative attempts by bots and humans cost nothing.
func Apply(s *State, a Action) *State {
	if !Legal(s, a) {
		return s
	}

	next := s.Clone()
	ps := next.Players[a.Player]

	switch a.Kind {
	case StockDraw:
		applyStockDraw(ps)

	case WasteToTableau:
		card := popTop(&ps.Waste)
		ps.Tableau[a.ToColumn] = append(ps.Tableau[a.ToColumn], card)

	case WasteToFoundation:
		card := popTop(&ps.Waste)
		next.Foundations[a.Foundation].place(card)
		ps.Score += foundationScore

	case TableauToTableau:
		src := ps.Tableau[a.FromColumn]
		start, _ := runStart(src, a.Card)
		run := cloneCards(src[start:])
		ps.Tableau[a.FromColumn] = src[:start]
		ps.Tableau[a.ToColumn] = append(ps.Tableau[a.ToColumn], run...)
		flipTop(ps.Tableau[a.FromColumn])

	case TableauToFoundation:
		card := popTop(&ps.Tableau[a.FromColumn])
		next.Foundations[a.Foundation].place(card)
		ps.Score += foundationScore
		flipTop(ps.Tableau[a.FromColumn])

	case NertsToTableau:
		card := popTop(&ps.Nerts)
		ps.Tableau[a.ToColumn] = append(ps.Tableau[a.ToColumn], card)
		flipTop(ps.Nerts)

	case NertsToFoundation:
		card := popTop(&ps.Nerts)
		next.Foundations[a.Foundation].place(card)
		ps.Score += nertsScore
		flipTop(ps.Nerts)
	}

	// The win flips atomically with the transition that caused it
	if len(ps.Nerts) == 0 && !next.Finished {
		next.Finished = true
		next.Winner = a.Player
	}

	return next
}

// applyStockDraw turns up to StockDrawCount cards stock onto waste, or
// recycles the whole waste back into the stock face-down in reverse order
// when the stock is exhausted.
func applyStockDraw(ps *PlayerState) {
	if len(ps.Stock) > 0 {
		n := min(StockDrawCount, len(ps.Stock))
		for i := 0; i < n; i++ {
			card := popTop(&ps.Stock)
			card.FaceUp = true
			ps.Waste = append(ps.Waste, card)
		}
		return
	}

	for i := len(ps.Waste) - 1; i >= 0; i-- {
		card := ps.Waste[i]
		card.FaceUp = false
		ps.Stock = append(ps.Stock, card)
	}
	ps.Waste = ps.Waste[:0]
}

// place appends a card to the foundation, fixing the slot's suit on the
// opening Ace
func (f *Foundation) place(card TaggedCard) {
	if f.Suit == nil {
		suit := card.Suit
		f.Suit = &suit
	}
	card.FaceUp = true
	f.Cards = append(f.Cards, card)
}

func popTop(pile *[]TaggedCard) TaggedCard {
	card := (*pile)[len(*pile)-1]
	*pile = (*pile)[:len(*pile)-1]
	return card
}

// flipTop turns the pile's newly exposed top face-up, if any card remains
func flipTop(pile []TaggedCard) {
	if len(pile) > 0 {
		pile[len(pile)-1].FaceUp = true
	}
}
