package deck

import (
	"errors"
	rand "math/rand/v2"
)

// ErrEmptyDeck is returned when dealing from an exhausted deck. Hitting it
// outside of game setup indicates a broken invariant in the caller.
var ErrEmptyDeck = errors.New("deal from empty deck")

// Deck represents an ordered stack of playing cards. The top of the deck is
// the last element.
type Deck struct {
	cards []Card
}

// New creates a standard 52-card deck in canonical order: suit-major,
// rank-minor, no duplicates.
func New() *Deck {
	cards := make([]Card, 0, 52)
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Ace; rank <= King; rank++ {
			cards = append(cards, NewCard(suit, rank))
		}
	}
	return &Deck{cards: cards}
}

// Shuffled returns a new deck holding a uniform Fisher-Yates permutation of
// the receiver's cards. The receiver is never mutated.
func (d *Deck) Shuffled(rng *rand.Rand) *Deck {
	cards := make([]Card, len(d.cards))
	copy(cards, d.cards)
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
	return &Deck{cards: cards}
}

// Deal removes and returns the top card. Returns ErrEmptyDeck when the deck
// is exhausted.
func (d *Deck) Deal() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, nil
}

// Len returns the number of cards left in the deck
func (d *Deck) Len() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Cards returns a copy of the remaining cards, bottom first
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
