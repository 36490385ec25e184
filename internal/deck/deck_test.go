package deck

import (
	"testing"

	"github.com/lox/nertsforbots/internal/randutil"
)

func TestNewDeck(t *testing.T) {
	d := New()

	if d.Len() != 52 {
		t.Errorf("Expected 52 cards, got %d", d.Len())
	}

	seen := make(map[Card]bool)
	for _, c := range d.Cards() {
		if seen[c] {
			t.Errorf("Duplicate card %s in new deck", c)
		}
		seen[c] = true
	}
	if len(seen) != 52 {
		t.Errorf("Expected 52 distinct cards, got %d", len(seen))
	}
}

func TestNewDeckCanonicalOrder(t *testing.T) {
	d := New()
	cards := d.Cards()

	// Suit-major, rank-minor enumeration
	if cards[0] != NewCard(Spades, Ace) {
		t.Errorf("Expected A♠ first, got %s", cards[0])
	}
	if cards[12] != NewCard(Spades, King) {
		t.Errorf("Expected K♠ at index 12, got %s", cards[12])
	}
	if cards[13] != NewCard(Hearts, Ace) {
		t.Errorf("Expected A♥ at index 13, got %s", cards[13])
	}
	if cards[51] != NewCard(Clubs, King) {
		t.Errorf("Expected K♣ last, got %s", cards[51])
	}
}

func TestShuffledDoesNotMutate(t *testing.T) {
	d := New()
	before := d.Cards()

	shuffled := d.Shuffled(randutil.New(42))

	after := d.Cards()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("Shuffled mutated the input deck at index %d", i)
		}
	}

	if shuffled.Len() != 52 {
		t.Errorf("Expected 52 cards in shuffled deck, got %d", shuffled.Len())
	}

	seen := make(map[Card]bool)
	for _, c := range shuffled.Cards() {
		seen[c] = true
	}
	if len(seen) != 52 {
		t.Errorf("Shuffle lost cards: %d distinct", len(seen))
	}
}

func TestShuffledDeterministic(t *testing.T) {
	a := New().Shuffled(randutil.New(7)).Cards()
	b := New().Shuffled(randutil.New(7)).Cards()

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Same seed produced different permutations at index %d", i)
		}
	}
}

func TestDeal(t *testing.T) {
	d := New()
	top := d.Cards()[51]

	card, err := d.Deal()
	if err != nil {
		t.Fatalf("Deal failed on full deck: %v", err)
	}
	if card != top {
		t.Errorf("Expected top card %s, got %s", top, card)
	}
	if d.Len() != 51 {
		t.Errorf("Expected 51 cards after deal, got %d", d.Len())
	}
}

func TestDealEmptyDeck(t *testing.T) {
	d := New()
	for i := 0; i < 52; i++ {
		if _, err := d.Deal(); err != nil {
			t.Fatalf("Deal %d failed: %v", i, err)
		}
	}

	if !d.IsEmpty() {
		t.Error("Deck should be empty after 52 deals")
	}

	if _, err := d.Deal(); err != ErrEmptyDeck {
		t.Errorf("Expected ErrEmptyDeck, got %v", err)
	}
}

func TestRankValues(t *testing.T) {
	if Ace.Value() != 1 {
		t.Errorf("Ace should be 1, got %d", Ace.Value())
	}
	if King.Value() != 13 {
		t.Errorf("King should be 13, got %d", King.Value())
	}
	if Ten.String() != "T" {
		t.Errorf("Ten should render as T, got %s", Ten)
	}
}

func TestSuitColors(t *testing.T) {
	if !Hearts.IsRed() || !Diamonds.IsRed() {
		t.Error("Hearts and Diamonds should be red")
	}
	if Spades.IsRed() || Clubs.IsRed() {
		t.Error("Spades and Clubs should be black")
	}
}
