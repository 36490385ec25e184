package nerts

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/nertsforbots/internal/deck"
)

// Layout constants for a single player's deal
const (
	TableauColumns       = 4
	NertsPileSize        = 13
	FoundationsPerPlayer = 4
	StockDrawCount       = 3
)

// PlayerID identifies a participant for the lifetime of a game
type PlayerID string

// CardID uniquely identifies a dealt card instance within a game. Suit and
// rank are not enough: every player plays from their own 52-card deck, so
// duplicate suit/rank values exist across players.
type CardID int

// TaggedCard is a card dealt into a game: a deck.Card plus its instance
// identity, the player whose deck it came from, and its facing. Owner never
// changes, even after the card reaches a shared foundation.
type TaggedCard struct {
	deck.Card
	ID     CardID
	Owner  PlayerID
	FaceUp bool
}

// PlayerState holds one participant's private piles. The top of every
// ordered pile is the last element.
type PlayerState struct {
	ID      PlayerID
	Nerts   []TaggedCard
	Tableau [TableauColumns][]TaggedCard
	Stock   []TaggedCard
	Waste   []TaggedCard
	Score   int
}

// Foundation is one shared foundation slot. Suit is nil until the opening
// Ace fixes it; after that it never changes and the pile builds strictly
// A through K in that suit.
type Foundation struct {
	Suit  *deck.Suit
	Cards []TaggedCard
}

// Top returns the topmost foundation card
func (f Foundation) Top() (TaggedCard, bool) {
	if len(f.Cards) == 0 {
		return TaggedCard{}, false
	}
	return f.Cards[len(f.Cards)-1], true
}

// State is an immutable snapshot of a Nerts game. It is only ever created by
// NewGame or derived by Apply; no caller mutates a snapshot in place.
type State struct {
	GameID      string
	Order       []PlayerID
	Players     map[PlayerID]*PlayerState
	Foundations []Foundation
	Finished    bool
	Winner      PlayerID
}

// NewGame deals a fresh game for the given players: per player a private
// shuffled 52-card deck split into 13 nerts cards (top face-up), one face-up
// seed per tableau column and 35 face-down stock cards, plus a shared pool
// of 4 foundation slots per player. Construction failures are loud; they
// indicate broken setup, never a playable condition.
func NewGame(gameID string, players []PlayerID, rng *rand.Rand) (*State, error) {
	if len(players) == 0 {
		return nil, fmt.Errorf("at least one player is required")
	}

	s := &State{
		GameID:      gameID,
		Order:       make([]PlayerID, 0, len(players)),
		Players:     make(map[PlayerID]*PlayerState, len(players)),
		Foundations: make([]Foundation, FoundationsPerPlayer*len(players)),
	}

	nextID := CardID(0)
	for _, id := range players {
		if id == "" {
			return nil, fmt.Errorf("empty player id")
		}
		if _, dup := s.Players[id]; dup {
			return nil, fmt.Errorf("duplicate player id %q", id)
		}

		ps, err := dealPlayer(id, rng, &nextID)
		if err != nil {
			return nil, fmt.Errorf("dealing for %s: %w", id, err)
		}

		s.Order = append(s.Order, id)
		s.Players[id] = ps
	}

	return s, nil
}

// MustNewGame is NewGame that panics on setup failure, for callers that
// control their inputs (tests, simulations).
func MustNewGame(gameID string, players []PlayerID, rng *rand.Rand) *State {
	s, err := NewGame(gameID, players, rng)
	if err != nil {
		panic(err)
	}
	return s
}

func dealPlayer(id PlayerID, rng *rand.Rand, nextID *CardID) (*PlayerState, error) {
	d := deck.New().Shuffled(rng)

	ps := &PlayerState{ID: id}

	deal := func(faceUp bool) (TaggedCard, error) {
		c, err := d.Deal()
		if err != nil {
			return TaggedCard{}, err
		}
		tc := TaggedCard{Card: c, ID: *nextID, Owner: id, FaceUp: faceUp}
		*nextID++
		return tc, nil
	}

	for i := 0; i < NertsPileSize; i++ {
		// Only the pile's current top is ever face-up
		tc, err := deal(i == NertsPileSize-1)
		if err != nil {
			return nil, fmt.Errorf("nerts pile: %w", err)
		}
		ps.Nerts = append(ps.Nerts, tc)
	}

	for col := 0; col < TableauColumns; col++ {
		tc, err := deal(true)
		if err != nil {
			return nil, fmt.Errorf("tableau seed %d: %w", col, err)
		}
		ps.Tableau[col] = append(ps.Tableau[col], tc)
	}

	for !d.IsEmpty() {
		tc, err := deal(false)
		if err != nil {
			return nil, fmt.Errorf("stock: %w", err)
		}
		ps.Stock = append(ps.Stock, tc)
	}

	return ps, nil
}

// Clone returns a deep copy of the state. The reducer clones before every
// accepted transition so prior snapshots stay intact.
func (s *State) Clone() *State {
	next := &State{
		GameID:      s.GameID,
		Order:       make([]PlayerID, len(s.Order)),
		Players:     make(map[PlayerID]*PlayerState, len(s.Players)),
		Foundations: make([]Foundation, len(s.Foundations)),
		Finished:    s.Finished,
		Winner:      s.Winner,
	}
	copy(next.Order, s.Order)

	for id, ps := range s.Players {
		next.Players[id] = ps.clone()
	}

	for i, f := range s.Foundations {
		nf := Foundation{Cards: cloneCards(f.Cards)}
		if f.Suit != nil {
			suit := *f.Suit
			nf.Suit = &suit
		}
		next.Foundations[i] = nf
	}

	return next
}

func (ps *PlayerState) clone() *PlayerState {
	next := &PlayerState{
		ID:    ps.ID,
		Nerts: cloneCards(ps.Nerts),
		Stock: cloneCards(ps.Stock),
		Waste: cloneCards(ps.Waste),
		Score: ps.Score,
	}
	for col := range ps.Tableau {
		next.Tableau[col] = cloneCards(ps.Tableau[col])
	}
	return next
}

func cloneCards(cards []TaggedCard) []TaggedCard {
	if cards == nil {
		return nil
	}
	out := make([]TaggedCard, len(cards))
	copy(out, cards)
	return out
}

// CardCounts is the per-container census for one player, a read-only
// projection for renderers and conservation checks.
type CardCounts struct {
	Nerts   int
	Tableau int
	Stock   int
	Waste   int
}

// Counts returns the container census for the given player
func (s *State) Counts(id PlayerID) (CardCounts, bool) {
	ps, ok := s.Players[id]
	if !ok {
		return CardCounts{}, false
	}
	counts := CardCounts{
		Nerts: len(ps.Nerts),
		Stock: len(ps.Stock),
		Waste: len(ps.Waste),
	}
	for _, col := range ps.Tableau {
		counts.Tableau += len(col)
	}
	return counts, true
}

// Score returns the given player's score, or 0 for unknown players
func (s *State) Score(id PlayerID) int {
	if ps, ok := s.Players[id]; ok {
		return ps.Score
	}
	return 0
}

// FoundationCount returns the total number of cards across all foundations
func (s *State) FoundationCount() int {
	total := 0
	for _, f := range s.Foundations {
		total += len(f.Cards)
	}
	return total
}

// TotalCards returns the card count across every container in the game.
// It equals 52 x number of players in every reachable state.
func (s *State) TotalCards() int {
	total := s.FoundationCount()
	for _, id := range s.Order {
		counts, _ := s.Counts(id)
		total += counts.Nerts + counts.Tableau + counts.Stock + counts.Waste
	}
	return total
}
