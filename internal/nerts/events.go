package nerts

import "time"

// EventType represents a game event type with type safety
type EventType string

// EventType constants for game domain events
const (
	EventTypeGameStart     EventType = "game_start"
	EventTypeActionApplied EventType = "action_applied"
	EventTypeGameEnd       EventType = "game_end"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents any event that occurs during a Nerts game
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// GameStartEvent is published when a game begins
type GameStartEvent struct {
	GameID    string
	Players   []PlayerID
	State     *State
	timestamp time.Time
}

func (e GameStartEvent) EventType() EventType { return EventTypeGameStart }
func (e GameStartEvent) Timestamp() time.Time { return e.timestamp }

// NewGameStartEvent creates a new game start event
func NewGameStartEvent(s *State) GameStartEvent {
	players := make([]PlayerID, len(s.Order))
	copy(players, s.Order)
	return GameStartEvent{
		GameID:    s.GameID,
		Players:   players,
		State:     s,
		timestamp: time.Now(),
	}
}

// ActionAppliedEvent is published after the reducer accepts an action.
// State is the snapshot after the move; snapshots are immutable and safe to
// hand to subscribers.
type ActionAppliedEvent struct {
	Action         Action
	State          *State
	ScoreAfter     int
	NertsRemaining int
	timestamp      time.Time
}

func (e ActionAppliedEvent) EventType() EventType { return EventTypeActionApplied }
func (e ActionAppliedEvent) Timestamp() time.Time { return e.timestamp }

// NewActionAppliedEvent creates a new action applied event
func NewActionAppliedEvent(a Action, after *State) ActionAppliedEvent {
	remaining := 0
	if ps, ok := after.Players[a.Player]; ok {
		remaining = len(ps.Nerts)
	}
	return ActionAppliedEvent{
		Action:         a,
		State:          after,
		ScoreAfter:     after.Score(a.Player),
		NertsRemaining: remaining,
		timestamp:      time.Now(),
	}
}

// GameEndEvent is published when a game stops, by win or by stall
type GameEndEvent struct {
	GameID    string
	Winner    PlayerID
	Stalled   bool
	Scores    map[PlayerID]int
	State     *State
	timestamp time.Time
}

func (e GameEndEvent) EventType() EventType { return EventTypeGameEnd }
func (e GameEndEvent) Timestamp() time.Time { return e.timestamp }

// NewGameEndEvent creates a new game end event
func NewGameEndEvent(s *State, stalled bool) GameEndEvent {
	scores := make(map[PlayerID]int, len(s.Order))
	for _, id := range s.Order {
		scores[id] = s.Score(id)
	}
	return GameEndEvent{
		GameID:    s.GameID,
		Winner:    s.Winner,
		Stalled:   stalled,
		Scores:    scores,
		State:     s,
		timestamp: time.Now(),
	}
}

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a basic in-memory event bus implementation. Publish
// delivers synchronously on the caller's goroutine; subscribers must not
// block.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{
		subscribers: make([]EventSubscriber, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
