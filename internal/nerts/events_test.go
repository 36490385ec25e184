package nerts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/nertsforbots/internal/randutil"
)

type recordingSubscriber struct {
	events []GameEvent
}

func (r *recordingSubscriber) OnEvent(e GameEvent) {
	r.events = append(r.events, e)
}

func TestEventBusPublish(t *testing.T) {
	bus := NewEventBus()
	sub := &recordingSubscriber{}
	bus.Subscribe(sub)

	s := MustNewGame("g1", []PlayerID{"alice"}, randutil.New(42))
	bus.Publish(NewGameStartEvent(s))

	next := Apply(s, Action{Player: "alice", Kind: StockDraw})
	bus.Publish(NewActionAppliedEvent(Action{Player: "alice", Kind: StockDraw}, next))
	bus.Publish(NewGameEndEvent(next, true))

	assert.Len(t, sub.events, 3)
	assert.Equal(t, EventTypeGameStart, sub.events[0].EventType())
	assert.Equal(t, EventTypeActionApplied, sub.events[1].EventType())
	assert.Equal(t, EventTypeGameEnd, sub.events[2].EventType())

	applied := sub.events[1].(ActionAppliedEvent)
	assert.Equal(t, 13, applied.NertsRemaining)

	end := sub.events[2].(GameEndEvent)
	assert.True(t, end.Stalled)
	assert.Contains(t, end.Scores, PlayerID("alice"))

	bus.Unsubscribe(sub)
	bus.Publish(NewGameEndEvent(next, false))
	assert.Len(t, sub.events, 3, "unsubscribed subscriber receives nothing")
}
