package runner

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/nertsforbots/internal/deck"
	"github.com/lox/nertsforbots/internal/nerts"
	"github.com/lox/nertsforbots/internal/randutil"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

// nearWonState returns a game alice wins with a single bot action
func nearWonState() *nerts.State {
	s := &nerts.State{
		GameID:      "test",
		Order:       []nerts.PlayerID{"alice", "bob"},
		Players:     make(map[nerts.PlayerID]*nerts.PlayerState),
		Foundations: make([]nerts.Foundation, nerts.FoundationsPerPlayer*2),
	}
	s.Players["alice"] = &nerts.PlayerState{ID: "alice"}
	s.Players["bob"] = &nerts.PlayerState{ID: "bob"}

	s.Players["alice"].Nerts = []nerts.TaggedCard{{
		Card: deck.NewCard(deck.Clubs, deck.Ace), ID: 0, Owner: "alice", FaceUp: true,
	}}
	s.Players["bob"].Stock = []nerts.TaggedCard{{
		Card: deck.NewCard(deck.Hearts, deck.Five), ID: 1, Owner: "bob",
	}}
	return s
}

type runResult struct {
	state   *nerts.State
	stalled bool
	err     error
}

func TestBotSeatWinsOnTick(t *testing.T) {
	mock := quartz.NewMock(t)
	trap := mock.Trap().NewTicker("seat")
	defer trap.Close()

	r := New(nearWonState(), Config{
		Seats:  []Seat{{Player: "alice"}},
		Clock:  mock,
		Logger: testLogger(),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	done := make(chan runResult, 1)
	go func() {
		state, stalled, err := r.Run(ctx)
		done <- runResult{state, stalled, err}
	}()

	// Wait for the seat to install its ticker, then fire exactly one tick:
	// the crafted game is won in a single bot action
	trap.MustWait(ctx).MustRelease(ctx)
	mock.Advance(DefaultTickInterval).MustWait(ctx)

	result := <-done
	require.NoError(t, result.err)
	assert.False(t, result.stalled)
	assert.True(t, result.state.Finished)
	assert.Equal(t, nerts.PlayerID("alice"), result.state.Winner)
}

func TestSubmitSerializesConcurrentActors(t *testing.T) {
	state := nerts.MustNewGame("g1", []nerts.PlayerID{"alice", "bob"}, randutil.New(42))

	r := New(state, Config{
		StallRounds: 10,
		Logger:      testLogger(),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	done := make(chan runResult, 1)
	go func() {
		final, stalled, err := r.Run(ctx)
		done <- runResult{final, stalled, err}
	}()

	// Hammer the apply loop from several goroutines at once; only draws are
	// submitted, so the stall detector ends the game
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		player := nerts.PlayerID("alice")
		if i%2 == 1 {
			player = "bob"
		}
		wg.Add(1)
		go func(p nerts.PlayerID) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if err := r.Submit(ctx, nerts.Action{Player: p, Kind: nerts.StockDraw}); err != nil {
					return
				}
			}
		}(player)
	}

	result := <-done
	cancel()
	wg.Wait()

	require.NoError(t, result.err)
	assert.True(t, result.stalled)
	assert.False(t, result.state.Finished)
	assert.Equal(t, 104, result.state.TotalCards(), "serialized applies preserve conservation")
}

type collectingSubscriber struct {
	mu     sync.Mutex
	events []nerts.GameEvent
}

func (c *collectingSubscriber) OnEvent(e nerts.GameEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
}

func (c *collectingSubscriber) types() []nerts.EventType {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]nerts.EventType, len(c.events))
	for i, e := range c.events {
		out[i] = e.EventType()
	}
	return out
}

func TestRunnerPublishesLifecycleEvents(t *testing.T) {
	mock := quartz.NewMock(t)
	trap := mock.Trap().NewTicker("seat")
	defer trap.Close()

	sub := &collectingSubscriber{}
	bus := nerts.NewEventBus()
	bus.Subscribe(sub)

	r := New(nearWonState(), Config{
		Seats:  []Seat{{Player: "alice"}},
		Clock:  mock,
		Logger: testLogger(),
		Bus:    bus,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	done := make(chan runResult, 1)
	go func() {
		state, stalled, err := r.Run(ctx)
		done <- runResult{state, stalled, err}
	}()

	trap.MustWait(ctx).MustRelease(ctx)
	mock.Advance(DefaultTickInterval).MustWait(ctx)

	result := <-done
	require.NoError(t, result.err)

	types := sub.types()
	require.NotEmpty(t, types)
	assert.Equal(t, nerts.EventTypeGameStart, types[0])
	assert.Contains(t, types, nerts.EventTypeActionApplied)
	assert.Equal(t, nerts.EventTypeGameEnd, types[len(types)-1])
}
