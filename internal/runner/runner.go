// Package runner provides the serialization point the Nerts engine requires
// when multiple actors play concurrently. The reducer itself has no locking;
// the Runner owns the authoritative snapshot and funnels every action, from
// bot seats and external submitters alike, through a single apply loop.
package runner

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/nertsforbots/internal/bot"
	"github.com/lox/nertsforbots/internal/nerts"
	"github.com/lox/nertsforbots/internal/randutil"
)

// Defaults for bot seats and stall handling
const (
	DefaultTickInterval = 50 * time.Millisecond
	DefaultStallRounds  = 160
)

// Seat configures one autonomous player
type Seat struct {
	Player nerts.PlayerID

	// SkipChance is the probability [0,1) that a tick passes without the
	// seat acting, to stagger otherwise lock-step bots
	SkipChance float64

	// TickInterval overrides the runner-wide default for this seat
	TickInterval time.Duration
}

// Config holds configuration for a Runner
type Config struct {
	Seats        []Seat
	TickInterval time.Duration
	StallRounds  int
	Seed         int64
	Clock        quartz.Clock
	Logger       *log.Logger
	Bus          nerts.EventBus
}

// Runner drives a single game to completion. It applies actions strictly
// sequentially on one goroutine; bot seats and Submit callers only ever
// send proposals into that loop.
type Runner struct {
	config  Config
	policy  *bot.Policy
	logger  *log.Logger
	clock   quartz.Clock
	bus     nerts.EventBus
	actions chan nerts.Action

	mu      sync.Mutex
	state   *nerts.State
	applied int
	stalled bool
}

// New creates a runner for the given initial state
func New(state *nerts.State, config Config) *Runner {
	if config.TickInterval == 0 {
		config.TickInterval = DefaultTickInterval
	}
	if config.StallRounds == 0 {
		config.StallRounds = DefaultStallRounds
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Logger == nil {
		config.Logger = log.Default()
	}
	if config.Bus == nil {
		config.Bus = nerts.NewEventBus()
	}

	return &Runner{
		config:  config,
		policy:  bot.New(config.Logger),
		logger:  config.Logger.WithPrefix("runner"),
		clock:   config.Clock,
		bus:     config.Bus,
		actions: make(chan nerts.Action, 64),
		state:   state,
	}
}

// Bus returns the event bus the runner publishes to. Subscribe before Run.
func (r *Runner) Bus() nerts.EventBus {
	return r.bus
}

// Submit proposes an action from outside the bot seats (a human actor, a
// test). It blocks only while the apply loop's buffer is full.
func (r *Runner) Submit(ctx context.Context, a nerts.Action) error {
	select {
	case r.actions <- a:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run drives the game until a win, a stall, or context cancellation, and
// returns the final snapshot. The returned stalled flag reports whether the
// game ended without a winner.
func (r *Runner) Run(ctx context.Context) (*nerts.State, bool, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	group, ctx := errgroup.WithContext(ctx)

	for i, seat := range r.config.Seats {
		group.Go(r.seatLoop(ctx, seat, randutil.New(randutil.Derive(r.config.Seed, i))))
	}

	r.bus.Publish(nerts.NewGameStartEvent(r.state))
	group.Go(func() error {
		defer cancel() // stop the seats once the game is decided
		return r.applyLoop(ctx)
	})

	err := group.Wait()
	if err != nil && err != context.Canceled {
		return r.state, r.stalled, err
	}

	r.bus.Publish(nerts.NewGameEndEvent(r.state, r.stalled))
	return r.state, r.stalled, nil
}

// seatLoop ticks one bot seat, proposing a single cascade-selected action
// per tick
func (r *Runner) seatLoop(ctx context.Context, seat Seat, rng interface{ Float64() float64 }) func() error {
	interval := seat.TickInterval
	if interval == 0 {
		interval = r.config.TickInterval
	}

	return func() error {
		ticker := r.clock.NewTicker(interval, "seat", string(seat.Player))
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}

			if seat.SkipChance > 0 && rng.Float64() < seat.SkipChance {
				continue
			}

			action, ok := r.policy.ChooseAction(r.snapshot(), seat.Player)
			if !ok {
				continue
			}

			select {
			case r.actions <- action:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

// applyLoop is the single authority over the game state
func (r *Runner) applyLoop(ctx context.Context) error {
	sinceProgress := 0

	for {
		var action nerts.Action
		select {
		case <-ctx.Done():
			return ctx.Err()
		case action = <-r.actions:
		}

		next := nerts.Apply(r.state, action)
		if next == r.state {
			continue
		}

		r.setSnapshot(next)
		r.applied++
		r.bus.Publish(nerts.NewActionAppliedEvent(action, next))

		if next.Finished {
			r.logger.Info("game won",
				"game", next.GameID,
				"winner", next.Winner,
				"applied", r.applied)
			return nil
		}

		if action.Kind == nerts.StockDraw {
			sinceProgress++
		} else {
			sinceProgress = 0
		}
		if sinceProgress >= r.config.StallRounds*max(len(r.config.Seats), 1) {
			// Deterministic seats cycling their stocks with nothing else to
			// do will never make progress again
			r.stalled = true
			r.logger.Info("game stalled",
				"game", next.GameID,
				"applied", r.applied)
			return nil
		}
	}
}

// snapshot and setSnapshot guard the pointer handoff between the apply loop
// and the seat goroutines. Snapshots themselves are immutable; only the
// pointer needs publishing.
func (r *Runner) snapshot() *nerts.State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *Runner) setSnapshot(s *nerts.State) {
	r.mu.Lock()
	r.state = s
	r.mu.Unlock()
}
