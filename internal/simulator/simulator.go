// Package simulator runs repeated bot-vs-bot Nerts games and aggregates
// their outcomes. Each game is synchronous and deterministic under its seed:
// seats act in a fixed rotation, one action attempt per seat per round, all
// applied through the single reducer.
package simulator

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/nertsforbots/internal/bot"
	"github.com/lox/nertsforbots/internal/gameid"
	"github.com/lox/nertsforbots/internal/monitor"
	"github.com/lox/nertsforbots/internal/nerts"
	"github.com/lox/nertsforbots/internal/randutil"
	"github.com/lox/nertsforbots/internal/statistics"
)

// Defaults for game termination. A full pass through a 35-card stock takes
// 12 draws plus one recycle; a player that completes several passes without
// any seat making a non-draw move is never going to make one, because
// recycling preserves waste order and the bots are deterministic.
const (
	DefaultMaxRounds   = 5000
	DefaultStallRounds = 40
)

// Config holds configuration for running simulations
type Config struct {
	Games       int
	Players     []nerts.PlayerID
	Seed        int64
	MaxRounds   int
	StallRounds int
	Logger      *log.Logger
	Monitor     monitor.GameMonitor
}

// Simulator runs Nerts game simulations
type Simulator struct {
	config Config
	policy *bot.Policy
	logger *log.Logger
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.MaxRounds == 0 {
		config.MaxRounds = DefaultMaxRounds
	}
	if config.StallRounds == 0 {
		config.StallRounds = DefaultStallRounds
	}
	if config.Logger == nil {
		config.Logger = log.Default()
	}
	if config.Monitor == nil {
		config.Monitor = monitor.NullMonitor{}
	}
	return &Simulator{
		config: config,
		policy: bot.New(config.Logger),
		logger: config.Logger.WithPrefix("sim"),
	}
}

// Run executes the configured number of games and returns the aggregated
// statistics
func (s *Simulator) Run() (*statistics.Statistics, error) {
	if len(s.config.Players) == 0 {
		return nil, fmt.Errorf("at least one player is required")
	}

	stats := statistics.New()
	s.config.Monitor.OnSimulationStart(s.config.Games)

	for game := 0; game < s.config.Games; game++ {
		seed := randutil.Derive(s.config.Seed, game)
		result, err := s.playGame(seed)
		if err != nil {
			return nil, fmt.Errorf("game %d: %w", game+1, err)
		}

		stats.Add(result)
		s.config.Monitor.OnGameComplete(result)
	}

	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.config.Monitor.OnSimulationComplete(stats)
	return stats, nil
}

// PlayGame runs a single game with an explicit seed and returns its result.
func (s *Simulator) PlayGame(seed int64) (statistics.GameResult, error) {
	return s.playGame(seed)
}

func (s *Simulator) playGame(seed int64) (statistics.GameResult, error) {
	id := gameid.Generate()
	state, err := nerts.NewGame(id, s.config.Players, randutil.New(seed))
	if err != nil {
		return statistics.GameResult{}, err
	}

	result := statistics.GameResult{GameID: id}
	lastProgress := 0

	for round := 0; round < s.config.MaxRounds; round++ {
		result.Steps = round + 1

		for _, player := range state.Order {
			action, ok := s.policy.ChooseAction(state, player)
			if !ok {
				continue
			}

			next := nerts.Apply(state, action)
			if next == state {
				result.Rejected++
				continue
			}

			state = next
			result.Applied++
			if action.Kind != nerts.StockDraw {
				lastProgress = round
			}
			if state.Finished {
				break
			}
		}

		if state.Finished {
			break
		}
		if round-lastProgress >= s.config.StallRounds {
			result.Stalled = true
			break
		}
	}

	if !state.Finished && !result.Stalled {
		// Round budget exhausted; treat as stalled so the result accounts
		// for every game
		result.Stalled = true
	}

	result.Winner = state.Winner
	result.Scores = make(map[nerts.PlayerID]int, len(state.Order))
	for _, player := range state.Order {
		result.Scores[player] = state.Score(player)
	}

	s.logger.Debug("game complete",
		"game", id,
		"winner", state.Winner,
		"stalled", result.Stalled,
		"rounds", result.Steps,
		"applied", result.Applied)

	return result, nil
}
