// Package monitor provides progress reporting for simulation runs.
package monitor

import "github.com/lox/nertsforbots/internal/statistics"

// GameMonitor receives notifications about simulation progress and outcomes.
type GameMonitor interface {
	// OnSimulationStart is called before the first game begins.
	OnSimulationStart(games int)

	// OnGameComplete is called after each game ends, by win or stall.
	OnGameComplete(result statistics.GameResult)

	// OnSimulationComplete is called once with the aggregated statistics.
	OnSimulationComplete(stats *statistics.Statistics)
}

// NullMonitor is a no-op implementation.
type NullMonitor struct{}

func (NullMonitor) OnSimulationStart(int)                       {}
func (NullMonitor) OnGameComplete(statistics.GameResult)        {}
func (NullMonitor) OnSimulationComplete(*statistics.Statistics) {}
