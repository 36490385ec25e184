package monitor

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/nertsforbots/internal/nerts"
	"github.com/lox/nertsforbots/internal/statistics"
)

func sampleStats() *statistics.Statistics {
	stats := statistics.New()
	stats.Add(statistics.GameResult{
		GameID: "g1", Winner: "alice", Steps: 40, Applied: 30,
		Scores: map[nerts.PlayerID]int{"alice": 22, "bob": 10},
	})
	stats.Add(statistics.GameResult{
		GameID: "g2", Stalled: true, Steps: 200, Applied: 120,
		Scores: map[nerts.PlayerID]int{"alice": 4, "bob": 6},
	})
	return stats
}

func TestDotsMonitor(t *testing.T) {
	var buf bytes.Buffer
	m := NewDotsMonitor(&buf)

	m.OnSimulationStart(2)
	m.OnGameComplete(statistics.GameResult{GameID: "g1", Winner: "alice"})
	m.OnGameComplete(statistics.GameResult{GameID: "g2", Stalled: true})
	m.OnSimulationComplete(sampleStats())

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "●"))
	assert.Contains(t, out, "Games: 2")
}

func TestPrettyMonitor(t *testing.T) {
	var buf bytes.Buffer
	m := NewPrettyMonitor(&buf)

	m.OnSimulationStart(2)
	m.OnGameComplete(statistics.GameResult{GameID: "g1", Winner: "alice", Steps: 40, Applied: 30})
	m.OnGameComplete(statistics.GameResult{GameID: "g2", Stalled: true, Steps: 200, Applied: 120})
	m.OnSimulationComplete(sampleStats())

	out := buf.String()
	assert.Contains(t, out, "Simulating 2 games")
	assert.Contains(t, out, "winner=alice")
	assert.Contains(t, out, "stalled")
	assert.Contains(t, out, "=== Results ===")
	assert.Contains(t, out, "alice")
}

func TestNullMonitorIsSilent(t *testing.T) {
	// Exercised for interface compliance; nothing observable
	var m GameMonitor = NullMonitor{}
	m.OnSimulationStart(1)
	m.OnGameComplete(statistics.GameResult{})
	m.OnSimulationComplete(statistics.New())
}
