// Package statistics aggregates outcomes across simulated Nerts games.
package statistics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lox/nertsforbots/internal/nerts"
)

// GameResult captures the outcome of a single completed game
type GameResult struct {
	GameID   string
	Winner   nerts.PlayerID
	Stalled  bool
	Steps    int
	Applied  int
	Rejected int
	Scores   map[nerts.PlayerID]int
}

// Statistics accumulates results across games
type Statistics struct {
	Games      int
	Wins       map[nerts.PlayerID]int
	Stalls     int
	TotalSteps int
	Applied    int
	Rejected   int
	TotalScore map[nerts.PlayerID]int
}

// New creates an empty Statistics
func New() *Statistics {
	return &Statistics{
		Wins:       make(map[nerts.PlayerID]int),
		TotalScore: make(map[nerts.PlayerID]int),
	}
}

// Add records one game result
func (s *Statistics) Add(r GameResult) {
	s.Games++
	if r.Stalled {
		s.Stalls++
	} else if r.Winner != "" {
		s.Wins[r.Winner]++
	}
	s.TotalSteps += r.Steps
	s.Applied += r.Applied
	s.Rejected += r.Rejected
	for id, score := range r.Scores {
		s.TotalScore[id] += score
	}
}

// Validate checks internal consistency before results are reported
func (s *Statistics) Validate() error {
	wins := 0
	for _, w := range s.Wins {
		wins += w
	}
	if wins+s.Stalls != s.Games {
		return fmt.Errorf("wins (%d) + stalls (%d) != games (%d)", wins, s.Stalls, s.Games)
	}
	if s.Games > 0 && s.Applied == 0 {
		return fmt.Errorf("%d games completed without a single applied action", s.Games)
	}
	return nil
}

// WinRate returns the fraction of games won by the given player
func (s *Statistics) WinRate(id nerts.PlayerID) float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins[id]) / float64(s.Games)
}

// Summary renders a human-readable report
func (s *Statistics) Summary() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Games: %d  Stalls: %d (%.1f%%)\n", s.Games, s.Stalls, pct(s.Stalls, s.Games))
	if s.Games > 0 {
		fmt.Fprintf(&b, "Average steps per game: %.1f\n", float64(s.TotalSteps)/float64(s.Games))
	}
	fmt.Fprintf(&b, "Actions applied: %d  rejected: %d\n", s.Applied, s.Rejected)

	players := make([]nerts.PlayerID, 0, len(s.TotalScore))
	for id := range s.TotalScore {
		players = append(players, id)
	}
	sort.Slice(players, func(i, j int) bool {
		if s.Wins[players[i]] != s.Wins[players[j]] {
			return s.Wins[players[i]] > s.Wins[players[j]]
		}
		return players[i] < players[j]
	})

	for _, id := range players {
		fmt.Fprintf(&b, "  %-12s wins=%d (%.1f%%) total_score=%d\n",
			id, s.Wins[id], s.WinRate(id)*100, s.TotalScore[id])
	}

	return b.String()
}

func pct(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
