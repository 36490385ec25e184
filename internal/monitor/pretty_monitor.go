package monitor

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/nertsforbots/internal/nerts"
	"github.com/lox/nertsforbots/internal/statistics"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	winStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	stallStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

// PrettyMonitor implements GameMonitor with a styled line per game and a
// final standings block.
type PrettyMonitor struct {
	writer io.Writer
	color  bool
}

// NewPrettyMonitor creates a new pretty monitor. Styling is dropped when the
// terminal reports no color support.
func NewPrettyMonitor(writer io.Writer) *PrettyMonitor {
	if writer == nil {
		writer = os.Stdout
	}
	return &PrettyMonitor{
		writer: writer,
		color:  termenv.EnvColorProfile() != termenv.Ascii,
	}
}

// OnSimulationStart implements GameMonitor.
func (p *PrettyMonitor) OnSimulationStart(games int) {
	fmt.Fprintln(p.writer, p.render(headerStyle, fmt.Sprintf("=== Simulating %d games ===", games)))
}

// OnGameComplete implements GameMonitor.
func (p *PrettyMonitor) OnGameComplete(result statistics.GameResult) {
	outcome := p.render(winStyle, fmt.Sprintf("winner=%s", result.Winner))
	if result.Stalled {
		outcome = p.render(stallStyle, "stalled")
	}
	fmt.Fprintf(p.writer, "%s %s %s\n",
		p.render(dimStyle, result.GameID),
		outcome,
		p.render(dimStyle, fmt.Sprintf("steps=%d applied=%d", result.Steps, result.Applied)))
}

// OnSimulationComplete implements GameMonitor.
func (p *PrettyMonitor) OnSimulationComplete(stats *statistics.Statistics) {
	fmt.Fprintln(p.writer, p.render(headerStyle, "=== Results ==="))

	players := make([]nerts.PlayerID, 0, len(stats.TotalScore))
	for id := range stats.TotalScore {
		players = append(players, id)
	}
	sort.Slice(players, func(i, j int) bool {
		if stats.Wins[players[i]] != stats.Wins[players[j]] {
			return stats.Wins[players[i]] > stats.Wins[players[j]]
		}
		return players[i] < players[j]
	})

	for rank, id := range players {
		line := fmt.Sprintf("%d. %-12s wins=%-4d win_rate=%5.1f%% total_score=%d",
			rank+1, id, stats.Wins[id], stats.WinRate(id)*100, stats.TotalScore[id])
		if rank == 0 && stats.Wins[id] > 0 {
			line = p.render(winStyle, line)
		}
		fmt.Fprintln(p.writer, line)
	}

	fmt.Fprintf(p.writer, "games=%d stalls=%d avg_steps=%.1f\n",
		stats.Games, stats.Stalls, avgSteps(stats))
}

func (p *PrettyMonitor) render(style lipgloss.Style, s string) string {
	if !p.color {
		return s
	}
	return style.Render(s)
}

func avgSteps(stats *statistics.Statistics) float64 {
	if stats.Games == 0 {
		return 0
	}
	return float64(stats.TotalSteps) / float64(stats.Games)
}
