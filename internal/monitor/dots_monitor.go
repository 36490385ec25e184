package monitor

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/nertsforbots/internal/statistics"
)

var (
	dotWin   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Render("●")
	dotStall = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Render("●")
)

// DotsMonitor implements GameMonitor for minimal progress output: one dot
// per game, green for a win, yellow for a stall, wrapped at lineWidth.
type DotsMonitor struct {
	writer    io.Writer
	mu        sync.Mutex
	dotCount  int
	lineWidth int
}

// NewDotsMonitor creates a new dots monitor.
func NewDotsMonitor(writer io.Writer) *DotsMonitor {
	if writer == nil {
		writer = os.Stdout
	}
	return &DotsMonitor{
		writer:    writer,
		lineWidth: 80,
	}
}

// OnSimulationStart implements GameMonitor.
func (d *DotsMonitor) OnSimulationStart(games int) {}

// OnGameComplete implements GameMonitor.
func (d *DotsMonitor) OnGameComplete(result statistics.GameResult) {
	d.mu.Lock()
	defer d.mu.Unlock()

	dot := dotWin
	if result.Stalled {
		dot = dotStall
	}
	fmt.Fprint(d.writer, dot)

	d.dotCount++
	if d.dotCount%d.lineWidth == 0 {
		fmt.Fprintln(d.writer)
	}
}

// OnSimulationComplete implements GameMonitor.
func (d *DotsMonitor) OnSimulationComplete(stats *statistics.Statistics) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.dotCount%d.lineWidth != 0 {
		fmt.Fprintln(d.writer)
	}
	fmt.Fprint(d.writer, stats.Summary())
}
