package main

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/nertsforbots/cmd/nertsforbots/shared"
	"github.com/lox/nertsforbots/internal/config"
	"github.com/lox/nertsforbots/internal/gameid"
	"github.com/lox/nertsforbots/internal/nerts"
	"github.com/lox/nertsforbots/internal/randutil"
	"github.com/lox/nertsforbots/internal/runner"
	"github.com/lox/nertsforbots/internal/tui"
)

// WatchCmd runs a single bot game and renders it live
type WatchCmd struct {
	Config string `kong:"default='nerts.hcl',help='Path to an HCL config file (missing file uses defaults)'"`
	Seed   *int64 `kong:"help='Deterministic RNG seed (optional)'"`
	TickMs int    `kong:"default='250',help='Bot tick interval in milliseconds'"`
	Debug  bool   `kong:"help='Enable debug logging (written to watch.log)'"`
}

func (c *WatchCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// The TUI owns the terminal, so logs go to a file or nowhere
	logger := shared.SetupLogger("fatal")
	if c.Debug {
		var err error
		logger, err = shared.SetupFileLogger("watch.log")
		if err != nil {
			return err
		}
	}

	var seed int64
	if c.Seed != nil {
		seed = *c.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	players := make([]nerts.PlayerID, len(cfg.Game.Players))
	for i, p := range cfg.Game.Players {
		players[i] = nerts.PlayerID(p)
	}

	state, err := nerts.NewGame(gameid.Generate(), players, randutil.New(seed))
	if err != nil {
		return err
	}

	seats := make([]runner.Seat, len(players))
	for i, p := range players {
		bc := cfg.BotFor(string(p))
		seat := runner.Seat{Player: p, SkipChance: bc.SkipChance}
		if bc.TickMs > 0 {
			seat.TickInterval = time.Duration(bc.TickMs) * time.Millisecond
		}
		seats[i] = seat
	}

	r := runner.New(state, runner.Config{
		Seats:        seats,
		TickInterval: time.Duration(c.TickMs) * time.Millisecond,
		Seed:         seed,
		Logger:       logger,
	})

	program := tea.NewProgram(tui.NewModel(state), tea.WithAltScreen())
	r.Bus().Subscribe(tui.NewBridge(program))

	ctx, cancel := context.WithCancel(shared.SetupSignalHandler())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		_, _, err := r.Run(ctx)
		errCh <- err
	}()

	if _, err := program.Run(); err != nil {
		return err
	}
	cancel()
	return <-errCh
}
