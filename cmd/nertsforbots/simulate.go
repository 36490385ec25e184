package main

import (
	"fmt"
	"os"

	"github.com/lox/nertsforbots/cmd/nertsforbots/shared"
	"github.com/lox/nertsforbots/internal/config"
	"github.com/lox/nertsforbots/internal/monitor"
	"github.com/lox/nertsforbots/internal/nerts"
	"github.com/lox/nertsforbots/internal/simulator"
)

// SimulateCmd runs headless bot-vs-bot games and reports aggregate results
type SimulateCmd struct {
	Config  string   `kong:"default='nerts.hcl',help='Path to an HCL config file (missing file uses defaults)'"`
	Games   int      `kong:"help='Number of games to simulate (overrides config)'"`
	Players []string `kong:"help='Player names (overrides config)'"`
	Seed    int64    `kong:"help='Base RNG seed (overrides config)'"`
	Monitor string   `kong:"help='Progress output: dots, pretty or none (overrides config)'"`
	Debug   bool     `kong:"help='Enable debug logging'"`
}

func (c *SimulateCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if c.Games > 0 {
		cfg.Simulation.Games = c.Games
	}
	if len(c.Players) > 0 {
		cfg.Game.Players = c.Players
	}
	if c.Seed != 0 {
		cfg.Simulation.Seed = c.Seed
	}
	if c.Monitor != "" {
		cfg.Simulation.Monitor = c.Monitor
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level := cfg.Simulation.LogLevel
	if c.Debug {
		level = "debug"
	}
	logger := shared.SetupLogger(level)

	players := make([]nerts.PlayerID, len(cfg.Game.Players))
	for i, p := range cfg.Game.Players {
		players[i] = nerts.PlayerID(p)
	}

	logger.Info("Starting simulation",
		"games", cfg.Simulation.Games,
		"players", len(players),
		"seed", cfg.Simulation.Seed)

	sim := simulator.New(simulator.Config{
		Games:     cfg.Simulation.Games,
		Players:   players,
		Seed:      cfg.Simulation.Seed,
		MaxRounds: cfg.Simulation.MaxSteps,
		Logger:    logger,
		Monitor:   monitorFor(cfg.Simulation.Monitor),
	})

	_, err = sim.Run()
	return err
}

func monitorFor(name string) monitor.GameMonitor {
	switch name {
	case "pretty":
		return monitor.NewPrettyMonitor(os.Stdout)
	case "none":
		return monitor.NullMonitor{}
	default:
		return monitor.NewDotsMonitor(os.Stdout)
	}
}
