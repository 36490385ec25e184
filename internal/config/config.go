// Package config loads simulation and game configuration from HCL files.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete configuration for a run
type Config struct {
	Game       *GameSettings       `hcl:"game,block"`
	Bots       []BotConfig         `hcl:"bot,block"`
	Simulation *SimulationSettings `hcl:"simulation,block"`
}

// GameSettings contains game-level configuration
type GameSettings struct {
	Players []string `hcl:"players,optional"`
}

// BotConfig tunes one autonomous seat. A bot block whose name is not in the
// player list is an error; players without a bot block get defaults.
type BotConfig struct {
	Name       string  `hcl:"name,label"`
	SkipChance float64 `hcl:"skip_chance,optional"`
	TickMs     int     `hcl:"tick_ms,optional"`
}

// SimulationSettings contains simulation-level configuration
type SimulationSettings struct {
	Games    int    `hcl:"games,optional"`
	Seed     int64  `hcl:"seed,optional"`
	MaxSteps int    `hcl:"max_steps,optional"`
	Monitor  string `hcl:"monitor,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Game: &GameSettings{
			Players: []string{"bot-1", "bot-2"},
		},
		Simulation: &SimulationSettings{
			Games:    100,
			Seed:     1,
			MaxSteps: 5000,
			Monitor:  "dots",
			LogLevel: "info",
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults unchanged.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	applyDefaults(&config)
	return &config, nil
}

func applyDefaults(c *Config) {
	defaults := Default()

	if c.Game == nil {
		c.Game = defaults.Game
	} else if len(c.Game.Players) == 0 {
		c.Game.Players = defaults.Game.Players
	}

	if c.Simulation == nil {
		c.Simulation = defaults.Simulation
		return
	}
	if c.Simulation.Games == 0 {
		c.Simulation.Games = defaults.Simulation.Games
	}
	if c.Simulation.Seed == 0 {
		c.Simulation.Seed = defaults.Simulation.Seed
	}
	if c.Simulation.MaxSteps == 0 {
		c.Simulation.MaxSteps = defaults.Simulation.MaxSteps
	}
	if c.Simulation.Monitor == "" {
		c.Simulation.Monitor = defaults.Simulation.Monitor
	}
	if c.Simulation.LogLevel == "" {
		c.Simulation.LogLevel = defaults.Simulation.LogLevel
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if len(c.Game.Players) == 0 {
		return fmt.Errorf("at least one player must be configured")
	}

	seen := make(map[string]bool)
	for _, p := range c.Game.Players {
		if p == "" {
			return fmt.Errorf("player names must not be empty")
		}
		if seen[p] {
			return fmt.Errorf("duplicate player %q", p)
		}
		seen[p] = true
	}

	for _, b := range c.Bots {
		if !seen[b.Name] {
			return fmt.Errorf("bot %q: not in the player list", b.Name)
		}
		if b.SkipChance < 0 || b.SkipChance >= 1 {
			return fmt.Errorf("bot %q: skip_chance must be in [0,1)", b.Name)
		}
		if b.TickMs < 0 {
			return fmt.Errorf("bot %q: tick_ms must not be negative", b.Name)
		}
	}

	if c.Simulation.Games < 1 {
		return fmt.Errorf("games must be at least 1")
	}
	if c.Simulation.MaxSteps < 1 {
		return fmt.Errorf("max_steps must be at least 1")
	}

	validMonitors := map[string]bool{
		"dots":   true,
		"pretty": true,
		"none":   true,
	}
	if !validMonitors[c.Simulation.Monitor] {
		return fmt.Errorf("invalid monitor %q", c.Simulation.Monitor)
	}

	return nil
}

// BotFor returns the bot configuration for a player, or defaults
func (c *Config) BotFor(name string) BotConfig {
	for _, b := range c.Bots {
		if b.Name == name {
			return b
		}
	}
	return BotConfig{Name: name}
}
