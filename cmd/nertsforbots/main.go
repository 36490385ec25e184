package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Simulate SimulateCmd      `cmd:"" help:"Run headless bot-vs-bot simulations"`
	Watch    WatchCmd         `cmd:"" help:"Watch a single bot game live in the terminal"`
	Deal     DealCmd          `cmd:"" help:"Deal a fresh game and print the layout"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("nertsforbots"),
		kong.Description("Multiplayer Nerts engine for bot-vs-bot play"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
