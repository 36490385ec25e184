package main

import (
	"fmt"
	"time"

	"github.com/lox/nertsforbots/internal/gameid"
	"github.com/lox/nertsforbots/internal/nerts"
	"github.com/lox/nertsforbots/internal/randutil"
	"github.com/lox/nertsforbots/internal/tui"
)

// DealCmd deals a fresh game and prints the opening layout
type DealCmd struct {
	Players []string `kong:"default='bot-1,bot-2',help='Player names'"`
	Seed    *int64   `kong:"help='Deterministic RNG seed (optional)'"`
}

func (c *DealCmd) Run() error {
	var seed int64
	if c.Seed != nil {
		seed = *c.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	players := make([]nerts.PlayerID, len(c.Players))
	for i, p := range c.Players {
		players[i] = nerts.PlayerID(p)
	}

	state, err := nerts.NewGame(gameid.Generate(), players, randutil.New(seed))
	if err != nil {
		return err
	}

	fmt.Printf("game %s  seed %d\n\n", state.GameID, seed)
	fmt.Println(tui.RenderState(state))
	return nil
}
