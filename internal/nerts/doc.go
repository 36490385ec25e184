// Package nerts implements the core game logic for Nerts, the multiplayer
// patience race. Every player works a private layout (nerts pile, four
// tableau columns, stock and waste) while competing for a shared pool of
// foundation piles; the first player to empty their nerts pile wins.
//
// The main type is State, an immutable snapshot of an entire game. All
// transitions flow through the reducer:
//
//	s := nerts.MustNewGame("g1", []nerts.PlayerID{"alice", "bob"}, rng)
//	s2 := nerts.Apply(s, nerts.Action{Player: "alice", Kind: nerts.StockDraw})
//
// Apply is a total function: an action whose precondition is unmet returns
// the original state pointer unchanged. Illegal actions are deliberately not
// errors so that callers (bots in particular) can probe legality cheaply,
// either through Apply or directly via Legal.
//
// # Deterministic Testing
//
// Game construction takes a *rand.Rand, so a fixed seed reproduces the same
// deal:
//
//	rng := randutil.New(42)
//	s, err := nerts.NewGame("g1", players, rng)
//
// # Concurrency
//
// The reducer performs no internal synchronization. Multiple actors must
// serialize their actions through a single apply point (see the runner
// package); snapshots returned by Apply are never mutated afterwards and are
// safe to share read-only.
package nerts
