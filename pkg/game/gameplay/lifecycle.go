// Package gameplay provides the traversal engine that moves the player
// through the room graph.
package gameplay

import (
	"go.uber.org/zap"

	"escaperoom/pkg/engine/rng"
	"escaperoom/pkg/game/clues"
	"escaperoom/pkg/game/state"
	"escaperoom/pkg/game/world"
)

// BuildGame creates a new game: a fresh allocation state, a graph built from
// the default layout, and a score of StartScore. Seed 0 picks a clock seed.
func BuildGame(bank *clues.Bank, seed int64, log *zap.Logger) *state.Game {
	if log == nil {
		log = zap.NewNop()
	}
	src := rng.New(seed)
	return BuildGameWith(bank, src, src.Seed(), log)
}

// BuildGameWith builds a game from an explicit random source.
func BuildGameWith(bank *clues.Bank, src rng.Source, seed int64, log *zap.Logger) *state.Game {
	if log == nil {
		log = zap.NewNop()
	}
	alloc := clues.NewAllocator(bank, clues.NewAllocationState(), src, log)
	graph := world.NewBuilder(src, log).Build(alloc)

	g := state.NewGame(graph)
	g.Seed = seed
	log.Info("game built", zap.Int64("seed", seed), zap.Int("rooms", len(graph.Rooms())))
	return g
}
