package verbs

import (
	"greatunderground/internal/adverr"
	"greatunderground/internal/scoring"
)

// killPlayer applies the uniform death handling spec.md §7 describes:
// subtract the death penalty (which also counts the death, per
// internal/scoring.ApplyDeathPenalty), and respawn the player at
// ctx.RespawnRoom with an empty dark-move streak. The cause is surfaced as
// a KindGameEnd adverr rather than a plain Result, so the engine loop
// handles every death the same way (it prints the cause and a status line).
func killPlayer(ctx *Context, cause string) (Result, error) {
	scoring.ApplyDeathPenalty(ctx.State)
	ctx.State.CurrentRoom = ctx.RespawnRoom
	ctx.darkMoveStreak = 0

	return Result{Changed: true}, adverr.New(adverr.KindGameEnd, cause)
}
