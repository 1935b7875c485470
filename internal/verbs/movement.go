package verbs

import (
	"greatunderground/internal/adverr"
	"greatunderground/internal/light"
	"greatunderground/internal/parser"
	"greatunderground/internal/scoring"
)

// handleGo moves the player through an exit, implementing the dark-room
// policy of spec.md §4.4: in an unlit room, the first dark move warns of
// the grue; a second consecutive dark move (without an intervening lit
// room) kills the player.
func handleGo(ctx *Context, cmd parser.Command) (Result, error) {
	dir := cmd.DirectObject
	if dir == "" {
		return Result{}, adverr.New(adverr.KindParse, "Go where?")
	}

	room := ctx.State.Room()
	exit := room.ExitByAlias(dir)
	if exit == nil {
		return Result{}, adverr.New(adverr.KindLogic, "You can't go that way.")
	}

	if exit.RequiresKey != "" {
		if !carries(ctx, exit.RequiresKey) {
			msg := exit.BlockedMessage
			if msg == "" {
				msg = "Something prevents you from going that way."
			}
			return Result{}, adverr.New(adverr.KindLogic, msg)
		}
	}
	if !exit.Usable(ctx.State) {
		msg := exit.BlockedMessage
		if msg == "" {
			msg = "Something prevents you from going that way."
		}
		return Result{}, adverr.New(adverr.KindLogic, msg)
	}

	destLit := light.IsLit(ctx.State, exit.Dest)

	if !light.CurrentRoomLit(ctx.State) {
		ctx.darkMoveStreak++
		if ctx.darkMoveStreak >= 2 {
			return killPlayer(ctx, "It is pitch black. You are eaten by a grue.\n\nOh, you're dead.")
		}
	}

	ctx.State.CurrentRoom = exit.Dest
	if exit.Dest == "CELLAR" {
		scoring.AwardAction(ctx.State, scoring.ActionEnterCellar, scoring.PointsEnterCellar)
	}

	if destLit {
		ctx.darkMoveStreak = 0
	}

	msg := exit.TravelMessage
	if ctx.darkMoveStreak == 1 {
		if msg != "" {
			msg += "\n\n"
		}
		msg += "It is pitch black. You are likely to be eaten by a grue."
	}

	return Result{Message: msg, Changed: true}, nil
}

func carries(ctx *Context, objID string) bool {
	for _, id := range ctx.State.Inventory() {
		if id == objID {
			return true
		}
	}
	return false
}
