package verbs

import (
	"greatunderground/internal/adverr"
	"greatunderground/internal/parser"
)

// handleGive implements "GIVE X TO Y": the item must be held, Y must be a
// present actor, and the actor's own OnReceiveItem decides whether it's
// accepted (spec.md §4.5 — e.g. the thief takes treasure, the cyclops takes
// only its lunch, and water once thirsty).
func handleGive(ctx *Context, cmd parser.Command) (Result, error) {
	if cmd.DirectObject == "" {
		return Result{}, adverr.New(adverr.KindParse, "Give what?")
	}
	if cmd.IndirectObject == "" {
		return Result{}, adverr.New(adverr.KindParse, "Give it to whom?")
	}
	if !carries(ctx, cmd.DirectObject) {
		return Result{}, adverr.New(adverr.KindAction, "You aren't holding that.")
	}

	recipient := ctx.Actors.ByID(cmd.IndirectObject)
	if recipient == nil || recipient.State().Terminal() {
		return Result{}, adverr.New(adverr.KindReferent, "There's no one here to give that to.")
	}

	item := ctx.State.Object(cmd.DirectObject)
	if item == nil {
		return Result{}, adverr.New(adverr.KindReferent, "You don't see that here.")
	}

	if !recipient.OnReceiveItem(ctx.State, item.ID) {
		return Result{Message: recipientName(ctx, recipient) + " doesn't want that."}, nil
	}

	ctx.State.Move(item.ID, recipient.ID())
	return Result{Message: recipientName(ctx, recipient) + " takes the " + item.Name + ".", Changed: true}, nil
}

func recipientName(ctx *Context, b interface{ ID() string }) string {
	if obj := ctx.State.Objects[b.ID()]; obj != nil {
		return obj.Name
	}
	return "It"
}
