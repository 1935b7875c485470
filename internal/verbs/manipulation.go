package verbs

import (
	"greatunderground/internal/adverr"
	"greatunderground/internal/parser"
	"greatunderground/internal/world"
)

// handleTurn implements "TURN X ON/OFF" for a LIGHT-SOURCE, spec.md §4.4.
// With ON or no preposition it sets LIT (refusing if the source is burned
// out); any other preposition, OFF included, clears LIT.
func handleTurn(ctx *Context, cmd parser.Command) (Result, error) {
	if cmd.DirectObject == "" {
		return Result{}, adverr.New(adverr.KindParse, "Turn what?")
	}
	obj := ctx.State.Object(cmd.DirectObject)
	if obj == nil {
		return Result{}, adverr.New(adverr.KindReferent, "You don't see that here.")
	}
	if !obj.Flags.Has(world.LightSource) {
		return Result{}, adverr.Newf(adverr.KindLogic, "You can't turn the %s on or off.", obj.Name)
	}

	switch cmd.Preposition {
	case "", "ON":
		if obj.Flags.Has(world.BurnedOut) {
			return Result{}, adverr.Newf(adverr.KindLogic, "The %s is burned out.", obj.Name)
		}
		if obj.Flags.Has(world.Lit) {
			return Result{}, adverr.Newf(adverr.KindLogic, "The %s is already on.", obj.Name)
		}
		obj.Flags.Set(world.Lit)
		return Result{Message: "The " + obj.Name + " is now on.", Changed: true}, nil
	default:
		if !obj.Flags.Has(world.Lit) {
			return Result{}, adverr.Newf(adverr.KindLogic, "The %s is already off.", obj.Name)
		}
		obj.Flags.Clear(world.Lit)
		return Result{Message: "The " + obj.Name + " is now off.", Changed: true}, nil
	}
}

// handleMove/handlePush/handlePull are generic scripted-object hooks: by
// default, moving, pushing, or pulling scenery has no effect. World-
// specific puzzles (e.g. the living room rug) are wired through
// PropActionHandler and dispatchScriptedEffect's registry, consulted here
// before falling back to the default message.
func handleMove(ctx *Context, cmd parser.Command) (Result, error) {
	return scriptedManipulation(ctx, cmd, "move", "Moving the %s doesn't accomplish anything.")
}

func handlePush(ctx *Context, cmd parser.Command) (Result, error) {
	return scriptedManipulation(ctx, cmd, "push", "Pushing the %s doesn't accomplish anything.")
}

func handlePull(ctx *Context, cmd parser.Command) (Result, error) {
	return scriptedManipulation(ctx, cmd, "pull", "Pulling the %s doesn't accomplish anything.")
}

func handleWave(ctx *Context, cmd parser.Command) (Result, error) {
	return scriptedManipulation(ctx, cmd, "wave", "Nothing happens.")
}

func handleTie(ctx *Context, cmd parser.Command) (Result, error) {
	return scriptedManipulation(ctx, cmd, "tie", "You can't tie that to anything useful here.")
}

func handlePray(ctx *Context, cmd parser.Command) (Result, error) {
	return scriptedManipulation(ctx, cmd, "pray", "Nothing happens.")
}

// scriptedManipulation is the shared shape behind MOVE/PUSH/PULL/WAVE/TIE/
// PRAY: if the direct object's PropActionHandler names a registered effect
// for verb, that effect's result is returned; otherwise the generic
// flavor text in defaultMsg is used.
func scriptedManipulation(ctx *Context, cmd parser.Command, verb, defaultMsg string) (Result, error) {
	if cmd.DirectObject == "" {
		return Result{Message: defaultFor(defaultMsg, "")}, nil
	}
	obj := ctx.State.Object(cmd.DirectObject)
	if obj == nil {
		return Result{}, adverr.New(adverr.KindReferent, "You don't see that here.")
	}
	if res, err, ok := dispatchScriptedEffect(ctx, obj, verb); ok {
		return res, err
	}
	return Result{Message: defaultFor(defaultMsg, obj.Name)}, nil
}

func defaultFor(format, name string) string {
	if name == "" {
		return "Nothing happens."
	}
	out := format
	for i := 0; i+1 < len(out); i++ {
		if out[i] == '%' && out[i+1] == 's' {
			return out[:i] + name + out[i+2:]
		}
	}
	return out
}

// handleSay implements SAY: mostly flavor text, except inside the cyclops
// room where specific magic words trigger its scripted FLED transition
// (spec.md §4.5). The parser passes SAY's word through as free text in
// RawDirect, and this handler asks the actor manager for the cyclops.
func handleSay(ctx *Context, cmd parser.Command) (Result, error) {
	word := cmd.RawDirect
	if word == "" {
		return Result{}, adverr.New(adverr.KindParse, "Say what?")
	}

	if cyclops := ctx.Actors.ByID("CYCLOPS"); cyclops != nil {
		if c, ok := cyclops.(interface {
			SaySpellWord(st *world.State, word string) bool
		}); ok {
			if c.SaySpellWord(ctx.State, word) {
				return Result{Message: "The cyclops, hearing the magic word, flees in terror, smashing through the wall!", Changed: true}, nil
			}
		}
	}

	return Result{Message: "Okay, \"" + word + "\"."}, nil
}

// handleWait implements WAIT: a no-op turn, still ticking the clock.
func handleWait(ctx *Context, cmd parser.Command) (Result, error) {
	return Result{Message: "Time passes."}, nil
}
