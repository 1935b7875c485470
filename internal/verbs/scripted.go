package verbs

import (
	"greatunderground/internal/scoring"
	"greatunderground/internal/world"
)

// scriptedEffect is one entry of the action-handler registry spec.md §4.4
// promises for the manipulation/open verbs ("each maps to a specific
// scripted effect"): a verb a handler responds to, plus the function that
// produces that effect.
type scriptedEffect struct {
	verb string
	fn   func(ctx *Context, obj *world.Object) (Result, error)
}

// scriptedEffects maps an object's PropActionHandler value to the concrete
// effect it names. World data tags an object with one of these keys
// (world.advi's MAILBOX/TRAP-DOOR/RUG/SCEPTRE/WINDOW objects); an object
// with no PropActionHandler, or one not registered here, gets the calling
// handler's generic flavor text instead.
var scriptedEffects = map[string]scriptedEffect{
	"open-mailbox":  {"open", openMailboxEffect},
	"open-trapdoor": {"open", openTrapdoorEffect},
	"open-window":   {"open", openWindowEffect},
	"move-rug":      {"move", moveRugEffect},
	"wave-sceptre":  {"wave", waveSceptreEffect},
}

// dispatchScriptedEffect looks up obj's PropActionHandler and runs it if
// it is registered for verb. ok is false if no scripted effect applies,
// in which case the caller falls back to its own default flavor text.
func dispatchScriptedEffect(ctx *Context, obj *world.Object, verb string) (res Result, err error, ok bool) {
	name, has := obj.Properties.Str(world.PropActionHandler)
	if !has {
		return Result{}, nil, false
	}
	effect, known := scriptedEffects[name]
	if !known || effect.verb != verb {
		return Result{}, nil, false
	}
	res, err = effect.fn(ctx, obj)
	return res, err, true
}

// openMailboxEffect names what opening the mailbox finds inside it,
// per spec.md's scenario S1.
func openMailboxEffect(ctx *Context, obj *world.Object) (Result, error) {
	return Result{Message: "Opening the small mailbox reveals a leaflet.", Changed: true}, nil
}

// openTrapdoorEffect names the staircase opening the trap door reveals,
// per scenario S3. The OPEN flag handleOpen already set is what
// wireKnownExits' exit Condition consults to unblock the Cellar exits.
func openTrapdoorEffect(ctx *Context, obj *world.Object) (Result, error) {
	return Result{Message: "The door reluctantly opens to reveal a rickety staircase descending into darkness.", Changed: true}, nil
}

// openWindowEffect names opening the Behind House window, per scenario S2.
func openWindowEffect(ctx *Context, obj *world.Object) (Result, error) {
	return Result{Message: "With great effort, you open the window far enough to allow entry.", Changed: true}, nil
}

// moveRugEffect names moving the living room rug aside, per scenario S3.
func moveRugEffect(ctx *Context, obj *world.Object) (Result, error) {
	return Result{Message: "With a great effort, the rug is moved to one side of the room, revealing the dusty cover of a closed trap door.", Changed: true}, nil
}

// endOfRainbowRoomID and potOfGoldID are the fixed ids the sceptre effect
// gates and reveals, per scenario S5 ("only at End-of-Rainbow solidifies
// the rainbow and reveals the pot of gold").
const (
	endOfRainbowRoomID = "END-OF-RAINBOW"
	potOfGoldID        = "POT-OF-GOLD"
)

// waveSceptreEffect solidifies the rainbow and reveals the pot of gold,
// but only while standing at the End of Rainbow; waving it anywhere else
// does nothing. Scores the one-shot WAVE_SCEPTRE action key.
func waveSceptreEffect(ctx *Context, obj *world.Object) (Result, error) {
	if ctx.State.CurrentRoom != endOfRainbowRoomID {
		return Result{Message: "Nothing happens."}, nil
	}

	scoring.AwardAction(ctx.State, scoring.ActionWaveSceptre, scoring.PointsWaveSceptre)

	if pot := ctx.State.Objects[potOfGoldID]; pot != nil && pot.Location == world.LocNowhere {
		ctx.State.Move(potOfGoldID, endOfRainbowRoomID)
	}

	return Result{
		Message: "Suddenly, the rainbow becomes solid, and you can see a pot of gold at its end!",
		Changed: true,
	}, nil
}
