package verbs

import (
	"greatunderground/internal/actor"
	"greatunderground/internal/adverr"
	"greatunderground/internal/combat"
	"greatunderground/internal/parser"
	"greatunderground/internal/scoring"
	"greatunderground/internal/world"
)

// handleAttack implements ATTACK/KILL: resolve one blow against an actor
// using whatever weapon the player names (or bare-handed, power 1), per
// spec.md §4.8. The defender's remaining strength lives on its backing
// world.Object as PropStrength; a defender driven to non-positive strength
// is rendered Unconscious or Killed by combat.Resolve itself.
func handleAttack(ctx *Context, cmd parser.Command) (Result, error) {
	if cmd.DirectObject == "" {
		return Result{}, adverr.New(adverr.KindParse, "Attack whom?")
	}
	target := ctx.Actors.ByID(cmd.DirectObject)
	if target == nil {
		return Result{}, adverr.New(adverr.KindReferent, "You can't attack that.")
	}
	if target.State().Terminal() {
		return Result{Message: "That's already taken care of."}, nil
	}

	weaponID := cmd.IndirectObject
	power := 1
	weaponName := "your bare hands"
	if weaponID != "" {
		if !carries(ctx, weaponID) {
			return Result{}, adverr.New(adverr.KindAction, "You aren't holding that.")
		}
		power = combat.PowerOf(weaponID)
		if w := ctx.State.Object(weaponID); w != nil {
			weaponName = "the " + w.Name
		}
	}

	obj := ctx.State.Objects[target.ID()]
	if obj == nil {
		return Result{}, adverr.New(adverr.KindReferent, "You can't attack that.")
	}
	strength := obj.Properties.IntOr(world.PropStrength, 1)

	roll := combat.Roll(ctx.State.Rand())
	outcome := combat.Resolve(power, strength, roll)

	actor.SetState(ctx.State, target, actor.Fighting)

	switch outcome {
	case combat.Missed:
		return Result{Message: "Your blow misses.", Changed: true}, nil
	case combat.Staggered:
		return Result{Message: "A good stroke, but it does not harm " + obj.Name + ".", Changed: true}, nil
	case combat.Hit:
		obj.Properties.SetInt(world.PropStrength, combat.ApplyStrengthLoss(strength, power))
		return Result{Message: "You strike " + obj.Name + " with " + weaponName + "!", Changed: true}, nil
	case combat.Disarmed:
		dropActorWeapon(ctx, obj)
		return Result{Message: obj.Name + " is disarmed!", Changed: true}, nil
	case combat.Unconscious:
		actor.SetState(ctx.State, target, actor.Unconscious)
		awardTrollDefeat(ctx, obj.ID)
		return Result{Message: obj.Name + " is knocked unconscious.", Changed: true}, nil
	case combat.Killed:
		actor.SetState(ctx.State, target, actor.Dead)
		awardTrollDefeat(ctx, obj.ID)
		return Result{Message: "Your blow is decisive. " + obj.Name + " falls dead.", Changed: true}, nil
	default:
		return Result{Message: "Nothing happens."}, nil
	}
}

// awardTrollDefeat credits the one-shot DEFEAT_TROLL action key (spec.md
// S4) the first time the troll specifically is driven unconscious or
// killed; AwardAction's scored-keys set makes a second credit (e.g.
// unconscious then later killed) a no-op.
func awardTrollDefeat(ctx *Context, defeatedID string) {
	if defeatedID == "TROLL" {
		scoring.AwardAction(ctx.State, scoring.ActionDefeatTroll, scoring.PointsDefeatTroll)
	}
}

// dropActorWeapon moves anything the disarmed actor holds into its current
// room, the way a dropped weapon becomes takeable scenery.
func dropActorWeapon(ctx *Context, obj *world.Object) {
	room := ctx.State.RoomOf(obj.ID)
	if room == "" {
		return
	}
	held := append([]string(nil), obj.Contains...)
	for _, id := range held {
		ctx.State.Move(id, room)
	}
}
