package events

import "greatunderground/internal/world"

// SwordGlowDaemonID is the registered id of the sword glow daemon.
const SwordGlowDaemonID = "SWORD-GLOW"

// SwordGlowMessage is the narration for a glow-level transition, keyed by
// the new level; level 0 is the text for a drop from a higher level. The
// sword glow daemon does not print these messages: it only updates
// PropGlowLevel and reports the change.
func SwordGlowMessage(level int) string {
	switch level {
	case 1:
		return "Your sword is glowing with a faint blue glow."
	case 2:
		return "Your sword is glowing very brightly."
	default:
		return "Your sword is no longer glowing."
	}
}

// RegisterSwordGlow wires the sword glow daemon described in spec.md §4.6:
// while swordID is in inventory, it inspects the current room and adjacent
// rooms (its exits' destinations) for any ACTOR not also INVISIBLE, and
// sets PropGlowLevel to 0 (none nearby), 1 (in an adjacent room), or 2 (in
// the current room). The daemon reports changed whenever the level differs
// from its previous value.
func RegisterSwordGlow(s *System, swordID string) *Daemon {
	return s.RegisterDaemon(SwordGlowDaemonID, func(st *world.State) (bool, error) {
		return tickSwordGlow(st, swordID)
	})
}

func tickSwordGlow(st *world.State, swordID string) (bool, error) {
	sword := st.Objects[swordID]
	if sword == nil {
		return false, nil
	}

	prevLevel := sword.Properties.IntOr(world.PropGlowLevel, 0)

	carried := false
	for _, id := range st.Inventory() {
		if id == swordID {
			carried = true
			break
		}
	}
	if !carried {
		sword.Properties.SetInt(world.PropGlowLevel, 0)
		return prevLevel != 0, nil
	}

	level := glowLevelForRoom(st, st.CurrentRoom)
	if level == 0 {
		room := st.Rooms[st.CurrentRoom]
		if room != nil {
			for _, exit := range room.Exits {
				if glowLevelForRoom(st, exit.Dest) > 0 {
					level = 1
					break
				}
			}
		}
	}

	sword.Properties.SetInt(world.PropGlowLevel, level)
	return level != prevLevel, nil
}

// glowLevelForRoom returns 2 if roomID contains a visible actor, else 0. It
// never returns 1 itself -- the caller promotes an adjacent-room hit to 1.
func glowLevelForRoom(st *world.State, roomID string) int {
	room := st.Rooms[roomID]
	if room == nil {
		return 0
	}
	for _, id := range room.Contains {
		obj := st.Objects[id]
		if obj != nil && obj.Flags.Has(world.Actor) && !obj.Flags.Has(world.Invisible) {
			return 2
		}
	}
	return 0
}
