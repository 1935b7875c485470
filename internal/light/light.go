// Package light implements the lighting predicate: whether a room currently
// has sight in it. It is kept separate from internal/world so the darkness
// rule stays a small, independently testable pure function, per spec.md
// §4.7 and the invariant in §8 that it must not depend on history.
package light

import "greatunderground/internal/world"

// IsLit reports whether roomID is currently lit: either it is an
// implicitly-lit room, or a live light source sits in the room (directly,
// among its global scenery, or in the player's inventory while the player
// occupies it).
func IsLit(st *world.State, roomID string) bool {
	room := st.Rooms[roomID]
	if room == nil {
		return false
	}
	if room.ImplicitLight {
		return true
	}

	if anyLiveLightSource(st, room.Contains) || anyLiveLightSource(st, room.Globals) {
		return true
	}

	if st.CurrentRoom == roomID && anyLiveLightSource(st, st.Inventory()) {
		return true
	}

	return false
}

func anyLiveLightSource(st *world.State, ids []string) bool {
	for _, id := range ids {
		if obj := st.Objects[id]; obj != nil && obj.IsLiveLightSource() {
			return true
		}
	}
	return false
}

// CurrentRoomLit reports whether the player's current room is lit.
func CurrentRoomLit(st *world.State) bool {
	return IsLit(st, st.CurrentRoom)
}

// Whitelist verbs that remain usable in the dark, per spec.md §4.7. Keyed by
// canonical verb name as internal/vocab will define it.
var darkSafeVerbs = map[string]bool{
	"DROP":      true,
	"INVENTORY": true,
	"WAIT":      true,
	"QUIT":      true,
	"SAY":       true,
	"SCORE":     true,
	"DIAGNOSE":  true,
	"SAVE":       true,
	"RESTORE":    true,
	"VERBOSE":    true,
	"BRIEF":      true,
	"SUPERBRIEF": true,
}

// SafeInDark reports whether the given canonical verb may execute normally
// even when the current room is dark.
func SafeInDark(verb string) bool {
	return darkSafeVerbs[verb]
}
