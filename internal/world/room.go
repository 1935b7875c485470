package world

import (
	"fmt"
	"strings"
)

// Exit is an egress point from a Room, generalizing the teacher's Egress
// (internal/game/room.go) with the conditional/blocked-message/key fields
// spec.md §3 calls for.
type Exit struct {
	// Dest is the label of the room this exit leads to.
	Dest string

	// Description is prose about the exit; the EXITS meta-verb lists only
	// direction names and does not show it.
	Description string

	// TravelMessage is printed when the exit is used successfully, in
	// addition to the destination room's own LOOK text.
	TravelMessage string

	// Condition, if non-nil, gates whether the exit is currently usable. It
	// is a Go function evaluated against world state, attached in code (see
	// the engine's wireKnownExits) rather than read from world data.
	Condition func(*State) bool

	// BlockedMessage is shown instead of moving if Condition is non-nil and
	// returns false.
	BlockedMessage string

	// RequiresKey, if non-empty, names an Object ID that must be held (or
	// used) to pass; empty means no key is required.
	RequiresKey string
}

// Usable reports whether this exit can currently be taken.
func (e *Exit) Usable(st *State) bool {
	if e.Condition == nil {
		return true
	}
	return e.Condition(st)
}

// Room is a location in the world: a node in the containment forest that
// objects, the player, and NPCs can occupy. Generalizes the teacher's Room
// (internal/game/room.go) with direction-keyed exits, global scenery
// references, the visited bit, and the implicit-light bit spec.md requires.
type Room struct {
	ID          string
	Name        string
	Description string

	// Exits maps a direction or alias keyword ("NORTH", "UP", "DOWN") to its
	// Exit.
	Exits map[string]*Exit

	// Contains lists the IDs of objects directly in this room, in authoring
	// (insertion) order; this is the order brief-mode listings fall back to
	// for objects absent from a display-order table (§4.4).
	Contains []string

	// Globals lists IDs of global-scenery objects (Location == LocGlobal)
	// visible from this room without being owned by it.
	Globals []string

	Visited       bool
	ImplicitLight bool
}

// NewRoom returns a Room with its maps/slices initialized.
func NewRoom(id, name string) *Room {
	return &Room{
		ID:    id,
		Name:  name,
		Exits: map[string]*Exit{},
	}
}

// ExitByAlias returns the exit matching the given direction/alias keyword,
// case-insensitively, or nil if there is none.
func (r *Room) ExitByAlias(word string) *Exit {
	word = strings.ToUpper(word)
	if e, ok := r.Exits[word]; ok {
		return e
	}
	return nil
}

// RemoveContained removes id from Contains, if present. It does not alter
// Object.Location; callers are expected to update that separately (see
// State.Move, which is the only sanctioned way to relocate an object).
func (r *Room) RemoveContained(id string) {
	for i, cid := range r.Contains {
		if cid == id {
			r.Contains = append(r.Contains[:i], r.Contains[i+1:]...)
			return
		}
	}
}

func (r *Room) String() string {
	var exits []string
	for dir, e := range r.Exits {
		exits = append(exits, fmt.Sprintf("%s->%s", dir, e.Dest))
	}
	return fmt.Sprintf("Room<%s %q EXITS: %s>", r.ID, r.Name, strings.Join(exits, ", "))
}
