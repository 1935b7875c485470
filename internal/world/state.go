// Package world implements the object graph and world state of the
// adventure: the containment tree of rooms, objects, the player, and the
// inventory, with flags, properties, and globally accessible scenery, per
// spec.md §3. It generalizes the teacher's internal/game package (Room,
// Item, State) from a flat, special-cased model to the closed-flag,
// typed-property model spec.md's Design Notes call for.
package world

import (
	"fmt"
	"math/rand"
)

// State is the game's entire mutable world: the object-id -> object map,
// the room-id -> room map, the current room, the move counter, score, and
// global variables, per spec.md §3. It intentionally has no knowledge of
// events, actors, or verbs -- those subsystems borrow State through the
// executor and are not retained by it (§5).
type State struct {
	Objects     map[string]*Object
	Rooms       map[string]*Room
	CurrentRoom string

	Moves     int
	BaseScore int

	Globals Globals

	// Testing suppresses atmospheric messages and is intended to be paired
	// with a fixed RNG seed for reproducible transcripts (spec.md §6).
	Testing bool

	rng  *rand.Rand
	seed int64
}

// New creates a State from the given rooms and objects, starting the player
// in startingRoom. The player Object must already be present in objects
// with ID LocPlayer.
func New(rooms map[string]*Room, objects map[string]*Object, startingRoom string, seed int64) (*State, error) {
	st := &State{
		Rooms:   rooms,
		Objects: objects,
		Globals: NewGlobals(),
		seed:    seed,
		rng:     rand.New(rand.NewSource(seed)),
	}

	if _, ok := st.Rooms[startingRoom]; !ok {
		return nil, fmt.Errorf("starting room %q does not exist in world", startingRoom)
	}
	st.CurrentRoom = startingRoom

	if _, ok := st.Objects[LocPlayer]; !ok {
		return nil, fmt.Errorf("world has no PLAYER object")
	}

	return st, nil
}

// Rand returns the world's seeded RNG. It is the sole source of
// non-determinism in the engine (§5) and can be reset via Reseed to produce
// reproducible runs.
func (st *State) Rand() *rand.Rand {
	return st.rng
}

// Reseed replaces the world's RNG with a freshly seeded one, discarding any
// accumulated draw state.
func (st *State) Reseed(seed int64) {
	st.seed = seed
	st.rng = rand.New(rand.NewSource(seed))
}

// Seed returns the seed the RNG was last initialized with.
func (st *State) Seed() int64 {
	return st.seed
}

// Player returns the player Object.
func (st *State) Player() *Object {
	return st.Objects[LocPlayer]
}

// Room returns the room the player currently occupies.
func (st *State) Room() *Room {
	return st.Rooms[st.CurrentRoom]
}

// Object looks up an object by ID. Returns nil if not found.
func (st *State) Object(id string) *Object {
	return st.Objects[id]
}

// Inventory returns the IDs of objects currently held by the player.
func (st *State) Inventory() []string {
	return st.Player().Contains
}

// removeFromCurrentLocation detaches obj from wherever it currently sits
// (a room's Contains, another object's Contains, or nothing for LocNowhere/
// LocGlobal), without assigning a new location. Internal to Move.
func (st *State) removeFromCurrentLocation(obj *Object) {
	switch obj.Location {
	case LocNowhere, LocGlobal:
		return
	case LocPlayer:
		st.Objects[LocPlayer].RemoveContained(obj.ID)
		return
	}
	if room, ok := st.Rooms[obj.Location]; ok {
		room.RemoveContained(obj.ID)
		return
	}
	if owner, ok := st.Objects[obj.Location]; ok {
		owner.RemoveContained(obj.ID)
	}
}

// Move relocates the object with the given ID to newLocation, which must be
// a room ID, another object's ID, LocPlayer, LocNowhere, or LocGlobal. This
// is the only sanctioned way to change an object's location: it both
// updates Object.Location and keeps the old and new containers' Contains
// lists in sync, preserving the single-parent invariant of spec.md §3/§8.
func (st *State) Move(id string, newLocation string) error {
	obj, ok := st.Objects[id]
	if !ok {
		return fmt.Errorf("move: no such object %q", id)
	}

	switch newLocation {
	case LocNowhere, LocGlobal:
		// no container to add to
	case LocPlayer:
		st.Objects[LocPlayer].Contains = append(st.Objects[LocPlayer].Contains, id)
	default:
		if room, ok := st.Rooms[newLocation]; ok {
			room.Contains = append(room.Contains, id)
		} else if owner, ok := st.Objects[newLocation]; ok {
			owner.Contains = append(owner.Contains, id)
		} else {
			return fmt.Errorf("move: no such destination %q", newLocation)
		}
	}

	st.removeFromCurrentLocation(obj)
	obj.Location = newLocation
	return nil
}

// LocationChain walks up from id through its containers (object or room)
// until it reaches a room, LocPlayer, LocNowhere, or LocGlobal. It is used
// to decide "visible object" membership: an object nested inside an open
// container in the room is visible, one nested in a closed container is not.
func (st *State) LocationChain(id string) []string {
	var chain []string
	seen := map[string]bool{}
	cur := id
	for {
		chain = append(chain, cur)
		if seen[cur] {
			break // defend against accidental cycles in malformed data
		}
		seen[cur] = true

		switch cur {
		case LocPlayer, LocNowhere, LocGlobal:
			return chain
		}
		if _, isRoom := st.Rooms[cur]; isRoom {
			return chain
		}
		obj, ok := st.Objects[cur]
		if !ok {
			return chain
		}
		cur = obj.Location
	}
	return chain
}

// RoomOf returns the room ID that contains id, resolving through any chain
// of containers. Returns "" if id ultimately resolves to LocNowhere/
// LocGlobal, or LocPlayer's current room if id is the player or something
// the player carries.
func (st *State) RoomOf(id string) string {
	chain := st.LocationChain(id)
	last := chain[len(chain)-1]
	switch last {
	case LocPlayer:
		return st.CurrentRoom
	case LocNowhere, LocGlobal:
		return ""
	default:
		return last
	}
}
