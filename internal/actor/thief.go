package actor

import "greatunderground/internal/world"

// Thief wanders when not engaged and steals a random takeable treasure when
// co-located with the player and not already engaged. Its wandering is a
// fixed per-turn chance (AppearanceChance); it does not depend on the
// player's moves or on whether the player carries treasures.
type Thief struct {
	base

	// RoomID is the thief's current whereabouts, tracked independently of
	// world.Object.Location only for readability; the two are kept in
	// sync by ExecuteTurn via st.Move.
	RoomID string

	// WanderRooms lists the room IDs the thief may wander between.
	WanderRooms []string

	// AppearanceChance is the probability (0..1), drawn from st.Rand() on
	// each turn the thief is away from the player, that it moves to a
	// randomly chosen room of WanderRooms (not necessarily the player's).
	AppearanceChance float64
}

// NewThief returns a Thief behavior backed by objectID, starting NORMAL in
// startRoom.
func NewThief(objectID, startRoom string, wanderRooms []string, appearanceChance float64) *Thief {
	return &Thief{
		base:             base{id: objectID, state: Normal},
		RoomID:           startRoom,
		WanderRooms:      wanderRooms,
		AppearanceChance: appearanceChance,
	}
}

// ShouldAct is false once the thief is DEAD or FLED.
func (t *Thief) ShouldAct(st *world.State) bool {
	return t.shouldActTerminal()
}

// ExecuteTurn wanders the thief between WanderRooms, or steals a carried
// treasure if co-located with the player and not FIGHTING.
func (t *Thief) ExecuteTurn(st *world.State) bool {
	if t.state == Fighting {
		return false // combat resolution drives FIGHTING turns, not wander/steal
	}

	if st.RoomOf(t.id) == st.CurrentRoom {
		return t.tryStealFromPlayer(st)
	}

	return t.wander(st)
}

func (t *Thief) wander(st *world.State) bool {
	if len(t.WanderRooms) == 0 {
		return false
	}
	if st.Rand().Float64() > t.AppearanceChance {
		return false
	}
	next := t.WanderRooms[st.Rand().Intn(len(t.WanderRooms))]
	if next == st.RoomOf(t.id) {
		return false
	}
	if err := st.Move(t.id, next); err != nil {
		return false
	}
	t.RoomID = next
	return true
}

func (t *Thief) tryStealFromPlayer(st *world.State) bool {
	var loot []string
	for _, id := range st.Inventory() {
		if obj := st.Objects[id]; obj != nil && obj.Flags.Has(world.Treasure) && obj.Flags.Has(world.Takeable) {
			loot = append(loot, id)
		}
	}
	if len(loot) == 0 {
		return false
	}
	stolen := loot[st.Rand().Intn(len(loot))]
	return st.Move(stolen, t.id) == nil
}

// OnReceiveItem always rejects gifts: "Rejects gifts." (spec.md §4.5).
func (t *Thief) OnReceiveItem(st *world.State, itemID string) bool {
	return false
}

// Transition applies state-change side effects: on DEAD, every item the
// thief was carrying (including stolen loot) drops into its current room.
func (t *Thief) Transition(st *world.State, to State) {
	if to == Dead {
		room := st.RoomOf(t.id)
		if obj := st.Objects[t.id]; obj != nil {
			for _, heldID := range append([]string(nil), obj.Contains...) {
				st.Move(heldID, room)
			}
		}
	}
	t.state = to
}
