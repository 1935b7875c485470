package actor

import (
	"strings"

	"greatunderground/internal/world"
)

// Cyclops starts NORMAL. Accepting lunch makes it thirsty and eases its
// wrath (the Wrath countdown gains five turns); accepting water while
// thirsty puts it to SLEEPING and sets CYCLOPS_FLAG. Saying "ulysses" or "odysseus" in its room causes a
// scripted FLED transition that breaks down the east wall, opening a new
// exit to the Living Room. Otherwise escalating wrath eventually kills the
// player (spec.md §4.5).
type Cyclops struct {
	base
	RoomID string

	LunchID string
	WaterID string

	// Wrath counts down by one each turn the cyclops acts; once it is zero
	// while the cyclops is still NORMAL and in the player's room, the engine
	// kills the player. Lunch adds five turns; sleeping or fleeing ends the
	// threat.
	Wrath int

	thirsty bool

	// FledExitDest is the room the newly created exit leads to (the Living
	// Room), and FledExitDir the direction keyword it's installed under.
	FledExitDir  string
	FledExitDest string
}

// NewCyclops returns a Cyclops behavior backed by objectID, starting NORMAL
// in roomID with the given starting wrath countdown.
func NewCyclops(objectID, roomID, lunchID, waterID string, wrath int, fledDir, fledDest string) *Cyclops {
	return &Cyclops{
		base:         base{id: objectID, state: Normal},
		RoomID:       roomID,
		LunchID:      lunchID,
		WaterID:      waterID,
		Wrath:        wrath,
		FledExitDir:  fledDir,
		FledExitDest: fledDest,
	}
}

// ShouldAct is true only while the cyclops is present, not terminal, and
// not already SLEEPING (a sleeping cyclops takes no turns).
func (c *Cyclops) ShouldAct(st *world.State) bool {
	if !c.shouldActTerminal() || c.state == Sleeping {
		return false
	}
	return st.RoomOf(c.id) == st.CurrentRoom
}

// ExecuteTurn decrements wrath and reports a change when it reaches zero. It
// does not kill the player itself: the caller that notices Wrath<=0 (the
// engine's checkCyclopsWrath) applies the death.
func (c *Cyclops) ExecuteTurn(st *world.State) bool {
	if c.Wrath <= 0 {
		return false
	}
	c.Wrath--
	return c.Wrath == 0
}

// SaySpellWord handles the player saying a magic word in the cyclops' room;
// "ulysses" or "odysseus" trigger the scripted FLED transition. Returns
// whether the word was recognized and handled.
func (c *Cyclops) SaySpellWord(st *world.State, word string) bool {
	if st.RoomOf(c.id) != st.CurrentRoom {
		return false
	}
	w := strings.ToUpper(word)
	if w != "ULYSSES" && w != "ODYSSEUS" {
		return false
	}
	SetState(st, c, Fled)
	return true
}

// OnReceiveItem: lunch makes the cyclops thirsty (and calms its wrath);
// water while thirsty puts it to sleep. Anything else is refused.
func (c *Cyclops) OnReceiveItem(st *world.State, itemID string) bool {
	switch {
	case itemID == c.LunchID && !c.thirsty:
		st.Move(itemID, world.LocNowhere)
		c.thirsty = true
		c.Wrath += 5
		return true
	case itemID == c.WaterID && c.thirsty:
		st.Move(itemID, world.LocNowhere)
		SetState(st, c, Sleeping)
		return true
	default:
		return false
	}
}

// Transition applies the FLED side effect: it breaks the wall down, opening
// a new exit from the cyclops' room to the Living Room, and sets
// CYCLOPS_FLAG when transitioning to SLEEPING.
func (c *Cyclops) Transition(st *world.State, to State) {
	switch to {
	case Sleeping:
		st.Globals.SetBool(world.GCyclopsFlag, true)
	case Fled:
		if room := st.Rooms[st.RoomOf(c.id)]; room != nil && c.FledExitDir != "" {
			room.Exits[strings.ToUpper(c.FledExitDir)] = &world.Exit{
				Dest:        c.FledExitDest,
				Description: "a new passage, broken through the east wall",
			}
		}
	}
	c.state = to
}
