package actor

import "greatunderground/internal/world"

// Troll is the troll's behavior; RoomID records the room it starts in.
//
// Troll starts in FIGHTING in the troll room. On UNCONSCIOUS or DEAD, it
// drops its axe and sets TROLL_FLAG, opening the east/west passages.
// Accepts the axe as a gift (peaceful return); any other gift is consumed
// (spec.md §4.5).
type Troll struct {
	base
	RoomID string
	AxeID  string
}

// NewTroll returns a Troll behavior backed by objectID, starting FIGHTING
// in roomID and carrying axeID.
func NewTroll(objectID, roomID, axeID string) *Troll {
	return &Troll{
		base:   base{id: objectID, state: Fighting},
		RoomID: roomID,
		AxeID:  axeID,
	}
}

// ShouldAct is true only while the troll is present and not terminal; combat
// resolution (see internal/combat via the verb executor) drives its actual
// turn actions, so ExecuteTurn here is a no-op placeholder for future
// scripted behavior beyond combat.
func (tr *Troll) ShouldAct(st *world.State) bool {
	return tr.shouldActTerminal() && st.RoomOf(tr.id) == st.CurrentRoom
}

// ExecuteTurn currently has nothing to do outside of combat, which the verb
// executor resolves directly via internal/combat; always reports no
// change.
func (tr *Troll) ExecuteTurn(st *world.State) bool {
	return false
}

// OnReceiveItem accepts the axe peacefully (the troll returns it to
// carrying and calms down); any other gift is simply consumed (removed
// from play).
func (tr *Troll) OnReceiveItem(st *world.State, itemID string) bool {
	if itemID == tr.AxeID {
		st.Move(itemID, tr.id)
		SetState(st, tr, Normal)
		return true
	}
	st.Move(itemID, world.LocNowhere)
	return true
}

// Transition drops the axe into the troll's room and sets TROLL_FLAG when
// the troll becomes UNCONSCIOUS or DEAD, opening the blocked passages.
func (tr *Troll) Transition(st *world.State, to State) {
	if to == Unconscious || to == Dead {
		room := st.RoomOf(tr.id)
		if tr.AxeID != "" {
			st.Move(tr.AxeID, room)
		}
		st.Globals.SetBool(world.GTrollFlag, true)
	}
	tr.state = to
}
