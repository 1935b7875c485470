// Package actor implements the actor capability and the three named
// behaviors of spec.md §4.5: Thief, Troll, Cyclops. An actor is a
// polymorphic capability layered over a world.Object with ACTOR set,
// generalizing the teacher's NPC type (internal/game/npc.go) which carries
// a fixed Route but no combat/dialog state machine of its own.
package actor

import "greatunderground/internal/world"

// State is one of the closed actor states from spec.md §4.5.
type State int

const (
	Normal State = iota
	Fighting
	Sleeping
	Unconscious
	Fled
	Dead
)

func (s State) String() string {
	switch s {
	case Normal:
		return "NORMAL"
	case Fighting:
		return "FIGHTING"
	case Sleeping:
		return "SLEEPING"
	case Unconscious:
		return "UNCONSCIOUS"
	case Fled:
		return "FLED"
	case Dead:
		return "DEAD"
	default:
		return "UNKNOWN"
	}
}

// Terminal reports whether s is one of the no-further-turns states.
func (s State) Terminal() bool {
	return s == Dead || s == Fled
}

// Behavior is the capability every actor implements, per spec.md §4.5.
// ShouldAct gatekeeps whether ExecuteTurn runs at all this turn.
// ExecuteTurn runs once per turn after the verb executor and reports
// whether anything changed. OnReceiveItem handles GIVE. Transition applies
// the side effects of a state change (dropping held items, flag updates).
type Behavior interface {
	ID() string
	ShouldAct(st *world.State) bool
	ExecuteTurn(st *world.State) (changed bool)
	OnReceiveItem(st *world.State, itemID string) (accepted bool)
	Transition(st *world.State, to State)
	State() State
}

// base holds the bookkeeping shared by every Behavior implementation: its
// backing object id and current State. Embedded by each concrete behavior
// rather than duplicated.
type base struct {
	id    string
	state State
}

func (b *base) ID() string    { return b.id }
func (b *base) State() State  { return b.state }

// shouldActTerminal implements the terminal-state short-circuit shared by all
// actors ("terminal states short-circuit should_act to false", spec.md
// §4.5); concrete types call base.shouldActTerminal() first.
func (b *base) shouldActTerminal() bool {
	return !b.state.Terminal()
}

// Manager tracks every actor in the world and runs their turns in
// registration order after the verb executor, per spec.md §4.4's dataflow
// (verb executor, then actor manager). Registration order mirrors the
// teacher's MoveNPCs' fixed iteration.
type Manager struct {
	actors []Behavior
}

// NewManager returns an empty Manager.
func NewManager() *Manager {
	return &Manager{}
}

// Register adds a behavior to the manager.
func (m *Manager) Register(b Behavior) {
	m.actors = append(m.actors, b)
}

// ByID returns the registered behavior with the given id, or nil.
func (m *Manager) ByID(id string) Behavior {
	for _, a := range m.actors {
		if a.ID() == id {
			return a
		}
	}
	return nil
}

// All returns every registered behavior, in registration order.
func (m *Manager) All() []Behavior {
	return append([]Behavior(nil), m.actors...)
}

// RunTurn executes ExecuteTurn on every actor that ShouldAct, in
// registration order, returning whether any reported a change.
func (m *Manager) RunTurn(st *world.State) (changed bool) {
	for _, a := range m.actors {
		if !a.ShouldAct(st) {
			continue
		}
		if a.ExecuteTurn(st) {
			changed = true
		}
	}
	return changed
}

// SetState transitions b to the given state and runs its Transition side
// effects, updating both the Behavior's own bookkeeping and the backing
// world.Object's FIGHTING flag (spec.md's Object model carries FIGHTING as
// an object flag mirroring actor state).
func SetState(st *world.State, b Behavior, to State) {
	b.Transition(st, to)
	if obj := st.Objects[b.ID()]; obj != nil {
		if to == Fighting {
			obj.Flags.Set(world.Fighting)
		} else {
			obj.Flags.Clear(world.Fighting)
		}
		if to == Dead {
			st.Move(b.ID(), world.LocNowhere)
		}
	}
}
