// Package events implements the turn clock: daemons that run every turn and
// interrupts that count down and fire once, per spec.md §4.6. Iteration
// order is deterministic (registration order), mirroring the teacher's
// MoveNPCs/Advance loop (internal/game/state.go), which walks rooms and NPCs
// in a fixed, repeatable order rather than a randomized one.
package events

import "greatunderground/internal/world"

// Handler is the function a Daemon or Interrupt runs. It receives the world
// state and returns whether anything changed (to prompt a re-render), along
// with an error. Per spec.md §4.6, handler errors never abort the turn --
// System.ProcessTurn catches and records them instead of propagating.
type Handler func(st *world.State) (changed bool, err error)

// Daemon runs its Handler every turn while Enabled is true.
type Daemon struct {
	ID      string
	Handler Handler
	Enabled bool
}

// Interrupt counts down once per turn while Enabled, and fires its Handler
// when TicksRemaining reaches zero. After firing it disables itself unless
// the handler (or some other code) re-arms it by setting Enabled/
// TicksRemaining again.
type Interrupt struct {
	ID             string
	Handler        Handler
	Enabled        bool
	TicksRemaining int
}

// FailureRecord is one caught handler panic/error, kept for introspection
// through Failures; no player verb displays it (the teacher has no
// structured logger either; this is the in-memory analogue of printing
// straight to the transcript).
type FailureRecord struct {
	EventID string
	Err     error
}

const failureRingSize = 32

// System holds the registered daemons and interrupts and advances them one
// turn at a time. Registration order is preserved in Daemons/Interrupts and
// is the order ProcessTurn executes them in.
type System struct {
	Daemons    []*Daemon
	Interrupts []*Interrupt

	// ClockWait suppresses the next ProcessTurn entirely when true: the
	// move counter does not advance and no daemon/interrupt runs. Consumed
	// (reset to false) by ProcessTurn whether or not it was set.
	ClockWait bool

	// PlayerWon suppresses daemons but still runs interrupts, so end-of-
	// game sequences (e.g. a final lamp-out message) can still fire.
	PlayerWon bool

	failures []FailureRecord
}

// New returns an empty System.
func New() *System {
	return &System{}
}

// RegisterDaemon appends a new daemon, enabled by default.
func (s *System) RegisterDaemon(id string, h Handler) *Daemon {
	d := &Daemon{ID: id, Handler: h, Enabled: true}
	s.Daemons = append(s.Daemons, d)
	return d
}

// RegisterInterrupt appends a new interrupt with the given starting tick
// count, enabled by default.
func (s *System) RegisterInterrupt(id string, ticks int, h Handler) *Interrupt {
	i := &Interrupt{ID: id, Handler: h, Enabled: true, TicksRemaining: ticks}
	s.Interrupts = append(s.Interrupts, i)
	return i
}

// Daemon returns the registered daemon with the given id, or nil.
func (s *System) Daemon(id string) *Daemon {
	for _, d := range s.Daemons {
		if d.ID == id {
			return d
		}
	}
	return nil
}

// Interrupt returns the registered interrupt with the given id, or nil.
func (s *System) Interrupt(id string) *Interrupt {
	for _, i := range s.Interrupts {
		if i.ID == id {
			return i
		}
	}
	return nil
}

// ProcessTurn runs one tick of the clock against st: enabled daemons in
// registration order (unless PlayerWon), then enabled interrupts in
// registration order with a single decrement each, firing any that reach
// zero. If ClockWait is set, the whole turn is skipped and the bit is
// cleared. Returns whether any handler reported a change.
func (s *System) ProcessTurn(st *world.State) (changed bool) {
	if s.ClockWait {
		s.ClockWait = false
		return false
	}

	if !s.PlayerWon {
		for _, d := range s.Daemons {
			if !d.Enabled {
				continue
			}
			if s.runHandler(d.ID, d.Handler, st) {
				changed = true
			}
		}
	}

	for _, i := range s.Interrupts {
		if !i.Enabled {
			continue
		}
		i.TicksRemaining--
		if i.TicksRemaining > 0 {
			continue
		}
		i.Enabled = false
		if s.runHandler(i.ID, i.Handler, st) {
			changed = true
		}
	}

	st.Moves++
	return changed
}

func (s *System) runHandler(id string, h Handler, st *world.State) bool {
	ok, err := s.safeInvoke(h, st)
	if err != nil {
		s.recordFailure(id, err)
		return false
	}
	return ok
}

// safeInvoke calls h, converting any panic into an error so a single broken
// handler can never abort the turn (spec.md §4.6: "handler errors are
// caught and silently logged").
func (s *System) safeInvoke(h Handler, st *world.State) (changed bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = panicToError(r)
		}
	}()
	return h(st)
}

func (s *System) recordFailure(id string, err error) {
	s.failures = append(s.failures, FailureRecord{EventID: id, Err: err})
	if len(s.failures) > failureRingSize {
		s.failures = s.failures[len(s.failures)-failureRingSize:]
	}
}

// Failures returns the most recent caught handler failures, oldest first,
// for introspection; no player verb displays them.
func (s *System) Failures() []FailureRecord {
	return append([]FailureRecord(nil), s.failures...)
}
