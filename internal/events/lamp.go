package events

import "greatunderground/internal/world"

// LampInterruptID is the registered id of the lamp-fuel interrupt.
const LampInterruptID = "LAMP-TIMER"

// RegisterLampTimer wires the lamp fuel countdown described in spec.md
// §4.6. The interrupt is re-armed to fire every turn (TicksRemaining reset
// to 1 on each firing) so LAMP_FUEL decrements once per turn regardless of
// the lamp's lit state. The handler reports a change when the decrement
// crosses a stage boundary and marks the lamp BURNED-OUT at stage 4; it
// prints no stage message.
func RegisterLampTimer(s *System, lampID string) *Interrupt {
	handler := func(st *world.State) (bool, error) {
		return tickLamp(s, st, lampID)
	}
	return s.RegisterInterrupt(LampInterruptID, 1, handler)
}

// SyncLampInterrupt re-arms the lamp interrupt from the lamp's current
// LAMP_FUEL global, used whenever fuel is set from outside the timer itself
// (world-data initialization, a scripted refuel).
func SyncLampInterrupt(s *System, st *world.State) {
	i := s.Interrupt(LampInterruptID)
	if i == nil {
		return
	}
	fuel := st.Globals.Int(world.GLampFuel)
	i.TicksRemaining = 1
	i.Enabled = fuel > 0
	st.Globals.SetInt(world.GLampStageIndex, world.LampStage(fuel))
}

// tickLamp decrements LAMP_FUEL by one and reports whether that crossed into
// a new stage. At stage 4 it marks the lamp burned out and leaves the
// interrupt disabled; otherwise it re-arms for next turn. It emits no
// warning text.
func tickLamp(s *System, st *world.State, lampID string) (bool, error) {
	fuel := st.Globals.Int(world.GLampFuel)
	prevStage := world.LampStage(fuel)

	if fuel > 0 {
		fuel--
	}
	st.Globals.SetInt(world.GLampFuel, fuel)
	newStage := world.LampStage(fuel)
	st.Globals.SetInt(world.GLampStageIndex, newStage)

	changed := newStage != prevStage
	if newStage == 4 {
		if lamp := st.Objects[lampID]; lamp != nil {
			lamp.Flags.Clear(world.Lit)
			lamp.Flags.Set(world.BurnedOut)
		}
		return changed, nil // leave disabled; nothing left to count down
	}

	if i := s.Interrupt(LampInterruptID); i != nil {
		i.TicksRemaining = 1
		i.Enabled = true
	}
	return changed, nil
}
