package events

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"greatunderground/internal/world"
)

func emptyTestState(t *testing.T) *world.State {
	t.Helper()
	st, err := world.New(
		map[string]*world.Room{"R": world.NewRoom("R", "Room")},
		map[string]*world.Object{world.LocPlayer: world.NewObject(world.LocPlayer, "you")},
		"R", 1)
	assert.NoError(t, err)
	return st
}

func Test_ProcessTurn_runsDaemonsInRegistrationOrder(t *testing.T) {
	s := New()
	var order []string
	s.RegisterDaemon("A", func(st *world.State) (bool, error) {
		order = append(order, "A")
		return false, nil
	})
	s.RegisterDaemon("B", func(st *world.State) (bool, error) {
		order = append(order, "B")
		return false, nil
	})

	s.ProcessTurn(emptyTestState(t))
	assert.Equal(t, []string{"A", "B"}, order)
}

func Test_ProcessTurn_clockWaitSkipsTurnOnce(t *testing.T) {
	s := New()
	ran := false
	s.RegisterDaemon("D", func(st *world.State) (bool, error) {
		ran = true
		return false, nil
	})
	s.ClockWait = true
	st := emptyTestState(t)

	s.ProcessTurn(st)
	assert.False(t, ran)
	assert.False(t, s.ClockWait, "clock-wait is consumed after one turn")

	s.ProcessTurn(st)
	assert.True(t, ran)
}

func Test_ProcessTurn_playerWonSuppressesDaemonsNotInterrupts(t *testing.T) {
	s := New()
	daemonRan := false
	interruptRan := false
	s.RegisterDaemon("D", func(st *world.State) (bool, error) {
		daemonRan = true
		return false, nil
	})
	s.RegisterInterrupt("I", 1, func(st *world.State) (bool, error) {
		interruptRan = true
		return false, nil
	})
	s.PlayerWon = true

	s.ProcessTurn(emptyTestState(t))
	assert.False(t, daemonRan)
	assert.True(t, interruptRan)
}

func Test_ProcessTurn_interruptFiresAtZeroThenDisables(t *testing.T) {
	s := New()
	fireCount := 0
	s.RegisterInterrupt("I", 2, func(st *world.State) (bool, error) {
		fireCount++
		return true, nil
	})
	st := emptyTestState(t)

	s.ProcessTurn(st) // ticks 2 -> 1
	assert.Equal(t, 0, fireCount)
	s.ProcessTurn(st) // ticks 1 -> 0, fires
	assert.Equal(t, 1, fireCount)
	assert.False(t, s.Interrupt("I").Enabled)

	s.ProcessTurn(st) // disabled, does not fire again
	assert.Equal(t, 1, fireCount)
}

func Test_ProcessTurn_catchesHandlerErrorAndPanic(t *testing.T) {
	s := New()
	s.RegisterDaemon("ERR", func(st *world.State) (bool, error) {
		return false, errors.New("boom")
	})
	s.RegisterDaemon("PANIC", func(st *world.State) (bool, error) {
		panic("splat")
	})

	st := emptyTestState(t)
	assert.NotPanics(t, func() { s.ProcessTurn(st) })
	failures := s.Failures()
	assert.Len(t, failures, 2)
	assert.Equal(t, "ERR", failures[0].EventID)
	assert.Equal(t, "PANIC", failures[1].EventID)
}

func Test_ProcessTurn_incrementsMoveCounter(t *testing.T) {
	s := New()
	st := &world.State{}
	s.ProcessTurn(st)
	assert.Equal(t, 1, st.Moves)
}

func lampTestState(t *testing.T, fuel int) *world.State {
	t.Helper()
	room := world.NewRoom("R", "Room")
	lamp := world.NewObject("LAMP", "brass lantern")
	lamp.Flags.Set(world.LightSource)
	lamp.Flags.Set(world.Lit)
	lamp.Location = "R"
	room.Contains = []string{"LAMP"}
	player := world.NewObject(world.LocPlayer, "you")

	st, err := world.New(
		map[string]*world.Room{"R": room},
		map[string]*world.Object{"LAMP": lamp, world.LocPlayer: player},
		"R", 1)
	assert.NoError(t, err)
	st.Globals.SetInt(world.GLampFuel, fuel)
	return st
}

func Test_LampTimer_decrementsEveryTurn(t *testing.T) {
	s := New()
	RegisterLampTimer(s, "LAMP")
	st := lampTestState(t, 5)
	SyncLampInterrupt(s, st)

	s.ProcessTurn(st)
	assert.Equal(t, 4, st.Globals.Int(world.GLampFuel))
	s.ProcessTurn(st)
	assert.Equal(t, 3, st.Globals.Int(world.GLampFuel))
}

func Test_LampTimer_burnsOutAtZero(t *testing.T) {
	s := New()
	RegisterLampTimer(s, "LAMP")
	st := lampTestState(t, 1)
	SyncLampInterrupt(s, st)

	s.ProcessTurn(st)
	assert.Equal(t, 0, st.Globals.Int(world.GLampFuel))
	assert.True(t, st.Object("LAMP").Flags.Has(world.BurnedOut))
	assert.False(t, st.Object("LAMP").Flags.Has(world.Lit))
	assert.False(t, s.Interrupt(LampInterruptID).Enabled)
}

func Test_LampTimer_reportsChangedOnlyOnStageCrossing(t *testing.T) {
	s := New()
	RegisterLampTimer(s, "LAMP")
	st := lampTestState(t, 72)
	SyncLampInterrupt(s, st)

	changed := s.ProcessTurn(st) // 72 -> 71, still stage 1
	assert.False(t, changed)
	changed = s.ProcessTurn(st) // 71 -> 70, crosses into stage 2
	assert.True(t, changed)
}

func swordTestState(t *testing.T) *world.State {
	t.Helper()
	room := world.NewRoom("TROLL-ROOM", "Troll Room")
	adjacent := world.NewRoom("MAZE", "Maze")
	room.Exits = map[string]*world.Exit{"EAST": {Dest: "MAZE"}}

	troll := world.NewObject("TROLL", "troll")
	troll.Flags.Set(world.Actor)
	troll.Location = "TROLL-ROOM"
	room.Contains = []string{"TROLL"}

	sword := world.NewObject("SWORD", "elvish sword")
	sword.Flags.Set(world.Weapon)
	sword.Location = world.LocPlayer

	player := world.NewObject(world.LocPlayer, "you")
	player.Contains = []string{"SWORD"}

	st, err := world.New(
		map[string]*world.Room{"TROLL-ROOM": room, "MAZE": adjacent},
		map[string]*world.Object{"TROLL": troll, "SWORD": sword, world.LocPlayer: player},
		"TROLL-ROOM", 1)
	assert.NoError(t, err)
	return st
}

func Test_SwordGlow_brightInSameRoom(t *testing.T) {
	s := New()
	RegisterSwordGlow(s, "SWORD")
	st := swordTestState(t)

	changed := s.ProcessTurn(st)
	assert.True(t, changed)
	assert.Equal(t, 2, st.Object("SWORD").Properties.IntOr(world.PropGlowLevel, -1))
}

func Test_SwordGlow_faintInAdjacentRoom(t *testing.T) {
	s := New()
	RegisterSwordGlow(s, "SWORD")
	st := swordTestState(t)
	assert.NoError(t, st.Move("TROLL", "MAZE"))

	s.ProcessTurn(st)
	assert.Equal(t, 1, st.Object("SWORD").Properties.IntOr(world.PropGlowLevel, -1))
}

func Test_SwordGlow_offWhenNotCarried(t *testing.T) {
	s := New()
	RegisterSwordGlow(s, "SWORD")
	st := swordTestState(t)
	assert.NoError(t, st.Move("SWORD", "TROLL-ROOM"))

	s.ProcessTurn(st)
	assert.Equal(t, 0, st.Object("SWORD").Properties.IntOr(world.PropGlowLevel, -1))
}
