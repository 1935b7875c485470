package actor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"greatunderground/internal/world"
)

func threeRoomState(t *testing.T) *world.State {
	t.Helper()
	a := world.NewRoom("A", "Room A")
	b := world.NewRoom("B", "Room B")
	c := world.NewRoom("C", "Room C")
	a.Exits = map[string]*world.Exit{"EAST": {Dest: "B"}}

	coin := world.NewObject("COIN", "gold coin")
	coin.Flags.Set(world.Treasure)
	coin.Flags.Set(world.Takeable)
	coin.Location = world.LocPlayer

	player := world.NewObject(world.LocPlayer, "you")
	player.Contains = []string{"COIN"}

	st, err := world.New(
		map[string]*world.Room{"A": a, "B": b, "C": c},
		map[string]*world.Object{"COIN": coin, world.LocPlayer: player},
		"A", 7)
	assert.NoError(t, err)
	return st
}

func Test_State_Terminal(t *testing.T) {
	assert.True(t, Dead.Terminal())
	assert.True(t, Fled.Terminal())
	assert.False(t, Normal.Terminal())
	assert.False(t, Fighting.Terminal())
}

func Test_Manager_RunTurn_respectsShouldAct(t *testing.T) {
	st := threeRoomState(t)
	m := NewManager()
	thief := NewThief("THIEF", "C", nil, 0) // never wanders, never co-located
	SetState(st, thief, Dead)
	m.Register(thief)

	ran := m.RunTurn(st)
	assert.False(t, ran)
}

func Test_Thief_stealsCarriedTreasureWhenCoLocated(t *testing.T) {
	st := threeRoomState(t)
	thief := NewThief("THIEF", "A", nil, 0)
	st.Objects["THIEF"] = world.NewObject("THIEF", "thief")
	st.Objects["THIEF"].Flags.Set(world.Actor)
	st.Objects["THIEF"].Location = "A"

	changed := thief.ExecuteTurn(st)
	assert.True(t, changed)
	assert.NotContains(t, st.Inventory(), "COIN")
	assert.Contains(t, st.Objects["THIEF"].Contains, "COIN")
}

func Test_Thief_rejectsGifts(t *testing.T) {
	thief := NewThief("THIEF", "A", nil, 0)
	accepted := thief.OnReceiveItem(nil, "ANYTHING")
	assert.False(t, accepted)
}

func Test_Thief_dropsLootOnDeath(t *testing.T) {
	st := threeRoomState(t)
	thief := NewThief("THIEF", "A", nil, 0)
	st.Objects["THIEF"] = world.NewObject("THIEF", "thief")
	st.Objects["THIEF"].Location = "A"
	assert.NoError(t, st.Move("COIN", "THIEF"))

	SetState(st, thief, Dead)

	assert.Contains(t, st.Rooms["A"].Contains, "COIN")
	assert.Equal(t, world.LocNowhere, st.Objects["THIEF"].Location)
}

func Test_Troll_startsFighting(t *testing.T) {
	troll := NewTroll("TROLL", "A", "AXE")
	assert.Equal(t, Fighting, troll.State())
}

func Test_Troll_acceptsAxeAndCalms(t *testing.T) {
	st := threeRoomState(t)
	troll := NewTroll("TROLL", "A", "AXE")
	st.Objects["TROLL"] = world.NewObject("TROLL", "troll")
	st.Objects["TROLL"].Location = "A"
	st.Objects["AXE"] = world.NewObject("AXE", "bloody axe")
	st.Objects["AXE"].Location = world.LocPlayer

	accepted := troll.OnReceiveItem(st, "AXE")
	assert.True(t, accepted)
	assert.Equal(t, Normal, troll.State())
}

func Test_Troll_consumesOtherGifts(t *testing.T) {
	st := threeRoomState(t)
	troll := NewTroll("TROLL", "A", "AXE")
	st.Objects["TROLL"] = world.NewObject("TROLL", "troll")
	st.Objects["TROLL"].Location = "A"

	accepted := troll.OnReceiveItem(st, "COIN")
	assert.True(t, accepted)
	assert.Equal(t, world.LocNowhere, st.Objects["COIN"].Location)
}

func Test_Troll_dropsAxeAndSetsFlagOnUnconscious(t *testing.T) {
	st := threeRoomState(t)
	troll := NewTroll("TROLL", "A", "AXE")
	st.Objects["TROLL"] = world.NewObject("TROLL", "troll")
	st.Objects["TROLL"].Location = "A"
	st.Objects["AXE"] = world.NewObject("AXE", "bloody axe")
	st.Objects["AXE"].Location = "TROLL"

	SetState(st, troll, Unconscious)

	assert.Contains(t, st.Rooms["A"].Contains, "AXE")
	assert.True(t, st.Globals.Bool(world.GTrollFlag))
}

func Test_Cyclops_lunchThenWaterSleeps(t *testing.T) {
	st := threeRoomState(t)
	cyc := NewCyclops("CYCLOPS", "A", "LUNCH", "WATER", 3, "EAST", "LIVING-ROOM")
	st.Objects["CYCLOPS"] = world.NewObject("CYCLOPS", "cyclops")
	st.Objects["CYCLOPS"].Location = "A"
	st.Objects["LUNCH"] = world.NewObject("LUNCH", "lunch")
	st.Objects["WATER"] = world.NewObject("WATER", "water")

	assert.False(t, cyc.OnReceiveItem(st, "WATER"), "water refused before lunch")
	assert.True(t, cyc.OnReceiveItem(st, "LUNCH"))
	assert.True(t, cyc.OnReceiveItem(st, "WATER"))
	assert.Equal(t, Sleeping, cyc.State())
	assert.True(t, st.Globals.Bool(world.GCyclopsFlag))
}

func Test_Cyclops_magicWordFlees(t *testing.T) {
	st := threeRoomState(t)
	cyc := NewCyclops("CYCLOPS", "A", "LUNCH", "WATER", 3, "EAST", "LIVING-ROOM")
	st.Objects["CYCLOPS"] = world.NewObject("CYCLOPS", "cyclops")
	st.Objects["CYCLOPS"].Location = "A"

	handled := cyc.SaySpellWord(st, "Odysseus")
	assert.True(t, handled)
	assert.Equal(t, Fled, cyc.State())
	assert.NotNil(t, st.Rooms["A"].Exits["EAST"])
	assert.Equal(t, "LIVING-ROOM", st.Rooms["A"].Exits["EAST"].Dest)
}

func Test_Cyclops_ignoresUnrelatedWord(t *testing.T) {
	st := threeRoomState(t)
	cyc := NewCyclops("CYCLOPS", "A", "LUNCH", "WATER", 3, "EAST", "LIVING-ROOM")
	st.Objects["CYCLOPS"] = world.NewObject("CYCLOPS", "cyclops")
	st.Objects["CYCLOPS"].Location = "A"

	assert.False(t, cyc.SaySpellWord(st, "HELLO"))
	assert.Equal(t, Normal, cyc.State())
}

func Test_Cyclops_wrathReachesZero(t *testing.T) {
	st := threeRoomState(t)
	cyc := NewCyclops("CYCLOPS", "A", "LUNCH", "WATER", 1, "EAST", "LIVING-ROOM")
	st.Objects["CYCLOPS"] = world.NewObject("CYCLOPS", "cyclops")
	st.Objects["CYCLOPS"].Location = "A"

	changed := cyc.ExecuteTurn(st)
	assert.True(t, changed)
	assert.Equal(t, 0, cyc.Wrath)
}
