package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testState(t *testing.T) *State {
	t.Helper()

	wof := NewRoom("WEST-OF-HOUSE", "West of House")
	forest := NewRoom("FOREST", "Forest")
	wof.Exits["NORTH"] = &Exit{Dest: "FOREST"}

	lamp := NewObject("LAMP", "brass lantern")
	lamp.Flags.Set(Takeable)
	lamp.Flags.Set(LightSource)
	lamp.Location = "WEST-OF-HOUSE"
	wof.Contains = append(wof.Contains, "LAMP")

	sack := NewObject("SACK", "brown sack")
	sack.Flags.Set(Takeable)
	sack.Flags.Set(Container)
	sack.Flags.Set(Openable)
	sack.Location = "WEST-OF-HOUSE"
	wof.Contains = append(wof.Contains, "SACK")

	garlic := NewObject("GARLIC", "clove of garlic")
	garlic.Flags.Set(Takeable)
	garlic.Location = "SACK"
	sack.Contains = append(sack.Contains, "GARLIC")

	player := NewObject(LocPlayer, "you")
	player.Location = LocPlayer

	rooms := map[string]*Room{"WEST-OF-HOUSE": wof, "FOREST": forest}
	objects := map[string]*Object{
		"LAMP":    lamp,
		"SACK":    sack,
		"GARLIC":  garlic,
		LocPlayer: player,
	}

	st, err := New(rooms, objects, "WEST-OF-HOUSE", 1)
	assert.NoError(t, err)
	return st
}

func Test_New_rejectsUnknownStartingRoom(t *testing.T) {
	_, err := New(map[string]*Room{}, map[string]*Object{LocPlayer: NewObject(LocPlayer, "you")}, "NOWHERE", 1)
	assert.Error(t, err)
}

func Test_New_rejectsMissingPlayer(t *testing.T) {
	rooms := map[string]*Room{"R": NewRoom("R", "Room")}
	_, err := New(rooms, map[string]*Object{}, "R", 1)
	assert.Error(t, err)
}

func Test_Move_roomToPlayer(t *testing.T) {
	st := testState(t)

	err := st.Move("LAMP", LocPlayer)
	assert.NoError(t, err)

	assert.Equal(t, LocPlayer, st.Object("LAMP").Location)
	assert.Contains(t, st.Inventory(), "LAMP")
	assert.NotContains(t, st.Rooms["WEST-OF-HOUSE"].Contains, "LAMP")
}

func Test_Move_playerToRoom(t *testing.T) {
	st := testState(t)
	assert.NoError(t, st.Move("LAMP", LocPlayer))

	err := st.Move("LAMP", "FOREST")
	assert.NoError(t, err)

	assert.Equal(t, "FOREST", st.Object("LAMP").Location)
	assert.Contains(t, st.Rooms["FOREST"].Contains, "LAMP")
	assert.NotContains(t, st.Inventory(), "LAMP")
}

func Test_Move_intoContainer(t *testing.T) {
	st := testState(t)

	err := st.Move("GARLIC", LocPlayer)
	assert.NoError(t, err)
	assert.NotContains(t, st.Object("SACK").Contains, "GARLIC")
	assert.Contains(t, st.Inventory(), "GARLIC")

	err = st.Move("GARLIC", "SACK")
	assert.NoError(t, err)
	assert.Contains(t, st.Object("SACK").Contains, "GARLIC")
	assert.NotContains(t, st.Inventory(), "GARLIC")
}

func Test_Move_unknownObject(t *testing.T) {
	st := testState(t)
	err := st.Move("NOTHING", LocPlayer)
	assert.Error(t, err)
}

func Test_Move_unknownDestination(t *testing.T) {
	st := testState(t)
	err := st.Move("LAMP", "NOWHERE-ROOM")
	assert.Error(t, err)
}

func Test_Move_toNowhereDropsContainment(t *testing.T) {
	st := testState(t)
	assert.NoError(t, st.Move("LAMP", LocNowhere))

	assert.Equal(t, LocNowhere, st.Object("LAMP").Location)
	assert.NotContains(t, st.Rooms["WEST-OF-HOUSE"].Contains, "LAMP")
}

func Test_LocationChain_nestedInContainer(t *testing.T) {
	st := testState(t)
	chain := st.LocationChain("GARLIC")
	assert.Equal(t, []string{"GARLIC", "SACK", "WEST-OF-HOUSE"}, chain)
}

func Test_RoomOf_resolvesThroughContainerAndPlayer(t *testing.T) {
	st := testState(t)
	assert.Equal(t, "WEST-OF-HOUSE", st.RoomOf("GARLIC"))

	assert.NoError(t, st.Move("SACK", LocPlayer))
	assert.Equal(t, "WEST-OF-HOUSE", st.RoomOf("GARLIC")) // player currently in WEST-OF-HOUSE
}

func Test_IsLiveLightSource(t *testing.T) {
	st := testState(t)
	lamp := st.Object("LAMP")
	assert.False(t, lamp.IsLiveLightSource(), "lamp starts unlit")

	lamp.Flags.Set(Lit)
	assert.True(t, lamp.IsLiveLightSource())

	lamp.Flags.Set(BurnedOut)
	assert.False(t, lamp.IsLiveLightSource(), "burned out lamp gives no light even if marked lit")
}

func Test_Reseed_changesSeed(t *testing.T) {
	st := testState(t)
	assert.Equal(t, int64(1), st.Seed())
	st.Reseed(42)
	assert.Equal(t, int64(42), st.Seed())
}
