package light

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"greatunderground/internal/world"
)

func testState(t *testing.T) *world.State {
	t.Helper()

	cellar := world.NewRoom("CELLAR", "Cellar")
	cellar.ImplicitLight = false

	kitchen := world.NewRoom("KITCHEN", "Kitchen")
	kitchen.ImplicitLight = true

	lamp := world.NewObject("LAMP", "brass lantern")
	lamp.Flags.Set(world.LightSource)
	lamp.Location = world.LocPlayer

	player := world.NewObject(world.LocPlayer, "you")
	player.Location = world.LocPlayer
	player.Contains = []string{"LAMP"}

	rooms := map[string]*world.Room{"CELLAR": cellar, "KITCHEN": kitchen}
	objects := map[string]*world.Object{"LAMP": lamp, world.LocPlayer: player}

	st, err := world.New(rooms, objects, "CELLAR", 1)
	assert.NoError(t, err)
	return st
}

func Test_IsLit_implicitLight(t *testing.T) {
	st := testState(t)
	assert.True(t, IsLit(st, "KITCHEN"))
}

func Test_IsLit_darkWithoutLamp(t *testing.T) {
	st := testState(t)
	assert.False(t, IsLit(st, "CELLAR"))
}

func Test_IsLit_lampInInventoryLitsCurrentRoomOnly(t *testing.T) {
	st := testState(t)
	st.Object("LAMP").Flags.Set(world.Lit)

	assert.True(t, IsLit(st, "CELLAR"), "lamp lit and player present lights the room")
	assert.False(t, IsLit(st, "KITCHEN_UNKNOWN"), "unknown room is never lit")
}

func Test_IsLit_burnedOutLampGivesNoLight(t *testing.T) {
	st := testState(t)
	lamp := st.Object("LAMP")
	lamp.Flags.Set(world.Lit)
	lamp.Flags.Set(world.BurnedOut)

	assert.False(t, IsLit(st, "CELLAR"))
}

func Test_IsLit_lightSourceLeftInRoomStillLights(t *testing.T) {
	st := testState(t)
	lamp := st.Object("LAMP")
	lamp.Flags.Set(world.Lit)
	assert.NoError(t, st.Move("LAMP", "CELLAR"))

	assert.True(t, IsLit(st, "CELLAR"))
}

func Test_CurrentRoomLit(t *testing.T) {
	st := testState(t)
	assert.False(t, CurrentRoomLit(st))
	st.Object("LAMP").Flags.Set(world.Lit)
	assert.True(t, CurrentRoomLit(st))
}

func Test_SafeInDark(t *testing.T) {
	assert.True(t, SafeInDark("INVENTORY"))
	assert.True(t, SafeInDark("WAIT"))
	assert.False(t, SafeInDark("TAKE"))
}
