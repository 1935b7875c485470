package save

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greatunderground/internal/actor"
	"greatunderground/internal/atmosphere"
	"greatunderground/internal/events"
	"greatunderground/internal/parser"
	"greatunderground/internal/verbs"
	"greatunderground/internal/world"
)

// testRig builds a small world with a troll actor, a held lamp, and a
// couple of globals set, enough to exercise every field Capture/Restore
// touches.
func testRig(t *testing.T) (*world.State, *actor.Manager, *verbs.Context) {
	t.Helper()

	room := world.NewRoom("CELLAR", "Cellar")
	room.ImplicitLight = true
	other := world.NewRoom("TROLL-ROOM", "Troll Room")
	other.ImplicitLight = true
	room.Exits["NORTH"] = &world.Exit{Dest: "TROLL-ROOM"}

	lamp := world.NewObject("LAMP", "brass lantern")
	lamp.Flags.Set(world.Takeable)
	lamp.Flags.Set(world.LightSource)
	lamp.Location = world.LocPlayer
	lamp.Properties.SetInt(world.PropGlowLevel, 2)

	axe := world.NewObject("AXE", "bloody axe")
	axe.Location = "TROLL-ROOM"

	troll := world.NewObject("TROLL", "troll")
	troll.Location = "TROLL-ROOM"
	troll.Properties.SetInt(world.PropStrength, 3)

	player := world.NewObject(world.LocPlayer, "you")

	st, err := world.New(
		map[string]*world.Room{"CELLAR": room, "TROLL-ROOM": other},
		map[string]*world.Object{
			"LAMP": lamp, "AXE": axe, "TROLL": troll, world.LocPlayer: player,
		},
		"CELLAR", 7)
	require.NoError(t, err)
	st.Globals.SetInt(world.GDeaths, 1)
	st.Globals.SetBool(world.GWonFlag, false)
	st.Globals.Set(world.GScoredActions).Add("TAKE-LAMP")
	st.BaseScore = 35

	actors := actor.NewManager()
	troll_b := actor.NewTroll("TROLL", "TROLL-ROOM", "AXE")
	actors.Register(troll_b)

	ctx := &verbs.Context{
		State:        st,
		Events:       events.New(),
		Actors:       actors,
		Feedback:     &parser.Feedback{},
		Atmosphere:   atmosphere.New(7, nil),
		Verbosity:    verbs.Verbose,
		TrophyCaseID: "TROPHY-CASE",
		RespawnRoom:  "CELLAR",
	}
	return st, actors, ctx
}

func Test_CaptureRestore_roundTrips(t *testing.T) {
	st, actors, ctx := testRig(t)

	actor.SetState(st, actors.ByID("TROLL"), actor.Fighting)
	st.CurrentRoom = "TROLL-ROOM"
	st.Moves = 12

	snap := Capture(st, actors, ctx)

	// Rebuild a fresh world from the same data and restore onto it.
	st2, actors2, ctx2 := testRig(t)
	err := Restore(snap, st2, actors2, ctx2)
	require.NoError(t, err)

	assert.Equal(t, "TROLL-ROOM", st2.CurrentRoom)
	assert.Equal(t, 12, st2.Moves)
	assert.Equal(t, 35, st2.BaseScore)
	assert.Equal(t, 1, st2.Globals.Int(world.GDeaths))
	assert.True(t, st2.Globals.Set(world.GScoredActions).Has("TAKE-LAMP"))
	assert.Equal(t, actor.Fighting, actors2.ByID("TROLL").State())
	assert.True(t, st2.Objects["TROLL"].Flags.Has(world.Fighting))
	assert.Equal(t, 2, st2.Objects["LAMP"].Properties.IntOr(world.PropGlowLevel, 0))
	assert.Equal(t, verbs.Verbose, ctx2.Verbosity)
}

func Test_Restore_rejectsUnknownRoom(t *testing.T) {
	_, _, ctx := testRig(t)
	st2, actors2, ctx2 := testRig(t)

	snap := Capture(ctx.State, ctx.Actors, ctx)
	snap.CurrentRoom = "NO-SUCH-ROOM"

	err := Restore(snap, st2, actors2, ctx2)
	assert.Error(t, err)
}

func Test_Store_SaveLoadList_roundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(filepath.Join(dir, "saves.db"))
	require.NoError(t, err)
	defer store.Close()

	st, actors, ctx := testRig(t)
	st.Moves = 3
	snap := Capture(st, actors, ctx)

	require.NoError(t, store.Save("before-troll", snap))

	st.Moves = 9
	snap2 := Capture(st, actors, ctx)
	require.NoError(t, store.Save("after-troll", snap2))

	labels, err := store.List()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"before-troll", "after-troll"}, labels)

	loaded, err := store.Load("before-troll")
	require.NoError(t, err)
	assert.Equal(t, 3, loaded.Moves)
}

func Test_Store_Save_overwritesSameLabel(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(filepath.Join(dir, "saves.db"))
	require.NoError(t, err)
	defer store.Close()

	st, actors, ctx := testRig(t)
	st.Moves = 1
	require.NoError(t, store.Save("slot1", Capture(st, actors, ctx)))

	st.Moves = 2
	require.NoError(t, store.Save("slot1", Capture(st, actors, ctx)))

	labels, err := store.List()
	require.NoError(t, err)
	require.Len(t, labels, 1)

	loaded, err := store.Load("slot1")
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Moves)
}

func Test_Store_Load_missingLabelFails(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(filepath.Join(dir, "saves.db"))
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Load("nope")
	assert.Error(t, err)
}
