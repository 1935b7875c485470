package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"greatunderground/internal/world"
)

func scoringTestState(t *testing.T) *world.State {
	t.Helper()
	room := world.NewRoom("R", "Room")
	trophyCase := world.NewObject("TROPHY-CASE", "trophy case")
	trophyCase.Flags.Set(world.Container)
	trophyCase.Location = "R"
	room.Contains = []string{"TROPHY-CASE"}

	egg := world.NewObject("EGG", "jeweled egg")
	egg.Flags.Set(world.Treasure)
	egg.Flags.Set(world.Takeable)
	egg.Properties.SetInt(world.PropValue, 5)
	egg.Properties.SetInt(world.PropTrophyValue, 10)
	egg.Location = world.LocPlayer

	player := world.NewObject(world.LocPlayer, "you")
	player.Contains = []string{"EGG"}

	st, err := world.New(
		map[string]*world.Room{"R": room},
		map[string]*world.Object{"TROPHY-CASE": trophyCase, "EGG": egg, world.LocPlayer: player},
		"R", 1)
	assert.NoError(t, err)
	return st
}

func Test_AwardAction_onceOnly(t *testing.T) {
	st := scoringTestState(t)
	assert.True(t, AwardAction(st, "ENTER_CELLAR", 25))
	assert.Equal(t, 25, st.BaseScore)

	assert.False(t, AwardAction(st, "ENTER_CELLAR", 25))
	assert.Equal(t, 25, st.BaseScore, "second award of the same key is a no-op")
}

func Test_AwardFirstTake_onceOnly(t *testing.T) {
	st := scoringTestState(t)
	assert.True(t, AwardFirstTake(st, "EGG"))
	assert.Equal(t, 5, st.BaseScore)

	assert.False(t, AwardFirstTake(st, "EGG"))
	assert.Equal(t, 5, st.BaseScore)
}

func Test_AwardFirstTake_rejectsNonTreasure(t *testing.T) {
	st := scoringTestState(t)
	st.Objects["ROCK"] = world.NewObject("ROCK", "rock")
	assert.False(t, AwardFirstTake(st, "ROCK"))
	assert.Equal(t, 0, st.BaseScore)
}

func Test_ApplyDeathPenalty_clampsAtZero(t *testing.T) {
	st := scoringTestState(t)
	st.BaseScore = 5
	ApplyDeathPenalty(st)
	assert.Equal(t, 0, st.BaseScore)
	assert.Equal(t, 1, st.Globals.Int(world.GDeaths))
}

func Test_TreasureScore_reflectsCurrentCaseContents(t *testing.T) {
	st := scoringTestState(t)
	assert.Equal(t, 0, TreasureScore(st, "TROPHY-CASE"))

	assert.NoError(t, st.Move("EGG", "TROPHY-CASE"))
	assert.Equal(t, 10, TreasureScore(st, "TROPHY-CASE"))

	assert.NoError(t, st.Move("EGG", world.LocPlayer))
	assert.Equal(t, 0, TreasureScore(st, "TROPHY-CASE"), "removing from the case silently reduces the total")
}

func Test_Total_isBasePlusTreasure(t *testing.T) {
	st := scoringTestState(t)
	st.BaseScore = 5
	assert.NoError(t, st.Move("EGG", "TROPHY-CASE"))
	assert.Equal(t, 15, Total(st, "TROPHY-CASE"))
}

func Test_HasWon(t *testing.T) {
	assert.False(t, HasWon(349))
	assert.True(t, HasWon(350))
	assert.True(t, HasWon(400))
}

func Test_Rank_monotoneSteps(t *testing.T) {
	assert.Equal(t, "Beginner", Rank(0))
	assert.Equal(t, "Beginner", Rank(24))
	assert.Equal(t, "Amateur Adventurer", Rank(25))
	assert.Equal(t, "Master Adventurer", Rank(300))
	assert.Equal(t, "Master Adventurer", Rank(350))
}
