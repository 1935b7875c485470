// Package scoring implements the two additive score components of
// spec.md §4.9: a one-shot base score (action keys plus first-take
// treasure values) and a treasure score computed on demand from trophy
// case contents, plus the rank step function.
package scoring

import "greatunderground/internal/world"

// DeathPenalty is the fixed amount subtracted from base score on death,
// clamped at zero (spec.md §4.9).
const DeathPenalty = 10

// WinThreshold is the total score that triggers the one-shot win message
// and sets WON_FLAG.
const WinThreshold = 350

// One-shot action keys spec.md §4.9/§8.3 names, credited through
// AwardAction at the specific verb handlers that produce them. spec.md
// gives no closed point table for these, so the point values below are a
// judgment call documented in DESIGN.md.
const (
	ActionEnterCellar = "ENTER_CELLAR"
	ActionDefeatTroll = "DEFEAT_TROLL"
	ActionWaveSceptre = "WAVE_SCEPTRE"
)

const (
	PointsEnterCellar = 25
	PointsDefeatTroll = 15
	PointsWaveSceptre = 10
)

// AwardAction credits key's one-shot action score exactly once, using the
// globals' scored-actions set to prevent double counting. points may be
// negative (though death uses ApplyDeathPenalty instead). Returns whether
// the award was newly applied.
func AwardAction(st *world.State, key string, points int) bool {
	scored := st.Globals.Set(world.GScoredActions)
	if scored.Has(key) {
		return false
	}
	scored.Add(key)
	st.BaseScore += points
	return true
}

// AwardFirstTake credits a treasure's take-value exactly once, the first
// time it is taken, using the globals' value-scored-treasures set.
// Returns whether the award was newly applied.
func AwardFirstTake(st *world.State, treasureID string) bool {
	obj := st.Objects[treasureID]
	if obj == nil || !obj.Flags.Has(world.Treasure) {
		return false
	}
	scored := st.Globals.Set(world.GValueScoredTreasures)
	if scored.Has(treasureID) {
		return false
	}
	scored.Add(treasureID)
	st.BaseScore += obj.Properties.IntOr(world.PropValue, 0)
	return true
}

// ApplyDeathPenalty subtracts DeathPenalty from base score, clamped at
// zero, and increments the death counter global.
func ApplyDeathPenalty(st *world.State) {
	st.BaseScore -= DeathPenalty
	if st.BaseScore < 0 {
		st.BaseScore = 0
	}
	st.Globals.SetInt(world.GDeaths, st.Globals.Int(world.GDeaths)+1)
}

// TreasureScore sums the trophy-values of every treasure currently located
// in trophyCaseID. It is computed fresh every call: removing a treasure
// from the case silently reduces the total, per spec.md §4.9.
func TreasureScore(st *world.State, trophyCaseID string) int {
	caseObj := st.Objects[trophyCaseID]
	if caseObj == nil {
		return 0
	}
	total := 0
	for _, id := range caseObj.Contains {
		obj := st.Objects[id]
		if obj == nil || !obj.Flags.Has(world.Treasure) {
			continue
		}
		total += obj.Properties.IntOr(world.PropTrophyValue, 0)
	}
	return total
}

// Total returns base score plus the current treasure score.
func Total(st *world.State, trophyCaseID string) int {
	return st.BaseScore + TreasureScore(st, trophyCaseID)
}

// HasWon reports whether total meets WinThreshold.
func HasWon(total int) bool {
	return total >= WinThreshold
}

// rankStep is one entry of the monotone rank step function.
type rankStep struct {
	min  int
	rank string
}

// ranks is ordered ascending by min score; Rank finds the highest step
// whose min is <= total.
var ranks = []rankStep{
	{0, "Beginner"},
	{25, "Amateur Adventurer"},
	{50, "Novice Adventurer"},
	{100, "Junior Adventurer"},
	{200, "Adventurer"},
	{300, "Master Adventurer"},
	{WinThreshold, "Master Adventurer"},
}

// Rank returns the rank title for the given total score.
func Rank(total int) string {
	rank := ranks[0].rank
	for _, step := range ranks {
		if total >= step.min {
			rank = step.rank
		}
	}
	return rank
}
