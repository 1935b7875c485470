// Package combat implements the deterministic attack-resolution function of
// spec.md §4.8: attacker, defender, weapon, defender strength, and a seeded
// RNG draw combine to one of a closed set of outcomes. Kept separate from
// internal/actor so the resolution table can be unit-tested against a fixed
// seed independent of actor state-machine wiring, the way the teacher keeps
// its route/dialog mini-models in their own files rather than folding them
// into state.go.
package combat

import "math/rand"

// Outcome is one of the closed results an attack can produce.
type Outcome int

const (
	Missed Outcome = iota
	Staggered
	Hit
	Killed
	Unconscious
	Disarmed
)

func (o Outcome) String() string {
	switch o {
	case Missed:
		return "MISSED"
	case Staggered:
		return "STAGGERED"
	case Hit:
		return "HIT"
	case Killed:
		return "KILLED"
	case Unconscious:
		return "UNCONSCIOUS"
	case Disarmed:
		return "DISARMED"
	default:
		return "UNKNOWN"
	}
}

// WeaponPower is the effectiveness table from spec.md §4.8.
var WeaponPower = map[string]int{
	"SWORD":    2,
	"AXE":      2,
	"KNIFE":    1,
	"STILETTO": 1,
}

// PowerOf returns the weapon's effectiveness rating, defaulting to 1 for an
// unlisted weapon (an improvised blunt object still does something).
func PowerOf(weaponID string) int {
	if p, ok := WeaponPower[weaponID]; ok {
		return p
	}
	return 1
}

// Resolve computes the outcome of an attack, given the weapon's power, the
// defender's current strength, and a uniform draw in [0,1) from the
// caller's seeded RNG. It is a pure function of its inputs: the same
// (power, strength, roll) triple always yields the same Outcome, satisfying
// spec.md §8's determinism invariant.
//
// The roll is partitioned into five bands, widened or narrowed by the
// weapon's power relative to the defender's remaining strength: a
// more-effective weapon against a weaker defender both raises the chance of
// a telling blow and lowers the miss chance.
func Resolve(weaponPower, defenderStrength int, roll float64) Outcome {
	if defenderStrength <= 0 {
		return Unconscious
	}

	advantage := float64(weaponPower) / float64(defenderStrength)
	if advantage < 0.2 {
		advantage = 0.2
	}
	if advantage > 3 {
		advantage = 3
	}

	missChance := 0.45 / advantage
	if missChance > 0.80 {
		missChance = 0.80
	}
	if missChance < 0.05 {
		missChance = 0.05
	}
	remaining := 1 - missChance

	missCeiling := missChance
	staggerCeiling := missCeiling + remaining*0.40
	hitCeiling := staggerCeiling + remaining*0.35
	disarmCeiling := hitCeiling + remaining*0.10

	switch {
	case roll < missCeiling:
		return Missed
	case roll < staggerCeiling:
		return Staggered
	case roll < hitCeiling:
		if defenderStrength-weaponPower <= 0 {
			return Killed
		}
		return Hit
	case roll < disarmCeiling:
		return Disarmed
	default:
		return Killed
	}
}

// Roll draws a uniform float in [0,1) from rng, the sole non-deterministic
// input to Resolve.
func Roll(rng *rand.Rand) float64 {
	return rng.Float64()
}

// ApplyStrengthLoss returns the defender's strength after a HIT, per
// spec.md §4.8 ("defender strength decreases on HIT").
func ApplyStrengthLoss(strength, weaponPower int) int {
	strength -= weaponPower
	if strength < 0 {
		strength = 0
	}
	return strength
}
