package world

import "greatunderground/internal/util"

// Well-known global variable names, per spec.md §3. Globals beyond this set
// may be introduced freely by world data (e.g. per-room one-shot flags) --
// the Globals bag is intentionally open, the way the teacher's TOML-loaded
// flag table (internal/tqw's `flag` records) is open to whatever the world
// data defines.
const (
	GLampFuel       = "LAMP_FUEL"
	GLampStageIndex = "LAMP_STAGE_INDEX"
	GTrollFlag      = "TROLL_FLAG"
	GCyclopsFlag    = "CYCLOPS_FLAG"
	GWonFlag        = "WON_FLAG"
	GDeaths         = "DEATHS"

	GScoredActions         = "SCORED_ACTIONS"
	GValueScoredTreasures  = "VALUE_SCORED_TREASURES"
)

// Globals holds the world's named global variables: the ints, bools, and
// sets spec.md §3 lists. A plain bag rather than fixed struct fields, since
// world data is free to add more of any kind.
type Globals struct {
	Ints  map[string]int
	Bools map[string]bool
	Sets  map[string]util.StringSet
}

// NewGlobals returns an initialized, empty Globals.
func NewGlobals() Globals {
	return Globals{
		Ints:  map[string]int{},
		Bools: map[string]bool{},
		Sets:  map[string]util.StringSet{},
	}
}

// Int returns the current value of the named int global (0 if unset).
func (g Globals) Int(name string) int {
	return g.Ints[name]
}

// SetInt sets the named int global.
func (g Globals) SetInt(name string, v int) {
	g.Ints[name] = v
}

// Bool returns the current value of the named bool global (false if unset).
func (g Globals) Bool(name string) bool {
	return g.Bools[name]
}

// SetBool sets the named bool global.
func (g Globals) SetBool(name string, v bool) {
	g.Bools[name] = v
}

// Set returns the named set global, creating it empty on first access so
// callers never need a nil check.
func (g Globals) Set(name string) util.StringSet {
	s, ok := g.Sets[name]
	if !ok {
		s = util.NewStringSet()
		g.Sets[name] = s
	}
	return s
}

// Copy returns a deep copy of g.
func (g Globals) Copy() Globals {
	cp := NewGlobals()
	for k, v := range g.Ints {
		cp.Ints[k] = v
	}
	for k, v := range g.Bools {
		cp.Bools[k] = v
	}
	for k, v := range g.Sets {
		cp.Sets[k] = v.Copy()
	}
	return cp
}
