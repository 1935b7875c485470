package world

import "fmt"

// Flag is a boolean property drawn from a closed set, attached to an Object.
// Flags are the closed enumeration spec.md calls for rather than ad-hoc
// string tags, mirroring how the teacher keeps RouteAction/DialogAction as
// small closed int enums (internal/game/route.go, internal/game/dialog.go)
// instead of strings sprinkled through the engine.
type Flag int

const (
	// Takeable marks an object the player may TAKE into inventory.
	Takeable Flag = iota
	// Container marks an object that can hold other objects.
	Container
	// Openable marks a container (or door) that has an open/closed state.
	Openable
	// Open is the current open/closed state of an Openable object.
	Open
	// LightSource marks an object capable of producing light when Lit.
	LightSource
	// Lit is the current on/off state of a LightSource.
	Lit
	// VisibleAlways marks an object visible regardless of container state,
	// e.g. scenery embedded in a room description.
	VisibleAlways
	// Invisible marks an object that should never appear in listings or be
	// addressable by name, even if otherwise present (used for the sword
	// glow daemon's actor detection and for scripted reveals).
	Invisible
	// Actor marks an object with NPC behavior, see package actor.
	Actor
	// Weapon marks an object usable as the instrument of ATTACK/KILL.
	Weapon
	// Fighting marks an actor currently engaged in combat with the player.
	Fighting
	// Scenery marks a non-takeable object, frequently shared across rooms
	// via global-object references.
	Scenery
	// BurnedOut marks a light source that has permanently run out of fuel.
	BurnedOut
	// TryTake marks an object TAKE accepts even without TAKEABLE; no custom
	// action handler is run for it.
	TryTake
	// Treasure marks an object that contributes to score per §4.9/§4.10.
	Treasure
)

var flagNames = map[Flag]string{
	Takeable:      "TAKEABLE",
	Container:     "CONTAINER",
	Openable:      "OPENABLE",
	Open:          "OPEN",
	LightSource:   "LIGHT-SOURCE",
	Lit:           "LIT",
	VisibleAlways: "VISIBLE-ALWAYS",
	Invisible:     "INVISIBLE",
	Actor:         "ACTOR",
	Weapon:        "WEAPON",
	Fighting:      "FIGHTING",
	Scenery:       "SCENERY",
	BurnedOut:     "BURNED-OUT",
	TryTake:       "TRY-TAKE",
	Treasure:      "TREASURE",
}

var flagsByName = func() map[string]Flag {
	m := make(map[string]Flag, len(flagNames))
	for f, n := range flagNames {
		m[n] = f
	}
	return m
}()

func (f Flag) String() string {
	if n, ok := flagNames[f]; ok {
		return n
	}
	return fmt.Sprintf("Flag(%d)", int(f))
}

// FlagByName looks up a Flag by its canonical uppercase name, as used in TOML
// world data. ok is false if name is not a known flag.
func FlagByName(name string) (f Flag, ok bool) {
	f, ok = flagsByName[name]
	return
}

// FlagSet is the set of flags currently set on an Object.
type FlagSet map[Flag]bool

// Has reports whether f is set.
func (fs FlagSet) Has(f Flag) bool {
	return fs[f]
}

// Set turns on f.
func (fs FlagSet) Set(f Flag) {
	fs[f] = true
}

// Clear turns off f.
func (fs FlagSet) Clear(f Flag) {
	delete(fs, f)
}

// Copy returns a shallow copy of fs.
func (fs FlagSet) Copy() FlagSet {
	cp := make(FlagSet, len(fs))
	for k, v := range fs {
		cp[k] = v
	}
	return cp
}
