package world

import "fmt"

// PropKey is a closed enumeration of the typed properties an Object's
// property bag may hold. This replaces the teacher's ad-hoc struct fields
// (Item/NPC have fixed Go fields for each concern) with a single typed map,
// since spec.md's object model needs a property bag whose members vary by
// object (only treasures have Value/TrophyValue, only containers have
// Capacity, etc) rather than a fixed struct with mostly-empty fields.
type PropKey int

const (
	// PropCapacity is the max total Size of objects a Container may hold.
	PropCapacity PropKey = iota
	// PropSize is how much of a container's capacity (or the player's
	// inventory limit) an object consumes.
	PropSize
	// PropStrength is an actor's remaining combat strength.
	PropStrength
	// PropGlowLevel is the sword's current glow level (0, 1, or 2).
	PropGlowLevel
	// PropLongDescription overrides the default long description text shown
	// by EXAMINE/LOOK when present.
	PropLongDescription
	// PropActionHandler names a custom verb handler key consulted before
	// falling back to default handling (e.g. a TRY-TAKE gate, or WAVE
	// SCEPTRE's scripted effect).
	PropActionHandler
	// PropValue is a treasure's base score-on-first-take value.
	PropValue
	// PropTrophyValue is a treasure's additional value while in the trophy
	// case.
	PropTrophyValue
	// PropWeaponPower is a weapon's effectiveness rating in combat (§4.8).
	PropWeaponPower
)

// propValue is a tagged union holding either an int or a string. Only one of
// the two is meaningful, distinguished by isStr.
type propValue struct {
	i     int
	s     string
	isStr bool
}

// Properties is an Object's typed property bag, keyed by the closed PropKey
// enumeration. Accessors return (value, ok) pairs in the style of a map
// lookup rather than panicking or silently returning zero values for absent
// keys, which is what spec.md's Design Notes call for ("accessors returning
// option types").
type Properties map[PropKey]propValue

// NewProperties returns an empty property bag.
func NewProperties() Properties {
	return Properties{}
}

// SetInt sets an integer-valued property.
func (p Properties) SetInt(key PropKey, v int) {
	p[key] = propValue{i: v}
}

// SetStr sets a string-valued property.
func (p Properties) SetStr(key PropKey, v string) {
	p[key] = propValue{s: v, isStr: true}
}

// Int returns the integer value of key and whether it was present and
// integer-typed.
func (p Properties) Int(key PropKey) (int, bool) {
	v, ok := p[key]
	if !ok || v.isStr {
		return 0, false
	}
	return v.i, true
}

// IntOr returns the integer value of key, or def if absent/non-integer.
func (p Properties) IntOr(key PropKey, def int) int {
	if v, ok := p.Int(key); ok {
		return v
	}
	return def
}

// Str returns the string value of key and whether it was present and
// string-typed.
func (p Properties) Str(key PropKey) (string, bool) {
	v, ok := p[key]
	if !ok || !v.isStr {
		return "", false
	}
	return v.s, true
}

// StrOr returns the string value of key, or def if absent/non-string.
func (p Properties) StrOr(key PropKey, def string) string {
	if v, ok := p.Str(key); ok {
		return v
	}
	return def
}

// Has reports whether key is set, regardless of type.
func (p Properties) Has(key PropKey) bool {
	_, ok := p[key]
	return ok
}

// Copy returns a shallow copy of p.
func (p Properties) Copy() Properties {
	cp := make(Properties, len(p))
	for k, v := range p {
		cp[k] = v
	}
	return cp
}

func (k PropKey) String() string {
	switch k {
	case PropCapacity:
		return "CAPACITY"
	case PropSize:
		return "SIZE"
	case PropStrength:
		return "STRENGTH"
	case PropGlowLevel:
		return "GLOW-LEVEL"
	case PropLongDescription:
		return "LONG-DESCRIPTION"
	case PropActionHandler:
		return "ACTION-HANDLER"
	case PropValue:
		return "VALUE"
	case PropTrophyValue:
		return "TROPHY-VALUE"
	case PropWeaponPower:
		return "WEAPON-POWER"
	default:
		return fmt.Sprintf("PropKey(%d)", int(k))
	}
}
