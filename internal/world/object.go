package world

import (
	"fmt"
	"sort"
	"strings"
)

// Sentinel location values. An Object's Location is always one of: a Room ID,
// another Object's ID, LocPlayer, LocNowhere (out of play), or LocGlobal
// (global scenery, referenced by rooms but owned by none of them).
const (
	LocPlayer  = "PLAYER"
	LocNowhere = ""
	LocGlobal  = "GLOBAL"
)

// Object is anything in the world with an identity: rooms' contents, the
// player, NPCs, scenery, treasures. It generalizes the teacher's separate
// Item/NPC structs (internal/game/item.go, internal/game/npc.go) into one
// polymorphic type carrying a FlagSet and Properties bag, per spec.md's data
// model and per the Design Notes call to replace mutable type-assertions
// with a single tagged representation.
type Object struct {
	// ID is the unique, uppercase identifier for this object. Comparable to
	// the teacher's Item.Label/NPC.Label.
	ID string

	// Name is the short display name ("brass lantern").
	Name string

	// Synonyms are nouns this object can be referred to by, not including
	// Name itself unless repeated there explicitly.
	Synonyms []string

	// Adjectives disambiguate between objects sharing a synonym ("brass" in
	// "brass lantern" vs "rusty" in "rusty knife").
	Adjectives []string

	// Description is the long description shown by EXAMINE/LOOK, absent a
	// PropLongDescription override.
	Description string

	// Location is where this object currently is: a Room ID, another
	// Object's ID (if contained), LocPlayer, LocNowhere, or LocGlobal.
	Location string

	// DisplayOrder controls listing order within a room (§4.4 "Object
	// listing order"); zero means "unordered", see world.OrderObjects.
	DisplayOrder int

	// Contains lists the IDs of objects directly held by this object, in
	// insertion order. Only meaningful when Flags.Has(Container); also used
	// as the player's inventory list when this Object is the player.
	Contains []string

	Flags      FlagSet
	Properties Properties
}

// NewObject returns an Object with initialized Flags/Properties maps.
func NewObject(id, name string) *Object {
	return &Object{
		ID:         id,
		Name:       name,
		Flags:      FlagSet{},
		Properties: NewProperties(),
	}
}

// IsLiveLightSource reports whether this object is currently producing
// light: it must have LightSource and Lit set, and must not be BurnedOut
// (spec.md §3 invariant).
func (o *Object) IsLiveLightSource() bool {
	return o.Flags.Has(LightSource) && o.Flags.Has(Lit) && !o.Flags.Has(BurnedOut)
}

// MatchesWord reports whether word (expected uppercase, singular) refers to
// this object either as a synonym or as its own ID.
func (o *Object) MatchesWord(word string) bool {
	if strings.EqualFold(o.ID, word) {
		return true
	}
	for _, syn := range o.Synonyms {
		if strings.EqualFold(syn, word) {
			return true
		}
	}
	return false
}

// MatchesAdjective reports whether adj is one of this object's adjectives.
func (o *Object) MatchesAdjective(adj string) bool {
	for _, a := range o.Adjectives {
		if strings.EqualFold(a, adj) {
			return true
		}
	}
	return false
}

// ArticleName returns the display name prefixed with "a"/"an", used when the
// parser lists ambiguous candidates (spec.md §4.2).
func (o *Object) ArticleName() string {
	if o.Name == "" {
		return o.ID
	}
	first := strings.ToLower(o.Name)[0]
	article := "a"
	if strings.ContainsRune("aeiou", rune(first)) {
		article = "an"
	}
	return article + " " + o.Name
}

func (o *Object) String() string {
	var flagNames []string
	for f := range o.Flags {
		flagNames = append(flagNames, f.String())
	}
	sort.Strings(flagNames)
	return fmt.Sprintf("Object<%s %q @%s flags=%s>", o.ID, o.Name, o.Location, strings.Join(flagNames, ","))
}

// Copy returns a deep copy of o.
func (o *Object) Copy() *Object {
	cp := &Object{
		ID:           o.ID,
		Name:         o.Name,
		Description:  o.Description,
		Location:     o.Location,
		DisplayOrder: o.DisplayOrder,
		Synonyms:     append([]string(nil), o.Synonyms...),
		Adjectives:   append([]string(nil), o.Adjectives...),
		Contains:     append([]string(nil), o.Contains...),
		Flags:        o.Flags.Copy(),
		Properties:   o.Properties.Copy(),
	}
	return cp
}

// RemoveContained removes id from o.Contains, if present.
func (o *Object) RemoveContained(id string) {
	for i, cid := range o.Contains {
		if cid == id {
			o.Contains = append(o.Contains[:i], o.Contains[i+1:]...)
			return
		}
	}
}
