package worlddata

import (
	"fmt"
	"strings"

	"greatunderground/internal/world"
)

// topLevelWorldData is the full schema of one ADVI DATA file, mirroring the
// teacher's topLevelWorldData (internal/tqw/marshaledtypes.go) but with a
// single [[object]] table standing in for the teacher's separate
// [[npc]]/[[item]] tables, since world.Object unifies both.
type topLevelWorldData struct {
	Format  string       `toml:"format"`
	Type    string       `toml:"type"`
	World   tomlWorld    `toml:"world"`
	Rooms   []tomlRoom   `toml:"room"`
	Objects []tomlObject `toml:"object"`
}

type tomlWorld struct {
	Start string `toml:"start"`
}

type tomlExit struct {
	Direction      string `toml:"direction"`
	Dest           string `toml:"dest"`
	Description    string `toml:"description"`
	Message        string `toml:"message"`
	BlockedMessage string `toml:"blocked_message"`
	RequiresKey    string `toml:"requires_key"`
}

func (te tomlExit) toGameExit() *world.Exit {
	return &world.Exit{
		Dest:           strings.ToUpper(te.Dest),
		Description:    te.Description,
		TravelMessage:  te.Message,
		BlockedMessage: te.BlockedMessage,
		RequiresKey:    strings.ToUpper(te.RequiresKey),
	}
}

type tomlRoom struct {
	Label         string     `toml:"label"`
	Name          string     `toml:"name"`
	Description   string     `toml:"description"`
	ImplicitLight bool       `toml:"implicit_light"`
	Exits         []tomlExit `toml:"exit"`

	// Globals names objects (Location == GLOBAL) visible from this room
	// without being owned by it, e.g. scenery shared across several rooms
	// ("FOREST" trees, the "SKY"). A global object not listed here by any
	// room is loaded but never visible -- left to world-specific wiring.
	Globals []string `toml:"globals"`
}

func (tr tomlRoom) toGameRoom() *world.Room {
	r := world.NewRoom(strings.ToUpper(tr.Label), tr.Name)
	r.Description = tr.Description
	r.ImplicitLight = tr.ImplicitLight
	for _, te := range tr.Exits {
		r.Exits[strings.ToUpper(te.Direction)] = te.toGameExit()
	}
	for _, g := range tr.Globals {
		r.Globals = append(r.Globals, strings.ToUpper(g))
	}
	return r
}

// tomlProperties mirrors world.Properties' closed key set with explicit
// fields, the way the teacher gives each concern (route, dialogStep,
// pronounSet) its own struct rather than a generic map.
type tomlProperties struct {
	Capacity        int    `toml:"capacity"`
	Size            int    `toml:"size"`
	Strength        int    `toml:"strength"`
	GlowLevel       int    `toml:"glow_level"`
	LongDescription string `toml:"long_description"`
	ActionHandler   string `toml:"action_handler"`
	Value           int    `toml:"value"`
	TrophyValue     int    `toml:"trophy_value"`
	WeaponPower     int    `toml:"weapon_power"`
}

func (tp tomlProperties) apply(p world.Properties) {
	if tp.Capacity != 0 {
		p.SetInt(world.PropCapacity, tp.Capacity)
	}
	if tp.Size != 0 {
		p.SetInt(world.PropSize, tp.Size)
	}
	if tp.Strength != 0 {
		p.SetInt(world.PropStrength, tp.Strength)
	}
	if tp.GlowLevel != 0 {
		p.SetInt(world.PropGlowLevel, tp.GlowLevel)
	}
	if tp.LongDescription != "" {
		p.SetStr(world.PropLongDescription, tp.LongDescription)
	}
	if tp.ActionHandler != "" {
		p.SetStr(world.PropActionHandler, tp.ActionHandler)
	}
	if tp.Value != 0 {
		p.SetInt(world.PropValue, tp.Value)
	}
	if tp.TrophyValue != 0 {
		p.SetInt(world.PropTrophyValue, tp.TrophyValue)
	}
	if tp.WeaponPower != 0 {
		p.SetInt(world.PropWeaponPower, tp.WeaponPower)
	}
}

type tomlObject struct {
	Label        string         `toml:"label"`
	Name         string         `toml:"name"`
	Description  string         `toml:"description"`
	Synonyms     []string       `toml:"synonyms"`
	Adjectives   []string       `toml:"adjectives"`
	Start        string         `toml:"start"`
	DisplayOrder int            `toml:"display_order"`
	Flags        []string       `toml:"flags"`
	Properties   tomlProperties `toml:"properties"`
}

func (to tomlObject) toGameObject() (*world.Object, error) {
	o := world.NewObject(strings.ToUpper(to.Label), to.Name)
	o.Description = to.Description
	o.DisplayOrder = to.DisplayOrder
	for _, s := range to.Synonyms {
		o.Synonyms = append(o.Synonyms, strings.ToUpper(s))
	}
	for _, a := range to.Adjectives {
		o.Adjectives = append(o.Adjectives, strings.ToUpper(a))
	}
	for _, fname := range to.Flags {
		flag, ok := world.FlagByName(strings.ToUpper(fname))
		if !ok {
			return nil, fmt.Errorf("object %q: unknown flag %q", to.Label, fname)
		}
		o.Flags.Set(flag)
	}
	to.Properties.apply(o.Properties)

	switch strings.ToUpper(to.Start) {
	case "", "NOWHERE":
		o.Location = world.LocNowhere
	case "PLAYER":
		o.Location = world.LocPlayer
	case "GLOBAL":
		o.Location = world.LocGlobal
	default:
		o.Location = strings.ToUpper(to.Start)
	}

	return o, nil
}
