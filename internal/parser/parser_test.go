package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"greatunderground/internal/adverr"
	"greatunderground/internal/world"
)

func lampAndSword() Visible {
	lamp := world.NewObject("LAMP", "brass lantern")
	lamp.Synonyms = []string{"LANTERN", "LAMP"}
	lamp.Adjectives = []string{"BRASS"}

	sword := world.NewObject("SWORD", "elvish sword")
	sword.Synonyms = []string{"SWORD"}
	sword.Adjectives = []string{"ELVISH"}

	knife := world.NewObject("KNIFE", "rusty knife")
	knife.Synonyms = []string{"KNIFE"}
	knife.Adjectives = []string{"RUSTY"}

	knife2 := world.NewObject("KNIFE2", "shiny knife")
	knife2.Synonyms = []string{"KNIFE"}
	knife2.Adjectives = []string{"SHINY"}

	return Visible{Objects: []*world.Object{lamp, sword, knife, knife2}}
}

func Test_Parse_simpleVerbAndDirectObject(t *testing.T) {
	cmd, err := Parse("take lamp", lampAndSword())
	assert.NoError(t, err)
	assert.Equal(t, "TAKE", cmd.Verb)
	assert.Equal(t, "LAMP", cmd.DirectObject)
}

func Test_Parse_articlesAreNoise(t *testing.T) {
	cmd, err := Parse("take the brass lantern", lampAndSword())
	assert.NoError(t, err)
	assert.Equal(t, "LAMP", cmd.DirectObject)
}

func Test_Parse_leadingAliasExpansion(t *testing.T) {
	cmd, err := Parse("north", Visible{})
	assert.NoError(t, err)
	assert.Equal(t, "GO", cmd.Verb)
}

func Test_Parse_twoWordAliasExpansion(t *testing.T) {
	cmd, err := Parse("pick up lamp", lampAndSword())
	assert.NoError(t, err)
	assert.Equal(t, "TAKE", cmd.Verb)
	assert.Equal(t, "LAMP", cmd.DirectObject)
}

func Test_Parse_prepositionSplitsDirectAndIndirect(t *testing.T) {
	cmd, err := Parse("attack troll with sword", Visible{Objects: append(lampAndSword().Objects, trollObj())})
	assert.NoError(t, err)
	assert.Equal(t, "ATTACK", cmd.Verb)
	assert.Equal(t, "TROLL", cmd.DirectObject)
	assert.Equal(t, "WITH", cmd.Preposition)
	assert.Equal(t, "SWORD", cmd.IndirectObject)
}

func trollObj() *world.Object {
	troll := world.NewObject("TROLL", "troll")
	troll.Synonyms = []string{"TROLL"}
	return troll
}

func Test_Parse_adjectiveDisambiguation(t *testing.T) {
	cmd, err := Parse("take rusty knife", lampAndSword())
	assert.NoError(t, err)
	assert.Equal(t, "KNIFE", cmd.DirectObject)
}

func Test_Parse_ambiguousWithoutAdjectiveErrors(t *testing.T) {
	_, err := Parse("take knife", lampAndSword())
	assert.Error(t, err)
	assert.True(t, adverr.Is(err, adverr.KindParse))
	assert.Contains(t, adverr.GameMessage(err), "Which do you mean")
}

func Test_Parse_unknownWordErrors(t *testing.T) {
	_, err := Parse("take xyzzyplugh", lampAndSword())
	assert.Error(t, err)
	assert.True(t, adverr.Is(err, adverr.KindParse))
	assert.Contains(t, adverr.GameMessage(err), "xyzzyplugh")
}

func Test_Parse_objectNotVisibleIsParseOrReferentError(t *testing.T) {
	_, err := Parse("take lamp", Visible{})
	assert.Error(t, err)
	assert.True(t, adverr.Is(err, adverr.KindParse) || adverr.Is(err, adverr.KindReferent))
}

func Test_Parse_directionIsNotResolvedAsObject(t *testing.T) {
	cmd, err := Parse("north", Visible{})
	assert.NoError(t, err)
	assert.Equal(t, "GO", cmd.Verb)
	assert.Equal(t, "NORTH", cmd.DirectObject)
}

func Test_Parse_allKeyword(t *testing.T) {
	cmd, err := Parse("take all", lampAndSword())
	assert.NoError(t, err)
	assert.True(t, cmd.IsAll)
}

func Test_Parse_emptyLineIsParseError(t *testing.T) {
	_, err := Parse("   ", lampAndSword())
	assert.Error(t, err)
	assert.True(t, adverr.Is(err, adverr.KindParse))
}

func Test_VisibleFrom_includesInventoryRoomAndGlobals(t *testing.T) {
	room := world.NewRoom("R", "Room")
	rock := world.NewObject("ROCK", "rock")
	rock.Location = "R"
	room.Contains = []string{"ROCK"}

	sky := world.NewObject("SKY", "sky")
	sky.Location = world.LocGlobal
	room.Globals = []string{"SKY"}

	lamp := world.NewObject("LAMP", "lamp")
	lamp.Location = world.LocPlayer

	player := world.NewObject(world.LocPlayer, "you")
	player.Contains = []string{"LAMP"}

	st, err := world.New(
		map[string]*world.Room{"R": room},
		map[string]*world.Object{"ROCK": rock, "SKY": sky, "LAMP": lamp, world.LocPlayer: player},
		"R", 1)
	assert.NoError(t, err)

	vis := VisibleFrom(st, nil)
	assert.Len(t, vis.Objects, 3)
}

func Test_Parse_saveTakesFreeFormLabel(t *testing.T) {
	cmd, err := Parse("save mygame", lampAndSword())
	assert.NoError(t, err)
	assert.Equal(t, "SAVE", cmd.Verb)
	assert.Equal(t, "MYGAME", cmd.RawDirect, "label text is preserved, not resolved as an object")
	assert.Empty(t, cmd.DirectObject)
}

func Test_Parse_restoreWithNoLabel(t *testing.T) {
	cmd, err := Parse("restore", lampAndSword())
	assert.NoError(t, err)
	assert.Equal(t, "RESTORE", cmd.Verb)
	assert.Empty(t, cmd.RawDirect)
}

func Test_Parse_pronounResolvesToReferent(t *testing.T) {
	vis := lampAndSword()
	vis.Referent = "LAMP"
	cmd, err := Parse("take it", vis)
	assert.NoError(t, err)
	assert.Equal(t, "LAMP", cmd.DirectObject)
}

func Test_Parse_pronounWithNoReferentErrors(t *testing.T) {
	_, err := Parse("take it", lampAndSword())
	assert.Error(t, err)
	assert.True(t, adverr.Is(err, adverr.KindParse))
	assert.Contains(t, adverr.GameMessage(err), "don't know what you're referring to")
}

func Test_VisibleFrom_populatesReferentFromFeedback(t *testing.T) {
	room := world.NewRoom("R", "Room")
	player := world.NewObject(world.LocPlayer, "you")
	st, err := world.New(
		map[string]*world.Room{"R": room},
		map[string]*world.Object{world.LocPlayer: player},
		"R", 1)
	assert.NoError(t, err)

	fb := NewFeedback()
	fb.LastReferent = "LAMP"
	vis := VisibleFrom(st, fb)
	assert.Equal(t, "LAMP", vis.Referent)
}

func Test_Feedback_UpdateReferent_tracksDirectObject(t *testing.T) {
	fb := NewFeedback()
	fb.UpdateReferent(Command{Verb: "TAKE", DirectObject: "LAMP"})
	assert.Equal(t, "LAMP", fb.LastReferent)

	fb.UpdateReferent(Command{Verb: "GO", DirectObject: "NORTH"})
	assert.Equal(t, "LAMP", fb.LastReferent, "GO's direction word is never an antecedent")

	fb.UpdateReferent(Command{Verb: "INVENTORY"})
	assert.Equal(t, "LAMP", fb.LastReferent, "a command with no direct object leaves the antecedent untouched")

	fb.UpdateReferent(Command{Verb: "TAKE", DirectObject: "SWORD"})
	assert.Equal(t, "SWORD", fb.LastReferent)
}
