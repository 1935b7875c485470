// Package parser turns lexer tokens plus a snapshot of currently visible
// objects into a parsed Command, generalizing the teacher's switch-based
// ParseCommand (internal/game/parser.go, internal/command/parse.go) from a
// fixed per-verb argument shape into full noun-phrase resolution with
// adjective disambiguation, pronouns, and "all", per spec.md §4.2. The
// parser is pure: it never mutates world state, only reads the supplied
// visible-object snapshot.
package parser

import (
	"fmt"
	"strings"

	"greatunderground/internal/adverr"
	"greatunderground/internal/lexer"
	"greatunderground/internal/vocab"
	"greatunderground/internal/world"
)

// Command is the parser's output: a canonical verb plus resolved direct/
// indirect objects and the preposition connecting them, per spec.md §4.2.
type Command struct {
	Verb           string
	DirectObject   string // resolved Object ID, or "" if none
	Preposition    string
	IndirectObject string // resolved Object ID, or "" if none
	IsAll          bool
	Modifiers      []string // leftover words neither verb nor resolved noun phrase

	// RawDirect/RawIndirect retain the noun phrase words (uppercased).
	// Verbs whose argument is free text rather than an object read
	// RawDirect: the SAVE/RESTORE label and the SAY word.
	RawDirect   string
	RawIndirect string
}

// Visible is the snapshot of objects the parser may resolve noun phrases
// against: inventory, objects in the current room, and room-global
// scenery, per spec.md §4.2's definition. Referent is the object id a bare
// pronoun ("it"/"him"/"her"/"them") resolves to, supplied by the caller
// from Feedback.LastReferent.
type Visible struct {
	Objects  []*world.Object
	Referent string
}

// VisibleFrom builds a Visible snapshot from world state: the player's
// inventory, the current room's direct contents, its global scenery, and
// fb's last-referred object (if any) for pronoun resolution.
func VisibleFrom(st *world.State, fb *Feedback) Visible {
	var v Visible
	add := func(ids []string) {
		for _, id := range ids {
			if obj := st.Objects[id]; obj != nil {
				v.Objects = append(v.Objects, obj)
			}
		}
	}
	add(st.Inventory())
	if room := st.Room(); room != nil {
		add(room.Contains)
		add(room.Globals)
	}
	if fb != nil {
		v.Referent = fb.LastReferent
	}
	return v
}

// Feedback is the small per-session state spec.md §4.3 requires for OOPS
// and AGAIN: the last successful command line, the last failed line, and
// the byte offset of the first unknown word in that failed line (-1 if
// none).
type Feedback struct {
	LastGoodLine      string
	LastBadLine       string
	LastUnknownOffset int
	LastReferent      string // pronoun antecedent ("it"/"him"/"her"/"them")

	// LastLineFailed records whether the most recently processed line (of
	// either kind above) failed, since AGAIN refuses to repeat a mistake
	// even when an earlier line succeeded.
	LastLineFailed bool
}

// NewFeedback returns a zeroed Feedback with no recorded history.
func NewFeedback() *Feedback {
	return &Feedback{LastUnknownOffset: -1}
}

// labelArgVerbs are verbs whose argument is free-form text (a save-slot
// label, or the word spoken by SAY) rather than the name of a visible object.
var labelArgVerbs = map[string]bool{
	"SAVE":    true,
	"RESTORE": true,
	"SAY":     true,
}

// Parse tokenizes and parses line against vis, returning a Command or an
// adverr (KindParse, or KindReferent when a noun phrase matches nothing
// visible). It does not consult or update Feedback -- callers
// handle OOPS/AGAIN themselves via ResolveFeedbackLine before calling
// Parse, since those are line-rewriting concerns, not grammar concerns.
func Parse(line string, vis Visible) (Command, error) {
	tokens := lexer.Lex(line)
	words := lexer.Words(tokens)

	if len(words) == 0 {
		return Command{}, adverr.New(adverr.KindParse, "I beg your pardon?")
	}

	words = expandLeadingAlias(words)

	verb := words[0]
	rest := words[1:]

	// SAVE/RESTORE take a free-form save-slot label, and SAY a free-form
	// word, rather than a noun phrase resolved against visible objects -- a
	// label like "mygame" or a word like "ulysses" would otherwise fail as an
	// unknown word or an unseen object.
	if labelArgVerbs[verb] {
		return Command{Verb: verb, RawDirect: strings.Join(rest, " ")}, nil
	}

	if unknownIdx := firstUnknownWord(rest, vis); unknownIdx >= 0 {
		word := rest[unknownIdx]
		return Command{}, adverr.Newf(adverr.KindParse, "I don't know the word %q.", strings.ToLower(word))
	}

	cmd := Command{Verb: verb}

	rest = stripArticles(rest)

	directWords, prep, indirectWords := splitOnPreposition(rest)

	if all(directWords) {
		cmd.IsAll = true
	} else if len(directWords) == 1 && vocab.Directions[directWords[0]] {
		// A bare direction word ("NORTH", "UP") is not an object reference;
		// GO's handler consults it directly against the room's exits.
		cmd.DirectObject = directWords[0]
		cmd.RawDirect = directWords[0]
	} else if len(directWords) > 0 {
		id, err := resolveNounPhrase(directWords, vis)
		if err != nil {
			return Command{}, err
		}
		cmd.DirectObject = id
		cmd.RawDirect = strings.Join(directWords, " ")
	}

	if prep != "" {
		cmd.Preposition = prep
		if len(indirectWords) > 0 {
			id, err := resolveNounPhrase(indirectWords, vis)
			if err != nil {
				return Command{}, err
			}
			cmd.IndirectObject = id
			cmd.RawIndirect = strings.Join(indirectWords, " ")
		}
	}

	return cmd, nil
}

// expandLeadingAlias expands a leading shorthand verb (up to two words,
// matching the teacher's ExpandAliases(tokens, 2)) to its canonical form,
// splicing the expansion's words back into the token stream in place of
// the shorthand.
func expandLeadingAlias(words []string) []string {
	if len(words) >= 2 {
		twoWord := words[0] + " " + words[1]
		if expansion, ok := vocab.ExpandAlias(twoWord); ok {
			return append(strings.Fields(expansion), words[2:]...)
		}
	}
	if expansion, ok := vocab.ExpandAlias(words[0]); ok {
		return append(strings.Fields(expansion), words[1:]...)
	}
	return words
}

// firstUnknownWord returns the index of the first word in words that is
// neither a recognized vocabulary word (preposition/article/conjunction/
// direction/pronoun/meta) nor the name of a visible object, or -1 if every
// word resolves to something. "all"/"everything" are always known.
func firstUnknownWord(words []string, vis Visible) int {
	for i, w := range words {
		if vocab.KindOf(w) != vocab.KindUnknown {
			continue
		}
		if vocab.AllWords[w] {
			continue
		}
		if matchesAnyVisible(w, vis) {
			continue
		}
		return i
	}
	return -1
}

func matchesAnyVisible(word string, vis Visible) bool {
	for _, obj := range vis.Objects {
		if obj.MatchesWord(word) || obj.MatchesAdjective(word) {
			return true
		}
	}
	return false
}

func stripArticles(words []string) []string {
	var out []string
	for _, w := range words {
		if vocab.Articles[w] {
			continue
		}
		out = append(out, w)
	}
	return out
}

func all(words []string) bool {
	if len(words) != 1 {
		return false
	}
	return vocab.AllWords[words[0]]
}

// splitOnPreposition finds the first preposition word in words and splits
// it into (before, preposition, after).
func splitOnPreposition(words []string) (before []string, prep string, after []string) {
	for i, w := range words {
		if vocab.Prepositions[w] {
			return words[:i], w, words[i+1:]
		}
	}
	return words, "", nil
}

// resolveNounPhrase matches a noun phrase (adjectives followed by a noun,
// in any order the teacher's grammar tolerates) against vis, using
// adjectives to disambiguate. Returns a ReferentError-kind adverr if
// nothing matches, or a ParseError-kind ambiguity error listing candidates
// by their article-form names if more than one remains after filtering.
func resolveNounPhrase(words []string, vis Visible) (string, error) {
	if len(words) == 0 {
		return "", nil
	}

	if vocab.Pronouns[words[0]] {
		if vis.Referent == "" {
			return "", adverr.New(adverr.KindParse, "I don't know what you're referring to.")
		}
		return vis.Referent, nil
	}

	var candidates []*world.Object
	for _, obj := range vis.Objects {
		matchesAll := true
		for _, w := range words {
			if !obj.MatchesWord(w) && !obj.MatchesAdjective(w) {
				matchesAll = false
				break
			}
		}
		if matchesAll {
			candidates = append(candidates, obj)
		}
	}

	switch len(candidates) {
	case 0:
		return "", adverr.Newf(adverr.KindReferent, "You can't see any %s here.", strings.ToLower(strings.Join(words, " ")))
	case 1:
		return candidates[0].ID, nil
	default:
		return "", ambiguityError(candidates)
	}
}

func ambiguityError(candidates []*world.Object) error {
	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.ArticleName()
	}
	return adverr.New(adverr.KindParse, fmt.Sprintf("Which do you mean: %s?", strings.Join(names, ", ")))
}
