// Package vocab holds the word-to-token-kind table the lexer and parser
// consult: verb aliases/abbreviations, prepositions, directions, and
// noun-phrase connective words, generalizing the teacher's fixed
// VerbAliases map (internal/command/parse.go) to the full closed kind
// taxonomy a natural-language object-and-verb grammar needs.
package vocab

// Kind classifies a single word for the lexer/parser.
type Kind int

const (
	KindUnknown Kind = iota
	KindVerb
	KindDirection
	KindPreposition
	KindArticle
	KindConjunction
	KindNoun
	KindAdjective
	KindPronoun
	KindNumber
	KindMeta // DEBUG, AGAIN, OOPS, etc.
)

func (k Kind) String() string {
	switch k {
	case KindVerb:
		return "VERB"
	case KindDirection:
		return "DIRECTION"
	case KindPreposition:
		return "PREPOSITION"
	case KindArticle:
		return "ARTICLE"
	case KindConjunction:
		return "CONJUNCTION"
	case KindNoun:
		return "NOUN"
	case KindAdjective:
		return "ADJECTIVE"
	case KindPronoun:
		return "PRONOUN"
	case KindNumber:
		return "NUMBER"
	case KindMeta:
		return "META"
	default:
		return "UNKNOWN"
	}
}

// Pronouns are resolved by the parser against a last-referred object
// pointer kept by the executor (spec.md §4.2), not by the static table
// alone.
var Pronouns = map[string]bool{
	"IT":   true,
	"HIM":  true,
	"HER":  true,
	"THEM": true,
}

// AllWords are the "everything" synonyms the parser expands to the full
// visible-object snapshot.
var AllWords = map[string]bool{
	"ALL":        true,
	"EVERYTHING": true,
}

// VerbAliases maps shorthand or alternate verb spellings to their canonical
// multi-word form, up to two words, exactly the shape of the teacher's
// VerbAliases map (internal/command/parse.go), extended with the Zork-
// specific shorthand spec.md's scenarios use.
var VerbAliases = map[string]string{
	"NORTH":    "GO NORTH",
	"SOUTH":    "GO SOUTH",
	"EAST":     "GO EAST",
	"WEST":     "GO WEST",
	"NE":       "GO NORTHEAST",
	"NW":       "GO NORTHWEST",
	"SE":       "GO SOUTHEAST",
	"SW":       "GO SOUTHWEST",
	"UP":       "GO UP",
	"DOWN":     "GO DOWN",
	"U":        "GO UP",
	"D":        "GO DOWN",
	"IN":       "GO IN",
	"OUT":      "GO OUT",
	"ENTER":    "GO IN",
	"EXIT":     "GO OUT",
	"WALK":     "GO",
	"L":        "LOOK",
	"X":        "EXAMINE",
	"GET":      "TAKE",
	"PICK":     "TAKE",
	"PICK UP":  "TAKE",
	"PUT DOWN": "DROP",
	"I":        "INVENTORY",
	"INVEN":    "INVENTORY",
	"Z":        "WAIT",
	"V":        "VERBOSE",
	"Q":        "QUIT",
	"G":        "AGAIN",
	"?":        "HELP",
}

// Prepositions are the connective words the parser strips or uses to
// segment a noun phrase from an instrument phrase ("put X IN Y", "attack X
// WITH Y"), per the teacher's ReservedWords list (internal/command/
// parse.go), pared to the set this grammar's verb families actually use.
var Prepositions = map[string]bool{
	"TO":      true,
	"THROUGH": true,
	"INTO":    true,
	"FROM":    true,
	"ON":      true,
	"OFF":     true,
	"IN":      true,
	"WITH":    true,
	"AT":      true,
}

// Articles are dropped from noun phrases before matching against object
// synonyms/adjectives.
var Articles = map[string]bool{
	"A":   true,
	"AN":  true,
	"THE": true,
}

// Conjunctions separate multiple noun phrases in a single command (TAKE
// LAMP AND SWORD).
var Conjunctions = map[string]bool{
	"AND": true,
}

// Directions are the movement words GO accepts as a recipient, independent
// of which alias expanded to GO.
var Directions = map[string]bool{
	"NORTH": true, "SOUTH": true, "EAST": true, "WEST": true,
	"NORTHEAST": true, "NORTHWEST": true, "SOUTHEAST": true, "SOUTHWEST": true,
	"UP": true, "DOWN": true, "IN": true, "OUT": true,
}

// MetaWords are recognized regardless of world state: OOPS/AGAIN feedback
// commands and the DEBUG family (spec.md's supplemented features).
var MetaWords = map[string]bool{
	"AGAIN": true,
	"OOPS":  true,
	"DEBUG": true,
}

// ExpandAlias returns the canonical expansion for word if one is
// registered, or ("", false) otherwise. Mirrors the teacher's ExpandAliases
// but operates one word at a time so the lexer can call it inline.
func ExpandAlias(word string) (string, bool) {
	expansion, ok := VerbAliases[word]
	return expansion, ok
}

// KindOf classifies a single uppercase word using the static tables above.
// It does not consult world data (synonyms/adjectives are object-specific
// and resolved by the parser against a visible-object snapshot instead).
func KindOf(word string) Kind {
	switch {
	case Prepositions[word]:
		return KindPreposition
	case Articles[word]:
		return KindArticle
	case Conjunctions[word]:
		return KindConjunction
	case Directions[word]:
		return KindDirection
	case Pronouns[word]:
		return KindPronoun
	case MetaWords[word]:
		return KindMeta
	default:
		return KindUnknown
	}
}
