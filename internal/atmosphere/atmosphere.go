// Package atmosphere implements the seeded ambient-message generator of
// spec.md §4.10: per-category, per-turn draws that occasionally append
// flavor text, suppressed in testing mode.
package atmosphere

// Category groups ambient messages by the kind of room they're eligible in
// (forest, underground, etc.), since spec.md ties messages to room
// category.
type Category string

// Message is one ambient line with its own independent trigger chance.
type Message struct {
	Category Category
	Text     string
	// Chance is the probability (0..1) this message is appended on a turn
	// where its category is eligible.
	Chance float64
}

// Generator draws ambient messages against a seeded RNG, independent of the
// world's own RNG so atmosphere doesn't perturb combat/thief rolls.
type Generator struct {
	rng      *lcg
	messages []Message
	suppress bool
}

// New returns a Generator seeded with seed and the given message catalog.
func New(seed int64, messages []Message) *Generator {
	return &Generator{
		rng:      newLCG(seed),
		messages: messages,
	}
}

// SetSuppressed enables or disables atmosphere entirely (testing mode or an
// explicit suppression request).
func (g *Generator) SetSuppressed(suppress bool) {
	g.suppress = suppress
}

// Suppressed reports whether atmosphere is currently suppressed.
func (g *Generator) Suppressed() bool {
	return g.suppress
}

// Draw returns the ambient message text to append this turn for the given
// category, or "" if none triggers (or atmosphere is suppressed). Each
// eligible message is checked in catalog order; the first that triggers is
// returned, so at most one ambient line appears per turn.
func (g *Generator) Draw(category Category) string {
	if g.suppress {
		return ""
	}
	for _, m := range g.messages {
		if m.Category != category {
			continue
		}
		if g.rng.next() < m.Chance {
			return m.Text
		}
	}
	return ""
}
