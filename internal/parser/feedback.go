package parser

import (
	"strings"
	"unicode"

	"greatunderground/internal/adverr"
	"greatunderground/internal/lexer"
)

// ResolveFeedbackLine rewrites line if it is an OOPS or AGAIN meta-command,
// per spec.md §4.3, returning the line that should actually be parsed and
// executed. Lines that are neither pass through unchanged. Callers are
// expected to call this before Parse, and to call Feedback.RecordOutcome
// after the resolved line has been parsed and executed, so the next
// OOPS/AGAIN has accurate history.
func ResolveFeedbackLine(line string, fb *Feedback) (string, error) {
	tokens := lexer.Lex(line)
	if len(tokens) == 0 {
		return line, nil
	}

	switch tokens[0].Text {
	case "AGAIN", "G":
		if fb.LastLineFailed {
			return "", adverr.New(adverr.KindParse, "That would just repeat a mistake.")
		}
		if fb.LastGoodLine == "" {
			return "", adverr.New(adverr.KindParse, "Beg pardon?")
		}
		return fb.LastGoodLine, nil

	case "OOPS":
		if len(tokens) < 2 || fb.LastBadLine == "" || fb.LastUnknownOffset < 0 {
			return "", adverr.New(adverr.KindParse, "There was no word to replace!")
		}
		return replaceWordAtOffset(fb.LastBadLine, fb.LastUnknownOffset, tokens[1].Raw), nil
	}

	return line, nil
}

// UnknownWordOffset returns the byte offset of the first unknown word in
// line's noun-phrase words (everything after the verb), or -1 if there is
// none. Used to populate Feedback.LastUnknownOffset for a later OOPS.
//
// This checks tokens as lexed, without running alias expansion first, so a
// leading shorthand verb that only expands via ExpandAlias won't shift the
// reported offset -- an acceptable simplification, since the words OOPS
// replaces are almost always in the noun phrase, not the verb position.
func UnknownWordOffset(line string, vis Visible) int {
	tokens := lexer.Lex(line)
	if len(tokens) < 2 {
		return -1
	}
	rest := tokens[1:]
	words := make([]string, len(rest))
	for i, t := range rest {
		words[i] = t.Text
	}
	if idx := firstUnknownWord(words, vis); idx >= 0 {
		return rest[idx].Offset
	}
	return -1
}

// replaceWordAtOffset replaces the whitespace-delimited word starting at
// the given byte offset in line with replacement.
func replaceWordAtOffset(line string, offset int, replacement string) string {
	if offset < 0 || offset > len(line) {
		return line
	}
	end := len(line)
	if idx := strings.IndexFunc(line[offset:], unicode.IsSpace); idx >= 0 {
		end = offset + idx
	}
	return line[:offset] + replacement + line[end:]
}

// UpdateReferent records cmd's direct object as the pronoun antecedent for
// a later "it"/"him"/"her"/"them", per spec.md §4.2. GO's DirectObject
// holds a bare direction word rather than an object id, so GO never
// updates the referent; a command with no direct object leaves the
// existing antecedent untouched, the same way real Zork keeps pointing at
// whatever was last named.
func (fb *Feedback) UpdateReferent(cmd Command) {
	if cmd.Verb == "GO" || cmd.DirectObject == "" {
		return
	}
	fb.LastReferent = cmd.DirectObject
}

// RecordOutcome updates fb after resolvedLine has been fully parsed and
// executed, so the next AGAIN/OOPS has the right history. unknownOffset is
// the offset UnknownWordOffset reported for this line, or -1 if the
// failure (if any) wasn't an unknown-word failure.
func (fb *Feedback) RecordOutcome(resolvedLine string, err error, unknownOffset int) {
	if err != nil {
		fb.LastBadLine = resolvedLine
		fb.LastLineFailed = true
		fb.LastUnknownOffset = unknownOffset
		return
	}
	fb.LastGoodLine = resolvedLine
	fb.LastLineFailed = false
}
