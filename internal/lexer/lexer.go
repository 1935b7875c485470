// Package lexer turns a raw command line into a sequence of position-
// tracked, case-normalized tokens, generalizing the teacher's inline
// strings.ToUpper/strings.Fields tokenization (internal/command/parse.go)
// into its own stage so the parser can work purely in terms of tokens
// rather than re-splitting strings.
package lexer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Token is one word from the input line, normalized to uppercase, with its
// original byte offset retained for error messages that point back at the
// player's input.
type Token struct {
	Text   string // normalized (uppercase) form
	Raw    string // as the player typed it
	Offset int    // byte offset of Raw within the original line
}

var upper = cases.Upper(language.English)

// stripPunctuation removes characters a command line tolerates but the
// vocabulary never needs to see: trailing periods, commas, and the like.
// Apostrophes are kept (contractions appear in object names like
// "thief's").
func stripPunctuation(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsPunct(r) && r != '\''
	})
}

// Lex splits line into Tokens, normalizing case with golang.org/x/text/cases
// (Unicode-correct uppercasing, unlike strings.ToUpper for non-ASCII
// input) and stripping stray punctuation from each word.
func Lex(line string) []Token {
	var tokens []Token

	offset := 0
	for _, field := range strings.Fields(line) {
		idx := strings.Index(line[offset:], field)
		rawOffset := offset
		if idx >= 0 {
			rawOffset = offset + idx
			offset = rawOffset + len(field)
		}

		cleaned := stripPunctuation(field)
		if cleaned == "" {
			continue
		}
		tokens = append(tokens, Token{
			Text:   upper.String(cleaned),
			Raw:    field,
			Offset: rawOffset,
		})
	}

	return tokens
}

// Words returns just the normalized text of each token, the common case for
// callers that don't need position info.
func Words(tokens []Token) []string {
	words := make([]string, len(tokens))
	for i, t := range tokens {
		words[i] = t.Text
	}
	return words
}
