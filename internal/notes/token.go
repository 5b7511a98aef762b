package notes

import (
	"regexp"

	"golang.org/x/text/unicode/norm"
)

// tokenPattern matches one cooldown assignment: a color-coded raider name
// followed by a two-space-padded spell reference.
//
//	 color    name    spell block
//	|cfff38bb9Runnz|r  {spell:31821}
//
// Capture 1 is the raider name, capture 2 the spell block including its
// padding. The name class spells out letters, marks, and digits instead of
// \w because raider names carry diacritics and Go's \w is ASCII-only; marks
// keep decomposed accents matching.
var tokenPattern = regexp.MustCompile(`\|c[0-9a-fA-F]{6,8}([\s\p{L}\p{M}\p{N}_]*)\|r(\s*\{spell:[0-9]*\}\s\s)`)

// Token is one matched assignment within an event line.
type Token struct {
	// Text is the full matched substring, trailing padding included.
	Text string
	// Assignee is the raider name captured from the color markup.
	Assignee string
	// Spell is the spell reference block, padding included.
	Spell string

	start, end int
}

// Tokens returns every assignment token in the line, in order of
// occurrence. Matching is purely syntactic; an unknown spell id is still an
// assignment.
func Tokens(line string) []Token {
	matches := tokenPattern.FindAllStringSubmatchIndex(line, -1)
	if len(matches) == 0 {
		return nil
	}
	tokens := make([]Token, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, Token{
			Text:     line[m[0]:m[1]],
			Assignee: line[m[2]:m[3]],
			Spell:    line[m[4]:m[5]],
			start:    m[0],
			end:      m[1],
		})
	}
	return tokens
}

// TokensFor returns the line's tokens whose assignee is the given raider,
// in order of occurrence. Names are compared in NFC form so a decomposed
// export of the same name still matches.
func TokensFor(line, assignee string) []Token {
	want := norm.NFC.String(assignee)
	var tokens []Token
	for _, tok := range Tokens(line) {
		if norm.NFC.String(tok.Assignee) == want {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}
