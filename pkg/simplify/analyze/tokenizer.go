package analyze

import (
	"strings"
	"unicode"
)

// Tokenize lower-cases text and splits it on non-word characters.
// Unlike frequency counting, it keeps stopwords so token sets stay faithful
// to the sentence for similarity checks.
func Tokenize(text string) []string {
	var tokens []string
	var current strings.Builder

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			current.WriteRune(unicode.ToLower(r))
			continue
		}
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	// Don't forget the last token
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// countable reports whether a token participates in frequency counting.
func (a *Analyzer) countable(token string) bool {
	if len([]rune(token)) <= 2 {
		return false
	}
	return !a.lex.IsStopword(token)
}

// frequencies counts countable tokens and remembers first appearance for
// stable tie-breaking.
func (a *Analyzer) frequencies(tokens [][]string) (map[string]int, map[string]int) {
	freq := make(map[string]int)
	firstSeen := make(map[string]int)
	pos := 0
	for _, sentence := range tokens {
		for _, tok := range sentence {
			if !a.countable(tok) {
				continue
			}
			if _, ok := firstSeen[tok]; !ok {
				firstSeen[tok] = pos
				pos++
			}
			freq[tok]++
		}
	}
	return freq, firstSeen
}
