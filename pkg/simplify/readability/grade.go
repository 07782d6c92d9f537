package readability

import (
	"strings"
	"unicode"

	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/analyze"
)

// Grade estimates the Flesch–Kincaid grade level of text:
//
//	0.39·(words/sentences) + 11.8·(syllables/words) − 15.59
//
// It is a diagnostic only; the transformer never consults it.
func Grade(text string) float64 {
	sentences := analyze.SplitSentences(text)
	words := wordsOf(text)
	if len(sentences) == 0 || len(words) == 0 {
		return 0
	}

	syllables := 0
	for _, w := range words {
		syllables += Syllables(w)
	}

	wps := float64(len(words)) / float64(len(sentences))
	spw := float64(syllables) / float64(len(words))
	return 0.39*wps + 11.8*spw - 15.59
}

// AverageSentenceLength returns the mean number of words per sentence.
func AverageSentenceLength(text string) float64 {
	sentences := analyze.SplitSentences(text)
	if len(sentences) == 0 {
		return 0
	}
	total := 0
	for _, s := range sentences {
		total += len(wordsOf(s))
	}
	return float64(total) / float64(len(sentences))
}

// Syllables counts vowel groups, minus one for a trailing silent "e",
// with a floor of 1.
func Syllables(word string) int {
	word = strings.ToLower(strings.TrimFunc(word, func(r rune) bool { return !unicode.IsLetter(r) }))
	if word == "" {
		return 1
	}

	count := 0
	prevVowel := false
	for _, r := range word {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}
	if strings.HasSuffix(word, "e") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

func wordsOf(text string) []string {
	var words []string
	for _, f := range strings.Fields(text) {
		if strings.IndexFunc(f, func(r rune) bool { return unicode.IsLetter(r) || unicode.IsNumber(r) }) >= 0 {
			words = append(words, f)
		}
	}
	return words
}
