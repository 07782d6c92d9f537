package analyze

import (
	"regexp"
	"sort"
	"strings"

	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/lexicon"
)

// MaxKeywords is the number of keywords kept per document.
const MaxKeywords = 10

var entityRe = regexp.MustCompile(`\b[A-Z][a-zA-Z]*(?:\s+[A-Z][a-zA-Z]*)*\b`)

// Analyzer cleans raw input and extracts sentences, tokens, keywords and
// entity candidates.
type Analyzer struct {
	lex *lexicon.Lexicon
}

// New creates an analyzer backed by the given lexicon.
// A nil lexicon selects lexicon.Default().
func New(lex *lexicon.Lexicon) *Analyzer {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &Analyzer{lex: lex}
}

// Result is the analyzed form of one input text.
type Result struct {
	Sentences     []string
	Tokens        [][]string // parallel to Sentences
	Keywords      []string   // descending frequency
	Entities      []string   // deduplicated, first-seen order
	WordFrequency map[string]int
	Recovery      Recovery
}

// Analyze never fails: degenerate input yields a best-effort (possibly
// empty) result.
func (a *Analyzer) Analyze(text string) Result {
	cleaned := a.filterProse(stripStructured(text))

	recovery := RecoveryNone
	if len(cleaned) < MinCleanChars {
		cleaned, recovery = recoverProse(text)
	}

	sentences := splitSentences(cleaned)
	tokens := make([][]string, len(sentences))
	for i, s := range sentences {
		tokens[i] = Tokenize(s)
	}

	freq, firstSeen := a.frequencies(tokens)

	return Result{
		Sentences:     sentences,
		Tokens:        tokens,
		Keywords:      topKeywords(freq, firstSeen, MaxKeywords),
		Entities:      extractEntities(cleaned),
		WordFrequency: freq,
		Recovery:      recovery,
	}
}

func topKeywords(freq, firstSeen map[string]int, n int) []string {
	words := make([]string, 0, len(freq))
	for w := range freq {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if freq[words[i]] != freq[words[j]] {
			return freq[words[i]] > freq[words[j]]
		}
		return firstSeen[words[i]] < firstSeen[words[j]]
	})
	if len(words) > n {
		words = words[:n]
	}
	return words
}

// extractEntities is a capitalized-run heuristic, not real NER.
func extractEntities(text string) []string {
	seen := make(map[string]struct{})
	var entities []string
	for _, m := range entityRe.FindAllString(text, -1) {
		m = strings.TrimSpace(m)
		if len(m) <= 2 {
			continue
		}
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		entities = append(entities, m)
	}
	return entities
}
