package analyze

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	// StripPasses bounds the nested brace/bracket removal loop.
	StripPasses = 5
	// MinSentenceChars is the shortest sentence kept by the prose filter.
	MinSentenceChars = 10
	// MaxCapitalRatio rejects sentences that look like leftover identifiers.
	MaxCapitalRatio = 0.5
	// MinSentenceWords is the fewest words a prose sentence may have.
	MinSentenceWords = 4
	// MinCleanChars triggers fallback recovery when the cleaned text is shorter.
	MinCleanChars = 20
	// MinQuotedChars is the shortest quoted substring worth recovering.
	MinQuotedChars = 15
)

var (
	braceRe       = regexp.MustCompile(`\{[^{}]*\}`)
	bracketRe     = regexp.MustCompile(`\[[^\[\]]*\]`)
	quotedPairRe  = regexp.MustCompile(`"?[A-Za-z_][\w-]*"?\s*:\s*"[^"]*"`)
	keyValueRe    = regexp.MustCompile(`\b([A-Za-z_][\w-]*)\s*:\s*[^\s,;]+`)
	proseLabelRe  = regexp.MustCompile(`^[A-Z][a-z]+$`)
	listCommaRe   = regexp.MustCompile(`(?m)^\s*,+|,+\s*$|,\s*(?:,\s*)+`)
	leftoverRe    = regexp.MustCompile(`[:"_]`)
	spaceRe       = regexp.MustCompile(`\s+`)
	quotedTextRe  = regexp.MustCompile(`"([^"]+)"`)
	keyColonRe    = regexp.MustCompile(`"?\b\w+"?\s*:`)
	minimalDropRe = regexp.MustCompile(`[{}\[\]",]`)
)

// Recovery records how the analyzer obtained its prose.
type Recovery string

const (
	RecoveryNone     Recovery = "none"
	RecoveryQuoted   Recovery = "quoted"
	RecoveryStripped Recovery = "stripped"
)

// stripStructured removes serialized-data fragments so only prose remains.
func stripStructured(text string) string {
	s := text
	for i := 0; i < StripPasses; i++ {
		next := braceRe.ReplaceAllString(s, " ")
		if next == s {
			break
		}
		s = next
	}
	for i := 0; i < StripPasses; i++ {
		next := bracketRe.ReplaceAllString(s, " ")
		if next == s {
			break
		}
		s = next
	}

	s = quotedPairRe.ReplaceAllString(s, " ")
	s = keyValueRe.ReplaceAllStringFunc(s, stripKeyValue)
	s = listCommaRe.ReplaceAllString(s, " ")
	s = leftoverRe.ReplaceAllString(s, " ")

	return collapseSpace(s)
}

// stripKeyValue removes identifier-shaped key: value pairs. A capitalized
// plain word such as "Note:" is a prose label and stays; its colon goes with
// the leftovers.
func stripKeyValue(match string) string {
	key := keyValueRe.FindStringSubmatch(match)[1]
	if proseLabelRe.MatchString(key) {
		return match
	}
	return " "
}

// filterProse drops sentences that are likely structured-data remnants.
func (a *Analyzer) filterProse(text string) string {
	var kept []string
	for _, sentence := range splitSentences(text) {
		if a.isProse(sentence) {
			kept = append(kept, sentence)
		}
	}
	return strings.Join(kept, " ")
}

func (a *Analyzer) isProse(sentence string) bool {
	if len(sentence) < MinSentenceChars {
		return false
	}
	if capitalRatio(sentence) > MaxCapitalRatio {
		return false
	}
	words := strings.Fields(sentence)
	if len(words) < MinSentenceWords {
		return false
	}
	for _, w := range words {
		if a.lex.IsFunctionWord(strings.TrimFunc(w, isNotWordRune)) {
			return true
		}
	}
	return false
}

// recoverProse attempts quoted-text recovery first, then a minimal character strip.
func recoverProse(original string) (string, Recovery) {
	var recovered []string
	for _, m := range quotedTextRe.FindAllStringSubmatch(original, -1) {
		quoted := strings.TrimSpace(m[1])
		if len(quoted) < MinQuotedChars {
			continue
		}
		recovered = append(recovered, ensureTerminal(quoted))
	}
	if len(recovered) > 0 {
		return strings.Join(recovered, " "), RecoveryQuoted
	}

	// Keys go first, while their quotes still sit next to the colon.
	s := keyColonRe.ReplaceAllString(original, " ")
	s = minimalDropRe.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, ":", " ")
	s = strings.ReplaceAll(s, "_", " ")
	return collapseSpace(s), RecoveryStripped
}

// splitSentences cuts text after ., ! or ? when followed by whitespace or end
// of input, so decimals like 3.5 stay whole.
func splitSentences(text string) []string {
	var sentences []string
	runes := []rune(text)
	start := 0
	for i := 0; i < len(runes); i++ {
		if !isTerminal(runes[i]) {
			continue
		}
		j := i
		for j+1 < len(runes) && isTerminal(runes[j+1]) {
			j++
		}
		if j+1 < len(runes) && !unicode.IsSpace(runes[j+1]) {
			i = j
			continue
		}
		if s := strings.TrimSpace(string(runes[start : j+1])); s != "" {
			sentences = append(sentences, s)
		}
		start = j + 1
		i = j
	}
	if start < len(runes) {
		if s := strings.TrimSpace(string(runes[start:])); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// SplitSentences exposes the analyzer's segmentation rule.
func SplitSentences(text string) []string {
	return splitSentences(collapseSpace(text))
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func capitalRatio(s string) float64 {
	letters, upper := 0, 0
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if unicode.IsUpper(r) {
			upper++
		}
	}
	if letters == 0 {
		return 1
	}
	return float64(upper) / float64(letters)
}

func ensureTerminal(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	if r := []rune(s); isTerminal(r[len(r)-1]) {
		return s
	}
	return s + "."
}

func collapseSpace(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

func isNotWordRune(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsNumber(r)
}
