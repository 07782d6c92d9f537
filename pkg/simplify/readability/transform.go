package readability

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/analyze"
	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/lexicon"
)

const (
	// MaxSentenceWords is the length above which a sentence is split.
	MaxSentenceWords = 20
	// MinSplitSide is the fewest words allowed on either side of a split.
	MinSplitSide = 5
	// MaxClauses is the comma-clause count above which clauses are dropped.
	MaxClauses = 3
)

var (
	largeNumberRe = regexp.MustCompile(`\b\d{1,3}(?:,\d{3})+\b|\b\d{4,}\b`)
	percentRe     = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`)
	dollarRe      = regexp.MustCompile(`\$\s?(\d+(?:\.\d+)?)((?:\s+(?:million|thousand))?)`)
	parenRe       = regexp.MustCompile(`\s*\([^()]*\)`)
	spaceRe       = regexp.MustCompile(`\s+`)
	spacePunctRe  = regexp.MustCompile(`\s+([.,!?;])`)
)

type substitution struct {
	re *regexp.Regexp
	to string
}

// Transformer rewrites sentences toward a lower reading grade with
// deterministic rules.
type Transformer struct {
	subs         []substitution
	conjunctions map[string]struct{}
}

// New compiles the lexicon's substitution table.
// A nil lexicon selects lexicon.Default().
func New(lex *lexicon.Lexicon) *Transformer {
	if lex == nil {
		lex = lexicon.Default()
	}
	t := &Transformer{conjunctions: make(map[string]struct{})}
	for _, s := range lex.Substitutions() {
		words := strings.Fields(s.From)
		for i, w := range words {
			words[i] = regexp.QuoteMeta(w)
		}
		pattern := `(?i)\b` + strings.Join(words, `\s+`) + `\b`
		t.subs = append(t.subs, substitution{re: regexp.MustCompile(pattern), to: s.To})
	}
	for _, c := range lex.Conjunctions() {
		t.conjunctions[strings.ToLower(c)] = struct{}{}
	}
	return t
}

// Transform rewrites each sentence independently. The result has the same
// length and order as the input; a split sentence stays in one element.
func (t *Transformer) Transform(sentences []string) []string {
	out := make([]string, len(sentences))
	for i, s := range sentences {
		out[i] = t.TransformSentence(s)
	}
	return out
}

// TransformSentence applies, in order: word substitution, length splitting,
// number simplification and clause reduction.
func (t *Transformer) TransformSentence(s string) string {
	s = t.substitute(s)
	s = t.split(s)
	s = SimplifyNumbers(s)
	s = reduceClauses(s)
	return tidy(s)
}

func (t *Transformer) substitute(s string) string {
	for _, sub := range t.subs {
		s = sub.re.ReplaceAllStringFunc(s, func(match string) string {
			if r := []rune(match); len(r) > 0 && unicode.IsUpper(r[0]) {
				return capitalize(sub.to)
			}
			return sub.to
		})
	}
	return s
}

// split breaks a long sentence at the first conjunction with at least
// MinSplitSide words on each side. The conjunction itself is dropped.
func (t *Transformer) split(s string) string {
	words := strings.Fields(s)
	if len(words) <= MaxSentenceWords {
		return s
	}
	for i, w := range words {
		if i < MinSplitSide || len(words)-i-1 < MinSplitSide {
			continue
		}
		bare := strings.ToLower(strings.TrimFunc(w, func(r rune) bool { return !unicode.IsLetter(r) }))
		if _, ok := t.conjunctions[bare]; !ok {
			continue
		}
		first := strings.TrimRight(strings.Join(words[:i], " "), ",;:")
		second := strings.Join(words[i+1:], " ")
		return ensureTerminal(first) + " " + capitalize(second)
	}
	return s
}

// SimplifyNumbers rewrites large integers, percentages and dollar amounts
// into words: 15000 → "15 thousand", 25% → "25 percent", $100 → "100 dollars".
// Bare four-digit years (1900-2100) are left alone.
func SimplifyNumbers(s string) string {
	s = simplifyLargeNumbers(s)
	s = percentRe.ReplaceAllString(s, "$1 percent")
	s = dollarRe.ReplaceAllString(s, "$1$2 dollars")
	return s
}

// simplifyLargeNumbers rewrites integers only; either side of a decimal
// point is left as written.
func simplifyLargeNumbers(s string) string {
	var b strings.Builder
	last := 0
	for _, loc := range largeNumberRe.FindAllStringIndex(s, -1) {
		start, end := loc[0], loc[1]
		if partOfDecimal(s, start, end) {
			continue
		}
		b.WriteString(s[last:start])
		b.WriteString(numberInWords(s[start:end]))
		last = end
	}
	b.WriteString(s[last:])
	return b.String()
}

func partOfDecimal(s string, start, end int) bool {
	if end+1 < len(s) && s[end] == '.' && isDigit(s[end+1]) {
		return true
	}
	return start >= 2 && s[start-1] == '.' && isDigit(s[start-2])
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func numberInWords(match string) string {
	raw := strings.ReplaceAll(match, ",", "")
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return match
	}
	if !strings.Contains(match, ",") && len(raw) == 4 && n >= 1900 && n <= 2100 {
		return match
	}
	switch {
	case n >= 1_000_000:
		return strconv.FormatInt(n/1_000_000, 10) + " million"
	case n >= 1_000:
		return strconv.FormatInt(n/1_000, 10) + " thousand"
	default:
		return match
	}
}

// reduceClauses strips parentheticals and keeps only the first two clauses
// of any sentence with more than MaxClauses comma-separated clauses.
func reduceClauses(s string) string {
	s = parenRe.ReplaceAllString(s, "")
	sentences := analyze.SplitSentences(s)
	for i, sentence := range sentences {
		clauses := strings.Split(sentence, ",")
		if len(clauses) <= MaxClauses {
			continue
		}
		kept := strings.TrimSpace(clauses[0]) + ", " + strings.TrimSpace(clauses[1])
		sentences[i] = ensureTerminal(strings.TrimRight(kept, ".!?"))
	}
	return strings.Join(sentences, " ")
}

func tidy(s string) string {
	s = spaceRe.ReplaceAllString(s, " ")
	s = spacePunctRe.ReplaceAllString(s, "$1")
	return strings.TrimSpace(s)
}

func ensureTerminal(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	if strings.ContainsRune(".!?", rune(s[len(s)-1])) {
		return s
	}
	return s + "."
}

func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
