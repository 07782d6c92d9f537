package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/format"
	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/lexicon"
	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/readability"
)

// MaxAverageSentenceWords bounds the mean sentence length of checked fields.
const MaxAverageSentenceWords = 20

type pattern struct {
	name string
	re   *regexp.Regexp
}

var codePatterns = []pattern{
	{"function declaration", regexp.MustCompile(`\bfunction\s*\w*\s*\(`)},
	{"variable declaration", regexp.MustCompile(`\b(?:const|let|var)\s+\w+\s*=`)},
	{"function definition", regexp.MustCompile(`\bdef\s+\w+\s*\(`)},
	{"import statement", regexp.MustCompile(`\bimport\s+[\w{}*,\s]+\s+from\s+['"]|\brequire\(\s*['"]`)},
	{"export statement", regexp.MustCompile(`\bexport\s+(?:default|const|let|function|class)\b`)},
	{"HTML tag", regexp.MustCompile(`</?[a-zA-Z][a-zA-Z0-9]*(?:\s[^<>]*)?/?>`)},
	{"object literal", regexp.MustCompile(`\{\s*['"]?\w+['"]?\s*:`)},
}

var structuredPatterns = []pattern{
	{"array of objects", regexp.MustCompile(`\[\s*\{`)},
	{"JSON key", regexp.MustCompile(`"\w+"\s*:`)},
	{"table separator", regexp.MustCompile(`\|[^|\n]*\|[^|\n]*\|`)},
	{"key-value list", regexp.MustCompile(`(?m)^\s*[-*]\s+\w+\s*:\s+\S`)},
}

var placeholderPatterns = []pattern{
	{"stringified object", regexp.MustCompile(`\[object \w+\]`)},
	{"template placeholder", regexp.MustCompile(`\{\{[^}]*\}\}`)},
	{"bracketed placeholder", regexp.MustCompile(`(?i)\[(?:placeholder|todo|tbd|insert[^\]]*)\]`)},
}

// Result aggregates every violation found; Valid is true only when Errors
// is empty.
type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Validator checks structural and readability conformance of outputs.
type Validator struct {
	lex *lexicon.Lexicon
}

// New creates a validator. A nil lexicon selects lexicon.Default().
func New(lex *lexicon.Lexicon) *Validator {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &Validator{lex: lex}
}

// Validate never fails fast: all fields are checked and every problem is
// reported.
func (v *Validator) Validate(o format.Outputs) Result {
	var errs []string

	errs = append(errs, CheckText("grade5_explanation", o.Grade5Explanation)...)
	for i, b := range o.BulletSummary {
		errs = append(errs, CheckText(fmt.Sprintf("bullet_summary[%d]", i), b)...)
	}
	errs = append(errs, CheckText("whatsapp_version", o.WhatsAppVersion)...)

	if n := len(o.BulletSummary); n < format.MinBullets || n > format.MaxBullets {
		errs = append(errs, fmt.Sprintf("bullet_summary: has %d bullets, want %d to %d", n, format.MinBullets, format.MaxBullets))
	}

	if strings.TrimSpace(o.VoiceScript) == "" {
		errs = append(errs, "voice_script: empty")
	} else if !strings.Contains(o.VoiceScript, v.lex.PauseMarker()) {
		errs = append(errs, fmt.Sprintf("voice_script: missing pause marker %q", v.lex.PauseMarker()))
	}

	if strings.TrimSpace(o.RegionalVersion) == "" {
		errs = append(errs, "regional_version: empty")
	} else if !v.hasCodeSwitchMarker(o.RegionalVersion) {
		errs = append(errs, "regional_version: no code-switch marker word")
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}

// CheckText runs the per-field checks: emptiness, code-like patterns,
// structured-data remnants, placeholder artifacts and average sentence length.
func CheckText(field, text string) []string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return []string{field + ": empty"}
	}

	var errs []string
	for _, p := range codePatterns {
		if p.re.MatchString(text) {
			errs = append(errs, fmt.Sprintf("%s: contains code-like pattern (%s)", field, p.name))
		}
	}
	for _, p := range structuredPatterns {
		if p.re.MatchString(text) {
			errs = append(errs, fmt.Sprintf("%s: contains structured data (%s)", field, p.name))
		}
	}
	for _, p := range placeholderPatterns {
		if p.re.MatchString(text) {
			errs = append(errs, fmt.Sprintf("%s: contains placeholder artifact (%s)", field, p.name))
		}
	}
	switch strings.ToLower(trimmed) {
	case "null", "undefined", "nan", "none":
		errs = append(errs, fmt.Sprintf("%s: contains placeholder artifact (%s)", field, trimmed))
	}

	if avg := readability.AverageSentenceLength(text); avg > MaxAverageSentenceWords {
		errs = append(errs, fmt.Sprintf("%s: average sentence length %.1f words exceeds %d", field, avg, MaxAverageSentenceWords))
	}
	return errs
}

func (v *Validator) hasCodeSwitchMarker(text string) bool {
	words := strings.FieldsFunc(text, func(r rune) bool { return !unicode.IsLetter(r) })
	for _, w := range words {
		if v.lex.IsCodeSwitchMarker(w) {
			return true
		}
	}
	return false
}
