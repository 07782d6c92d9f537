package lexicon

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Lexicon holds every lookup table used by the pipeline:
// - Stopwords and function words for analysis
// - Complex→simple substitutions and split conjunctions for rewriting
// - Phrase banks and markers for output formatting
//
// A Lexicon is never mutated after construction, so one value can be shared
// by any number of concurrent pipeline invocations.
type Lexicon struct {
	stopwords     map[string]struct{}
	functionWords map[string]struct{}
	substitutions []Substitution
	conjunctions  []string

	greetings        []string
	greetingEmojis   []string
	confirmations    []string
	closingEmojis    []string
	regionalIntros   []string
	regionalClosings []string
	codeSwitch       []string

	pauseMarker       string
	voiceIntro        string
	voiceOutro        string
	grade5Closing     string
	keyTopicsPrefix   string
	placeholderBullet string
}

// Substitution maps a complex word or phrase to its simpler replacement.
type Substitution struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Default returns the built-in English/Hinglish tables.
func Default() *Lexicon {
	return &Lexicon{
		stopwords:         toSet(defaultStopwords),
		functionWords:     toSet(defaultFunctionWords),
		substitutions:     append([]Substitution(nil), defaultSubstitutions...),
		conjunctions:      append([]string(nil), defaultConjunctions...),
		greetings:         append([]string(nil), defaultGreetings...),
		greetingEmojis:    append([]string(nil), defaultGreetingEmojis...),
		confirmations:     append([]string(nil), defaultConfirmations...),
		closingEmojis:     append([]string(nil), defaultClosingEmojis...),
		regionalIntros:    append([]string(nil), defaultRegionalIntros...),
		regionalClosings:  append([]string(nil), defaultRegionalClosings...),
		codeSwitch:        append([]string(nil), defaultCodeSwitch...),
		pauseMarker:       DefaultPauseMarker,
		voiceIntro:        "Hello and welcome. Here is a simple explanation.",
		voiceOutro:        "Thanks for listening.",
		grade5Closing:     "That is the main idea in simple words.",
		keyTopicsPrefix:   "Key topics",
		placeholderBullet: "Read the full text for more details.",
	}
}

// DefaultPauseMarker is inserted between sentences of the voice script.
const DefaultPauseMarker = "[pause]"

// File is the on-disk YAML layout accepted by LoadFromYAML.
//
// Expected format:
//
//	stopwords: [the, a, an]
//	substitutions:
//	  - from: utilize
//	    to: use
//	phrases:
//	  greetings: ["Hey there!"]
//	markers:
//	  pause: "[pause]"
//	  code_switch: [yaar, samjhe]
//
// Any list or string left empty keeps the built-in default.
type File struct {
	Stopwords     []string       `yaml:"stopwords"`
	FunctionWords []string       `yaml:"function_words"`
	Substitutions []Substitution `yaml:"substitutions"`
	Conjunctions  []string       `yaml:"conjunctions"`
	Phrases       struct {
		Greetings        []string `yaml:"greetings"`
		GreetingEmojis   []string `yaml:"greeting_emojis"`
		Confirmations    []string `yaml:"confirmations"`
		ClosingEmojis    []string `yaml:"closing_emojis"`
		RegionalIntros   []string `yaml:"regional_intros"`
		RegionalClosings []string `yaml:"regional_closings"`
	} `yaml:"phrases"`
	Markers struct {
		Pause      string   `yaml:"pause"`
		CodeSwitch []string `yaml:"code_switch"`
	} `yaml:"markers"`
	Templates struct {
		VoiceIntro        string `yaml:"voice_intro"`
		VoiceOutro        string `yaml:"voice_outro"`
		Grade5Closing     string `yaml:"grade5_closing"`
		KeyTopicsPrefix   string `yaml:"key_topics_prefix"`
		PlaceholderBullet string `yaml:"placeholder_bullet"`
	} `yaml:"templates"`
}

// LoadFromYAML reads a YAML file and overlays it on the default tables.
func LoadFromYAML(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse overlays YAML bytes on the default tables.
func Parse(data []byte) (*Lexicon, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return FromFile(f), nil
}

// FromFile builds a lexicon from a decoded File, falling back to defaults
// for every empty field.
func FromFile(f File) *Lexicon {
	lex := Default()

	if len(f.Stopwords) > 0 {
		lex.stopwords = toSet(f.Stopwords)
	}
	if len(f.FunctionWords) > 0 {
		lex.functionWords = toSet(f.FunctionWords)
	}
	if len(f.Substitutions) > 0 {
		subs := make([]Substitution, 0, len(f.Substitutions))
		for _, s := range f.Substitutions {
			from := strings.ToLower(strings.TrimSpace(s.From))
			if from == "" {
				continue
			}
			subs = append(subs, Substitution{From: from, To: strings.TrimSpace(s.To)})
		}
		lex.substitutions = subs
	}
	lex.conjunctions = overlayLower(lex.conjunctions, f.Conjunctions)

	lex.greetings = overlay(lex.greetings, f.Phrases.Greetings)
	lex.greetingEmojis = overlay(lex.greetingEmojis, f.Phrases.GreetingEmojis)
	lex.confirmations = overlay(lex.confirmations, f.Phrases.Confirmations)
	lex.closingEmojis = overlay(lex.closingEmojis, f.Phrases.ClosingEmojis)
	lex.regionalIntros = overlay(lex.regionalIntros, f.Phrases.RegionalIntros)
	lex.regionalClosings = overlay(lex.regionalClosings, f.Phrases.RegionalClosings)
	lex.codeSwitch = overlayLower(lex.codeSwitch, f.Markers.CodeSwitch)

	lex.pauseMarker = overlayString(lex.pauseMarker, f.Markers.Pause)
	lex.voiceIntro = overlayString(lex.voiceIntro, f.Templates.VoiceIntro)
	lex.voiceOutro = overlayString(lex.voiceOutro, f.Templates.VoiceOutro)
	lex.grade5Closing = overlayString(lex.grade5Closing, f.Templates.Grade5Closing)
	lex.keyTopicsPrefix = overlayString(lex.keyTopicsPrefix, f.Templates.KeyTopicsPrefix)
	lex.placeholderBullet = overlayString(lex.placeholderBullet, f.Templates.PlaceholderBullet)

	return lex
}

// IsStopword reports whether the lower-cased word is a stopword.
func (l *Lexicon) IsStopword(word string) bool {
	_, ok := l.stopwords[strings.ToLower(word)]
	return ok
}

// IsFunctionWord reports whether the word is a common function word
// (the, a, is, in, of ...).
func (l *Lexicon) IsFunctionWord(word string) bool {
	_, ok := l.functionWords[strings.ToLower(word)]
	return ok
}

// IsCodeSwitchMarker reports whether the word belongs to the code-switch vocabulary.
func (l *Lexicon) IsCodeSwitchMarker(word string) bool {
	word = strings.ToLower(word)
	for _, m := range l.codeSwitch {
		if m == word {
			return true
		}
	}
	return false
}

// Substitutions returns a copy of the complex→simple table in application order.
func (l *Lexicon) Substitutions() []Substitution {
	return append([]Substitution(nil), l.substitutions...)
}

// Conjunctions returns the words at which long sentences may be split.
func (l *Lexicon) Conjunctions() []string { return append([]string(nil), l.conjunctions...) }

func (l *Lexicon) Greetings() []string        { return append([]string(nil), l.greetings...) }
func (l *Lexicon) GreetingEmojis() []string   { return append([]string(nil), l.greetingEmojis...) }
func (l *Lexicon) Confirmations() []string    { return append([]string(nil), l.confirmations...) }
func (l *Lexicon) ClosingEmojis() []string    { return append([]string(nil), l.closingEmojis...) }
func (l *Lexicon) RegionalIntros() []string   { return append([]string(nil), l.regionalIntros...) }
func (l *Lexicon) RegionalClosings() []string { return append([]string(nil), l.regionalClosings...) }
func (l *Lexicon) CodeSwitchMarkers() []string {
	return append([]string(nil), l.codeSwitch...)
}

func (l *Lexicon) PauseMarker() string       { return l.pauseMarker }
func (l *Lexicon) VoiceIntro() string        { return l.voiceIntro }
func (l *Lexicon) VoiceOutro() string        { return l.voiceOutro }
func (l *Lexicon) Grade5Closing() string     { return l.grade5Closing }
func (l *Lexicon) KeyTopicsPrefix() string   { return l.keyTopicsPrefix }
func (l *Lexicon) PlaceholderBullet() string { return l.placeholderBullet }

// Stats summarizes table sizes.
func (l *Lexicon) Stats() Stats {
	return Stats{
		Stopwords:     len(l.stopwords),
		FunctionWords: len(l.functionWords),
		Substitutions: len(l.substitutions),
		CodeSwitch:    len(l.codeSwitch),
	}
}

// Stats holds lexicon table sizes.
type Stats struct {
	Stopwords     int
	FunctionWords int
	Substitutions int
	CodeSwitch    int
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}

func overlay(base, override []string) []string {
	if len(override) == 0 {
		return base
	}
	out := make([]string, 0, len(override))
	for _, s := range override {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return base
	}
	return out
}

func overlayLower(base, override []string) []string {
	lowered := make([]string, len(override))
	for i, s := range override {
		lowered[i] = strings.ToLower(s)
	}
	return overlay(base, lowered)
}

func overlayString(base, override string) string {
	if strings.TrimSpace(override) == "" {
		return base
	}
	return override
}
