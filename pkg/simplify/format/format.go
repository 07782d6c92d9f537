package format

import (
	"math/rand/v2"
	"strings"
	"unicode"

	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/lexicon"
)

const (
	MinBullets = 3
	MaxBullets = 7

	// keyTopicsThreshold is the bullet count below which a key-topics bullet is added.
	keyTopicsThreshold = 5
	maxKeyTopics       = 5
)

// Outputs are the five audience-targeted renderings of one input.
type Outputs struct {
	Grade5Explanation string   `json:"grade5_explanation"`
	BulletSummary     []string `json:"bullet_summary"`
	WhatsAppVersion   string   `json:"whatsapp_version"`
	VoiceScript       string   `json:"voice_script"`
	RegionalVersion   string   `json:"regional_version"`
}

// Generator expands simplified sentences into all five formats. Randomness
// only chooses phrases from the lexicon's banks.
//
// A Generator is not safe for concurrent use because *rand.Rand is not;
// create one per invocation.
type Generator struct {
	lex *lexicon.Lexicon
	rng *rand.Rand
}

// New creates a generator. A nil lexicon selects lexicon.Default(); a nil
// rng selects an unseeded source.
func New(lex *lexicon.Lexicon, rng *rand.Rand) *Generator {
	if lex == nil {
		lex = lexicon.Default()
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{lex: lex, rng: rng}
}

// SeededRand returns a deterministic source: equal seeds give equal outputs.
func SeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generate builds every format from the same sentence set so the core
// meaning stays consistent across formats.
func (g *Generator) Generate(sentences, keywords []string) Outputs {
	clean := make([]string, 0, len(sentences))
	for _, s := range sentences {
		if s = strings.TrimSpace(s); s != "" {
			clean = append(clean, ensureTerminal(capitalize(s)))
		}
	}
	if len(clean) == 0 {
		clean = []string{g.lex.PlaceholderBullet()}
	}

	return Outputs{
		Grade5Explanation: g.grade5(clean),
		BulletSummary:     g.bullets(clean, keywords),
		WhatsAppVersion:   g.whatsApp(clean),
		VoiceScript:       g.voice(clean),
		RegionalVersion:   g.regional(clean),
	}
}

func (g *Generator) grade5(sentences []string) string {
	return strings.Join(append(append([]string(nil), sentences...), g.lex.Grade5Closing()), " ")
}

func (g *Generator) bullets(sentences, keywords []string) []string {
	bullets := append([]string(nil), sentences...)

	if len(bullets) < keyTopicsThreshold && len(keywords) > 0 {
		topics := keywords
		if len(topics) > maxKeyTopics {
			topics = topics[:maxKeyTopics]
		}
		bullets = append(bullets, g.lex.KeyTopicsPrefix()+": "+strings.Join(topics, ", ")+".")
	}
	for len(bullets) < MinBullets {
		bullets = append(bullets, g.lex.PlaceholderBullet())
	}
	if len(bullets) > MaxBullets {
		bullets = bullets[:MaxBullets]
	}
	return bullets
}

func (g *Generator) whatsApp(sentences []string) string {
	parts := []string{
		g.pick(g.lex.Greetings()),
		g.pick(g.lex.GreetingEmojis()),
		strings.Join(firstN(sentences, 2), " "),
		g.pick(g.lex.Confirmations()),
		g.pick(g.lex.ClosingEmojis()),
	}
	return joinNonEmpty(parts)
}

func (g *Generator) voice(sentences []string) string {
	pause := " " + g.lex.PauseMarker() + " "
	return g.lex.VoiceIntro() + pause + strings.Join(sentences, pause) + pause + g.lex.VoiceOutro()
}

func (g *Generator) regional(sentences []string) string {
	parts := []string{
		g.pick(g.lex.RegionalIntros()),
		strings.Join(firstN(sentences, 2), " "),
		g.pick(g.lex.RegionalClosings()),
	}
	return joinNonEmpty(parts)
}

func (g *Generator) pick(bank []string) string {
	if len(bank) == 0 {
		return ""
	}
	return bank[g.rng.IntN(len(bank))]
}

func firstN(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func joinNonEmpty(parts []string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

func ensureTerminal(s string) string {
	if s == "" || strings.ContainsRune(".!?", rune(s[len(s)-1])) {
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
