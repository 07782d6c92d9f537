package format

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/lexicon"
)

var sample = []string{
	"The city will open a new park next spring.",
	"the park will have a playground and a pond",
	"Families can visit for free.",
}

func TestGenerateAllFieldsPresent(t *testing.T) {
	lex := lexicon.Default()
	out := New(lex, SeededRand(1)).Generate(sample, []string{"park", "city"})

	if out.Grade5Explanation == "" || out.WhatsAppVersion == "" || out.VoiceScript == "" || out.RegionalVersion == "" {
		t.Fatalf("All fields must be non-empty: %+v", out)
	}
	if !strings.HasSuffix(out.Grade5Explanation, lex.Grade5Closing()) {
		t.Errorf("Grade-5 text should end with the closing sentence: %q", out.Grade5Explanation)
	}
	if !strings.Contains(out.Grade5Explanation, "The park will have a playground and a pond.") {
		t.Errorf("Sentences should be capitalized and terminated: %q", out.Grade5Explanation)
	}
}

func TestBulletSummaryBounds(t *testing.T) {
	many := make([]string, 12)
	for i := range many {
		many[i] = "Sentence number " + strings.Repeat("x", i+1) + " is here."
	}

	tests := []struct {
		name      string
		sentences []string
		keywords  []string
		want      int
	}{
		{"empty", nil, nil, MinBullets},
		{"one sentence no keywords", sample[:1], nil, MinBullets},
		{"one sentence with keywords", sample[:1], []string{"park"}, MinBullets},
		{"three with keywords", sample, []string{"park"}, 4},
		{"many", many, []string{"park"}, MaxBullets},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := New(nil, SeededRand(7)).Generate(tt.sentences, tt.keywords)
			if len(out.BulletSummary) != tt.want {
				t.Errorf("Expected %d bullets, got %d: %q", tt.want, len(out.BulletSummary), out.BulletSummary)
			}
		})
	}
}

func TestKeyTopicsBullet(t *testing.T) {
	lex := lexicon.Default()
	keywords := []string{"park", "city", "spring", "pond", "families", "playground"}
	out := New(lex, SeededRand(3)).Generate(sample, keywords)

	last := out.BulletSummary[len(out.BulletSummary)-1]
	want := lex.KeyTopicsPrefix() + ": park, city, spring, pond, families."
	if last != want {
		t.Errorf("Expected key topics bullet %q, got %q", want, last)
	}
}

func TestVoiceScriptHasPauseMarker(t *testing.T) {
	lex := lexicon.Default()
	for _, sentences := range [][]string{nil, sample[:1], sample} {
		out := New(lex, SeededRand(5)).Generate(sentences, nil)
		if !strings.Contains(out.VoiceScript, lex.PauseMarker()) {
			t.Errorf("Voice script missing pause marker: %q", out.VoiceScript)
		}
		if !strings.HasPrefix(out.VoiceScript, lex.VoiceIntro()) || !strings.HasSuffix(out.VoiceScript, lex.VoiceOutro()) {
			t.Errorf("Voice script should be framed by intro and outro: %q", out.VoiceScript)
		}
	}
}

func TestRegionalVersionHasCodeSwitchMarker(t *testing.T) {
	lex := lexicon.Default()
	for seed := uint64(0); seed < 20; seed++ {
		out := New(lex, SeededRand(seed)).Generate(sample, nil)
		found := false
		for _, w := range strings.FieldsFunc(out.RegionalVersion, func(r rune) bool {
			return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z')
		}) {
			if lex.IsCodeSwitchMarker(w) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Seed %d: no code-switch marker in %q", seed, out.RegionalVersion)
		}
	}
}

func TestWhatsAppUsesFirstTwoSentences(t *testing.T) {
	out := New(nil, SeededRand(9)).Generate(sample, nil)

	if !strings.Contains(out.WhatsAppVersion, "The city will open a new park next spring. The park will have a playground and a pond.") {
		t.Errorf("Messaging version should carry the first two sentences: %q", out.WhatsAppVersion)
	}
	if strings.Contains(out.WhatsAppVersion, "Families can visit") {
		t.Errorf("Messaging version should stop after two sentences: %q", out.WhatsAppVersion)
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	a := New(nil, SeededRand(42)).Generate(sample, []string{"park"})
	b := New(nil, SeededRand(42)).Generate(sample, []string{"park"})

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("Same seed should give identical outputs (-a +b):\n%s", diff)
	}
}

func TestGenerateDoesNotMutateInput(t *testing.T) {
	in := append([]string(nil), sample...)
	New(nil, SeededRand(1)).Generate(in, nil)

	if diff := cmp.Diff(sample, in); diff != "" {
		t.Errorf("Generate mutated its input:\n%s", diff)
	}
}
