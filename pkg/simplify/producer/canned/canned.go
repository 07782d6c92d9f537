// Package canned provides an offline producer that ignores its input and
// returns one fixed, valid set of outputs. It backs demo mode and gives
// clients something stable to integrate against.
package canned

import (
	"context"

	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/format"
	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/lexicon"
)

// Seed fixes the phrase choices of the canned outputs.
const Seed = 2024

var (
	sentences = []string{
		"This is a short sample of simplified text.",
		"The real service reads your text and picks the main points.",
		"Then it rewrites them with easy words and short sentences.",
	}
	keywords = []string{"sample", "text", "points"}
)

// Producer returns the same outputs for every input
type Producer struct {
	outputs format.Outputs
}

// New builds the canned outputs once. A nil lexicon selects the default.
func New(lex *lexicon.Lexicon) *Producer {
	gen := format.New(lex, format.SeededRand(Seed))
	return &Producer{outputs: gen.Generate(sentences, keywords)}
}

func (p *Producer) Name() string { return "canned" }

// Produce ignores text; only a cancelled context fails.
func (p *Producer) Produce(ctx context.Context, text string) (format.Outputs, error) {
	if err := ctx.Err(); err != nil {
		return format.Outputs{}, err
	}
	out := p.outputs
	out.BulletSummary = append([]string(nil), p.outputs.BulletSummary...)
	return out, nil
}
