package simplify

import (
	"context"
	"math/rand/v2"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/analyze"
	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/format"
	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/lexicon"
	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/rank"
	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/readability"
	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/validate"
)

const (
	DefaultTopN              = 5
	DefaultFallbackChars     = 300
	DefaultFallbackSentences = 3
	DefaultBatchConcurrency  = 4
)

// Stage is a state of the pipeline state machine.
type Stage string

const (
	StageAnalyzing    Stage = "ANALYZING"
	StageRanking      Stage = "RANKING"
	StageTransforming Stage = "TRANSFORMING"
	StageGenerating   Stage = "GENERATING"
	StageValidating   Stage = "VALIDATING"
	StageFallback     Stage = "FALLBACK"
	StageDone         Stage = "DONE"
)

// Producer is anything that turns raw text into the five output formats.
// The pipeline engine, the canned producer and the LLM producer are
// interchangeable behind it.
type Producer interface {
	Name() string
	Produce(ctx context.Context, text string) (format.Outputs, error)
}

// RandFactory returns a fresh random source for one invocation.
type RandFactory func() *rand.Rand

// Seeded returns a factory whose every source starts from seed, making
// repeated invocations reproducible.
func Seeded(seed uint64) RandFactory {
	return func() *rand.Rand { return format.SeededRand(seed) }
}

func unseeded() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Options configures an Engine. Zero values select defaults.
type Options struct {
	Lexicon           *lexicon.Lexicon
	Weights           rank.Weights
	TopN              int
	FallbackChars     int
	FallbackSentences int
	BatchConcurrency  int
	Rand              RandFactory
	Logger            *zap.Logger
}

// Engine sequences analysis, ranking, transformation, generation and
// validation, and owns the one-shot fallback policy. It holds no mutable
// state and is safe for concurrent use.
type Engine struct {
	lex         *lexicon.Lexicon
	analyzer    *analyze.Analyzer
	ranker      *rank.Ranker
	transformer *readability.Transformer
	validator   *validate.Validator

	topN              int
	fallbackChars     int
	fallbackSentences int
	batchConcurrency  int
	newRand           RandFactory
	log               *zap.Logger
}

// New creates an Engine with the given options
func New(opts Options) *Engine {
	lex := opts.Lexicon
	if lex == nil {
		lex = lexicon.Default()
	}
	weights := opts.Weights
	if weights == (rank.Weights{}) {
		weights = rank.DefaultWeights()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	newRand := opts.Rand
	if newRand == nil {
		newRand = unseeded
	}

	return &Engine{
		lex:               lex,
		analyzer:          analyze.New(lex),
		ranker:            rank.New(weights),
		transformer:       readability.New(lex),
		validator:         validate.New(lex),
		topN:              orDefault(opts.TopN, DefaultTopN),
		fallbackChars:     orDefault(opts.FallbackChars, DefaultFallbackChars),
		fallbackSentences: orDefault(opts.FallbackSentences, DefaultFallbackSentences),
		batchConcurrency:  orDefault(opts.BatchConcurrency, DefaultBatchConcurrency),
		newRand:           newRand,
		log:               log,
	}
}

// Result is the outcome of one invocation. FellBack tells callers whether the
// outputs came from the fallback path.
type Result struct {
	Outputs            format.Outputs   `json:"outputs"`
	Stages             []Stage          `json:"stages"`
	FellBack           bool             `json:"fell_back"`
	Violations         []string         `json:"violations,omitempty"`
	FallbackViolations []string         `json:"fallback_violations,omitempty"`
	Recovery           analyze.Recovery `json:"recovery"`
	Grade              float64          `json:"grade"`
}

// Simplify runs the full pipeline. It never fails; degraded input ends in the
// fallback outputs.
func (e *Engine) Simplify(text string) Result {
	return e.run(text, e.newRand())
}

// SimplifySeeded runs the pipeline with a source seeded for this call only.
func (e *Engine) SimplifySeeded(text string, seed uint64) Result {
	return e.run(text, format.SeededRand(seed))
}

func (e *Engine) run(text string, rng *rand.Rand) Result {
	res := Result{Stages: []Stage{StageAnalyzing}}
	analyzed := e.analyzer.Analyze(text)
	res.Recovery = analyzed.Recovery

	res.Stages = append(res.Stages, StageRanking)
	ranked := e.ranker.Rank(analyzed, e.topN)
	selected := make([]string, len(ranked))
	for i, s := range ranked {
		selected[i] = s.Text
	}

	res.Stages = append(res.Stages, StageTransforming)
	simplified := e.transformer.Transform(selected)

	res.Stages = append(res.Stages, StageGenerating)
	gen := format.New(e.lex, rng)
	res.Outputs = gen.Generate(simplified, analyzed.Keywords)

	res.Stages = append(res.Stages, StageValidating)
	check := e.validator.Validate(res.Outputs)
	if !check.Valid {
		res.Stages = append(res.Stages, StageFallback)
		res.FellBack = true
		res.Violations = check.Errors
		e.log.Warn("output validation failed, using fallback",
			zap.Strings("violations", check.Errors),
			zap.Int("input_chars", len(text)),
		)

		res.Outputs = gen.Generate(e.fallbackSentencesOf(text), analyzed.Keywords)

		// The fallback is final; a second check only reports.
		if again := e.validator.Validate(res.Outputs); !again.Valid {
			res.FallbackViolations = again.Errors
			e.log.Warn("fallback output violates invariants",
				zap.Strings("violations", again.Errors),
			)
		}
	}

	res.Stages = append(res.Stages, StageDone)
	res.Grade = readability.Grade(res.Outputs.Grade5Explanation)

	e.log.Debug("pipeline complete",
		zap.Int("sentences", len(analyzed.Sentences)),
		zap.Int("selected", len(selected)),
		zap.Bool("fell_back", res.FellBack),
		zap.String("recovery", string(res.Recovery)),
		zap.Float64("grade", res.Grade),
	)
	return res
}

// fallbackSentencesOf takes the first fallbackChars characters of the raw
// input and naively splits them into at most fallbackSentences sentences.
func (e *Engine) fallbackSentencesOf(text string) []string {
	runes := []rune(text)
	if len(runes) > e.fallbackChars {
		runes = runes[:e.fallbackChars]
	}
	sentences := analyze.SplitSentences(string(runes))
	if len(sentences) > e.fallbackSentences {
		sentences = sentences[:e.fallbackSentences]
	}
	return sentences
}

// Name implements Producer.
func (e *Engine) Name() string { return "pipeline" }

// Produce implements Producer. The only error is a cancelled context.
func (e *Engine) Produce(ctx context.Context, text string) (format.Outputs, error) {
	if err := ctx.Err(); err != nil {
		return format.Outputs{}, err
	}
	return e.Simplify(text).Outputs, nil
}

// SimplifyBatch runs independent invocations concurrently, at most
// BatchConcurrency at a time. Results keep input order. Cancellation is
// checked before each item starts.
func (e *Engine) SimplifyBatch(ctx context.Context, texts []string) ([]Result, error) {
	results := make([]Result, len(texts))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.batchConcurrency)
	for i, text := range texts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = e.Simplify(text)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
