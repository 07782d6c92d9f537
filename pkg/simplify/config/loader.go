package config

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify"
	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/internalerr"
	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/lexicon"
	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/producer/canned"
	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/producer/llm"
	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/store"
	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/store/memstore"
	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/store/sqlite"
)

// DefaultProducer names the producer used when a request names none.
const DefaultProducer = "pipeline"

// Loader constructs components from a Config
type Loader struct {
	Config *Config
	Logger *zap.Logger
}

// Components holds everything a binary needs to serve requests
type Components struct {
	Config    Config
	Lexicon   *lexicon.Lexicon
	Engine    *simplify.Engine
	Store     store.Store
	IDs       *store.IDGenerator
	Producers map[string]simplify.Producer
}

// Load builds the lexicon, engine, store and producer registry
func (l *Loader) Load(ctx context.Context) (*Components, error) {
	cfg := Default()
	if l.Config != nil {
		cfg = *l.Config
	}
	log := l.Logger
	if log == nil {
		log = zap.NewNop()
	}

	comp := &Components{Config: cfg, IDs: store.NewIDGenerator()}

	// Load lexicon
	if cfg.LexiconPath != "" {
		lex, err := lexicon.LoadFromYAML(cfg.LexiconPath)
		if err != nil {
			return nil, fmt.Errorf("load lexicon: %w", err)
		}
		comp.Lexicon = lex
	} else {
		comp.Lexicon = lexicon.Default()
	}

	opts := simplify.Options{
		Lexicon:           comp.Lexicon,
		TopN:              cfg.Pipeline.TopN,
		FallbackChars:     cfg.Pipeline.FallbackChars,
		FallbackSentences: cfg.Pipeline.FallbackSentences,
		BatchConcurrency:  cfg.Pipeline.BatchConcurrency,
		Logger:            log.Named("pipeline"),
	}
	if cfg.Pipeline.Seed != nil {
		opts.Rand = simplify.Seeded(*cfg.Pipeline.Seed)
	}
	comp.Engine = simplify.New(opts)

	// Open store
	if cfg.Store.Path != "" {
		st, err := sqlite.OpenSQLite(ctx, cfg.Store.Path)
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		comp.Store = st
	} else {
		comp.Store = memstore.New()
	}

	comp.Producers = map[string]simplify.Producer{
		comp.Engine.Name(): comp.Engine,
	}
	cannedProducer := canned.New(comp.Lexicon)
	comp.Producers[cannedProducer.Name()] = cannedProducer

	completer, err := llm.NewOpenAICompleter(llm.Settings{
		Model:   cfg.LLM.Model,
		APIKey:  cfg.LLM.APIKey,
		BaseURL: cfg.LLM.BaseURL,
	})
	switch {
	case err == nil:
		p := llm.New(completer, comp.Lexicon, log.Named("llm"))
		comp.Producers[p.Name()] = p
	case errors.Is(err, internalerr.ErrProducerUnavailable):
		log.Info("llm producer disabled", zap.Error(err))
	default:
		comp.Store.Close()
		return nil, err
	}

	log.Debug("components loaded",
		zap.Strings("producers", comp.ProducerNames()),
		zap.Bool("sqlite", cfg.Store.Path != ""),
		zap.Any("lexicon", comp.Lexicon.Stats()),
	)
	return comp, nil
}

// Producer looks up a producer by name; "" selects DefaultProducer.
func (c *Components) Producer(name string) (simplify.Producer, error) {
	if name == "" {
		name = DefaultProducer
	}
	p, ok := c.Producers[name]
	if !ok {
		return nil, fmt.Errorf("producer %q: %w", name, internalerr.ErrProducerUnavailable)
	}
	return p, nil
}

// ProducerNames lists registered producers in sorted order.
func (c *Components) ProducerNames() []string {
	names := make([]string, 0, len(c.Producers))
	for name := range c.Producers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Close releases the store.
func (c *Components) Close() error {
	if c.Store == nil {
		return nil
	}
	return c.Store.Close()
}
