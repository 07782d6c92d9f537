package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify"
	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/internalerr"
)

// Defaults for the outer surfaces. Pipeline defaults live in package simplify.
const (
	DefaultAddr     = ":8080"
	DefaultMinChars = 50
	DefaultMaxChars = 10000
	DefaultModel    = "gpt-4o-mini"
)

// Config is the YAML configuration file layout
type Config struct {
	Pipeline    Pipeline `yaml:"pipeline"`
	LexiconPath string   `yaml:"lexicon_path"`
	Store       Store    `yaml:"store"`
	Server      Server   `yaml:"server"`
	LLM         LLM      `yaml:"llm"`
}

// Pipeline tunes the simplification engine. Zero values select the engine
// defaults.
type Pipeline struct {
	TopN              int     `yaml:"top_n"`
	FallbackChars     int     `yaml:"fallback_chars"`
	FallbackSentences int     `yaml:"fallback_sentences"`
	BatchConcurrency  int     `yaml:"batch_concurrency"`
	Seed              *uint64 `yaml:"seed"`
}

// Store selects run history persistence; an empty path keeps runs in memory.
type Store struct {
	Path string `yaml:"path"`
}

// Server holds HTTP surface settings.
type Server struct {
	Addr     string `yaml:"addr"`
	MinChars int    `yaml:"min_chars"`
	MaxChars int    `yaml:"max_chars"`
}

// LLM configures the optional chat-model producer.
type LLM struct {
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Pipeline: Pipeline{
			TopN:              simplify.DefaultTopN,
			FallbackChars:     simplify.DefaultFallbackChars,
			FallbackSentences: simplify.DefaultFallbackSentences,
			BatchConcurrency:  simplify.DefaultBatchConcurrency,
		},
		Server: Server{
			Addr:     DefaultAddr,
			MinChars: DefaultMinChars,
			MaxChars: DefaultMaxChars,
		},
		LLM: LLM{Model: DefaultModel},
	}
}

// LoadConfig reads path over the defaults, applies environment overrides and
// validates the result. An empty path skips the file.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w: %v", path, internalerr.ErrInvalidConfig, err)
		}
	}

	cfg.ApplyEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyEnv overrides fields from the environment. Unset variables leave the
// current value.
func (c *Config) ApplyEnv(getenv func(string) string) {
	set := func(dst *string, key string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	set(&c.Server.Addr, "SIMPLIFY_ADDR")
	set(&c.Store.Path, "SIMPLIFY_DB")
	set(&c.LexiconPath, "SIMPLIFY_LEXICON")
	set(&c.LLM.APIKey, "OPENAI_API_KEY")
	set(&c.LLM.Model, "OPENAI_MODEL")
	set(&c.LLM.BaseURL, "OPENAI_BASE_URL")
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	p := c.Pipeline
	check(p.TopN >= 0, "pipeline.top_n must not be negative, got %d", p.TopN)
	check(p.FallbackChars >= 0, "pipeline.fallback_chars must not be negative, got %d", p.FallbackChars)
	check(p.FallbackSentences >= 0, "pipeline.fallback_sentences must not be negative, got %d", p.FallbackSentences)
	check(p.BatchConcurrency >= 0, "pipeline.batch_concurrency must not be negative, got %d", p.BatchConcurrency)

	s := c.Server
	check(s.MinChars >= 0, "server.min_chars must not be negative, got %d", s.MinChars)
	check(s.MaxChars == 0 || s.MaxChars >= s.MinChars,
		"server.max_chars (%d) must be at least server.min_chars (%d)", s.MaxChars, s.MinChars)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", internalerr.ErrInvalidConfig, errors.Join(errs...))
}
