package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify"
	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/internalerr"
	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/readability"
	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/source"
	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/store"
)

const (
	maxBodyBytes   = 1 << 20
	maxUploadBytes = 20 << 20
	maxBatchItems  = 50
)

type simplifyRequest struct {
	Content  string  `json:"content"`
	Seed     *uint64 `json:"seed,omitempty"`
	Producer string  `json:"producer,omitempty"`
}

type batchRequest struct {
	Items []string `json:"items"`
	Seed  *uint64  `json:"seed,omitempty"`
}

// handleSimplify runs one producer over the request content and records the run.
func (s *Server) handleSimplify(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req simplifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid JSON body: "+err.Error(), http.StatusBadRequest)
		return
	}

	run, err := s.simplifyAndStore(r.Context(), req.Content, req.Seed, req.Producer)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, run)
}

// handleSimplifyBatch runs the pipeline over many inputs concurrently.
func (s *Server) handleSimplifyBatch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes*maxBatchItems)

	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid JSON body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(req.Items) == 0 {
		jsonError(w, "at least one item is required", http.StatusBadRequest)
		return
	}
	if len(req.Items) > maxBatchItems {
		jsonError(w, fmt.Sprintf("at most %d items per batch", maxBatchItems), http.StatusBadRequest)
		return
	}
	for i, item := range req.Items {
		if err := s.checkLength(item); err != nil {
			s.writeError(w, fmt.Errorf("item %d: %w", i, err))
			return
		}
	}

	engine := s.comp.Engine
	if req.Seed != nil {
		engine = s.seededEngine(*req.Seed)
	}
	results, err := engine.SimplifyBatch(r.Context(), req.Items)
	if err != nil {
		s.writeError(w, err)
		return
	}

	runs := make([]store.Run, len(results))
	for i, res := range results {
		runs[i] = s.newRun(req.Items[i], engine.Name(), req.Seed)
		fillFromResult(&runs[i], res)
		if err := s.comp.Store.SaveRun(r.Context(), runs[i]); err != nil {
			s.writeError(w, fmt.Errorf("save run: %w", err))
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"runs": runs})
}

// handleSimplifyUpload extracts prose from an uploaded document and simplifies it.
func (s *Server) handleSimplifyUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	extractor, err := source.ForFile(header.Filename)
	if err != nil {
		s.writeError(w, err)
		return
	}
	text, err := extractor.Extract(file)
	if err != nil {
		jsonError(w, "failed to extract text: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	run, err := s.simplifyAndStore(r.Context(), text, nil, r.FormValue("producer"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, run)
}

func (s *Server) simplifyAndStore(ctx context.Context, text string, seed *uint64, producerName string) (store.Run, error) {
	if err := s.checkLength(text); err != nil {
		return store.Run{}, err
	}
	p, err := s.comp.Producer(producerName)
	if err != nil {
		return store.Run{}, err
	}

	engine, ok := p.(*simplify.Engine)
	if !ok {
		// Only the engine consumes a seed.
		seed = nil
	}

	run := s.newRun(text, p.Name(), seed)
	if ok {
		// The engine's full result carries fallback details the interface drops.
		if seed != nil {
			fillFromResult(&run, engine.SimplifySeeded(text, *seed))
		} else {
			fillFromResult(&run, engine.Simplify(text))
		}
	} else {
		out, err := p.Produce(ctx, text)
		if err != nil {
			return store.Run{}, err
		}
		run.Outputs = out
		run.Grade = readability.Grade(out.Grade5Explanation)
	}

	if err := s.comp.Store.SaveRun(ctx, run); err != nil {
		return store.Run{}, fmt.Errorf("save run: %w", err)
	}
	if run.FellBack {
		s.log.Warn("run used fallback", zap.String("run_id", run.ID), zap.Strings("violations", run.Violations))
	}
	return run, nil
}

// checkLength enforces the configured character bounds on input text.
func (s *Server) checkLength(text string) error {
	n := utf8.RuneCountInString(text)
	cfg := s.comp.Config.Server
	if n < cfg.MinChars {
		return fmt.Errorf("content has %d characters, minimum is %d: %w", n, cfg.MinChars, internalerr.ErrInvalidInput)
	}
	if cfg.MaxChars > 0 && n > cfg.MaxChars {
		return fmt.Errorf("content has %d characters, maximum is %d: %w", n, cfg.MaxChars, internalerr.ErrInvalidInput)
	}
	return nil
}

func (s *Server) seededEngine(seed uint64) *simplify.Engine {
	p := s.comp.Config.Pipeline
	return simplify.New(simplify.Options{
		Lexicon:           s.comp.Lexicon,
		TopN:              p.TopN,
		FallbackChars:     p.FallbackChars,
		FallbackSentences: p.FallbackSentences,
		BatchConcurrency:  p.BatchConcurrency,
		Rand:              simplify.Seeded(seed),
		Logger:            s.log.Named("pipeline"),
	})
}

func (s *Server) newRun(text, producer string, seed *uint64) store.Run {
	run := store.Run{
		ID:        s.comp.IDs.New(),
		CreatedAt: s.now().UTC(),
		Producer:  producer,
		Input:     text,
	}
	if seed != nil {
		run.Seed = *seed
	}
	return run
}

func fillFromResult(run *store.Run, res simplify.Result) {
	run.Outputs = res.Outputs
	run.FellBack = res.FellBack
	run.Violations = res.Violations
	run.Grade = res.Grade
}

// writeError maps sentinel errors onto HTTP status codes.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var maxErr *http.MaxBytesError
	switch {
	case errors.Is(err, internalerr.ErrInvalidInput),
		errors.Is(err, internalerr.ErrUnsupportedFormat),
		errors.Is(err, internalerr.ErrProducerUnavailable):
		jsonError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, internalerr.ErrNotFound):
		jsonError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, internalerr.ErrInvalidOutput):
		jsonError(w, err.Error(), http.StatusBadGateway)
	case errors.As(err, &maxErr):
		jsonError(w, err.Error(), http.StatusRequestEntityTooLarge)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		jsonError(w, err.Error(), http.StatusServiceUnavailable)
	default:
		s.log.Error("request failed", zap.Error(err))
		jsonError(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}
