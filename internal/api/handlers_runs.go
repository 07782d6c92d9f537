package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/export"
)

// handleListRuns lists recent runs, newest first.
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			jsonError(w, "limit must be a non-negative integer", http.StatusBadRequest)
			return
		}
		limit = n
	}

	runs, err := s.comp.Store.ListRuns(r.Context(), limit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"runs": runs})
}

// handleGetRun returns one run.
func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	run, err := s.comp.Store.GetRun(r.Context(), chi.URLParam(r, "runID"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, run)
}

// handleExportRun renders a run's outputs as a downloadable file.
func (s *Server) handleExportRun(w http.ResponseWriter, r *http.Request) {
	f, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	runID := chi.URLParam(r, "runID")
	run, err := s.comp.Store.GetRun(r.Context(), runID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	body, err := export.Render(run.Outputs, f)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", f.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="run-%s.%s"`, run.ID, f))
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
