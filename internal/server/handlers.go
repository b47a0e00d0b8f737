package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/tacctile/handicap-app-sub002/internal/analyzers"
	"github.com/tacctile/handicap-app-sub002/internal/card"
	"github.com/tacctile/handicap-app-sub002/internal/engine"
	"github.com/tacctile/handicap-app-sub002/internal/model"
	"github.com/tacctile/handicap-app-sub002/internal/recorder"
)

// Handler contains dependencies for HTTP handlers.
type Handler struct {
	runner *analyzers.Runner
	rec    recorder.Recorder
	opts   engine.Options
}

// NewHandler creates a new handler.
func NewHandler(runner *analyzers.Runner, rec recorder.Recorder, opts engine.Options) *Handler {
	return &Handler{runner: runner, rec: rec, opts: opts}
}

// HealthCheck returns service health.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "ticket-engine",
	})
}

// Analyze runs the engine on a posted race card and returns the full ticket
// construction.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var c model.RaceCard
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}
	if err := card.Validate(&c); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	set := h.runner.RunAll(r.Context(), &c)
	tc := engine.Analyze(&c, set, h.opts)

	// Persistence must not delay or fail the response.
	go func() {
		if _, err := h.rec.RecordAnalysis(&recorder.Analysis{Card: &c, Result: tc}); err != nil {
			log.Printf("[ERROR] record analysis %s: %v", c.RaceID, err)
		}
	}()

	respondJSON(w, http.StatusOK, tc)
}

// respondJSON writes a JSON response.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response.
func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}
