package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/w1pns/wfd-logger/internal/domain"
)

// objectiveRequest is the JSON body for PUT /objectives.
type objectiveRequest struct {
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
	Notes     string `json:"notes"`
}

type objectiveFlagResponse struct {
	Name        string     `json:"name"`
	Completed   bool       `json:"completed"`
	Notes       string     `json:"notes"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// getScore handles GET /score. The snapshot is recomputed from the full
// log on every call, so it can never be stale.
func (s *Server) getScore(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.reports.Score(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

// getAnalytics handles GET /analytics.
func (s *Server) getAnalytics(w http.ResponseWriter, r *http.Request) {
	summary, err := s.reports.Analytics(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// listObjectives handles GET /objectives: the full objective catalog with
// recorded completion state merged in.
func (s *Server) listObjectives(w http.ResponseWriter, r *http.Request) {
	objectives, err := s.reports.ListObjectives(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, objectives)
}

// setObjective handles PUT /objectives, recording the completion state of
// one objective by name.
func (s *Server) setObjective(w http.ResponseWriter, r *http.Request) {
	var req objectiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	flag, err := s.reports.SetObjective(r.Context(), domain.ObjectiveFlag{
		Name:      req.Name,
		Completed: req.Completed,
		Notes:     req.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, objectiveFlagResponse{
		Name:        flag.Name,
		Completed:   flag.Completed,
		Notes:       flag.Notes,
		CompletedAt: flag.CompletedAt,
	})
}
