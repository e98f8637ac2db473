package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/w1pns/wfd-logger/internal/domain"
)

// setupRequest is the JSON body for POST /setups and PUT /setups/{id}.
// The active flag is deliberately absent: activation only happens through
// POST /setups/{id}/activate, which preserves the single-active invariant.
type setupRequest struct {
	Name                string   `json:"name"`
	StationCallsign     string   `json:"station_callsign"`
	OperatorName        string   `json:"operator_name"`
	OperatorCallsign    string   `json:"operator_callsign"`
	TxCount             int      `json:"tx_count"`
	Class               string   `json:"class"`
	Section             string   `json:"section"`
	Timezone            string   `json:"timezone"`
	PowerLevel          string   `json:"power_level"`
	GridSquare          string   `json:"grid_square"`
	AdditionalOperators []string `json:"additional_operators"`
	EquipmentNotes      string   `json:"equipment_notes"`
}

type setupResponse struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	StationCallsign     string    `json:"station_callsign"`
	OperatorName        string    `json:"operator_name"`
	OperatorCallsign    string    `json:"operator_callsign"`
	TxCount             int       `json:"tx_count"`
	Class               string    `json:"class"`
	Section             string    `json:"section"`
	Exchange            string    `json:"exchange"`
	Timezone            string    `json:"timezone"`
	PowerLevel          string    `json:"power_level"`
	GridSquare          string    `json:"grid_square"`
	AdditionalOperators []string  `json:"additional_operators"`
	EquipmentNotes      string    `json:"equipment_notes"`
	Active              bool      `json:"is_active"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// createSetup handles POST /setups.
func (s *Server) createSetup(w http.ResponseWriter, r *http.Request) {
	var req setupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	created, err := s.setups.Create(r.Context(), requestToSetup(req))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, setupToResponse(created))
}

// listSetups handles GET /setups.
func (s *Server) listSetups(w http.ResponseWriter, r *http.Request) {
	setups, err := s.setups.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	data := make([]setupResponse, len(setups))
	for i, setup := range setups {
		data[i] = setupToResponse(setup)
	}
	writeJSON(w, http.StatusOK, data)
}

// getSetup handles GET /setups/{id}.
func (s *Server) getSetup(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "invalid setup id")
		return
	}

	setup, err := s.setups.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "setup not found")
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, setupToResponse(setup))
}

// updateSetup handles PUT /setups/{id}.
func (s *Server) updateSetup(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "invalid setup id")
		return
	}
	var req setupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	setup := requestToSetup(req)
	setup.ID = id
	updated, err := s.setups.Update(r.Context(), setup)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "setup not found")
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, setupToResponse(updated))
}

// deleteSetup handles DELETE /setups/{id}.
// Deleting the active setup is refused with a validation error.
func (s *Server) deleteSetup(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "invalid setup id")
		return
	}

	if err := s.setups.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "setup not found")
			return
		}
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// activateSetup handles POST /setups/{id}/activate.
func (s *Server) activateSetup(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "invalid setup id")
		return
	}

	activated, err := s.setups.Activate(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "setup not found")
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, setupToResponse(activated))
}

// --- mapping helpers ----------------------------------------------------------

func requestToSetup(req setupRequest) domain.StationSetup {
	return domain.StationSetup{
		Name:                req.Name,
		StationCallsign:     req.StationCallsign,
		OperatorName:        req.OperatorName,
		OperatorCallsign:    req.OperatorCallsign,
		TxCount:             req.TxCount,
		Class:               domain.Class(req.Class),
		Section:             req.Section,
		Timezone:            req.Timezone,
		PowerLevel:          req.PowerLevel,
		GridSquare:          req.GridSquare,
		AdditionalOperators: req.AdditionalOperators,
		EquipmentNotes:      req.EquipmentNotes,
	}
}

func setupToResponse(s domain.StationSetup) setupResponse {
	return setupResponse{
		ID:                  s.ID,
		Name:                s.Name,
		StationCallsign:     s.StationCallsign,
		OperatorName:        s.OperatorName,
		OperatorCallsign:    s.OperatorCallsign,
		TxCount:             s.TxCount,
		Class:               string(s.Class),
		Section:             s.Section,
		Exchange:            s.Exchange().String(),
		Timezone:            s.Timezone,
		PowerLevel:          s.PowerLevel,
		GridSquare:          s.GridSquare,
		AdditionalOperators: s.AdditionalOperators,
		EquipmentNotes:      s.EquipmentNotes,
		Active:              s.Active,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
}
