package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/w1pns/wfd-logger/internal/contest"
	"github.com/w1pns/wfd-logger/internal/domain"
)

// contactRequest is the JSON body for POST /contacts and PUT /contacts/{id}.
// Mode accepts sub-mode names (FT8, RTTY, FM, ...) which the service
// normalizes to scoring mode classes. AllowDuplicate lets the operator log
// a contact the duplicate check would otherwise reject.
type contactRequest struct {
	Callsign         string     `json:"callsign"`
	Frequency        float64    `json:"frequency"`
	Mode             string     `json:"mode"`
	RSTSent          string     `json:"rst_sent"`
	RSTReceived      string     `json:"rst_received"`
	ExchangeSent     string     `json:"exchange_sent"`
	ExchangeReceived string     `json:"exchange_received"`
	OperatorCallsign string     `json:"operator_callsign"`
	Notes            string     `json:"notes"`
	ContactedAt      *time.Time `json:"contacted_at"`
	AllowDuplicate   bool       `json:"allow_duplicate"`
}

// contactResponse is the JSON shape of a logged contact. Band is derived
// from frequency on the way out; it is never stored.
type contactResponse struct {
	ID               uuid.UUID   `json:"id"`
	Callsign         string      `json:"callsign"`
	Frequency        float64     `json:"frequency"`
	Band             domain.Band `json:"band"`
	Mode             domain.Mode `json:"mode"`
	RSTSent          string      `json:"rst_sent"`
	RSTReceived      string      `json:"rst_received"`
	ExchangeSent     string      `json:"exchange_sent"`
	ExchangeReceived string      `json:"exchange_received"`
	TxCount          int         `json:"tx_count"`
	Class            string      `json:"class"`
	Section          string      `json:"section"`
	OperatorCallsign string      `json:"operator_callsign"`
	Notes            string      `json:"notes"`
	ContactedAt      time.Time   `json:"contacted_at"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// pagination echoes the effective paging parameters alongside list results.
type pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

type contactListResponse struct {
	Data       []contactResponse `json:"data"`
	Pagination pagination        `json:"pagination"`
}

// checkDuplicateResponse is the body for GET /contacts/check-duplicate.
// DuplicateOf is present only when Duplicate is true.
type checkDuplicateResponse struct {
	Duplicate   bool             `json:"duplicate"`
	DuplicateOf *contactResponse `json:"duplicate_of,omitempty"`
}

// createContact handles POST /contacts.
func (s *Server) createContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	created, err := s.contacts.Create(r.Context(), requestToContact(req), req.AllowDuplicate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, contactToResponse(created))
}

// listContacts handles GET /contacts.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) listContacts(w http.ResponseWriter, r *http.Request) {
	params := domain.NewPaginationParams(queryInt(r, "page"), queryInt(r, "limit"))
	contacts, total, err := s.contacts.ListPaged(r.Context(), params)
	if err != nil {
		writeError(w, err)
		return
	}

	data := make([]contactResponse, len(contacts))
	for i, c := range contacts {
		data[i] = contactToResponse(c)
	}
	writeJSON(w, http.StatusOK, contactListResponse{
		Data: data,
		Pagination: pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	})
}

// getContact handles GET /contacts/{id}.
func (s *Server) getContact(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "invalid contact id")
		return
	}

	contact, err := s.contacts.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "contact not found")
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contactToResponse(contact))
}

// updateContact handles PUT /contacts/{id}.
func (s *Server) updateContact(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "invalid contact id")
		return
	}
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	contact := requestToContact(req)
	contact.ID = id
	updated, err := s.contacts.Update(r.Context(), contact, req.AllowDuplicate)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "contact not found")
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contactToResponse(updated))
}

// deleteContact handles DELETE /contacts/{id}.
func (s *Server) deleteContact(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "invalid contact id")
		return
	}

	if err := s.contacts.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "contact not found")
			return
		}
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// checkDuplicate handles GET /contacts/check-duplicate.
// It answers from ?callsign=, ?frequency= (MHz), and ?mode= without
// persisting anything, so the UI can warn before the operator submits.
func (s *Server) checkDuplicate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	callsign := q.Get("callsign")
	if callsign == "" {
		writeBadRequest(w, "callsign query parameter is required")
		return
	}
	frequency, err := strconv.ParseFloat(q.Get("frequency"), 64)
	if err != nil {
		writeBadRequest(w, "frequency query parameter must be a number")
		return
	}
	mode, err := domain.ParseMode(q.Get("mode"))
	if err != nil {
		writeError(w, err)
		return
	}

	candidate := domain.Contact{Callsign: callsign, Frequency: frequency, Mode: mode}
	dupe, found, err := s.contacts.CheckDuplicate(r.Context(), candidate)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := checkDuplicateResponse{Duplicate: found}
	if found {
		body := contactToResponse(dupe)
		resp.DuplicateOf = &body
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- mapping helpers ----------------------------------------------------------

// requestToContact converts a request body into a domain.Contact.
// Validation and normalization happen in the service, not here.
func requestToContact(req contactRequest) domain.Contact {
	c := domain.Contact{
		Callsign:         req.Callsign,
		Frequency:        req.Frequency,
		Mode:             domain.Mode(req.Mode),
		RSTSent:          req.RSTSent,
		RSTReceived:      req.RSTReceived,
		ExchangeSent:     req.ExchangeSent,
		ExchangeReceived: req.ExchangeReceived,
		OperatorCallsign: req.OperatorCallsign,
		Notes:            req.Notes,
	}
	if req.ContactedAt != nil {
		c.ContactedAt = *req.ContactedAt
	}
	return c
}

// contactToResponse converts a domain.Contact into its JSON shape,
// deriving the band from the stored frequency.
func contactToResponse(c domain.Contact) contactResponse {
	return contactResponse{
		ID:               c.ID,
		Callsign:         c.Callsign,
		Frequency:        c.Frequency,
		Band:             contest.ClassifyBand(c.Frequency),
		Mode:             c.Mode,
		RSTSent:          c.RSTSent,
		RSTReceived:      c.RSTReceived,
		ExchangeSent:     c.ExchangeSent,
		ExchangeReceived: c.ExchangeReceived,
		TxCount:          c.Exchange.TxCount,
		Class:            string(c.Exchange.Class),
		Section:          c.Exchange.Section,
		OperatorCallsign: c.OperatorCallsign,
		Notes:            c.Notes,
		ContactedAt:      c.ContactedAt,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

// queryInt parses an optional integer query parameter, returning nil when
// the parameter is absent or not an integer.
func queryInt(r *http.Request, name string) *int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
