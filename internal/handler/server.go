// Package handler implements the HTTP handlers for the WFD Logger API.
// All handlers are methods on Server. Methods are split into
// domain-specific files (contact.go, setup.go, etc.) but all share the
// same Server struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/w1pns/wfd-logger/internal/contest"
	"github.com/w1pns/wfd-logger/internal/domain"
	"github.com/w1pns/wfd-logger/internal/service"
)

// ContactServicer defines the business operations the contact handlers
// depend on. Defining the interface here (in the consumer package) follows
// the Go convention: "accept interfaces, return concrete types". It lets
// handler tests inject a mock without touching the database or service layer.
type ContactServicer interface {
	Create(ctx context.Context, contact domain.Contact, allowDuplicate bool) (domain.Contact, error)
	CheckDuplicate(ctx context.Context, contact domain.Contact) (domain.Contact, bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Contact, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Contact, int64, error)
	Update(ctx context.Context, contact domain.Contact, allowDuplicate bool) (domain.Contact, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SetupServicer defines the business operations the setup handlers depend on.
type SetupServicer interface {
	Create(ctx context.Context, setup domain.StationSetup) (domain.StationSetup, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.StationSetup, error)
	List(ctx context.Context) ([]domain.StationSetup, error)
	Update(ctx context.Context, setup domain.StationSetup) (domain.StationSetup, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Activate(ctx context.Context, id uuid.UUID) (domain.StationSetup, error)
}

// ReportServicer defines the score, analytics, and objective operations the
// report handlers depend on.
type ReportServicer interface {
	Score(ctx context.Context) (contest.Snapshot, error)
	Analytics(ctx context.Context) (contest.Summary, error)
	ListObjectives(ctx context.Context) ([]domain.ObjectiveStatus, error)
	SetObjective(ctx context.Context, flag domain.ObjectiveFlag) (domain.ObjectiveFlag, error)
}

// ExportServicer defines the log export operation the export handler depends on.
type ExportServicer interface {
	Export(ctx context.Context, format string) (service.ExportFile, error)
}

// Server holds the service dependencies for all API endpoints.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	contacts ContactServicer
	setups   SetupServicer
	reports  ReportServicer
	exports  ExportServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(contacts ContactServicer, setups SetupServicer, reports ReportServicer, exports ExportServicer) *Server {
	return &Server{contacts: contacts, setups: setups, reports: reports, exports: exports}
}

// Routes registers every API endpoint on a fresh chi router.
// Wire middleware around the returned router in main.go.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.getHealth)

	r.Route("/contacts", func(r chi.Router) {
		r.Get("/", s.listContacts)
		r.Post("/", s.createContact)
		r.Get("/check-duplicate", s.checkDuplicate)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.getContact)
			r.Put("/", s.updateContact)
			r.Delete("/", s.deleteContact)
		})
	})

	r.Route("/setups", func(r chi.Router) {
		r.Get("/", s.listSetups)
		r.Post("/", s.createSetup)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.getSetup)
			r.Put("/", s.updateSetup)
			r.Delete("/", s.deleteSetup)
			r.Post("/activate", s.activateSetup)
		})
	})

	r.Get("/score", s.getScore)
	r.Get("/analytics", s.getAnalytics)
	r.Get("/objectives", s.listObjectives)
	r.Put("/objectives", s.setObjective)
	r.Get("/export", s.getExport)

	return r
}
