package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/w1pns/wfd-logger/internal/contest"
	"github.com/w1pns/wfd-logger/internal/domain"
	"github.com/w1pns/wfd-logger/internal/repo"
)

// Export format identifiers accepted by ExportService.Export.
const (
	FormatCabrillo = "cabrillo"
	FormatADIF     = "adif"
)

// ExportFile is a rendered log export ready to be served as a download.
type ExportFile struct {
	Filename string
	Content  string
}

// ExportService renders the full log in contest submission formats.
type ExportService struct {
	contacts   repo.ContactRepo
	setups     repo.SetupRepo
	objectives repo.ObjectiveRepo
	rules      contest.Rules
}

// NewExportService constructs an ExportService for the given rule set.
func NewExportService(contacts repo.ContactRepo, setups repo.SetupRepo, objectives repo.ObjectiveRepo, rules contest.Rules) *ExportService {
	return &ExportService{contacts: contacts, setups: setups, objectives: objectives, rules: rules}
}

// Export renders the full log in the named format.
// Cabrillo requires an active station setup for the log header and claims
// the currently computed score; ADIF needs neither. Returns
// domain.ErrValidation for an unknown format or when Cabrillo is requested
// without an active setup, and domain.ErrSerialization (wrapped) when a
// logged contact is missing a field the format requires.
func (s *ExportService) Export(ctx context.Context, format string) (ExportFile, error) {
	contacts, err := s.contacts.List(ctx)
	if err != nil {
		return ExportFile{}, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatCabrillo:
		return s.exportCabrillo(ctx, contacts)
	case FormatADIF:
		return s.exportADIF(contacts)
	default:
		return ExportFile{}, fmt.Errorf("%w: unknown export format %q", domain.ErrValidation, format)
	}
}

func (s *ExportService) exportCabrillo(ctx context.Context, contacts []domain.Contact) (ExportFile, error) {
	setup, err := s.setups.GetActive(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ExportFile{}, fmt.Errorf("%w: cabrillo export requires an active station setup", domain.ErrValidation)
		}
		return ExportFile{}, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	flags, err := loadObjectiveFlags(ctx, s.objectives)
	if err != nil {
		return ExportFile{}, fmt.Errorf("service.ExportService.Export: %w", err)
	}
	claimed := contest.Score(contacts, s.rules, flags).Total

	content, err := contest.Cabrillo(contacts, setup, claimed)
	if err != nil {
		return ExportFile{}, fmt.Errorf("service.ExportService.Export: %w", err)
	}
	return ExportFile{
		Filename: setup.StationCallsign + ".log",
		Content:  content,
	}, nil
}

func (s *ExportService) exportADIF(contacts []domain.Contact) (ExportFile, error) {
	content, err := contest.ADIF(contacts)
	if err != nil {
		return ExportFile{}, fmt.Errorf("service.ExportService.Export: %w", err)
	}
	return ExportFile{Filename: "wfd_log.adi", Content: content}, nil
}
