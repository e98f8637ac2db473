package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/w1pns/wfd-logger/internal/contest"
	"github.com/w1pns/wfd-logger/internal/domain"
	"github.com/w1pns/wfd-logger/internal/repo"
)

// SetupService implements business logic for station setups.
type SetupService struct {
	setups repo.SetupRepo
}

// NewSetupService constructs a SetupService backed by the provided SetupRepo.
func NewSetupService(r repo.SetupRepo) *SetupService {
	return &SetupService{setups: r}
}

// Create validates and persists a new setup. New setups start inactive.
func (s *SetupService) Create(ctx context.Context, setup domain.StationSetup) (domain.StationSetup, error) {
	normalized, err := normalizeSetup(setup)
	if err != nil {
		return domain.StationSetup{}, err
	}
	result, err := s.setups.Create(ctx, normalized)
	if err != nil {
		return domain.StationSetup{}, fmt.Errorf("service.SetupService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single setup by ID.
// Returns domain.ErrNotFound if no setup with that ID exists.
func (s *SetupService) GetByID(ctx context.Context, id uuid.UUID) (domain.StationSetup, error) {
	result, err := s.setups.GetByID(ctx, id)
	if err != nil {
		return domain.StationSetup{}, fmt.Errorf("service.SetupService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all setups, most recently created first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *SetupService) List(ctx context.Context) ([]domain.StationSetup, error) {
	setups, err := s.setups.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.SetupService.List: %w", err)
	}
	if setups == nil {
		return []domain.StationSetup{}, nil
	}
	return setups, nil
}

// Update validates and persists changes to an existing setup.
func (s *SetupService) Update(ctx context.Context, setup domain.StationSetup) (domain.StationSetup, error) {
	normalized, err := normalizeSetup(setup)
	if err != nil {
		return domain.StationSetup{}, err
	}
	result, err := s.setups.Update(ctx, normalized)
	if err != nil {
		return domain.StationSetup{}, fmt.Errorf("service.SetupService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a setup by ID. The active setup cannot be deleted —
// deactivate it by activating another setup first. This keeps exports from
// silently losing their station header mid-contest.
func (s *SetupService) Delete(ctx context.Context, id uuid.UUID) error {
	setup, err := s.setups.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("service.SetupService.Delete: %w", err)
	}
	if setup.Active {
		return fmt.Errorf("%w: cannot delete the active setup", domain.ErrValidation)
	}
	if err := s.setups.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.SetupService.Delete: %w", err)
	}
	return nil
}

// Activate marks the given setup active and all others inactive.
// Returns domain.ErrNotFound if the setup does not exist.
func (s *SetupService) Activate(ctx context.Context, id uuid.UUID) (domain.StationSetup, error) {
	result, err := s.setups.Activate(ctx, id)
	if err != nil {
		return domain.StationSetup{}, fmt.Errorf("service.SetupService.Activate: %w", err)
	}
	return result, nil
}

// GetActive returns the currently active setup.
// Returns domain.ErrNotFound when no setup is active.
func (s *SetupService) GetActive(ctx context.Context) (domain.StationSetup, error) {
	result, err := s.setups.GetActive(ctx)
	if err != nil {
		return domain.StationSetup{}, fmt.Errorf("service.SetupService.GetActive: %w", err)
	}
	return result, nil
}

// normalizeSetup enforces business rules common to Create and Update.
// Class and section use the same enumerations the exchange parser accepts,
// so a setup can never send an exchange the parser would reject.
func normalizeSetup(s domain.StationSetup) (domain.StationSetup, error) {
	if strings.TrimSpace(s.Name) == "" {
		return domain.StationSetup{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	s.StationCallsign = strings.ToUpper(strings.TrimSpace(s.StationCallsign))
	if s.StationCallsign == "" {
		return domain.StationSetup{}, fmt.Errorf("%w: station callsign is required", domain.ErrValidation)
	}
	if s.TxCount < 1 {
		return domain.StationSetup{}, fmt.Errorf("%w: transmitter count must be at least 1", domain.ErrValidation)
	}
	class, err := domain.ParseClass(string(s.Class))
	if err != nil {
		return domain.StationSetup{}, err
	}
	s.Class = class
	s.Section = strings.ToUpper(strings.TrimSpace(s.Section))
	if !contest.ValidSection(s.Section) {
		return domain.StationSetup{}, fmt.Errorf("%w: unknown section %q", domain.ErrValidation, s.Section)
	}
	s.OperatorCallsign = strings.ToUpper(strings.TrimSpace(s.OperatorCallsign))
	if s.AdditionalOperators == nil {
		s.AdditionalOperators = []string{}
	}
	return s, nil
}
