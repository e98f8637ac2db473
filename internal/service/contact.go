// Package service contains the business logic for the WFD Logger API.
// Services validate inputs, enforce contest rules, and orchestrate repo
// calls. No SQL lives here — services depend on repo interfaces, not
// implementations — and no scoring math either, which belongs to contest.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/w1pns/wfd-logger/internal/contest"
	"github.com/w1pns/wfd-logger/internal/domain"
	"github.com/w1pns/wfd-logger/internal/repo"
)

// ContactService implements business logic for logged contacts.
type ContactService struct {
	contacts repo.ContactRepo
}

// NewContactService constructs a ContactService backed by the provided ContactRepo.
func NewContactService(r repo.ContactRepo) *ContactService {
	return &ContactService{contacts: r}
}

// Create validates, normalizes, and persists a new contact.
// Returns domain.ErrValidation for a malformed submission and
// domain.ErrDuplicate when the same callsign was already worked on this
// band and mode, unless allowDuplicate is set.
func (s *ContactService) Create(ctx context.Context, contact domain.Contact, allowDuplicate bool) (domain.Contact, error) {
	normalized, err := normalizeContact(contact)
	if err != nil {
		return domain.Contact{}, err
	}
	if !allowDuplicate {
		if dupe, found, err := s.findDuplicate(ctx, normalized); err != nil {
			return domain.Contact{}, fmt.Errorf("service.ContactService.Create: %w", err)
		} else if found {
			return domain.Contact{}, fmt.Errorf("%w: %s already worked on this band and mode at %s",
				domain.ErrDuplicate, dupe.Callsign, dupe.ContactedAt.UTC().Format(time.RFC3339))
		}
	}
	result, err := s.contacts.Create(ctx, normalized)
	if err != nil {
		return domain.Contact{}, fmt.Errorf("service.ContactService.Create: %w", err)
	}
	return result, nil
}

// CheckDuplicate reports whether the candidate would be a duplicate of an
// already-logged contact, without persisting anything. Used by the UI to
// warn the operator before submission.
func (s *ContactService) CheckDuplicate(ctx context.Context, contact domain.Contact) (domain.Contact, bool, error) {
	dupe, found, err := s.findDuplicate(ctx, contact)
	if err != nil {
		return domain.Contact{}, false, fmt.Errorf("service.ContactService.CheckDuplicate: %w", err)
	}
	return dupe, found, nil
}

// GetByID returns a single contact by ID.
// Returns domain.ErrNotFound if no contact with that ID exists.
func (s *ContactService) GetByID(ctx context.Context, id uuid.UUID) (domain.Contact, error) {
	result, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		return domain.Contact{}, fmt.Errorf("service.ContactService.GetByID: %w", err)
	}
	return result, nil
}

// List returns the full log ordered by contact time ascending.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ContactService) List(ctx context.Context) ([]domain.Contact, error) {
	contacts, err := s.contacts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ContactService.List: %w", err)
	}
	if contacts == nil {
		return []domain.Contact{}, nil
	}
	return contacts, nil
}

// ListPaged returns one page of the log, most recent first, plus the total count.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ContactService) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Contact, int64, error) {
	contacts, total, err := s.contacts.ListPaged(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.ContactService.ListPaged: %w", err)
	}
	if contacts == nil {
		return []domain.Contact{}, total, nil
	}
	return contacts, total, nil
}

// Update validates, normalizes, and persists changes to an existing contact.
// The duplicate check skips the contact's own row so edits that keep the
// callsign, band, and mode do not self-collide.
func (s *ContactService) Update(ctx context.Context, contact domain.Contact, allowDuplicate bool) (domain.Contact, error) {
	normalized, err := normalizeContact(contact)
	if err != nil {
		return domain.Contact{}, err
	}
	if !allowDuplicate {
		if dupe, found, err := s.findDuplicate(ctx, normalized); err != nil {
			return domain.Contact{}, fmt.Errorf("service.ContactService.Update: %w", err)
		} else if found {
			return domain.Contact{}, fmt.Errorf("%w: %s already worked on this band and mode at %s",
				domain.ErrDuplicate, dupe.Callsign, dupe.ContactedAt.UTC().Format(time.RFC3339))
		}
	}
	result, err := s.contacts.Update(ctx, normalized)
	if err != nil {
		return domain.Contact{}, fmt.Errorf("service.ContactService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a contact by ID.
// Returns domain.ErrNotFound if the contact does not exist.
func (s *ContactService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.contacts.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ContactService.Delete: %w", err)
	}
	return nil
}

// findDuplicate loads the current log and scans it for a contact matching
// the candidate's callsign, band, and mode.
func (s *ContactService) findDuplicate(ctx context.Context, candidate domain.Contact) (domain.Contact, bool, error) {
	existing, err := s.contacts.List(ctx)
	if err != nil {
		return domain.Contact{}, false, err
	}
	dupe, found := contest.FindDuplicate(candidate, existing)
	return dupe, found, nil
}

// normalizeContact enforces business rules common to Create and Update and
// fills derived and defaulted fields:
//   - Callsign must be non-empty; it is trimmed and upper-cased.
//   - Frequency must be positive (MHz).
//   - Mode must normalize to one of the scoring mode classes.
//   - The received exchange must parse; its canonical form and parsed
//     fields replace whatever spacing the operator typed.
//   - RST defaults to 59 and ContactedAt to the current UTC time.
func normalizeContact(c domain.Contact) (domain.Contact, error) {
	c.Callsign = strings.ToUpper(strings.TrimSpace(c.Callsign))
	if c.Callsign == "" {
		return domain.Contact{}, fmt.Errorf("%w: callsign is required", domain.ErrValidation)
	}
	if c.Frequency <= 0 {
		return domain.Contact{}, fmt.Errorf("%w: frequency must be positive", domain.ErrValidation)
	}

	mode, err := domain.ParseMode(string(c.Mode))
	if err != nil {
		return domain.Contact{}, err
	}
	c.Mode = mode

	exchange, err := contest.ParseExchange(c.ExchangeReceived)
	if err != nil {
		return domain.Contact{}, err
	}
	c.Exchange = exchange
	c.ExchangeReceived = exchange.String()

	if c.RSTSent == "" {
		c.RSTSent = "59"
	}
	if c.RSTReceived == "" {
		c.RSTReceived = "59"
	}
	if c.ContactedAt.IsZero() {
		c.ContactedAt = time.Now().UTC()
	}
	return c, nil
}
