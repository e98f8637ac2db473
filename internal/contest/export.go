package contest

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/w1pns/wfd-logger/internal/domain"
)

// SerializationError names the contact and field that prevented an export
// from rendering. A contest log with silently dropped contacts is invalid
// for submission, so one unrenderable contact fails the whole export.
// It unwraps to domain.ErrSerialization.
type SerializationError struct {
	Format   string
	ID       uuid.UUID
	Callsign string
	Field    string
}

func (e *SerializationError) Error() string {
	who := e.Callsign
	if who == "" {
		who = e.ID.String()
	}
	return fmt.Sprintf("%s export: contact %s: missing %s", e.Format, who, e.Field)
}

func (e *SerializationError) Unwrap() error {
	return domain.ErrSerialization
}

// validateForExport checks the fields both export formats require.
// Exchange validity is guaranteed at ingestion; this guards the fields a
// direct database edit could have emptied.
func validateForExport(format string, c domain.Contact) error {
	missing := ""
	switch {
	case c.Callsign == "":
		missing = "callsign"
	case c.ContactedAt.IsZero():
		missing = "timestamp"
	case c.Frequency <= 0:
		missing = "frequency"
	case c.Mode == "":
		missing = "mode"
	}
	if missing != "" {
		return &SerializationError{Format: format, ID: c.ID, Callsign: c.Callsign, Field: missing}
	}
	return nil
}

// chronological returns a copy of contacts sorted by contact time ascending,
// the order both export formats mandate.
func chronological(contacts []domain.Contact) []domain.Contact {
	ordered := make([]domain.Contact, len(contacts))
	copy(ordered, contacts)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].ContactedAt.Before(ordered[j].ContactedAt)
	})
	return ordered
}
