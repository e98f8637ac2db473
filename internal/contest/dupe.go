package contest

import (
	"strings"

	"github.com/w1pns/wfd-logger/internal/domain"
)

// FindDuplicate reports whether candidate duplicates a contact already in
// the log under WFD rules: the same normalized callsign worked on the same
// band with the same mode counts once for the whole contest, no matter the
// exact frequency within the band and no matter how much time has passed.
// BandUnknown matches only BandUnknown.
//
// A contact with the same ID as the candidate never matches, so re-validating
// an edit does not flag the contact as a duplicate of itself.
//
// Returns the first matching logged contact so callers can tell the operator
// when the station was first worked.
func FindDuplicate(candidate domain.Contact, existing []domain.Contact) (domain.Contact, bool) {
	call := normalizeCallsign(candidate.Callsign)
	band := ClassifyBand(candidate.Frequency)

	for _, c := range existing {
		if c.ID == candidate.ID {
			continue
		}
		if normalizeCallsign(c.Callsign) == call &&
			ClassifyBand(c.Frequency) == band &&
			c.Mode == candidate.Mode {
			return c, true
		}
	}
	return domain.Contact{}, false
}

// normalizeCallsign upper-cases and trims a callsign for comparison.
func normalizeCallsign(callsign string) string {
	return strings.ToUpper(strings.TrimSpace(callsign))
}
