package domain

import (
	"time"

	"github.com/google/uuid"
)

// StationSetup is the operating-station configuration for the contest.
// At most one setup is active at a time; the repo's Activate operation
// preserves that invariant transactionally. Class and Section use the same
// validated enumerations as exchange parsing.
type StationSetup struct {
	ID                  uuid.UUID
	Name                string
	StationCallsign     string
	OperatorName        string
	OperatorCallsign    string
	TxCount             int
	Class               Class
	Section             string
	Timezone            string
	PowerLevel          string
	GridSquare          string
	AdditionalOperators []string
	EquipmentNotes      string
	Active              bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Exchange returns the exchange this station sends, e.g. "1H EPA" for a
// single-transmitter home station in Eastern Pennsylvania.
func (s StationSetup) Exchange() Exchange {
	return Exchange{TxCount: s.TxCount, Class: s.Class, Section: s.Section}
}

// Operators returns the full operator list: the primary operator callsign
// followed by any additional operators, without duplicates.
func (s StationSetup) Operators() []string {
	ops := []string{s.OperatorCallsign}
	for _, op := range s.AdditionalOperators {
		if op != "" && op != s.OperatorCallsign {
			ops = append(ops, op)
		}
	}
	return ops
}
