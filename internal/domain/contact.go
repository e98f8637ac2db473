// Package domain contains the core data types for the WFD Logger application.
// This package has zero external dependencies beyond uuid/time and is imported
// by every other internal package (contest, repo, service, handler).
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Mode is the scoring mode class of a contact. Winter Field Day scores
// contacts by mode class, not by sub-mode: FT8 and RTTY both score as
// DIGITAL, FM and AM both score as SSB (phone).
type Mode string

// The three WFD scoring mode classes.
const (
	ModeSSB     Mode = "SSB"
	ModeCW      Mode = "CW"
	ModeDigital Mode = "DIGITAL"
)

// modeAliases maps sub-mode names as entered by operators to their scoring
// mode class. Keys are upper-case.
var modeAliases = map[string]Mode{
	"SSB":     ModeSSB,
	"PHONE":   ModeSSB,
	"FM":      ModeSSB,
	"AM":      ModeSSB,
	"CW":      ModeCW,
	"DIGITAL": ModeDigital,
	"DATA":    ModeDigital,
	"FT8":     ModeDigital,
	"FT4":     ModeDigital,
	"PSK31":   ModeDigital,
	"RTTY":    ModeDigital,
	"JS8":     ModeDigital,
	"MSK144":  ModeDigital,
}

// ParseMode normalizes a raw mode string to one of the three scoring mode
// classes. Returns ErrValidation (wrapped) for unrecognized modes so bad
// values are rejected at the boundary instead of surfacing in scoring.
func ParseMode(raw string) (Mode, error) {
	m, ok := modeAliases[strings.ToUpper(strings.TrimSpace(raw))]
	if !ok {
		return "", fmt.Errorf("%w: unknown mode %q", ErrValidation, raw)
	}
	return m, nil
}

// Class is the WFD operating class letter from the exchange.
type Class string

// Operating classes per the WFD exchange format.
const (
	ClassHome    Class = "H"
	ClassIndoor  Class = "I"
	ClassOutdoor Class = "O"
	ClassMobile  Class = "M"
)

// ParseClass normalizes a single class letter. Returns ErrValidation
// (wrapped) for anything other than H, I, O, or M.
func ParseClass(raw string) (Class, error) {
	switch c := Class(strings.ToUpper(strings.TrimSpace(raw))); c {
	case ClassHome, ClassIndoor, ClassOutdoor, ClassMobile:
		return c, nil
	default:
		return "", fmt.Errorf("%w: unknown class %q", ErrValidation, raw)
	}
}

// Exchange is the parsed WFD exchange: transmitter count, operating class,
// and ARRL/RAC section, e.g. "2M EPA".
type Exchange struct {
	TxCount int
	Class   Class
	Section string
}

// String renders the canonical exchange form, e.g. "2M EPA".
// ParseExchange(e.String()) round-trips to an equal Exchange.
func (e Exchange) String() string {
	return fmt.Sprintf("%d%s %s", e.TxCount, e.Class, e.Section)
}

// Band is an amateur-radio band label derived from frequency, e.g. "20m".
type Band string

// BandUnknown is the classification for frequencies outside every defined
// amateur sub-band. It is a valid bucket, not an error: downstream
// aggregation groups such contacts separately rather than failing.
const BandUnknown Band = "unknown"

// Contact represents a single logged QSO.
// Frequency is in MHz. ExchangeReceived is the raw string as copied on the
// air; Exchange is its parsed, validated form. Band and point value are
// derived by the contest package, never stored.
type Contact struct {
	ID               uuid.UUID
	Callsign         string
	Frequency        float64
	Mode             Mode
	RSTSent          string
	RSTReceived      string
	ExchangeSent     string
	ExchangeReceived string
	Exchange         Exchange
	OperatorCallsign string
	Notes            string
	ContactedAt      time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
