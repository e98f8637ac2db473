package contest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/w1pns/wfd-logger/internal/domain"
)

// ValidationReason identifies why an exchange string failed to parse.
// Reasons are distinct and reported individually, never merged, so the
// operator gets an actionable message for exactly what they mistyped.
type ValidationReason string

// The exchange validation failure reasons.
const (
	ReasonMissingCount    ValidationReason = "missing_count"
	ReasonInvalidClass    ValidationReason = "invalid_class"
	ReasonMissingSection  ValidationReason = "missing_section"
	ReasonUnknownSection  ValidationReason = "unknown_section"
	ReasonMalformedFormat ValidationReason = "malformed_format"
)

// ValidationError carries a single failure reason for a rejected exchange.
// It unwraps to domain.ErrValidation so handlers can map it to HTTP 422
// with errors.Is without knowing about this package.
type ValidationError struct {
	Reason  ValidationReason
	Message string
}

func (e *ValidationError) Error() string {
	return "invalid exchange: " + e.Message
}

func (e *ValidationError) Unwrap() error {
	return domain.ErrValidation
}

// ParseExchange parses and validates a raw WFD exchange string such as
// "2M EPA": one or more digits for the transmitter count (value >= 1), a
// class letter (H, I, O, or M), a space, and a known ARRL/RAC section code.
// Parsing is case-insensitive, tolerates surrounding whitespace, and
// collapses internal runs of spaces. On failure the returned error is a
// *ValidationError with one of the ValidationReason values.
//
// ParseExchange is deterministic and performs no I/O: the same input always
// yields the same result.
func ParseExchange(raw string) (domain.Exchange, error) {
	fields := strings.Fields(strings.ToUpper(raw))

	switch len(fields) {
	case 0:
		return domain.Exchange{}, &ValidationError{
			Reason:  ReasonMalformedFormat,
			Message: "exchange is required, e.g. \"2M EPA\"",
		}
	case 1:
		// A lone well-formed category ("2M") means the section was dropped;
		// anything else is not an exchange at all.
		if _, _, err := parseCategory(fields[0]); err == nil {
			return domain.Exchange{}, &ValidationError{
				Reason:  ReasonMissingSection,
				Message: fmt.Sprintf("missing section after %q, e.g. \"%s EPA\"", fields[0], fields[0]),
			}
		}
		return domain.Exchange{}, &ValidationError{
			Reason:  ReasonMalformedFormat,
			Message: fmt.Sprintf("%q is not a valid exchange; expected count, class, and section, e.g. \"2M EPA\"", raw),
		}
	case 2:
		// Handled below.
	default:
		return domain.Exchange{}, &ValidationError{
			Reason:  ReasonMalformedFormat,
			Message: fmt.Sprintf("exchange must have exactly two parts, got %d", len(fields)),
		}
	}

	count, class, err := parseCategory(fields[0])
	if err != nil {
		return domain.Exchange{}, err
	}

	section := fields[1]
	if !ValidSection(section) {
		return domain.Exchange{}, &ValidationError{
			Reason:  ReasonUnknownSection,
			Message: fmt.Sprintf("unknown section %q; must be an ARRL/RAC section, MX, or DX", section),
		}
	}

	return domain.Exchange{TxCount: count, Class: class, Section: section}, nil
}

// parseCategory splits a category token like "2M" into its transmitter
// count and class letter. The token must already be upper-cased.
func parseCategory(token string) (int, domain.Class, error) {
	i := 0
	for i < len(token) && token[i] >= '0' && token[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, "", &ValidationError{
			Reason:  ReasonMissingCount,
			Message: fmt.Sprintf("category %q must start with the transmitter count, e.g. \"1H\"", token),
		}
	}

	count, err := strconv.Atoi(token[:i])
	if err != nil || count < 1 {
		return 0, "", &ValidationError{
			Reason:  ReasonMissingCount,
			Message: fmt.Sprintf("transmitter count in %q must be at least 1", token),
		}
	}

	if i+1 != len(token) {
		return 0, "", &ValidationError{
			Reason:  ReasonInvalidClass,
			Message: fmt.Sprintf("category %q must end with exactly one class letter (H, I, O, or M)", token),
		}
	}

	class, err := domain.ParseClass(token[i:])
	if err != nil {
		return 0, "", &ValidationError{
			Reason:  ReasonInvalidClass,
			Message: fmt.Sprintf("invalid class letter %q; must be H (home), I (indoor), O (outdoor), or M (mobile)", token[i:]),
		}
	}

	return count, class, nil
}
