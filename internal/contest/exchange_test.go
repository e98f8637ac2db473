package contest_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/w1pns/wfd-logger/internal/contest"
	"github.com/w1pns/wfd-logger/internal/domain"
)

// ---- valid exchanges ---------------------------------------------------

func TestParseExchange_Valid(t *testing.T) {
	tests := []struct {
		raw  string
		want domain.Exchange
	}{
		{"2M EPA", domain.Exchange{TxCount: 2, Class: domain.ClassMobile, Section: "EPA"}},
		{"1H GA", domain.Exchange{TxCount: 1, Class: domain.ClassHome, Section: "GA"}},
		{"3O WPA", domain.Exchange{TxCount: 3, Class: domain.ClassOutdoor, Section: "WPA"}},
		{"12I ON", domain.Exchange{TxCount: 12, Class: domain.ClassIndoor, Section: "ON"}},
		{"1H DX", domain.Exchange{TxCount: 1, Class: domain.ClassHome, Section: "DX"}},
		{"1h ga", domain.Exchange{TxCount: 1, Class: domain.ClassHome, Section: "GA"}},           // case-insensitive
		{"  2m   epa  ", domain.Exchange{TxCount: 2, Class: domain.ClassMobile, Section: "EPA"}}, // whitespace tolerated
	}

	for _, tc := range tests {
		got, err := contest.ParseExchange(tc.raw)
		require.NoError(t, err, "raw %q", tc.raw)
		assert.Equal(t, tc.want, got, "raw %q", tc.raw)
	}
}

func TestParseExchange_RoundTrip(t *testing.T) {
	// Re-serializing a parsed exchange to canonical form and re-parsing
	// must yield the same structure.
	for _, raw := range []string{"2M EPA", "1h ga", " 10O  stx ", "1I MX", "99M DX"} {
		first, err := contest.ParseExchange(raw)
		require.NoError(t, err, "raw %q", raw)

		second, err := contest.ParseExchange(first.String())
		require.NoError(t, err, "canonical %q", first.String())
		assert.Equal(t, first, second)
	}
}

// ---- rejected exchanges --------------------------------------------------

func TestParseExchange_Rejected(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want contest.ValidationReason
	}{
		{"empty", "", contest.ReasonMalformedFormat},
		{"whitespace only", "   ", contest.ReasonMalformedFormat},
		{"single junk token", "XYZ", contest.ReasonMalformedFormat},
		{"category without section", "2M", contest.ReasonMissingSection},
		{"unknown section", "1H ZZZZ", contest.ReasonUnknownSection},
		{"no count digits", "H EPA", contest.ReasonMissingCount},
		{"zero count", "0H GA", contest.ReasonMissingCount},
		{"bad class letter", "2X GA", contest.ReasonInvalidClass},
		{"two class letters", "2MH GA", contest.ReasonInvalidClass},
		{"digits only category", "22 GA", contest.ReasonInvalidClass},
		{"too many parts", "1H GA EXTRA", contest.ReasonMalformedFormat},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := contest.ParseExchange(tc.raw)
			require.Error(t, err)

			var verr *contest.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.want, verr.Reason)
			assert.NotEmpty(t, verr.Message)

			// Every parse failure maps to the domain validation sentinel
			// so handlers can return 422 without knowing the reason set.
			assert.True(t, errors.Is(err, domain.ErrValidation))
		})
	}
}

func TestParseExchange_Deterministic(t *testing.T) {
	first, err1 := contest.ParseExchange("2M EPA")
	second, err2 := contest.ParseExchange("2M EPA")
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)
}

// ---- sections --------------------------------------------------------------

func TestValidSection(t *testing.T) {
	for _, code := range []string{"GA", "EPA", "NTX", "ON", "MX", "DX", "epa", " ga "} {
		assert.True(t, contest.ValidSection(code), "code %q", code)
	}
	for _, code := range []string{"", "ZZZZ", "XYZ", "G A"} {
		assert.False(t, contest.ValidSection(code), "code %q", code)
	}
}

func TestSections_SortedAndClosed(t *testing.T) {
	sections := contest.Sections()
	assert.IsIncreasing(t, sections)
	for _, code := range sections {
		assert.True(t, contest.ValidSection(code))
	}
}
