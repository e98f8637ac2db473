package contest

import (
	"sort"
	"strings"
)

// sectionCodes enumerates every exchange location the contest accepts:
// the ARRL/RAC section list plus MX (Mexico) and DX (everything else).
// The list is closed — unknown codes are rejected at the parser boundary
// so the multiplier count stays exact.
var sectionCodes = map[string]struct{}{}

func init() {
	for _, group := range [][]string{
		// US state sections.
		{"AL", "AK", "AZ", "AR", "CO", "CT", "DE", "GA", "HI", "ID", "IL", "IN",
			"IA", "KS", "KY", "LA", "ME", "MI", "MN", "MS", "MO", "MT", "NE", "NV",
			"NH", "NM", "NC", "ND", "OH", "OK", "OR", "RI", "SC", "SD", "TN", "UT",
			"VT", "WA", "WV", "WI", "WY"},
		// California.
		{"EB", "LAX", "ORG", "SB", "SCV", "SF", "SJV", "SV", "PAC"},
		// Florida.
		{"WCF", "NFL", "SFL"},
		// Maryland-DC.
		{"MDC"},
		// Massachusetts.
		{"MA", "EMA"},
		// New Jersey.
		{"NNJ", "SNJ"},
		// New York.
		{"NYC", "LI", "NLI", "WNY"},
		// Pennsylvania.
		{"EPA", "WPA"},
		// Texas.
		{"NTX", "STX", "WTX"},
		// Virginia.
		{"VA"},
		// General state codes kept for stations that send them.
		{"NY", "CA", "TX", "FL", "PA", "NJ"},
		// Canadian sections.
		{"AB", "BC", "MB", "NB", "NL", "NT", "NS", "NU", "ON", "PE", "QC", "SK", "YT"},
		// Mexico and everything else.
		{"MX", "DX"},
	} {
		for _, code := range group {
			sectionCodes[code] = struct{}{}
		}
	}
}

// ValidSection reports whether code (case-insensitive) is a known
// ARRL/RAC section code, MX, or DX.
func ValidSection(code string) bool {
	_, ok := sectionCodes[strings.ToUpper(strings.TrimSpace(code))]
	return ok
}

// Sections returns every accepted section code in sorted order.
func Sections() []string {
	out := make([]string, 0, len(sectionCodes))
	for code := range sectionCodes {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}
