// Package contest implements the Winter Field Day log domain engine: band
// classification, exchange parsing, duplicate detection, scoring, activity
// analytics, and Cabrillo/ADIF serialization.
//
// Everything in this package is a pure computation over a snapshot of the
// contact log supplied by the caller. No function here performs I/O or holds
// state between calls; callers (the service layer) own persistence and must
// serialize writes so duplicate detection always sees a consistent snapshot.
package contest

import (
	"math"
	"strconv"

	"github.com/w1pns/wfd-logger/internal/domain"
)

// bandEdge defines one inclusive amateur sub-band in MHz.
type bandEdge struct {
	lo, hi float64
	band   domain.Band
}

// bandPlan lists the amateur sub-bands the logger classifies, lowest first.
// Edges are inclusive on both ends.
var bandPlan = []bandEdge{
	{1.8, 2.0, "160m"},
	{3.5, 4.0, "80m"},
	{5.3, 5.4, "60m"},
	{7.0, 7.3, "40m"},
	{10.1, 10.15, "30m"},
	{14.0, 14.35, "20m"},
	{18.068, 18.168, "17m"},
	{21.0, 21.45, "15m"},
	{24.89, 24.99, "12m"},
	{28.0, 29.7, "10m"},
	{50.0, 54.0, "6m"},
	{144.0, 148.0, "2m"},
	{219.0, 225.0, "1.25m"},
	{420.0, 450.0, "70cm"},
	{902.0, 928.0, "33cm"},
	{1240.0, 1300.0, "23cm"},
}

// ClassifyBand maps a frequency in MHz to its amateur band label.
// Frequencies outside every defined sub-band classify as domain.BandUnknown.
// The function is total: it never fails, so downstream aggregation can
// bucket out-of-band entries instead of aborting.
func ClassifyBand(mhz float64) domain.Band {
	for _, e := range bandPlan {
		if mhz >= e.lo && mhz <= e.hi {
			return e.band
		}
	}
	return domain.BandUnknown
}

// KnownBands returns every defined band label in ascending frequency order.
// BandUnknown is deliberately excluded: band-coverage bonus objectives only
// count contacts on recognized bands.
func KnownBands() []domain.Band {
	bands := make([]domain.Band, len(bandPlan))
	for i, e := range bandPlan {
		bands[i] = e.band
	}
	return bands
}

// CabrilloFreq renders a frequency for the Cabrillo QSO line: HF bands use
// the frequency in whole kHz, VHF/UHF bands use the fixed Cabrillo band
// designator for the band.
func CabrilloFreq(mhz float64) string {
	switch {
	case mhz >= 50 && mhz <= 54:
		return "50"
	case mhz >= 144 && mhz <= 148:
		return "144"
	case mhz >= 219 && mhz <= 225:
		return "222"
	case mhz >= 420 && mhz <= 450:
		return "432"
	case mhz >= 902 && mhz <= 928:
		return "902"
	case mhz >= 1240 && mhz <= 1300:
		return "1.2G"
	case mhz >= 2300 && mhz <= 2450:
		return "2.3G"
	default:
		// Round rather than truncate: 28.4 MHz is 28399.999... in binary.
		return strconv.Itoa(int(math.Round(mhz * 1000)))
	}
}

// CabrilloMode renders a scoring mode as its two-letter Cabrillo mode code.
func CabrilloMode(m domain.Mode) string {
	switch m {
	case domain.ModeCW:
		return "CW"
	case domain.ModeSSB:
		return "PH"
	default:
		return "DG"
	}
}
