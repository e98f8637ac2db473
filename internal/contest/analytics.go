package contest

import (
	"log/slog"
	"sort"

	"github.com/w1pns/wfd-logger/internal/domain"
)

// CumulativePoint is one step in the running contact total over time.
type CumulativePoint struct {
	Time  string `json:"time"` // "2006-01-02 15:04"
	Count int    `json:"count"`
}

// Summary is the derived activity report over a contact set.
//
// Every field is always present and non-nil, even for an empty log. The
// consuming chart layer renders each key unconditionally, so an absent key
// here is a rendering crash there — Aggregate materializes every map and
// slice up front and never returns a nil field.
type Summary struct {
	BandCounts     map[domain.Band]int                 `json:"band_counts"`
	ModesPerBand   map[domain.Band]map[domain.Mode]int `json:"modes_per_band"`
	HourlyActivity map[domain.Band][24]int             `json:"hourly_activity"`
	HourlyCounts   [24]int                             `json:"hourly_counts"`
	DailyCounts    map[string]int                      `json:"daily_counts"`
	Cumulative     []CumulativePoint                   `json:"cumulative_data"`
	ModeCounts     map[domain.Mode]int                 `json:"mode_counts"`
	ModeHourly     map[domain.Mode][24]int             `json:"mode_hourly"`
}

// Aggregate derives band, mode, and temporal activity summaries from the
// contact set. The aggregation is total: it succeeds for any input
// including the empty set, and a single malformed contact (zero timestamp,
// unmapped mode) is logged and skipped — one bad row never aborts the fold
// or drops the rest of the report.
func Aggregate(contacts []domain.Contact) Summary {
	summary := Summary{
		BandCounts:     map[domain.Band]int{},
		ModesPerBand:   map[domain.Band]map[domain.Mode]int{},
		HourlyActivity: map[domain.Band][24]int{},
		DailyCounts:    map[string]int{},
		Cumulative:     []CumulativePoint{},
		ModeCounts:     map[domain.Mode]int{},
		ModeHourly:     map[domain.Mode][24]int{},
	}

	// Cumulative series needs chronological order; sort a copy so the
	// caller's slice is left untouched.
	ordered := make([]domain.Contact, len(contacts))
	copy(ordered, contacts)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].ContactedAt.Before(ordered[j].ContactedAt)
	})

	for _, c := range ordered {
		if skip, reason := unprocessable(c); skip {
			slog.Debug("analytics: skipping contact", "id", c.ID, "callsign", c.Callsign, "reason", reason)
			continue
		}

		band := ClassifyBand(c.Frequency)
		hour := c.ContactedAt.Hour()
		day := c.ContactedAt.Format("2006-01-02")

		summary.BandCounts[band]++
		modes := summary.ModesPerBand[band]
		if modes == nil {
			modes = map[domain.Mode]int{}
			summary.ModesPerBand[band] = modes
		}
		modes[c.Mode]++

		bandHours := summary.HourlyActivity[band]
		bandHours[hour]++
		summary.HourlyActivity[band] = bandHours

		summary.HourlyCounts[hour]++
		summary.DailyCounts[day]++
		summary.Cumulative = append(summary.Cumulative, CumulativePoint{
			Time:  c.ContactedAt.Format("2006-01-02 15:04"),
			Count: len(summary.Cumulative) + 1,
		})

		summary.ModeCounts[c.Mode]++
		modeHours := summary.ModeHourly[c.Mode]
		modeHours[hour]++
		summary.ModeHourly[c.Mode] = modeHours
	}

	return summary
}

// unprocessable reports whether a contact is too malformed for analytics
// and why. Exchange-valid contacts are never unprocessable; this guards
// against rows edited outside the application.
func unprocessable(c domain.Contact) (bool, string) {
	if c.ContactedAt.IsZero() {
		return true, "zero timestamp"
	}
	switch c.Mode {
	case domain.ModeSSB, domain.ModeCW, domain.ModeDigital:
		return false, ""
	default:
		return true, "unmapped mode"
	}
}
