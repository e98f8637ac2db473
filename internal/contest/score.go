package contest

import (
	"sort"
	"strings"

	"github.com/w1pns/wfd-logger/internal/domain"
)

// Rules carries the injectable scoring configuration: the per-mode point
// table and the bonus objective list. Contest rules shift year to year, so
// both are data, not code — a rule change is an edit to DefaultRules, not
// to the scoring algorithm.
type Rules struct {
	// Points maps each scoring mode to its per-contact point value.
	Points map[domain.Mode]int
	// Objectives lists the bonus tasks worth flat extra points.
	Objectives []Objective
}

// Objective is one bonus task worth a flat number of extra points.
// Done is evaluated over the full contact set plus operator-reported flags;
// objectives that cannot be derived from contact data (alternative power,
// satellite contacts, ...) read their flag and ignore the contacts.
type Objective struct {
	Name   string
	Points int
	Done   func(contacts []domain.Contact, flags domain.ObjectiveFlags) bool
}

// ObjectiveResult records whether one objective was completed and the
// points it awarded (zero when incomplete).
type ObjectiveResult struct {
	Completed bool `json:"completed"`
	Points    int  `json:"points"`
}

// Snapshot is the derived contest score for a contact set. It is recomputed
// on demand and never persisted, so it can never go stale relative to the
// log it was computed from. All maps and slices are non-nil even for an
// empty log.
type Snapshot struct {
	ContactPoints int                        `json:"contact_points"`
	PointsPerBand map[domain.Band]int        `json:"points_per_band"`
	PointsPerMode map[domain.Mode]int        `json:"points_per_mode"`
	Sections      []string                   `json:"sections"`
	Multiplier    int                        `json:"multiplier"`
	BonusPoints   int                        `json:"bonus_points"`
	Objectives    map[string]ObjectiveResult `json:"objectives"`
	Total         int                        `json:"total"`
}

// DefaultRules returns the WFD 2026 rule set: CW and digital contacts score
// two points, phone contacts one, and the published objective list awards
// flat bonus points. Band- and mode-coverage objectives are derived from
// the log; the rest are operator-reported flags.
func DefaultRules() Rules {
	return Rules{
		Points: map[domain.Mode]int{
			domain.ModeCW:      2,
			domain.ModeDigital: 2,
			domain.ModeSSB:     1,
		},
		Objectives: []Objective{
			{Name: "Alternative Power", Points: 1, Done: flagged("Alternative Power")},
			{Name: "Away from Home", Points: 3, Done: flagged("Away from Home")},
			{Name: "Multiple Antennas", Points: 1, Done: flagged("Multiple Antennas")},
			{Name: "FM Satellite Contact", Points: 2, Done: flagged("FM Satellite Contact")},
			{Name: "SSB/CW Satellite Contact", Points: 3, Done: flagged("SSB/CW Satellite Contact")},
			{Name: "Winlink Email", Points: 1, Done: flagged("Winlink Email")},
			{Name: "WFD Special Bulletin", Points: 1, Done: flagged("WFD Special Bulletin")},
			{Name: "Six Different Bands", Points: 6, Done: bandsWorked(6, 3)},
			{Name: "Twelve Different Bands", Points: 6, Done: bandsWorked(12, 3)},
			{Name: "Multiple Modes", Points: 2, Done: modesWorked(2)},
			{Name: "QRP Operation", Points: 4, Done: flagged("QRP Operation")},
			{Name: "Six Continuous Hours", Points: 2, Done: flagged("Six Continuous Hours")},
		},
	}
}

// flagged returns a predicate that reads the operator-reported flag for name.
func flagged(name string) func([]domain.Contact, domain.ObjectiveFlags) bool {
	return func(_ []domain.Contact, flags domain.ObjectiveFlags) bool {
		return flags[name]
	}
}

// bandsWorked returns a predicate satisfied when at least minContacts
// contacts were logged on each of at least minBands distinct bands.
// Unknown-band contacts never count toward band coverage.
func bandsWorked(minBands, minContacts int) func([]domain.Contact, domain.ObjectiveFlags) bool {
	return func(contacts []domain.Contact, _ domain.ObjectiveFlags) bool {
		perBand := map[domain.Band]int{}
		for _, c := range contacts {
			if band := ClassifyBand(c.Frequency); band != domain.BandUnknown {
				perBand[band]++
			}
		}
		covered := 0
		for _, n := range perBand {
			if n >= minContacts {
				covered++
			}
		}
		return covered >= minBands
	}
}

// modesWorked returns a predicate satisfied when at least minModes distinct
// scoring modes appear in the log.
func modesWorked(minModes int) func([]domain.Contact, domain.ObjectiveFlags) bool {
	return func(contacts []domain.Contact, _ domain.ObjectiveFlags) bool {
		modes := map[domain.Mode]struct{}{}
		for _, c := range contacts {
			modes[c.Mode] = struct{}{}
		}
		return len(modes) >= minModes
	}
}

// Score computes the contest score for a contact set:
//
//	total = (sum of per-contact points) x (distinct sections worked) + bonus points
//
// The multiplier for an empty log is 0, not 1 — an empty section set earns
// nothing rather than an artificial floor. Contacts reaching this function
// are assumed exchange-valid (enforced at ingestion), so Score never fails
// and performs no re-validation.
func Score(contacts []domain.Contact, rules Rules, flags domain.ObjectiveFlags) Snapshot {
	snap := Snapshot{
		PointsPerBand: map[domain.Band]int{},
		PointsPerMode: map[domain.Mode]int{},
		Sections:      []string{},
		Objectives:    map[string]ObjectiveResult{},
	}

	sections := map[string]struct{}{}
	for _, c := range contacts {
		points := rules.Points[c.Mode]
		snap.ContactPoints += points
		snap.PointsPerBand[ClassifyBand(c.Frequency)] += points
		snap.PointsPerMode[c.Mode] += points

		if section := strings.ToUpper(c.Exchange.Section); section != "" {
			sections[section] = struct{}{}
		}
	}

	for section := range sections {
		snap.Sections = append(snap.Sections, section)
	}
	sort.Strings(snap.Sections)
	snap.Multiplier = len(snap.Sections)

	for _, obj := range rules.Objectives {
		result := ObjectiveResult{Completed: obj.Done(contacts, flags)}
		if result.Completed {
			result.Points = obj.Points
			snap.BonusPoints += obj.Points
		}
		snap.Objectives[obj.Name] = result
	}

	snap.Total = snap.ContactPoints*snap.Multiplier + snap.BonusPoints
	return snap
}
