package domain

import "time"

// ObjectiveFlag records the operator-reported completion state of a bonus
// objective that cannot be derived from contact data alone (e.g. "100%
// alternative power"). Flags are keyed by objective name.
type ObjectiveFlag struct {
	Name        string
	Completed   bool
	Notes       string
	CompletedAt *time.Time // nil while the objective is incomplete
}

// ObjectiveFlags is a lookup of operator-reported flags by objective name.
// A missing key means the objective has not been flagged complete.
type ObjectiveFlags map[string]bool

// ObjectiveStatus is an objective from the contest catalog combined with
// its recorded flag state, as presented to the operator.
type ObjectiveStatus struct {
	Name        string     `json:"name"`
	Points      int        `json:"points"`
	Completed   bool       `json:"completed"`
	Notes       string     `json:"notes"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
