package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/w1pns/wfd-logger/internal/contest"
	"github.com/w1pns/wfd-logger/internal/domain"
	"github.com/w1pns/wfd-logger/internal/repo"
)

// ReportService computes derived views over the log: the score snapshot
// and the analytics summary. Both are pure reads, recomputed per request.
type ReportService struct {
	contacts   repo.ContactRepo
	objectives repo.ObjectiveRepo
	rules      contest.Rules
}

// NewReportService constructs a ReportService for the given rule set.
// Pass contest.DefaultRules() for the current contest year.
func NewReportService(contacts repo.ContactRepo, objectives repo.ObjectiveRepo, rules contest.Rules) *ReportService {
	return &ReportService{contacts: contacts, objectives: objectives, rules: rules}
}

// Score computes the current score snapshot from the full log and the
// recorded objective flags.
func (s *ReportService) Score(ctx context.Context) (contest.Snapshot, error) {
	contacts, err := s.contacts.List(ctx)
	if err != nil {
		return contest.Snapshot{}, fmt.Errorf("service.ReportService.Score: %w", err)
	}
	flags, err := loadObjectiveFlags(ctx, s.objectives)
	if err != nil {
		return contest.Snapshot{}, fmt.Errorf("service.ReportService.Score: %w", err)
	}
	return contest.Score(contacts, s.rules, flags), nil
}

// Analytics computes band, mode, and temporal activity aggregates over
// the full log.
func (s *ReportService) Analytics(ctx context.Context) (contest.Summary, error) {
	contacts, err := s.contacts.List(ctx)
	if err != nil {
		return contest.Summary{}, fmt.Errorf("service.ReportService.Analytics: %w", err)
	}
	return contest.Aggregate(contacts), nil
}

// ListObjectives returns the full objective catalog from the rule set with
// each objective's recorded flag state merged in. Objectives that have
// never been flagged appear with Completed false.
func (s *ReportService) ListObjectives(ctx context.Context) ([]domain.ObjectiveStatus, error) {
	recorded, err := s.objectives.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ReportService.ListObjectives: %w", err)
	}
	byName := make(map[string]domain.ObjectiveFlag, len(recorded))
	for _, f := range recorded {
		byName[f.Name] = f
	}

	statuses := make([]domain.ObjectiveStatus, 0, len(s.rules.Objectives))
	for _, obj := range s.rules.Objectives {
		status := domain.ObjectiveStatus{Name: obj.Name, Points: obj.Points}
		if f, ok := byName[obj.Name]; ok {
			status.Completed = f.Completed
			status.Notes = f.Notes
			status.CompletedAt = f.CompletedAt
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

// SetObjective records the completion state for one objective.
// Returns domain.ErrValidation if the name is not in the objective catalog.
func (s *ReportService) SetObjective(ctx context.Context, flag domain.ObjectiveFlag) (domain.ObjectiveFlag, error) {
	flag.Name = strings.TrimSpace(flag.Name)
	if !s.knownObjective(flag.Name) {
		return domain.ObjectiveFlag{}, fmt.Errorf("%w: unknown objective %q", domain.ErrValidation, flag.Name)
	}
	result, err := s.objectives.Upsert(ctx, flag)
	if err != nil {
		return domain.ObjectiveFlag{}, fmt.Errorf("service.ReportService.SetObjective: %w", err)
	}
	return result, nil
}

func (s *ReportService) knownObjective(name string) bool {
	for _, obj := range s.rules.Objectives {
		if obj.Name == name {
			return true
		}
	}
	return false
}

// loadObjectiveFlags loads the recorded flags as the lookup form the scorer takes.
func loadObjectiveFlags(ctx context.Context, r repo.ObjectiveRepo) (domain.ObjectiveFlags, error) {
	recorded, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	flags := make(domain.ObjectiveFlags, len(recorded))
	for _, f := range recorded {
		flags[f.Name] = f.Completed
	}
	return flags, nil
}
