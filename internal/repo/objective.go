package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/w1pns/wfd-logger/internal/domain"
)

// ObjectiveRepo persists the operator-reported bonus objective flags.
// Flags are keyed by objective name; the objective definitions themselves
// (points, predicates) live in the contest rules, not the database.
type ObjectiveRepo interface {
	// List returns all recorded flags ordered by name.
	List(ctx context.Context) ([]domain.ObjectiveFlag, error)

	// Upsert records the completion state for one objective, inserting or
	// updating by name. completed_at is set when a flag flips to completed
	// and cleared when it flips back.
	Upsert(ctx context.Context, flag domain.ObjectiveFlag) (domain.ObjectiveFlag, error)
}

// pgObjectiveRepo is the Postgres implementation of ObjectiveRepo.
type pgObjectiveRepo struct {
	db db
}

// NewObjectiveRepo constructs an ObjectiveRepo backed by the provided db connection.
func NewObjectiveRepo(db db) ObjectiveRepo {
	return &pgObjectiveRepo{db: db}
}

func (r *pgObjectiveRepo) List(ctx context.Context) ([]domain.ObjectiveFlag, error) {
	const q = `
		SELECT name, completed, notes, completed_at
		FROM objective_flags
		ORDER BY name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.ObjectiveRepo.List: %w", err)
	}
	defer rows.Close()

	flags := []domain.ObjectiveFlag{}
	for rows.Next() {
		f, err := scanObjectiveFlag(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ObjectiveRepo.List: scan: %w", err)
		}
		flags = append(flags, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ObjectiveRepo.List: rows: %w", err)
	}
	return flags, nil
}

// Upsert inserts or updates a flag by objective name. completed_at tracks
// the transition: set to now() when completing, cleared when un-completing.
func (r *pgObjectiveRepo) Upsert(ctx context.Context, flag domain.ObjectiveFlag) (domain.ObjectiveFlag, error) {
	const q = `
		INSERT INTO objective_flags (name, completed, notes, completed_at)
		VALUES (@name, @completed, @notes, CASE WHEN @completed THEN now() END)
		ON CONFLICT (name) DO UPDATE
		SET completed = EXCLUDED.completed,
		    notes     = EXCLUDED.notes,
		    completed_at = CASE
		        WHEN EXCLUDED.completed AND NOT objective_flags.completed THEN now()
		        WHEN NOT EXCLUDED.completed THEN NULL
		        ELSE objective_flags.completed_at
		    END
		RETURNING name, completed, notes, completed_at`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"name":      flag.Name,
		"completed": flag.Completed,
		"notes":     flag.Notes,
	})
	result, err := scanObjectiveFlag(row)
	if err != nil {
		return domain.ObjectiveFlag{}, fmt.Errorf("repo.ObjectiveRepo.Upsert: %w", err)
	}
	return result, nil
}

// scanObjectiveFlag maps a single database row into a domain.ObjectiveFlag.
func scanObjectiveFlag(s scanner) (domain.ObjectiveFlag, error) {
	var f domain.ObjectiveFlag
	err := s.Scan(&f.Name, &f.Completed, &f.Notes, &f.CompletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ObjectiveFlag{}, domain.ErrNotFound
		}
		return domain.ObjectiveFlag{}, err
	}
	return f, nil
}
