package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/w1pns/wfd-logger/internal/domain"
)

// SetupRepo defines the persistence operations for station setups.
type SetupRepo interface {
	// Create inserts a new setup. New setups are never active on creation.
	Create(ctx context.Context, setup domain.StationSetup) (domain.StationSetup, error)

	// GetByID retrieves a single setup by its UUID primary key.
	// Returns domain.ErrNotFound if no setup with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.StationSetup, error)

	// List returns all setups, most recently created first.
	List(ctx context.Context) ([]domain.StationSetup, error)

	// Update overwrites the mutable fields of an existing setup and returns
	// the updated record. The active flag is not touched — use Activate.
	Update(ctx context.Context, setup domain.StationSetup) (domain.StationSetup, error)

	// Delete removes a setup by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// Activate marks the given setup active and every other setup inactive
	// in a single atomic statement, preserving the at-most-one-active
	// invariant. Returns domain.ErrNotFound if the setup does not exist.
	Activate(ctx context.Context, id uuid.UUID) (domain.StationSetup, error)

	// GetActive returns the currently active setup.
	// Returns domain.ErrNotFound when no setup is active.
	GetActive(ctx context.Context) (domain.StationSetup, error)
}

// pgSetupRepo is the Postgres implementation of SetupRepo.
type pgSetupRepo struct {
	db db
}

// NewSetupRepo constructs a SetupRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewSetupRepo(db db) SetupRepo {
	return &pgSetupRepo{db: db}
}

const setupColumns = `id, name, station_callsign, operator_name, operator_callsign,
	tx_count, class, section, timezone, power_level, grid_square,
	additional_operators, equipment_notes, is_active, created_at, updated_at`

func (r *pgSetupRepo) Create(ctx context.Context, s domain.StationSetup) (domain.StationSetup, error) {
	const q = `
		INSERT INTO station_setups (name, station_callsign, operator_name,
			operator_callsign, tx_count, class, section, timezone, power_level,
			grid_square, additional_operators, equipment_notes)
		VALUES (@name, @station_callsign, @operator_name, @operator_callsign,
			@tx_count, @class, @section, @timezone, @power_level, @grid_square,
			@additional_operators, @equipment_notes)
		RETURNING ` + setupColumns

	row := r.db.QueryRow(ctx, q, setupArgs(s))
	result, err := scanSetup(row)
	if err != nil {
		return domain.StationSetup{}, fmt.Errorf("repo.SetupRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgSetupRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.StationSetup, error) {
	const q = `SELECT ` + setupColumns + ` FROM station_setups WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanSetup(row)
	if err != nil {
		return domain.StationSetup{}, fmt.Errorf("repo.SetupRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgSetupRepo) List(ctx context.Context) ([]domain.StationSetup, error) {
	const q = `SELECT ` + setupColumns + ` FROM station_setups ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.SetupRepo.List: %w", err)
	}
	defer rows.Close()

	setups := []domain.StationSetup{}
	for rows.Next() {
		s, err := scanSetup(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.SetupRepo.List: scan: %w", err)
		}
		setups = append(setups, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.SetupRepo.List: rows: %w", err)
	}
	return setups, nil
}

func (r *pgSetupRepo) Update(ctx context.Context, s domain.StationSetup) (domain.StationSetup, error) {
	const q = `
		UPDATE station_setups
		SET name                 = @name,
		    station_callsign     = @station_callsign,
		    operator_name        = @operator_name,
		    operator_callsign    = @operator_callsign,
		    tx_count             = @tx_count,
		    class                = @class,
		    section              = @section,
		    timezone             = @timezone,
		    power_level          = @power_level,
		    grid_square          = @grid_square,
		    additional_operators = @additional_operators,
		    equipment_notes      = @equipment_notes,
		    updated_at           = now()
		WHERE id = @id
		RETURNING ` + setupColumns

	args := setupArgs(s)
	args["id"] = s.ID

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanSetup(row)
	if err != nil {
		return domain.StationSetup{}, fmt.Errorf("repo.SetupRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgSetupRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM station_setups WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.SetupRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.SetupRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// Activate flips is_active for every row in one statement: true for the
// target, false for everything else. A single UPDATE keeps the invariant
// without needing a transaction handle in this interface; the EXISTS guard
// makes a missing id a no-op instead of deactivating everything.
func (r *pgSetupRepo) Activate(ctx context.Context, id uuid.UUID) (domain.StationSetup, error) {
	const q = `
		UPDATE station_setups SET is_active = (id = @id), updated_at = now()
		WHERE EXISTS (SELECT 1 FROM station_setups WHERE id = @id)`

	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id}); err != nil {
		return domain.StationSetup{}, fmt.Errorf("repo.SetupRepo.Activate: %w", err)
	}

	result, err := r.GetByID(ctx, id)
	if err != nil {
		return domain.StationSetup{}, fmt.Errorf("repo.SetupRepo.Activate: %w", err)
	}
	return result, nil
}

func (r *pgSetupRepo) GetActive(ctx context.Context) (domain.StationSetup, error) {
	const q = `SELECT ` + setupColumns + ` FROM station_setups WHERE is_active LIMIT 1`

	row := r.db.QueryRow(ctx, q)
	result, err := scanSetup(row)
	if err != nil {
		return domain.StationSetup{}, fmt.Errorf("repo.SetupRepo.GetActive: %w", err)
	}
	return result, nil
}

// setupArgs maps the mutable fields of a setup to named SQL arguments.
func setupArgs(s domain.StationSetup) pgx.NamedArgs {
	return pgx.NamedArgs{
		"name":                 s.Name,
		"station_callsign":     s.StationCallsign,
		"operator_name":        s.OperatorName,
		"operator_callsign":    s.OperatorCallsign,
		"tx_count":             s.TxCount,
		"class":                string(s.Class),
		"section":              s.Section,
		"timezone":             s.Timezone,
		"power_level":          s.PowerLevel,
		"grid_square":          s.GridSquare,
		"additional_operators": s.AdditionalOperators,
		"equipment_notes":      s.EquipmentNotes,
	}
}

// scanSetup maps a single database row into a domain.StationSetup.
// additional_operators is a Postgres text[] scanned directly into []string.
func scanSetup(s scanner) (domain.StationSetup, error) {
	var (
		setup domain.StationSetup
		id    pgtype.UUID
		class string
	)

	err := s.Scan(&id, &setup.Name, &setup.StationCallsign, &setup.OperatorName,
		&setup.OperatorCallsign, &setup.TxCount, &class, &setup.Section,
		&setup.Timezone, &setup.PowerLevel, &setup.GridSquare,
		&setup.AdditionalOperators, &setup.EquipmentNotes, &setup.Active,
		&setup.CreatedAt, &setup.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.StationSetup{}, domain.ErrNotFound
		}
		return domain.StationSetup{}, err
	}

	setup.ID = uuid.UUID(id.Bytes)
	setup.Class = domain.Class(class)
	return setup, nil
}
