// Package repo contains all database access logic for the WFD Logger API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/w1pns/wfd-logger/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan
// helpers to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// ContactRepo defines the persistence operations for logged contacts.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type ContactRepo interface {
	// Create inserts a new contact and returns the persisted record (with
	// DB-generated id, created_at, and updated_at populated).
	Create(ctx context.Context, contact domain.Contact) (domain.Contact, error)

	// GetByID retrieves a single contact by its UUID primary key.
	// Returns domain.ErrNotFound if no contact with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Contact, error)

	// List returns the full log ordered by contacted_at ascending — the
	// order the contest engine and exports expect.
	List(ctx context.Context) ([]domain.Contact, error)

	// ListPaged returns one page of the log, most recent first, plus the
	// total contact count.
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Contact, int64, error)

	// Update overwrites the mutable fields of an existing contact and
	// returns the updated record. Returns domain.ErrNotFound if no contact
	// with that ID exists.
	Update(ctx context.Context, contact domain.Contact) (domain.Contact, error)

	// Delete removes a contact by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgContactRepo is the Postgres implementation of ContactRepo.
type pgContactRepo struct {
	db db
}

// NewContactRepo constructs a ContactRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewContactRepo(db db) ContactRepo {
	return &pgContactRepo{db: db}
}

const contactColumns = `id, callsign, frequency, mode, rst_sent, rst_received,
	exchange_sent, exchange_received, tx_count, class, section,
	operator_callsign, notes, contacted_at, created_at, updated_at`

// Create inserts a new contact row and returns the full persisted record.
func (r *pgContactRepo) Create(ctx context.Context, c domain.Contact) (domain.Contact, error) {
	const q = `
		INSERT INTO contacts (callsign, frequency, mode, rst_sent, rst_received,
			exchange_sent, exchange_received, tx_count, class, section,
			operator_callsign, notes, contacted_at)
		VALUES (@callsign, @frequency, @mode, @rst_sent, @rst_received,
			@exchange_sent, @exchange_received, @tx_count, @class, @section,
			@operator_callsign, @notes, @contacted_at)
		RETURNING ` + contactColumns

	row := r.db.QueryRow(ctx, q, contactArgs(c))
	result, err := scanContact(row)
	if err != nil {
		return domain.Contact{}, fmt.Errorf("repo.ContactRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a contact by primary key.
func (r *pgContactRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Contact, error) {
	const q = `SELECT ` + contactColumns + ` FROM contacts WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanContact(row)
	if err != nil {
		return domain.Contact{}, fmt.Errorf("repo.ContactRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns the full log ordered by contact time ascending.
func (r *pgContactRepo) List(ctx context.Context) ([]domain.Contact, error) {
	const q = `SELECT ` + contactColumns + ` FROM contacts ORDER BY contacted_at ASC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.ContactRepo.List: %w", err)
	}
	defer rows.Close()

	contacts := []domain.Contact{}
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ContactRepo.List: scan: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ContactRepo.List: rows: %w", err)
	}
	return contacts, nil
}

// ListPaged returns one page of the log, most recent first, plus the total count.
func (r *pgContactRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Contact, int64, error) {
	const q = `
		SELECT ` + contactColumns + `, count(*) OVER () AS total
		FROM contacts
		ORDER BY contacted_at DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.ContactRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	contacts := []domain.Contact{}
	var total int64
	for rows.Next() {
		c, n, err := scanContactWithTotal(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.ContactRepo.ListPaged: scan: %w", err)
		}
		contacts = append(contacts, c)
		total = n
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.ContactRepo.ListPaged: rows: %w", err)
	}
	return contacts, total, nil
}

// Update overwrites the mutable fields of a contact and returns the updated record.
func (r *pgContactRepo) Update(ctx context.Context, c domain.Contact) (domain.Contact, error) {
	const q = `
		UPDATE contacts
		SET callsign          = @callsign,
		    frequency         = @frequency,
		    mode              = @mode,
		    rst_sent          = @rst_sent,
		    rst_received      = @rst_received,
		    exchange_sent     = @exchange_sent,
		    exchange_received = @exchange_received,
		    tx_count          = @tx_count,
		    class             = @class,
		    section           = @section,
		    operator_callsign = @operator_callsign,
		    notes             = @notes,
		    contacted_at      = @contacted_at,
		    updated_at        = now()
		WHERE id = @id
		RETURNING ` + contactColumns

	args := contactArgs(c)
	args["id"] = c.ID

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanContact(row)
	if err != nil {
		return domain.Contact{}, fmt.Errorf("repo.ContactRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes a contact by primary key.
func (r *pgContactRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM contacts WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.ContactRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ContactRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// contactArgs maps the mutable fields of a contact to named SQL arguments.
func contactArgs(c domain.Contact) pgx.NamedArgs {
	return pgx.NamedArgs{
		"callsign":          c.Callsign,
		"frequency":         c.Frequency,
		"mode":              string(c.Mode),
		"rst_sent":          c.RSTSent,
		"rst_received":      c.RSTReceived,
		"exchange_sent":     c.ExchangeSent,
		"exchange_received": c.ExchangeReceived,
		"tx_count":          c.Exchange.TxCount,
		"class":             string(c.Exchange.Class),
		"section":           c.Exchange.Section,
		"operator_callsign": c.OperatorCallsign,
		"notes":             c.Notes,
		"contacted_at":      c.ContactedAt,
	}
}

// scanContact maps a single database row into a domain.Contact.
func scanContact(s scanner) (domain.Contact, error) {
	var (
		c     domain.Contact
		id    pgtype.UUID
		mode  string
		class string
	)

	err := s.Scan(&id, &c.Callsign, &c.Frequency, &mode, &c.RSTSent, &c.RSTReceived,
		&c.ExchangeSent, &c.ExchangeReceived, &c.Exchange.TxCount, &class,
		&c.Exchange.Section, &c.OperatorCallsign, &c.Notes, &c.ContactedAt,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Contact{}, domain.ErrNotFound
		}
		return domain.Contact{}, err
	}

	c.ID = uuid.UUID(id.Bytes)
	c.Mode = domain.Mode(mode)
	c.Exchange.Class = domain.Class(class)
	return c, nil
}

// scanContactWithTotal scans a contact row that carries the windowed total
// count as its trailing column.
func scanContactWithTotal(s scanner) (domain.Contact, int64, error) {
	var (
		c     domain.Contact
		id    pgtype.UUID
		mode  string
		class string
		total int64
	)

	err := s.Scan(&id, &c.Callsign, &c.Frequency, &mode, &c.RSTSent, &c.RSTReceived,
		&c.ExchangeSent, &c.ExchangeReceived, &c.Exchange.TxCount, &class,
		&c.Exchange.Section, &c.OperatorCallsign, &c.Notes, &c.ContactedAt,
		&c.CreatedAt, &c.UpdatedAt, &total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Contact{}, 0, domain.ErrNotFound
		}
		return domain.Contact{}, 0, err
	}

	c.ID = uuid.UUID(id.Bytes)
	c.Mode = domain.Mode(mode)
	c.Exchange.Class = domain.Class(class)
	return c, total, nil
}
