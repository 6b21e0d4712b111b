// Package timeentry implements the TimeEntry repository using PostgreSQL.
package timeentry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/worktracker-backend/internal/adapter/postgres"
	"github.com/heartmarshall/worktracker-backend/internal/domain"
)

// Repo provides time entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new time entry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const entryColumns = `id, employee_id, entry_date, start_time, end_time, break_hours, hours_worked, description, project, is_approved, created_at, updated_at`

const createSQL = `
INSERT INTO time_entries (id, employee_id, entry_date, start_time, end_time, break_hours, hours_worked, description, project, is_approved, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING ` + entryColumns

const getByIDSQL = `
SELECT ` + entryColumns + `
FROM time_entries
WHERE id = $1`

const deleteSQL = `
DELETE FROM time_entries
WHERE id = $1`

const approveSQL = `
UPDATE time_entries
SET is_approved = true, updated_at = now()
WHERE id = $1
RETURNING ` + entryColumns

const sumHoursSQL = `
SELECT coalesce(sum(hours_worked), 0)
FROM time_entries
WHERE employee_id = $1 AND entry_date >= $2 AND entry_date <= $3`

const countPendingSQL = `
SELECT count(*) FROM time_entries WHERE NOT is_approved`

// Create inserts a new time entry and returns the persisted row.
func (r *Repo) Create(ctx context.Context, entry *domain.TimeEntry) (*domain.TimeEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, createSQL,
		entry.ID, entry.EmployeeID, entry.Date, entry.StartTime, entry.EndTime,
		entry.BreakHours, entry.HoursWorked, entry.Description, entry.Project,
		entry.IsApproved, now, now,
	)

	created, err := scanEntry(row)
	if err != nil {
		return nil, mapError(err, "time entry", entry.ID)
	}
	return created, nil
}

// GetByID returns a time entry by id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.TimeEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	entry, err := scanEntry(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, mapError(err, "time entry", id)
	}
	return entry, nil
}

// Delete removes a time entry. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return mapError(err, "time entry", id)
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("time entry %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// Approve marks a time entry approved and returns the updated row.
// Already-approved entries update without error.
func (r *Repo) Approve(ctx context.Context, id uuid.UUID) (*domain.TimeEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	entry, err := scanEntry(querier.QueryRow(ctx, approveSQL, id))
	if err != nil {
		return nil, mapError(err, "time entry", id)
	}
	return entry, nil
}

// List returns time entries matching the filter, newest entry date first.
// The listing is capped; use Aggregate for exact totals over a range.
func (r *Repo) List(ctx context.Context, filter domain.EntryFilter) ([]domain.TimeEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := listSQL(filter)
	if err != nil {
		return nil, fmt.Errorf("build time entry list query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list time entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.TimeEntry{}
	for rows.Next() {
		entry, err := scanEntryRow(rows)
		if err != nil {
			return nil, fmt.Errorf("list time entries: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list time entries: %w", err)
	}

	return entries, nil
}

// Aggregate returns per-employee hour and entry totals over every row matching
// the filter. Filter.Limit is ignored.
func (r *Repo) Aggregate(ctx context.Context, filter domain.EntryFilter) ([]domain.EntryAggregate, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := aggregateSQL(filter)
	if err != nil {
		return nil, fmt.Errorf("build time entry aggregate query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("aggregate time entries: %w", err)
	}
	defer rows.Close()

	aggregates := []domain.EntryAggregate{}
	for rows.Next() {
		var a domain.EntryAggregate
		if err := rows.Scan(&a.EmployeeID, &a.TotalHours, &a.EntryCount); err != nil {
			return nil, fmt.Errorf("aggregate time entries: %w", err)
		}
		aggregates = append(aggregates, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("aggregate time entries: %w", err)
	}

	return aggregates, nil
}

// SumHours returns the sum of hours_worked for an employee over an inclusive
// entry_date range.
func (r *Repo) SumHours(ctx context.Context, employeeID uuid.UUID, from, to time.Time) (float64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var total float64
	if err := querier.QueryRow(ctx, sumHoursSQL, employeeID, from, to).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum hours for employee %s: %w", employeeID, err)
	}
	return total, nil
}

// CountPending returns the number of unapproved entries across all employees.
func (r *Repo) CountPending(ctx context.Context) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countPendingSQL).Scan(&count); err != nil {
		return 0, fmt.Errorf("count pending entries: %w", err)
	}
	return count, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanEntry(row pgx.Row) (*domain.TimeEntry, error) {
	var e domain.TimeEntry
	err := row.Scan(
		&e.ID, &e.EmployeeID, &e.Date, &e.StartTime, &e.EndTime,
		&e.BreakHours, &e.HoursWorked, &e.Description, &e.Project,
		&e.IsApproved, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func scanEntryRow(rows pgx.Rows) (*domain.TimeEntry, error) {
	var e domain.TimeEntry
	err := rows.Scan(
		&e.ID, &e.EmployeeID, &e.Date, &e.StartTime, &e.EndTime,
		&e.BreakHours, &e.HoursWorked, &e.Description, &e.Project,
		&e.IsApproved, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
