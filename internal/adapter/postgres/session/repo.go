// Package session implements the ActiveSession repository using PostgreSQL.
// The table holds at most one row per employee (enforced by a unique
// constraint), so most operations are keyed by employee rather than by id.
package session

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

// Repo provides active session persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new active session repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const sessionColumns = `id, employee_id, started_at, description, project, created_at`

const createSQL = `
INSERT INTO active_sessions (id, employee_id, started_at, description, project, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + sessionColumns

const getByEmployeeSQL = `
SELECT ` + sessionColumns + `
FROM active_sessions
WHERE employee_id = $1`

const deleteByEmployeeSQL = `
DELETE FROM active_sessions
WHERE employee_id = $1`

const listAllSQL = `
SELECT ` + sessionColumns + `
FROM active_sessions
ORDER BY started_at ASC`

const countSQL = `
SELECT count(*) FROM active_sessions`

// Create inserts a new active session. A second open session for the same
// employee violates the unique constraint and maps to domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, session *domain.ActiveSession) (*domain.ActiveSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, createSQL,
		session.ID, session.EmployeeID, session.StartedAt,
		session.Description, session.Project, now,
	)

	created, err := scanSession(row)
	if err != nil {
		return nil, mapError(err, "active session", session.ID)
	}
	return created, nil
}

// GetByEmployee returns the employee's open session, or domain.ErrNotFound.
func (r *Repo) GetByEmployee(ctx context.Context, employeeID uuid.UUID) (*domain.ActiveSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	session, err := scanSession(querier.QueryRow(ctx, getByEmployeeSQL, employeeID))
	if err != nil {
		return nil, mapError(err, "active session", uuid.Nil)
	}
	return session, nil
}

// DeleteByEmployee removes the employee's open session.
// Returns domain.ErrNotFound if there is none.
func (r *Repo) DeleteByEmployee(ctx context.Context, employeeID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, deleteByEmployeeSQL, employeeID)
	if err != nil {
		return mapError(err, "active session", uuid.Nil)
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("active session for employee %s: %w", employeeID, domain.ErrNotFound)
	}

	return nil
}

// ListAll returns every open session, oldest first.
func (r *Repo) ListAll(ctx context.Context) ([]domain.ActiveSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listAllSQL)
	if err != nil {
		return nil, fmt.Errorf("list active sessions: %w", err)
	}
	defer rows.Close()

	sessions := []domain.ActiveSession{}
	for rows.Next() {
		var s domain.ActiveSession
		if err := rows.Scan(&s.ID, &s.EmployeeID, &s.StartedAt, &s.Description, &s.Project, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("list active sessions: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list active sessions: %w", err)
	}

	return sessions, nil
}

// Count returns the number of currently open sessions.
func (r *Repo) Count(ctx context.Context) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countSQL).Scan(&count); err != nil {
		return 0, fmt.Errorf("count active sessions: %w", err)
	}
	return count, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanSession(row pgx.Row) (*domain.ActiveSession, error) {
	var s domain.ActiveSession
	err := row.Scan(&s.ID, &s.EmployeeID, &s.StartedAt, &s.Description, &s.Project, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
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
