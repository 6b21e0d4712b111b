// Package employee implements the Employee repository using PostgreSQL.
package employee

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

// Repo provides employee persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new employee repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const employeeColumns = `id, employee_id, first_name, last_name, email, phone, department, position, hire_date, is_admin, is_active, password_hash, created_at, updated_at`

const createSQL = `
INSERT INTO employees (id, employee_id, first_name, last_name, email, phone, department, position, hire_date, is_admin, is_active, password_hash, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING ` + employeeColumns

const getByIDSQL = `
SELECT ` + employeeColumns + `
FROM employees
WHERE id = $1`

const getByEmailSQL = `
SELECT ` + employeeColumns + `
FROM employees
WHERE email = $1`

const setActiveSQL = `
UPDATE employees
SET is_active = $2, updated_at = now()
WHERE id = $1
RETURNING ` + employeeColumns

const countActiveSQL = `
SELECT count(*) FROM employees WHERE is_active`

const recentSQL = `
SELECT ` + employeeColumns + `
FROM employees
ORDER BY created_at DESC
LIMIT $1`

const departmentsSQL = `
SELECT DISTINCT department FROM employees WHERE department <> '' ORDER BY department`

// GetByID returns an employee by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	emp, err := scanEmployee(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, mapError(err, "employee", id)
	}
	return emp, nil
}

// GetByEmail returns an employee by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	emp, err := scanEmployee(querier.QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return nil, mapError(err, "employee", uuid.Nil)
	}
	return emp, nil
}

// GetByIDs returns employees keyed by ID. Missing IDs are silently skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Employee, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]domain.Employee{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("get employees by ids: %w", err)
	}
	defer rows.Close()

	result := make(map[uuid.UUID]domain.Employee, len(ids))
	for rows.Next() {
		emp, err := scanEmployeeRow(rows)
		if err != nil {
			return nil, fmt.Errorf("get employees by ids: %w", err)
		}
		result[emp.ID] = *emp
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get employees by ids: %w", err)
	}

	return result, nil
}

// Create inserts a new employee and returns the persisted domain.Employee.
// Unique violations on email or employee_id map to domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, emp *domain.Employee) (*domain.Employee, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, createSQL,
		emp.ID, emp.EmployeeID, emp.FirstName, emp.LastName, emp.Email, emp.Phone,
		emp.Department, emp.Position, emp.HireDate, emp.IsAdmin, emp.IsActive,
		emp.PasswordHash, now, now,
	)

	created, err := scanEmployee(row)
	if err != nil {
		return nil, mapError(err, "employee", emp.ID)
	}
	return created, nil
}

// SetActive updates the is_active flag and returns the updated employee.
func (r *Repo) SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.Employee, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	emp, err := scanEmployee(querier.QueryRow(ctx, setActiveSQL, id, active))
	if err != nil {
		return nil, mapError(err, "employee", id)
	}
	return emp, nil
}

// List returns employees matching the directory filter,
// ordered by first name then last name.
func (r *Repo) List(ctx context.Context, filter domain.EmployeeFilter) ([]domain.Employee, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := listSQL(filter)
	if err != nil {
		return nil, fmt.Errorf("build employee list query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	employees := []domain.Employee{}
	for rows.Next() {
		emp, err := scanEmployeeRow(rows)
		if err != nil {
			return nil, fmt.Errorf("list employees: %w", err)
		}
		employees = append(employees, *emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	return employees, nil
}

// ListRecent returns the most recently registered employees (created_at DESC).
func (r *Repo) ListRecent(ctx context.Context, limit int) ([]domain.Employee, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, recentSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent employees: %w", err)
	}
	defer rows.Close()

	employees := []domain.Employee{}
	for rows.Next() {
		emp, err := scanEmployeeRow(rows)
		if err != nil {
			return nil, fmt.Errorf("list recent employees: %w", err)
		}
		employees = append(employees, *emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list recent employees: %w", err)
	}

	return employees, nil
}

// ListDepartments returns distinct non-empty department names, sorted.
func (r *Repo) ListDepartments(ctx context.Context) ([]string, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, departmentsSQL)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()

	departments := []string{}
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("list departments: %w", err)
		}
		departments = append(departments, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}

	return departments, nil
}

// CountActive returns the number of employees with is_active=true.
func (r *Repo) CountActive(ctx context.Context) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countActiveSQL).Scan(&count); err != nil {
		return 0, fmt.Errorf("count active employees: %w", err)
	}
	return count, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanEmployee(row pgx.Row) (*domain.Employee, error) {
	var e domain.Employee
	err := row.Scan(
		&e.ID, &e.EmployeeID, &e.FirstName, &e.LastName, &e.Email, &e.Phone,
		&e.Department, &e.Position, &e.HireDate, &e.IsAdmin, &e.IsActive,
		&e.PasswordHash, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func scanEmployeeRow(rows pgx.Rows) (*domain.Employee, error) {
	var e domain.Employee
	err := rows.Scan(
		&e.ID, &e.EmployeeID, &e.FirstName, &e.LastName, &e.Email, &e.Phone,
		&e.Department, &e.Position, &e.HireDate, &e.IsAdmin, &e.IsActive,
		&e.PasswordHash, &e.CreatedAt, &e.UpdatedAt,
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
