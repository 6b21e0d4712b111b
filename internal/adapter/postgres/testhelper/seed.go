package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/worktracker-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedEmployee creates an employee with generated unique email and employee id.
// Returns a filled domain.Employee.
func SeedEmployee(t *testing.T, pool *pgxpool.Pool) domain.Employee {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	emp := domain.Employee{
		ID:           uuid.New(),
		EmployeeID:   "EMP-" + suffix,
		FirstName:    "Test",
		LastName:     "Employee " + suffix,
		Email:        "employee-" + suffix + "@example.com",
		Department:   "Engineering",
		Position:     "Developer",
		HireDate:     time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
		IsActive:     true,
		PasswordHash: "$2a$04$notarealhashnotarealhashnotarealhash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO employees (id, employee_id, first_name, last_name, email, phone, department, position, hire_date, is_admin, is_active, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		emp.ID, emp.EmployeeID, emp.FirstName, emp.LastName, emp.Email, emp.Phone,
		emp.Department, emp.Position, emp.HireDate, emp.IsAdmin, emp.IsActive,
		emp.PasswordHash, emp.CreatedAt, emp.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEmployee insert: %v", err)
	}

	return emp
}

// SeedAdmin creates an employee with the admin flag set.
func SeedAdmin(t *testing.T, pool *pgxpool.Pool) domain.Employee {
	t.Helper()

	emp := SeedEmployee(t, pool)
	emp.IsAdmin = true

	_, err := pool.Exec(context.Background(),
		`UPDATE employees SET is_admin = true WHERE id = $1`, emp.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedAdmin update: %v", err)
	}

	return emp
}

// SeedTimeEntry creates a closed 09:00–17:00 time entry on the given date.
// Returns a filled domain.TimeEntry.
func SeedTimeEntry(t *testing.T, pool *pgxpool.Pool, employeeID uuid.UUID, date time.Time) domain.TimeEntry {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	date = date.UTC().Truncate(24 * time.Hour)
	start := date.Add(9 * time.Hour)
	end := date.Add(17 * time.Hour)

	entry := domain.TimeEntry{
		ID:          uuid.New(),
		EmployeeID:  employeeID,
		Date:        date,
		StartTime:   start,
		EndTime:     end,
		HoursWorked: domain.CalculateHours(start, end, 0),
		Description: "seeded entry",
		Project:     "internal",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO time_entries (id, employee_id, entry_date, start_time, end_time, break_hours, hours_worked, description, project, is_approved, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		entry.ID, entry.EmployeeID, entry.Date, entry.StartTime, entry.EndTime,
		entry.BreakHours, entry.HoursWorked, entry.Description, entry.Project,
		entry.IsApproved, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTimeEntry insert: %v", err)
	}

	return entry
}
