package employee

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/worktracker-backend/internal/domain"
	"github.com/heartmarshall/worktracker-backend/pkg/ctxutil"
)

const recentLimitMax = 50

// ListEmployees returns the directory, optionally narrowed by a search term
// (substring over names, email and company employee id) and a department.
func (s *Service) ListEmployees(ctx context.Context, search, department string) ([]domain.Employee, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	employees, err := s.employees.List(ctx, domain.EmployeeFilter{
		Search:     strings.TrimSpace(search),
		Department: strings.TrimSpace(department),
	})
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return employees, nil
}

// ListDepartments returns the distinct department names for the filter dropdown.
func (s *Service) ListDepartments(ctx context.Context) ([]string, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	departments, err := s.employees.ListDepartments(ctx)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	return departments, nil
}

// ToggleActive flips an employee's active flag and returns the updated record.
// Deactivation blocks future logins and token validation but deliberately
// leaves any open work session running.
func (s *Service) ToggleActive(ctx context.Context, employeeID uuid.UUID) (*domain.Employee, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	emp, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("toggle active: %w", err)
	}

	updated, err := s.employees.SetActive(ctx, employeeID, !emp.IsActive)
	if err != nil {
		return nil, fmt.Errorf("toggle active: %w", err)
	}

	s.log.InfoContext(ctx, "employee active flag toggled",
		slog.String("employee_id", employeeID.String()),
		slog.Bool("is_active", updated.IsActive),
	)

	return updated, nil
}

// RecentEmployees returns the most recently registered accounts for the admin
// dashboard, newest first.
func (s *Service) RecentEmployees(ctx context.Context, limit int) ([]domain.Employee, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if limit <= 0 || limit > recentLimitMax {
		limit = 5
	}

	employees, err := s.employees.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("recent employees: %w", err)
	}
	return employees, nil
}
