// Package employee implements the admin employee directory: listing and
// searching accounts, department lookups, and activation toggles.
package employee

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/worktracker-backend/internal/domain"
)

type employeeRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.Employee, error)
	List(ctx context.Context, filter domain.EmployeeFilter) ([]domain.Employee, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Employee, error)
	ListDepartments(ctx context.Context) ([]string, error)
}

// Service implements the employee directory operations. Every operation is
// admin-gated: callers without the admin flag get ErrForbidden.
type Service struct {
	log       *slog.Logger
	employees employeeRepo
}

// NewService creates a new employee directory service.
func NewService(logger *slog.Logger, employees employeeRepo) *Service {
	return &Service{
		log:       logger.With("service", "employee"),
		employees: employees,
	}
}
