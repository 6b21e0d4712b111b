// Package report builds time reports and the dashboard: per-range totals,
// per-employee summaries for admins, and today/week/month aggregates.
package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/worktracker-backend/internal/domain"
)

type entryRepo interface {
	List(ctx context.Context, filter domain.EntryFilter) ([]domain.TimeEntry, error)
	Aggregate(ctx context.Context, filter domain.EntryFilter) ([]domain.EntryAggregate, error)
	SumHours(ctx context.Context, employeeID uuid.UUID, from, to time.Time) (float64, error)
	CountPending(ctx context.Context) (int, error)
}

type employeeRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Employee, error)
	CountActive(ctx context.Context) (int, error)
}

type sessionRepo interface {
	GetByEmployee(ctx context.Context, employeeID uuid.UUID) (*domain.ActiveSession, error)
	Count(ctx context.Context) (int, error)
}

type clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Service implements report and dashboard operations.
type Service struct {
	log       *slog.Logger
	entries   entryRepo
	employees employeeRepo
	sessions  sessionRepo
	clock     clock
}

// NewService creates a new report service.
func NewService(
	logger *slog.Logger,
	entries entryRepo,
	employees employeeRepo,
	sessions sessionRepo,
) *Service {
	return &Service{
		log:       logger.With("service", "report"),
		entries:   entries,
		employees: employees,
		sessions:  sessions,
		clock:     realClock{},
	}
}
