// Package tracking implements the work time tracking business logic:
// live sessions, manual time entries, and the admin approval flow.
package tracking

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/worktracker-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type sessionRepo interface {
	Create(ctx context.Context, session *domain.ActiveSession) (*domain.ActiveSession, error)
	GetByEmployee(ctx context.Context, employeeID uuid.UUID) (*domain.ActiveSession, error)
	DeleteByEmployee(ctx context.Context, employeeID uuid.UUID) error
}

type entryRepo interface {
	Create(ctx context.Context, entry *domain.TimeEntry) (*domain.TimeEntry, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TimeEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Approve(ctx context.Context, id uuid.UUID) (*domain.TimeEntry, error)
	List(ctx context.Context, filter domain.EntryFilter) ([]domain.TimeEntry, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the tracking business logic.
type Service struct {
	log      *slog.Logger
	sessions sessionRepo
	entries  entryRepo
	tx       txManager
	clock    clock
}

// NewService creates a new tracking service.
func NewService(
	logger *slog.Logger,
	sessions sessionRepo,
	entries entryRepo,
	tx txManager,
) *Service {
	return &Service{
		log:      logger.With("service", "tracking"),
		sessions: sessions,
		entries:  entries,
		tx:       tx,
		clock:    realClock{},
	}
}
