package tracking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/worktracker-backend/internal/domain"
	"github.com/heartmarshall/worktracker-backend/pkg/ctxutil"
)

// GetActiveSession returns the employee's open work session, or nil if none.
func (s *Service) GetActiveSession(ctx context.Context) (*domain.ActiveSession, error) {
	employeeID, ok := ctxutil.EmployeeIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	session, err := s.sessions.GetByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active session: %w", err)
	}
	return session, nil
}

// StartSession opens a new work session for the employee.
// Returns ErrConflict if one is already running.
func (s *Service) StartSession(ctx context.Context, input StartSessionInput) (*domain.ActiveSession, error) {
	employeeID, ok := ctxutil.EmployeeIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	session := &domain.ActiveSession{
		ID:          uuid.New(),
		EmployeeID:  employeeID,
		StartedAt:   s.clock.Now(),
		Description: input.Description,
		Project:     input.Project,
	}

	created, err := s.sessions.Create(ctx, session)
	if err != nil {
		// The unique constraint backstops concurrent starts: any second open
		// session for this employee surfaces as a conflict, not a duplicate.
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("session already running: %w", domain.ErrConflict)
		}
		return nil, fmt.Errorf("start session: %w", err)
	}

	s.log.InfoContext(ctx, "work session started",
		slog.String("employee_id", employeeID.String()),
		slog.String("session_id", created.ID.String()),
	)

	return created, nil
}

// StopSession closes the employee's open session, converting it into an
// unapproved time entry. Entry creation and session deletion happen in one
// transaction. Returns ErrNotFound if no session is running.
func (s *Service) StopSession(ctx context.Context) (*domain.TimeEntry, error) {
	employeeID, ok := ctxutil.EmployeeIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	session, err := s.sessions.GetByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("no session running: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get active session: %w", err)
	}

	now := s.clock.Now()
	entry := &domain.TimeEntry{
		ID:          uuid.New(),
		EmployeeID:  employeeID,
		Date:        dateOf(session.StartedAt),
		StartTime:   session.StartedAt,
		EndTime:     now,
		HoursWorked: domain.CalculateHours(session.StartedAt, now, 0),
		Description: session.Description,
		Project:     session.Project,
	}

	var created *domain.TimeEntry
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		created, err = s.entries.Create(txCtx, entry)
		if err != nil {
			return fmt.Errorf("create entry: %w", err)
		}
		if err := s.sessions.DeleteByEmployee(txCtx, employeeID); err != nil {
			return fmt.Errorf("delete session: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("stop session: %w", err)
	}

	s.log.InfoContext(ctx, "work session stopped",
		slog.String("employee_id", employeeID.String()),
		slog.String("entry_id", created.ID.String()),
		slog.Float64("hours", created.HoursWorked),
	)

	return created, nil
}
