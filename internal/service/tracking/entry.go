package tracking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/worktracker-backend/internal/domain"
	"github.com/heartmarshall/worktracker-backend/pkg/ctxutil"
)

// AddManualEntry records a time entry typed in by hand. Start and End are
// clock times on the entry date; an End before Start is treated as an
// overnight shift. The entry starts out unapproved.
func (s *Service) AddManualEntry(ctx context.Context, input ManualEntryInput) (*domain.TimeEntry, error) {
	employeeID, ok := ctxutil.EmployeeIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	date := dateOf(input.Date)
	start := combine(date, input.Start)
	end := combine(date, input.End)
	if end.Before(start) {
		end = end.Add(24 * time.Hour)
	}

	entry := &domain.TimeEntry{
		ID:          uuid.New(),
		EmployeeID:  employeeID,
		Date:        date,
		StartTime:   start,
		EndTime:     end,
		BreakHours:  input.BreakHours,
		HoursWorked: domain.CalculateHours(start, end, input.BreakHours),
		Description: input.Description,
		Project:     input.Project,
	}

	created, err := s.entries.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("add manual entry: %w", err)
	}

	s.log.InfoContext(ctx, "manual entry added",
		slog.String("employee_id", employeeID.String()),
		slog.String("entry_id", created.ID.String()),
		slog.Float64("hours", created.HoursWorked),
	)

	return created, nil
}

// DeleteEntry removes a time entry. Employees may delete their own entries;
// admins may delete anyone's. Returns ErrForbidden otherwise.
func (s *Service) DeleteEntry(ctx context.Context, entryID uuid.UUID) error {
	employeeID, ok := ctxutil.EmployeeIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	entry, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}

	if entry.EmployeeID != employeeID && !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}

	if err := s.entries.Delete(ctx, entryID); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}

	s.log.InfoContext(ctx, "entry deleted",
		slog.String("employee_id", employeeID.String()),
		slog.String("entry_id", entryID.String()),
	)

	return nil
}

// ApproveEntry marks a time entry approved. Admin only, idempotent.
func (s *Service) ApproveEntry(ctx context.Context, entryID uuid.UUID) (*domain.TimeEntry, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	approved, err := s.entries.Approve(ctx, entryID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("approve entry: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("approve entry: %w", err)
	}

	s.log.InfoContext(ctx, "entry approved",
		slog.String("entry_id", entryID.String()))

	return approved, nil
}

// combine places the clock part of t onto the calendar date.
func combine(date, t time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}
