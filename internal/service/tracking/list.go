package tracking

import (
	"context"
	"fmt"

	"github.com/heartmarshall/worktracker-backend/internal/domain"
	"github.com/heartmarshall/worktracker-backend/pkg/ctxutil"
)

// ListEntries returns the employee's own entries, optionally bounded by date,
// newest entry date first.
func (s *Service) ListEntries(ctx context.Context, input ListEntriesInput) ([]domain.TimeEntry, error) {
	employeeID, ok := ctxutil.EmployeeIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	entries, err := s.entries.List(ctx, domain.EntryFilter{
		EmployeeID: &employeeID,
		From:       input.From,
		To:         input.To,
	})
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

// ListToday returns the employee's entries for the current calendar date.
func (s *Service) ListToday(ctx context.Context) ([]domain.TimeEntry, error) {
	employeeID, ok := ctxutil.EmployeeIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	today := dateOf(s.clock.Now())
	entries, err := s.entries.List(ctx, domain.EntryFilter{
		EmployeeID: &employeeID,
		From:       &today,
		To:         &today,
	})
	if err != nil {
		return nil, fmt.Errorf("list today: %w", err)
	}
	return entries, nil
}

// ListPendingEntries returns unapproved entries across all employees for the
// admin review screen. Admin only.
func (s *Service) ListPendingEntries(ctx context.Context) ([]domain.TimeEntry, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	entries, err := s.entries.List(ctx, domain.EntryFilter{PendingOnly: true})
	if err != nil {
		return nil, fmt.Errorf("list pending entries: %w", err)
	}
	return entries, nil
}
