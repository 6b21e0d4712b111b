package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/heartmarshall/worktracker-backend/internal/domain"
	"github.com/heartmarshall/worktracker-backend/pkg/ctxutil"
)

const recentEntriesLimit = 5

// Dashboard returns the caller's today/week/month hour totals, open session,
// and most recent entries. Admins additionally get company-wide counters.
func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	employeeID, ok := ctxutil.EmployeeIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := s.clock.Now().UTC()
	today := dateOf(now)
	weekStart := startOfWeek(today)
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)

	todayHours, err := s.entries.SumHours(ctx, employeeID, today, today)
	if err != nil {
		return nil, fmt.Errorf("dashboard today hours: %w", err)
	}
	weekHours, err := s.entries.SumHours(ctx, employeeID, weekStart, today)
	if err != nil {
		return nil, fmt.Errorf("dashboard week hours: %w", err)
	}
	monthHours, err := s.entries.SumHours(ctx, employeeID, monthStart, today)
	if err != nil {
		return nil, fmt.Errorf("dashboard month hours: %w", err)
	}

	recent, err := s.entries.List(ctx, domain.EntryFilter{
		EmployeeID: &employeeID,
		Limit:      recentEntriesLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("dashboard recent entries: %w", err)
	}

	dashboard := &Dashboard{
		TodayHours:    round2(todayHours),
		WeekHours:     round2(weekHours),
		MonthHours:    round2(monthHours),
		RecentEntries: recent,
	}

	session, err := s.sessions.GetByEmployee(ctx, employeeID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("dashboard active session: %w", err)
	}
	dashboard.ActiveSession = session
	if errors.Is(err, domain.ErrNotFound) {
		dashboard.ActiveSession = nil
	}

	if ctxutil.IsAdminCtx(ctx) {
		stats, err := s.adminStats(ctx)
		if err != nil {
			return nil, fmt.Errorf("dashboard admin stats: %w", err)
		}
		dashboard.Admin = stats
	}

	return dashboard, nil
}

func (s *Service) adminStats(ctx context.Context) (*AdminStats, error) {
	activeEmployees, err := s.employees.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("count active employees: %w", err)
	}

	openSessions, err := s.sessions.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count open sessions: %w", err)
	}

	pending, err := s.entries.CountPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("count pending entries: %w", err)
	}

	return &AdminStats{
		ActiveEmployees: activeEmployees,
		OpenSessions:    openSessions,
		PendingEntries:  pending,
	}, nil
}

// dateOf truncates a timestamp to its UTC calendar date.
func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// startOfWeek returns the Monday on or before the given date.
func startOfWeek(date time.Time) time.Time {
	offset := (int(date.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return date.AddDate(0, 0, -offset)
}
