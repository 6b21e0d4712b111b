package report

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/worktracker-backend/internal/domain"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	ListFunc         func(ctx context.Context, filter domain.EntryFilter) ([]domain.TimeEntry, error)
	AggregateFunc    func(ctx context.Context, filter domain.EntryFilter) ([]domain.EntryAggregate, error)
	SumHoursFunc     func(ctx context.Context, employeeID uuid.UUID, from, to time.Time) (float64, error)
	CountPendingFunc func(ctx context.Context) (int, error)
}

func (m *entryRepoMock) List(ctx context.Context, filter domain.EntryFilter) ([]domain.TimeEntry, error) {
	if m.ListFunc == nil {
		panic("entryRepoMock.ListFunc: method is nil but was called")
	}
	return m.ListFunc(ctx, filter)
}

func (m *entryRepoMock) Aggregate(ctx context.Context, filter domain.EntryFilter) ([]domain.EntryAggregate, error) {
	if m.AggregateFunc == nil {
		panic("entryRepoMock.AggregateFunc: method is nil but was called")
	}
	return m.AggregateFunc(ctx, filter)
}

func (m *entryRepoMock) SumHours(ctx context.Context, employeeID uuid.UUID, from, to time.Time) (float64, error) {
	if m.SumHoursFunc == nil {
		panic("entryRepoMock.SumHoursFunc: method is nil but was called")
	}
	return m.SumHoursFunc(ctx, employeeID, from, to)
}

func (m *entryRepoMock) CountPending(ctx context.Context) (int, error) {
	if m.CountPendingFunc == nil {
		panic("entryRepoMock.CountPendingFunc: method is nil but was called")
	}
	return m.CountPendingFunc(ctx)
}

var _ employeeRepo = &employeeRepoMock{}

type employeeRepoMock struct {
	GetByIDsFunc    func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Employee, error)
	CountActiveFunc func(ctx context.Context) (int, error)
}

func (m *employeeRepoMock) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Employee, error) {
	if m.GetByIDsFunc == nil {
		panic("employeeRepoMock.GetByIDsFunc: method is nil but was called")
	}
	return m.GetByIDsFunc(ctx, ids)
}

func (m *employeeRepoMock) CountActive(ctx context.Context) (int, error) {
	if m.CountActiveFunc == nil {
		panic("employeeRepoMock.CountActiveFunc: method is nil but was called")
	}
	return m.CountActiveFunc(ctx)
}

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	GetByEmployeeFunc func(ctx context.Context, employeeID uuid.UUID) (*domain.ActiveSession, error)
	CountFunc         func(ctx context.Context) (int, error)
}

func (m *sessionRepoMock) GetByEmployee(ctx context.Context, employeeID uuid.UUID) (*domain.ActiveSession, error) {
	if m.GetByEmployeeFunc == nil {
		panic("sessionRepoMock.GetByEmployeeFunc: method is nil but was called")
	}
	return m.GetByEmployeeFunc(ctx, employeeID)
}

func (m *sessionRepoMock) Count(ctx context.Context) (int, error) {
	if m.CountFunc == nil {
		panic("sessionRepoMock.CountFunc: method is nil but was called")
	}
	return m.CountFunc(ctx)
}

var _ clock = fixedClock{}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }
