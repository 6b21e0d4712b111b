package tracking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/worktracker-backend/internal/domain"
)

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	CreateFunc           func(ctx context.Context, session *domain.ActiveSession) (*domain.ActiveSession, error)
	GetByEmployeeFunc    func(ctx context.Context, employeeID uuid.UUID) (*domain.ActiveSession, error)
	DeleteByEmployeeFunc func(ctx context.Context, employeeID uuid.UUID) error
}

func (m *sessionRepoMock) Create(ctx context.Context, session *domain.ActiveSession) (*domain.ActiveSession, error) {
	if m.CreateFunc == nil {
		panic("sessionRepoMock.CreateFunc: method is nil but was called")
	}
	return m.CreateFunc(ctx, session)
}

func (m *sessionRepoMock) GetByEmployee(ctx context.Context, employeeID uuid.UUID) (*domain.ActiveSession, error) {
	if m.GetByEmployeeFunc == nil {
		panic("sessionRepoMock.GetByEmployeeFunc: method is nil but was called")
	}
	return m.GetByEmployeeFunc(ctx, employeeID)
}

func (m *sessionRepoMock) DeleteByEmployee(ctx context.Context, employeeID uuid.UUID) error {
	if m.DeleteByEmployeeFunc == nil {
		panic("sessionRepoMock.DeleteByEmployeeFunc: method is nil but was called")
	}
	return m.DeleteByEmployeeFunc(ctx, employeeID)
}

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	CreateFunc  func(ctx context.Context, entry *domain.TimeEntry) (*domain.TimeEntry, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.TimeEntry, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error
	ApproveFunc func(ctx context.Context, id uuid.UUID) (*domain.TimeEntry, error)
	ListFunc    func(ctx context.Context, filter domain.EntryFilter) ([]domain.TimeEntry, error)
}

func (m *entryRepoMock) Create(ctx context.Context, entry *domain.TimeEntry) (*domain.TimeEntry, error) {
	if m.CreateFunc == nil {
		panic("entryRepoMock.CreateFunc: method is nil but was called")
	}
	return m.CreateFunc(ctx, entry)
}

func (m *entryRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.TimeEntry, error) {
	if m.GetByIDFunc == nil {
		panic("entryRepoMock.GetByIDFunc: method is nil but was called")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *entryRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("entryRepoMock.DeleteFunc: method is nil but was called")
	}
	return m.DeleteFunc(ctx, id)
}

func (m *entryRepoMock) Approve(ctx context.Context, id uuid.UUID) (*domain.TimeEntry, error) {
	if m.ApproveFunc == nil {
		panic("entryRepoMock.ApproveFunc: method is nil but was called")
	}
	return m.ApproveFunc(ctx, id)
}

func (m *entryRepoMock) List(ctx context.Context, filter domain.EntryFilter) ([]domain.TimeEntry, error) {
	if m.ListFunc == nil {
		panic("entryRepoMock.ListFunc: method is nil but was called")
	}
	return m.ListFunc(ctx, filter)
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc == nil {
		return fn(ctx)
	}
	return m.RunInTxFunc(ctx, fn)
}

var _ clock = fixedClock{}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }
