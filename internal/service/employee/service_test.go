package employee

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/worktracker-backend/internal/domain"
	"github.com/heartmarshall/worktracker-backend/pkg/ctxutil"
)

var _ employeeRepo = &employeeRepoMock{}

type employeeRepoMock struct {
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.Employee, error)
	SetActiveFunc       func(ctx context.Context, id uuid.UUID, active bool) (*domain.Employee, error)
	ListFunc            func(ctx context.Context, filter domain.EmployeeFilter) ([]domain.Employee, error)
	ListRecentFunc      func(ctx context.Context, limit int) ([]domain.Employee, error)
	ListDepartmentsFunc func(ctx context.Context) ([]string, error)
}

func (m *employeeRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error) {
	if m.GetByIDFunc == nil {
		panic("employeeRepoMock.GetByIDFunc: method is nil but was called")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *employeeRepoMock) SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.Employee, error) {
	if m.SetActiveFunc == nil {
		panic("employeeRepoMock.SetActiveFunc: method is nil but was called")
	}
	return m.SetActiveFunc(ctx, id, active)
}

func (m *employeeRepoMock) List(ctx context.Context, filter domain.EmployeeFilter) ([]domain.Employee, error) {
	if m.ListFunc == nil {
		panic("employeeRepoMock.ListFunc: method is nil but was called")
	}
	return m.ListFunc(ctx, filter)
}

func (m *employeeRepoMock) ListRecent(ctx context.Context, limit int) ([]domain.Employee, error) {
	if m.ListRecentFunc == nil {
		panic("employeeRepoMock.ListRecentFunc: method is nil but was called")
	}
	return m.ListRecentFunc(ctx, limit)
}

func (m *employeeRepoMock) ListDepartments(ctx context.Context) ([]string, error) {
	if m.ListDepartmentsFunc == nil {
		panic("employeeRepoMock.ListDepartmentsFunc: method is nil but was called")
	}
	return m.ListDepartmentsFunc(ctx)
}

func adminCtx() context.Context {
	ctx := ctxutil.WithEmployeeID(context.Background(), uuid.New())
	return ctxutil.WithIsAdmin(ctx, true)
}

func memberCtx() context.Context {
	return ctxutil.WithEmployeeID(context.Background(), uuid.New())
}

func testService(repo *employeeRepoMock) *Service {
	return NewService(slog.Default(), repo)
}

func TestService_ListEmployees_RequiresAdmin(t *testing.T) {
	t.Parallel()

	svc := testService(&employeeRepoMock{})

	_, err := svc.ListEmployees(memberCtx(), "", "")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestService_ListEmployees_PassesTrimmedFilter(t *testing.T) {
	t.Parallel()

	repo := &employeeRepoMock{
		ListFunc: func(ctx context.Context, filter domain.EmployeeFilter) ([]domain.Employee, error) {
			if filter.Search != "smith" {
				t.Errorf("Search mismatch: got %q", filter.Search)
			}
			if filter.Department != "Sales" {
				t.Errorf("Department mismatch: got %q", filter.Department)
			}
			return []domain.Employee{{FirstName: "Arnold"}}, nil
		},
	}

	svc := testService(repo)

	got, err := svc.ListEmployees(adminCtx(), "  smith ", " Sales ")
	if err != nil {
		t.Fatalf("ListEmployees: unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("got %d employees, want 1", len(got))
	}
}

func TestService_ListDepartments_RequiresAdmin(t *testing.T) {
	t.Parallel()

	svc := testService(&employeeRepoMock{})

	_, err := svc.ListDepartments(memberCtx())
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestService_ToggleActive_FlipsFlag(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	repo := &employeeRepoMock{
		GetByIDFunc: func(ctx context.Context, got uuid.UUID) (*domain.Employee, error) {
			return &domain.Employee{ID: id, IsActive: true}, nil
		},
		SetActiveFunc: func(ctx context.Context, got uuid.UUID, active bool) (*domain.Employee, error) {
			if active {
				t.Error("expected toggle to deactivate an active employee")
			}
			return &domain.Employee{ID: id, IsActive: active}, nil
		},
	}

	svc := testService(repo)

	updated, err := svc.ToggleActive(adminCtx(), id)
	if err != nil {
		t.Fatalf("ToggleActive: unexpected error: %v", err)
	}
	if updated.IsActive {
		t.Error("expected employee to be deactivated")
	}
}

func TestService_ToggleActive_RequiresAdmin(t *testing.T) {
	t.Parallel()

	svc := testService(&employeeRepoMock{})

	_, err := svc.ToggleActive(memberCtx(), uuid.New())
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestService_ToggleActive_NotFound(t *testing.T) {
	t.Parallel()

	repo := &employeeRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Employee, error) {
			return nil, domain.ErrNotFound
		},
	}

	svc := testService(repo)

	_, err := svc.ToggleActive(adminCtx(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestService_RecentEmployees_ClampsLimit(t *testing.T) {
	t.Parallel()

	repo := &employeeRepoMock{
		ListRecentFunc: func(ctx context.Context, limit int) ([]domain.Employee, error) {
			if limit != 5 {
				t.Errorf("limit mismatch: got %d, want default 5", limit)
			}
			return nil, nil
		},
	}

	svc := testService(repo)

	if _, err := svc.RecentEmployees(adminCtx(), 0); err != nil {
		t.Fatalf("RecentEmployees: unexpected error: %v", err)
	}
	if _, err := svc.RecentEmployees(adminCtx(), 1000); err != nil {
		t.Fatalf("RecentEmployees: unexpected error: %v", err)
	}
}
