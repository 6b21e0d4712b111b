package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/worktracker-backend/internal/domain"
)

var _ employeeRepo = &employeeRepoMock{}

type employeeRepoMock struct {
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Employee, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.Employee, error)
	CreateFunc     func(ctx context.Context, emp *domain.Employee) (*domain.Employee, error)
}

func (m *employeeRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error) {
	if m.GetByIDFunc == nil {
		panic("employeeRepoMock.GetByIDFunc: method is nil but was called")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *employeeRepoMock) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	if m.GetByEmailFunc == nil {
		panic("employeeRepoMock.GetByEmailFunc: method is nil but was called")
	}
	return m.GetByEmailFunc(ctx, email)
}

func (m *employeeRepoMock) Create(ctx context.Context, emp *domain.Employee) (*domain.Employee, error) {
	if m.CreateFunc == nil {
		panic("employeeRepoMock.CreateFunc: method is nil but was called")
	}
	return m.CreateFunc(ctx, emp)
}

var _ tokenRepo = &tokenRepoMock{}

type tokenRepoMock struct {
	CreateFunc              func(ctx context.Context, token *domain.RefreshToken) error
	GetByHashFunc           func(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeByIDFunc          func(ctx context.Context, id uuid.UUID) error
	RevokeAllByEmployeeFunc func(ctx context.Context, employeeID uuid.UUID) error
	DeleteExpiredFunc       func(ctx context.Context) (int, error)
}

func (m *tokenRepoMock) Create(ctx context.Context, token *domain.RefreshToken) error {
	if m.CreateFunc == nil {
		panic("tokenRepoMock.CreateFunc: method is nil but was called")
	}
	return m.CreateFunc(ctx, token)
}

func (m *tokenRepoMock) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	if m.GetByHashFunc == nil {
		panic("tokenRepoMock.GetByHashFunc: method is nil but was called")
	}
	return m.GetByHashFunc(ctx, tokenHash)
}

func (m *tokenRepoMock) RevokeByID(ctx context.Context, id uuid.UUID) error {
	if m.RevokeByIDFunc == nil {
		panic("tokenRepoMock.RevokeByIDFunc: method is nil but was called")
	}
	return m.RevokeByIDFunc(ctx, id)
}

func (m *tokenRepoMock) RevokeAllByEmployee(ctx context.Context, employeeID uuid.UUID) error {
	if m.RevokeAllByEmployeeFunc == nil {
		panic("tokenRepoMock.RevokeAllByEmployeeFunc: method is nil but was called")
	}
	return m.RevokeAllByEmployeeFunc(ctx, employeeID)
}

func (m *tokenRepoMock) DeleteExpired(ctx context.Context) (int, error) {
	if m.DeleteExpiredFunc == nil {
		panic("tokenRepoMock.DeleteExpiredFunc: method is nil but was called")
	}
	return m.DeleteExpiredFunc(ctx)
}

var _ jwtManager = &jwtManagerMock{}

type jwtManagerMock struct {
	GenerateAccessTokenFunc  func(employeeID uuid.UUID, isAdmin bool) (string, error)
	ValidateAccessTokenFunc  func(token string) (uuid.UUID, bool, error)
	GenerateRefreshTokenFunc func() (string, string, error)
}

func (m *jwtManagerMock) GenerateAccessToken(employeeID uuid.UUID, isAdmin bool) (string, error) {
	if m.GenerateAccessTokenFunc == nil {
		panic("jwtManagerMock.GenerateAccessTokenFunc: method is nil but was called")
	}
	return m.GenerateAccessTokenFunc(employeeID, isAdmin)
}

func (m *jwtManagerMock) ValidateAccessToken(token string) (uuid.UUID, bool, error) {
	if m.ValidateAccessTokenFunc == nil {
		panic("jwtManagerMock.ValidateAccessTokenFunc: method is nil but was called")
	}
	return m.ValidateAccessTokenFunc(token)
}

func (m *jwtManagerMock) GenerateRefreshToken() (string, string, error) {
	if m.GenerateRefreshTokenFunc == nil {
		panic("jwtManagerMock.GenerateRefreshTokenFunc: method is nil but was called")
	}
	return m.GenerateRefreshTokenFunc()
}
