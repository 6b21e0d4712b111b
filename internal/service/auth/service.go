package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/worktracker-backend/internal/config"
	"github.com/heartmarshall/worktracker-backend/internal/domain"
)

// employeeRepo defines the employee repository interface needed by auth service.
type employeeRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error)
	GetByEmail(ctx context.Context, email string) (*domain.Employee, error)
	Create(ctx context.Context, emp *domain.Employee) (*domain.Employee, error)
}

// tokenRepo defines the refresh token repository interface needed by auth service.
type tokenRepo interface {
	Create(ctx context.Context, token *domain.RefreshToken) error
	GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeByID(ctx context.Context, id uuid.UUID) error
	RevokeAllByEmployee(ctx context.Context, employeeID uuid.UUID) error
	DeleteExpired(ctx context.Context) (int, error)
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(employeeID uuid.UUID, isAdmin bool) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, bool, error)
	GenerateRefreshToken() (raw string, hash string, err error)
}

// Service implements auth operations.
type Service struct {
	log       *slog.Logger
	employees employeeRepo
	tokens    tokenRepo
	jwt       jwtManager
	cfg       config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	employees employeeRepo,
	tokens tokenRepo,
	jwt jwtManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:       logger.With("service", "auth"),
		employees: employees,
		tokens:    tokens,
		jwt:       jwt,
		cfg:       cfg,
	}
}

// issueTokens generates access and refresh tokens for the given employee,
// stores the refresh token hash in DB, and returns an AuthResult.
func (s *Service) issueTokens(ctx context.Context, emp *domain.Employee) (*AuthResult, error) {
	accessToken, err := s.jwt.GenerateAccessToken(emp.ID, emp.IsAdmin)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	rawRefresh, hashRefresh, err := s.jwt.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	refreshToken := &domain.RefreshToken{
		ID:         uuid.New(),
		EmployeeID: emp.ID,
		TokenHash:  hashRefresh,
		ExpiresAt:  time.Now().Add(s.cfg.RefreshTokenTTL),
	}
	if err := s.tokens.Create(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &AuthResult{
		AccessToken:  accessToken,
		RefreshToken: rawRefresh,
		Employee:     emp,
	}, nil
}
