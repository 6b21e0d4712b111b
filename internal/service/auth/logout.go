package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/worktracker-backend/internal/domain"
	"github.com/heartmarshall/worktracker-backend/pkg/ctxutil"
)

// Logout revokes all refresh tokens for the authenticated employee.
// Returns ErrUnauthorized if no employee ID is found in context.
func (s *Service) Logout(ctx context.Context) error {
	employeeID, ok := ctxutil.EmployeeIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.tokens.RevokeAllByEmployee(ctx, employeeID); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "employee logged out",
		slog.String("employee_id", employeeID.String()))
	return nil
}

// ValidateToken validates an access token and returns the employee it belongs
// to. The employee is loaded from the database so that deactivation takes
// effect on the next request, not only at the next login.
func (s *Service) ValidateToken(ctx context.Context, token string) (*domain.Employee, error) {
	employeeID, _, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	emp, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.ValidateToken get employee: %w", err)
	}

	if !emp.IsActive {
		return nil, domain.ErrUnauthorized
	}

	return emp, nil
}

// CleanupExpiredTokens removes all expired refresh tokens from the database.
// Returns the number of tokens deleted. This is a maintenance operation.
func (s *Service) CleanupExpiredTokens(ctx context.Context) (int, error) {
	count, err := s.tokens.DeleteExpired(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "token cleanup failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("auth.CleanupExpiredTokens: %w", err)
	}

	if count > 0 {
		s.log.InfoContext(ctx, "cleaned up expired tokens", slog.Int("count", count))
	}

	return count, nil
}
