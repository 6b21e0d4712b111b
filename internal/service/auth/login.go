package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/worktracker-backend/internal/domain"
)

// Login authenticates an employee with email + password.
// Returns ErrUnauthorized if the email is unknown, the password is wrong,
// or the account has been deactivated.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := input.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.employees.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get employee: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	// Deactivated accounts keep their credentials but cannot sign in.
	if !emp.IsActive {
		return nil, fmt.Errorf("account deactivated: %w", domain.ErrUnauthorized)
	}

	result, err := s.issueTokens(ctx, emp)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "employee logged in",
		slog.String("employee_id", emp.ID.String()))

	return result, nil
}
