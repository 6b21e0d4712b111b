package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/worktracker-backend/internal/domain"
)

// Register creates a new employee account with email + password.
// Returns ErrAlreadyExists if the email or company employee id is taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.EmployeeID = strings.TrimSpace(input.EmployeeID)
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	hireDate := input.HireDate
	if hireDate.IsZero() {
		hireDate = time.Now().UTC().Truncate(24 * time.Hour)
	}

	// Email and employee_id uniqueness are enforced by DB constraints.
	newEmployee := &domain.Employee{
		ID:           uuid.New(),
		EmployeeID:   input.EmployeeID,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Phone:        input.Phone,
		Department:   input.Department,
		Position:     input.Position,
		HireDate:     hireDate,
		IsActive:     true,
		PasswordHash: string(hash),
	}

	created, err := s.employees.Create(ctx, newEmployee)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	result, err := s.issueTokens(ctx, created)
	if err != nil {
		return nil, fmt.Errorf("auth.Register issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "employee registered",
		slog.String("employee_id", created.ID.String()))

	return result, nil
}
