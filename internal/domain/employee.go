package domain

import (
	"time"

	"github.com/google/uuid"
)

// Employee represents a registered employee account.
// IsActive gates authentication only: deactivating an employee blocks new
// logins and token validation but never deletes history or force-closes an
// open work session.
type Employee struct {
	ID           uuid.UUID
	EmployeeID   string // HR-assigned identifier, unique
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Department   string
	Position     string
	HireDate     time.Time
	IsAdmin      bool
	IsActive     bool
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName returns "First Last" for display and log output.
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// RefreshToken represents a hashed refresh token stored in the database.
type RefreshToken struct {
	ID         uuid.UUID
	EmployeeID uuid.UUID
	TokenHash  string
	ExpiresAt  time.Time
	CreatedAt  time.Time
	RevokedAt  *time.Time
}

// IsRevoked returns true if the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
