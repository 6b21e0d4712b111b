package auth

import "github.com/heartmarshall/worktracker-backend/internal/domain"

// AuthResult is returned by Register, Login and Refresh operations.
type AuthResult struct {
	AccessToken  string
	RefreshToken string // raw token, NOT hash
	Employee     *domain.Employee
}
