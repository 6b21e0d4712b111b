package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	employeeIDKey ctxKey = "employee_id"
	isAdminKey    ctxKey = "is_admin"
	requestIDKey  ctxKey = "request_id"
)

// WithEmployeeID stores the authenticated employee ID in the context.
func WithEmployeeID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, employeeIDKey, id)
}

// EmployeeIDFromCtx extracts the employee ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func EmployeeIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(employeeIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithIsAdmin stores the admin flag of the authenticated employee in the context.
func WithIsAdmin(ctx context.Context, isAdmin bool) context.Context {
	return context.WithValue(ctx, isAdminKey, isAdmin)
}

// IsAdminCtx reports whether the context belongs to an authenticated admin.
func IsAdminCtx(ctx context.Context) bool {
	isAdmin, _ := ctx.Value(isAdminKey).(bool)
	return isAdmin
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
