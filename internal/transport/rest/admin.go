package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/worktracker-backend/internal/domain"
)

// directoryService defines the employee directory operations needed by AdminHandler.
type directoryService interface {
	ListEmployees(ctx context.Context, search, department string) ([]domain.Employee, error)
	ListDepartments(ctx context.Context) ([]string, error)
	ToggleActive(ctx context.Context, employeeID uuid.UUID) (*domain.Employee, error)
	RecentEmployees(ctx context.Context, limit int) ([]domain.Employee, error)
}

// reviewService defines the entry review operations needed by AdminHandler.
type reviewService interface {
	ListPendingEntries(ctx context.Context) ([]domain.TimeEntry, error)
	ApproveEntry(ctx context.Context, entryID uuid.UUID) (*domain.TimeEntry, error)
}

// AdminHandler serves admin-only REST endpoints. Authorization is enforced
// by the services, which check the admin flag in the context.
type AdminHandler struct {
	directory directoryService
	review    reviewService
	log       *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(directory directoryService, review reviewService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		directory: directory,
		review:    review,
		log:       logger.With("handler", "admin"),
	}
}

type employeesResponse struct {
	Employees []employeeResponse `json:"employees"`
}

// ListEmployees handles GET /admin/employees with optional search and
// department filters.
func (h *AdminHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	employees, err := h.directory.ListEmployees(r.Context(), q.Get("search"), q.Get("department"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeesResponse(employees))
}

// ListDepartments handles GET /admin/departments.
func (h *AdminHandler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.directory.ListDepartments(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"departments": departments})
}

// ToggleActive handles POST /admin/employees/{id}/toggle.
func (h *AdminHandler) ToggleActive(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid employee id")
		return
	}

	emp, err := h.directory.ToggleActive(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeResponse(emp))
}

// RecentEmployees handles GET /admin/employees/recent with an optional limit.
func (h *AdminHandler) RecentEmployees(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = parsed
	}

	employees, err := h.directory.RecentEmployees(r.Context(), limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeesResponse(employees))
}

// ListPendingEntries handles GET /admin/entries/pending.
func (h *AdminHandler) ListPendingEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.review.ListPendingEntries(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntriesResponse(entries))
}

// ApproveEntry handles POST /admin/entries/{id}/approve.
func (h *AdminHandler) ApproveEntry(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entry id")
		return
	}

	entry, err := h.review.ApproveEntry(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

func (h *AdminHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func toEmployeesResponse(employees []domain.Employee) employeesResponse {
	out := employeesResponse{Employees: make([]employeeResponse, 0, len(employees))}
	for i := range employees {
		out.Employees = append(out.Employees, toEmployeeResponse(&employees[i]))
	}
	return out
}
