package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/worktracker-backend/internal/domain"
	"github.com/heartmarshall/worktracker-backend/internal/service/tracking"
)

// trackingService defines the minimal interface needed by TrackingHandler.
type trackingService interface {
	StartSession(ctx context.Context, input tracking.StartSessionInput) (*domain.ActiveSession, error)
	StopSession(ctx context.Context) (*domain.TimeEntry, error)
	GetActiveSession(ctx context.Context) (*domain.ActiveSession, error)
	AddManualEntry(ctx context.Context, input tracking.ManualEntryInput) (*domain.TimeEntry, error)
	DeleteEntry(ctx context.Context, entryID uuid.UUID) error
	ListEntries(ctx context.Context, input tracking.ListEntriesInput) ([]domain.TimeEntry, error)
	ListToday(ctx context.Context) ([]domain.TimeEntry, error)
}

// TrackingHandler serves work session and time entry endpoints.
type TrackingHandler struct {
	svc trackingService
	log *slog.Logger
}

// NewTrackingHandler creates a TrackingHandler.
func NewTrackingHandler(svc trackingService, logger *slog.Logger) *TrackingHandler {
	return &TrackingHandler{svc: svc, log: logger.With("handler", "tracking")}
}

type startSessionRequest struct {
	Description string `json:"description"`
	Project     string `json:"project"`
}

type manualEntryRequest struct {
	Date        string  `json:"date"`      // YYYY-MM-DD
	StartTime   string  `json:"startTime"` // HH:MM
	EndTime     string  `json:"endTime"`   // HH:MM
	BreakHours  float64 `json:"breakHours"`
	Description string  `json:"description"`
	Project     string  `json:"project"`
}

type sessionResponse struct {
	ID            string    `json:"id"`
	EmployeeID    string    `json:"employeeId"`
	StartedAt     time.Time `json:"startedAt"`
	Description   string    `json:"description,omitempty"`
	Project       string    `json:"project,omitempty"`
	DurationHours float64   `json:"durationHours"`
}

type entryResponse struct {
	ID          string    `json:"id"`
	EmployeeID  string    `json:"employeeId"`
	Date        string    `json:"date"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	BreakHours  float64   `json:"breakHours"`
	HoursWorked float64   `json:"hoursWorked"`
	Description string    `json:"description,omitempty"`
	Project     string    `json:"project,omitempty"`
	IsApproved  bool      `json:"isApproved"`
	CreatedAt   time.Time `json:"createdAt"`
}

type entriesResponse struct {
	Entries []entryResponse `json:"entries"`
}

// StartSession handles POST /sessions/start. The body is optional.
func (h *TrackingHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.svc.StartSession(r.Context(), tracking.StartSessionInput{
		Description: req.Description,
		Project:     req.Project,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSessionResponse(session))
}

// StopSession handles POST /sessions/stop. Returns the created time entry.
func (h *TrackingHandler) StopSession(w http.ResponseWriter, r *http.Request) {
	entry, err := h.svc.StopSession(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// ActiveSession handles GET /sessions/active. Returns {"session": null}
// when no session is running.
func (h *TrackingHandler) ActiveSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.svc.GetActiveSession(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := struct {
		Session *sessionResponse `json:"session"`
	}{}
	if session != nil {
		sr := toSessionResponse(session)
		resp.Session = &sr
	}
	writeJSON(w, http.StatusOK, resp)
}

// AddManualEntry handles POST /entries.
func (h *TrackingHandler) AddManualEntry(w http.ResponseWriter, r *http.Request) {
	var req manualEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}
	start, err := time.Parse("15:04", req.StartTime)
	if err != nil {
		writeError(w, http.StatusBadRequest, "startTime must be HH:MM")
		return
	}
	end, err := time.Parse("15:04", req.EndTime)
	if err != nil {
		writeError(w, http.StatusBadRequest, "endTime must be HH:MM")
		return
	}

	entry, err := h.svc.AddManualEntry(r.Context(), tracking.ManualEntryInput{
		Date:        date,
		Start:       start,
		End:         end,
		BreakHours:  req.BreakHours,
		Description: req.Description,
		Project:     req.Project,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEntryResponse(entry))
}

// DeleteEntry handles DELETE /entries/{id}.
func (h *TrackingHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entry id")
		return
	}

	if err := h.svc.DeleteEntry(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ListEntries handles GET /entries with optional from/to date filters.
func (h *TrackingHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	from, err := parseDateParam(r, "from")
	if err != nil {
		writeError(w, http.StatusBadRequest, "from must be YYYY-MM-DD")
		return
	}
	to, err := parseDateParam(r, "to")
	if err != nil {
		writeError(w, http.StatusBadRequest, "to must be YYYY-MM-DD")
		return
	}

	entries, err := h.svc.ListEntries(r.Context(), tracking.ListEntriesInput{From: from, To: to})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntriesResponse(entries))
}

// ListToday handles GET /entries/today.
func (h *TrackingHandler) ListToday(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.ListToday(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntriesResponse(entries))
}

func (h *TrackingHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func parseDateParam(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func toSessionResponse(s *domain.ActiveSession) sessionResponse {
	return sessionResponse{
		ID:            s.ID.String(),
		EmployeeID:    s.EmployeeID.String(),
		StartedAt:     s.StartedAt,
		Description:   s.Description,
		Project:       s.Project,
		DurationHours: s.DurationHours(time.Now().UTC()),
	}
}

func toEntryResponse(e *domain.TimeEntry) entryResponse {
	return entryResponse{
		ID:          e.ID.String(),
		EmployeeID:  e.EmployeeID.String(),
		Date:        e.Date.Format("2006-01-02"),
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		BreakHours:  e.BreakHours,
		HoursWorked: e.HoursWorked,
		Description: e.Description,
		Project:     e.Project,
		IsApproved:  e.IsApproved,
		CreatedAt:   e.CreatedAt,
	}
}

func toEntriesResponse(entries []domain.TimeEntry) entriesResponse {
	out := entriesResponse{Entries: make([]entryResponse, 0, len(entries))}
	for i := range entries {
		out.Entries = append(out.Entries, toEntryResponse(&entries[i]))
	}
	return out
}
