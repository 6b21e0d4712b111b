package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/worktracker-backend/internal/domain"
	"github.com/heartmarshall/worktracker-backend/internal/service/report"
)

// reportService defines the minimal interface needed by ReportHandler.
type reportService interface {
	Report(ctx context.Context, input report.Input) (*report.Report, error)
	Dashboard(ctx context.Context) (*report.Dashboard, error)
}

// ReportHandler serves reporting and dashboard endpoints.
type ReportHandler struct {
	svc reportService
	log *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc reportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: logger.With("handler", "report")}
}

type summaryResponse struct {
	EmployeeID string  `json:"employeeId"`
	Name       string  `json:"name"`
	TotalHours float64 `json:"totalHours"`
	EntryCount int     `json:"entryCount"`
}

type reportResponse struct {
	Entries      []entryResponse   `json:"entries"`
	TotalHours   float64           `json:"totalHours"`
	TotalEntries int               `json:"totalEntries"`
	Summaries    []summaryResponse `json:"summaries,omitempty"`
}

type adminStatsResponse struct {
	ActiveEmployees int `json:"activeEmployees"`
	OpenSessions    int `json:"openSessions"`
	PendingEntries  int `json:"pendingEntries"`
}

type dashboardResponse struct {
	TodayHours    float64             `json:"todayHours"`
	WeekHours     float64             `json:"weekHours"`
	MonthHours    float64             `json:"monthHours"`
	ActiveSession *sessionResponse    `json:"activeSession"`
	RecentEntries []entryResponse     `json:"recentEntries"`
	Admin         *adminStatsResponse `json:"admin,omitempty"`
}

// Report handles GET /reports with optional from/to date filters. Members
// get their own entries; admins get all entries plus per-employee summaries.
func (h *ReportHandler) Report(w http.ResponseWriter, r *http.Request) {
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

	rep, err := h.svc.Report(r.Context(), report.Input{From: from, To: to})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReportResponse(rep))
}

// Dashboard handles GET /dashboard.
func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dash, err := h.svc.Dashboard(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := dashboardResponse{
		TodayHours:    dash.TodayHours,
		WeekHours:     dash.WeekHours,
		MonthHours:    dash.MonthHours,
		RecentEntries: toEntriesResponse(dash.RecentEntries).Entries,
	}
	if dash.ActiveSession != nil {
		sr := toSessionResponse(dash.ActiveSession)
		resp.ActiveSession = &sr
	}
	if dash.Admin != nil {
		resp.Admin = &adminStatsResponse{
			ActiveEmployees: dash.Admin.ActiveEmployees,
			OpenSessions:    dash.Admin.OpenSessions,
			PendingEntries:  dash.Admin.PendingEntries,
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *ReportHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func toReportResponse(rep *report.Report) reportResponse {
	out := reportResponse{
		Entries:      toEntriesResponse(rep.Entries).Entries,
		TotalHours:   rep.TotalHours,
		TotalEntries: rep.TotalEntries,
	}
	for _, s := range rep.Summaries {
		out.Summaries = append(out.Summaries, summaryResponse{
			EmployeeID: s.EmployeeID,
			Name:       s.Name,
			TotalHours: s.TotalHours,
			EntryCount: s.EntryCount,
		})
	}
	return out
}
