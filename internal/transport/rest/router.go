package rest

import "net/http"

// Handlers groups the REST handlers the router serves.
type Handlers struct {
	Auth     *AuthHandler
	Tracking *TrackingHandler
	Admin    *AdminHandler
	Report   *ReportHandler
	Health   *HealthHandler
}

// NewRouter builds the HTTP route table. Authentication and the rest of the
// middleware chain are applied by the caller around the returned mux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /api/v1/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/v1/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /api/v1/auth/refresh", h.Auth.Refresh)
	mux.HandleFunc("POST /api/v1/auth/logout", h.Auth.Logout)

	mux.HandleFunc("POST /api/v1/sessions/start", h.Tracking.StartSession)
	mux.HandleFunc("POST /api/v1/sessions/stop", h.Tracking.StopSession)
	mux.HandleFunc("GET /api/v1/sessions/active", h.Tracking.ActiveSession)

	mux.HandleFunc("GET /api/v1/entries", h.Tracking.ListEntries)
	mux.HandleFunc("GET /api/v1/entries/today", h.Tracking.ListToday)
	mux.HandleFunc("POST /api/v1/entries", h.Tracking.AddManualEntry)
	mux.HandleFunc("DELETE /api/v1/entries/{id}", h.Tracking.DeleteEntry)

	mux.HandleFunc("GET /api/v1/reports", h.Report.Report)
	mux.HandleFunc("GET /api/v1/dashboard", h.Report.Dashboard)

	mux.HandleFunc("GET /api/v1/admin/employees", h.Admin.ListEmployees)
	mux.HandleFunc("GET /api/v1/admin/employees/recent", h.Admin.RecentEmployees)
	mux.HandleFunc("POST /api/v1/admin/employees/{id}/toggle", h.Admin.ToggleActive)
	mux.HandleFunc("GET /api/v1/admin/departments", h.Admin.ListDepartments)
	mux.HandleFunc("GET /api/v1/admin/entries/pending", h.Admin.ListPendingEntries)
	mux.HandleFunc("POST /api/v1/admin/entries/{id}/approve", h.Admin.ApproveEntry)

	return mux
}
