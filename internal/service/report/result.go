package report

import "github.com/heartmarshall/worktracker-backend/internal/domain"

// EmployeeSummary aggregates one employee's entries within a report range.
type EmployeeSummary struct {
	EmployeeID string
	Name       string
	TotalHours float64
	EntryCount int
}

// Report is the result of the Report operation. For non-admin callers the
// entries are their own and Summaries is nil.
type Report struct {
	Entries      []domain.TimeEntry
	TotalHours   float64
	TotalEntries int
	Summaries    []EmployeeSummary
}

// AdminStats is dashboard data visible to admins only.
type AdminStats struct {
	ActiveEmployees int
	OpenSessions    int
	PendingEntries  int
}

// Dashboard is the result of the Dashboard operation.
type Dashboard struct {
	TodayHours    float64
	WeekHours     float64
	MonthHours    float64
	ActiveSession *domain.ActiveSession
	RecentEntries []domain.TimeEntry
	Admin         *AdminStats // nil for non-admin callers
}
