package domain

import (
	"time"

	"github.com/google/uuid"
)

// EntryFilter contains filtering/pagination parameters for time entry listings.
type EntryFilter struct {
	// EmployeeID limits the listing to a single employee. nil means all.
	EmployeeID *uuid.UUID

	// From / To bound entry_date inclusively. nil means unbounded.
	From *time.Time
	To   *time.Time

	// PendingOnly limits the listing to unapproved entries.
	PendingOnly bool

	// Limit is the maximum number of entries to return. Zero means the
	// repository default.
	Limit int
}

// EmployeeFilter narrows the employee directory listing. Zero value matches
// everyone.
type EmployeeFilter struct {
	// Search matches case-insensitive substrings of first name, last name,
	// email or the company employee ID.
	Search string
	// Department filters by exact department name.
	Department string
	// ActiveOnly limits the listing to active employees.
	ActiveOnly bool
}

// EntryAggregate is a per-employee rollup of time entries matching a filter.
// Unlike a listing it covers every matching row.
type EntryAggregate struct {
	EmployeeID uuid.UUID
	TotalHours float64
	EntryCount int
}
