package domain

import (
	"time"

	"github.com/google/uuid"
)

// TimeEntry is a closed unit of work: either materialized from a stopped
// work session or entered manually. HoursWorked is derived via CalculateHours
// at creation time and cached; approval never changes it.
type TimeEntry struct {
	ID          uuid.UUID
	EmployeeID  uuid.UUID
	Date        time.Time // calendar date, midnight UTC
	StartTime   time.Time
	EndTime     time.Time
	BreakHours  float64
	HoursWorked float64
	Description string
	Project     string
	IsApproved  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ActiveSession is an open-ended work period. At most one exists per employee
// at any time; the database enforces this with a unique constraint on
// employee_id.
type ActiveSession struct {
	ID          uuid.UUID
	EmployeeID  uuid.UUID
	StartedAt   time.Time
	Description string
	Project     string
	CreatedAt   time.Time
}

// DurationHours returns the running duration of the session in hours,
// rounded to 2 decimal places.
func (s *ActiveSession) DurationHours(now time.Time) float64 {
	return round2(now.Sub(s.StartedAt).Hours())
}
