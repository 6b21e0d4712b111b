package tracking

import (
	"time"

	"github.com/heartmarshall/worktracker-backend/internal/domain"
)

const (
	maxDescriptionLen = 500
	maxProjectLen     = 100
	maxBreakHours     = 24
)

// StartSessionInput holds parameters for opening a work session.
type StartSessionInput struct {
	Description string
	Project     string
}

// Validate validates the start-session input.
func (i StartSessionInput) Validate() error {
	var errs []domain.FieldError

	if len(i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	if len(i.Project) > maxProjectLen {
		errs = append(errs, domain.FieldError{Field: "project", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ManualEntryInput holds parameters for adding a manual time entry.
// Start and End are clock times on Date; End before Start means the shift
// ran past midnight.
type ManualEntryInput struct {
	Date        time.Time
	Start       time.Time
	End         time.Time
	BreakHours  float64
	Description string
	Project     string
}

// Validate validates the manual entry input.
func (i ManualEntryInput) Validate() error {
	var errs []domain.FieldError

	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	if i.Start.IsZero() {
		errs = append(errs, domain.FieldError{Field: "start_time", Message: "required"})
	}
	if i.End.IsZero() {
		errs = append(errs, domain.FieldError{Field: "end_time", Message: "required"})
	}

	if i.BreakHours < 0 {
		errs = append(errs, domain.FieldError{Field: "break_hours", Message: "must not be negative"})
	} else if i.BreakHours > maxBreakHours {
		errs = append(errs, domain.FieldError{Field: "break_hours", Message: "too large"})
	}

	if len(i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	if len(i.Project) > maxProjectLen {
		errs = append(errs, domain.FieldError{Field: "project", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListEntriesInput bounds a listing by entry date, both ends optional.
type ListEntriesInput struct {
	From *time.Time
	To   *time.Time
}

// Validate validates the list input.
func (i ListEntriesInput) Validate() error {
	var errs []domain.FieldError

	if i.From != nil && i.To != nil && i.To.Before(*i.From) {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must not be before from"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// dateOf truncates a timestamp to its UTC calendar date.
func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
