package report

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/worktracker-backend/internal/domain"
	"github.com/heartmarshall/worktracker-backend/pkg/ctxutil"
)

// Input bounds a report by entry date, both ends optional.
type Input struct {
	From *time.Time
	To   *time.Time
}

// Validate validates the report input.
func (i Input) Validate() error {
	var errs []domain.FieldError

	if i.From != nil && i.To != nil && i.To.Before(*i.From) {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must not be before from"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Report aggregates time entries over a date range. Regular employees see
// their own entries; admins see everyone's plus per-employee summaries.
// An empty range produces zero totals, never an error.
func (s *Service) Report(ctx context.Context, input Input) (*Report, error) {
	employeeID, ok := ctxutil.EmployeeIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	isAdmin := ctxutil.IsAdminCtx(ctx)

	filter := domain.EntryFilter{From: input.From, To: input.To}
	if !isAdmin {
		filter.EmployeeID = &employeeID
	}

	// Totals come from SQL aggregates so a range with more entries than the
	// listing cap still reports exact sums.
	aggregates, err := s.entries.Aggregate(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}

	entries, err := s.entries.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}

	report := &Report{Entries: entries}
	for _, a := range aggregates {
		report.TotalHours += a.TotalHours
		report.TotalEntries += a.EntryCount
	}
	report.TotalHours = round2(report.TotalHours)

	if isAdmin {
		summaries, err := s.summarize(ctx, aggregates)
		if err != nil {
			return nil, fmt.Errorf("report: %w", err)
		}
		report.Summaries = summaries
	}

	return report, nil
}

// summarize resolves display names for per-employee aggregates and orders
// them by name.
func (s *Service) summarize(ctx context.Context, aggregates []domain.EntryAggregate) ([]EmployeeSummary, error) {
	ids := make([]uuid.UUID, 0, len(aggregates))
	for _, a := range aggregates {
		ids = append(ids, a.EmployeeID)
	}

	employees, err := s.employees.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve employees: %w", err)
	}

	summaries := make([]EmployeeSummary, 0, len(aggregates))
	for _, a := range aggregates {
		sum := EmployeeSummary{
			TotalHours: round2(a.TotalHours),
			EntryCount: a.EntryCount,
		}
		if emp, ok := employees[a.EmployeeID]; ok {
			sum.EmployeeID = emp.EmployeeID
			sum.Name = emp.FullName()
		}
		summaries = append(summaries, sum)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Name < summaries[j].Name
	})

	return summaries, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
