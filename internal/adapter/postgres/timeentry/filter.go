package timeentry

import (
	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/worktracker-backend/internal/domain"
)

const (
	defaultLimit = 100
	maxLimit     = 500
)

// clampLimit applies the listing default and cap.
func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

// applyConditions adds the filter's WHERE clauses to a builder.
func applyConditions(q squirrel.SelectBuilder, f domain.EntryFilter) squirrel.SelectBuilder {
	if f.EmployeeID != nil {
		q = q.Where(squirrel.Eq{"employee_id": *f.EmployeeID})
	}
	if f.From != nil {
		q = q.Where(squirrel.GtOrEq{"entry_date": *f.From})
	}
	if f.To != nil {
		q = q.Where(squirrel.LtOrEq{"entry_date": *f.To})
	}
	if f.PendingOnly {
		q = q.Where(squirrel.Eq{"is_approved": false})
	}
	return q
}

// listSQL builds the listing query, newest entry date first, capped at maxLimit.
func listSQL(f domain.EntryFilter) (string, []interface{}, error) {
	q := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Select(entryColumns).
		From("time_entries").
		OrderBy("entry_date DESC", "created_at DESC").
		Limit(uint64(clampLimit(f.Limit)))

	return applyConditions(q, f).ToSql()
}

// aggregateSQL builds the per-employee rollup over the same conditions as
// listSQL. No limit: aggregates must cover every matching row.
func aggregateSQL(f domain.EntryFilter) (string, []interface{}, error) {
	q := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Select("employee_id", "coalesce(sum(hours_worked), 0)", "count(*)").
		From("time_entries").
		GroupBy("employee_id")

	return applyConditions(q, f).ToSql()
}
