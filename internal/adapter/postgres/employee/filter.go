package employee

import (
	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/worktracker-backend/internal/domain"
)

// listSQL builds the directory query. The filter is dynamic (any combination
// of conditions may be present) so it is built with squirrel rather than a
// const.
func listSQL(f domain.EmployeeFilter) (string, []interface{}, error) {
	q := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Select(employeeColumns).
		From("employees").
		OrderBy("first_name ASC", "last_name ASC")

	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"first_name": pattern},
			squirrel.ILike{"last_name": pattern},
			squirrel.ILike{"email": pattern},
			squirrel.ILike{"employee_id": pattern},
		})
	}
	if f.Department != "" {
		q = q.Where(squirrel.Eq{"department": f.Department})
	}
	if f.ActiveOnly {
		q = q.Where(squirrel.Eq{"is_active": true})
	}

	return q.ToSql()
}
