package repositories

import (
	"strings"

	"github.com/Masterminds/squirrel"
)

// ListParams carries everything a list query needs. Filters is keyed by
// column name; the API layer only forwards allow-listed keys.
type ListParams struct {
	Page     int
	PageSize int
	Search   string
	Filters  map[string]string
}

// Filterable columns and which of them hold booleans. Filter values arrive
// as query-string text, so boolean columns go through ParseBoolFilter.
var boolFilterColumns = map[string]bool{
	"tripulante":  true,
	"certificado": true,
}

// ParseBoolFilter coerces a query-string filter value to a boolean. Only
// the literal "true" means true; "false", "1", "yes" or anything else all
// mean false. The asymmetry is the documented contract of the dashboard
// filters, so it lives in one named function instead of inline comparisons.
func ParseBoolFilter(value string) bool {
	return value == "true"
}

// buildListConditions translates search text and filters into one AND
// predicate. Search matches nome, email or documento case-insensitively by
// containment; every filter is an equality check ANDed with the rest.
func buildListConditions(params ListParams) squirrel.And {
	conditions := squirrel.And{}

	if search := strings.TrimSpace(params.Search); search != "" {
		pattern := "%" + search + "%"
		conditions = append(conditions, squirrel.Or{
			squirrel.ILike{"nome": pattern},
			squirrel.ILike{"email": pattern},
			squirrel.ILike{"documento": pattern},
		})
	}

	for column, value := range params.Filters {
		if boolFilterColumns[column] {
			conditions = append(conditions, squirrel.Eq{column: ParseBoolFilter(value)})
			continue
		}
		conditions = append(conditions, squirrel.Eq{column: value})
	}

	return conditions
}

// buildPageQuery assembles the SELECT for one page: the full predicate,
// newest-first ordering with id as a stable tiebreak, and the LIMIT/OFFSET
// window at offset (page-1)*pageSize. Walking pages 1..totalPages with the
// same params visits every matching row exactly once.
func buildPageQuery(sb squirrel.StatementBuilderType, params ListParams) squirrel.SelectBuilder {
	offset := uint64((params.Page - 1) * params.PageSize)
	return sb.Select("*").
		From("alunos").
		Where(buildListConditions(params)).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(params.PageSize)).
		Offset(offset)
}
