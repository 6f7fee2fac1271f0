package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

const baseEstimatesSelect = `SELECT id, vehicle_id, source, estimate, created_at
FROM price_estimates`

const countEstimatesSelect = "SELECT COUNT(*) FROM price_estimates"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for an
// estimate query. It returns two SQL strings (one for the data query, one
// for the count query) and the positional parameters.
func (q *EstimateQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.VIN != nil {
		conditions = append(conditions, fmt.Sprintf("vin = $%d", paramIdx))
		args = append(args, *q.VIN)
		paramIdx++
	}

	if q.Source != nil {
		conditions = append(conditions, fmt.Sprintf("source = $%d", paramIdx))
		args = append(args, *q.Source)
		paramIdx++ //nolint:ineffassign,staticcheck // kept for the next filter added here
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY created_at DESC LIMIT %d OFFSET %d",
		baseEstimatesSelect, whereClause, limit, offset,
	)

	countSQL = countEstimatesSelect + whereClause

	return dataSQL, countSQL, args
}
