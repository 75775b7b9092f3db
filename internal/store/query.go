package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderByID         = "id"
	orderByPrice      = "price"
	orderByYear       = "year"
	orderByHorsepower = "horsepower"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderByID:         "id ASC",
	orderByPrice:      "price ASC NULLS LAST, id ASC",
	orderByYear:       "year DESC NULLS LAST, id ASC",
	orderByHorsepower: "horsepower DESC NULLS LAST, id ASC",
}

const defaultOrderBy = "id ASC"

const (
	baseCarsSelect  = "SELECT " + carColumns + " FROM cars"
	countCarsSelect = "SELECT COUNT(*) FROM cars"
)

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for a car query.
// It returns two SQL strings (one for the data query, one for the count query)
// and the positional parameters.
func (q *CarQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	add := func(expr string, v any) {
		conditions = append(conditions, fmt.Sprintf(expr, paramIdx))
		args = append(args, v)
		paramIdx++
	}

	if q.Brand != nil {
		add("lower(brand) = lower($%d)", *q.Brand)
	}
	if q.FuelType != nil {
		add("lower(fuel_type) = lower($%d)", *q.FuelType)
	}
	if q.MinYear != nil {
		add("year >= $%d", *q.MinYear)
	}
	if q.MaxYear != nil {
		add("year <= $%d", *q.MaxYear)
	}
	if q.MaxPrice != nil {
		add("price <= $%d", *q.MaxPrice)
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	orderClause := defaultOrderBy
	if col, ok := validOrderBy[q.OrderBy]; ok {
		orderClause = col
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
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseCarsSelect, whereClause, orderClause, limit, offset,
	)

	countSQL = countCarsSelect + whereClause

	return dataSQL, countSQL, args
}
