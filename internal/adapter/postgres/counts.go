package postgres

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
)

// CountRows returns the number of rows in table.
func CountRows(ctx context.Context, q Querier, table string) (int, error) {
	n, err := Count(ctx, q, Builder().Select("COUNT(*)").From(table))
	if err != nil {
		return 0, MapError(err, table, nil)
	}
	return n, nil
}

// CountCreatedBetween returns the number of rows in table whose created_at
// lies in the half-open window (after, until].
func CountCreatedBetween(ctx context.Context, q Querier, table string, after, until time.Time) (int, error) {
	query := Builder().Select("COUNT(*)").From(table).
		Where(squirrel.Gt{"created_at": after}).
		Where(squirrel.LtOrEq{"created_at": until})

	n, err := Count(ctx, q, query)
	if err != nil {
		return 0, MapError(err, table, nil)
	}
	return n, nil
}
