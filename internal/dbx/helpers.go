package dbx

import (
	"database/sql"
	"fmt"
	"strings"
)

// RequireAffected returns ErrNoRows when res affected zero rows. Repositories
// translate that into their not-found sentinel.
func RequireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// IsUniqueViolation matches Postgres error code 23505 without importing the
// driver error types into every repository.
func IsUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23505")
}

// Int64Array renders ids as a Postgres bigint array literal, usable with
// ANY($1) through database/sql.
func Int64Array(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return "{" + strings.Join(parts, ",") + "}"
}
