package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes this package classifies.
const (
	pgForeignKeyViolationCode = "23503"
	pgUniqueViolationCode     = "23505"
	pgCheckViolationCode      = "23514"
)

// isForeignKeyViolation reports whether the error is a foreign key
// constraint violation.
func isForeignKeyViolation(err error) bool {
	return pgErrCode(err) == pgForeignKeyViolationCode
}

// isCheckViolation reports whether the error is a check constraint
// violation (e.g. empty or over-long text slipping past validation).
func isCheckViolation(err error) bool {
	return pgErrCode(err) == pgCheckViolationCode
}

// pgErrCode extracts the PostgreSQL error code, or "" for non-pg errors.
func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
