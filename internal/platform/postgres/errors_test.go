package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestPgErrCode(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{Code: pgForeignKeyViolationCode}
	if got := pgErrCode(pgErr); got != pgForeignKeyViolationCode {
		t.Errorf("pgErrCode() = %q, want %q", got, pgForeignKeyViolationCode)
	}

	wrapped := fmt.Errorf("insert failed: %w", pgErr)
	if got := pgErrCode(wrapped); got != pgForeignKeyViolationCode {
		t.Errorf("pgErrCode() on wrapped error = %q, want %q", got, pgForeignKeyViolationCode)
	}

	if got := pgErrCode(errors.New("plain error")); got != "" {
		t.Errorf("pgErrCode() on non-pg error = %q, want empty", got)
	}

	if got := pgErrCode(nil); got != "" {
		t.Errorf("pgErrCode(nil) = %q, want empty", got)
	}
}

func TestViolationClassifiers(t *testing.T) {
	t.Parallel()

	fk := &pgconn.PgError{Code: pgForeignKeyViolationCode}
	check := &pgconn.PgError{Code: pgCheckViolationCode}
	unique := &pgconn.PgError{Code: pgUniqueViolationCode}

	if !isForeignKeyViolation(fk) {
		t.Error("expected foreign key violation to be classified")
	}
	if isForeignKeyViolation(check) || isForeignKeyViolation(nil) {
		t.Error("expected non-FK errors not to classify as FK violations")
	}

	if !isCheckViolation(check) {
		t.Error("expected check violation to be classified")
	}
	if isCheckViolation(unique) {
		t.Error("expected unique violation not to classify as check violation")
	}
}
