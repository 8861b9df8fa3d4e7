package db

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// Constraint names from migrations/00001_init.sql.
const (
	ConstraintUsersEmail      = "users_email_key"
	ConstraintTestDetailsUser = "test_details_user_id_key"
	ConstraintTestDetailsFK   = "test_details_user_id_fkey"
)

// pgError pulls SQLSTATE and constraint name out of either driver's error.
func pgError(err error) (code, constraint string, ok bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName, true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), pqErr.Constraint, true
	}
	return "", "", false
}

// IsUniqueViolation reports whether err is a unique_violation on the given
// constraint. An empty constraint matches any unique violation.
func IsUniqueViolation(err error, constraint string) bool {
	return isViolation(err, codeUniqueViolation, constraint)
}

// IsForeignKeyViolation is IsUniqueViolation for foreign_key_violation.
func IsForeignKeyViolation(err error, constraint string) bool {
	return isViolation(err, codeForeignKeyViolation, constraint)
}

func isViolation(err error, wantCode, wantConstraint string) bool {
	code, constraint, ok := pgError(err)
	if !ok || code != wantCode {
		return false
	}
	return wantConstraint == "" || constraint == wantConstraint
}

// ConstraintName returns the violated constraint, or "" when err is not a
// Postgres error or names none.
func ConstraintName(err error) string {
	_, constraint, _ := pgError(err)
	return constraint
}
