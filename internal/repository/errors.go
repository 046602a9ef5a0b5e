package repository

import (
	"errors"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the repositories translate into apperr values.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

func pgCode(err error) string {
	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		return pgerr.Code
	}
	return ""
}

// IsDuplicate reports a unique key violation.
func IsDuplicate(err error) bool { return pgCode(err) == codeUniqueViolation }

// IsMissingParent reports a foreign key violation, i.e. the referenced delivery is gone.
func IsMissingParent(err error) bool { return pgCode(err) == codeForeignKeyViolation }

// IsCheckViolation reports a failed CHECK constraint.
func IsCheckViolation(err error) bool { return pgCode(err) == codeCheckViolation }

// IsNotFound reports an empty result from pgx or scany.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err)
}
