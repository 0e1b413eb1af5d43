package repository

import (
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
)

// psql builds queries with $n placeholders for the dynamic partial updates.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// IntegrityError reports a broken uniqueness, foreign-key, not-null, or check
// constraint. The statement that caused it is never partially applied.
type IntegrityError struct {
	Constraint string
	Detail     string
	cause      error
}

func (e *IntegrityError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("integrity violation on %q: %s", e.Constraint, e.Detail)
	}
	return fmt.Sprintf("integrity violation on %q", e.Constraint)
}

func (e *IntegrityError) Unwrap() error { return e.cause }

// SQLSTATE class 23: integrity constraint violations.
const (
	codeNotNullViolation    = "23502"
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeCheckViolation      = "23514"
)

// wrapErr converts constraint failures into *IntegrityError and wraps
// everything else with the operation name.
func wrapErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeNotNullViolation, codeForeignKeyViolation, codeUniqueViolation, codeCheckViolation:
			return fmt.Errorf("%s: %w", op, &IntegrityError{
				Constraint: pgErr.ConstraintName,
				Detail:     pgErr.Detail,
				cause:      err,
			})
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
