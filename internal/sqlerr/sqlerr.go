// Package sqlerr classifies PostgreSQL errors returned through pgx.
package sqlerr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

type Code string

const (
	Other               Code = "other"
	UniqueViolation     Code = "unique_violation"
	ForeignKeyViolation Code = "foreign_key_violation"
	NotNullViolation    Code = "not_null_violation"
	CheckViolation      Code = "check_violation"
)

// Classify returns the Code for err, Other when err carries no *pgconn.PgError.
func Classify(err error) Code {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return Other
	}
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return UniqueViolation
	case pgerrcode.ForeignKeyViolation:
		return ForeignKeyViolation
	case pgerrcode.NotNullViolation:
		return NotNullViolation
	case pgerrcode.CheckViolation:
		return CheckViolation
	default:
		return Other
	}
}

func IsUniqueViolation(err error) bool { return Classify(err) == UniqueViolation }

func IsForeignKeyViolation(err error) bool { return Classify(err) == ForeignKeyViolation }

// Constraint returns the violated constraint name, if any.
func Constraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}
