package postgres

import (
	"strings"

	domainerrors "opencircle/internal/domain/errors"
	"opencircle/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL integrity_constraint_violation SQLSTATE codes.
const (
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

type constraintKind int

const (
	constraintNone constraintKind = iota
	constraintUnique
	constraintForeignKey
	constraintNotNull
	constraintCheck
)

func (k constraintKind) String() string {
	switch k {
	case constraintUnique:
		return "unique"
	case constraintForeignKey:
		return "foreign_key"
	case constraintNotNull:
		return "not_null"
	case constraintCheck:
		return "check"
	}

	return "none"
}

// classifyConstraint recognizes constraint failures from pgx, from GORM's
// translated errors, and from the SQLite driver used in tests.
func classifyConstraint(err error) constraintKind {
	if err == nil {
		return constraintNone
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return constraintUnique
		case pgForeignKeyViolation:
			return constraintForeignKey
		case pgNotNullViolation:
			return constraintNotNull
		case pgCheckViolation:
			return constraintCheck
		}

		return constraintNone
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return constraintUnique
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return constraintForeignKey
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return constraintCheck
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return constraintUnique
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return constraintForeignKey
	case strings.Contains(msg, "NOT NULL constraint failed"):
		return constraintNotNull
	case strings.Contains(msg, "CHECK constraint failed"):
		return constraintCheck
	}

	return constraintNone
}

// requiredCheckSuffix names the CHECK constraints that reject empty
// required text columns. They report as not-null violations.
const requiredCheckSuffix = "_required"

// translateWriteError maps a failed INSERT, UPDATE or DELETE onto the domain
// taxonomy. what names the row kind for the error message.
func translateWriteError(err error, what string) error {
	kind := classifyConstraint(err)
	if kind == constraintCheck && strings.Contains(constraintDetail(err), requiredCheckSuffix) {
		kind = constraintNotNull
	}

	switch kind {
	case constraintUnique:
		return domainerrors.ErrUniqueConstraintViolation.WrapMessage(what + ": " + constraintDetail(err))
	case constraintForeignKey:
		return domainerrors.ErrForeignKeyViolation.WrapMessage(what + ": " + constraintDetail(err))
	case constraintNotNull:
		return domainerrors.ErrNotNullViolation.WrapMessage(what + ": " + constraintDetail(err))
	case constraintCheck:
		return domainerrors.ErrCheckConstraintViolation.WrapMessage(what + ": " + constraintDetail(err))
	}

	return domainerrors.NewDatabaseExecuteError(err, what)
}

// constraintDetail names the violated constraint or column when the driver reports it.
func constraintDetail(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.ConstraintName != "" {
			return pgErr.ConstraintName
		}
		if pgErr.ColumnName != "" {
			return pgErr.ColumnName
		}
	}

	return err.Error()
}
