package errors

import (
	stderrs "errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE values the schema can raise
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
	pgInvalidText         = "22P02"
	pgDatetimeOverflow    = "22008"
	pgReadOnly            = "25006"
	pgCannotConnectNow    = "57P03"
)

// PgError returns the *pgconn.PgError at the root of err
func PgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsDuplicateKey reports a unique violation, e.g. a second project with the same name
func IsDuplicateKey(err error) bool {
	pgErr, ok := PgError(err)
	return ok && pgErr.Code == pgUniqueViolation
}

// DBErrorCode maps a Postgres error to a code
// ok is false when err carries no PgError
func DBErrorCode(err error) (ErrorCode, bool) {
	pgErr, ok := PgError(err)
	if !ok {
		return ErrorCodeUnknown, false
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		return ErrorCodeDuplicateKey, true
	case pgForeignKeyViolation, pgInvalidText, pgDatetimeOverflow:
		return ErrorCodeInvalidArgument, true
	case pgNotNullViolation, pgCheckViolation:
		return ErrorCodeValidation, true
	case pgReadOnly, pgCannotConnectNow:
		return ErrorCodeUnavailable, true
	}
	return ErrorCodeDB, true
}

// FromPostgres wraps a storage error with msg and a mapped code
//
// nil stays nil. An *Error already in the chain keeps its code so
// ErrNotFound from the store helpers still reads as not found.
// When Postgres names the column or constraint, it becomes the field.
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	if code, ok := DBErrorCode(err); ok {
		return withPgField(Wrap(err, code, msg), err)
	}
	if e, ok := As(err); ok {
		return &Error{code: e.code, msg: msg, field: e.field, orig: err}
	}
	return Wrap(err, ErrorCodeDB, msg)
}

// withPgField prefers the column name, then the constraint suffix
// projects_name_key -> name
func withPgField(wrapped, err error) error {
	pgErr, _ := PgError(err)
	if col := strings.TrimSpace(pgErr.ColumnName); col != "" {
		return WithField(wrapped, col)
	}
	c := strings.TrimSuffix(strings.TrimSpace(pgErr.ConstraintName), "_key")
	c = strings.TrimSuffix(c, "_fkey")
	if i := strings.LastIndex(c, "_"); i >= 0 && i+1 < len(c) {
		return WithField(wrapped, c[i+1:])
	}
	return wrapped
}
