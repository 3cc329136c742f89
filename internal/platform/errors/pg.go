package errors

// Maps pgx failures onto project error codes.

import (
	"context"
	stderrs "errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes with distinct mappings
const (
	pgErrUniqueViolation           = "23505"
	pgErrNotNullViolation          = "23502"
	pgErrInvalidTextRepresentation = "22P02"
	pgErrCannotConnectNow          = "57P03" // server startup in progress
)

// ExtractPgError digs a *pgconn.PgError out of the wrap chain
func ExtractPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(Root(err), &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsSQLState reports whether err is a Postgres error carrying code
func IsSQLState(err error, code string) bool {
	pgErr, ok := ExtractPgError(err)
	return ok && pgErr.Code == code
}

// IsConnectionUnavailable matches the "cannot connect now" state
func IsConnectionUnavailable(err error) bool { return IsSQLState(err, pgErrCannotConnectNow) }

// DBErrorCode maps a PgError onto an ErrorCode. ok=false means err was
// not a PgError and the caller should handle it generically.
func DBErrorCode(err error) (ErrorCode, bool) {
	var pgErr *pgconn.PgError
	if !stderrs.As(err, &pgErr) {
		return ErrorCodeUnknown, false
	}
	switch pgErr.Code {
	case pgErrUniqueViolation, pgErrNotNullViolation:
		return ErrorCodeInvalidArgument, true
	case pgErrInvalidTextRepresentation:
		return ErrorCodeValidation, true
	case pgErrCannotConnectNow:
		return ErrorCodeUnavailable, true
	default:
		return ErrorCodeUpstream, true
	}
}

// FromPg wraps a database error with the mapped project code.
// Context cancellation passes through untouched so callers can match it.
func FromPg(err error, msg string) error {
	if err == nil {
		return nil
	}
	if stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return err
	}
	if code, ok := DBErrorCode(err); ok {
		return Wrap(err, code, msg)
	}
	return Wrap(err, ErrorCodeUpstream, msg)
}
