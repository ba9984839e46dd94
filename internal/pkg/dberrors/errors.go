package dberrors

import (
	"errors"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes the service cares about.
const (
	codeUniqueViolation = "23505"
	codeUndefinedTable  = "42P01"
	codeCannotConnect   = "57P03"
	classConnException  = "08"
)

// IsDuplicateKeyError checks if the error is a unique violation.
func IsDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}

// IsUnavailable reports whether the record store cannot serve queries at
// all: the server is unreachable, refuses connections, or the relation has
// not been created yet. Read paths degrade to an empty result on these.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == codeUndefinedTable || pgErr.Code == codeCannotConnect {
			return true
		}
		if len(pgErr.Code) >= 2 && pgErr.Code[:2] == classConnException {
			return true
		}
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
