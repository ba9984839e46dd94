package dberrors

import (
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsDuplicateKeyError(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}
	if !IsDuplicateKeyError(dup) {
		t.Error("unique violation should classify as duplicate key")
	}
	if !IsDuplicateKeyError(fmt.Errorf("wrapped: %w", dup)) {
		t.Error("wrapped unique violation should still classify")
	}
	if IsDuplicateKeyError(&pgconn.PgError{Code: "42P01"}) {
		t.Error("other pg errors are not duplicates")
	}
	if IsDuplicateKeyError(nil) {
		t.Error("nil is not a duplicate")
	}
}

func TestIsUnavailable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"undefined table", &pgconn.PgError{Code: "42P01"}, true},
		{"cannot connect now", &pgconn.PgError{Code: "57P03"}, true},
		{"connection exception class", &pgconn.PgError{Code: "08006"}, true},
		{"net timeout", &net.DNSError{IsTimeout: true}, true},
		{"unique violation", &pgconn.PgError{Code: "23505"}, false},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.err
			if err != nil {
				err = fmt.Errorf("query failed: %w", err)
			}
			if got := IsUnavailable(err); got != tt.want {
				t.Errorf("IsUnavailable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
