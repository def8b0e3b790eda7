package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestMapUserErrorUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}

	if got := mapUserError(pgErr); !errors.Is(got, ErrDuplicateUser) {
		t.Errorf("got %v, want ErrDuplicateUser", got)
	}
	// Wrapped violations map too.
	if got := mapUserError(fmt.Errorf("insert user: %w", pgErr)); !errors.Is(got, ErrDuplicateUser) {
		t.Errorf("wrapped: got %v, want ErrDuplicateUser", got)
	}
}

func TestMapUserErrorPassthrough(t *testing.T) {
	notNull := &pgconn.PgError{Code: "23502"}
	if got := mapUserError(notNull); !errors.Is(got, notNull) {
		t.Errorf("not-null violation remapped to %v", got)
	}

	plain := errors.New("connection reset")
	if got := mapUserError(plain); !errors.Is(got, plain) {
		t.Errorf("plain error remapped to %v", got)
	}
}
