package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Typed error kinds returned by every repository. Services and handlers
// dispatch on these with errors.Is — driver-specific codes never escape
// this package.
var (
	ErrNotFound   = errors.New("record not found")
	ErrDuplicate  = errors.New("unique constraint violation")
	ErrRestricted = errors.New("foreign key constraint violation")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translate maps GORM and PostgreSQL driver errors to the typed kinds above.
// Unrecognized errors pass through unchanged and surface as 500s.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return ErrDuplicate
		case pgForeignKeyViolation:
			return ErrRestricted
		}
	}
	return err
}
