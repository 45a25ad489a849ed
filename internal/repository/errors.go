package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE class 23 integrity violations; 23505 is unique_violation.
const uniqueViolationCode = "23505"

var (
	// ErrConflict signals that a write violated a uniqueness constraint.
	ErrConflict = errors.New("storage conflict: unique constraint violated")
	// ErrWriteFailed signals that a write affected no row.
	ErrWriteFailed = errors.New("storage write failed")
)

// translateWriteError maps driver-level failures onto the repository error
// kinds. Services never see a raw pg error for these cases.
func translateWriteError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrConflict
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return ErrConflict
	}
	return err
}
