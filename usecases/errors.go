package usecases

import (
	"errors"

	"gorm.io/gorm"
)

// Failure conditions reported by the use cases. Handlers translate these
// into HTTP statuses.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
	ErrForbidden    = errors.New("forbidden")
	ErrUnsupported  = errors.New("unsupported")
)

// translate maps persistence-layer errors onto the failure taxonomy.
// Integrity violations are the only database errors given a dedicated
// condition; everything else propagates as-is.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	}
	return err
}
