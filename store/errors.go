package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned on primary-key or unique-constraint violations.
	ErrDuplicate = errors.New("duplicate record")
	// ErrForeignKey is returned when a write would break referential
	// integrity: an association referencing a missing row, or deleting a
	// row that associations still reference.
	ErrForeignKey = errors.New("referential integrity violation")
)

// translate maps gorm's translated engine errors onto the store sentinels.
// Anything else (e.g. a not-null violation) is surfaced as-is.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", ErrForeignKey, err)
	}
	return err
}
