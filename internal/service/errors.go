package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/labstack/gommon/log"

	"github.com/iliyamo/cafe-comptoir-api/internal/store"
)

// ErrNotFound is returned when the requested id does not exist in the
// resource's collection.
var ErrNotFound = errors.New("record not found")

// ValidationError reports a payload field that passed the structural checks
// but cannot be interpreted (e.g. a date that does not parse).
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Field + ": " + e.Message }

// PastDateError is returned when a reservation is requested for a day
// before today.
type PastDateError struct {
	Date string
}

func (e *PastDateError) Error() string {
	return fmt.Sprintf("reservation date %s is in the past", e.Date)
}

// InvalidEnumError is returned when a status value is not a member of its
// closed set.
type InvalidEnumError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("invalid %s %q, expected one of: %s", e.Field, e.Value, strings.Join(e.Allowed, ", "))
}

// PersistenceError wraps a store failure. Its detail is logged, never shown
// to API clients.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *PersistenceError) Unwrap() error { return e.Err }

// storeError converts a store error for op into the service taxonomy.
// Misses become ErrNotFound; anything else is logged and wrapped.
func storeError(logger *log.Logger, op string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	logger.Errorf("%s: %v", op, err)
	return &PersistenceError{Op: op, Err: err}
}
