package customer

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no customer has the requested id.
var ErrNotFound = errors.New("Customer not found")

// ValidationError carries the client-facing reason a registration was rejected.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// StoreError wraps a failure of the persisted document (read, parse or write).
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return e.Err.Error() }

func (e *StoreError) Unwrap() error { return e.Err }

// NewStoreError wraps err for op; nil stays nil.
func NewStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *StoreError
	if errors.As(err, &se) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}

// Describe renders a StoreError with its operation, for logs.
func Describe(err error) string {
	var se *StoreError
	if errors.As(err, &se) {
		return fmt.Sprintf("store %s: %v", se.Op, se.Err)
	}
	return err.Error()
}
