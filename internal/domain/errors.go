package domain

import (
	"errors"
	"fmt"
)

var (
	// Expense errors
	ErrInvalidAmount = errors.New("amount must be a positive number")
	ErrInvalidDate   = errors.New("date must be in YYYY-MM-DD form")

	// Store errors
	ErrCorruptStore = errors.New("corrupt expense store")
)

// CorruptStoreError describes a store file that exists but cannot be decoded
// into a sequence of expenses.
type CorruptStoreError struct {
	Path string
	// Index is the position of the offending record, or -1 when the document
	// itself is malformed.
	Index int
	Field string
	Err   error
}

func (e *CorruptStoreError) Error() string {
	switch {
	case e.Index < 0:
		return fmt.Sprintf("%s: %s: %v", ErrCorruptStore, e.Path, e.Err)
	case e.Field == "":
		return fmt.Sprintf("%s: %s: record %d: %v", ErrCorruptStore, e.Path, e.Index, e.Err)
	default:
		return fmt.Sprintf("%s: %s: record %d: field %q: %v", ErrCorruptStore, e.Path, e.Index, e.Field, e.Err)
	}
}

// Is reports whether target is ErrCorruptStore.
func (e *CorruptStoreError) Is(target error) bool {
	return target == ErrCorruptStore
}

func (e *CorruptStoreError) Unwrap() error {
	return e.Err
}
