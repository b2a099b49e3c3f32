package usecase

import (
	"context"
	"time"

	"github.com/iho/goexpense/internal/domain"
)

// ExpenseStore defines persistence for the full expense collection.
type ExpenseStore interface {
	// Load returns all stored expenses in insertion order.
	Load(ctx context.Context) ([]domain.Expense, error)
	// Save replaces the stored collection with expenses.
	Save(ctx context.Context, expenses []domain.Expense) error
}

// Console is the interactive input/output capability.
type Console interface {
	// Prompt shows label and returns the next line of input. It returns
	// io.EOF when input is exhausted.
	Prompt(label string) (string, error)
	Print(line string)
}

// Clock supplies the current calendar date.
type Clock interface {
	Today() domain.Date
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Recorder receives operational counters.
type Recorder interface {
	ExpenseAdded()
	InvalidInput(kind string)
	StoreSaved()
	ReportRendered(kind string)
}

// SystemClock reads the local wall clock.
type SystemClock struct{}

// Today returns the current local date.
func (SystemClock) Today() domain.Date {
	return domain.NewDate(time.Now())
}

// NopRecorder discards all counters.
type NopRecorder struct{}

func (NopRecorder) ExpenseAdded()         {}
func (NopRecorder) InvalidInput(string)   {}
func (NopRecorder) StoreSaved()           {}
func (NopRecorder) ReportRendered(string) {}
