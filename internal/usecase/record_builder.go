package usecase

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/iho/goexpense/internal/domain"
)

// RecordBuilder interactively creates new expenses.
type RecordBuilder struct {
	console  Console
	clock    Clock
	recorder Recorder
	logger   zerolog.Logger
}

// NewRecordBuilder creates a new RecordBuilder.
func NewRecordBuilder(console Console, clock Clock, recorder Recorder, logger zerolog.Logger) *RecordBuilder {
	return &RecordBuilder{
		console:  console,
		clock:    clock,
		recorder: recorder,
		logger:   logger,
	}
}

// Add prompts for one expense and appends it to expenses. It reports whether
// an expense was appended. An invalid amount is reported to the user and is
// not an error; the only errors are console failures, in which case expenses
// is left untouched.
func (b *RecordBuilder) Add(expenses *[]domain.Expense) (bool, error) {
	rawAmount, err := b.console.Prompt(PromptAmount)
	if err != nil {
		return false, err
	}

	amount, err := domain.ParseAmount(rawAmount)
	if errors.Is(err, domain.ErrInvalidAmount) {
		b.logger.Debug().Err(err).Msg("rejected expense amount")
		b.recorder.InvalidInput(InputAmount)
		b.console.Print(MsgInvalidAmount)
		return false, nil
	}
	if err != nil {
		return false, err
	}

	description, err := b.console.Prompt(PromptDescription)
	if err != nil {
		return false, err
	}

	category, err := b.console.Prompt(PromptCategory)
	if err != nil {
		return false, err
	}

	expense, err := domain.NewExpense(amount, description, category, b.clock.Today())
	if err != nil {
		return false, err
	}

	*expenses = append(*expenses, expense)

	b.recorder.ExpenseAdded()
	b.logger.Info().
		Str("amount", expense.Amount.String()).
		Str("category", expense.Category).
		Str("date", expense.Date.String()).
		Msg("expense added")
	b.console.Print(MsgExpenseAdded)

	return true, nil
}
