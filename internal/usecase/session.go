package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/iho/goexpense/internal/domain"
)

// Menu choices.
const (
	ChoiceAdd      = "1"
	ChoiceViewAll  = "2"
	ChoiceCategory = "3"
	ChoiceMonthly  = "4"
	ChoiceExit     = "5"
)

var menu = []string{
	"",
	"Expense Tracker",
	"1. Add Expense",
	"2. View All Expenses",
	"3. Categorize Expenses",
	"4. Monthly Summary",
	"5. Exit",
}

// SessionDeps groups the collaborators of a Session.
type SessionDeps struct {
	Store    ExpenseStore
	Console  Console
	Clock    Clock
	Recorder Recorder
	IDGen    IDGenerator
	Logger   zerolog.Logger
}

// Session owns the in-memory expenses for one run of the menu loop.
type Session struct {
	id       string
	store    ExpenseStore
	console  Console
	builder  *RecordBuilder
	reporter *Reporter
	recorder Recorder
	logger   zerolog.Logger
	expenses []domain.Expense
}

// NewSession creates a new Session.
func NewSession(deps SessionDeps) *Session {
	if deps.Clock == nil {
		deps.Clock = SystemClock{}
	}
	if deps.Recorder == nil {
		deps.Recorder = NopRecorder{}
	}

	id := ""
	if deps.IDGen != nil {
		id = deps.IDGen.Generate()
	}
	logger := deps.Logger.With().Str("session_id", id).Logger()

	return &Session{
		id:       id,
		store:    deps.Store,
		console:  deps.Console,
		builder:  NewRecordBuilder(deps.Console, deps.Clock, deps.Recorder, logger),
		reporter: NewReporter(deps.Console, deps.Recorder),
		recorder: deps.Recorder,
		logger:   logger,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Expenses returns a copy of the in-memory expenses.
func (s *Session) Expenses() []domain.Expense {
	return slices.Clone(s.expenses)
}

// Run loads the store once and serves the menu until the user exits or input
// ends. Only adding an expense writes to the store.
func (s *Session) Run(ctx context.Context) error {
	expenses, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load expenses: %w", err)
	}
	s.expenses = expenses
	s.logger.Debug().Int("count", len(expenses)).Msg("expenses loaded")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		for _, line := range menu {
			s.console.Print(line)
		}

		choice, err := s.console.Prompt(PromptChoice)
		if errors.Is(err, io.EOF) {
			s.logger.Debug().Msg("input closed, ending session")
			return nil
		}
		if err != nil {
			return err
		}

		done, err := s.dispatch(ctx, strings.TrimSpace(choice))
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

func (s *Session) dispatch(ctx context.Context, choice string) (bool, error) {
	switch choice {
	case ChoiceAdd:
		if _, err := s.builder.Add(&s.expenses); err != nil {
			if errors.Is(err, io.EOF) {
				return true, nil
			}
			return false, err
		}
		if err := s.store.Save(ctx, s.expenses); err != nil {
			return false, fmt.Errorf("save expenses: %w", err)
		}
		s.recorder.StoreSaved()
		s.logger.Debug().Int("count", len(s.expenses)).Msg("expenses saved")
	case ChoiceViewAll:
		s.reporter.PrintAll(s.expenses)
	case ChoiceCategory:
		s.reporter.PrintByCategory(s.expenses)
	case ChoiceMonthly:
		s.reporter.PrintByMonth(s.expenses)
	case ChoiceExit:
		s.console.Print(MsgExit)
		return true, nil
	default:
		s.recorder.InvalidInput(InputChoice)
		s.logger.Debug().Str("choice", choice).Msg("invalid menu choice")
		s.console.Print(MsgInvalidChoice)
	}

	return false, nil
}
