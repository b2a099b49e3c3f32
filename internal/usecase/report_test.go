package usecase_test

import (
	"slices"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/goexpense/internal/domain"
	"github.com/iho/goexpense/internal/usecase"
)

func expense(amount, description, category, date string) domain.Expense {
	return domain.Expense{
		Amount:      decimal.RequireFromString(amount),
		Description: description,
		Category:    category,
		Date:        mustDate(date),
	}
}

func fakeExpenses(seed uint64, n int) []domain.Expense {
	faker := gofakeit.New(seed)
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	expenses := make([]domain.Expense, 0, n)
	for range n {
		expenses = append(expenses, domain.Expense{
			Amount:      decimal.New(int64(faker.IntRange(1, 100000)), -2),
			Description: faker.Word(),
			Category:    faker.RandomString([]string{"food", "Food", "rent", "transportation", "fun "}),
			Date:        domain.NewDate(faker.DateRange(start, end)),
		})
	}
	return expenses
}

func sumAmounts(expenses []domain.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

func sumTotals(totals []domain.Total) (decimal.Decimal, int) {
	total, count := decimal.Zero, 0
	for _, t := range totals {
		total = total.Add(t.Amount)
		count += t.Count
	}
	return total, count
}

func TestViewAll(t *testing.T) {
	expenses := []domain.Expense{
		expense("12.5", "lunch", "food", "2024-05-17"),
		expense("30", "bus pass", "transportation", "2024-05-18"),
	}

	lines := slices.Collect(usecase.ViewAll(expenses))
	assert.Equal(t, []string{
		"2024-05-17: $12.50 - lunch (Category: food)",
		"2024-05-18: $30.00 - bus pass (Category: transportation)",
	}, lines)

	// Ranging twice yields the same lines.
	assert.Equal(t, lines, slices.Collect(usecase.ViewAll(expenses)))
}

func TestViewAll_Empty(t *testing.T) {
	assert.Equal(t, []string{usecase.MsgNoExpenses}, slices.Collect(usecase.ViewAll(nil)))
}

func TestViewAll_StopsEarly(t *testing.T) {
	expenses := fakeExpenses(7, 10)

	seen := 0
	for range usecase.ViewAll(expenses) {
		seen++
		if seen == 3 {
			break
		}
	}
	assert.Equal(t, 3, seen)
}

func TestByCategory_FirstSeenOrder(t *testing.T) {
	expenses := []domain.Expense{
		expense("5", "", "rent", "2024-01-01"),
		expense("2.25", "", "food", "2024-01-02"),
		expense("1", "", "Food", "2024-01-03"),
		expense("0.75", "", "food", "2024-02-01"),
	}

	totals := usecase.ByCategory(expenses)
	require.Len(t, totals, 3)

	assert.Equal(t, []string{"rent", "food", "Food"}, []string{totals[0].Key, totals[1].Key, totals[2].Key})
	assert.Equal(t, "3.00", totals[1].Amount.StringFixed(2))
	assert.Equal(t, 2, totals[1].Count)
	assert.Len(t, expenses, 4, "input must not be modified")
}

func TestByMonth_FirstSeenOrder(t *testing.T) {
	expenses := []domain.Expense{
		expense("1", "", "a", "2024-03-31"),
		expense("2", "", "b", "2023-12-01"),
		expense("3", "", "c", "2024-03-01"),
	}

	totals := usecase.ByMonth(expenses)
	require.Len(t, totals, 2)
	assert.Equal(t, "2024-03", totals[0].Key)
	assert.Equal(t, "4.00", totals[0].Amount.StringFixed(2))
	assert.Equal(t, "2023-12", totals[1].Key)
}

func TestTotalsConserveAmounts(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		expenses := fakeExpenses(seed, int(seed)*5)
		want := sumAmounts(expenses)

		for name, totals := range map[string][]domain.Total{
			"category": usecase.ByCategory(expenses),
			"month":    usecase.ByMonth(expenses),
		} {
			got, count := sumTotals(totals)
			assert.True(t, want.Equal(got), "seed %d %s: want %s got %s", seed, name, want, got)
			assert.Equal(t, len(expenses), count, "seed %d %s", seed, name)
		}
	}
}

func TestTotals_Empty(t *testing.T) {
	assert.Empty(t, usecase.ByCategory(nil))
	assert.Empty(t, usecase.ByMonth(nil))
}

func TestReporter(t *testing.T) {
	expenses := []domain.Expense{
		expense("12.5", "lunch", "food", "2024-05-17"),
		expense("30", "bus pass", "transportation", "2024-06-01"),
	}

	console := newScriptedConsole()
	recorder := newCountingRecorder()
	reporter := usecase.NewReporter(console, recorder)

	reporter.PrintByCategory(expenses)
	reporter.PrintByMonth(expenses)
	reporter.PrintAll(nil)

	assert.Equal(t, []string{
		"",
		usecase.HeaderCategory,
		"Category: food, Total Spent: $12.50",
		"Category: transportation, Total Spent: $30.00",
		"",
		usecase.HeaderMonthly,
		"Month: 2024-05, Total Spent: $12.50",
		"Month: 2024-06, Total Spent: $30.00",
		usecase.MsgNoExpenses,
	}, console.lines)
	assert.Equal(t, 1, recorder.reports[usecase.ReportCategory])
	assert.Equal(t, 1, recorder.reports[usecase.ReportMonthly])
	assert.Equal(t, 1, recorder.reports[usecase.ReportAll])
}
