package usecase

import (
	"fmt"
	"iter"

	"github.com/shopspring/decimal"

	"github.com/iho/goexpense/internal/domain"
)

// FormatAmount renders an amount with a currency sign and two decimals.
func FormatAmount(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// FormatExpense renders one expense as a listing line.
func FormatExpense(e domain.Expense) string {
	return fmt.Sprintf("%s: %s - %s (Category: %s)", e.Date, FormatAmount(e.Amount), e.Description, e.Category)
}

// ViewAll yields one line per expense in stored order, or a single notice if
// there are none. The sequence can be ranged over any number of times.
func ViewAll(expenses []domain.Expense) iter.Seq[string] {
	return func(yield func(string) bool) {
		if len(expenses) == 0 {
			yield(MsgNoExpenses)
			return
		}
		for _, e := range expenses {
			if !yield(FormatExpense(e)) {
				return
			}
		}
	}
}

// ByCategory sums amounts per exact category string, in first-seen order.
func ByCategory(expenses []domain.Expense) []domain.Total {
	return groupTotals(expenses, func(e domain.Expense) string { return e.Category })
}

// ByMonth sums amounts per YYYY-MM, in first-seen order.
func ByMonth(expenses []domain.Expense) []domain.Total {
	return groupTotals(expenses, func(e domain.Expense) string { return e.Date.Month() })
}

func groupTotals(expenses []domain.Expense, key func(domain.Expense) string) []domain.Total {
	totals := make([]domain.Total, 0)
	index := make(map[string]int)

	for _, e := range expenses {
		k := key(e)
		i, ok := index[k]
		if !ok {
			i = len(totals)
			index[k] = i
			totals = append(totals, domain.Total{Key: k, Amount: decimal.Zero})
		}
		totals[i].Amount = totals[i].Amount.Add(e.Amount)
		totals[i].Count++
	}

	return totals
}

// Reporter prints reports to a Console.
type Reporter struct {
	console  Console
	recorder Recorder
}

// NewReporter creates a new Reporter.
func NewReporter(console Console, recorder Recorder) *Reporter {
	return &Reporter{
		console:  console,
		recorder: recorder,
	}
}

// PrintAll lists every expense.
func (r *Reporter) PrintAll(expenses []domain.Expense) {
	for line := range ViewAll(expenses) {
		r.console.Print(line)
	}
	r.recorder.ReportRendered(ReportAll)
}

// PrintByCategory prints per-category totals.
func (r *Reporter) PrintByCategory(expenses []domain.Expense) {
	r.printTotals(HeaderCategory, "Category", ByCategory(expenses))
	r.recorder.ReportRendered(ReportCategory)
}

// PrintByMonth prints per-month totals.
func (r *Reporter) PrintByMonth(expenses []domain.Expense) {
	r.printTotals(HeaderMonthly, "Month", ByMonth(expenses))
	r.recorder.ReportRendered(ReportMonthly)
}

func (r *Reporter) printTotals(header, label string, totals []domain.Total) {
	r.console.Print("")
	r.console.Print(header)
	for _, t := range totals {
		r.console.Print(fmt.Sprintf("%s: %s, Total Spent: %s", label, t.Key, FormatAmount(t.Amount)))
	}
}
