package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	// DateLayout is the on-disk and display form of an expense date.
	DateLayout  = "2006-01-02"
	monthLayout = "2006-01"

	replacementChar = "\uFFFD"
)

// Date is a calendar date without a time of day.
type Date struct {
	time.Time
}

// NewDate returns the calendar date of t as observed in t's location. The
// result is stored at midnight UTC so equal dates compare equal.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

// Month returns the YYYY-MM grouping key of the date.
func (d Date) Month() string {
	return d.Format(monthLayout)
}

// Expense is a single recorded spending entry. Expenses are never modified
// after creation.
type Expense struct {
	Date        Date
	Amount      decimal.Decimal
	Description string
	Category    string
}

// NewExpense builds an expense after validating its amount. Invalid UTF-8 in
// the free-text fields is replaced with U+FFFD, the same text the store
// writes, so grouping does not change across a save and reload.
func NewExpense(amount decimal.Decimal, description, category string, date Date) (Expense, error) {
	if err := ValidateAmount(amount); err != nil {
		return Expense{}, err
	}

	return Expense{
		Date:        date,
		Amount:      amount,
		Description: sanitizeText(description),
		Category:    sanitizeText(category),
	}, nil
}

// Total is one group of an aggregated report.
type Total struct {
	Key    string
	Amount decimal.Decimal
	Count  int
}

// sanitizeText replaces every invalid byte with U+FFFD, matching what
// encoding/json emits for the same string.
func sanitizeText(s string) string {
	if utf8.ValidString(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteString(replacementChar)
		} else {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}
