package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses user input into a positive amount.
func ParseAmount(input string) (decimal.Decimal, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return decimal.Zero, fmt.Errorf("%w: amount cannot be empty", ErrInvalidAmount)
	}

	amount, err := decimal.NewFromString(input)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, input)
	}

	if err := ValidateAmount(amount); err != nil {
		return decimal.Zero, err
	}

	return amount, nil
}

// Amount bounds
const (
	MaxAmount = "1000000000000" // 1 trillion
	// MaxAmountScale is the most fractional digits an amount may carry.
	MaxAmountScale = 20
)

var maxAmount = decimal.RequireFromString(MaxAmount)

// ValidateAmount validates an expense amount
func ValidateAmount(amount decimal.Decimal) error {
	// Sign and magnitude are checked before any comparison: comparing rescales
	// both operands, which is unbounded work for something like 1e99999999.
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}

	return ValidateAmountMagnitude(amount)
}

// ValidateAmountMagnitude checks that |amount| fits the supported range and
// precision, regardless of sign.
func ValidateAmountMagnitude(amount decimal.Decimal) error {
	exp := amount.Exponent()
	if exp < -MaxAmountScale {
		return fmt.Errorf("%w: more than %d decimal places", ErrInvalidAmount, MaxAmountScale)
	}
	if exp > int32(len(MaxAmount)) || amount.Abs().GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrInvalidAmount, MaxAmount)
	}

	return nil
}
