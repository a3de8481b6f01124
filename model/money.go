// file: model/money.go

package model

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is a fixed-point decimal amount. Binary floats are never used for balances.
type Money = decimal.Decimal

const (
	// MaxScale is the number of fractional digits an amount may carry.
	MaxScale = 2
	// MaxIntegerDigits bounds the integer part of an amount.
	MaxIntegerDigits = 15
	// maxAmountLength bounds the raw input before it is parsed.
	maxAmountLength = 64
)

// Zero is the zero amount.
var Zero = decimal.Zero

// MustMoney parses s and panics on malformed input. Intended for constants and tests.
func MustMoney(s string) Money {
	return decimal.RequireFromString(s)
}

// ParseAmount parses a user-supplied amount. Malformed input, more than MaxScale
// fractional digits or more than MaxIntegerDigits integer digits is an
// InvalidAmount condition.
func ParseAmount(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero, fmt.Errorf("%w: amount is required", ErrInvalidAmount)
	}
	if len(s) > maxAmountLength {
		return Zero, fmt.Errorf("%w: amount is longer than %d characters", ErrInvalidAmount, maxAmountLength)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, fmt.Errorf("%w: %q is not a decimal amount", ErrInvalidAmount, s)
	}

	// The exponent is checked before any rescaling so that inputs such as
	// "1e-2000000000" are rejected without building huge coefficients.
	exp := int(d.Exponent())
	if exp < -maxAmountLength {
		return Zero, fmt.Errorf("%w: at most %d decimal places are allowed", ErrInvalidAmount, MaxScale)
	}
	if exp < -MaxScale && !d.Equal(d.Truncate(MaxScale)) {
		return Zero, fmt.Errorf("%w: at most %d decimal places are allowed", ErrInvalidAmount, MaxScale)
	}
	if exp > MaxIntegerDigits {
		return Zero, fmt.Errorf("%w: at most %d integer digits are allowed", ErrInvalidAmount, MaxIntegerDigits)
	}
	if digits := len(new(big.Int).Abs(d.Coefficient()).String()) + exp; digits > MaxIntegerDigits {
		return Zero, fmt.Errorf("%w: at most %d integer digits are allowed", ErrInvalidAmount, MaxIntegerDigits)
	}
	return d, nil
}
