// file: model/policy.go

package model

import "github.com/shopspring/decimal"

// WithdrawalPolicy decides how much of a balance may leave an account.
type WithdrawalPolicy interface {
	// Limit is the largest amount Allows would currently accept.
	Limit(balance Money) Money
	// Allows reports whether amount may be withdrawn from balance.
	Allows(amount, balance Money) bool
}

// FullBalance permits withdrawing anything up to the whole balance.
type FullBalance struct{}

func (FullBalance) Limit(balance Money) Money {
	return balance
}

func (FullBalance) Allows(amount, balance Money) bool {
	return !amount.IsNegative() && amount.LessThanOrEqual(balance)
}

// RetainFraction requires Fraction of the current balance to stay in the account.
type RetainFraction struct {
	Fraction Money
}

func (p RetainFraction) Limit(balance Money) Money {
	return balance.Mul(decimal.NewFromInt(1).Sub(p.Fraction))
}

func (p RetainFraction) Allows(amount, balance Money) bool {
	return !amount.IsNegative() && amount.LessThanOrEqual(p.Limit(balance))
}

// Locked never permits a withdrawal.
type Locked struct{}

func (Locked) Limit(Money) Money {
	return Zero
}

func (Locked) Allows(Money, Money) bool {
	return false
}
