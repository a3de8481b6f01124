// file: model/variants.go

package model

import "go-bank-accounts/common"

var (
	savingsRate          = MustMoney("0.04")
	moneyMarketRate      = MustMoney("0.05")
	fixedDepositRate     = MustMoney("0.06")
	highYieldSavingsRate = MustMoney("0.07")

	// moneyMarketReserve is the share of the balance a money market account must keep.
	moneyMarketReserve = MustMoney("0.05")
)

// Savings earns 4% and allows withdrawing the full balance.
type Savings struct{ account }

func NewSavings(p Params) (*Savings, error) {
	s := &Savings{}
	if err := s.init(KindSavings, savingsRate, FullBalance{}, p); err != nil {
		return nil, err
	}
	return s, nil
}

// MoneyMarket earns 5% and must retain 5% of its balance after a withdrawal.
type MoneyMarket struct{ account }

func NewMoneyMarket(p Params) (*MoneyMarket, error) {
	m := &MoneyMarket{}
	if err := m.init(KindMoneyMarket, moneyMarketRate, RetainFraction{Fraction: moneyMarketReserve}, p); err != nil {
		return nil, err
	}
	return m, nil
}

// FixedDeposit earns 6% and never allows a withdrawal. The lock-in term is informational.
type FixedDeposit struct {
	account
	lockInMonths int
}

func NewFixedDeposit(p Params) (*FixedDeposit, error) {
	if err := common.ValidateVar(p.LockInMonths, "gt=0"); err != nil {
		return nil, &ConstructionError{Field: "lock_in_months", Reason: "must be a positive number of months"}
	}
	f := &FixedDeposit{lockInMonths: p.LockInMonths}
	if err := f.init(KindFixedDeposit, fixedDepositRate, Locked{}, p); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *FixedDeposit) LockInMonths() int {
	return f.lockInMonths
}

// HighYieldSavings earns 7% and allows withdrawing the full balance.
type HighYieldSavings struct{ account }

func NewHighYieldSavings(p Params) (*HighYieldSavings, error) {
	h := &HighYieldSavings{}
	if err := h.init(KindHighYieldSavings, highYieldSavingsRate, FullBalance{}, p); err != nil {
		return nil, err
	}
	return h, nil
}

var (
	_ Account  = (*Savings)(nil)
	_ Account  = (*MoneyMarket)(nil)
	_ Account  = (*FixedDeposit)(nil)
	_ Account  = (*HighYieldSavings)(nil)
	_ LockedIn = (*FixedDeposit)(nil)
)
