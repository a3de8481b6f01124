// file: model/account.go

package model

import (
	"errors"
	"fmt"
	"go-bank-accounts/common"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Kind labels an account variant for display. Consumers never branch on it.
type Kind string

const (
	KindSavings          Kind = "savings"
	KindMoneyMarket      Kind = "money_market"
	KindFixedDeposit     Kind = "fixed_deposit"
	KindHighYieldSavings Kind = "high_yield_savings"
)

// Holder exposes the identifying and balance data of an account.
type Holder interface {
	ID() uuid.UUID
	Holder() string
	Kind() Kind
	Balance() Money
}

// InterestBearer computes yearly interest from the current balance.
type InterestBearer interface {
	Rate() Money
	AnnualInterest() Money
}

// Withdrawer evaluates and executes withdrawals against the account's policy.
type Withdrawer interface {
	CanWithdraw(amount Money) bool
	WithdrawalLimit() Money
	Withdraw(amount Money) error
}

// Account is the full capability set held by AccountRegistry.
type Account interface {
	Holder
	InterestBearer
	Withdrawer
}

// LockedIn is implemented by accounts with a lock-in term.
type LockedIn interface {
	LockInMonths() int
}

// Params are the construction arguments shared by every bundled variant.
type Params struct {
	Holder       string `validate:"required"`
	Balance      Money
	LockInMonths int
}

// account carries the state and behaviour shared by the bundled variants. The
// rate and policy are fixed at construction; only the balance ever changes.
type account struct {
	id     uuid.UUID
	holder string
	kind   Kind
	rate   Money
	policy WithdrawalPolicy

	mu      sync.Mutex
	balance Money
}

// init validates p and fills in the shared state of a variant.
func (a *account) init(kind Kind, rate Money, policy WithdrawalPolicy, p Params) error {
	holder := strings.TrimSpace(p.Holder)
	if err := validateParams(Params{Holder: holder}); err != nil {
		return err
	}
	if p.Balance.IsNegative() {
		return &ConstructionError{Field: "balance", Reason: "must not be negative"}
	}
	a.id = uuid.New()
	a.holder = holder
	a.kind = kind
	a.rate = rate
	a.policy = policy
	a.balance = p.Balance
	return nil
}

func validateParams(p Params) error {
	err := common.ValidateStruct(p)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &ConstructionError{Field: strings.ToLower(verrs[0].Field()), Reason: "failed " + verrs[0].Tag() + " check"}
	}
	return &ConstructionError{Field: "params", Reason: err.Error()}
}

func (a *account) ID() uuid.UUID  { return a.id }
func (a *account) Holder() string { return a.holder }
func (a *account) Kind() Kind     { return a.kind }
func (a *account) Rate() Money    { return a.rate }

func (a *account) Balance() Money {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// AnnualInterest returns balance × rate with no rounding.
func (a *account) AnnualInterest() Money {
	return a.Balance().Mul(a.rate)
}

func (a *account) CanWithdraw(amount Money) bool {
	return a.policy.Allows(amount, a.Balance())
}

func (a *account) WithdrawalLimit() Money {
	return a.policy.Limit(a.Balance())
}

// Withdraw deducts amount when the policy allows it. The check and the
// deduction happen under the same lock.
func (a *account) Withdraw(amount Money) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: withdrawal must be greater than zero, got %s", ErrInvalidAmount, amount.String())
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.policy.Allows(amount, a.balance) {
		return &WithdrawalDeniedError{
			Holder:    a.holder,
			Kind:      a.kind,
			Attempted: amount,
			Limit:     a.policy.Limit(a.balance),
		}
	}
	a.balance = a.balance.Sub(amount)
	return nil
}
