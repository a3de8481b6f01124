// file: service/account_registry.go

package service

import (
	"errors"
	"go-bank-accounts/logger"
	"go-bank-accounts/metrics"
	"go-bank-accounts/model"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// InterestLine pairs an account with the interest it earns in a year.
type InterestLine struct {
	Account  model.Account
	Interest model.Money
}

// AccountRegistry holds heterogeneous accounts in insertion order and works
// with them only through the model.Account contract.
type AccountRegistry struct {
	mu       sync.RWMutex
	accounts []model.Account
	metrics  *metrics.Metrics
}

// NewAccountRegistry creates an empty registry. m may be nil.
func NewAccountRegistry(m *metrics.Metrics) *AccountRegistry {
	return &AccountRegistry{metrics: m}
}

// Add appends acc. The same holder may appear any number of times.
func (r *AccountRegistry) Add(acc model.Account) error {
	if acc == nil {
		return ErrNilAccount
	}
	r.mu.Lock()
	r.accounts = append(r.accounts, acc)
	n := len(r.accounts)
	r.mu.Unlock()

	r.metrics.SetRegisteredAccounts(n)
	logger.Log.WithFields(logrus.Fields{
		"account_id": acc.ID(),
		"holder":     acc.Holder(),
		"kind":       acc.Kind(),
	}).Info("Account registered")
	return nil
}

// Accounts returns a snapshot of the held accounts in insertion order.
func (r *AccountRegistry) Accounts() []model.Account {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Account, len(r.accounts))
	copy(out, r.accounts)
	return out
}

func (r *AccountRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.accounts)
}

// Find looks an account up by its handle.
func (r *AccountRegistry) Find(id uuid.UUID) (model.Account, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, acc := range r.accounts {
		if acc.ID() == id {
			return acc, true
		}
	}
	return nil, false
}

// TotalAnnualInterest sums AnnualInterest over every account.
func (r *AccountRegistry) TotalAnnualInterest() model.Money {
	total := model.Zero
	for _, acc := range r.Accounts() {
		total = total.Add(acc.AnnualInterest())
	}
	r.metrics.IncrementInterestReport()
	return total
}

// Report lists each account with its annual interest, in insertion order.
func (r *AccountRegistry) Report() []InterestLine {
	accounts := r.Accounts()
	lines := make([]InterestLine, 0, len(accounts))
	for _, acc := range accounts {
		lines = append(lines, InterestLine{Account: acc, Interest: acc.AnnualInterest()})
	}
	r.metrics.IncrementInterestReport()
	return lines
}

// AttemptWithdrawal delegates to the account's own policy. Nothing is recorded
// beyond logs and metrics.
func (r *AccountRegistry) AttemptWithdrawal(acc model.Account, amount model.Money) error {
	if acc == nil {
		return ErrNilAccount
	}
	log := logger.Log.WithFields(logrus.Fields{
		"account_id": acc.ID(),
		"holder":     acc.Holder(),
		"kind":       acc.Kind(),
		"amount":     amount.String(),
	})
	log.Info("Withdrawal requested")

	err := acc.Withdraw(amount)
	switch {
	case err == nil:
		r.metrics.IncrementWithdrawal(string(acc.Kind()), "accepted")
		log.WithField("balance", acc.Balance().String()).Info("Withdrawal accepted")
	case errors.Is(err, model.ErrWithdrawalDenied):
		r.metrics.IncrementWithdrawal(string(acc.Kind()), "denied")
		log.WithError(err).Warn("Withdrawal denied by account policy")
	case errors.Is(err, model.ErrInvalidAmount):
		r.metrics.IncrementWithdrawal(string(acc.Kind()), "invalid")
		log.WithError(err).Warn("Withdrawal rejected: invalid amount")
	default:
		log.WithError(err).Error("Withdrawal failed")
	}
	return err
}

// AttemptWithdrawalByID resolves id and then behaves like AttemptWithdrawal.
func (r *AccountRegistry) AttemptWithdrawalByID(id uuid.UUID, amount model.Money) (model.Account, error) {
	acc, ok := r.Find(id)
	if !ok {
		return nil, ErrAccountNotFound
	}
	return acc, r.AttemptWithdrawal(acc, amount)
}
