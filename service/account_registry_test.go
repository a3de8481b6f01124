// file: service/account_registry_test.go

package service

import (
	"go-bank-accounts/metrics"
	"go-bank-accounts/model"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// studentAccount is a variant the registry has never heard of: 1% interest and
// withdrawals capped at 200 per request. It shares no code with the bundled variants.
type studentAccount struct {
	mu      sync.Mutex
	id      uuid.UUID
	holder  string
	balance model.Money
}

var studentCap = model.MustMoney("200")

func newStudentAccount(holder, balance string) *studentAccount {
	return &studentAccount{id: uuid.New(), holder: holder, balance: model.MustMoney(balance)}
}

func (s *studentAccount) ID() uuid.UUID     { return s.id }
func (s *studentAccount) Holder() string    { return s.holder }
func (s *studentAccount) Kind() model.Kind  { return "student" }
func (s *studentAccount) Rate() model.Money { return model.MustMoney("0.01") }

func (s *studentAccount) Balance() model.Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balance
}

func (s *studentAccount) AnnualInterest() model.Money { return s.Balance().Mul(s.Rate()) }

func studentLimit(balance model.Money) model.Money {
	if balance.LessThan(studentCap) {
		return balance
	}
	return studentCap
}

func (s *studentAccount) WithdrawalLimit() model.Money { return studentLimit(s.Balance()) }

func (s *studentAccount) CanWithdraw(amount model.Money) bool {
	return !amount.IsNegative() && amount.LessThanOrEqual(s.WithdrawalLimit())
}

func (s *studentAccount) Withdraw(amount model.Money) error {
	if !amount.IsPositive() {
		return model.ErrInvalidAmount
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	limit := studentLimit(s.balance)
	if amount.GreaterThan(limit) {
		return &model.WithdrawalDeniedError{Holder: s.holder, Kind: s.Kind(), Attempted: amount, Limit: limit}
	}
	s.balance = s.balance.Sub(amount)
	return nil
}

func scenarioAccounts(t *testing.T) (*model.Savings, *model.MoneyMarket, *model.FixedDeposit) {
	t.Helper()
	alice, err := model.NewSavings(model.Params{Holder: "Alice", Balance: model.MustMoney("5000")})
	require.NoError(t, err)
	bob, err := model.NewMoneyMarket(model.Params{Holder: "Bob", Balance: model.MustMoney("10000")})
	require.NoError(t, err)
	carol, err := model.NewFixedDeposit(model.Params{Holder: "Carol", Balance: model.MustMoney("20000"), LockInMonths: 12})
	require.NoError(t, err)
	return alice, bob, carol
}

func TestAccountRegistry_TotalAnnualInterest(t *testing.T) {
	alice, bob, carol := scenarioAccounts(t)
	registry := NewAccountRegistry(nil)
	require.NoError(t, registry.Add(alice))
	require.NoError(t, registry.Add(bob))
	require.NoError(t, registry.Add(carol))

	assert.Equal(t, "1900.00", registry.TotalAnnualInterest().StringFixed(2))
}

func TestAccountRegistry_EmptyTotalIsZero(t *testing.T) {
	assert.True(t, NewAccountRegistry(nil).TotalAnnualInterest().IsZero())
}

func TestAccountRegistry_OrderIndependentTotal(t *testing.T) {
	alice, bob, carol := scenarioAccounts(t)

	forward := NewAccountRegistry(nil)
	backward := NewAccountRegistry(nil)
	for _, acc := range []model.Account{alice, bob, carol} {
		require.NoError(t, forward.Add(acc))
	}
	for _, acc := range []model.Account{carol, bob, alice} {
		require.NoError(t, backward.Add(acc))
	}

	assert.True(t, forward.TotalAnnualInterest().Equal(backward.TotalAnnualInterest()))
}

func TestAccountRegistry_Report(t *testing.T) {
	alice, bob, carol := scenarioAccounts(t)
	registry := NewAccountRegistry(nil)
	for _, acc := range []model.Account{alice, bob, carol, alice} {
		require.NoError(t, registry.Add(acc))
	}

	lines := registry.Report()
	require.Len(t, lines, 4)

	want := []struct {
		holder   string
		interest string
	}{
		{"Alice", "200.00"},
		{"Bob", "500.00"},
		{"Carol", "1200.00"},
		{"Alice", "200.00"},
	}
	for i, w := range want {
		assert.Equal(t, w.holder, lines[i].Account.Holder())
		assert.Equal(t, w.interest, lines[i].Interest.StringFixed(2))
	}
	assert.Same(t, lines[0].Account, lines[3].Account)

	// The report does not touch balances.
	assert.Equal(t, "5000.00", alice.Balance().StringFixed(2))
}

func TestAccountRegistry_AttemptWithdrawal(t *testing.T) {
	alice, bob, carol := scenarioAccounts(t)
	m := metrics.New()
	registry := NewAccountRegistry(m)

	t.Run("savings succeeds", func(t *testing.T) {
		require.NoError(t, registry.AttemptWithdrawal(alice, model.MustMoney("2000")))
		assert.Equal(t, "3000.00", alice.Balance().StringFixed(2))
	})

	t.Run("money market above reserve", func(t *testing.T) {
		err := registry.AttemptWithdrawal(bob, model.MustMoney("9600"))
		assert.ErrorIs(t, err, model.ErrWithdrawalDenied)
		assert.Equal(t, "10000.00", bob.Balance().StringFixed(2))
	})

	t.Run("fixed deposit always denied", func(t *testing.T) {
		err := registry.AttemptWithdrawal(carol, model.MustMoney("100"))
		assert.ErrorIs(t, err, model.ErrWithdrawalDenied)
	})

	t.Run("invalid amount", func(t *testing.T) {
		err := registry.AttemptWithdrawal(alice, model.MustMoney("-5"))
		assert.ErrorIs(t, err, model.ErrInvalidAmount)
	})

	t.Run("nil account", func(t *testing.T) {
		assert.ErrorIs(t, registry.AttemptWithdrawal(nil, model.MustMoney("1")), ErrNilAccount)
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.WithdrawalsTotal.WithLabelValues("savings", "accepted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.WithdrawalsTotal.WithLabelValues("money_market", "denied")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.WithdrawalsTotal.WithLabelValues("fixed_deposit", "denied")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.WithdrawalsTotal.WithLabelValues("savings", "invalid")))
}

func TestAccountRegistry_NewVariantIntegrates(t *testing.T) {
	alice, _, _ := scenarioAccounts(t)
	student := newStudentAccount("Erin", "1000")

	registry := NewAccountRegistry(nil)
	require.NoError(t, registry.Add(alice))
	require.NoError(t, registry.Add(student))

	assert.Equal(t, "210.00", registry.TotalAnnualInterest().StringFixed(2))

	require.NoError(t, registry.AttemptWithdrawal(student, model.MustMoney("200")))
	assert.ErrorIs(t, registry.AttemptWithdrawal(student, model.MustMoney("201")), model.ErrWithdrawalDenied)
	assert.Equal(t, "800.00", student.Balance().StringFixed(2))
	assert.Equal(t, "208.00", registry.TotalAnnualInterest().StringFixed(2))
}

func TestAccountRegistry_NewVariantConcurrentWithdrawals(t *testing.T) {
	student := newStudentAccount("Erin", "150")
	registry := NewAccountRegistry(nil)
	require.NoError(t, registry.Add(student))

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = registry.AttemptWithdrawal(student, model.MustMoney("7"))
		}()
	}
	wg.Wait()

	assert.False(t, student.Balance().IsNegative())
	assert.Equal(t, "3.00", student.Balance().StringFixed(2))
}

func TestAccountRegistry_FindAndWithdrawByID(t *testing.T) {
	alice, bob, _ := scenarioAccounts(t)
	registry := NewAccountRegistry(nil)
	require.NoError(t, registry.Add(alice))
	require.NoError(t, registry.Add(bob))

	acc, ok := registry.Find(bob.ID())
	require.True(t, ok)
	assert.Same(t, model.Account(bob), acc)

	_, err := registry.AttemptWithdrawalByID(alice.ID(), model.MustMoney("500"))
	require.NoError(t, err)
	assert.Equal(t, "4500.00", alice.Balance().StringFixed(2))

	_, err = registry.AttemptWithdrawalByID(uuid.New(), model.MustMoney("1"))
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestAccountRegistry_AddNil(t *testing.T) {
	registry := NewAccountRegistry(nil)
	assert.ErrorIs(t, registry.Add(nil), ErrNilAccount)
	assert.Equal(t, 0, registry.Len())
}

func TestAccountRegistry_ConcurrentUse(t *testing.T) {
	registry := NewAccountRegistry(nil)
	alice, _, _ := scenarioAccounts(t)
	require.NoError(t, registry.Add(alice))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = registry.AttemptWithdrawal(alice, model.MustMoney("100"))
		}()
		go func() {
			defer wg.Done()
			acc, err := model.NewHighYieldSavings(model.Params{Holder: "Frank", Balance: model.MustMoney("100")})
			if err == nil {
				_ = registry.Add(acc)
			}
			_ = registry.TotalAnnualInterest()
		}()
	}
	wg.Wait()

	assert.Equal(t, 21, registry.Len())
	assert.Equal(t, "3000.00", alice.Balance().StringFixed(2))
}
