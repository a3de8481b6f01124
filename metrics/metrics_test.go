package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.IncrementWithdrawal("savings", "accepted")
	m.IncrementWithdrawal("savings", "accepted")
	m.IncrementWithdrawal("fixed_deposit", "denied")
	m.IncrementDelivery("email", true)
	m.IncrementDelivery("sms", false)
	m.IncrementInterestReport()
	m.SetRegisteredAccounts(3)
	m.ObserveDispatch(time.Now())

	assert.Equal(t, 2.0, testutil.ToFloat64(m.WithdrawalsTotal.WithLabelValues("savings", "accepted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.WithdrawalsTotal.WithLabelValues("fixed_deposit", "denied")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DeliveriesTotal.WithLabelValues("sms", "failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.InterestReports))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.RegisteredAccounts))
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New()
		New()
	})
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncrementWithdrawal("savings", "accepted")
		m.IncrementDelivery("email", true)
		m.IncrementInterestReport()
		m.ObserveDispatch(time.Now())
		m.SetRegisteredAccounts(1)
	})
}
