package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for account withdrawals and notification delivery.
type Metrics struct {
	Registry *prometheus.Registry

	WithdrawalsTotal   *prometheus.CounterVec
	InterestReports    prometheus.Counter
	DeliveriesTotal    *prometheus.CounterVec
	DispatchDuration   prometheus.Histogram
	RegisteredAccounts prometheus.Gauge
}

// New creates a Metrics instance registered on its own registry so that
// several instances can coexist in one process.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		WithdrawalsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bank_withdrawals_total",
			Help: "Withdrawal attempts by account kind and outcome (accepted, denied, invalid)",
		}, []string{"kind", "outcome"}),
		InterestReports: factory.NewCounter(prometheus.CounterOpts{
			Name: "bank_interest_reports_total",
			Help: "Total number of interest reports and totals computed",
		}),
		DeliveriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bank_notification_deliveries_total",
			Help: "Notification deliveries by channel and outcome (delivered, failed)",
		}, []string{"channel", "outcome"}),
		DispatchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "bank_notification_dispatch_duration_seconds",
			Help:    "Duration of a full fan-out across all channels",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
		RegisteredAccounts: factory.NewGauge(prometheus.GaugeOpts{
			Name: "bank_registered_accounts",
			Help: "Number of accounts held by the registry",
		}),
	}
}

// IncrementWithdrawal records a withdrawal attempt for an account kind.
func (m *Metrics) IncrementWithdrawal(kind, outcome string) {
	if m == nil {
		return
	}
	m.WithdrawalsTotal.WithLabelValues(kind, outcome).Inc()
}

func (m *Metrics) IncrementInterestReport() {
	if m == nil {
		return
	}
	m.InterestReports.Inc()
}

// IncrementDelivery records one channel's delivery outcome.
func (m *Metrics) IncrementDelivery(channel string, delivered bool) {
	if m == nil {
		return
	}
	outcome := "delivered"
	if !delivered {
		outcome = "failed"
	}
	m.DeliveriesTotal.WithLabelValues(channel, outcome).Inc()
}

// ObserveDispatch records the duration of a dispatch.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveDispatch(start time.Time) {
	if m == nil {
		return
	}
	m.DispatchDuration.Observe(time.Since(start).Seconds())
}

func (m *Metrics) SetRegisteredAccounts(n int) {
	if m == nil {
		return
	}
	m.RegisteredAccounts.Set(float64(n))
}
