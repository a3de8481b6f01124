// file: service/notification_dispatcher.go

package service

import (
	"context"
	"fmt"
	"go-bank-accounts/logger"
	"go-bank-accounts/metrics"
	"go-bank-accounts/model"
	"go-bank-accounts/notify"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// NotificationDispatcher fans a notification out to every configured channel.
// One channel's failure never prevents the others from being attempted.
type NotificationDispatcher struct {
	mu       sync.RWMutex
	channels []notify.Channel
	// parallel is the number of concurrent sends; 0 means sequential.
	parallel int
	metrics  *metrics.Metrics
}

// unnamedChannel labels the outcome of a channel whose Name itself failed.
const unnamedChannel = "unnamed"

type DispatcherOption func(*NotificationDispatcher)

// WithParallel delivers to up to limit channels at once. Outcomes are still
// reported in registration order once every send has returned.
func WithParallel(limit int) DispatcherOption {
	return func(d *NotificationDispatcher) {
		if limit > 0 {
			d.parallel = limit
		}
	}
}

func WithMetrics(m *metrics.Metrics) DispatcherOption {
	return func(d *NotificationDispatcher) {
		d.metrics = m
	}
}

func NewNotificationDispatcher(opts ...DispatcherOption) *NotificationDispatcher {
	d := &NotificationDispatcher{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *NotificationDispatcher) AddChannel(ch notify.Channel) error {
	if ch == nil {
		return ErrNilChannel
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.channels = append(d.channels, ch)
	return nil
}

// ReplaceChannel swaps the first channel named name for ch, keeping its position.
func (d *NotificationDispatcher) ReplaceChannel(name string, ch notify.Channel) bool {
	if ch == nil {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, existing := range d.channels {
		if existing.Name() == name {
			d.channels[i] = ch
			return true
		}
	}
	return false
}

func (d *NotificationDispatcher) RemoveChannel(name string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, existing := range d.channels {
		if existing.Name() == name {
			d.channels = append(d.channels[:i], d.channels[i+1:]...)
			return true
		}
	}
	return false
}

// Channels returns the configured channels in delivery order.
func (d *NotificationDispatcher) Channels() []notify.Channel {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]notify.Channel, len(d.channels))
	copy(out, d.channels)
	return out
}

// Dispatch sends (recipient, message) through every channel and returns one
// outcome per channel. The error is non-nil only when the recipient is invalid;
// delivery failures are reported in the outcomes.
func (d *NotificationDispatcher) Dispatch(ctx context.Context, recipient, message string) (model.DispatchReport, error) {
	n, err := model.NewNotification(recipient, message)
	if err != nil {
		return model.DispatchReport{}, err
	}

	channels := d.Channels()
	log := logger.Log.WithFields(logrus.Fields{
		"recipient": n.Recipient,
		"channels":  len(channels),
		"parallel":  d.parallel,
	})
	if len(channels) == 0 {
		log.Warn("No notification channels configured")
	}

	start := time.Now()
	outcomes := make([]model.DeliveryOutcome, len(channels))
	if d.parallel > 0 {
		var g errgroup.Group
		g.SetLimit(d.parallel)
		for i, ch := range channels {
			g.Go(func() error {
				outcomes[i] = d.deliver(ctx, ch, n)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i, ch := range channels {
			outcomes[i] = d.deliver(ctx, ch, n)
		}
	}
	d.metrics.ObserveDispatch(start)

	report := model.DispatchReport{Notification: n, Outcomes: outcomes}
	log.WithFields(logrus.Fields{
		"delivered": report.Succeeded(),
		"failed":    report.Failed(),
	}).Info("Notification dispatched")
	return report, nil
}

// deliver runs a single send, turning errors and panics into a DeliveryError.
// Name is read inside the recovered region too.
func (d *NotificationDispatcher) deliver(ctx context.Context, ch notify.Channel, n model.Notification) (out model.DeliveryOutcome) {
	start := time.Now()
	out.Channel = unnamedChannel

	defer func() {
		if r := recover(); r != nil {
			out.Err = &model.DeliveryError{Channel: out.Channel, Err: fmt.Errorf("channel panicked: %v", r)}
		}
		out.Duration = time.Since(start)
		d.metrics.IncrementDelivery(out.Channel, out.Err == nil)
		if out.Err != nil {
			logger.Log.WithField("channel", out.Channel).WithError(out.Err).Error("Notification delivery failed")
		}
	}()

	out.Channel = ch.Name()
	if err := ch.Send(ctx, n.Recipient, n.Message); err != nil {
		out.Err = &model.DeliveryError{Channel: out.Channel, Err: err}
	}
	return out
}
