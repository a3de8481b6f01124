// file: model/notification.go

package model

import (
	"errors"
	"strings"
	"time"
)

// Notification is a single logical message addressed to one recipient.
type Notification struct {
	Recipient string
	Message   string
}

// NewNotification rejects an empty recipient before anything is sent.
func NewNotification(recipient, message string) (Notification, error) {
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		return Notification{}, &ConstructionError{Field: "recipient", Reason: "must not be empty"}
	}
	return Notification{Recipient: recipient, Message: message}, nil
}

// DeliveryOutcome is the result of sending a notification through one channel.
type DeliveryOutcome struct {
	Channel  string        `json:"channel"`
	Err      error         `json:"-"`
	Duration time.Duration `json:"-"`
}

// Delivered reports whether the channel accepted the notification.
func (o DeliveryOutcome) Delivered() bool {
	return o.Err == nil
}

// DispatchReport holds one outcome per channel, in registration order.
type DispatchReport struct {
	Notification Notification
	Outcomes     []DeliveryOutcome
}

func (r DispatchReport) Succeeded() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Delivered() {
			n++
		}
	}
	return n
}

func (r DispatchReport) Failed() int {
	return len(r.Outcomes) - r.Succeeded()
}

// Err joins the failures of the dispatch, or returns nil when every channel delivered.
func (r DispatchReport) Err() error {
	var errs []error
	for _, o := range r.Outcomes {
		if o.Err != nil {
			errs = append(errs, o.Err)
		}
	}
	return errors.Join(errs...)
}
