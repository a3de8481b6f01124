// file: model/errors.go

package model

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrWithdrawalDenied = errors.New("withdrawal denied")
	ErrDeliveryFailed   = errors.New("delivery failed")
	ErrConstruction     = errors.New("invalid construction argument")
)

// WithdrawalDeniedError is returned when an account policy rejects a withdrawal.
// It carries the attempted amount and the limit in force at the time of the attempt.
type WithdrawalDeniedError struct {
	Holder    string
	Kind      Kind
	Attempted Money
	Limit     Money
}

func (e *WithdrawalDeniedError) Error() string {
	return fmt.Sprintf("withdrawal denied: %s account of %s allows at most %s, attempted %s",
		e.Kind, e.Holder, e.Limit.StringFixed(2), e.Attempted.StringFixed(2))
}

func (e *WithdrawalDeniedError) Is(target error) bool {
	return target == ErrWithdrawalDenied
}

// DeliveryError records a single channel's failure during a dispatch.
type DeliveryError struct {
	Channel string
	Err     error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery failed on channel %s: %v", e.Channel, e.Err)
}

func (e *DeliveryError) Is(target error) bool {
	return target == ErrDeliveryFailed
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// ConstructionError reports an invalid argument supplied when building an account or notification.
type ConstructionError struct {
	Field  string
	Reason string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ConstructionError) Is(target error) bool {
	return target == ErrConstruction
}
