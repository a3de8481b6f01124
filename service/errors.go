package service

import "errors"

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrNilAccount      = errors.New("account must not be nil")
	ErrNilChannel      = errors.New("notification channel must not be nil")
)
