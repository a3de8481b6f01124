// file: model/request.go

package model

// WithdrawalRequest is the payload for withdrawing from an account.
// Amount is a decimal string so no precision is lost in JSON.
type WithdrawalRequest struct {
	Amount string `json:"amount" validate:"required"`
}

// NotificationRequest is the payload for dispatching a notification to every channel.
type NotificationRequest struct {
	Recipient string `json:"recipient" validate:"required"`
	Message   string `json:"message" validate:"required"`
}
