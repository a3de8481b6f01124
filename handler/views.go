package handler

import (
	"go-bank-accounts/model"
	"go-bank-accounts/service"
)

// AccountView is the JSON rendering of an account and its interest.
type AccountView struct {
	ID              string `json:"id"`
	Holder          string `json:"holder"`
	Kind            string `json:"kind"`
	Balance         string `json:"balance"`
	Rate            string `json:"rate"`
	AnnualInterest  string `json:"annual_interest"`
	WithdrawalLimit string `json:"withdrawal_limit"`
	LockInMonths    *int   `json:"lock_in_months,omitempty"`
}

// InterestTotalView is the JSON rendering of the registry's total interest.
type InterestTotalView struct {
	Accounts            int    `json:"accounts"`
	TotalAnnualInterest string `json:"total_annual_interest"`
}

// WithdrawalDeniedView carries the diagnostics of a rejected withdrawal.
type WithdrawalDeniedView struct {
	Attempted string `json:"attempted"`
	Limit     string `json:"limit"`
}

// OutcomeView is one channel's result in a dispatch.
type OutcomeView struct {
	Channel   string `json:"channel"`
	Delivered bool   `json:"delivered"`
	Error     string `json:"error,omitempty"`
}

// DispatchView is the JSON rendering of a dispatch report.
type DispatchView struct {
	Recipient string        `json:"recipient"`
	Delivered int           `json:"delivered"`
	Failed    int           `json:"failed"`
	Outcomes  []OutcomeView `json:"outcomes"`
}

func money(m model.Money) string {
	return m.StringFixed(2)
}

func newAccountView(acc model.Account, interest model.Money) AccountView {
	v := AccountView{
		ID:              acc.ID().String(),
		Holder:          acc.Holder(),
		Kind:            string(acc.Kind()),
		Balance:         money(acc.Balance()),
		Rate:            acc.Rate().String(),
		AnnualInterest:  money(interest),
		WithdrawalLimit: money(acc.WithdrawalLimit()),
	}
	if l, ok := acc.(model.LockedIn); ok {
		months := l.LockInMonths()
		v.LockInMonths = &months
	}
	return v
}

func newReportView(lines []service.InterestLine) []AccountView {
	out := make([]AccountView, 0, len(lines))
	for _, line := range lines {
		out = append(out, newAccountView(line.Account, line.Interest))
	}
	return out
}

func newDispatchView(r model.DispatchReport) DispatchView {
	v := DispatchView{
		Recipient: r.Notification.Recipient,
		Delivered: r.Succeeded(),
		Failed:    r.Failed(),
		Outcomes:  make([]OutcomeView, 0, len(r.Outcomes)),
	}
	for _, o := range r.Outcomes {
		ov := OutcomeView{Channel: o.Channel, Delivered: o.Delivered()}
		if o.Err != nil {
			ov.Error = o.Err.Error()
		}
		v.Outcomes = append(v.Outcomes, ov)
	}
	return v
}
