// File: app/accounts.go
package app

import (
	"fmt"
	"go-bank-accounts/config"
	"go-bank-accounts/model"
	"strings"
)

// accountConstructor builds one concrete variant. This table is the only place
// account kinds are mapped to types.
type accountConstructor func(model.Params) (model.Account, error)

var accountConstructors = map[model.Kind]accountConstructor{
	model.KindSavings:          func(p model.Params) (model.Account, error) { return model.NewSavings(p) },
	model.KindMoneyMarket:      func(p model.Params) (model.Account, error) { return model.NewMoneyMarket(p) },
	model.KindFixedDeposit:     func(p model.Params) (model.Account, error) { return model.NewFixedDeposit(p) },
	model.KindHighYieldSavings: func(p model.Params) (model.Account, error) { return model.NewHighYieldSavings(p) },
}

// BuildAccount creates the account described by seed.
func BuildAccount(seed config.AccountSeed) (model.Account, error) {
	kind := model.Kind(strings.ToLower(strings.TrimSpace(seed.Kind)))
	build, ok := accountConstructors[kind]
	if !ok {
		return nil, &model.ConstructionError{Field: "kind", Reason: fmt.Sprintf("unknown account kind %q", seed.Kind)}
	}

	balance, err := model.ParseAmount(seed.Balance)
	if err != nil {
		return nil, &model.ConstructionError{Field: "balance", Reason: err.Error()}
	}

	return build(model.Params{
		Holder:       seed.Holder,
		Balance:      balance,
		LockInMonths: seed.LockInMonths,
	})
}
