package handler

import (
	"encoding/json"
	"errors"
	"go-bank-accounts/common"
	"go-bank-accounts/logger"
	"go-bank-accounts/model"
	"go-bank-accounts/service"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type AccountHandler struct {
	registry *service.AccountRegistry
}

func NewAccountHandler(registry *service.AccountRegistry) *AccountHandler {
	return &AccountHandler{registry: registry}
}

// ListAccounts godoc
// @Summary      Interest report
// @Description  Lists every registered account in insertion order with its annual interest and current withdrawal limit.
// @Tags         accounts
// @Produce      json
// @Success      200  {array}  handler.AccountView
// @Router       /api/accounts [get]
func (h *AccountHandler) ListAccounts(w http.ResponseWriter, r *http.Request) *common.AppError {
	logger.Log.Info("List accounts request received")

	writeJSON(w, http.StatusOK, newReportView(h.registry.Report()))
	return nil
}

// TotalInterest godoc
// @Summary      Total annual interest
// @Description  Sums the annual interest of every registered account.
// @Tags         accounts
// @Produce      json
// @Success      200  {object}  handler.InterestTotalView
// @Router       /api/accounts/interest [get]
func (h *AccountHandler) TotalInterest(w http.ResponseWriter, r *http.Request) *common.AppError {
	writeJSON(w, http.StatusOK, InterestTotalView{
		Accounts:            h.registry.Len(),
		TotalAnnualInterest: money(h.registry.TotalAnnualInterest()),
	})
	return nil
}

// Withdraw godoc
// @Summary      Withdraw from an account
// @Description  Applies the account's own withdrawal policy. A rejected withdrawal leaves the balance unchanged.
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        accountId  path  string  true  "Account ID"
// @Param        withdrawal body  model.WithdrawalRequest true "Amount as a decimal string"
// @Success      200  {object}  handler.AccountView
// @Failure      400  {object}  common.AppError "Invalid account ID or amount"
// @Failure      404  {object}  common.AppError "Account not found"
// @Failure      422  {object}  common.AppError "Withdrawal denied by policy"
// @Router       /api/accounts/{accountId}/withdrawals [post]
func (h *AccountHandler) Withdraw(w http.ResponseWriter, r *http.Request) *common.AppError {
	accountID, err := uuid.Parse(r.PathValue("accountId"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid account ID in URL path", err)
	}

	var req model.WithdrawalRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	amount, err := model.ParseAmount(req.Amount)
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, err.Error(), err)
	}

	logger.Log.WithFields(logrus.Fields{
		"account_id": accountID,
		"amount":     amount.String(),
	}).Info("Withdrawal request received")

	acc, err := h.registry.AttemptWithdrawalByID(accountID, amount)
	if err != nil {
		var denied *model.WithdrawalDeniedError
		switch {
		case errors.Is(err, service.ErrAccountNotFound):
			return common.NewAppError(http.StatusNotFound, err.Error(), err)
		case errors.Is(err, model.ErrInvalidAmount):
			return common.NewAppError(http.StatusBadRequest, err.Error(), err)
		case errors.As(err, &denied):
			return common.NewAppError(http.StatusUnprocessableEntity, err.Error(), nil).
				WithDetails(WithdrawalDeniedView{Attempted: money(denied.Attempted), Limit: money(denied.Limit)})
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not process withdrawal", err)
		}
	}

	writeJSON(w, http.StatusOK, newAccountView(acc, acc.AnnualInterest()))
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
