package handler

import (
	"errors"
	"go-bank-accounts/common"
	"go-bank-accounts/model"
	"go-bank-accounts/service"
	"net/http"
)

// NotificationHandler exposes the notification dispatcher.
type NotificationHandler struct {
	dispatcher *service.NotificationDispatcher
}

// NewNotificationHandler creates a new NotificationHandler with its dependencies.
func NewNotificationHandler(d *service.NotificationDispatcher) *NotificationHandler {
	return &NotificationHandler{dispatcher: d}
}

// Dispatch godoc
// @Summary      Send a notification on every channel
// @Description  Fans the message out to all configured channels. Partial failure still returns 200; see the per-channel outcomes.
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        notification body model.NotificationRequest true "Recipient and message"
// @Success      200  {object}  handler.DispatchView
// @Failure      400  {object}  common.AppError "Invalid recipient or body"
// @Router       /api/notifications [post]
func (h *NotificationHandler) Dispatch(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.NotificationRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	report, err := h.dispatcher.Dispatch(r.Context(), req.Recipient, req.Message)
	if err != nil {
		if errors.Is(err, model.ErrConstruction) {
			return common.NewAppError(http.StatusBadRequest, err.Error(), err)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not dispatch notification", err)
	}

	writeJSON(w, http.StatusOK, newDispatchView(report))
	return nil
}
