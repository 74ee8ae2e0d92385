package handler

import (
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/shopcenter/internal/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/apperr"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
)

type NotificationHandler struct {
	notificationService service.INotificationService
}

func NewNotificationHandler(notificationService service.INotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseUint(r.URL.Query().Get("user_id"), 10, 64)
	if err != nil {
		api.ErrorJSON(w, apperr.Validation("Invalid user_id."))
		return
	}

	notifications, err := h.notificationService.ListNotifications(r.Context(), uint(userID))
	if err != nil {
		api.ErrorJSON(w, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{"notifications": notifications})
}
