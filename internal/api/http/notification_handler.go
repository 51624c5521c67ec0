package http

import (
	"net/http"

	"sportnex-backend/internal/service"
)

// NotificationHandler serves the caller's in-app notification feed.
type NotificationHandler struct {
	notifications service.NotificationService
}

func NewNotificationHandler(notifications service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// HandleList returns the caller's notifications, newest first.
func (h *NotificationHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFrom(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing bearer token")
		return
	}
	limit := queryInt32(r, "limit", defaultPageSize)
	offset := queryInt32(r, "offset", 0)
	items, total, err := h.notifications.List(r.Context(), claims.UID, limit, offset)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondList(w, items, total)
}

// HandleMarkAsRead marks one of the caller's notifications as read.
func (h *NotificationHandler) HandleMarkAsRead(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFrom(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing bearer token")
		return
	}
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid notification id")
		return
	}
	if err := h.notifications.MarkAsRead(r.Context(), id, claims.UID); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
