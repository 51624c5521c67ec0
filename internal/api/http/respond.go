package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"sportnex-backend/internal/logger"
	"sportnex-backend/internal/payments"
	"sportnex-backend/internal/security"
	"sportnex-backend/internal/service"
)

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type listResponse struct {
	Items interface{} `json:"items"`
	Total int32       `json:"total"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

func respondList(w http.ResponseWriter, items interface{}, total int32) {
	respondJSON(w, http.StatusOK, listResponse{Items: items, Total: total})
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}

// respondServiceError maps service error classes onto HTTP statuses. Payment
// gateway declines get their own status so the client can present them apart
// from backend failures.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrInvalidCoupon):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrForbidden):
		respondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrSlotTaken), errors.Is(err, service.ErrInvalidTransition):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, payments.ErrChargeDeclined):
		respondError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, security.ErrInvalidToken), errors.Is(err, security.ErrExpiredToken):
		respondError(w, http.StatusUnauthorized, err.Error())
	default:
		logger.Error("request failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
