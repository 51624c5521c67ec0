package http

import (
	"encoding/json"
	"net/http"

	"sportnex-backend/internal/service"
)

// PaymentHandler serves coupon validation, checkout and payment history.
type PaymentHandler struct {
	payments service.PaymentService
}

func NewPaymentHandler(payments service.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// HandleValidateCoupon prices a coupon against one of the caller's approved
// bookings without charging anything.
func (h *PaymentHandler) HandleValidateCoupon(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFrom(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing bearer token")
		return
	}
	var body struct {
		BookingID  int32  `json:"booking_id"`
		CouponCode string `json:"coupon_code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	quote, err := h.payments.QuoteCoupon(r.Context(), claims.UID, body.BookingID, body.CouponCode)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, quote)
}

// HandleProcess charges the caller for an approved booking and confirms it.
func (h *PaymentHandler) HandleProcess(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFrom(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing bearer token")
		return
	}
	var input service.ProcessPaymentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	payment, err := h.payments.Process(r.Context(), claims.UID, input)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, payment)
}

// HandleHistory returns the caller's payment history.
func (h *PaymentHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFrom(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing bearer token")
		return
	}
	page, pageSize := pageParams(r)
	paymentsList, total, err := h.payments.History(r.Context(), claims.UID, page, pageSize)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondList(w, paymentsList, total)
}

// HandleListAll returns every payment for the admin console.
func (h *PaymentHandler) HandleListAll(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pageParams(r)
	paymentsList, total, err := h.payments.ListAll(r.Context(), page, pageSize)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondList(w, paymentsList, total)
}
