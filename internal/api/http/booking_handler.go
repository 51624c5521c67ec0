package http

import (
	"encoding/json"
	"net/http"

	"sportnex-backend/internal/domain"
	"sportnex-backend/internal/service"
)

// BookingHandler serves user bookings and the admin approval queue.
type BookingHandler struct {
	bookings service.BookingService
}

func NewBookingHandler(bookings service.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// HandleCreate books one or more slots on a court for a date. The booking
// starts pending and waits for admin approval.
func (h *BookingHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFrom(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing bearer token")
		return
	}
	var input service.CreateBookingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	booking, err := h.bookings.Create(r.Context(), claims.UID, claims.Email, input)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, booking)
}

// HandleListMine returns the caller's bookings, optionally filtered by status.
func (h *BookingHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFrom(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing bearer token")
		return
	}
	status, ok := statusFilter(w, r)
	if !ok {
		return
	}
	page, pageSize := pageParams(r)
	bookings, total, err := h.bookings.ListMine(r.Context(), claims.UID, status, page, pageSize)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondList(w, bookings, total)
}

// HandleCancel deletes the caller's booking.
func (h *BookingHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFrom(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing bearer token")
		return
	}
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid booking id")
		return
	}
	if err := h.bookings.Cancel(r.Context(), claims.UID, false, id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// HandleListAll returns every booking for the admin queue.
func (h *BookingHandler) HandleListAll(w http.ResponseWriter, r *http.Request) {
	status, ok := statusFilter(w, r)
	if !ok {
		return
	}
	page, pageSize := pageParams(r)
	bookings, total, err := h.bookings.ListAll(r.Context(), status, page, pageSize)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondList(w, bookings, total)
}

// HandleApprove moves a pending booking to approved.
func (h *BookingHandler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid booking id")
		return
	}
	booking, err := h.bookings.Approve(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, booking)
}

// HandleReject moves a pending booking to rejected.
func (h *BookingHandler) HandleReject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid booking id")
		return
	}
	booking, err := h.bookings.Reject(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, booking)
}

// HandleAdminCancel deletes any booking on a user's behalf.
func (h *BookingHandler) HandleAdminCancel(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFrom(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing bearer token")
		return
	}
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid booking id")
		return
	}
	if err := h.bookings.Cancel(r.Context(), claims.UID, true, id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// statusFilter reads the optional ?status= query. An unknown status is a 400,
// not an empty result.
func statusFilter(w http.ResponseWriter, r *http.Request) (domain.BookingStatus, bool) {
	raw := r.URL.Query().Get("status")
	if raw == "" {
		return "", true
	}
	status := domain.BookingStatus(raw)
	if !domain.ValidBookingStatus(status) {
		respondError(w, http.StatusBadRequest, "invalid booking status")
		return "", false
	}
	return status, true
}
