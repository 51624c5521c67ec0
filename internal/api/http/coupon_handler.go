package http

import (
	"encoding/json"
	"net/http"

	"sportnex-backend/internal/domain"
	"sportnex-backend/internal/service"
)

// CouponHandler serves the admin coupon CRUD.
type CouponHandler struct {
	coupons service.CouponService
}

func NewCouponHandler(coupons service.CouponService) *CouponHandler {
	return &CouponHandler{coupons: coupons}
}

func (h *CouponHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pageParams(r)
	coupons, total, err := h.coupons.List(r.Context(), page, pageSize)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondList(w, coupons, total)
}

func (h *CouponHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var coupon domain.Coupon
	if err := json.NewDecoder(r.Body).Decode(&coupon); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.coupons.Create(r.Context(), &coupon); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, coupon)
}

func (h *CouponHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid coupon id")
		return
	}
	var coupon domain.Coupon
	if err := json.NewDecoder(r.Body).Decode(&coupon); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	coupon.ID = id
	if err := h.coupons.Update(r.Context(), &coupon); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, coupon)
}

func (h *CouponHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid coupon id")
		return
	}
	if err := h.coupons.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
