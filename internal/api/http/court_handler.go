package http

import (
	"encoding/json"
	"net/http"

	"sportnex-backend/internal/domain"
	"sportnex-backend/internal/service"
)

// CourtHandler serves the court catalog and its admin CRUD.
type CourtHandler struct {
	courts service.CourtService
}

func NewCourtHandler(courts service.CourtService) *CourtHandler {
	return &CourtHandler{courts: courts}
}

// HandleList returns a page of the court catalog.
func (h *CourtHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pageParams(r)
	courts, total, err := h.courts.List(r.Context(), page, pageSize)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondList(w, courts, total)
}

// HandleGet returns one court by id.
func (h *CourtHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid court id")
		return
	}
	court, err := h.courts.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, court)
}

// HandleCreate adds a new court.
func (h *CourtHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var court domain.Court
	if err := json.NewDecoder(r.Body).Decode(&court); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.courts.Create(r.Context(), &court); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, court)
}

// HandleUpdate replaces a court's attributes.
func (h *CourtHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid court id")
		return
	}
	var court domain.Court
	if err := json.NewDecoder(r.Body).Decode(&court); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	court.ID = id
	if err := h.courts.Update(r.Context(), &court); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, court)
}

// HandleDelete removes a court.
func (h *CourtHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid court id")
		return
	}
	if err := h.courts.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
