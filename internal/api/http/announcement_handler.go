package http

import (
	"encoding/json"
	"net/http"

	"sportnex-backend/internal/domain"
	"sportnex-backend/internal/service"
)

// AnnouncementHandler serves audience-filtered announcements and their admin
// CRUD.
type AnnouncementHandler struct {
	announcements service.AnnouncementService
	users         service.UserService
}

func NewAnnouncementHandler(announcements service.AnnouncementService, users service.UserService) *AnnouncementHandler {
	return &AnnouncementHandler{announcements: announcements, users: users}
}

// HandleListFor returns the announcements visible to the caller's role.
func (h *AnnouncementHandler) HandleListFor(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFrom(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing bearer token")
		return
	}
	user, err := h.users.GetByUID(r.Context(), claims.UID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	page, pageSize := pageParams(r)
	items, total, err := h.announcements.ListFor(r.Context(), user.Role, page, pageSize)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondList(w, items, total)
}

// HandleList returns all announcements regardless of audience.
func (h *AnnouncementHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pageParams(r)
	items, total, err := h.announcements.List(r.Context(), page, pageSize)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondList(w, items, total)
}

func (h *AnnouncementHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var a domain.Announcement
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.announcements.Create(r.Context(), &a); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, a)
}

func (h *AnnouncementHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid announcement id")
		return
	}
	var a domain.Announcement
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	a.ID = id
	if err := h.announcements.Update(r.Context(), &a); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, a)
}

func (h *AnnouncementHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid announcement id")
		return
	}
	if err := h.announcements.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
