package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"sportnex-backend/internal/domain"
	"sportnex-backend/internal/service"
)

// UserHandler serves profile and account endpoints.
type UserHandler struct {
	users service.UserService
}

func NewUserHandler(users service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// HandleUpsert registers the caller on first sign-in and refreshes the stored
// profile on later calls. The response is the stored user including role.
func (h *UserHandler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFrom(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing bearer token")
		return
	}
	user, err := h.users.Upsert(r.Context(), claims)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// HandleMe returns the caller's stored profile.
func (h *UserHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
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
	respondJSON(w, http.StatusOK, user)
}

// HandleMyRole returns just the caller's role, for cheap client-side gating.
func (h *UserHandler) HandleMyRole(w http.ResponseWriter, r *http.Request) {
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
	respondJSON(w, http.StatusOK, map[string]domain.Role{"role": user.Role})
}

// HandleUpdateProfile patches the caller's editable profile fields.
func (h *UserHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFrom(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing bearer token")
		return
	}
	var update service.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	user, err := h.users.UpdateProfile(r.Context(), claims.UID, update)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// HandleListUsers lists registered users for the admin console, with optional
// name/email search.
func (h *UserHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pageParams(r)
	search := r.URL.Query().Get("search")
	users, total, err := h.users.ListMembers(r.Context(), search, page, pageSize)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondList(w, users, total)
}

// HandleChangeRole sets the stored role for a user.
func (h *UserHandler) HandleChangeRole(w http.ResponseWriter, r *http.Request) {
	uid := mux.Vars(r)["uid"]
	var body struct {
		Role domain.Role `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	user, err := h.users.ChangeRole(r.Context(), uid, body.Role)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// HandleStats returns the aggregate counters for the admin dashboard.
func (h *UserHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.users.Stats(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}
