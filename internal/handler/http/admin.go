package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/inkloth/internal/logger"
	"github.com/MKhiriev/inkloth/internal/store"
	"github.com/MKhiriev/inkloth/models"
)

func userNotFoundMessage(err error, id int64) string {
	if errors.Is(err, store.ErrUserNotFound) {
		return fmt.Sprintf("User does not exist with ID: %d", id)
	}
	return ""
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	page, err := h.services.UserService.ListUsers(r.Context(), pageFromQuery(r))
	if err != nil {
		respondError(w, r, err, "")
		return
	}

	respondJSON(w, r, page, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err, "")
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		respondError(w, r, err, userNotFoundMessage(err, id))
		return
	}

	respondJSON(w, r, models.UserResponse{Success: true, User: user}, http.StatusOK)
}

// updateUser changes profile fields and the role of any user.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err, "")
		return
	}

	var req models.RoleUpdateRequest
	if err = decodeJSON(r, &req); err != nil {
		respondError(w, r, err, "")
		return
	}

	if _, err = h.services.UserService.UpdateUser(r.Context(), id, req); err != nil {
		respondError(w, r, err, userNotFoundMessage(err, id))
		return
	}

	respondJSON(w, r, models.MessageResponse{Success: true}, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err, "")
		return
	}

	if err = h.services.UserService.DeleteUser(r.Context(), id); err != nil {
		respondError(w, r, err, userNotFoundMessage(err, id))
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", id).Msg("user deleted by admin")
	respondMessage(w, r, "User Deleted Successfully!", http.StatusOK)
}
