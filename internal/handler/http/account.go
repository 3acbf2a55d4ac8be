package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/inkloth/internal/service"
	"github.com/MKhiriev/inkloth/internal/utils"
	"github.com/MKhiriev/inkloth/models"
)

// identityOrAbort returns the caller placed in the context by auth. Routes
// reaching it without one are wired wrong; the caller is treated as
// unauthenticated.
func identityOrAbort(w http.ResponseWriter, r *http.Request) (models.Identity, bool) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		respondError(w, r, service.ErrUnauthenticated, "")
	}
	return identity, ok
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityOrAbort(w, r)
	if !ok {
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), identity.UserID)
	if err != nil {
		respondError(w, r, err, "")
		return
	}

	respondJSON(w, r, models.UserResponse{Success: true, User: user}, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityOrAbort(w, r)
	if !ok {
		return
	}

	var req models.ChangePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err, "")
		return
	}

	user, err := h.services.AuthService.ChangePassword(r.Context(), identity.UserID, req)
	if err != nil {
		message := ""
		if errors.Is(err, service.ErrPasswordMismatch) {
			message = "Password does not match!"
		}
		respondError(w, r, err, message)
		return
	}

	h.sendToken(w, r, user, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityOrAbort(w, r)
	if !ok {
		return
	}

	var req models.ProfileUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err, "")
		return
	}

	if _, err := h.services.AuthService.UpdateProfile(r.Context(), identity.UserID, req); err != nil {
		respondError(w, r, err, "")
		return
	}

	respondJSON(w, r, models.MessageResponse{Success: true}, http.StatusOK)
}
