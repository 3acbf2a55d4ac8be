package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/inkloth/internal/logger"
	"github.com/MKhiriev/inkloth/internal/utils"
	"github.com/MKhiriev/inkloth/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err, "")
		return
	}

	user, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		respondError(w, r, err, "")
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", user.UserID).Msg("user registered")
	h.sendToken(w, r, user, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err, "")
		return
	}

	user, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		respondError(w, r, err, "")
		return
	}

	h.sendToken(w, r, user, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	clearTokenCookie(w)
	respondMessage(w, r, "Logged Out", http.StatusOK)
}

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ForgotPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err, "")
		return
	}

	if err := h.services.PasswordResetService.RequestReset(r.Context(), req.Email, utils.RequestBaseURL(r)); err != nil {
		respondError(w, r, err, "")
		return
	}

	respondMessage(w, r, fmt.Sprintf("Email sent to %s successfully", models.NormalizeEmail(req.Email)), http.StatusOK)
}

// resetPassword consumes the secret from the path and logs the user in.
func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err, "")
		return
	}

	user, err := h.services.PasswordResetService.ResetPassword(r.Context(), chi.URLParam(r, "token"), req)
	if err != nil {
		respondError(w, r, err, "")
		return
	}

	h.sendToken(w, r, user, http.StatusOK)
}
