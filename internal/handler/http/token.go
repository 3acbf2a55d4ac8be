package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/inkloth/internal/logger"
	"github.com/MKhiriev/inkloth/internal/utils"
	"github.com/MKhiriev/inkloth/models"
)

const tokenCookieName = "token"

// sendToken issues a session token for user and returns it three ways: as an
// HTTP-only cookie, as a bearer Authorization header and in the JSON body.
func (h *Handler) sendToken(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	token, err := h.services.TokenService.Issue(r.Context(), user)
	if err != nil {
		respondError(w, r, err, "")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookieName,
		Value:    token.SignedString,
		Path:     "/",
		Expires:  time.Now().Add(h.cookieExpire),
		HttpOnly: true,
	})
	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))

	logger.FromRequest(r).Debug().Int64("user_id", user.UserID).Msg("session token issued")
	respondJSON(w, r, models.AuthResponse{Success: true, User: user, Token: token.SignedString}, status)
}

func clearTokenCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now(),
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// tokenFromRequest prefers the cookie over the Authorization header.
func tokenFromRequest(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(tokenCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrMissingToken
	}

	token, err := utils.ParseBearerToken(header)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err)
	}
	return token, nil
}
