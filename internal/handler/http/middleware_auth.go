package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/inkloth/internal/logger"
	"github.com/MKhiriev/inkloth/internal/service"
	"github.com/MKhiriev/inkloth/internal/store"
	"github.com/MKhiriev/inkloth/internal/utils"
	"github.com/MKhiriev/inkloth/models"
)

// auth is an HTTP middleware that resolves the caller from the session
// token.
//
// The token is taken from the "token" cookie, falling back to an
// "Authorization: Bearer" header. After the token verifies, the user is read
// again from the store so that the identity placed under
// [utils.IdentityCtxKey] carries the current role, not the one in the claims.
//
// The middleware answers 401 Unauthorized when the token is missing,
// malformed, expired or tampered with, or when its user no longer exists.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		raw, err := tokenFromRequest(r)
		if err != nil {
			respondError(w, r, err, "")
			return
		}

		claimed, err := h.services.TokenService.Verify(ctx, raw)
		if err != nil {
			respondError(w, r, err, "")
			return
		}

		user, err := h.services.UserService.GetUser(ctx, claimed.UserID)
		if errors.Is(err, store.ErrUserNotFound) {
			respondError(w, r, fmt.Errorf("%w: %w", service.ErrUnauthenticated, err), "")
			return
		}
		if err != nil {
			respondError(w, r, err, "")
			return
		}

		identity := user.Identity()
		log := logger.FromRequest(r).With().Int64("user_id", identity.UserID).Logger()
		ctx = utils.WithIdentity(log.WithContext(ctx), identity)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// authorizeRoles lets the request through only when the caller holds one of
// roles. It must run after auth.
func (h *Handler) authorizeRoles(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := identityOrAbort(w, r)
			if !ok {
				return
			}

			if err := h.services.AccessGuard.AuthorizeRoles(identity, roles...); err != nil {
				respondError(w, r, err, fmt.Sprintf("Role: %s is not allowed to access this resource", identity.Role))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
