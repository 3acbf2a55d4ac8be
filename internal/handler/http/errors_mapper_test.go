package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/inkloth/internal/crypto"
	"github.com/MKhiriev/inkloth/internal/service"
	"github.com/MKhiriev/inkloth/internal/store"
	"github.com/MKhiriev/inkloth/internal/utils"
	"github.com/MKhiriev/inkloth/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "missing token", err: ErrMissingToken, want: http.StatusUnauthorized},
		{name: "wrapped expiry", err: fmt.Errorf("%w: %w", service.ErrUnauthenticated, utils.ErrTokenIsExpired), want: http.StatusUnauthorized},
		{name: "forbidden role", err: fmt.Errorf("%w: role %q", service.ErrForbiddenRole, "User"), want: http.StatusForbidden},
		{name: "forbidden ownership", err: service.ErrForbiddenOwnership, want: http.StatusForbidden},
		{name: "validation", err: fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidEmail), want: http.StatusBadRequest},
		{name: "password too long", err: crypto.ErrPasswordTooLong, want: http.StatusBadRequest},
		{name: "duplicate", err: store.ErrEmailAlreadyExists, want: http.StatusConflict},
		{name: "compare-and-swap lost", err: store.ErrPasswordChanged, want: http.StatusConflict},
		{name: "not found", err: store.ErrBlogNotFound, want: http.StatusNotFound},
		{name: "mail failure", err: service.ErrNotificationFailed, want: http.StatusInternalServerError},
		{name: "unknown", err: errors.New("unexpected"), want: http.StatusInternalServerError},
		{name: "unauthenticated wrapping user not found", err: fmt.Errorf("%w: %w", service.ErrUnauthenticated, store.ErrUserNotFound), want: http.StatusUnauthorized},
		{name: "ownership wrapping blog not found", err: fmt.Errorf("%w: %w", service.ErrForbiddenOwnership, store.ErrBlogNotFound), want: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

// The status of an error carrying several sentinels must not depend on
// lookup order, so repeated calls always agree.
func TestStatusFromError_Stable(t *testing.T) {
	err := fmt.Errorf("%w: %w", service.ErrUnauthenticated, store.ErrUserNotFound)

	for range 1000 {
		if got := statusFromError(err); got != http.StatusUnauthorized {
			t.Fatalf("statusFromError() = %d, want %d", got, http.StatusUnauthorized)
		}
	}
}

func TestMessageFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "specific cause beats generic wrapper",
			err:  fmt.Errorf("%w: %w", service.ErrUnauthenticated, utils.ErrTokenIsExpired),
			want: "Json Web Token is Expired, Try again",
		},
		{
			name: "validator message",
			err:  fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrPasswordTooShort),
			want: "Password should be greater than 8 characters",
		},
		{name: "credentials", err: service.ErrInvalidCredentials, want: "Invalid Email or Password"},
		{name: "unknown falls back to status text", err: errors.New("x"), want: "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, messageFromError(tt.err))
		})
	}
}

func TestRespondError_OverridesMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	respondError(rec, req, service.ErrForbiddenRole, "custom message")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"custom message"}`, rec.Body.String())
}

func TestRespondMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	respondMessage(rec, httptest.NewRequest(http.MethodGet, "/", nil), "done", http.StatusOK)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"done"}`, rec.Body.String())
}
