package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/inkloth/internal/service"
	"github.com/MKhiriev/inkloth/internal/store"
	"github.com/MKhiriev/inkloth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var aliceIdentity = alice.Identity()

func TestMe_Success(t *testing.T) {
	h := newTestHandler(t, &service.Services{
		UserService: &mockUserService{
			getUserFn: func(_ context.Context, userID int64) (models.User, error) {
				assert.Equal(t, alice.UserID, userID)
				return alice, nil
			},
		},
	})
	req := withIdentity(httptest.NewRequest(http.MethodGet, "/api/v1/me", nil), aliceIdentity)
	rec := httptest.NewRecorder()

	h.me(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "alice", resp.User.UserName)
}

func TestMe_NoIdentity(t *testing.T) {
	h := newTestHandler(t, &service.Services{})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	rec := httptest.NewRecorder()

	h.me(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Please Login to access this resource", decodeMessage(t, rec).Message)
}

func TestChangePassword(t *testing.T) {
	tests := []struct {
		name        string
		serviceErr  error
		wantStatus  int
		wantMessage string
	}{
		{name: "success", wantStatus: http.StatusOK},
		{
			name:        "wrong old password",
			serviceErr:  service.ErrOldPasswordIncorrect,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Old Password is incorrect",
		},
		{
			name:        "confirmation differs",
			serviceErr:  service.ErrPasswordMismatch,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Password does not match!",
		},
		{
			name:        "changed concurrently",
			serviceErr:  store.ErrPasswordChanged,
			wantStatus:  http.StatusConflict,
			wantMessage: "Password was changed meanwhile, Try again",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID int64
			h := newTestHandler(t, &service.Services{
				AuthService: &mockAuthService{
					changePasswordFn: func(_ context.Context, userID int64, _ models.ChangePasswordRequest) (models.User, error) {
						gotID = userID
						if tt.serviceErr != nil {
							return models.User{}, tt.serviceErr
						}
						return alice, nil
					},
				},
			})
			body := jsonBody(t, models.ChangePasswordRequest{OldPassword: "old-password", NewPassword: "new-password", ConfirmPassword: "new-password"})
			req := withIdentity(httptest.NewRequest(http.MethodPut, "/api/v1/password/update", body), aliceIdentity)
			rec := httptest.NewRecorder()

			h.changePassword(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, alice.UserID, gotID)
			if tt.serviceErr == nil {
				require.NotNil(t, tokenCookie(rec))
				assert.Equal(t, "Bearer "+testSignedToken, rec.Header().Get("Authorization"))
				return
			}
			assert.Equal(t, tt.wantMessage, decodeMessage(t, rec).Message)
		})
	}
}

func TestUpdateProfile_Success(t *testing.T) {
	var got models.ProfileUpdateRequest
	h := newTestHandler(t, &service.Services{
		AuthService: &mockAuthService{
			updateProfileFn: func(_ context.Context, _ int64, req models.ProfileUpdateRequest) (models.User, error) {
				got = req
				return alice, nil
			},
		},
	})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/me/update", strings.NewReader(`{"firstName":"Alicia"}`))
	req = withIdentity(req, aliceIdentity)
	rec := httptest.NewRecorder()

	h.updateProfile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got.FirstName)
	assert.Equal(t, "Alicia", *got.FirstName)
	assert.Nil(t, got.Email)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestUpdateProfile_RoleIsRejected(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: &mockAuthService{}})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/me/update", strings.NewReader(`{"role":"Admin"}`))
	req = withIdentity(req, aliceIdentity)
	rec := httptest.NewRecorder()

	h.updateProfile(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateProfile_DuplicateUserName(t *testing.T) {
	h := newTestHandler(t, &service.Services{
		AuthService: &mockAuthService{
			updateProfileFn: func(_ context.Context, _ int64, _ models.ProfileUpdateRequest) (models.User, error) {
				return models.User{}, store.ErrUserNameAlreadyExists
			},
		},
	})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/me/update", strings.NewReader(`{"userName":"bob"}`))
	req = withIdentity(req, aliceIdentity)
	rec := httptest.NewRecorder()

	h.updateProfile(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Duplicate userName Entered", decodeMessage(t, rec).Message)
}
