package models

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("admin").Valid())
	assert.False(t, Role("").Valid())
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "alice@example.com", NormalizeEmail("  Alice@Example.COM "))
}

// TestUser_JSONHidesSecrets verifies that the password digest and the reset
// challenge never appear in serialized output.
func TestUser_JSONHidesSecrets(t *testing.T) {
	hash := "deadbeef"
	expire := time.Now()
	u := User{
		UserID:           7,
		Email:            "alice@example.com",
		PasswordHash:     "$2a$10$secret",
		Role:             RoleUser,
		ResetTokenHash:   &hash,
		ResetTokenExpire: &expire,
	}

	b, err := json.Marshal(u)
	require.NoError(t, err)

	s := string(b)
	assert.NotContains(t, s, "$2a$10$secret")
	assert.NotContains(t, s, "deadbeef")
	assert.Contains(t, s, `"role":"User"`)
	assert.Contains(t, s, `"_id":7`)
}

func TestPage(t *testing.T) {
	tests := []struct {
		name       string
		page       Page
		total      int64
		wantOffset int64
		wantPages  int64
	}{
		{name: "first page", page: Page{Number: 1, Limit: 10}, total: 25, wantOffset: 0, wantPages: 3},
		{name: "third page", page: Page{Number: 3, Limit: 2}, total: 5, wantOffset: 4, wantPages: 3},
		{name: "exact division", page: Page{Number: 2, Limit: 5}, total: 10, wantOffset: 5, wantPages: 2},
		{name: "zero page number", page: Page{Number: 0, Limit: 5}, total: 0, wantOffset: 0, wantPages: 0},
		{name: "zero limit", page: Page{Number: 1, Limit: 0}, total: 10, wantOffset: 0, wantPages: 0},
		{name: "huge page number saturates", page: Page{Number: math.MaxInt, Limit: MaxPageLimit}, total: 10, wantOffset: math.MaxInt64, wantPages: 1},
		{name: "negative limit", page: Page{Number: 3, Limit: -5}, total: 10, wantOffset: 0, wantPages: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantOffset, tt.page.Offset())
			assert.Equal(t, tt.wantPages, tt.page.TotalPages(tt.total))
		})
	}
}

func TestRoleUpdateRequest_Update_NormalizesEmail(t *testing.T) {
	email := " Bob@Example.com"
	role := RoleAdmin
	req := RoleUpdateRequest{
		ProfileUpdateRequest: ProfileUpdateRequest{Email: &email},
		Role:                 &role,
	}

	update := req.Update()
	require.NotNil(t, update.Email)
	assert.Equal(t, "bob@example.com", *update.Email)
	assert.Equal(t, &role, update.Role)
	assert.False(t, update.Empty())
	assert.True(t, UserUpdate{}.Empty())
}

func TestNewAppBuildInfo_DefaultsToNA(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "", "")
	assert.Equal(t, "1.0.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Contains(t, info.String(), "Build version: 1.0.0")
}
