package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the authenticated caller resolved by the auth middleware and
// stored in the request context.
type Identity struct {
	UserID int64
	Role   Role
}

// Claims is the claim set carried by a session token.
//
// Role is informational: the authorization guard always re-reads the current
// role from the credential store.
type Claims struct {
	jwt.RegisteredClaims

	Role Role `json:"role,omitempty"`
}

// Token wraps a signed session token.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) as sent in the cookie, the Authorization header
// and the response body.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// Claims is the decoded claim set.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the subject claim parsed as int64.
	UserID int64 `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" claim.
//
// Returns an error if the subject claim is missing, empty, or cannot be
// converted to int64.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.Claims.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
