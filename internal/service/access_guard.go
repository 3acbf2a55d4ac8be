package service

import (
	"fmt"
	"slices"

	"github.com/MKhiriev/inkloth/models"
)

type accessGuard struct{}

// NewAccessGuard returns the role and ownership policy. Admins get no
// ownership bypass.
func NewAccessGuard() AccessGuard {
	return accessGuard{}
}

func (accessGuard) AuthorizeRoles(identity models.Identity, allowed ...models.Role) error {
	if slices.Contains(allowed, identity.Role) {
		return nil
	}

	recordAuthEvent(eventAccessDenied, ErrForbiddenRole)
	return fmt.Errorf("%w: role %q", ErrForbiddenRole, identity.Role)
}

func (accessGuard) AuthorizeOwnership(identity models.Identity, ownerID int64) error {
	if identity.UserID != 0 && identity.UserID == ownerID {
		return nil
	}

	recordAuthEvent(eventAccessDenied, ErrForbiddenOwnership)
	return ErrForbiddenOwnership
}
