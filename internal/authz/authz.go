// Package authz implements the ownership predicate applied before any
// mutation of a post, reply, or user profile.
package authz

import (
	"ripple/internal/models"
)

// CanMutate reports whether the principal may mutate a resource owned by ownerID.
func CanMutate(principalID, ownerID uint) bool {
	return principalID == ownerID
}

// RequireOwner returns a FORBIDDEN error unless the principal owns the resource.
// A violation is never silently ignored.
func RequireOwner(principalID, ownerID uint, action string) error {
	if CanMutate(principalID, ownerID) {
		return nil
	}
	return models.NewForbiddenError("You can only " + action + " your own content")
}
