// Package authz decides whether the identity attached to a request may mutate
// a given resource. The check is a plain subject-id comparison: no roles, no
// delegation, no admin override.
package authz

import (
	"context"

	"talentai-backend/internal/domain"
	"talentai-backend/pkg/apperror"
)

// Identity is the request-scoped identity resolved by the auth middleware.
type Identity struct {
	ID   string
	Name string
}

// FromContext extracts the identity the auth middleware attached to the
// request context. ok is false when the request never passed the middleware
// (public routes, or a misconfigured route wiring).
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || id == "" {
		return Identity{}, false
	}
	name, _ := ctx.Value(domain.KeyUserName).(string)
	return Identity{ID: id, Name: name}, true
}

// Authorize allows the mutation iff the context identity's subject id equals
// ownerID. Missing identity fails closed with 403, matching the upstream
// behavior for handlers reached without an authenticated state.
func Authorize(ctx context.Context, ownerID, denyMsg string) error {
	identity, ok := FromContext(ctx)
	if !ok {
		return apperror.Forbidden("Not authenticated or invalid token.")
	}
	if identity.ID != ownerID {
		return apperror.Forbidden(denyMsg)
	}
	return nil
}
