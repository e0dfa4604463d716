package utils

import (
	"context"

	"ecowear-be/internal/user"
)

type contextKey string

const identityKey contextKey = "identity"

// SetUserContext stores the resolved caller identity (set by the auth
// middleware). Handlers read it back once and pass it explicitly into
// service calls.
func SetUserContext(ctx context.Context, id int, role user.Role) context.Context {
	return context.WithValue(ctx, identityKey, user.Identity{UserID: id, Role: role})
}

// IdentityFromContext retrieves the caller identity safely.
func IdentityFromContext(ctx context.Context) (user.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(user.Identity)
	return identity, ok
}
