package rest

import (
	"net/http"

	"ecowear-be/internal/apperr"
	"ecowear-be/internal/user"
	"ecowear-be/internal/utils"
)

// callerIdentity pulls the authenticated caller out of the request context.
// Handlers mounted behind RequireAuth can rely on it being present; the
// error branch only fires if a route is miswired.
func callerIdentity(r *http.Request) (user.Identity, error) {
	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		return user.Identity{}, apperr.Unauthorized("no token, authorization denied")
	}
	return identity, nil
}
