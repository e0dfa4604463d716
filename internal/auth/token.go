package auth

import (
	"net/http"
	"strings"
)

// ExtractAccessToken pulls the bearer credential from the request: the
// access_token cookie is preferred, the Authorization header is the fallback.
func ExtractAccessToken(r *http.Request) string {
	if cookie, err := r.Cookie("access_token"); err == nil {
		if cookie.Value != "" {
			return cookie.Value
		}
	}

	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}
