package middleware

import (
	"encoding/json"
	"net/http"

	"ecowear-be/internal/apperr"
	"ecowear-be/internal/auth"
	"ecowear-be/internal/user"
	"ecowear-be/internal/utils"
)

// RequireAuth verifies the bearer credential and places the caller identity
// into the request context. Without a valid token the request never reaches
// the handler.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := auth.ExtractAccessToken(r)
		if tokenStr == "" {
			writeUnauthorized(w, "no token, authorization denied")
			return
		}

		claims, err := user.ParseJWT(tokenStr)
		if err != nil {
			writeUnauthorized(w, "token is not valid")
			return
		}

		role, ok := user.ParseRole(claims.Role)
		if !ok {
			writeUnauthorized(w, "token is not valid")
			return
		}

		ctx := utils.SetUserContext(r.Context(), claims.UserID, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]string{
			"code":    string(apperr.KindUnauthorized),
			"message": message,
		},
	})
}
