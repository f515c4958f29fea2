package middlewares

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Hafizfauzi02/fowra-backend/internal/logger"
)

// AdminAuthMiddleware gates the reporting endpoints behind a separate
// operator bearer token. The admin queries themselves read across all users;
// this capability check is the trust boundary in front of them.
func AdminAuthMiddleware(adminToken string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				logger.Log.Infow("admin authorization failed", "reason", "missing bearer token")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(errorResponse{
					Message: "No auth token found, access denied",
				})
				return
			}

			if subtle.ConstantTimeCompare([]byte(parts[1]), []byte(adminToken)) != 1 {
				logger.Log.Infow("admin authorization failed", "reason", "token mismatch")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(errorResponse{
					Message: "Token is invalid",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
