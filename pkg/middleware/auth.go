package middleware

import (
	"net/http"
	"strings"

	"theatre-api/pkg/utils"

	"go.uber.org/zap"
)

// AuthJWT validates the bearer access token and puts the user ID into the
// request context.
func AuthJWT(jwtConfig utils.JWTConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			userID, err := utils.ParseAccessToken(jwtConfig.Secret, parts[1])
			if err != nil {
				logger.Warn("Invalid access token", zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := utils.SetUserContext(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
