package wire

import (
	"theatre-api/internal/adaptor"
	"theatre-api/pkg/middleware"
	"theatre-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	config *utils.Config,
	rdb *redis.Client,
	log *zap.Logger,
) {
	// Public auth endpoints, rate limited when redis is configured
	r.Group(func(r chi.Router) {
		if config.RateLimit.Enabled && rdb != nil {
			r.Use(middleware.RateLimit(config.RateLimit, rdb, log))
		}

		r.Post("/api/register", authHandler.Register)
		r.Post("/api/tokens", authHandler.ObtainTokens)
		r.Post("/api/tokens/refresh", authHandler.RefreshToken)
		r.Post("/api/tokens/revoke", authHandler.RevokeToken)
		r.Post("/api/tokens/verify", authHandler.VerifyToken)
	})

	// Email verification requires a logged-in user but not a verified one
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT, log))

		r.Post("/api/verify-email", authHandler.SendVerificationCode)
		r.Put("/api/verify-email", authHandler.ConfirmVerificationCode)
	})
}
