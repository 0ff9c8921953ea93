package wire

import (
	"theatre-api/internal/adaptor"
	"theatre-api/pkg/middleware"
	"theatre-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT, log))

		r.Get("/api/me", userHandler.GetMe)
		r.Put("/api/me", userHandler.UpdateMe)
	})
}
