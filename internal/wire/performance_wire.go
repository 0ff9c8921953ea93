package wire

import (
	"theatre-api/internal/adaptor"
	"theatre-api/internal/data/repository"
	"theatre-api/pkg/middleware"
	"theatre-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wirePerformance routes performances. Writes are open to staff and hall
// overseers, hall scoping itself lives in the service.
func wirePerformance(
	r chi.Router,
	performanceHandler *adaptor.PerformanceHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT, log))
		r.Use(middleware.AuthorizedOrReadOnly(repo.User, log))

		r.Get("/api/performances", performanceHandler.GetPerformances)
		r.Post("/api/performances", performanceHandler.CreatePerformance)
		r.Get("/api/performances/{id}", performanceHandler.GetPerformanceByID)
		r.Put("/api/performances/{id}", performanceHandler.UpdatePerformance)
		r.Delete("/api/performances/{id}", performanceHandler.DeletePerformance)
	})
}
