package wire

import (
	"net/http"

	"theatre-api/internal/adaptor"
	"theatre-api/internal/data/repository"
	"theatre-api/internal/usecase"
	"theatre-api/pkg/mailer"
	"theatre-api/pkg/middleware"
	"theatre-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// App holds the wired router.
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and routes.
func Wiring(
	repo *repository.Repository,
	config *utils.Config,
	mail mailer.Mailer,
	rdb *redis.Client,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, config, mail, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, rdb, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	rdb *redis.Client,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth, config, rdb, logger)
	wireUser(r, handler.User, config, logger)
	wireCatalog(r, handler, repo, config, logger)
	wirePerformance(r, handler.Performance, repo, config, logger)
	wireReservation(r, handler.Reservation, repo, config, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
