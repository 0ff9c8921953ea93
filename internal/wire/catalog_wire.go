package wire

import (
	"theatre-api/internal/adaptor"
	"theatre-api/internal/data/repository"
	"theatre-api/pkg/middleware"
	"theatre-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireCatalog routes actors, genres, plays and theatre halls. Reads for any
// verified user, writes for staff only.
func wireCatalog(
	r chi.Router,
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT, log))
		r.Use(middleware.AdminOrReadOnly(repo.User, log))

		r.Get("/api/actors", handler.Actor.GetActors)
		r.Post("/api/actors", handler.Actor.CreateActor)
		r.Get("/api/actors/{id}", handler.Actor.GetActorByID)

		r.Get("/api/genres", handler.Genre.GetGenres)
		r.Post("/api/genres", handler.Genre.CreateGenre)
		r.Get("/api/genres/{id}", handler.Genre.GetGenreByID)

		r.Get("/api/plays", handler.Play.GetPlays)
		r.Post("/api/plays", handler.Play.CreatePlay)
		r.Get("/api/plays/{id}", handler.Play.GetPlayByID)
		r.Post("/api/plays/{id}/upload-image", handler.Play.UploadImage)

		r.Get("/api/theatre_halls", handler.TheatreHall.GetTheatreHalls)
		r.Post("/api/theatre_halls", handler.TheatreHall.CreateTheatreHall)
		r.Get("/api/theatre_halls/{id}", handler.TheatreHall.GetTheatreHallByID)
	})
}
