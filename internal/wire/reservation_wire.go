package wire

import (
	"theatre-api/internal/adaptor"
	"theatre-api/internal/data/repository"
	"theatre-api/pkg/middleware"
	"theatre-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireReservation routes reservations. Every verified user reads their own
// reservations, writes require staff.
func wireReservation(
	r chi.Router,
	reservationHandler *adaptor.ReservationHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT, log))
		r.Use(middleware.AdminOrReadOnly(repo.User, log))

		r.Get("/api/reservations", reservationHandler.GetReservations)
		r.Post("/api/reservations", reservationHandler.CreateReservation)
		r.Get("/api/reservations/{id}", reservationHandler.GetReservationByID)
		r.Put("/api/reservations/{id}", reservationHandler.UpdateReservation)
		r.Delete("/api/reservations/{id}", reservationHandler.DeleteReservation)
	})
}
