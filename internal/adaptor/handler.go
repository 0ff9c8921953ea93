package adaptor

import (
	"theatre-api/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth        *AuthHandler
	User        *UserHandler
	Actor       *ActorHandler
	Genre       *GenreHandler
	Play        *PlayHandler
	TheatreHall *TheatreHallHandler
	Performance *PerformanceHandler
	Reservation *ReservationHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(service.Auth, log),
		User:        NewUserHandler(service.User, log),
		Actor:       NewActorHandler(service.Actor, log),
		Genre:       NewGenreHandler(service.Genre, log),
		Play:        NewPlayHandler(service.Play, log),
		TheatreHall: NewTheatreHallHandler(service.TheatreHall, log),
		Performance: NewPerformanceHandler(service.Performance, log),
		Reservation: NewReservationHandler(service.Reservation, log),
	}
}
