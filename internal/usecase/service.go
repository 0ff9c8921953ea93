package usecase

import (
	"theatre-api/internal/data/repository"
	"theatre-api/pkg/mailer"
	"theatre-api/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth        AuthService
	User        UserService
	Actor       ActorService
	Genre       GenreService
	Play        PlayService
	TheatreHall TheatreHallService
	Performance PerformanceService
	Reservation ReservationService
}

func NewService(repo *repository.Repository, config *utils.Config, mail mailer.Mailer, log *zap.Logger) *Service {
	return &Service{
		Auth:        NewAuthService(repo, config, mail, log),
		User:        NewUserService(repo.User, log),
		Actor:       NewActorService(repo.Actor, log),
		Genre:       NewGenreService(repo.Genre, log),
		Play:        NewPlayService(repo, config, log),
		TheatreHall: NewTheatreHallService(repo.TheatreHall, log),
		Performance: NewPerformanceService(repo, log),
		Reservation: NewReservationService(repo, log),
	}
}
