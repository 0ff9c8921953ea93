package usecase_test

import (
	"context"
	"testing"
	"time"

	"theatre-api/internal/data/entity"
	"theatre-api/internal/data/repository"
	"theatre-api/internal/dto/request"
	"theatre-api/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newPerformanceFixture() (*MockPlayRepo, *MockTheatreHallRepo, *MockPerformanceRepo, *MockTicketRepo, usecase.PerformanceService) {
	playRepo := new(MockPlayRepo)
	hallRepo := new(MockTheatreHallRepo)
	performanceRepo := new(MockPerformanceRepo)
	ticketRepo := new(MockTicketRepo)

	repo := &repository.Repository{
		Play:        playRepo,
		TheatreHall: hallRepo,
		Performance: performanceRepo,
		Ticket:      ticketRepo,
	}

	service := usecase.NewPerformanceService(repo, zap.NewNop())
	return playRepo, hallRepo, performanceRepo, ticketRepo, service
}

func staffUser() *entity.User {
	return &entity.User{
		Base:            entity.Base{ID: uuid.New()},
		Email:           "admin@example.com",
		IsStaff:         true,
		IsEmailVerified: true,
	}
}

func overseerUser(hallID uuid.UUID) *entity.User {
	return &entity.User{
		Base:            entity.Base{ID: uuid.New()},
		Email:           "overseer@example.com",
		IsHallOverseer:  true,
		IsEmailVerified: true,
		TheatreHallID:   &hallID,
	}
}

func TestGetPerformances_AvailabilityComputedFromCapacity(t *testing.T) {
	_, _, performanceRepo, _, service := newPerformanceFixture()

	row := &repository.PerformanceRow{
		Performance: entity.Performance{
			Base:     entity.Base{ID: uuid.New()},
			ShowTime: time.Now().Add(time.Hour),
		},
		PlayTitle:       "Hamlet",
		HallName:        "Main hall",
		HallRows:        10,
		HallSeatsPerRow: 5,
		TicketsSold:     3,
	}
	performanceRepo.On("FindAll", mock.Anything, mock.Anything).
		Return([]*repository.PerformanceRow{row}, nil)

	result, err := service.GetPerformances(context.Background(), staffUser(), repository.PerformanceFilter{})

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, 50, result[0].TheatreHallCapacity)
	assert.Equal(t, 47, result[0].TicketsAvailable)
}

func TestGetPerformances_OverseerScopedToOwnHall(t *testing.T) {
	_, _, performanceRepo, _, service := newPerformanceFixture()

	hallID := uuid.New()
	otherHallID := uuid.New()

	performanceRepo.On("FindAll", mock.Anything,
		mock.MatchedBy(func(f repository.PerformanceFilter) bool {
			return f.HallID != nil && *f.HallID == hallID
		}),
	).Return([]*repository.PerformanceRow{}, nil)

	// Even an explicit filter for another hall is overridden
	_, err := service.GetPerformances(context.Background(), overseerUser(hallID), repository.PerformanceFilter{
		HallID: &otherHallID,
	})

	assert.NoError(t, err)
	performanceRepo.AssertExpectations(t)
}

func TestGetPerformances_StaffUnscoped(t *testing.T) {
	_, _, performanceRepo, _, service := newPerformanceFixture()

	performanceRepo.On("FindAll", mock.Anything,
		mock.MatchedBy(func(f repository.PerformanceFilter) bool { return f.HallID == nil }),
	).Return([]*repository.PerformanceRow{}, nil)

	_, err := service.GetPerformances(context.Background(), staffUser(), repository.PerformanceFilter{})

	assert.NoError(t, err)
	performanceRepo.AssertExpectations(t)
}

func TestGetPerformances_StaffWithAssignedHallScoped(t *testing.T) {
	_, _, performanceRepo, _, service := newPerformanceFixture()

	hallID := uuid.New()
	staff := staffUser()
	staff.TheatreHallID = &hallID

	performanceRepo.On("FindAll", mock.Anything,
		mock.MatchedBy(func(f repository.PerformanceFilter) bool {
			return f.HallID != nil && *f.HallID == hallID
		}),
	).Return([]*repository.PerformanceRow{}, nil)

	// An assigned hall scopes the listing regardless of the staff flag
	_, err := service.GetPerformances(context.Background(), staff, repository.PerformanceFilter{})

	assert.NoError(t, err)
	performanceRepo.AssertExpectations(t)
}

func TestCreatePerformance_StaffWithAssignedHallForeignHallRejected(t *testing.T) {
	playRepo, hallRepo, _, _, service := newPerformanceFixture()

	play := &entity.Play{Base: entity.Base{ID: uuid.New()}, Title: "Hamlet"}
	foreignHall := fixtureHall(10, 10)

	playRepo.On("FindByID", mock.Anything, play.ID).Return(play, nil)
	hallRepo.On("FindByID", mock.Anything, foreignHall.ID).Return(foreignHall, nil)

	ownHallID := uuid.New()
	staff := staffUser()
	staff.TheatreHallID = &ownHallID

	_, err := service.CreatePerformance(context.Background(), staff, &request.PerformanceRequest{
		PlayID:        play.ID.String(),
		TheatreHallID: foreignHall.ID.String(),
		ShowTime:      time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "outside your scope")
}

func TestCreatePerformance_Success(t *testing.T) {
	playRepo, hallRepo, performanceRepo, _, service := newPerformanceFixture()

	play := &entity.Play{Base: entity.Base{ID: uuid.New()}, Title: "Hamlet"}
	hall := fixtureHall(10, 10)

	playRepo.On("FindByID", mock.Anything, play.ID).Return(play, nil)
	hallRepo.On("FindByID", mock.Anything, hall.ID).Return(hall, nil)
	performanceRepo.On("Create", mock.Anything,
		mock.MatchedBy(func(p *entity.Performance) bool {
			return p.PlayID == play.ID && p.TheatreHallID == hall.ID
		}),
	).Return(nil)

	resp, err := service.CreatePerformance(context.Background(), staffUser(), &request.PerformanceRequest{
		PlayID:        play.ID.String(),
		TheatreHallID: hall.ID.String(),
		ShowTime:      time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	})

	assert.NoError(t, err)
	assert.Equal(t, play.ID.String(), resp.PlayID)
	performanceRepo.AssertExpectations(t)
}

func TestCreatePerformance_InvalidShowTime(t *testing.T) {
	_, _, _, _, service := newPerformanceFixture()

	_, err := service.CreatePerformance(context.Background(), staffUser(), &request.PerformanceRequest{
		PlayID:        uuid.New().String(),
		TheatreHallID: uuid.New().String(),
		ShowTime:      "next tuesday",
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid show time")
}

func TestCreatePerformance_OverseerForeignHallRejected(t *testing.T) {
	playRepo, hallRepo, _, _, service := newPerformanceFixture()

	play := &entity.Play{Base: entity.Base{ID: uuid.New()}, Title: "Hamlet"}
	foreignHall := fixtureHall(10, 10)

	playRepo.On("FindByID", mock.Anything, play.ID).Return(play, nil)
	hallRepo.On("FindByID", mock.Anything, foreignHall.ID).Return(foreignHall, nil)

	overseer := overseerUser(uuid.New())

	_, err := service.CreatePerformance(context.Background(), overseer, &request.PerformanceRequest{
		PlayID:        play.ID.String(),
		TheatreHallID: foreignHall.ID.String(),
		ShowTime:      time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "outside your scope")
}

func TestUpdatePerformance_OverseerCannotMoveToForeignHall(t *testing.T) {
	playRepo, hallRepo, performanceRepo, _, service := newPerformanceFixture()

	ownHallID := uuid.New()
	overseer := overseerUser(ownHallID)

	play := &entity.Play{Base: entity.Base{ID: uuid.New()}, Title: "Hamlet"}
	foreignHall := fixtureHall(10, 10)
	performance := &entity.Performance{
		Base:          entity.Base{ID: uuid.New()},
		PlayID:        play.ID,
		TheatreHallID: ownHallID,
		ShowTime:      time.Now().Add(time.Hour),
	}

	performanceRepo.On("FindByID", mock.Anything, performance.ID).Return(performance, nil)
	playRepo.On("FindByID", mock.Anything, play.ID).Return(play, nil)
	hallRepo.On("FindByID", mock.Anything, foreignHall.ID).Return(foreignHall, nil)

	_, err := service.UpdatePerformance(context.Background(), overseer, performance.ID, &request.PerformanceRequest{
		PlayID:        play.ID.String(),
		TheatreHallID: foreignHall.ID.String(),
		ShowTime:      time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "outside your scope")
}

func TestDeletePerformance_OverseerForeignHallRejected(t *testing.T) {
	_, _, performanceRepo, _, service := newPerformanceFixture()

	performance := &entity.Performance{
		Base:          entity.Base{ID: uuid.New()},
		PlayID:        uuid.New(),
		TheatreHallID: uuid.New(),
		ShowTime:      time.Now().Add(time.Hour),
	}
	performanceRepo.On("FindByID", mock.Anything, performance.ID).Return(performance, nil)

	err := service.DeletePerformance(context.Background(), overseerUser(uuid.New()), performance.ID)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "outside your scope")
}

func TestGetPerformanceByID_DetailCarriesTakenPlaces(t *testing.T) {
	playRepo, hallRepo, performanceRepo, ticketRepo, service := newPerformanceFixture()

	play := &entity.Play{Base: entity.Base{ID: uuid.New()}, Title: "Hamlet", Description: "The prince of Denmark"}
	hall := fixtureHall(8, 8)
	performance := &entity.Performance{
		Base:          entity.Base{ID: uuid.New()},
		PlayID:        play.ID,
		TheatreHallID: hall.ID,
		ShowTime:      time.Now().Add(time.Hour),
	}

	performanceRepo.On("FindByID", mock.Anything, performance.ID).Return(performance, nil)
	playRepo.On("FindByID", mock.Anything, play.ID).Return(play, nil)
	playRepo.On("FindGenresByPlayID", mock.Anything, play.ID).Return([]*entity.Genre{
		{Base: entity.Base{ID: uuid.New()}, Name: "Drama"},
	}, nil)
	playRepo.On("FindActorsByPlayID", mock.Anything, play.ID).Return([]*entity.Actor{}, nil)
	hallRepo.On("FindByID", mock.Anything, hall.ID).Return(hall, nil)
	ticketRepo.On("FindTakenPlaces", mock.Anything, performance.ID).Return([]repository.SeatPlace{
		{Row: 1, Seat: 1},
		{Row: 2, Seat: 5},
	}, nil)

	resp, err := service.GetPerformanceByID(context.Background(), performance.ID)

	assert.NoError(t, err)
	assert.Equal(t, "Hamlet", resp.Play.Title)
	assert.Equal(t, "Drama", resp.Play.Genres[0].Name)
	assert.Len(t, resp.TakenPlaces, 2)
	assert.Equal(t, 2, resp.TakenPlaces[1].Row)
}
