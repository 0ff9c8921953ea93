package usecase_test

import (
	"context"
	"testing"
	"time"

	"theatre-api/internal/data/entity"
	"theatre-api/internal/data/repository"
	"theatre-api/internal/usecase"
	"theatre-api/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newPlayFixture() (*MockPlayRepo, *MockPerformanceRepo, usecase.PlayService) {
	playRepo := new(MockPlayRepo)
	performanceRepo := new(MockPerformanceRepo)

	repo := &repository.Repository{
		Play:        playRepo,
		Performance: performanceRepo,
	}

	service := usecase.NewPlayService(repo, &utils.Config{}, zap.NewNop())
	return playRepo, performanceRepo, service
}

func TestGetPlays_ListCarriesNamesAndPerformances(t *testing.T) {
	playRepo, performanceRepo, service := newPlayFixture()

	play := &entity.Play{Base: entity.Base{ID: uuid.New()}, Title: "Hamlet", Description: "The prince of Denmark"}

	playRepo.On("FindAll", mock.Anything, mock.Anything).Return([]*entity.Play{play}, nil)
	playRepo.On("FindGenresByPlayID", mock.Anything, play.ID).Return([]*entity.Genre{
		{Base: entity.Base{ID: uuid.New()}, Name: "Drama"},
	}, nil)
	playRepo.On("FindActorsByPlayID", mock.Anything, play.ID).Return([]*entity.Actor{
		{Base: entity.Base{ID: uuid.New()}, FirstName: "Richard", LastName: "Burbage"},
	}, nil)
	performanceRepo.On("FindAll", mock.Anything,
		mock.MatchedBy(func(f repository.PerformanceFilter) bool {
			return f.PlayID != nil && *f.PlayID == play.ID
		}),
	).Return([]*repository.PerformanceRow{
		{
			Performance: entity.Performance{
				Base:     entity.Base{ID: uuid.New()},
				PlayID:   play.ID,
				ShowTime: time.Now().Add(time.Hour),
			},
			PlayTitle:       "Hamlet",
			HallName:        "Main hall",
			HallRows:        10,
			HallSeatsPerRow: 5,
			TicketsSold:     3,
		},
	}, nil)

	result, err := service.GetPlays(context.Background(), repository.PlayFilter{})

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, []string{"Drama"}, result[0].Genres)
	assert.Equal(t, []string{"Richard Burbage"}, result[0].Actors)
	assert.Len(t, result[0].Performances, 1)
	assert.Equal(t, "Main hall", result[0].Performances[0].TheatreHallName)
	assert.Equal(t, 47, result[0].Performances[0].TicketsAvailable)
	performanceRepo.AssertExpectations(t)
}

func TestGetPlays_NoPerformancesScheduled(t *testing.T) {
	playRepo, performanceRepo, service := newPlayFixture()

	play := &entity.Play{Base: entity.Base{ID: uuid.New()}, Title: "Macbeth"}

	playRepo.On("FindAll", mock.Anything, mock.Anything).Return([]*entity.Play{play}, nil)
	playRepo.On("FindGenresByPlayID", mock.Anything, play.ID).Return([]*entity.Genre{}, nil)
	playRepo.On("FindActorsByPlayID", mock.Anything, play.ID).Return([]*entity.Actor{}, nil)
	performanceRepo.On("FindAll", mock.Anything, mock.Anything).Return([]*repository.PerformanceRow{}, nil)

	result, err := service.GetPlays(context.Background(), repository.PlayFilter{})

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Empty(t, result[0].Performances)
}
