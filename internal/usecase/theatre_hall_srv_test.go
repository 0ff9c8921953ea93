package usecase_test

import (
	"context"
	"testing"

	"theatre-api/internal/data/entity"
	"theatre-api/internal/dto/request"
	"theatre-api/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestGetTheatreHalls_ListsAllWithCapacity(t *testing.T) {
	hallRepo := new(MockTheatreHallRepo)
	service := usecase.NewTheatreHallService(hallRepo, zap.NewNop())

	halls := []*entity.TheatreHall{
		{Base: entity.Base{ID: uuid.New()}, Name: "Main hall", Rows: 10, SeatsPerRow: 12},
		{Base: entity.Base{ID: uuid.New()}, Name: "Studio", Rows: 4, SeatsPerRow: 6},
	}
	hallRepo.On("FindAll", mock.Anything).Return(halls, nil)

	result, err := service.GetTheatreHalls(context.Background())

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "Main hall", result[0].Name)
	assert.Equal(t, 120, result[0].Capacity)
	assert.Equal(t, "Studio", result[1].Name)
	assert.Equal(t, 24, result[1].Capacity)
}

func TestGetTheatreHalls_Empty(t *testing.T) {
	hallRepo := new(MockTheatreHallRepo)
	service := usecase.NewTheatreHallService(hallRepo, zap.NewNop())

	hallRepo.On("FindAll", mock.Anything).Return([]*entity.TheatreHall{}, nil)

	result, err := service.GetTheatreHalls(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, result)
}

func TestCreateTheatreHall_Success(t *testing.T) {
	hallRepo := new(MockTheatreHallRepo)
	service := usecase.NewTheatreHallService(hallRepo, zap.NewNop())

	hallRepo.On("Create", mock.Anything,
		mock.MatchedBy(func(h *entity.TheatreHall) bool {
			return h.Name == "Main hall" && h.Rows == 10 && h.SeatsPerRow == 12
		}),
	).Return(nil)

	resp, err := service.CreateTheatreHall(context.Background(), &request.TheatreHallRequest{
		Name:        "Main hall",
		Rows:        10,
		SeatsPerRow: 12,
	})

	assert.NoError(t, err)
	assert.Equal(t, 120, resp.Capacity)
	hallRepo.AssertExpectations(t)
}
