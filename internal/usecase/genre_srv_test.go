package usecase_test

import (
	"context"
	"testing"

	"theatre-api/internal/data/entity"
	"theatre-api/internal/data/repository"
	"theatre-api/internal/dto/request"
	"theatre-api/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockGenreRepo struct {
	mock.Mock
}

func (m *MockGenreRepo) Create(ctx context.Context, genre *entity.Genre) error {
	args := m.Called(ctx, genre)
	return args.Error(0)
}

func (m *MockGenreRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Genre, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Genre), args.Error(1)
}

func (m *MockGenreRepo) FindByName(ctx context.Context, name string) (*entity.Genre, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Genre), args.Error(1)
}

func (m *MockGenreRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Genre, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Genre), args.Error(1)
}

func (m *MockGenreRepo) FindAll(ctx context.Context, filter repository.GenreFilter) ([]*entity.Genre, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Genre), args.Error(1)
}

func TestCreateGenre_Success(t *testing.T) {
	genreRepo := new(MockGenreRepo)
	service := usecase.NewGenreService(genreRepo, zap.NewNop())

	genreRepo.On("FindByName", mock.Anything, "Drama").Return(nil, nil)
	genreRepo.On("Create", mock.Anything,
		mock.MatchedBy(func(g *entity.Genre) bool { return g.Name == "Drama" }),
	).Return(nil)

	resp, err := service.CreateGenre(context.Background(), &request.GenreRequest{Name: "Drama"})

	assert.NoError(t, err)
	assert.Equal(t, "Drama", resp.Name)
	genreRepo.AssertExpectations(t)
}

func TestCreateGenre_DuplicateName(t *testing.T) {
	genreRepo := new(MockGenreRepo)
	service := usecase.NewGenreService(genreRepo, zap.NewNop())

	existing := &entity.Genre{Base: entity.Base{ID: uuid.New()}, Name: "Drama"}
	genreRepo.On("FindByName", mock.Anything, "Drama").Return(existing, nil)

	_, err := service.CreateGenre(context.Background(), &request.GenreRequest{Name: "Drama"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "taken")
	genreRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetGenreByID_NotFound(t *testing.T) {
	genreRepo := new(MockGenreRepo)
	service := usecase.NewGenreService(genreRepo, zap.NewNop())

	id := uuid.New()
	genreRepo.On("FindByID", mock.Anything, id).Return(nil, nil)

	_, err := service.GetGenreByID(context.Background(), id)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
