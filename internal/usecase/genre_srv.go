package usecase

import (
	"context"
	"fmt"
	"time"

	"theatre-api/internal/data/entity"
	"theatre-api/internal/data/repository"
	"theatre-api/internal/dto/request"
	"theatre-api/internal/dto/response"
	"theatre-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type GenreService interface {
	CreateGenre(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error)
	GetGenres(ctx context.Context, filter repository.GenreFilter) ([]response.GenreResponse, error)
	GetGenreByID(ctx context.Context, id uuid.UUID) (*response.GenreResponse, error)
}

type genreService struct {
	genreRepo repository.GenreRepository
	log       *zap.Logger
}

func NewGenreService(genreRepo repository.GenreRepository, log *zap.Logger) GenreService {
	return &genreService{
		genreRepo: genreRepo,
		log:       log.With(zap.String("service", "genre")),
	}
}

func (s *genreService) CreateGenre(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create genre validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.genreRepo.FindByName(ctx, req.Name)
	if err != nil {
		s.log.Error("Failed to check genre name", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to check genre name")
	}
	if existing != nil {
		return nil, fmt.Errorf("genre name is already taken")
	}

	now := time.Now()
	genre := &entity.Genre{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name: req.Name,
	}

	if err := s.genreRepo.Create(ctx, genre); err != nil {
		s.log.Error("Failed to create genre", zap.Error(err))
		return nil, fmt.Errorf("failed to create genre")
	}

	s.log.Info("Genre created", zap.String("genre_id", genre.ID.String()))

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *genreService) GetGenres(ctx context.Context, filter repository.GenreFilter) ([]response.GenreResponse, error) {
	genres, err := s.genreRepo.FindAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to find genres", zap.Error(err))
		return nil, fmt.Errorf("failed to find genres")
	}

	return response.GenresToResponse(genres), nil
}

func (s *genreService) GetGenreByID(ctx context.Context, id uuid.UUID) (*response.GenreResponse, error) {
	genre, err := s.genreRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find genre", zap.Error(err), zap.String("genre_id", id.String()))
		return nil, fmt.Errorf("failed to find genre")
	}
	if genre == nil {
		return nil, fmt.Errorf("genre not found")
	}

	resp := response.GenreToResponse(genre)
	return &resp, nil
}
