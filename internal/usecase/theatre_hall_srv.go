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

type TheatreHallService interface {
	CreateTheatreHall(ctx context.Context, req *request.TheatreHallRequest) (*response.TheatreHallResponse, error)
	GetTheatreHalls(ctx context.Context) ([]response.TheatreHallResponse, error)
	GetTheatreHallByID(ctx context.Context, id uuid.UUID) (*response.TheatreHallResponse, error)
}

type theatreHallService struct {
	hallRepo repository.TheatreHallRepository
	log      *zap.Logger
}

func NewTheatreHallService(hallRepo repository.TheatreHallRepository, log *zap.Logger) TheatreHallService {
	return &theatreHallService{
		hallRepo: hallRepo,
		log:      log.With(zap.String("service", "theatre_hall")),
	}
}

func (s *theatreHallService) CreateTheatreHall(ctx context.Context, req *request.TheatreHallRequest) (*response.TheatreHallResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create theatre hall validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	hall := &entity.TheatreHall{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Rows:        req.Rows,
		SeatsPerRow: req.SeatsPerRow,
	}

	if err := s.hallRepo.Create(ctx, hall); err != nil {
		s.log.Error("Failed to create theatre hall", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create theatre hall")
	}

	s.log.Info("Theatre hall created",
		zap.String("hall_id", hall.ID.String()),
		zap.String("name", hall.Name))

	resp := response.TheatreHallToResponse(hall)
	return &resp, nil
}

func (s *theatreHallService) GetTheatreHalls(ctx context.Context) ([]response.TheatreHallResponse, error) {
	halls, err := s.hallRepo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to find theatre halls", zap.Error(err))
		return nil, fmt.Errorf("failed to find theatre halls")
	}

	return response.TheatreHallsToResponse(halls), nil
}

func (s *theatreHallService) GetTheatreHallByID(ctx context.Context, id uuid.UUID) (*response.TheatreHallResponse, error) {
	hall, err := s.hallRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find theatre hall", zap.Error(err), zap.String("hall_id", id.String()))
		return nil, fmt.Errorf("failed to find theatre hall")
	}
	if hall == nil {
		return nil, fmt.Errorf("theatre hall not found")
	}

	resp := response.TheatreHallToResponse(hall)
	return &resp, nil
}
