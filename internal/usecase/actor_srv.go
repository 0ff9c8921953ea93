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

type ActorService interface {
	CreateActor(ctx context.Context, req *request.ActorRequest) (*response.ActorResponse, error)
	GetActors(ctx context.Context, filter repository.ActorFilter) ([]response.ActorResponse, error)
	GetActorByID(ctx context.Context, id uuid.UUID) (*response.ActorResponse, error)
}

type actorService struct {
	actorRepo repository.ActorRepository
	log       *zap.Logger
}

func NewActorService(actorRepo repository.ActorRepository, log *zap.Logger) ActorService {
	return &actorService{
		actorRepo: actorRepo,
		log:       log.With(zap.String("service", "actor")),
	}
}

func (s *actorService) CreateActor(ctx context.Context, req *request.ActorRequest) (*response.ActorResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create actor validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	actor := &entity.Actor{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	if err := s.actorRepo.Create(ctx, actor); err != nil {
		s.log.Error("Failed to create actor", zap.Error(err))
		return nil, fmt.Errorf("failed to create actor")
	}

	s.log.Info("Actor created", zap.String("actor_id", actor.ID.String()))

	resp := response.ActorToResponse(actor)
	return &resp, nil
}

func (s *actorService) GetActors(ctx context.Context, filter repository.ActorFilter) ([]response.ActorResponse, error) {
	actors, err := s.actorRepo.FindAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to find actors", zap.Error(err))
		return nil, fmt.Errorf("failed to find actors")
	}

	return response.ActorsToResponse(actors), nil
}

func (s *actorService) GetActorByID(ctx context.Context, id uuid.UUID) (*response.ActorResponse, error) {
	actor, err := s.actorRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find actor", zap.Error(err), zap.String("actor_id", id.String()))
		return nil, fmt.Errorf("failed to find actor")
	}
	if actor == nil {
		return nil, fmt.Errorf("actor not found")
	}

	resp := response.ActorToResponse(actor)
	return &resp, nil
}
