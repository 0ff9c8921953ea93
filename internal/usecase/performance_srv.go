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

type PerformanceService interface {
	CreatePerformance(ctx context.Context, user *entity.User, req *request.PerformanceRequest) (*response.PerformanceResponse, error)
	GetPerformances(ctx context.Context, user *entity.User, filter repository.PerformanceFilter) ([]response.PerformanceListResponse, error)
	GetPerformanceByID(ctx context.Context, id uuid.UUID) (*response.PerformanceDetailResponse, error)
	UpdatePerformance(ctx context.Context, user *entity.User, id uuid.UUID, req *request.PerformanceRequest) (*response.PerformanceResponse, error)
	DeletePerformance(ctx context.Context, user *entity.User, id uuid.UUID) error
}

type performanceService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPerformanceService(repo *repository.Repository, log *zap.Logger) PerformanceService {
	return &performanceService{
		repo: repo,
		log:  log.With(zap.String("service", "performance")),
	}
}

// overseerHall returns the hall the user is restricted to, or nil when
// the user may touch every hall. Any assigned hall scopes the user,
// staff included.
func overseerHall(user *entity.User) *uuid.UUID {
	if user == nil {
		return nil
	}
	return user.TheatreHallID
}

func (s *performanceService) checkHallScope(user *entity.User, hallID uuid.UUID) error {
	if scoped := overseerHall(user); scoped != nil && *scoped != hallID {
		return fmt.Errorf("theatre hall is outside your scope")
	}
	return nil
}

func (s *performanceService) parseRequest(ctx context.Context, req *request.PerformanceRequest) (uuid.UUID, uuid.UUID, time.Time, error) {
	var zero uuid.UUID

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Performance validation failed", zap.Any("errors", errs))
		return zero, zero, time.Time{}, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	playID, err := uuid.Parse(req.PlayID)
	if err != nil {
		return zero, zero, time.Time{}, fmt.Errorf("invalid play id")
	}
	hallID, err := uuid.Parse(req.TheatreHallID)
	if err != nil {
		return zero, zero, time.Time{}, fmt.Errorf("invalid theatre hall id")
	}

	showTime, err := time.Parse(time.RFC3339, req.ShowTime)
	if err != nil {
		return zero, zero, time.Time{}, fmt.Errorf("invalid show time format")
	}

	play, err := s.repo.Play.FindByID(ctx, playID)
	if err != nil {
		s.log.Error("Failed to find play", zap.Error(err), zap.String("play_id", playID.String()))
		return zero, zero, time.Time{}, fmt.Errorf("failed to find play")
	}
	if play == nil {
		return zero, zero, time.Time{}, fmt.Errorf("play not found")
	}

	hall, err := s.repo.TheatreHall.FindByID(ctx, hallID)
	if err != nil {
		s.log.Error("Failed to find theatre hall", zap.Error(err), zap.String("hall_id", hallID.String()))
		return zero, zero, time.Time{}, fmt.Errorf("failed to find theatre hall")
	}
	if hall == nil {
		return zero, zero, time.Time{}, fmt.Errorf("theatre hall not found")
	}

	return playID, hallID, showTime, nil
}

func (s *performanceService) CreatePerformance(ctx context.Context, user *entity.User, req *request.PerformanceRequest) (*response.PerformanceResponse, error) {
	playID, hallID, showTime, err := s.parseRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.checkHallScope(user, hallID); err != nil {
		return nil, err
	}

	now := time.Now()
	performance := &entity.Performance{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		PlayID:        playID,
		TheatreHallID: hallID,
		ShowTime:      showTime,
	}

	if err := s.repo.Performance.Create(ctx, performance); err != nil {
		s.log.Error("Failed to create performance", zap.Error(err))
		return nil, fmt.Errorf("failed to create performance")
	}

	s.log.Info("Performance created",
		zap.String("performance_id", performance.ID.String()),
		zap.String("hall_id", hallID.String()),
		zap.Time("show_time", showTime))

	resp := response.PerformanceToResponse(performance)
	return &resp, nil
}

func (s *performanceService) GetPerformances(ctx context.Context, user *entity.User, filter repository.PerformanceFilter) ([]response.PerformanceListResponse, error) {
	// A hall overseer only ever sees their own hall, whatever the filter says.
	if scoped := overseerHall(user); scoped != nil {
		filter.HallID = scoped
	}

	rows, err := s.repo.Performance.FindAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to find performances", zap.Error(err))
		return nil, fmt.Errorf("failed to find performances")
	}

	result := make([]response.PerformanceListResponse, 0, len(rows))
	for _, row := range rows {
		result = append(result, response.PerformanceRowToListResponse(row))
	}

	return result, nil
}

func (s *performanceService) GetPerformanceByID(ctx context.Context, id uuid.UUID) (*response.PerformanceDetailResponse, error) {
	performance, err := s.repo.Performance.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find performance", zap.Error(err), zap.String("performance_id", id.String()))
		return nil, fmt.Errorf("failed to find performance")
	}
	if performance == nil {
		return nil, fmt.Errorf("performance not found")
	}

	play, err := s.repo.Play.FindByID(ctx, performance.PlayID)
	if err != nil || play == nil {
		s.log.Error("Failed to find play for performance", zap.Error(err), zap.String("performance_id", id.String()))
		return nil, fmt.Errorf("failed to find performance")
	}
	genres, err := s.repo.Play.FindGenresByPlayID(ctx, play.ID)
	if err != nil {
		s.log.Error("Failed to find play genres", zap.Error(err), zap.String("play_id", play.ID.String()))
		return nil, fmt.Errorf("failed to find performance")
	}
	actors, err := s.repo.Play.FindActorsByPlayID(ctx, play.ID)
	if err != nil {
		s.log.Error("Failed to find play actors", zap.Error(err), zap.String("play_id", play.ID.String()))
		return nil, fmt.Errorf("failed to find performance")
	}

	hall, err := s.repo.TheatreHall.FindByID(ctx, performance.TheatreHallID)
	if err != nil || hall == nil {
		s.log.Error("Failed to find hall for performance", zap.Error(err), zap.String("performance_id", id.String()))
		return nil, fmt.Errorf("failed to find performance")
	}

	taken, err := s.repo.Ticket.FindTakenPlaces(ctx, performance.ID)
	if err != nil {
		s.log.Error("Failed to find taken places", zap.Error(err), zap.String("performance_id", id.String()))
		return nil, fmt.Errorf("failed to find performance")
	}

	return &response.PerformanceDetailResponse{
		ID:          performance.ID.String(),
		Play:        response.PlayToDetailResponse(play, genres, actors),
		TheatreHall: response.TheatreHallToResponse(hall),
		ShowTime:    performance.ShowTime,
		TakenPlaces: response.SeatPlacesToResponse(taken),
	}, nil
}

func (s *performanceService) UpdatePerformance(ctx context.Context, user *entity.User, id uuid.UUID, req *request.PerformanceRequest) (*response.PerformanceResponse, error) {
	performance, err := s.repo.Performance.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find performance", zap.Error(err), zap.String("performance_id", id.String()))
		return nil, fmt.Errorf("failed to find performance")
	}
	if performance == nil {
		return nil, fmt.Errorf("performance not found")
	}

	// Scope is checked against both the current hall and the requested one.
	if err := s.checkHallScope(user, performance.TheatreHallID); err != nil {
		return nil, err
	}

	playID, hallID, showTime, err := s.parseRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.checkHallScope(user, hallID); err != nil {
		return nil, err
	}

	performance.PlayID = playID
	performance.TheatreHallID = hallID
	performance.ShowTime = showTime
	performance.UpdatedAt = time.Now()

	if err := s.repo.Performance.Update(ctx, performance); err != nil {
		s.log.Error("Failed to update performance", zap.Error(err), zap.String("performance_id", id.String()))
		return nil, fmt.Errorf("failed to update performance")
	}

	s.log.Info("Performance updated", zap.String("performance_id", performance.ID.String()))

	resp := response.PerformanceToResponse(performance)
	return &resp, nil
}

func (s *performanceService) DeletePerformance(ctx context.Context, user *entity.User, id uuid.UUID) error {
	performance, err := s.repo.Performance.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find performance", zap.Error(err), zap.String("performance_id", id.String()))
		return fmt.Errorf("failed to find performance")
	}
	if performance == nil {
		return fmt.Errorf("performance not found")
	}

	if err := s.checkHallScope(user, performance.TheatreHallID); err != nil {
		return err
	}

	if err := s.repo.Performance.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete performance", zap.Error(err), zap.String("performance_id", id.String()))
		return fmt.Errorf("failed to delete performance")
	}

	return nil
}
