package usecase

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"theatre-api/internal/data/entity"
	"theatre-api/internal/data/repository"
	"theatre-api/internal/dto/request"
	"theatre-api/internal/dto/response"
	"theatre-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PlayService interface {
	CreatePlay(ctx context.Context, req *request.PlayRequest) (*response.PlayResponse, error)
	GetPlays(ctx context.Context, filter repository.PlayFilter) ([]response.PlayListResponse, error)
	GetPlayByID(ctx context.Context, id uuid.UUID) (*response.PlayDetailResponse, error)
	UploadImage(ctx context.Context, id uuid.UUID, filename string, file io.Reader) (*response.PlayDetailResponse, error)
}

type playService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewPlayService(repo *repository.Repository, config *utils.Config, log *zap.Logger) PlayService {
	return &playService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "play")),
	}
}

func parseIDList(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, len(raw))
	for i, value := range raw {
		id, err := uuid.Parse(value)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q", value)
		}
		ids[i] = id
	}
	return ids, nil
}

// resolveRelations checks every referenced genre and actor actually exists.
func (s *playService) resolveRelations(ctx context.Context, genreIDs, actorIDs []uuid.UUID) ([]*entity.Genre, []*entity.Actor, error) {
	genres, err := s.repo.Genre.FindByIDs(ctx, genreIDs)
	if err != nil {
		s.log.Error("Failed to find genres", zap.Error(err))
		return nil, nil, fmt.Errorf("failed to find genres")
	}
	if len(genres) != len(genreIDs) {
		return nil, nil, fmt.Errorf("one or more genres not found")
	}

	actors, err := s.repo.Actor.FindByIDs(ctx, actorIDs)
	if err != nil {
		s.log.Error("Failed to find actors", zap.Error(err))
		return nil, nil, fmt.Errorf("failed to find actors")
	}
	if len(actors) != len(actorIDs) {
		return nil, nil, fmt.Errorf("one or more actors not found")
	}

	return genres, actors, nil
}

func (s *playService) CreatePlay(ctx context.Context, req *request.PlayRequest) (*response.PlayResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create play validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	genreIDs, err := parseIDList(req.GenreIDs)
	if err != nil {
		return nil, fmt.Errorf("invalid genre id")
	}
	actorIDs, err := parseIDList(req.ActorIDs)
	if err != nil {
		return nil, fmt.Errorf("invalid actor id")
	}

	genres, actors, err := s.resolveRelations(ctx, genreIDs, actorIDs)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	play := &entity.Play{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       req.Title,
		Description: req.Description,
	}

	if err := s.repo.Play.Create(ctx, play); err != nil {
		s.log.Error("Failed to create play", zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("failed to create play")
	}

	if err := s.repo.Play.ReplaceGenres(ctx, play.ID, genreIDs); err != nil {
		s.log.Error("Failed to attach genres", zap.Error(err), zap.String("play_id", play.ID.String()))
		return nil, fmt.Errorf("failed to attach genres")
	}
	if err := s.repo.Play.ReplaceActors(ctx, play.ID, actorIDs); err != nil {
		s.log.Error("Failed to attach actors", zap.Error(err), zap.String("play_id", play.ID.String()))
		return nil, fmt.Errorf("failed to attach actors")
	}

	s.log.Info("Play created",
		zap.String("play_id", play.ID.String()),
		zap.String("title", play.Title))

	resp := response.PlayToResponse(play, genres, actors)
	return &resp, nil
}

func (s *playService) GetPlays(ctx context.Context, filter repository.PlayFilter) ([]response.PlayListResponse, error) {
	plays, err := s.repo.Play.FindAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to find plays", zap.Error(err))
		return nil, fmt.Errorf("failed to find plays")
	}

	result := make([]response.PlayListResponse, 0, len(plays))
	for _, play := range plays {
		genres, err := s.repo.Play.FindGenresByPlayID(ctx, play.ID)
		if err != nil {
			s.log.Error("Failed to find play genres", zap.Error(err), zap.String("play_id", play.ID.String()))
			return nil, fmt.Errorf("failed to find plays")
		}
		actors, err := s.repo.Play.FindActorsByPlayID(ctx, play.ID)
		if err != nil {
			s.log.Error("Failed to find play actors", zap.Error(err), zap.String("play_id", play.ID.String()))
			return nil, fmt.Errorf("failed to find plays")
		}
		playID := play.ID
		performances, err := s.repo.Performance.FindAll(ctx, repository.PerformanceFilter{PlayID: &playID})
		if err != nil {
			s.log.Error("Failed to find play performances", zap.Error(err), zap.String("play_id", play.ID.String()))
			return nil, fmt.Errorf("failed to find plays")
		}
		result = append(result, response.PlayToListResponse(play, genres, actors, performances))
	}

	return result, nil
}

func (s *playService) GetPlayByID(ctx context.Context, id uuid.UUID) (*response.PlayDetailResponse, error) {
	play, err := s.repo.Play.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find play", zap.Error(err), zap.String("play_id", id.String()))
		return nil, fmt.Errorf("failed to find play")
	}
	if play == nil {
		return nil, fmt.Errorf("play not found")
	}

	genres, err := s.repo.Play.FindGenresByPlayID(ctx, play.ID)
	if err != nil {
		s.log.Error("Failed to find play genres", zap.Error(err), zap.String("play_id", play.ID.String()))
		return nil, fmt.Errorf("failed to find play")
	}
	actors, err := s.repo.Play.FindActorsByPlayID(ctx, play.ID)
	if err != nil {
		s.log.Error("Failed to find play actors", zap.Error(err), zap.String("play_id", play.ID.String()))
		return nil, fmt.Errorf("failed to find play")
	}

	resp := response.PlayToDetailResponse(play, genres, actors)
	return &resp, nil
}

func (s *playService) UploadImage(ctx context.Context, id uuid.UUID, filename string, file io.Reader) (*response.PlayDetailResponse, error) {
	play, err := s.repo.Play.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find play", zap.Error(err), zap.String("play_id", id.String()))
		return nil, fmt.Errorf("failed to find play")
	}
	if play == nil {
		return nil, fmt.Errorf("play not found")
	}

	ext := filepath.Ext(filename)
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
	default:
		return nil, fmt.Errorf("invalid image extension")
	}

	if err := os.MkdirAll(s.config.Upload.Path, 0o755); err != nil {
		s.log.Error("Failed to create upload directory", zap.Error(err))
		return nil, fmt.Errorf("failed to store image")
	}

	// Stored name carries the play id so re-uploads replace predictably.
	storedName := fmt.Sprintf("%s-%s%s", play.ID.String(), uuid.New().String()[:8], ext)
	storedPath := filepath.Join(s.config.Upload.Path, storedName)

	dst, err := os.Create(storedPath)
	if err != nil {
		s.log.Error("Failed to create image file", zap.Error(err), zap.String("path", storedPath))
		return nil, fmt.Errorf("failed to store image")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		s.log.Error("Failed to write image file", zap.Error(err), zap.String("path", storedPath))
		return nil, fmt.Errorf("failed to store image")
	}

	if err := s.repo.Play.UpdateImagePath(ctx, play.ID, storedPath); err != nil {
		s.log.Error("Failed to update image path", zap.Error(err), zap.String("play_id", play.ID.String()))
		return nil, fmt.Errorf("failed to store image")
	}

	s.log.Info("Play image uploaded",
		zap.String("play_id", play.ID.String()),
		zap.String("path", storedPath))

	return s.GetPlayByID(ctx, play.ID)
}
