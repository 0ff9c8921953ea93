package usecase

import (
	"context"
	"fmt"
	"time"

	"theatre-api/internal/data/repository"
	"theatre-api/internal/dto/request"
	"theatre-api/internal/dto/response"
	"theatre-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetMe(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
	UpdateMe(ctx context.Context, userID uuid.UUID, req *request.UpdateMeRequest) (*response.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetMe(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) UpdateMe(ctx context.Context, userID uuid.UUID, req *request.UpdateMeRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update me validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	if req.Email != nil && *req.Email != user.Email {
		existing, err := s.userRepo.FindByEmail(ctx, *req.Email)
		if err != nil {
			s.log.Error("Failed to check email", zap.Error(err), zap.String("email", *req.Email))
			return nil, fmt.Errorf("failed to check email")
		}
		if existing != nil {
			return nil, fmt.Errorf("email already registered")
		}
		user.Email = *req.Email
		// Changing the address invalidates the previous verification
		user.IsEmailVerified = false
	}

	if req.Password != nil {
		hashedPassword, err := utils.HashPassword(*req.Password)
		if err != nil {
			s.log.Error("Failed to hash password", zap.Error(err))
			return nil, fmt.Errorf("failed to process password")
		}
		user.PasswordHash = hashedPassword
	}

	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.log.Error("Failed to update user", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to update user")
	}

	s.log.Info("User updated", zap.String("user_id", user.ID.String()))

	resp := response.UserToResponse(user)
	return &resp, nil
}
