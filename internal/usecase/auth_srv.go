package usecase

import (
	"context"
	"fmt"
	"time"

	"theatre-api/internal/data/entity"
	"theatre-api/internal/data/repository"
	"theatre-api/internal/dto/request"
	"theatre-api/internal/dto/response"
	"theatre-api/pkg/mailer"
	"theatre-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	ObtainTokens(ctx context.Context, req *request.ObtainTokenRequest) (*response.TokenPairResponse, error)
	RefreshToken(ctx context.Context, req *request.RefreshTokenRequest) (*response.AccessTokenResponse, error)
	RevokeToken(ctx context.Context, req *request.RefreshTokenRequest) error
	VerifyToken(ctx context.Context, req *request.VerifyTokenRequest) error

	// Email verification flow: issue a code, then confirm it.
	SendVerificationCode(ctx context.Context, userID uuid.UUID) error
	ConfirmVerificationCode(ctx context.Context, userID uuid.UUID, req *request.VerifyEmailRequest) error
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	mail   mailer.Mailer
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	mail mailer.Mailer,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		mail:   mail,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check email")
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        req.Email,
		PasswordHash: hashedPassword,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to create account")
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) ObtainTokens(ctx context.Context, req *request.ObtainTokenRequest) (*response.TokenPairResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Obtain tokens validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		s.log.Warn("User not found for token obtain", zap.String("email", req.Email))
		return nil, fmt.Errorf("invalid credentials")
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("invalid credentials")
	}

	access, err := utils.NewAccessToken(s.config.JWT.Secret, user.ID, s.config.JWT.AccessExpiryMinutes)
	if err != nil {
		s.log.Error("Failed to sign access token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to create tokens")
	}

	refresh, err := utils.NewRefreshToken(s.config.JWT.RefreshExpiryDays)
	if err != nil {
		s.log.Error("Failed to create refresh token", zap.Error(err))
		return nil, fmt.Errorf("failed to create tokens")
	}

	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:           user.ID,
		RefreshTokenHash: utils.HashRefreshToken(refresh.Raw),
		ExpiresAt:        refresh.Exp,
	}
	if err := s.repo.Session.Create(ctx, session); err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to create tokens")
	}

	s.log.Info("Tokens issued", zap.String("user_id", user.ID.String()))

	return &response.TokenPairResponse{
		AccessToken:      access.Token,
		AccessExpiresAt:  access.Exp,
		RefreshToken:     refresh.Raw,
		RefreshExpiresAt: refresh.Exp,
	}, nil
}

func (s *authService) RefreshToken(ctx context.Context, req *request.RefreshTokenRequest) (*response.AccessTokenResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	session, err := s.repo.Session.FindValidByTokenHash(ctx, utils.HashRefreshToken(req.RefreshToken))
	if err != nil {
		s.log.Error("Failed to find session", zap.Error(err))
		return nil, fmt.Errorf("failed to refresh token")
	}
	if session == nil {
		return nil, fmt.Errorf("invalid or expired refresh token")
	}

	access, err := utils.NewAccessToken(s.config.JWT.Secret, session.UserID, s.config.JWT.AccessExpiryMinutes)
	if err != nil {
		s.log.Error("Failed to sign access token", zap.Error(err), zap.String("user_id", session.UserID.String()))
		return nil, fmt.Errorf("failed to refresh token")
	}

	return &response.AccessTokenResponse{
		AccessToken:     access.Token,
		AccessExpiresAt: access.Exp,
	}, nil
}

func (s *authService) RevokeToken(ctx context.Context, req *request.RefreshTokenRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	tokenHash := utils.HashRefreshToken(req.RefreshToken)

	session, err := s.repo.Session.FindValidByTokenHash(ctx, tokenHash)
	if err != nil {
		s.log.Error("Failed to find session", zap.Error(err))
		return fmt.Errorf("failed to revoke token")
	}
	if session == nil {
		return fmt.Errorf("invalid or expired refresh token")
	}

	if err := s.repo.Session.Revoke(ctx, tokenHash); err != nil {
		s.log.Error("Failed to revoke session", zap.Error(err), zap.String("user_id", session.UserID.String()))
		return fmt.Errorf("failed to revoke token")
	}

	s.log.Info("Refresh token revoked", zap.String("user_id", session.UserID.String()))
	return nil
}

func (s *authService) VerifyToken(ctx context.Context, req *request.VerifyTokenRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if _, err := utils.ParseAccessToken(s.config.JWT.Secret, req.Token); err != nil {
		return fmt.Errorf("invalid or expired token")
	}

	return nil
}

func (s *authService) SendVerificationCode(ctx context.Context, userID uuid.UUID) error {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user for verification", zap.Error(err), zap.String("user_id", userID.String()))
		return fmt.Errorf("failed to find user")
	}
	if user == nil {
		return fmt.Errorf("user not found")
	}

	if user.IsEmailVerified {
		return fmt.Errorf("email is already verified")
	}

	// Wall-clock cooldown between code requests
	if user.VerificationCodeTimeout != nil && user.VerificationCodeTimeout.After(time.Now()) {
		return fmt.Errorf("email sending timeout is not over yet")
	}

	code := utils.GenerateVerificationCode()
	timeout := time.Now().Add(time.Duration(s.config.Verification.CooldownMinutes) * time.Minute)

	body := fmt.Sprintf("Please confirm your email with this code: %s", code)
	if err := s.mail.Send(user.Email, "Email confirmation for theatre app", body); err != nil {
		s.log.Error("Failed to send verification email", zap.Error(err), zap.String("email", user.Email))
		return fmt.Errorf("failed to send verification email")
	}

	user.VerificationCode = &code
	user.VerificationCodeTimeout = &timeout
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to store verification code", zap.Error(err), zap.String("user_id", user.ID.String()))
		return fmt.Errorf("failed to store verification code")
	}

	s.log.Info("Verification code issued",
		zap.String("user_id", user.ID.String()),
		zap.Time("timeout", timeout))

	return nil
}

func (s *authService) ConfirmVerificationCode(ctx context.Context, userID uuid.UUID, req *request.VerifyEmailRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Verify email validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user for verification", zap.Error(err), zap.String("user_id", userID.String()))
		return fmt.Errorf("failed to find user")
	}
	if user == nil {
		return fmt.Errorf("user not found")
	}

	if user.VerificationCode == nil || *user.VerificationCode != req.Code {
		s.log.Warn("Verification code mismatch", zap.String("user_id", user.ID.String()))
		return fmt.Errorf("verification code does not match")
	}

	user.IsEmailVerified = true
	user.VerificationCode = nil
	user.VerificationCodeTimeout = nil
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to update user verification", zap.Error(err), zap.String("user_id", user.ID.String()))
		return fmt.Errorf("failed to verify email")
	}

	s.log.Info("Email verified", zap.String("user_id", user.ID.String()))
	return nil
}
