package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"theatre-api/internal/dto/request"
	"theatre-api/internal/usecase"
	"theatre-api/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Register handles POST /api/register (public)
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	user, err := h.service.Register(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "register")
		return
	}

	utils.ResponseCreated(w, "success", user)
}

// ObtainTokens handles POST /api/tokens (public)
func (h *AuthHandler) ObtainTokens(w http.ResponseWriter, r *http.Request) {
	var req request.ObtainTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	tokens, err := h.service.ObtainTokens(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "obtain tokens")
		return
	}

	utils.ResponseSuccess(w, "success", tokens)
}

// RefreshToken handles POST /api/tokens/refresh (public)
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req request.RefreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	token, err := h.service.RefreshToken(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "refresh token")
		return
	}

	utils.ResponseSuccess(w, "success", token)
}

// RevokeToken handles POST /api/tokens/revoke (public)
func (h *AuthHandler) RevokeToken(w http.ResponseWriter, r *http.Request) {
	var req request.RefreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.RevokeToken(r.Context(), &req); err != nil {
		h.handleServiceError(w, err, "revoke token")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// VerifyToken handles POST /api/tokens/verify (public)
func (h *AuthHandler) VerifyToken(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.VerifyToken(r.Context(), &req); err != nil {
		h.handleServiceError(w, err, "verify token")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// SendVerificationCode handles POST /api/verify-email (protected)
func (h *AuthHandler) SendVerificationCode(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.SendVerificationCode(r.Context(), userID); err != nil {
		h.handleServiceError(w, err, "send verification code")
		return
	}

	utils.ResponseSuccess(w, "Verification code sent", nil)
}

// ConfirmVerificationCode handles PUT /api/verify-email (protected)
func (h *AuthHandler) ConfirmVerificationCode(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.VerifyEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.ConfirmVerificationCode(r.Context(), userID, &req); err != nil {
		h.handleServiceError(w, err, "confirm verification code")
		return
	}

	utils.ResponseSuccess(w, "Email verified", nil)
}

// handleServiceError maps auth service errors to HTTP responses
func (h *AuthHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "credentials"):
		h.log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, errMsg)

	case strings.Contains(errMsg, "invalid or expired"):
		h.log.Warn(operation+" failed - invalid token", zap.Error(err))
		utils.ResponseUnauthorized(w, errMsg)

	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "already"),
		strings.Contains(errMsg, "timeout"),
		strings.Contains(errMsg, "match"):
		h.log.Warn(operation+" failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error(operation+" failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
