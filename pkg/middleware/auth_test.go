package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"theatre-api/pkg/middleware"
	"theatre-api/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestAuthJWT_ValidToken(t *testing.T) {
	jwtConfig := utils.JWTConfig{Secret: "secret", AccessExpiryMinutes: 5}
	userID := uuid.New()

	access, err := utils.NewAccessToken(jwtConfig.Secret, userID, jwtConfig.AccessExpiryMinutes)
	assert.NoError(t, err)

	var seen uuid.UUID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+access.Token)
	rec := httptest.NewRecorder()

	middleware.AuthJWT(jwtConfig, zap.NewNop())(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, seen)
}

func TestAuthJWT_MissingHeader(t *testing.T) {
	jwtConfig := utils.JWTConfig{Secret: "secret"}

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	rec := httptest.NewRecorder()

	middleware.AuthJWT(jwtConfig, zap.NewNop())(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_MalformedHeader(t *testing.T) {
	jwtConfig := utils.JWTConfig{Secret: "secret"}

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()

	middleware.AuthJWT(jwtConfig, zap.NewNop())(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_WrongSecretRejected(t *testing.T) {
	access, err := utils.NewAccessToken("other-secret", uuid.New(), 5)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+access.Token)
	rec := httptest.NewRecorder()

	middleware.AuthJWT(utils.JWTConfig{Secret: "secret"}, zap.NewNop())(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
