package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"theatre-api/internal/data/entity"
	"theatre-api/pkg/middleware"
	"theatre-api/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// stubUserRepo serves a single canned user.
type stubUserRepo struct {
	user *entity.User
}

func (s *stubUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }

func (s *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}
	return nil, nil
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, nil
}

func (s *stubUserRepo) Update(ctx context.Context, user *entity.User) error { return nil }

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func doRequest(t *testing.T, mw func(http.Handler) http.Handler, method string, userID *uuid.UUID) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, "/api/resource", nil)
	if userID != nil {
		req = req.WithContext(utils.SetUserContext(req.Context(), *userID))
	}

	rec := httptest.NewRecorder()
	mw(okHandler()).ServeHTTP(rec, req)
	return rec
}

func TestAdminOrReadOnly_Unauthenticated(t *testing.T) {
	mw := middleware.AdminOrReadOnly(&stubUserRepo{}, zap.NewNop())

	rec := doRequest(t, mw, http.MethodGet, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminOrReadOnly_UnverifiedEmailForbidden(t *testing.T) {
	user := &entity.User{Base: entity.Base{ID: uuid.New()}, Email: "u@example.com"}
	mw := middleware.AdminOrReadOnly(&stubUserRepo{user: user}, zap.NewNop())

	rec := doRequest(t, mw, http.MethodGet, &user.ID)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminOrReadOnly_VerifiedUserCanRead(t *testing.T) {
	user := &entity.User{Base: entity.Base{ID: uuid.New()}, IsEmailVerified: true}
	mw := middleware.AdminOrReadOnly(&stubUserRepo{user: user}, zap.NewNop())

	rec := doRequest(t, mw, http.MethodGet, &user.ID)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminOrReadOnly_NonStaffWriteForbidden(t *testing.T) {
	user := &entity.User{Base: entity.Base{ID: uuid.New()}, IsEmailVerified: true}
	mw := middleware.AdminOrReadOnly(&stubUserRepo{user: user}, zap.NewNop())

	rec := doRequest(t, mw, http.MethodPost, &user.ID)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminOrReadOnly_StaffCanWrite(t *testing.T) {
	user := &entity.User{Base: entity.Base{ID: uuid.New()}, IsEmailVerified: true, IsStaff: true}
	mw := middleware.AdminOrReadOnly(&stubUserRepo{user: user}, zap.NewNop())

	rec := doRequest(t, mw, http.MethodPost, &user.ID)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthorizedOrReadOnly_OverseerCanWrite(t *testing.T) {
	hallID := uuid.New()
	user := &entity.User{
		Base:            entity.Base{ID: uuid.New()},
		IsEmailVerified: true,
		IsHallOverseer:  true,
		TheatreHallID:   &hallID,
	}
	mw := middleware.AuthorizedOrReadOnly(&stubUserRepo{user: user}, zap.NewNop())

	rec := doRequest(t, mw, http.MethodPost, &user.ID)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthorizedOrReadOnly_PlainUserWriteForbidden(t *testing.T) {
	user := &entity.User{Base: entity.Base{ID: uuid.New()}, IsEmailVerified: true}
	mw := middleware.AuthorizedOrReadOnly(&stubUserRepo{user: user}, zap.NewNop())

	rec := doRequest(t, mw, http.MethodPost, &user.ID)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthorizedOrReadOnly_PlainUserCanRead(t *testing.T) {
	user := &entity.User{Base: entity.Base{ID: uuid.New()}, IsEmailVerified: true}
	mw := middleware.AuthorizedOrReadOnly(&stubUserRepo{user: user}, zap.NewNop())

	rec := doRequest(t, mw, http.MethodGet, &user.ID)

	assert.Equal(t, http.StatusOK, rec.Code)
}
