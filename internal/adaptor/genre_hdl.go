package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"theatre-api/internal/data/repository"
	"theatre-api/internal/dto/request"
	"theatre-api/internal/usecase"
	"theatre-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type GenreHandler struct {
	service usecase.GenreService
	log     *zap.Logger
}

func NewGenreHandler(service usecase.GenreService, log *zap.Logger) *GenreHandler {
	return &GenreHandler{
		service: service,
		log:     log.With(zap.String("handler", "genre")),
	}
}

// CreateGenre handles POST /api/genres (admin only)
func (h *GenreHandler) CreateGenre(w http.ResponseWriter, r *http.Request) {
	var req request.GenreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	genre, err := h.service.CreateGenre(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create genre")
		return
	}

	utils.ResponseCreated(w, "success", genre)
}

// GetGenres handles GET /api/genres (protected)
func (h *GenreHandler) GetGenres(w http.ResponseWriter, r *http.Request) {
	filter := repository.GenreFilter{
		Name: r.URL.Query().Get("name"),
	}

	genres, err := h.service.GetGenres(r.Context(), filter)
	if err != nil {
		h.handleServiceError(w, err, "get genres")
		return
	}

	utils.ResponseSuccess(w, "success", genres)
}

// GetGenreByID handles GET /api/genres/{id} (protected)
func (h *GenreHandler) GetGenreByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid genre ID", nil)
		return
	}

	genre, err := h.service.GetGenreByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "get genre by ID")
		return
	}

	utils.ResponseSuccess(w, "success", genre)
}

func (h *GenreHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "taken"):
		h.log.Warn(operation+" failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error(operation+" failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
