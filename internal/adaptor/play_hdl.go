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

// uploads larger than this are rejected outright
const maxImageUploadBytes = 10 << 20

type PlayHandler struct {
	service usecase.PlayService
	log     *zap.Logger
}

func NewPlayHandler(service usecase.PlayService, log *zap.Logger) *PlayHandler {
	return &PlayHandler{
		service: service,
		log:     log.With(zap.String("handler", "play")),
	}
}

// CreatePlay handles POST /api/plays (admin only)
func (h *PlayHandler) CreatePlay(w http.ResponseWriter, r *http.Request) {
	var req request.PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	play, err := h.service.CreatePlay(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create play")
		return
	}

	utils.ResponseCreated(w, "success", play)
}

// GetPlays handles GET /api/plays (protected)
// Supports ?title=, ?genres=id,id and ?actors=id,id filters.
func (h *PlayHandler) GetPlays(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	genreIDs, err := utils.ParseUUIDList(query.Get("genres"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid genres filter", nil)
		return
	}
	actorIDs, err := utils.ParseUUIDList(query.Get("actors"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid actors filter", nil)
		return
	}

	filter := repository.PlayFilter{
		Title:    query.Get("title"),
		GenreIDs: genreIDs,
		ActorIDs: actorIDs,
	}

	plays, err := h.service.GetPlays(r.Context(), filter)
	if err != nil {
		h.handleServiceError(w, err, "get plays")
		return
	}

	utils.ResponseSuccess(w, "success", plays)
}

// GetPlayByID handles GET /api/plays/{id} (protected)
func (h *PlayHandler) GetPlayByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid play ID", nil)
		return
	}

	play, err := h.service.GetPlayByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "get play by ID")
		return
	}

	utils.ResponseSuccess(w, "success", play)
}

// UploadImage handles POST /api/plays/{id}/upload-image (admin only)
func (h *PlayHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid play ID", nil)
		return
	}

	if err := r.ParseMultipartForm(maxImageUploadBytes); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.ResponseBadRequest(w, "Image file is required", nil)
		return
	}
	defer file.Close()

	play, err := h.service.UploadImage(r.Context(), id, header.Filename, file)
	if err != nil {
		h.handleServiceError(w, err, "upload play image")
		return
	}

	utils.ResponseSuccess(w, "success", play)
}

func (h *PlayHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"):
		h.log.Warn(operation+" failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error(operation+" failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
