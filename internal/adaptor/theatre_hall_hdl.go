package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"theatre-api/internal/dto/request"
	"theatre-api/internal/usecase"
	"theatre-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TheatreHallHandler struct {
	service usecase.TheatreHallService
	log     *zap.Logger
}

func NewTheatreHallHandler(service usecase.TheatreHallService, log *zap.Logger) *TheatreHallHandler {
	return &TheatreHallHandler{
		service: service,
		log:     log.With(zap.String("handler", "theatre_hall")),
	}
}

// CreateTheatreHall handles POST /api/theatre_halls (admin only)
func (h *TheatreHallHandler) CreateTheatreHall(w http.ResponseWriter, r *http.Request) {
	var req request.TheatreHallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	hall, err := h.service.CreateTheatreHall(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create theatre hall")
		return
	}

	utils.ResponseCreated(w, "success", hall)
}

// GetTheatreHalls handles GET /api/theatre_halls (protected)
func (h *TheatreHallHandler) GetTheatreHalls(w http.ResponseWriter, r *http.Request) {
	halls, err := h.service.GetTheatreHalls(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get theatre halls")
		return
	}

	utils.ResponseSuccess(w, "success", halls)
}

// GetTheatreHallByID handles GET /api/theatre_halls/{id} (protected)
func (h *TheatreHallHandler) GetTheatreHallByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid theatre hall ID", nil)
		return
	}

	hall, err := h.service.GetTheatreHallByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "get theatre hall by ID")
		return
	}

	utils.ResponseSuccess(w, "success", hall)
}

func (h *TheatreHallHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error(operation+" failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
