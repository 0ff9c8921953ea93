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

type ActorHandler struct {
	service usecase.ActorService
	log     *zap.Logger
}

func NewActorHandler(service usecase.ActorService, log *zap.Logger) *ActorHandler {
	return &ActorHandler{
		service: service,
		log:     log.With(zap.String("handler", "actor")),
	}
}

// CreateActor handles POST /api/actors (admin only)
func (h *ActorHandler) CreateActor(w http.ResponseWriter, r *http.Request) {
	var req request.ActorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	actor, err := h.service.CreateActor(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create actor")
		return
	}

	utils.ResponseCreated(w, "success", actor)
}

// GetActors handles GET /api/actors (protected)
func (h *ActorHandler) GetActors(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := repository.ActorFilter{
		FirstName: query.Get("first_name"),
		LastName:  query.Get("last_name"),
	}

	actors, err := h.service.GetActors(r.Context(), filter)
	if err != nil {
		h.handleServiceError(w, err, "get actors")
		return
	}

	utils.ResponseSuccess(w, "success", actors)
}

// GetActorByID handles GET /api/actors/{id} (protected)
func (h *ActorHandler) GetActorByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid actor ID", nil)
		return
	}

	actor, err := h.service.GetActorByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "get actor by ID")
		return
	}

	utils.ResponseSuccess(w, "success", actor)
}

func (h *ActorHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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
