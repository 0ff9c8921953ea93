package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"theatre-api/internal/data/repository"
	"theatre-api/internal/dto/request"
	"theatre-api/internal/usecase"
	"theatre-api/pkg/middleware"
	"theatre-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PerformanceHandler struct {
	service usecase.PerformanceService
	log     *zap.Logger
}

func NewPerformanceHandler(service usecase.PerformanceService, log *zap.Logger) *PerformanceHandler {
	return &PerformanceHandler{
		service: service,
		log:     log.With(zap.String("handler", "performance")),
	}
}

// CreatePerformance handles POST /api/performances (admin or hall overseer)
func (h *PerformanceHandler) CreatePerformance(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetAuthUser(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.PerformanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	performance, err := h.service.CreatePerformance(r.Context(), user, &req)
	if err != nil {
		h.handleServiceError(w, err, "create performance")
		return
	}

	utils.ResponseCreated(w, "success", performance)
}

// GetPerformances handles GET /api/performances (protected)
// Supports ?date=YYYY-MM-DD, ?play=id and ?hall=id filters. Hall overseers
// only see their own hall.
func (h *PerformanceHandler) GetPerformances(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetAuthUser(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	filter := repository.PerformanceFilter{}

	if raw := query.Get("date"); raw != "" {
		date, err := utils.ParseDate(raw)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid date filter, expected YYYY-MM-DD", nil)
			return
		}
		filter.Date = &date
	}
	if raw := query.Get("play"); raw != "" {
		playID, err := uuid.Parse(raw)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid play filter", nil)
			return
		}
		filter.PlayID = &playID
	}
	if raw := query.Get("hall"); raw != "" {
		hallID, err := uuid.Parse(raw)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid hall filter", nil)
			return
		}
		filter.HallID = &hallID
	}

	performances, err := h.service.GetPerformances(r.Context(), user, filter)
	if err != nil {
		h.handleServiceError(w, err, "get performances")
		return
	}

	utils.ResponseSuccess(w, "success", performances)
}

// GetPerformanceByID handles GET /api/performances/{id} (protected)
func (h *PerformanceHandler) GetPerformanceByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid performance ID", nil)
		return
	}

	performance, err := h.service.GetPerformanceByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "get performance by ID")
		return
	}

	utils.ResponseSuccess(w, "success", performance)
}

// UpdatePerformance handles PUT /api/performances/{id} (admin or hall overseer)
func (h *PerformanceHandler) UpdatePerformance(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetAuthUser(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid performance ID", nil)
		return
	}

	var req request.PerformanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	performance, err := h.service.UpdatePerformance(r.Context(), user, id, &req)
	if err != nil {
		h.handleServiceError(w, err, "update performance")
		return
	}

	utils.ResponseSuccess(w, "success", performance)
}

// DeletePerformance handles DELETE /api/performances/{id} (admin or hall overseer)
func (h *PerformanceHandler) DeletePerformance(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetAuthUser(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid performance ID", nil)
		return
	}

	if err := h.service.DeletePerformance(r.Context(), user, id); err != nil {
		h.handleServiceError(w, err, "delete performance")
		return
	}

	utils.ResponseNoContent(w)
}

func (h *PerformanceHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "outside your scope"):
		h.log.Warn(operation+" failed - out of hall scope", zap.Error(err))
		utils.ResponseForbidden(w, errMsg)

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
