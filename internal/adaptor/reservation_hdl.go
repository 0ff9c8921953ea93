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

type ReservationHandler struct {
	service usecase.ReservationService
	log     *zap.Logger
}

func NewReservationHandler(service usecase.ReservationService, log *zap.Logger) *ReservationHandler {
	return &ReservationHandler{
		service: service,
		log:     log.With(zap.String("handler", "reservation")),
	}
}

// CreateReservation handles POST /api/reservations (protected)
func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	reservation, err := h.service.CreateReservation(r.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create reservation")
		return
	}

	utils.ResponseCreated(w, "success", reservation)
}

// GetReservations handles GET /api/reservations (protected)
// Only the caller's own reservations are returned.
func (h *ReservationHandler) GetReservations(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	reservations, err := h.service.GetReservations(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "get reservations")
		return
	}

	utils.ResponseSuccess(w, "success", reservations)
}

// GetReservationByID handles GET /api/reservations/{id} (protected)
func (h *ReservationHandler) GetReservationByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid reservation ID", nil)
		return
	}

	reservation, err := h.service.GetReservationByID(r.Context(), userID, id)
	if err != nil {
		h.handleServiceError(w, err, "get reservation by ID")
		return
	}

	utils.ResponseSuccess(w, "success", reservation)
}

// UpdateReservation handles PUT /api/reservations/{id} (protected)
func (h *ReservationHandler) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid reservation ID", nil)
		return
	}

	var req request.UpdateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	reservation, err := h.service.UpdateReservation(r.Context(), userID, id, &req)
	if err != nil {
		h.handleServiceError(w, err, "update reservation")
		return
	}

	utils.ResponseSuccess(w, "success", reservation)
}

// DeleteReservation handles DELETE /api/reservations/{id} (protected)
func (h *ReservationHandler) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid reservation ID", nil)
		return
	}

	if err := h.service.DeleteReservation(r.Context(), userID, id); err != nil {
		h.handleServiceError(w, err, "delete reservation")
		return
	}

	utils.ResponseNoContent(w)
}

func (h *ReservationHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "taken"):
		h.log.Warn(operation+" failed - seat taken", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"),
		strings.Contains(errMsg, "must be in range"):
		h.log.Warn(operation+" failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error(operation+" failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
