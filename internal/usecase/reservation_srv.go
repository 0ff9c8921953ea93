package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"theatre-api/internal/data/entity"
	"theatre-api/internal/data/repository"
	"theatre-api/internal/dto/request"
	"theatre-api/internal/dto/response"
	"theatre-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReservationService interface {
	CreateReservation(ctx context.Context, userID uuid.UUID, req *request.CreateReservationRequest) (*response.ReservationResponse, error)
	GetReservations(ctx context.Context, userID uuid.UUID) ([]response.ReservationListResponse, error)
	GetReservationByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*response.ReservationResponse, error)
	UpdateReservation(ctx context.Context, userID uuid.UUID, id uuid.UUID, req *request.UpdateReservationRequest) (*response.ReservationResponse, error)
	DeleteReservation(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
}

type reservationService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReservationService(repo *repository.Repository, log *zap.Logger) ReservationService {
	return &reservationService{
		repo: repo,
		log:  log.With(zap.String("service", "reservation")),
	}
}

// buildTickets validates every requested seat against its performance's hall
// bounds and returns ticket entities ready to insert.
func (s *reservationService) buildTickets(ctx context.Context, reservationID uuid.UUID, requests []request.TicketRequest) ([]*entity.Ticket, error) {
	halls := map[uuid.UUID]*entity.TheatreHall{}
	now := time.Now()

	tickets := make([]*entity.Ticket, 0, len(requests))
	for _, tr := range requests {
		performanceID, err := uuid.Parse(tr.PerformanceID)
		if err != nil {
			return nil, fmt.Errorf("invalid performance id")
		}

		hall, ok := halls[performanceID]
		if !ok {
			performance, err := s.repo.Performance.FindByID(ctx, performanceID)
			if err != nil {
				s.log.Error("Failed to find performance", zap.Error(err), zap.String("performance_id", performanceID.String()))
				return nil, fmt.Errorf("failed to find performance")
			}
			if performance == nil {
				return nil, fmt.Errorf("performance not found")
			}

			hall, err = s.repo.TheatreHall.FindByID(ctx, performance.TheatreHallID)
			if err != nil || hall == nil {
				s.log.Error("Failed to find hall for performance", zap.Error(err), zap.String("performance_id", performanceID.String()))
				return nil, fmt.Errorf("failed to find performance")
			}
			halls[performanceID] = hall
		}

		if tr.Row > hall.Rows {
			return nil, fmt.Errorf("row must be in range 1..%d, not %d", hall.Rows, tr.Row)
		}
		if tr.Seat > hall.SeatsPerRow {
			return nil, fmt.Errorf("seat must be in range 1..%d, not %d", hall.SeatsPerRow, tr.Seat)
		}

		tickets = append(tickets, &entity.Ticket{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			Row:           tr.Row,
			Seat:          tr.Seat,
			PerformanceID: performanceID,
			ReservationID: reservationID,
		})
	}

	return tickets, nil
}

func (s *reservationService) CreateReservation(ctx context.Context, userID uuid.UUID, req *request.CreateReservationRequest) (*response.ReservationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create reservation validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	reservation := &entity.Reservation{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID: userID,
	}

	tickets, err := s.buildTickets(ctx, reservation.ID, req.Tickets)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Reservation.CreateWithTickets(ctx, reservation, tickets); err != nil {
		if errors.Is(err, repository.ErrSeatTaken) {
			return nil, fmt.Errorf("seat is already taken")
		}
		s.log.Error("Failed to create reservation", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to create reservation")
	}

	resp := response.ReservationToResponse(reservation, tickets)
	return &resp, nil
}

func (s *reservationService) GetReservations(ctx context.Context, userID uuid.UUID) ([]response.ReservationListResponse, error) {
	reservations, err := s.repo.Reservation.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find reservations", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to find reservations")
	}

	// One joined query brings every ticket with its performance summary.
	ticketRows, err := s.repo.Ticket.FindRowsByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find tickets", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to find reservations")
	}

	ticketsByReservation := map[uuid.UUID][]response.TicketListResponse{}
	for _, row := range ticketRows {
		ticketsByReservation[row.ReservationID] = append(ticketsByReservation[row.ReservationID],
			response.TicketListResponse{
				TicketResponse: response.TicketToResponse(&row.Ticket),
				Performance:    response.PerformanceRowToListResponse(&row.Performance),
			})
	}

	result := make([]response.ReservationListResponse, 0, len(reservations))
	for _, reservation := range reservations {
		result = append(result, response.ReservationListResponse{
			ID:        reservation.ID.String(),
			CreatedAt: reservation.CreatedAt,
			Tickets:   ticketsByReservation[reservation.ID],
		})
	}

	return result, nil
}

func (s *reservationService) findOwned(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*entity.Reservation, error) {
	reservation, err := s.repo.Reservation.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find reservation", zap.Error(err), zap.String("reservation_id", id.String()))
		return nil, fmt.Errorf("failed to find reservation")
	}
	// Somebody else's reservation stays invisible.
	if reservation == nil || reservation.UserID != userID {
		return nil, fmt.Errorf("reservation not found")
	}
	return reservation, nil
}

func (s *reservationService) GetReservationByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*response.ReservationResponse, error) {
	reservation, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	tickets, err := s.repo.Ticket.FindByReservationID(ctx, reservation.ID)
	if err != nil {
		s.log.Error("Failed to find tickets", zap.Error(err), zap.String("reservation_id", reservation.ID.String()))
		return nil, fmt.Errorf("failed to find reservation")
	}

	resp := response.ReservationToResponse(reservation, tickets)

	for i, ticket := range tickets {
		payload := fmt.Sprintf("ticket:%s performance:%s row:%d seat:%d",
			ticket.ID.String(), ticket.PerformanceID.String(), ticket.Row, ticket.Seat)
		qr, err := utils.TicketQR(payload)
		if err != nil {
			s.log.Error("Failed to render ticket QR", zap.Error(err), zap.String("ticket_id", ticket.ID.String()))
			continue
		}
		resp.Tickets[i].QRCode = qr
	}

	return &resp, nil
}

func (s *reservationService) UpdateReservation(ctx context.Context, userID uuid.UUID, id uuid.UUID, req *request.UpdateReservationRequest) (*response.ReservationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update reservation validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	reservation, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	tickets, err := s.buildTickets(ctx, reservation.ID, req.Tickets)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Reservation.AppendTickets(ctx, reservation.ID, tickets); err != nil {
		if errors.Is(err, repository.ErrSeatTaken) {
			return nil, fmt.Errorf("seat is already taken")
		}
		s.log.Error("Failed to append tickets", zap.Error(err), zap.String("reservation_id", reservation.ID.String()))
		return nil, fmt.Errorf("failed to update reservation")
	}

	all, err := s.repo.Ticket.FindByReservationID(ctx, reservation.ID)
	if err != nil {
		s.log.Error("Failed to find tickets", zap.Error(err), zap.String("reservation_id", reservation.ID.String()))
		return nil, fmt.Errorf("failed to find reservation")
	}

	resp := response.ReservationToResponse(reservation, all)
	return &resp, nil
}

func (s *reservationService) DeleteReservation(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	reservation, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := s.repo.Reservation.Delete(ctx, reservation.ID); err != nil {
		s.log.Error("Failed to delete reservation", zap.Error(err), zap.String("reservation_id", reservation.ID.String()))
		return fmt.Errorf("failed to delete reservation")
	}

	return nil
}
