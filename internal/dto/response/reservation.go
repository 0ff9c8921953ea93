package response

import (
	"time"

	"theatre-api/internal/data/entity"
)

type TicketResponse struct {
	ID            string `json:"id"`
	Row           int    `json:"row"`
	Seat          int    `json:"seat"`
	PerformanceID string `json:"performance"`
	ReservationID string `json:"reservation"`

	// Base64 PNG, only filled on reservation detail
	QRCode string `json:"qr_code,omitempty"`
}

type TicketListResponse struct {
	TicketResponse
	Performance PerformanceListResponse `json:"performance_details"`
}

type ReservationResponse struct {
	ID        string           `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	UserID    string           `json:"user"`
	Tickets   []TicketResponse `json:"tickets"`
}

type ReservationListResponse struct {
	ID        string               `json:"id"`
	CreatedAt time.Time            `json:"created_at"`
	Tickets   []TicketListResponse `json:"tickets"`
}

func TicketToResponse(ticket *entity.Ticket) TicketResponse {
	return TicketResponse{
		ID:            ticket.ID.String(),
		Row:           ticket.Row,
		Seat:          ticket.Seat,
		PerformanceID: ticket.PerformanceID.String(),
		ReservationID: ticket.ReservationID.String(),
	}
}

func ReservationToResponse(reservation *entity.Reservation, tickets []*entity.Ticket) ReservationResponse {
	ticketResponses := make([]TicketResponse, len(tickets))
	for i, ticket := range tickets {
		ticketResponses[i] = TicketToResponse(ticket)
	}

	return ReservationResponse{
		ID:        reservation.ID.String(),
		CreatedAt: reservation.CreatedAt,
		UserID:    reservation.UserID.String(),
		Tickets:   ticketResponses,
	}
}
