package request

type TicketRequest struct {
	Row           int    `json:"row" validate:"required,gte=1"`
	Seat          int    `json:"seat" validate:"required,gte=1"`
	PerformanceID string `json:"performance" validate:"required,uuid4"`
}

type CreateReservationRequest struct {
	Tickets []TicketRequest `json:"tickets" validate:"required,min=1,dive"`
}

// UpdateReservationRequest appends tickets to an existing reservation.
// There is no removal path.
type UpdateReservationRequest struct {
	Tickets []TicketRequest `json:"tickets" validate:"required,min=1,dive"`
}
