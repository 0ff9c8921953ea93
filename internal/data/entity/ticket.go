package entity

import "github.com/google/uuid"

type Ticket struct {
	BaseSimple
	Row           int       `db:"row"`
	Seat          int       `db:"seat"`
	PerformanceID uuid.UUID `db:"performance_id"`
	ReservationID uuid.UUID `db:"reservation_id"`
}
