package entity

import "github.com/google/uuid"

type Reservation struct {
	BaseSimple
	UserID uuid.UUID `db:"user_id"`
}
