package entity

import (
	"time"

	"github.com/google/uuid"
)

type Performance struct {
	Base
	PlayID        uuid.UUID `db:"play_id"`
	TheatreHallID uuid.UUID `db:"theatre_hall_id"`
	ShowTime      time.Time `db:"show_time"`
}
