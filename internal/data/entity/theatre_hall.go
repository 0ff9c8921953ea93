package entity

type TheatreHall struct {
	Base
	Name        string `db:"name"`
	Rows        int    `db:"rows"`
	SeatsPerRow int    `db:"seats_per_row"`
}

// Capacity is the total number of seats in the hall.
func (h *TheatreHall) Capacity() int {
	return h.Rows * h.SeatsPerRow
}
