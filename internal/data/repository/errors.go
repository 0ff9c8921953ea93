package repository

import "errors"

// ErrSeatTaken is returned when a (performance, row, seat) combination is
// already held by another ticket.
var ErrSeatTaken = errors.New("seat is already taken")
