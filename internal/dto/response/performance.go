package response

import (
	"time"

	"theatre-api/internal/data/entity"
	"theatre-api/internal/data/repository"
)

type PerformanceResponse struct {
	ID            string    `json:"id"`
	PlayID        string    `json:"play"`
	TheatreHallID string    `json:"theatre_hall"`
	ShowTime      time.Time `json:"show_time"`
}

// PerformanceListResponse flattens the hall and carries the availability
// computed per query.
type PerformanceListResponse struct {
	ID                  string    `json:"id"`
	PlayTitle           string    `json:"play_title"`
	TheatreHallName     string    `json:"theatre_hall_name"`
	TheatreHallCapacity int       `json:"theatre_hall_capacity"`
	ShowTime            time.Time `json:"show_time"`
	TicketsAvailable    int       `json:"tickets_available"`
}

type SeatPlaceResponse struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

type PerformanceDetailResponse struct {
	ID          string              `json:"id"`
	Play        PlayDetailResponse  `json:"play"`
	TheatreHall TheatreHallResponse `json:"theatre_hall"`
	ShowTime    time.Time           `json:"show_time"`
	TakenPlaces []SeatPlaceResponse `json:"taken_places"`
}

func PerformanceToResponse(performance *entity.Performance) PerformanceResponse {
	return PerformanceResponse{
		ID:            performance.ID.String(),
		PlayID:        performance.PlayID.String(),
		TheatreHallID: performance.TheatreHallID.String(),
		ShowTime:      performance.ShowTime,
	}
}

func PerformanceRowToListResponse(row *repository.PerformanceRow) PerformanceListResponse {
	capacity := row.HallRows * row.HallSeatsPerRow

	return PerformanceListResponse{
		ID:                  row.ID.String(),
		PlayTitle:           row.PlayTitle,
		TheatreHallName:     row.HallName,
		TheatreHallCapacity: capacity,
		ShowTime:            row.ShowTime,
		TicketsAvailable:    capacity - row.TicketsSold,
	}
}

func SeatPlacesToResponse(places []repository.SeatPlace) []SeatPlaceResponse {
	result := make([]SeatPlaceResponse, len(places))
	for i, place := range places {
		result[i] = SeatPlaceResponse{Row: place.Row, Seat: place.Seat}
	}
	return result
}
