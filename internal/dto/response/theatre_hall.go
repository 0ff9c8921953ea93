package response

import (
	"theatre-api/internal/data/entity"
)

type TheatreHallResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Rows        int    `json:"rows"`
	SeatsPerRow int    `json:"seats_per_row"`
	Capacity    int    `json:"capacity"`
}

func TheatreHallToResponse(hall *entity.TheatreHall) TheatreHallResponse {
	return TheatreHallResponse{
		ID:          hall.ID.String(),
		Name:        hall.Name,
		Rows:        hall.Rows,
		SeatsPerRow: hall.SeatsPerRow,
		Capacity:    hall.Capacity(),
	}
}

func TheatreHallsToResponse(halls []*entity.TheatreHall) []TheatreHallResponse {
	result := make([]TheatreHallResponse, len(halls))
	for i, hall := range halls {
		result[i] = TheatreHallToResponse(hall)
	}
	return result
}
