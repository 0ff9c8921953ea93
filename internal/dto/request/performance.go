package request

type PerformanceRequest struct {
	PlayID        string `json:"play" validate:"required,uuid4"`
	TheatreHallID string `json:"theatre_hall" validate:"required,uuid4"`
	ShowTime      string `json:"show_time" validate:"required"`
}
