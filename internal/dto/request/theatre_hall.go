package request

type TheatreHallRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=255"`
	Rows        int    `json:"rows" validate:"required,gte=1"`
	SeatsPerRow int    `json:"seats_per_row" validate:"required,gte=1"`
}
