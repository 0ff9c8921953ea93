package request

type PlayRequest struct {
	Title       string   `json:"title" validate:"required,min=1,max=255"`
	Description string   `json:"description" validate:"required"`
	GenreIDs    []string `json:"genres,omitempty" validate:"dive,uuid4"`
	ActorIDs    []string `json:"actors,omitempty" validate:"dive,uuid4"`
}
