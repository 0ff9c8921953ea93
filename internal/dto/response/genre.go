package response

import (
	"theatre-api/internal/data/entity"
)

type GenreResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func GenreToResponse(genre *entity.Genre) GenreResponse {
	return GenreResponse{
		ID:   genre.ID.String(),
		Name: genre.Name,
	}
}

func GenresToResponse(genres []*entity.Genre) []GenreResponse {
	result := make([]GenreResponse, len(genres))
	for i, genre := range genres {
		result[i] = GenreToResponse(genre)
	}
	return result
}
