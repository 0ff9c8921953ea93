package response

import (
	"theatre-api/internal/data/entity"
	"theatre-api/internal/data/repository"
)

type PlayResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Genres      []string `json:"genres"`
	Actors      []string `json:"actors"`
	ImagePath   *string  `json:"image,omitempty"`
}

// PlayListResponse uses name slugs for genres and actors and nests the
// play's scheduled performances with their availability.
type PlayListResponse struct {
	ID           string                    `json:"id"`
	Title        string                    `json:"title"`
	Description  string                    `json:"description"`
	Genres       []string                  `json:"genres"`
	Actors       []string                  `json:"actors"`
	Performances []PerformanceListResponse `json:"performances"`
	ImagePath    *string                   `json:"image,omitempty"`
}

// PlayDetailResponse nests full genre and actor objects.
type PlayDetailResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Genres      []GenreResponse `json:"genres"`
	Actors      []ActorResponse `json:"actors"`
	ImagePath   *string         `json:"image,omitempty"`
}

func PlayToResponse(play *entity.Play, genres []*entity.Genre, actors []*entity.Actor) PlayResponse {
	genreIDs := make([]string, len(genres))
	for i, genre := range genres {
		genreIDs[i] = genre.ID.String()
	}
	actorIDs := make([]string, len(actors))
	for i, actor := range actors {
		actorIDs[i] = actor.ID.String()
	}

	return PlayResponse{
		ID:          play.ID.String(),
		Title:       play.Title,
		Description: play.Description,
		Genres:      genreIDs,
		Actors:      actorIDs,
		ImagePath:   play.ImagePath,
	}
}

func PlayToListResponse(play *entity.Play, genres []*entity.Genre, actors []*entity.Actor, performances []*repository.PerformanceRow) PlayListResponse {
	genreNames := make([]string, len(genres))
	for i, genre := range genres {
		genreNames[i] = genre.Name
	}
	actorNames := make([]string, len(actors))
	for i, actor := range actors {
		actorNames[i] = actor.FullName()
	}
	performanceList := make([]PerformanceListResponse, len(performances))
	for i, row := range performances {
		performanceList[i] = PerformanceRowToListResponse(row)
	}

	return PlayListResponse{
		ID:           play.ID.String(),
		Title:        play.Title,
		Description:  play.Description,
		Genres:       genreNames,
		Actors:       actorNames,
		Performances: performanceList,
		ImagePath:    play.ImagePath,
	}
}

func PlayToDetailResponse(play *entity.Play, genres []*entity.Genre, actors []*entity.Actor) PlayDetailResponse {
	return PlayDetailResponse{
		ID:          play.ID.String(),
		Title:       play.Title,
		Description: play.Description,
		Genres:      GenresToResponse(genres),
		Actors:      ActorsToResponse(actors),
		ImagePath:   play.ImagePath,
	}
}
