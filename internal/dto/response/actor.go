package response

import (
	"theatre-api/internal/data/entity"
)

type ActorResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
}

func ActorToResponse(actor *entity.Actor) ActorResponse {
	return ActorResponse{
		ID:        actor.ID.String(),
		FirstName: actor.FirstName,
		LastName:  actor.LastName,
		FullName:  actor.FullName(),
	}
}

func ActorsToResponse(actors []*entity.Actor) []ActorResponse {
	result := make([]ActorResponse, len(actors))
	for i, actor := range actors {
		result[i] = ActorToResponse(actor)
	}
	return result
}
