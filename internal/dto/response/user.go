package response

import (
	"theatre-api/internal/data/entity"
)

type UserResponse struct {
	ID              string  `json:"id"`
	Email           string  `json:"email"`
	IsStaff         bool    `json:"is_staff"`
	IsEmailVerified bool    `json:"is_email_verified"`
	IsHallOverseer  bool    `json:"is_hall_overseer"`
	TheatreHallID   *string `json:"theatre_hall,omitempty"`
}

func UserToResponse(user *entity.User) UserResponse {
	resp := UserResponse{
		ID:              user.ID.String(),
		Email:           user.Email,
		IsStaff:         user.IsStaff,
		IsEmailVerified: user.IsEmailVerified,
		IsHallOverseer:  user.IsHallOverseer,
	}

	if user.TheatreHallID != nil {
		hallID := user.TheatreHallID.String()
		resp.TheatreHallID = &hallID
	}

	return resp
}
