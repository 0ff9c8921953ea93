package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Base
	Email           string `db:"email"`
	PasswordHash    string `db:"password"`
	IsStaff         bool   `db:"is_staff"`
	IsEmailVerified bool   `db:"is_email_verified"`
	IsHallOverseer  bool   `db:"is_hall_overseer"`

	// Overseers are scoped to a single hall. Nil for everyone else.
	TheatreHallID *uuid.UUID `db:"theatre_hall_id"`

	// Pending email verification state. Both nil once verified.
	VerificationCode        *string    `db:"verification_code"`
	VerificationCodeTimeout *time.Time `db:"verification_code_timeout"`
}
