package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session holds a hashed refresh token. Access tokens are stateless JWTs,
// refresh tokens live here so they can be revoked.
type Session struct {
	BaseSimple
	UserID           uuid.UUID  `db:"user_id"`
	RefreshTokenHash string     `db:"refresh_token_hash"`
	ExpiresAt        time.Time  `db:"expires_at"`
	RevokedAt        *time.Time `db:"revoked_at"`
}
