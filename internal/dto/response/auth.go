package response

import "time"

type TokenPairResponse struct {
	AccessToken      string    `json:"access"`
	AccessExpiresAt  time.Time `json:"access_expires_at"`
	RefreshToken     string    `json:"refresh"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
}

type AccessTokenResponse struct {
	AccessToken     string    `json:"access"`
	AccessExpiresAt time.Time `json:"access_expires_at"`
}
