package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessToken is a signed HS256 JWT together with its expiry.
type AccessToken struct {
	Token string
	Exp   time.Time
}

// RefreshToken is a long-lived opaque token used to obtain new access tokens.
// Only a SHA-256 hash of the raw string is stored server side.
type RefreshToken struct {
	Raw string
	Exp time.Time
}

// NewAccessToken builds and signs an HS256 JWT for a user.
// Claims: sub (user id), exp, iat.
func NewAccessToken(secret string, userID uuid.UUID, ttlMinutes int) (AccessToken, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlMinutes) * time.Minute)

	claims := jwt.MapClaims{
		"sub": userID.String(),
		"exp": exp.Unix(),
		"iat": time.Now().UTC().Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}

	return AccessToken{Token: signed, Exp: exp}, nil
}

// ParseAccessToken validates signature and expiry and returns the subject user id.
func ParseAccessToken(secret, tokenStr string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse access token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return uuid.Nil, fmt.Errorf("invalid access token")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return uuid.Nil, fmt.Errorf("access token subject: %w", err)
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, fmt.Errorf("access token subject %q: %w", sub, err)
	}

	return userID, nil
}

// NewRefreshToken returns a cryptographically secure random token and its expiry.
func NewRefreshToken(ttlDays int) (RefreshToken, error) {
	raw, err := randomHex(32) // 32 bytes -> 64 hex chars
	if err != nil {
		return RefreshToken{}, err
	}

	return RefreshToken{
		Raw: raw,
		Exp: time.Now().UTC().Add(time.Duration(ttlDays) * 24 * time.Hour),
	}, nil
}

// HashRefreshToken returns the hex SHA-256 of a raw refresh token.
func HashRefreshToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
