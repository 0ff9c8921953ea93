package utils_test

import (
	"testing"
	"time"

	"theatre-api/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAccessToken_RoundTrip(t *testing.T) {
	userID := uuid.New()

	access, err := utils.NewAccessToken("secret", userID, 15)
	assert.NoError(t, err)
	assert.NotEmpty(t, access.Token)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), access.Exp, 5*time.Second)

	parsed, err := utils.ParseAccessToken("secret", access.Token)
	assert.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestParseAccessToken_WrongSecret(t *testing.T) {
	access, err := utils.NewAccessToken("secret", uuid.New(), 15)
	assert.NoError(t, err)

	_, err = utils.ParseAccessToken("another-secret", access.Token)
	assert.Error(t, err)
}

func TestParseAccessToken_Garbage(t *testing.T) {
	_, err := utils.ParseAccessToken("secret", "not.a.token")
	assert.Error(t, err)
}

func TestNewRefreshToken_UniqueAndHashed(t *testing.T) {
	first, err := utils.NewRefreshToken(7)
	assert.NoError(t, err)
	second, err := utils.NewRefreshToken(7)
	assert.NoError(t, err)

	assert.NotEqual(t, first.Raw, second.Raw)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 7), first.Exp, 5*time.Second)

	// Hash is deterministic and never equals the raw token
	assert.Equal(t, utils.HashRefreshToken(first.Raw), utils.HashRefreshToken(first.Raw))
	assert.NotEqual(t, first.Raw, utils.HashRefreshToken(first.Raw))
}
