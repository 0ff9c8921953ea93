package utils

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// GenerateVerificationCode creates a 6 digit numeric code (100000-999999)
func GenerateVerificationCode() string {
	return fmt.Sprintf("%06d", 100000+rand.Intn(900000))
}

// ParseUUIDList parses a comma-separated list of ids (ex. "a,b,c").
// Blank items are skipped, a malformed id fails the whole list.
func ParseUUIDList(value string) ([]uuid.UUID, error) {
	if value == "" {
		return nil, nil
	}

	parts := strings.Split(value, ",")
	ids := make([]uuid.UUID, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := uuid.Parse(part)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", part, err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// ParseDate parses a YYYY-MM-DD query value
func ParseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}
