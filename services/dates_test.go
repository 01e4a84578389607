package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDateFromMessageYesterday(t *testing.T) {
	now := time.Date(2026, 7, 15, 10, 30, 0, 0, time.UTC)

	got := ParseDateFromMessageAt("I spent 100 on pizza yesterday", now)

	assert.Equal(t, 2026, got.Year())
	assert.Equal(t, time.July, got.Month())
	assert.Equal(t, 14, got.Day())
}

func TestParseDateFromMessageTomorrow(t *testing.T) {
	now := time.Date(2026, 7, 15, 10, 30, 0, 0, time.UTC)

	got := ParseDateFromMessageAt("paying 200 for jeans tomorrow", now)

	assert.Equal(t, time.July, got.Month())
	assert.Equal(t, 16, got.Day())
}

// No parseable expression is not an error, the current time is the answer.
func TestParseDateFromMessageDefaultsToNow(t *testing.T) {
	now := time.Date(2026, 7, 15, 10, 30, 0, 0, time.UTC)

	got := ParseDateFromMessageAt("spent 50 on pizza", now)

	assert.True(t, got.Equal(now), "expected fallback to now, got %v", got)
}
