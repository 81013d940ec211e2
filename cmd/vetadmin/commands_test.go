package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayRange_StartsAtLocalMidnight(t *testing.T) {
	zone := time.FixedZone("UTC+8", 8*60*60)
	now := time.Date(2026, 3, 5, 10, 30, 45, 0, zone)

	start, end := dayRange(now)

	assert.Equal(t, time.Date(2026, 3, 5, 0, 0, 0, 0, zone), start)
	assert.Equal(t, time.Date(2026, 3, 6, 0, 0, 0, 0, zone), end)
	assert.Equal(t, zone, start.Location())
}

func TestDayRange_JustAfterMidnight(t *testing.T) {
	zone := time.FixedZone("UTC-5", -5*60*60)
	now := time.Date(2026, 3, 5, 0, 0, 1, 0, zone)

	start, end := dayRange(now)

	assert.Equal(t, time.Date(2026, 3, 5, 0, 0, 0, 0, zone), start)
	assert.Equal(t, 24*time.Hour, end.Sub(start))
}
