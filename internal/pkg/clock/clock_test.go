package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-storyteller/internal/pkg/clock"
)

func TestTodayUsesCalendarDay(t *testing.T) {
	c := clock.NewFixed(time.Date(2026, 10, 18, 23, 59, 0, 0, time.UTC))

	assert.Equal(t, "2026-10-18", clock.Today(c))
}

func TestAdvanceRollsOverMidnight(t *testing.T) {
	c := clock.NewFixed(time.Date(2026, 10, 18, 23, 0, 0, 0, time.UTC))
	c.Advance(2 * time.Hour)

	assert.Equal(t, "2026-10-19", clock.Today(c))
}
