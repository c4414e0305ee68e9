package caldate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	t.Run("HH:MM", func(t *testing.T) {
		clock, err := ParseClock("10:30")
		assert.NoError(t, err)
		assert.Equal(t, Clock{Hour: 10, Minute: 30}, clock)
	})

	t.Run("HH.MM dot separator", func(t *testing.T) {
		clock, err := ParseClock("09.15")
		assert.NoError(t, err)
		assert.Equal(t, Clock{Hour: 9, Minute: 15}, clock)
	})

	t.Run("seconds are discarded", func(t *testing.T) {
		clock, err := ParseClock("23:59:59")
		assert.NoError(t, err)
		assert.Equal(t, Clock{Hour: 23, Minute: 59}, clock)
	})

	t.Run("rejects out-of-range and malformed values", func(t *testing.T) {
		for _, value := range []string{"24:00", "10:60", "-1:30", "ten", "10", ""} {
			_, err := ParseClock(value)
			assert.Error(t, err, value)
		}
	})
}

func TestClockAccessors(t *testing.T) {
	clock := Clock{Hour: 11, Minute: 30}

	assert.Equal(t, "11:30", clock.String())
	assert.Equal(t, 690, clock.Minutes())
	assert.InDelta(t, 11.5, clock.DecimalHours(), 1e-9)
	assert.True(t, Clock{Hour: 10}.Before(clock))
	assert.False(t, clock.Before(clock))
}
