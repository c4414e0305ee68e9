package caldate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	t.Run("plain calendar date", func(t *testing.T) {
		date, err := ParseDate("2026-02-16")
		assert.NoError(t, err)
		assert.Equal(t, Date{Year: 2026, Month: 2, Day: 16}, date)
	})

	t.Run("timestamp-bearing string is truncated to the date part", func(t *testing.T) {
		date, err := ParseDate("2026-02-16T00:00:00.000Z")
		assert.NoError(t, err)
		assert.Equal(t, "2026-02-16", date.String())
	})

	t.Run("timestamp with offset keeps the stated calendar date", func(t *testing.T) {
		date, err := ParseDate("2026-02-16T23:30:00+07:00")
		assert.NoError(t, err)
		assert.Equal(t, "2026-02-16", date.String())
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		_, err := ParseDate("16/02/2026")
		assert.Error(t, err)

		_, err = ParseDate("")
		assert.Error(t, err)
	})
}

func TestDateWeekday(t *testing.T) {
	date, err := ParseDate("2026-02-16")
	assert.NoError(t, err)
	assert.Equal(t, time.Monday, date.Weekday())
}

func TestDatesBetween(t *testing.T) {
	t.Run("inclusive ascending week", func(t *testing.T) {
		from := Date{Year: 2026, Month: 2, Day: 16}
		dates := DatesBetween(from, from.AddDays(6))
		assert.Len(t, dates, 7)
		assert.Equal(t, "2026-02-16", dates[0].String())
		assert.Equal(t, "2026-02-22", dates[6].String())
		for i := 1; i < len(dates); i++ {
			assert.True(t, dates[i-1].Before(dates[i]))
		}
	})

	t.Run("single day range", func(t *testing.T) {
		day := Date{Year: 2026, Month: 2, Day: 16}
		dates := DatesBetween(day, day)
		assert.Len(t, dates, 1)
	})

	t.Run("crosses month boundary", func(t *testing.T) {
		from := Date{Year: 2026, Month: 2, Day: 27}
		dates := DatesBetween(from, Date{Year: 2026, Month: 3, Day: 2})
		assert.Len(t, dates, 4)
		assert.Equal(t, "2026-03-01", dates[2].String())
	})

	t.Run("inverted range yields nothing", func(t *testing.T) {
		from := Date{Year: 2026, Month: 2, Day: 16}
		assert.Empty(t, DatesBetween(from, from.AddDays(-1)))
	})
}

func TestStartOfWeek(t *testing.T) {
	t.Run("midweek snaps back to Monday", func(t *testing.T) {
		thursday := Date{Year: 2026, Month: 2, Day: 19}
		assert.Equal(t, "2026-02-16", thursday.StartOfWeek().String())
	})

	t.Run("Sunday belongs to the preceding Monday's week", func(t *testing.T) {
		sunday := Date{Year: 2026, Month: 2, Day: 22}
		assert.Equal(t, "2026-02-16", sunday.StartOfWeek().String())
	})

	t.Run("Monday is its own week start", func(t *testing.T) {
		monday := Date{Year: 2026, Month: 2, Day: 16}
		assert.Equal(t, monday, monday.StartOfWeek())
	})
}

func TestDateComparisons(t *testing.T) {
	earlier := Date{Year: 2026, Month: 2, Day: 16}
	later := Date{Year: 2026, Month: 3, Day: 1}

	assert.True(t, earlier.Before(later))
	assert.True(t, later.After(earlier))
	assert.True(t, earlier.Equal(Date{Year: 2026, Month: 2, Day: 16}))
	assert.False(t, earlier.Equal(later))
}

func TestDateTextMarshalling(t *testing.T) {
	date := Date{Year: 2026, Month: 2, Day: 16}

	text, err := date.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "2026-02-16", string(text))

	var parsed Date
	assert.NoError(t, parsed.UnmarshalText([]byte("2026-02-16T00:00:00.000Z")))
	assert.Equal(t, date, parsed)
}
