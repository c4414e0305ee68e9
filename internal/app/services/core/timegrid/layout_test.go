package timegrid

import (
	"salonflow-service/internal/app/models"
	"salonflow-service/internal/pkg/caldate"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayout(t *testing.T) {
	date := caldate.Date{Year: 2026, Month: 2, Day: 16}
	window := Window{StartHour: 9, EndHour: 23, SlotHeight: 80}

	t.Run("offset and height follow the window math", func(t *testing.T) {
		day := models.ResolvedDay{Date: date, IsWorkingDay: true}
		events := []Event{{
			ID:        "appt-1",
			StartTime: caldate.Clock{Hour: 10},
			EndTime:   caldate.Clock{Hour: 11, Minute: 30},
		}}

		layout := Layout(day, events, window)

		assert.Len(t, layout.Placements, 1)
		placement := layout.Placements[0]
		assert.Equal(t, PlacementKindAppointment, placement.Kind)
		assert.InDelta(t, 80.0, placement.TopOffset, 1e-9)
		assert.InDelta(t, 120.0, placement.Height, 1e-9)
		assert.Equal(t, "10:00", placement.StartTime)
		assert.Equal(t, "11:30", placement.EndTime)
	})

	t.Run("padding shrinks, min height floors", func(t *testing.T) {
		padded := window
		padded.Padding = 2
		padded.MinHeight = 20
		day := models.ResolvedDay{Date: date, IsWorkingDay: true}

		layout := Layout(day, []Event{
			{ID: "long", StartTime: caldate.Clock{Hour: 10}, EndTime: caldate.Clock{Hour: 11, Minute: 30}},
			{ID: "short", StartTime: caldate.Clock{Hour: 10}, EndTime: caldate.Clock{Hour: 10, Minute: 5}},
		}, padded)

		assert.InDelta(t, 118.0, layout.Placements[0].Height, 1e-9)
		assert.InDelta(t, 20.0, layout.Placements[1].Height, 1e-9, "5 minutes would be 4.67px, floored for clickability")
	})

	t.Run("blocks are placed after events with their reason as label", func(t *testing.T) {
		day := models.ResolvedDay{
			Date:         date,
			IsWorkingDay: true,
			Blocks: []models.ScheduleBlock{{
				ID:        "blk-1",
				Date:      date,
				StartTime: caldate.Clock{Hour: 13},
				EndTime:   caldate.Clock{Hour: 14},
				Reason:    "lunch",
			}},
		}

		layout := Layout(day, nil, window)

		assert.Len(t, layout.Placements, 1)
		block := layout.Placements[0]
		assert.Equal(t, PlacementKindBlock, block.Kind)
		assert.Equal(t, "lunch", block.Label)
		assert.InDelta(t, 320.0, block.TopOffset, 1e-9)
		assert.InDelta(t, 80.0, block.Height, 1e-9)
	})

	t.Run("intervals outside the window are computed without clamping", func(t *testing.T) {
		day := models.ResolvedDay{Date: date, IsWorkingDay: true}
		events := []Event{{
			ID:        "early",
			StartTime: caldate.Clock{Hour: 7},
			EndTime:   caldate.Clock{Hour: 8},
		}}

		layout := Layout(day, events, window)

		assert.InDelta(t, -160.0, layout.Placements[0].TopOffset, 1e-9)
	})

	t.Run("overlapping intervals are laid out independently", func(t *testing.T) {
		day := models.ResolvedDay{Date: date, IsWorkingDay: true}
		events := []Event{
			{ID: "a", StartTime: caldate.Clock{Hour: 10}, EndTime: caldate.Clock{Hour: 12}},
			{ID: "b", StartTime: caldate.Clock{Hour: 11}, EndTime: caldate.Clock{Hour: 13}},
		}

		layout := Layout(day, events, window)

		assert.Len(t, layout.Placements, 2)
		assert.InDelta(t, 80.0, layout.Placements[0].TopOffset, 1e-9)
		assert.InDelta(t, 160.0, layout.Placements[1].TopOffset, 1e-9)
	})

	t.Run("non-working day still returns placements verbatim", func(t *testing.T) {
		day := models.ResolvedDay{
			Date: date,
			Blocks: []models.ScheduleBlock{{
				ID:        "blk-1",
				Date:      date,
				StartTime: caldate.Clock{Hour: 10},
				EndTime:   caldate.Clock{Hour: 11},
			}},
		}

		layout := Layout(day, nil, window)

		assert.False(t, layout.IsWorkingDay)
		assert.Len(t, layout.Placements, 1)
	})
}
