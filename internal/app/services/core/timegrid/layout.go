package timegrid

import (
	"salonflow-service/internal/app/models"
	"salonflow-service/internal/pkg/caldate"
	"salonflow-service/internal/pkg/dto/responses"
)

const (
	PlacementKindAppointment = "appointment"
	PlacementKindBlock       = "block"

	// DefaultPadding trims a sliver off each placement so adjacent intervals
	// do not visually touch; DefaultMinHeight keeps very short intervals
	// clickable. Both are presentation-only and never alter stored times.
	DefaultPadding   = 2.0
	DefaultMinHeight = 20.0
)

// Window is the fixed-hour display column the placements are positioned in.
type Window struct {
	StartHour  int
	EndHour    int
	SlotHeight float64
	Padding    float64
	MinHeight  float64
}

// Event is an external interval to place, typically a booked appointment.
type Event struct {
	ID        string
	Label     string
	StartTime caldate.Clock
	EndTime   caldate.Clock
}

// Layout positions the day's appointments and blocks on the window column.
// Intervals outside the window are still computed without clamping, and
// overlapping intervals are placed independently; clipping and double-booking
// are the caller's concerns.
func Layout(resolved models.ResolvedDay, events []Event, window Window) responses.GridLayout {
	layout := responses.GridLayout{
		Date:         resolved.Date.String(),
		IsWorkingDay: resolved.IsWorkingDay,
		Placements:   make([]responses.GridPlacement, 0, len(events)+len(resolved.Blocks)),
	}

	for _, event := range events {
		layout.Placements = append(layout.Placements, place(PlacementKindAppointment, event.ID, event.Label, event.StartTime, event.EndTime, window))
	}
	for _, block := range resolved.Blocks {
		layout.Placements = append(layout.Placements, place(PlacementKindBlock, block.ID, block.Reason, block.StartTime, block.EndTime, window))
	}

	return layout
}

func place(kind, id, label string, start, end caldate.Clock, window Window) responses.GridPlacement {
	topOffset := (start.DecimalHours() - float64(window.StartHour)) * window.SlotHeight
	height := (end.DecimalHours()-start.DecimalHours())*window.SlotHeight - window.Padding
	if height < window.MinHeight {
		height = window.MinHeight
	}
	return responses.GridPlacement{
		Kind:      kind,
		ID:        id,
		Label:     label,
		StartTime: start.String(),
		EndTime:   end.String(),
		TopOffset: topOffset,
		Height:    height,
	}
}
