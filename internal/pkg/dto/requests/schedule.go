package requests

// TimeTemplate is the working window applied to every selected date.
type TimeTemplate struct {
	StartTime string `json:"startTime" validate:"required,clock_time"`
	EndTime   string `json:"endTime" validate:"required,clock_time"`
}

// BreakTemplate is one break created on every selected date.
type BreakTemplate struct {
	StartTime string `json:"startTime" validate:"required,clock_time"`
	EndTime   string `json:"endTime" validate:"required,clock_time"`
	Reason    string `json:"reason,omitempty" validate:"max=120"`
}

type ApplyTemplate struct {
	Dates    []string        `json:"dates" validate:"required,min=1,dive,calendar_date"`
	Template TimeTemplate    `json:"template" validate:"required"`
	Breaks   []BreakTemplate `json:"breaks" validate:"dive"`
}

type MakeDaysOff struct {
	Dates []string `json:"dates" validate:"required,min=1,dive,calendar_date"`
}

// SetDay edits a single date as an exception. StartTime/EndTime are required
// iff the day is working.
type SetDay struct {
	IsWorkingDay bool   `json:"isWorkingDay"`
	StartTime    string `json:"startTime,omitempty" validate:"omitempty,clock_time"`
	EndTime      string `json:"endTime,omitempty" validate:"omitempty,clock_time"`
}

// ReplaceWeeklyRule replaces the recurring rule for one weekday across all
// weeks. Deliberately a separate request type from SetDay so the destructive
// recurring edit can never be triggered by the one-off endpoint.
type ReplaceWeeklyRule struct {
	IsWorkingDay bool   `json:"isWorkingDay"`
	StartTime    string `json:"startTime,omitempty" validate:"omitempty,clock_time"`
	EndTime      string `json:"endTime,omitempty" validate:"omitempty,clock_time"`
}

// GridEvent is an appointment interval the caller wants laid out alongside
// the day's blocks.
type GridEvent struct {
	ID        string `json:"id,omitempty"`
	StartTime string `json:"startTime" validate:"required,clock_time"`
	EndTime   string `json:"endTime" validate:"required,clock_time"`
	Label     string `json:"label,omitempty"`
}

type BuildGrid struct {
	Date       string      `json:"date" validate:"required,calendar_date"`
	Events     []GridEvent `json:"events" validate:"dive"`
	StartHour  int         `json:"startHour" validate:"min=0,max=23"`
	EndHour    int         `json:"endHour" validate:"min=1,max=24"`
	SlotHeight float64     `json:"slotHeight" validate:"required,gt=0"`
}
