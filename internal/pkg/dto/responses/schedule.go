package responses

import "salonflow-service/internal/app/models"

// FailedDate pairs a date that could not be written with the reason, so the
// caller can retry exactly that subset.
type FailedDate struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

// BatchOutcome is the per-date partition of a batch edit. A mixed outcome is
// a normal result, never collapsed into a single pass/fail flag.
type BatchOutcome struct {
	SucceededDates []string     `json:"succeededDates"`
	FailedDates    []FailedDate `json:"failedDates"`
}

type ResolvedSchedule struct {
	EmployeeID string               `json:"employeeId"`
	Days       []models.ResolvedDay `json:"days"`
}

// GridPlacement is one interval positioned on the day column. Offsets are in
// pixels for the caller's slot height; raw times ride along untouched.
type GridPlacement struct {
	Kind      string  `json:"kind"`
	ID        string  `json:"id,omitempty"`
	Label     string  `json:"label,omitempty"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	TopOffset float64 `json:"topOffset"`
	Height    float64 `json:"height"`
}

type GridLayout struct {
	Date         string          `json:"date"`
	IsWorkingDay bool            `json:"isWorkingDay"`
	Placements   []GridPlacement `json:"placements"`
}
