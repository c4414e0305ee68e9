package models

import (
	"salonflow-service/internal/pkg/caldate"
	"time"
)

// WorkRule is the weekly recurring template for one weekday. At most one rule
// exists per (employee, weekday); StartTime/EndTime are set iff IsWorkingDay.
type WorkRule struct {
	ID           string         `json:"id,omitempty"`
	EmployeeID   string         `json:"employeeId"`
	DayOfWeek    time.Weekday   `json:"dayOfWeek"`
	IsWorkingDay bool           `json:"isWorkingDay"`
	StartTime    *caldate.Clock `json:"startTime,omitempty"`
	EndTime      *caldate.Clock `json:"endTime,omitempty"`
}

// ScheduleException overrides the rule outcome for a single date. When one
// exists it replaces the weekday rule wholesale, no field-level merging.
type ScheduleException struct {
	ID           string         `json:"id,omitempty"`
	EmployeeID   string         `json:"employeeId"`
	Date         caldate.Date   `json:"date"`
	IsWorkingDay bool           `json:"isWorkingDay"`
	StartTime    *caldate.Clock `json:"startTime,omitempty"`
	EndTime      *caldate.Clock `json:"endTime,omitempty"`
}

// ScheduleBlock is an unavailable sub-interval inside a working day, e.g. a
// lunch break.
type ScheduleBlock struct {
	ID         string        `json:"id,omitempty"`
	EmployeeID string        `json:"employeeId"`
	Date       caldate.Date  `json:"date"`
	StartTime  caldate.Clock `json:"startTime"`
	EndTime    caldate.Clock `json:"endTime"`
	Reason     string        `json:"reason,omitempty"`
}

// ResolvedDay is the computed outcome of merging rule, exception and blocks
// for one date. It is derived on demand and never persisted.
type ResolvedDay struct {
	Date              caldate.Date    `json:"date"`
	IsWorkingDay      bool            `json:"isWorkingDay"`
	StartTime         *caldate.Clock  `json:"startTime,omitempty"`
	EndTime           *caldate.Clock  `json:"endTime,omitempty"`
	Blocks            []ScheduleBlock `json:"blocks"`
	SourceIsException bool            `json:"sourceIsException"`
}
