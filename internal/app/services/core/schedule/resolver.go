package schedule

import (
	"salonflow-service/internal/app/models"
	"salonflow-service/internal/pkg/caldate"
)

// Resolve merges one employee's weekly rules, date exceptions and blocks into
// the effective day for a single date. An exception for the exact date wins
// wholesale over the weekday rule; with neither, the day is non-working. The
// inputs are read-only snapshots and are never mutated.
func Resolve(date caldate.Date, rules []models.WorkRule, exceptions []models.ScheduleException, blocks []models.ScheduleBlock) models.ResolvedDay {
	resolved := models.ResolvedDay{
		Date:   date,
		Blocks: blocksForDate(date, blocks),
	}

	// First match wins when the store holds duplicate exceptions for a date;
	// keeping that deterministic is the writer's problem, not ours.
	for _, exception := range exceptions {
		if exception.Date.Equal(date) {
			resolved.IsWorkingDay = exception.IsWorkingDay
			resolved.StartTime = cloneClock(exception.StartTime)
			resolved.EndTime = cloneClock(exception.EndTime)
			resolved.SourceIsException = true
			return resolved
		}
	}

	weekday := date.Weekday()
	for _, rule := range rules {
		if rule.DayOfWeek == weekday {
			resolved.IsWorkingDay = rule.IsWorkingDay
			resolved.StartTime = cloneClock(rule.StartTime)
			resolved.EndTime = cloneClock(rule.EndTime)
			return resolved
		}
	}

	return resolved
}

// ResolveRange produces one entry per calendar date in the inclusive range,
// ascending, with non-working defaults for dates no record touches.
func ResolveRange(from, to caldate.Date, rules []models.WorkRule, exceptions []models.ScheduleException, blocks []models.ScheduleBlock) []models.ResolvedDay {
	dates := caldate.DatesBetween(from, to)
	days := make([]models.ResolvedDay, 0, len(dates))
	for _, date := range dates {
		days = append(days, Resolve(date, rules, exceptions, blocks))
	}
	return days
}

// blocksForDate attaches the date's blocks verbatim, working day or not; how
// blocks on a non-working day render is the caller's call.
func blocksForDate(date caldate.Date, blocks []models.ScheduleBlock) []models.ScheduleBlock {
	matched := make([]models.ScheduleBlock, 0)
	for _, block := range blocks {
		if block.Date.Equal(date) {
			matched = append(matched, block)
		}
	}
	return matched
}

func cloneClock(clock *caldate.Clock) *caldate.Clock {
	if clock == nil {
		return nil
	}
	copied := *clock
	return &copied
}
