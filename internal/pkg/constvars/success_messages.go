package constvars

const (
	ResponseScheduleResolved   = "Schedule resolved"
	ResponseScheduleGridBuilt  = "Schedule grid built"
	ResponseTemplateApplied    = "Template applied"
	ResponseTemplatePartial    = "Template applied to some dates only"
	ResponseDaysOff            = "Days reverted to day off"
	ResponseDaysOffPartial     = "Some dates could not be reverted"
	ResponseDayUpdated         = "Day updated"
	ResponseWeeklyRuleReplaced = "Weekly rule replaced"
	ResponseAuditHistory       = "Audit history fetched"
)

const (
	CustomValidationClockTime    = "clock_time"
	CustomValidationCalendarDate = "calendar_date"
	CustomValidationDayOfWeek    = "day_of_week"
)

var CustomValidationErrorMessages = map[string]string{
	"required":      "is required",
	"min":           "must be at least %s",
	"max":           "must be at most %s",
	"oneof":         "must be one of %s",
	"clock_time":    "must be a valid HH:MM time",
	"calendar_date": "must be a valid YYYY-MM-DD date",
	"day_of_week":   "must be a weekday number between 0 (Sunday) and 6 (Saturday)",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}
