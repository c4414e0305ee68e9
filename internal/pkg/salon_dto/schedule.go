package salon_dto

// Wire types for the salon API (the external schedule store). Dates arrive as
// timestamp-bearing strings ("2026-02-16T00:00:00.000Z"); they are normalized
// to caldate.Date by the salonapi clients and never compared in string form.

type WorkRule struct {
	ID           string `json:"id,omitempty"`
	EmployeeID   string `json:"employeeId"`
	DayOfWeek    int    `json:"dayOfWeek"`
	IsWorkingDay bool   `json:"isWorkingDay"`
	StartTime    string `json:"startTime,omitempty"`
	EndTime      string `json:"endTime,omitempty"`
}

type ScheduleException struct {
	ID           string `json:"id,omitempty"`
	EmployeeID   string `json:"employeeId"`
	Date         string `json:"date"`
	IsWorkingDay bool   `json:"isWorkingDay"`
	StartTime    string `json:"startTime,omitempty"`
	EndTime      string `json:"endTime,omitempty"`
}

type ScheduleBlock struct {
	ID         string `json:"id,omitempty"`
	EmployeeID string `json:"employeeId"`
	Date       string `json:"date"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Reason     string `json:"reason,omitempty"`
}

type WorkRuleList struct {
	Data []WorkRule `json:"data"`
}

type SaveWorkRulesRequest struct {
	Rules []WorkRule `json:"rules"`
}

type ScheduleExceptionList struct {
	Data []ScheduleException `json:"data"`
}

type ScheduleBlockList struct {
	Data []ScheduleBlock `json:"data"`
}

// ErrorOutcome is the salon API's error body.
type ErrorOutcome struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
