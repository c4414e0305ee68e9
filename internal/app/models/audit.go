package models

import "time"

// ScheduleAudit records one batch edit: who changed whose schedule, what was
// applied, and the per-date outcome. Stored in Mongo for back-office history.
type ScheduleAudit struct {
	ID             string    `bson:"_id,omitempty" json:"id,omitempty"`
	ActorUserID    string    `bson:"actor_user_id" json:"actorUserId"`
	ActorRole      string    `bson:"actor_role" json:"actorRole"`
	EmployeeID     string    `bson:"employee_id" json:"employeeId"`
	Operation      string    `bson:"operation" json:"operation"`
	Template       string    `bson:"template,omitempty" json:"template,omitempty"`
	SucceededDates []string  `bson:"succeeded_dates" json:"succeededDates"`
	FailedDates    []string  `bson:"failed_dates" json:"failedDates"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
}

const (
	AuditOperationApplyTemplate     = "apply_template"
	AuditOperationMakeDaysOff       = "make_days_off"
	AuditOperationSetDay            = "set_day"
	AuditOperationReplaceWeeklyRule = "replace_weekly_rule"
)
