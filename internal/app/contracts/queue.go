package contracts

import "context"

// ScheduleUpdatedEvent tells downstream consumers (the appointment-booking
// subsystem) that resolved availability for these dates is stale.
type ScheduleUpdatedEvent struct {
	EmployeeID string   `json:"employee_id"`
	Dates      []string `json:"dates"`
	Operation  string   `json:"operation"`
}

type SchedulePublisher interface {
	PublishScheduleUpdated(ctx context.Context, event ScheduleUpdatedEvent) error
}
