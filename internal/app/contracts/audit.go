package contracts

import (
	"context"
	"salonflow-service/internal/app/models"
)

type ScheduleAuditRepository interface {
	CreateScheduleAudit(ctx context.Context, audit *models.ScheduleAudit) error
	FindScheduleAuditsByEmployeeID(ctx context.Context, employeeID string, limit int64) ([]models.ScheduleAudit, error)
}
