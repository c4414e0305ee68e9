package contracts

import (
	"context"
	"salonflow-service/internal/app/models"
	"salonflow-service/internal/pkg/caldate"
	"salonflow-service/internal/pkg/dto/responses"
	"time"
)

// Store clients wrap the salon API, the external owner of schedule data.

type WorkRuleStoreClient interface {
	GetRules(ctx context.Context, employeeID string) ([]models.WorkRule, error)
	SaveRules(ctx context.Context, employeeID string, rules []models.WorkRule) error
}

type ExceptionStoreClient interface {
	GetExceptions(ctx context.Context, employeeID string, from, to caldate.Date) ([]models.ScheduleException, error)
	SaveException(ctx context.Context, exception models.ScheduleException) error
	DeleteException(ctx context.Context, employeeID string, date caldate.Date) error
}

type BlockStoreClient interface {
	GetBlocks(ctx context.Context, employeeID string, from, to caldate.Date) ([]models.ScheduleBlock, error)
	CreateBlock(ctx context.Context, block models.ScheduleBlock) (*models.ScheduleBlock, error)
	DeleteBlock(ctx context.Context, blockID string) error
}

// Usecase inputs carry parsed caldate values only; raw strings stop at the
// controller.

type TimeTemplateInput struct {
	StartTime caldate.Clock
	EndTime   caldate.Clock
}

type BreakInput struct {
	StartTime caldate.Clock
	EndTime   caldate.Clock
	Reason    string
}

type ApplyTemplateInput struct {
	Dates    []caldate.Date
	Template TimeTemplateInput
	Breaks   []BreakInput
}

type DayEditInput struct {
	IsWorkingDay bool
	StartTime    *caldate.Clock
	EndTime      *caldate.Clock
}

type GridEventInput struct {
	ID        string
	Label     string
	StartTime caldate.Clock
	EndTime   caldate.Clock
}

type BuildGridInput struct {
	Date       caldate.Date
	Events     []GridEventInput
	StartHour  int
	EndHour    int
	SlotHeight float64
}

type ScheduleUsecaseIface interface {
	ResolveDay(ctx context.Context, employeeID string, date caldate.Date) (*models.ResolvedDay, error)
	ResolveRange(ctx context.Context, employeeID string, from, to caldate.Date) (*responses.ResolvedSchedule, error)
	BuildGrid(ctx context.Context, employeeID string, input BuildGridInput) (*responses.GridLayout, error)
	ApplyTemplate(ctx context.Context, session *models.Session, employeeID string, input ApplyTemplateInput) (*responses.BatchOutcome, error)
	MakeDaysOff(ctx context.Context, session *models.Session, employeeID string, dates []caldate.Date) (*responses.BatchOutcome, error)
	SetDay(ctx context.Context, session *models.Session, employeeID string, date caldate.Date, day DayEditInput) (*models.ResolvedDay, error)
	ReplaceWeeklyRule(ctx context.Context, session *models.Session, employeeID string, dayOfWeek time.Weekday, day DayEditInput) error
	AuditHistory(ctx context.Context, employeeID string, limit int64) ([]models.ScheduleAudit, error)
}
