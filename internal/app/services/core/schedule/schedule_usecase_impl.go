package schedule

import (
	"context"
	"errors"
	"fmt"
	"salonflow-service/internal/app/config"
	"salonflow-service/internal/app/contracts"
	"salonflow-service/internal/app/models"
	"salonflow-service/internal/app/services/core/policy"
	"salonflow-service/internal/app/services/core/timegrid"
	"salonflow-service/internal/pkg/caldate"
	"salonflow-service/internal/pkg/constvars"
	"salonflow-service/internal/pkg/dto/responses"
	"salonflow-service/internal/pkg/exceptions"
	"sort"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	defaultAuditHistoryLimit = int64(50)
	maxAuditHistoryLimit     = int64(200)
)

type scheduleUsecase struct {
	WorkRuleClient  contracts.WorkRuleStoreClient
	ExceptionClient contracts.ExceptionStoreClient
	BlockClient     contracts.BlockStoreClient
	RedisRepository contracts.RedisRepository
	AuditRepository contracts.ScheduleAuditRepository
	Publisher       contracts.SchedulePublisher
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

var (
	scheduleUsecaseInstance contracts.ScheduleUsecaseIface
	onceScheduleUsecase     sync.Once
)

func NewScheduleUsecase(
	workRuleClient contracts.WorkRuleStoreClient,
	exceptionClient contracts.ExceptionStoreClient,
	blockClient contracts.BlockStoreClient,
	redisRepository contracts.RedisRepository,
	auditRepository contracts.ScheduleAuditRepository,
	publisher contracts.SchedulePublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ScheduleUsecaseIface {
	onceScheduleUsecase.Do(func() {
		scheduleUsecaseInstance = &scheduleUsecase{
			WorkRuleClient:  workRuleClient,
			ExceptionClient: exceptionClient,
			BlockClient:     blockClient,
			RedisRepository: redisRepository,
			AuditRepository: auditRepository,
			Publisher:       publisher,
			InternalConfig:  internalConfig,
			Log:             logger,
		}
	})
	return scheduleUsecaseInstance
}

func (uc *scheduleUsecase) ResolveDay(ctx context.Context, employeeID string, date caldate.Date) (*models.ResolvedDay, error) {
	rules, exceptionList, blocks, err := uc.fetchSnapshot(ctx, employeeID, date, date)
	if err != nil {
		return nil, err
	}
	resolved := Resolve(date, rules, exceptionList, blocks)
	return &resolved, nil
}

func (uc *scheduleUsecase) ResolveRange(ctx context.Context, employeeID string, from, to caldate.Date) (*responses.ResolvedSchedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	cacheKey := resolvedCacheKey(employeeID, from, to)
	cached, err := uc.RedisRepository.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		schedule := new(responses.ResolvedSchedule)
		if err := json.Unmarshal([]byte(cached), schedule); err == nil {
			return schedule, nil
		}
		uc.Log.Warn("scheduleUsecase.ResolveRange dropping unreadable cache entry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEmployeeIDKey, employeeID),
		)
	}

	rules, exceptionList, blocks, err := uc.fetchSnapshot(ctx, employeeID, from, to)
	if err != nil {
		return nil, err
	}

	schedule := &responses.ResolvedSchedule{
		EmployeeID: employeeID,
		Days:       ResolveRange(from, to, rules, exceptionList, blocks),
	}

	ttl := time.Duration(uc.InternalConfig.App.ScheduleCacheTTLInMinutes) * time.Minute
	if err := uc.RedisRepository.Set(ctx, cacheKey, schedule, ttl); err != nil {
		uc.Log.Warn("scheduleUsecase.ResolveRange error caching resolved schedule",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEmployeeIDKey, employeeID),
			zap.Error(err),
		)
	}

	return schedule, nil
}

func (uc *scheduleUsecase) BuildGrid(ctx context.Context, employeeID string, input contracts.BuildGridInput) (*responses.GridLayout, error) {
	resolved, err := uc.ResolveDay(ctx, employeeID, input.Date)
	if err != nil {
		return nil, err
	}

	events := make([]timegrid.Event, 0, len(input.Events))
	for _, event := range input.Events {
		events = append(events, timegrid.Event{
			ID:        event.ID,
			Label:     event.Label,
			StartTime: event.StartTime,
			EndTime:   event.EndTime,
		})
	}

	layout := timegrid.Layout(*resolved, events, timegrid.Window{
		StartHour:  input.StartHour,
		EndHour:    input.EndHour,
		SlotHeight: input.SlotHeight,
		Padding:    timegrid.DefaultPadding,
		MinHeight:  timegrid.DefaultMinHeight,
	})
	return &layout, nil
}

// ApplyTemplate writes the template to every selected date as exception plus
// blocks. Dates are processed sequentially in ascending order; a failure on
// one date never blocks or rolls back the others, it only lands that date in
// FailedDates. Recovery is forward-only: every step is an idempotent upsert
// or delete, so retrying just the failed dates converges.
func (uc *scheduleUsecase) ApplyTemplate(ctx context.Context, session *models.Session, employeeID string, input contracts.ApplyTemplateInput) (*responses.BatchOutcome, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.ApplyTemplate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmployeeIDKey, employeeID),
		zap.Int("date_count", len(input.Dates)),
	)

	if !policy.CanEdit(session, employeeID) {
		return nil, exceptions.ErrScheduleEditDenied(nil)
	}
	if err := validateTemplate(input.Template, input.Breaks); err != nil {
		return nil, err
	}
	dates := normalizeDates(input.Dates)
	if len(dates) == 0 {
		return nil, exceptions.ErrEmptyDateSelection()
	}

	outcome := newBatchOutcome()
	for _, date := range dates {
		if err := uc.applyTemplateToDate(ctx, employeeID, date, input); err != nil {
			uc.Log.Error("scheduleUsecase.ApplyTemplate date failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingEmployeeIDKey, employeeID),
				zap.String(constvars.LoggingDateKey, date.String()),
				zap.Error(err),
			)
			outcome.FailedDates = append(outcome.FailedDates, responses.FailedDate{
				Date:   date.String(),
				Reason: failureReason(err),
			})
			continue
		}
		outcome.SucceededDates = append(outcome.SucceededDates, date.String())
	}

	uc.finishBatch(ctx, session, employeeID, models.AuditOperationApplyTemplate, templateLabel(input.Template), outcome)
	return outcome, nil
}

// MakeDaysOff deletes the exception and every block for each date, reverting
// it to its weekly rule (or to non-working when no rule exists).
func (uc *scheduleUsecase) MakeDaysOff(ctx context.Context, session *models.Session, employeeID string, selection []caldate.Date) (*responses.BatchOutcome, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.MakeDaysOff called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmployeeIDKey, employeeID),
		zap.Int("date_count", len(selection)),
	)

	if !policy.CanEdit(session, employeeID) {
		return nil, exceptions.ErrScheduleEditDenied(nil)
	}
	dates := normalizeDates(selection)
	if len(dates) == 0 {
		return nil, exceptions.ErrEmptyDateSelection()
	}

	outcome := newBatchOutcome()
	for _, date := range dates {
		if err := uc.clearDate(ctx, employeeID, date); err != nil {
			uc.Log.Error("scheduleUsecase.MakeDaysOff date failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingEmployeeIDKey, employeeID),
				zap.String(constvars.LoggingDateKey, date.String()),
				zap.Error(err),
			)
			outcome.FailedDates = append(outcome.FailedDates, responses.FailedDate{
				Date:   date.String(),
				Reason: failureReason(err),
			})
			continue
		}
		outcome.SucceededDates = append(outcome.SucceededDates, date.String())
	}

	uc.finishBatch(ctx, session, employeeID, models.AuditOperationMakeDaysOff, "", outcome)
	return outcome, nil
}

// SetDay upserts the single exception for one date and returns the fresh
// resolve of that date.
func (uc *scheduleUsecase) SetDay(ctx context.Context, session *models.Session, employeeID string, date caldate.Date, day contracts.DayEditInput) (*models.ResolvedDay, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.SetDay called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmployeeIDKey, employeeID),
		zap.String(constvars.LoggingDateKey, date.String()),
	)

	if !policy.CanEdit(session, employeeID) {
		return nil, exceptions.ErrScheduleEditDenied(nil)
	}
	if err := validateDayEdit(day); err != nil {
		return nil, err
	}

	exception := models.ScheduleException{
		EmployeeID:   employeeID,
		Date:         date,
		IsWorkingDay: day.IsWorkingDay,
		StartTime:    day.StartTime,
		EndTime:      day.EndTime,
	}
	if err := uc.ExceptionClient.SaveException(ctx, exception); err != nil {
		return nil, err
	}

	outcome := newBatchOutcome()
	outcome.SucceededDates = append(outcome.SucceededDates, date.String())
	uc.finishBatch(ctx, session, employeeID, models.AuditOperationSetDay, "", outcome)

	return uc.ResolveDay(ctx, employeeID, date)
}

// ReplaceWeeklyRule swaps the rule for one weekday across all weeks. This is
// the destructive recurring change, deliberately a separate operation from
// the date-scoped SetDay.
func (uc *scheduleUsecase) ReplaceWeeklyRule(ctx context.Context, session *models.Session, employeeID string, dayOfWeek time.Weekday, day contracts.DayEditInput) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.ReplaceWeeklyRule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmployeeIDKey, employeeID),
		zap.String("day_of_week", dayOfWeek.String()),
	)

	if !policy.CanEdit(session, employeeID) {
		return exceptions.ErrScheduleEditDenied(nil)
	}
	if err := validateDayEdit(day); err != nil {
		return err
	}

	rules, err := uc.WorkRuleClient.GetRules(ctx, employeeID)
	if err != nil {
		return err
	}

	replacement := models.WorkRule{
		EmployeeID:   employeeID,
		DayOfWeek:    dayOfWeek,
		IsWorkingDay: day.IsWorkingDay,
		StartTime:    day.StartTime,
		EndTime:      day.EndTime,
	}
	replaced := false
	next := make([]models.WorkRule, 0, len(rules)+1)
	for _, rule := range rules {
		if rule.DayOfWeek == dayOfWeek {
			replacement.ID = rule.ID
			next = append(next, replacement)
			replaced = true
			continue
		}
		next = append(next, rule)
	}
	if !replaced {
		next = append(next, replacement)
	}

	if err := uc.WorkRuleClient.SaveRules(ctx, employeeID, next); err != nil {
		return err
	}

	outcome := newBatchOutcome()
	uc.finishBatch(ctx, session, employeeID, models.AuditOperationReplaceWeeklyRule, "", outcome)
	return nil
}

// AuditHistory lists the most recent batch edits for one employee, newest
// first.
func (uc *scheduleUsecase) AuditHistory(ctx context.Context, employeeID string, limit int64) ([]models.ScheduleAudit, error) {
	if limit <= 0 || limit > maxAuditHistoryLimit {
		limit = defaultAuditHistoryLimit
	}

	audits, err := uc.AuditRepository.FindScheduleAuditsByEmployeeID(ctx, employeeID, limit)
	if err != nil {
		return nil, err
	}
	if audits == nil {
		audits = make([]models.ScheduleAudit, 0)
	}
	return audits, nil
}

// applyTemplateToDate is the per-date 3-step sequence: upsert the exception,
// delete existing blocks, create the template's breaks. The steps are not
// transactional; a mid-sequence failure surfaces as a failed date and the
// caller retries it.
func (uc *scheduleUsecase) applyTemplateToDate(ctx context.Context, employeeID string, date caldate.Date, input contracts.ApplyTemplateInput) error {
	start := input.Template.StartTime
	end := input.Template.EndTime
	exception := models.ScheduleException{
		EmployeeID:   employeeID,
		Date:         date,
		IsWorkingDay: true,
		StartTime:    &start,
		EndTime:      &end,
	}
	if err := uc.ExceptionClient.SaveException(ctx, exception); err != nil {
		return err
	}

	if err := uc.deleteBlocksForDate(ctx, employeeID, date); err != nil {
		return err
	}

	for _, brk := range input.Breaks {
		block := models.ScheduleBlock{
			EmployeeID: employeeID,
			Date:       date,
			StartTime:  brk.StartTime,
			EndTime:    brk.EndTime,
			Reason:     brk.Reason,
		}
		if _, err := uc.BlockClient.CreateBlock(ctx, block); err != nil {
			return err
		}
	}
	return nil
}

func (uc *scheduleUsecase) clearDate(ctx context.Context, employeeID string, date caldate.Date) error {
	if err := uc.ExceptionClient.DeleteException(ctx, employeeID, date); err != nil {
		return err
	}
	return uc.deleteBlocksForDate(ctx, employeeID, date)
}

func (uc *scheduleUsecase) deleteBlocksForDate(ctx context.Context, employeeID string, date caldate.Date) error {
	blocks, err := uc.BlockClient.GetBlocks(ctx, employeeID, date, date)
	if err != nil {
		return err
	}
	for _, block := range blocks {
		if err := uc.BlockClient.DeleteBlock(ctx, block.ID); err != nil {
			return err
		}
	}
	return nil
}

// finishBatch runs the post-write side effects: cache invalidation, audit
// record, schedule.updated event. These are best-effort; the write outcome
// already happened and is reported regardless.
func (uc *scheduleUsecase) finishBatch(ctx context.Context, session *models.Session, employeeID, operation, template string, outcome *responses.BatchOutcome) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if err := uc.RedisRepository.DeleteByPrefix(ctx, resolvedCachePrefix(employeeID)); err != nil {
		uc.Log.Warn("scheduleUsecase error invalidating resolved-schedule cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEmployeeIDKey, employeeID),
			zap.Error(err),
		)
	}

	failedDates := make([]string, 0, len(outcome.FailedDates))
	for _, failed := range outcome.FailedDates {
		failedDates = append(failedDates, failed.Date)
	}
	audit := &models.ScheduleAudit{
		ActorUserID:    session.UserID,
		ActorRole:      session.Role,
		EmployeeID:     employeeID,
		Operation:      operation,
		Template:       template,
		SucceededDates: outcome.SucceededDates,
		FailedDates:    failedDates,
		CreatedAt:      time.Now().UTC(),
	}
	if err := uc.AuditRepository.CreateScheduleAudit(ctx, audit); err != nil {
		uc.Log.Warn("scheduleUsecase error writing schedule audit",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEmployeeIDKey, employeeID),
			zap.Error(err),
		)
	}

	if operation != models.AuditOperationReplaceWeeklyRule && len(outcome.SucceededDates) == 0 {
		return
	}
	event := contracts.ScheduleUpdatedEvent{
		EmployeeID: employeeID,
		Dates:      outcome.SucceededDates,
		Operation:  operation,
	}
	if err := uc.Publisher.PublishScheduleUpdated(ctx, event); err != nil {
		uc.Log.Warn("scheduleUsecase error publishing schedule.updated event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEmployeeIDKey, employeeID),
			zap.Error(err),
		)
	}
}

func (uc *scheduleUsecase) fetchSnapshot(ctx context.Context, employeeID string, from, to caldate.Date) ([]models.WorkRule, []models.ScheduleException, []models.ScheduleBlock, error) {
	rules, err := uc.WorkRuleClient.GetRules(ctx, employeeID)
	if err != nil {
		return nil, nil, nil, err
	}
	exceptionList, err := uc.ExceptionClient.GetExceptions(ctx, employeeID, from, to)
	if err != nil {
		return nil, nil, nil, err
	}
	blocks, err := uc.BlockClient.GetBlocks(ctx, employeeID, from, to)
	if err != nil {
		return nil, nil, nil, err
	}
	return rules, exceptionList, blocks, nil
}

func validateTemplate(template contracts.TimeTemplateInput, breaks []contracts.BreakInput) error {
	if !template.StartTime.Before(template.EndTime) {
		return exceptions.ErrScheduleTemplateInvalid("template startTime must be before endTime")
	}
	sorted := make([]contracts.BreakInput, len(breaks))
	copy(sorted, breaks)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartTime.Before(sorted[j].StartTime)
	})
	for i, brk := range sorted {
		if !brk.StartTime.Before(brk.EndTime) {
			return exceptions.ErrScheduleTemplateInvalid("break startTime must be before endTime")
		}
		if brk.StartTime.Before(template.StartTime) || template.EndTime.Before(brk.EndTime) {
			return exceptions.ErrScheduleTemplateInvalid("break must lie within the template hours")
		}
		if i > 0 && sorted[i-1].EndTime.Minutes() > brk.StartTime.Minutes() {
			return exceptions.ErrScheduleTemplateInvalid("breaks must not overlap")
		}
	}
	return nil
}

func validateDayEdit(day contracts.DayEditInput) error {
	if !day.IsWorkingDay {
		if day.StartTime != nil || day.EndTime != nil {
			return exceptions.ErrScheduleTemplateInvalid("times must be empty on a non-working day")
		}
		return nil
	}
	if day.StartTime == nil || day.EndTime == nil {
		return exceptions.ErrScheduleTemplateInvalid("startTime and endTime are required on a working day")
	}
	if !day.StartTime.Before(*day.EndTime) {
		return exceptions.ErrScheduleTemplateInvalid("startTime must be before endTime")
	}
	return nil
}

// normalizeDates sorts ascending and drops duplicates so batch reporting maps
// one-to-one onto distinct calendar dates.
func normalizeDates(dates []caldate.Date) []caldate.Date {
	sorted := make([]caldate.Date, len(dates))
	copy(sorted, dates)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	deduped := sorted[:0]
	for _, date := range sorted {
		if len(deduped) > 0 && deduped[len(deduped)-1].Equal(date) {
			continue
		}
		deduped = append(deduped, date)
	}
	return deduped
}

func newBatchOutcome() *responses.BatchOutcome {
	return &responses.BatchOutcome{
		SucceededDates: make([]string, 0),
		FailedDates:    make([]responses.FailedDate, 0),
	}
}

func failureReason(err error) string {
	customErr := new(exceptions.CustomError)
	if errors.As(err, &customErr) {
		return customErr.ClientMessage
	}
	return err.Error()
}

func templateLabel(template contracts.TimeTemplateInput) string {
	return fmt.Sprintf("%s-%s", template.StartTime, template.EndTime)
}

func resolvedCacheKey(employeeID string, from, to caldate.Date) string {
	return fmt.Sprintf("%s%s:%s", resolvedCachePrefix(employeeID), from, to)
}

func resolvedCachePrefix(employeeID string) string {
	return fmt.Sprintf("schedule:resolved:%s:", employeeID)
}
