package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"salonflow-service/internal/app/contracts"
	"salonflow-service/internal/app/models"
	"salonflow-service/internal/pkg/caldate"
	"salonflow-service/internal/pkg/constvars"
	"salonflow-service/internal/pkg/dto/requests"
	"salonflow-service/internal/pkg/dto/responses"
	"salonflow-service/internal/pkg/exceptions"
	"salonflow-service/internal/pkg/utils"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const requestTimeout = 10 * time.Second

type ScheduleController struct {
	Log             *zap.Logger
	ScheduleUsecase contracts.ScheduleUsecaseIface
}

func NewScheduleController(logger *zap.Logger, scheduleUsecase contracts.ScheduleUsecaseIface) *ScheduleController {
	return &ScheduleController{
		Log:             logger,
		ScheduleUsecase: scheduleUsecase,
	}
}

func (ctrl *ScheduleController) ResolveDay(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("ScheduleController.ResolveDay requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	date, err := caldate.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, "date"))
		return
	}

	ctrl.Log.Info("ScheduleController.ResolveDay called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmployeeIDKey, employeeID),
		zap.String(constvars.LoggingDateKey, date.String()),
	)

	ctx, cancel := requestContext(r)
	defer cancel()

	resolved, err := ctrl.ScheduleUsecase.ResolveDay(ctx, employeeID, date)
	if err != nil {
		ctrl.respondError(w, requestID, "ScheduleController.ResolveDay", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseScheduleResolved, resolved)
}

func (ctrl *ScheduleController) ResolveRange(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("ScheduleController.ResolveRange requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	from, err := caldate.ParseDate(r.URL.Query().Get("from"))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, "from"))
		return
	}
	to, err := caldate.ParseDate(r.URL.Query().Get("to"))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, "to"))
		return
	}

	ctrl.Log.Info("ScheduleController.ResolveRange called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmployeeIDKey, employeeID),
		zap.String("from", from.String()),
		zap.String("to", to.String()),
	)

	ctx, cancel := requestContext(r)
	defer cancel()

	schedule, err := ctrl.ScheduleUsecase.ResolveRange(ctx, employeeID, from, to)
	if err != nil {
		ctrl.respondError(w, requestID, "ScheduleController.ResolveRange", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseScheduleResolved, schedule)
}

func (ctrl *ScheduleController) BuildGrid(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("ScheduleController.BuildGrid requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	employeeID := chi.URLParam(r, "employeeID")

	request := new(requests.BuildGrid)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	input, err := buildGridInput(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ScheduleController.BuildGrid called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmployeeIDKey, employeeID),
		zap.String(constvars.LoggingDateKey, input.Date.String()),
	)

	ctx, cancel := requestContext(r)
	defer cancel()

	layout, err := ctrl.ScheduleUsecase.BuildGrid(ctx, employeeID, input)
	if err != nil {
		ctrl.respondError(w, requestID, "ScheduleController.BuildGrid", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseScheduleGridBuilt, layout)
}

func (ctrl *ScheduleController) ApplyTemplate(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := ctrl.authenticatedRequest(w, r, "ScheduleController.ApplyTemplate")
	if !ok {
		return
	}

	employeeID := chi.URLParam(r, "employeeID")

	request := new(requests.ApplyTemplate)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	input, err := applyTemplateInput(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ScheduleController.ApplyTemplate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmployeeIDKey, employeeID),
		zap.Int("date_count", len(input.Dates)),
	)

	ctx, cancel := requestContext(r)
	defer cancel()

	outcome, err := ctrl.ScheduleUsecase.ApplyTemplate(ctx, session, employeeID, input)
	if err != nil {
		ctrl.respondError(w, requestID, "ScheduleController.ApplyTemplate", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, batchMessage(outcome, constvars.ResponseTemplateApplied, constvars.ResponseTemplatePartial), outcome)
}

func (ctrl *ScheduleController) MakeDaysOff(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := ctrl.authenticatedRequest(w, r, "ScheduleController.MakeDaysOff")
	if !ok {
		return
	}

	employeeID := chi.URLParam(r, "employeeID")

	request := new(requests.MakeDaysOff)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	dates, err := parseDates(request.Dates)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ScheduleController.MakeDaysOff called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmployeeIDKey, employeeID),
		zap.Int("date_count", len(dates)),
	)

	ctx, cancel := requestContext(r)
	defer cancel()

	outcome, err := ctrl.ScheduleUsecase.MakeDaysOff(ctx, session, employeeID, dates)
	if err != nil {
		ctrl.respondError(w, requestID, "ScheduleController.MakeDaysOff", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, batchMessage(outcome, constvars.ResponseDaysOff, constvars.ResponseDaysOffPartial), outcome)
}

func (ctrl *ScheduleController) SetDay(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := ctrl.authenticatedRequest(w, r, "ScheduleController.SetDay")
	if !ok {
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	date, err := caldate.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, "date"))
		return
	}

	request := new(requests.SetDay)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	day, err := dayEditInput(request.IsWorkingDay, request.StartTime, request.EndTime)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ScheduleController.SetDay called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmployeeIDKey, employeeID),
		zap.String(constvars.LoggingDateKey, date.String()),
	)

	ctx, cancel := requestContext(r)
	defer cancel()

	resolved, err := ctrl.ScheduleUsecase.SetDay(ctx, session, employeeID, date, day)
	if err != nil {
		ctrl.respondError(w, requestID, "ScheduleController.SetDay", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseDayUpdated, resolved)
}

func (ctrl *ScheduleController) ReplaceWeeklyRule(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := ctrl.authenticatedRequest(w, r, "ScheduleController.ReplaceWeeklyRule")
	if !ok {
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	dayOfWeek, err := strconv.Atoi(chi.URLParam(r, "dayOfWeek"))
	if err != nil || dayOfWeek < 0 || dayOfWeek > 6 {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, "dayOfWeek"))
		return
	}

	request := new(requests.ReplaceWeeklyRule)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	day, err := dayEditInput(request.IsWorkingDay, request.StartTime, request.EndTime)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ScheduleController.ReplaceWeeklyRule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmployeeIDKey, employeeID),
		zap.String("day_of_week", time.Weekday(dayOfWeek).String()),
	)

	ctx, cancel := requestContext(r)
	defer cancel()

	if err := ctrl.ScheduleUsecase.ReplaceWeeklyRule(ctx, session, employeeID, time.Weekday(dayOfWeek), day); err != nil {
		ctrl.respondError(w, requestID, "ScheduleController.ReplaceWeeklyRule", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseWeeklyRuleReplaced, nil)
}

func (ctrl *ScheduleController) AuditHistory(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("ScheduleController.AuditHistory requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	employeeID := chi.URLParam(r, "employeeID")

	var limit int64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 1 {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, "limit"))
			return
		}
		limit = parsed
	}

	ctrl.Log.Info("ScheduleController.AuditHistory called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmployeeIDKey, employeeID),
		zap.Int64("limit", limit),
	)

	ctx, cancel := requestContext(r)
	defer cancel()

	audits, err := ctrl.ScheduleUsecase.AuditHistory(ctx, employeeID, limit)
	if err != nil {
		ctrl.respondError(w, requestID, "ScheduleController.AuditHistory", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseAuditHistory, audits)
}

func (ctrl *ScheduleController) authenticatedRequest(w http.ResponseWriter, r *http.Request, caller string) (string, *models.Session, bool) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error(caller + " requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return "", nil, false
	}

	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok || session == nil {
		ctrl.Log.Error(caller+" session not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return "", nil, false
	}

	return requestID, session, true
}

func (ctrl *ScheduleController) respondError(w http.ResponseWriter, requestID, caller string, err error) {
	ctrl.Log.Error(caller+" usecase error",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err),
	)
	if err == context.DeadlineExceeded {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}

func requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), requestTimeout)
}

func batchMessage(outcome *responses.BatchOutcome, full, partial string) string {
	if len(outcome.FailedDates) > 0 {
		return partial
	}
	return full
}

func parseDates(raw []string) ([]caldate.Date, error) {
	dates := make([]caldate.Date, 0, len(raw))
	for _, value := range raw {
		date, err := caldate.ParseDate(value)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		dates = append(dates, date)
	}
	return dates, nil
}

func dayEditInput(isWorkingDay bool, startTime, endTime string) (contracts.DayEditInput, error) {
	day := contracts.DayEditInput{IsWorkingDay: isWorkingDay}
	if startTime != "" {
		start, err := caldate.ParseClock(startTime)
		if err != nil {
			return contracts.DayEditInput{}, exceptions.ErrCannotParseClock(err)
		}
		day.StartTime = &start
	}
	if endTime != "" {
		end, err := caldate.ParseClock(endTime)
		if err != nil {
			return contracts.DayEditInput{}, exceptions.ErrCannotParseClock(err)
		}
		day.EndTime = &end
	}
	return day, nil
}

func applyTemplateInput(request *requests.ApplyTemplate) (contracts.ApplyTemplateInput, error) {
	dates, err := parseDates(request.Dates)
	if err != nil {
		return contracts.ApplyTemplateInput{}, err
	}

	start, err := caldate.ParseClock(request.Template.StartTime)
	if err != nil {
		return contracts.ApplyTemplateInput{}, exceptions.ErrCannotParseClock(err)
	}
	end, err := caldate.ParseClock(request.Template.EndTime)
	if err != nil {
		return contracts.ApplyTemplateInput{}, exceptions.ErrCannotParseClock(err)
	}

	input := contracts.ApplyTemplateInput{
		Dates:    dates,
		Template: contracts.TimeTemplateInput{StartTime: start, EndTime: end},
		Breaks:   make([]contracts.BreakInput, 0, len(request.Breaks)),
	}
	for _, brk := range request.Breaks {
		breakStart, err := caldate.ParseClock(brk.StartTime)
		if err != nil {
			return contracts.ApplyTemplateInput{}, exceptions.ErrCannotParseClock(err)
		}
		breakEnd, err := caldate.ParseClock(brk.EndTime)
		if err != nil {
			return contracts.ApplyTemplateInput{}, exceptions.ErrCannotParseClock(err)
		}
		input.Breaks = append(input.Breaks, contracts.BreakInput{
			StartTime: breakStart,
			EndTime:   breakEnd,
			Reason:    brk.Reason,
		})
	}
	return input, nil
}

func buildGridInput(request *requests.BuildGrid) (contracts.BuildGridInput, error) {
	date, err := caldate.ParseDate(request.Date)
	if err != nil {
		return contracts.BuildGridInput{}, exceptions.ErrCannotParseDate(err)
	}

	input := contracts.BuildGridInput{
		Date:       date,
		Events:     make([]contracts.GridEventInput, 0, len(request.Events)),
		StartHour:  request.StartHour,
		EndHour:    request.EndHour,
		SlotHeight: request.SlotHeight,
	}
	for _, event := range request.Events {
		eventStart, err := caldate.ParseClock(event.StartTime)
		if err != nil {
			return contracts.BuildGridInput{}, exceptions.ErrCannotParseClock(err)
		}
		eventEnd, err := caldate.ParseClock(event.EndTime)
		if err != nil {
			return contracts.BuildGridInput{}, exceptions.ErrCannotParseClock(err)
		}
		input.Events = append(input.Events, contracts.GridEventInput{
			ID:        event.ID,
			Label:     event.Label,
			StartTime: eventStart,
			EndTime:   eventEnd,
		})
	}
	return input, nil
}
