package salonapi

import (
	"salonflow-service/internal/app/models"
	"salonflow-service/internal/pkg/caldate"
	"salonflow-service/internal/pkg/salon_dto"
	"time"
)

// Wire payloads carry dates as timestamp-bearing strings and times in a few
// clock formats. Everything is normalized here, at the store boundary, so the
// rest of the service only ever sees caldate values.

func mapWorkRule(wire salon_dto.WorkRule) (models.WorkRule, error) {
	rule := models.WorkRule{
		ID:           wire.ID,
		EmployeeID:   wire.EmployeeID,
		DayOfWeek:    time.Weekday(wire.DayOfWeek),
		IsWorkingDay: wire.IsWorkingDay,
	}
	if wire.IsWorkingDay {
		start, err := caldate.ParseClock(wire.StartTime)
		if err != nil {
			return models.WorkRule{}, err
		}
		end, err := caldate.ParseClock(wire.EndTime)
		if err != nil {
			return models.WorkRule{}, err
		}
		rule.StartTime = &start
		rule.EndTime = &end
	}
	return rule, nil
}

func mapWorkRuleToWire(rule models.WorkRule) salon_dto.WorkRule {
	wire := salon_dto.WorkRule{
		ID:           rule.ID,
		EmployeeID:   rule.EmployeeID,
		DayOfWeek:    int(rule.DayOfWeek),
		IsWorkingDay: rule.IsWorkingDay,
	}
	if rule.StartTime != nil {
		wire.StartTime = rule.StartTime.String()
	}
	if rule.EndTime != nil {
		wire.EndTime = rule.EndTime.String()
	}
	return wire
}

func mapScheduleException(wire salon_dto.ScheduleException) (models.ScheduleException, error) {
	date, err := caldate.ParseDate(wire.Date)
	if err != nil {
		return models.ScheduleException{}, err
	}
	exception := models.ScheduleException{
		ID:           wire.ID,
		EmployeeID:   wire.EmployeeID,
		Date:         date,
		IsWorkingDay: wire.IsWorkingDay,
	}
	if wire.IsWorkingDay {
		start, err := caldate.ParseClock(wire.StartTime)
		if err != nil {
			return models.ScheduleException{}, err
		}
		end, err := caldate.ParseClock(wire.EndTime)
		if err != nil {
			return models.ScheduleException{}, err
		}
		exception.StartTime = &start
		exception.EndTime = &end
	}
	return exception, nil
}

func mapScheduleExceptionToWire(exception models.ScheduleException) salon_dto.ScheduleException {
	wire := salon_dto.ScheduleException{
		ID:           exception.ID,
		EmployeeID:   exception.EmployeeID,
		Date:         exception.Date.String(),
		IsWorkingDay: exception.IsWorkingDay,
	}
	if exception.StartTime != nil {
		wire.StartTime = exception.StartTime.String()
	}
	if exception.EndTime != nil {
		wire.EndTime = exception.EndTime.String()
	}
	return wire
}

func mapScheduleBlock(wire salon_dto.ScheduleBlock) (models.ScheduleBlock, error) {
	date, err := caldate.ParseDate(wire.Date)
	if err != nil {
		return models.ScheduleBlock{}, err
	}
	start, err := caldate.ParseClock(wire.StartTime)
	if err != nil {
		return models.ScheduleBlock{}, err
	}
	end, err := caldate.ParseClock(wire.EndTime)
	if err != nil {
		return models.ScheduleBlock{}, err
	}
	return models.ScheduleBlock{
		ID:         wire.ID,
		EmployeeID: wire.EmployeeID,
		Date:       date,
		StartTime:  start,
		EndTime:    end,
		Reason:     wire.Reason,
	}, nil
}

func mapScheduleBlockToWire(block models.ScheduleBlock) salon_dto.ScheduleBlock {
	return salon_dto.ScheduleBlock{
		ID:         block.ID,
		EmployeeID: block.EmployeeID,
		Date:       block.Date.String(),
		StartTime:  block.StartTime.String(),
		EndTime:    block.EndTime.String(),
		Reason:     block.Reason,
	}
}
