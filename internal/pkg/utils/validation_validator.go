package utils

import (
	"salonflow-service/internal/pkg/caldate"
	"salonflow-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation(constvars.CustomValidationClockTime, validateClockTime)
	validate.RegisterValidation(constvars.CustomValidationCalendarDate, validateCalendarDate)
	validate.RegisterValidation(constvars.CustomValidationDayOfWeek, validateDayOfWeek)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateClockTime(fl validator.FieldLevel) bool {
	_, err := caldate.ParseClock(fl.Field().String())
	return err == nil
}

func validateCalendarDate(fl validator.FieldLevel) bool {
	_, err := caldate.ParseDate(fl.Field().String())
	return err == nil
}

func validateDayOfWeek(fl validator.FieldLevel) bool {
	v := fl.Field().Int()
	return v >= 0 && v <= 6
}
