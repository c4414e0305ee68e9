package exceptions

import (
	"fmt"
	"salonflow-service/internal/pkg/constvars"
)

// Write-path errors. Validation and authorization fail loudly before any
// store call; store failures inside a batch never surface here, they land in
// the per-date failed set instead.
var (
	ErrScheduleEditDenied = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusForbidden, constvars.ErrClientCannotEditSchedule, constvars.ErrDevScheduleEditDenied)
	}
	ErrScheduleTemplateInvalid = func(reason string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientInvalidScheduleTemplate, fmt.Sprintf(constvars.ErrDevScheduleTemplateInvalid, reason))
	}
	ErrEmptyDateSelection = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientEmptyDateSelection, constvars.ErrDevEmptyDateSelection)
	}
)

// Schedule store (salon API) errors.
var (
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientScheduleStoreUnavailable, constvars.ErrDevSendHTTPRequest)
	}
	ErrDecodeResponse = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientScheduleStoreUnavailable, fmt.Sprintf(constvars.ErrDevDecodeResponse, resource))
	}
	ErrStoreRequest = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientScheduleStoreUnavailable, fmt.Sprintf(constvars.ErrDevStoreRequestFailed, resource))
	}
)
