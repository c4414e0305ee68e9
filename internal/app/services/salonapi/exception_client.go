package salonapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"salonflow-service/internal/app/contracts"
	"salonflow-service/internal/app/models"
	"salonflow-service/internal/pkg/caldate"
	"salonflow-service/internal/pkg/constvars"
	"salonflow-service/internal/pkg/exceptions"
	"salonflow-service/internal/pkg/salon_dto"
	"time"
)

type exceptionClient struct {
	BaseUrl string
	Client  *http.Client
}

func NewExceptionClient(baseUrl string, timeout time.Duration) contracts.ExceptionStoreClient {
	return &exceptionClient{
		BaseUrl: baseUrl,
		Client:  &http.Client{Timeout: timeout},
	}
}

func (c *exceptionClient) GetExceptions(ctx context.Context, employeeID string, from, to caldate.Date) ([]models.ScheduleException, error) {
	url := fmt.Sprintf("%s/employees/%s/schedule-exceptions?from=%s&to=%s", c.BaseUrl, employeeID, from, to)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, url, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, decodeStoreError(resp, constvars.ResourceExceptions)
	}

	var result salon_dto.ScheduleExceptionList
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceExceptions)
	}

	items := make([]models.ScheduleException, 0, len(result.Data))
	for _, wire := range result.Data {
		exception, err := mapScheduleException(wire)
		if err != nil {
			return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceExceptions)
		}
		items = append(items, exception)
	}

	return items, nil
}

// SaveException is an upsert keyed on (employee, date); saving twice for the
// same date replaces the previous override.
func (c *exceptionClient) SaveException(ctx context.Context, exception models.ScheduleException) error {
	requestJSON, err := json.Marshal(mapScheduleExceptionToWire(exception))
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	url := fmt.Sprintf("%s/employees/%s/schedule-exceptions/%s", c.BaseUrl, exception.EmployeeID, exception.Date)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPut, url, bytes.NewBuffer(requestJSON))
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.Client.Do(req)
	if err != nil {
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		return decodeStoreError(resp, constvars.ResourceExceptions)
	}

	return nil
}

// DeleteException reverts the date to its weekly rule. A 404 is treated as
// success so the revert stays idempotent.
func (c *exceptionClient) DeleteException(ctx context.Context, employeeID string, date caldate.Date) error {
	url := fmt.Sprintf("%s/employees/%s/schedule-exceptions/%s", c.BaseUrl, employeeID, date)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodDelete, url, nil)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusNoContent && resp.StatusCode != constvars.StatusNotFound {
		return decodeStoreError(resp, constvars.ResourceExceptions)
	}

	return nil
}
