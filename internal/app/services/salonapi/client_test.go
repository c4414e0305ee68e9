package salonapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"salonflow-service/internal/app/models"
	"salonflow-service/internal/pkg/caldate"
	"salonflow-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testTimeout = 5 * time.Second

func TestWorkRuleClient_GetRules(t *testing.T) {
	t.Run("decodes and normalizes the wire payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/employees/emp-1/work-rules", r.URL.Path)
			w.Write([]byte(`{"data":[
				{"id":"r1","employeeId":"emp-1","dayOfWeek":1,"isWorkingDay":true,"startTime":"10:00","endTime":"20:00"},
				{"id":"r2","employeeId":"emp-1","dayOfWeek":0,"isWorkingDay":false}
			]}`))
		}))
		defer server.Close()

		client := NewWorkRuleClient(server.URL, testTimeout)
		rules, err := client.GetRules(context.Background(), "emp-1")

		assert.NoError(t, err)
		assert.Len(t, rules, 2)
		assert.Equal(t, time.Monday, rules[0].DayOfWeek)
		assert.Equal(t, "10:00", rules[0].StartTime.String())
		assert.Equal(t, time.Sunday, rules[1].DayOfWeek)
		assert.False(t, rules[1].IsWorkingDay)
		assert.Nil(t, rules[1].StartTime)
	})

	t.Run("tolerates dotted clock formats on the wire", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":[{"id":"r1","employeeId":"emp-1","dayOfWeek":2,"isWorkingDay":true,"startTime":"9.30","endTime":"17.00"}]}`))
		}))
		defer server.Close()

		client := NewWorkRuleClient(server.URL, testTimeout)
		rules, err := client.GetRules(context.Background(), "emp-1")

		assert.NoError(t, err)
		assert.Equal(t, "09:30", rules[0].StartTime.String())
		assert.Equal(t, "17:00", rules[0].EndTime.String())
	})

	t.Run("surfaces the store's own error message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte(`{"error":{"code":"UPSTREAM_DOWN","message":"database unreachable"}}`))
		}))
		defer server.Close()

		client := NewWorkRuleClient(server.URL, testTimeout)
		_, err := client.GetRules(context.Background(), "emp-1")

		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Contains(t, customErr.DevMessage, "UPSTREAM_DOWN")
		assert.Contains(t, customErr.DevMessage, "database unreachable")
	})

	t.Run("falls back to the status code when the body is not the error shape", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("oops"))
		}))
		defer server.Close()

		client := NewWorkRuleClient(server.URL, testTimeout)
		_, err := client.GetRules(context.Background(), "emp-1")

		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Contains(t, customErr.DevMessage, "status 500")
	})
}

func TestWorkRuleClient_SaveRules(t *testing.T) {
	var received struct {
		Rules []map[string]interface{} `json:"rules"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/employees/emp-1/work-rules", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	start := caldate.Clock{Hour: 10}
	end := caldate.Clock{Hour: 20}
	rules := []models.WorkRule{{
		ID:           "r1",
		EmployeeID:   "emp-1",
		DayOfWeek:    time.Monday,
		IsWorkingDay: true,
		StartTime:    &start,
		EndTime:      &end,
	}}

	client := NewWorkRuleClient(server.URL, testTimeout)
	err := client.SaveRules(context.Background(), "emp-1", rules)

	assert.NoError(t, err)
	assert.Len(t, received.Rules, 1)
	assert.Equal(t, float64(1), received.Rules[0]["dayOfWeek"])
	assert.Equal(t, "10:00", received.Rules[0]["startTime"])
}

func TestExceptionClient(t *testing.T) {
	date := caldate.Date{Year: 2026, Month: 2, Day: 16}

	t.Run("timestamp-bearing wire dates are truncated to calendar dates", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "2026-02-16", r.URL.Query().Get("from"))
			assert.Equal(t, "2026-02-22", r.URL.Query().Get("to"))
			w.Write([]byte(`{"data":[{"id":"e1","employeeId":"emp-1","date":"2026-02-16T00:00:00.000Z","isWorkingDay":true,"startTime":"12:00","endTime":"16:00"}]}`))
		}))
		defer server.Close()

		client := NewExceptionClient(server.URL, testTimeout)
		items, err := client.GetExceptions(context.Background(), "emp-1", date, date.AddDays(6))

		assert.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, date, items[0].Date)
	})

	t.Run("save puts the exception keyed by employee and date", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/employees/emp-1/schedule-exceptions/2026-02-16", r.URL.Path)
			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := NewExceptionClient(server.URL, testTimeout)
		err := client.SaveException(context.Background(), models.ScheduleException{
			EmployeeID: "emp-1",
			Date:       date,
		})

		assert.NoError(t, err)
	})

	t.Run("delete treats 404 as success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := NewExceptionClient(server.URL, testTimeout)
		assert.NoError(t, client.DeleteException(context.Background(), "emp-1", date))
	})

	t.Run("delete still fails on server errors", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewExceptionClient(server.URL, testTimeout)
		assert.Error(t, client.DeleteException(context.Background(), "emp-1", date))
	})
}

func TestBlockClient(t *testing.T) {
	date := caldate.Date{Year: 2026, Month: 2, Day: 16}

	t.Run("create returns the stored block with its assigned id", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/employees/emp-1/schedule-blocks", r.URL.Path)
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":"blk-9","employeeId":"emp-1","date":"2026-02-16T00:00:00.000Z","startTime":"13:00","endTime":"14:00","reason":"lunch"}`))
		}))
		defer server.Close()

		client := NewBlockClient(server.URL, testTimeout)
		created, err := client.CreateBlock(context.Background(), models.ScheduleBlock{
			EmployeeID: "emp-1",
			Date:       date,
			StartTime:  caldate.Clock{Hour: 13},
			EndTime:    caldate.Clock{Hour: 14},
			Reason:     "lunch",
		})

		assert.NoError(t, err)
		assert.Equal(t, "blk-9", created.ID)
		assert.Equal(t, date, created.Date)
	})

	t.Run("delete tolerates an already-deleted block", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/schedule-blocks/blk-9", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := NewBlockClient(server.URL, testTimeout)
		assert.NoError(t, client.DeleteBlock(context.Background(), "blk-9"))
	})

	t.Run("malformed wire clock is a decode error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":[{"id":"b1","employeeId":"emp-1","date":"2026-02-16","startTime":"25:00","endTime":"26:00"}]}`))
		}))
		defer server.Close()

		client := NewBlockClient(server.URL, testTimeout)
		_, err := client.GetBlocks(context.Background(), "emp-1", date, date)

		assert.Error(t, err)
	})
}
