package salonapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"salonflow-service/internal/pkg/exceptions"
	"salonflow-service/internal/pkg/salon_dto"
)

// decodeStoreError turns a non-2xx salon API response into a CustomError,
// preferring the API's own error message when the body parses.
func decodeStoreError(resp *http.Response, resource string) error {
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return exceptions.ErrStoreRequest(err, resource)
	}

	var outcome salon_dto.ErrorOutcome
	if err := json.Unmarshal(bodyBytes, &outcome); err == nil && outcome.Error.Message != "" {
		storeErr := fmt.Errorf("%s: %s", outcome.Error.Code, outcome.Error.Message)
		return exceptions.ErrStoreRequest(storeErr, resource)
	}

	return exceptions.ErrStoreRequest(fmt.Errorf("status %d", resp.StatusCode), resource)
}
