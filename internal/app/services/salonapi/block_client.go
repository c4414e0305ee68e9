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

type blockClient struct {
	BaseUrl string
	Client  *http.Client
}

func NewBlockClient(baseUrl string, timeout time.Duration) contracts.BlockStoreClient {
	return &blockClient{
		BaseUrl: baseUrl,
		Client:  &http.Client{Timeout: timeout},
	}
}

func (c *blockClient) GetBlocks(ctx context.Context, employeeID string, from, to caldate.Date) ([]models.ScheduleBlock, error) {
	url := fmt.Sprintf("%s/employees/%s/schedule-blocks?from=%s&to=%s", c.BaseUrl, employeeID, from, to)
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
		return nil, decodeStoreError(resp, constvars.ResourceBlocks)
	}

	var result salon_dto.ScheduleBlockList
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceBlocks)
	}

	blocks := make([]models.ScheduleBlock, 0, len(result.Data))
	for _, wire := range result.Data {
		block, err := mapScheduleBlock(wire)
		if err != nil {
			return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceBlocks)
		}
		blocks = append(blocks, block)
	}

	return blocks, nil
}

func (c *blockClient) CreateBlock(ctx context.Context, block models.ScheduleBlock) (*models.ScheduleBlock, error) {
	requestJSON, err := json.Marshal(mapScheduleBlockToWire(block))
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	url := fmt.Sprintf("%s/employees/%s/schedule-blocks", c.BaseUrl, block.EmployeeID)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, url, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusCreated && resp.StatusCode != constvars.StatusOK {
		return nil, decodeStoreError(resp, constvars.ResourceBlocks)
	}

	var wire salon_dto.ScheduleBlock
	err = json.NewDecoder(resp.Body).Decode(&wire)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceBlocks)
	}

	created, err := mapScheduleBlock(wire)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceBlocks)
	}

	return &created, nil
}

// DeleteBlock tolerates 404 for the same reason DeleteException does: bulk
// resets retry safely.
func (c *blockClient) DeleteBlock(ctx context.Context, blockID string) error {
	url := fmt.Sprintf("%s/schedule-blocks/%s", c.BaseUrl, blockID)
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
		return decodeStoreError(resp, constvars.ResourceBlocks)
	}

	return nil
}
