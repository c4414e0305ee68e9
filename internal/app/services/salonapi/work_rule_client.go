package salonapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"salonflow-service/internal/app/contracts"
	"salonflow-service/internal/app/models"
	"salonflow-service/internal/pkg/constvars"
	"salonflow-service/internal/pkg/exceptions"
	"salonflow-service/internal/pkg/salon_dto"
	"time"
)

type workRuleClient struct {
	BaseUrl string
	Client  *http.Client
}

func NewWorkRuleClient(baseUrl string, timeout time.Duration) contracts.WorkRuleStoreClient {
	return &workRuleClient{
		BaseUrl: baseUrl,
		Client:  &http.Client{Timeout: timeout},
	}
}

func (c *workRuleClient) GetRules(ctx context.Context, employeeID string) ([]models.WorkRule, error) {
	url := fmt.Sprintf("%s/employees/%s/work-rules", c.BaseUrl, employeeID)
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
		return nil, decodeStoreError(resp, constvars.ResourceWorkRules)
	}

	var result salon_dto.WorkRuleList
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceWorkRules)
	}

	rules := make([]models.WorkRule, 0, len(result.Data))
	for _, wire := range result.Data {
		rule, err := mapWorkRule(wire)
		if err != nil {
			return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceWorkRules)
		}
		rules = append(rules, rule)
	}

	return rules, nil
}

func (c *workRuleClient) SaveRules(ctx context.Context, employeeID string, rules []models.WorkRule) error {
	payload := salon_dto.SaveWorkRulesRequest{
		Rules: make([]salon_dto.WorkRule, 0, len(rules)),
	}
	for _, rule := range rules {
		payload.Rules = append(payload.Rules, mapWorkRuleToWire(rule))
	}

	requestJSON, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	url := fmt.Sprintf("%s/employees/%s/work-rules", c.BaseUrl, employeeID)
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

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusNoContent {
		return decodeStoreError(resp, constvars.ResourceWorkRules)
	}

	return nil
}
