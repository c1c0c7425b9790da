package rest

import (
	"context"
	"fmt"
	"strconv"
	"time"
	
	"resty.dev/v3"
)

type Inspection struct {
	ID          string    `json:"id"`
	VehicleID   string    `json:"vehicleId"`
	RequestedBy string    `json:"requestedBy"`
	Status      string    `json:"status"`
	Result      string    `json:"result"`
	ScheduledOn time.Time `json:"scheduledOn"`
}

type InspectionList struct {
	Items      []Inspection `json:"items"`
	TotalCount int          `json:"totalCount"`
}

type CompleteInspectionRequest struct {
	Passed bool   `json:"passed"`
	Notes  string `json:"notes"`
}

func (c *Client) ListInspections(ctx context.Context, page, pageSize int) (*InspectionList, error) {
	var result InspectionList
	resp, err := c.execute(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetQueryParam("page", strconv.Itoa(page)).
			SetQueryParam("pageSize", strconv.Itoa(pageSize)).
			SetResult(&result).
			Get("/Inspection/all")
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list inspections: %w", err)
	}
	if err := checkResponse(resp); err != nil {
		return nil, fmt.Errorf("failed to list inspections: %w", err)
	}
	
	return &result, nil
}

func (c *Client) GetInspection(ctx context.Context, id string) (*Inspection, error) {
	var result Inspection
	resp, err := c.execute(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.SetPathParam("id", id).SetResult(&result).Get("/Inspection/{id}")
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get inspection %s: %w", id, err)
	}
	if err := checkResponse(resp); err != nil {
		return nil, fmt.Errorf("failed to get inspection %s: %w", id, err)
	}
	
	return &result, nil
}

func (c *Client) RequestInspection(ctx context.Context, vehicleID string) (*Inspection, error) {
	var result Inspection
	resp, err := c.execute(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetBody(map[string]string{"vehicleId": vehicleID}).
			SetResult(&result).
			Post("/Inspection/request")
	})
	if err != nil {
		return nil, fmt.Errorf("failed to request inspection: %w", err)
	}
	if err := checkResponse(resp); err != nil {
		return nil, fmt.Errorf("failed to request inspection: %w", err)
	}
	
	return &result, nil
}

func (c *Client) CompleteInspection(ctx context.Context, id string, arg CompleteInspectionRequest) error {
	resp, err := c.execute(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.SetPathParam("id", id).SetBody(arg).Put("/Inspection/complete/{id}")
	})
	if err != nil {
		return fmt.Errorf("failed to complete inspection %s: %w", id, err)
	}
	if err := checkResponse(resp); err != nil {
		return fmt.Errorf("failed to complete inspection %s: %w", id, err)
	}
	
	return nil
}
