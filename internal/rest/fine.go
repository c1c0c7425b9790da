package rest

import (
	"context"
	"fmt"
	"strconv"
	"time"
	
	"resty.dev/v3"
)

type Fine struct {
	ID         string    `json:"id"`
	VehicleID  string    `json:"vehicleId"`
	OffenderID string    `json:"offenderId"`
	Amount     int64     `json:"amount"`
	Reason     string    `json:"reason"`
	Status     string    `json:"status"`
	IssuedBy   string    `json:"issuedBy"`
	IssuedOn   time.Time `json:"issuedOn"`
}

type FineList struct {
	Items      []Fine `json:"items"`
	TotalCount int    `json:"totalCount"`
}

type IssueFineRequest struct {
	VehicleID  string `json:"vehicleId"`
	OffenderID string `json:"offenderId"`
	Amount     int64  `json:"amount"`
	Reason     string `json:"reason"`
}

func (c *Client) ListFines(ctx context.Context, page, pageSize int) (*FineList, error) {
	var result FineList
	resp, err := c.execute(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetQueryParam("page", strconv.Itoa(page)).
			SetQueryParam("pageSize", strconv.Itoa(pageSize)).
			SetResult(&result).
			Get("/Fine/all")
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list fines: %w", err)
	}
	if err := checkResponse(resp); err != nil {
		return nil, fmt.Errorf("failed to list fines: %w", err)
	}
	
	return &result, nil
}

func (c *Client) GetFine(ctx context.Context, id string) (*Fine, error) {
	var result Fine
	resp, err := c.execute(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.SetPathParam("id", id).SetResult(&result).Get("/Fine/{id}")
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get fine %s: %w", id, err)
	}
	if err := checkResponse(resp); err != nil {
		return nil, fmt.Errorf("failed to get fine %s: %w", id, err)
	}
	
	return &result, nil
}

func (c *Client) IssueFine(ctx context.Context, arg IssueFineRequest) (*Fine, error) {
	var result Fine
	resp, err := c.execute(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.SetBody(arg).SetResult(&result).Post("/Fine/issue")
	})
	if err != nil {
		return nil, fmt.Errorf("failed to issue fine: %w", err)
	}
	if err := checkResponse(resp); err != nil {
		return nil, fmt.Errorf("failed to issue fine: %w", err)
	}
	
	return &result, nil
}

func (c *Client) PayFine(ctx context.Context, id string) error {
	return c.putAction(ctx, "/Fine/pay/{id}", id, "pay fine")
}

func (c *Client) CancelFine(ctx context.Context, id string) error {
	return c.putAction(ctx, "/Fine/cancel/{id}", id, "cancel fine")
}
