package rest

import (
	"context"
	"fmt"
	"strconv"
	"time"
	
	"resty.dev/v3"
)

type Vehicle struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"ownerId"`
	PlateNumber  string    `json:"plateNumber"`
	Make         string    `json:"make"`
	Model        string    `json:"model"`
	Year         int       `json:"year"`
	Status       string    `json:"status"`
	RegisteredOn time.Time `json:"registeredOn"`
}

type VehicleList struct {
	Items      []Vehicle `json:"items"`
	TotalCount int       `json:"totalCount"`
}

type RegisterVehicleRequest struct {
	PlateNumber string `json:"plateNumber"`
	Make        string `json:"make"`
	Model       string `json:"model"`
	Year        int    `json:"year"`
}

func (c *Client) ListVehicles(ctx context.Context, page, pageSize int) (*VehicleList, error) {
	var result VehicleList
	resp, err := c.execute(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetQueryParam("page", strconv.Itoa(page)).
			SetQueryParam("pageSize", strconv.Itoa(pageSize)).
			SetResult(&result).
			Get("/Vehicle/all")
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	if err := checkResponse(resp); err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	
	return &result, nil
}

func (c *Client) GetVehicle(ctx context.Context, id string) (*Vehicle, error) {
	var result Vehicle
	resp, err := c.execute(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.SetPathParam("id", id).SetResult(&result).Get("/Vehicle/{id}")
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle %s: %w", id, err)
	}
	if err := checkResponse(resp); err != nil {
		return nil, fmt.Errorf("failed to get vehicle %s: %w", id, err)
	}
	
	return &result, nil
}

func (c *Client) RegisterVehicle(ctx context.Context, arg RegisterVehicleRequest) (*Vehicle, error) {
	var result Vehicle
	resp, err := c.execute(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.SetBody(arg).SetResult(&result).Post("/Vehicle/register")
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register vehicle: %w", err)
	}
	if err := checkResponse(resp); err != nil {
		return nil, fmt.Errorf("failed to register vehicle: %w", err)
	}
	
	return &result, nil
}

// ApproveVehicle và RejectVehicle là quyết định phía server; client chỉ gọi.

func (c *Client) ApproveVehicle(ctx context.Context, id string) error {
	return c.putAction(ctx, "/Vehicle/approve/{id}", id, "approve vehicle")
}

func (c *Client) RejectVehicle(ctx context.Context, id, reason string) error {
	resp, err := c.execute(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetPathParam("id", id).
			SetBody(map[string]string{"reason": reason}).
			Put("/Vehicle/reject/{id}")
	})
	if err != nil {
		return fmt.Errorf("failed to reject vehicle %s: %w", id, err)
	}
	if err := checkResponse(resp); err != nil {
		return fmt.Errorf("failed to reject vehicle %s: %w", id, err)
	}
	
	return nil
}

// putAction gửi một PUT không body tới đường dẫn dạng /{id}.
func (c *Client) putAction(ctx context.Context, path, id, action string) error {
	resp, err := c.execute(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.SetPathParam("id", id).Put(path)
	})
	if err != nil {
		return fmt.Errorf("failed to %s %s: %w", action, id, err)
	}
	if err := checkResponse(resp); err != nil {
		return fmt.Errorf("failed to %s %s: %w", action, id, err)
	}
	
	return nil
}
