package rest

import (
	"context"
	"fmt"
	
	"resty.dev/v3"
	
	"github.com/autosys-vn/autosys-client/internal/notification"
)

// Các endpoint thông báo của portal, base path /Notification.
// Tất cả đều idempotent.

func (c *Client) ListAll(ctx context.Context) ([]notification.Notification, error) {
	var result []notification.Notification
	resp, err := c.execute(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.SetResult(&result).Get("/Notification/all")
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	if err := checkResponse(resp); err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	
	return result, nil
}

func (c *Client) ListUnseen(ctx context.Context) ([]notification.Notification, error) {
	var result []notification.Notification
	resp, err := c.execute(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.SetResult(&result).Get("/Notification/unseen")
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list unseen notifications: %w", err)
	}
	if err := checkResponse(resp); err != nil {
		return nil, fmt.Errorf("failed to list unseen notifications: %w", err)
	}
	
	return result, nil
}

func (c *Client) CountUnseen(ctx context.Context) (int, error) {
	var result int
	resp, err := c.execute(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.SetResult(&result).Get("/Notification/count-unseen")
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count unseen notifications: %w", err)
	}
	if err := checkResponse(resp); err != nil {
		return 0, fmt.Errorf("failed to count unseen notifications: %w", err)
	}
	
	return result, nil
}

func (c *Client) MarkAllSeen(ctx context.Context) error {
	resp, err := c.execute(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.Put("/Notification/mark-all-seen")
	})
	if err != nil {
		return fmt.Errorf("failed to mark all notifications seen: %w", err)
	}
	if err := checkResponse(resp); err != nil {
		return fmt.Errorf("failed to mark all notifications seen: %w", err)
	}
	
	return nil
}

func (c *Client) MarkOneSeen(ctx context.Context, id string) error {
	resp, err := c.execute(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.SetPathParam("id", id).Put("/Notification/mark-one-seen/{id}")
	})
	if err != nil {
		return fmt.Errorf("failed to mark notification %s seen: %w", id, err)
	}
	if err := checkResponse(resp); err != nil {
		return fmt.Errorf("failed to mark notification %s seen: %w", id, err)
	}
	
	return nil
}
