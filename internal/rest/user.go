package rest

import (
	"context"
	"fmt"
	"strconv"
	
	"resty.dev/v3"
)

// Vai trò người dùng trong portal.
const (
	RoleAdmin      = "Admin"
	RolePolice     = "Police"
	RoleSpecialist = "Specialist"
	RoleIndividual = "Individual"
)

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
	IsActive bool   `json:"isActive"`
}

type UserList struct {
	Items      []User `json:"items"`
	TotalCount int    `json:"totalCount"`
}

func (c *Client) ListUsers(ctx context.Context, page, pageSize int) (*UserList, error) {
	var result UserList
	resp, err := c.execute(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetQueryParam("page", strconv.Itoa(page)).
			SetQueryParam("pageSize", strconv.Itoa(pageSize)).
			SetResult(&result).
			Get("/User/all")
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if err := checkResponse(resp); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	
	return &result, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	var result User
	resp, err := c.execute(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.SetPathParam("id", id).SetResult(&result).Get("/User/{id}")
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", id, err)
	}
	if err := checkResponse(resp); err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", id, err)
	}
	
	return &result, nil
}

func (c *Client) ActivateUser(ctx context.Context, id string) error {
	return c.putAction(ctx, "/User/activate/{id}", id, "activate user")
}

func (c *Client) DeactivateUser(ctx context.Context, id string) error {
	return c.putAction(ctx, "/User/deactivate/{id}", id, "deactivate user")
}
