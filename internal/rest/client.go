package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"
	
	"resty.dev/v3"
	
	"github.com/autosys-vn/autosys-client/internal/token"
)

// APIError là lỗi HTTP non-2xx từ portal.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("portal returned status %d: %s", e.Status, e.Body)
}

// Client is the shared REST client for the portal. Every domain
// surface (notifications, vehicles, fines, inspections, users) goes
// through it, so the bearer header and the 401 refresh-and-retry
// policy live in exactly one place.
type Client struct {
	http    *resty.Client
	session *token.Session
}

func NewClient(baseURL string, timeout time.Duration, session *token.Session) *Client {
	// Khởi tạo resty client
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	
	return &Client{
		http:    httpClient,
		session: session,
	}
}

// Close releases the underlying transport.
func (c *Client) Close() error {
	return c.http.Close()
}

func (c *Client) newRequest(ctx context.Context) *resty.Request {
	req := c.http.R().SetContext(ctx)
	if t := c.session.Token(); t != "" {
		req.SetAuthToken(t)
	}
	return req
}

// execute runs one request. A 401 on any endpoint other than the auth
// ones triggers a token refresh and a single retry; a second 401 is
// returned to the caller.
func (c *Client) execute(ctx context.Context, send func(req *resty.Request) (*resty.Response, error)) (*resty.Response, error) {
	resp, err := send(c.newRequest(ctx))
	if err != nil {
		return nil, err
	}
	
	if resp.StatusCode() != http.StatusUnauthorized {
		return resp, nil
	}
	
	if err := c.RefreshToken(ctx); err != nil {
		return resp, fmt.Errorf("failed to refresh session token: %w", err)
	}
	
	return send(c.newRequest(ctx))
}

func checkResponse(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}
	return &APIError{Status: resp.StatusCode(), Body: resp.String()}
}
