// internal/common/http/client.go
package http

import (
	"context"
	"net/http"
)

// Client is a shared HTTP client for outbound API calls. Deadlines come
// from the request context, not a transport-level timeout, so a single
// client serves calls with different budgets.
type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{},
	}
}

func (c *Client) Do(req *http.Request) (*http.Response, error) {
	return c.httpClient.Do(req)
}

func (c *Client) DoWithContext(ctx context.Context, req *http.Request) (*http.Response, error) {
	req = req.WithContext(ctx)
	return c.httpClient.Do(req)
}
