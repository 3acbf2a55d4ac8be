package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around resty.Client used by the outbound adapters.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://relay.example", 10*time.Second)
//	resp, err := client.R().SetBody(payload).Post("/send")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client bound to baseURL with the given per-request
// timeout. A zero timeout leaves the resty default (no timeout).
//
// Each call returns an independent client with its own connection pool.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}

// WithBearerToken sets the Authorization header sent with every request.
// An empty token leaves the client unchanged.
func (c *HTTPClient) WithBearerToken(token string) *HTTPClient {
	if token != "" {
		c.SetAuthToken(token)
	}
	return c
}
