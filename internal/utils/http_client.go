package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewJSONClient("http://localhost:1248", 30*time.Second)
//	resp, err := client.R().SetBody(req).Post("")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a default-configured client. Each call returns an
// independent instance with its own connection pool.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// NewJSONClient creates a client bound to baseURL that sends and accepts
// JSON. A non-positive timeout leaves resty's default (none).
func NewJSONClient(baseURL string, timeout time.Duration) *HTTPClient {
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &HTTPClient{Client: c}
}
