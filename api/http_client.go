// api/http_client.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"
)

// HTTPClient struct to hold base URL and HTTP client configuration
type HTTPClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewHTTPClient creates a new instance of HTTPClient with default settings
func NewHTTPClient(baseURL string) *HTTPClient {
	return NewHTTPClientWithTimeout(baseURL, 10*time.Second)
}

// NewHTTPClientWithTimeout creates an HTTPClient with an explicit timeout.
func NewHTTPClientWithTimeout(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Get issues a GET with query parameters and decodes the JSON response.
func (c *HTTPClient) Get(ctx context.Context, endpoint string, query url.Values, response interface{}) error {
	target := c.BaseURL + endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	return c.request(ctx, "GET", target, nil, response)
}

// Request makes an HTTP request with a JSON body and decodes the response.
func (c *HTTPClient) Request(ctx context.Context, method, endpoint string, body interface{}, response interface{}) error {
	var requestBody []byte
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return err
		}
		requestBody = jsonBody
	}

	return c.request(ctx, method, c.BaseURL+endpoint, requestBody, response)
}

func (c *HTTPClient) request(ctx context.Context, method, target string, body []byte, response interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return errors.New("unexpected status code: " + res.Status)
	}

	if response != nil {
		return json.Unmarshal(resBody, response)
	}

	return nil
}
