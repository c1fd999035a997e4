// Package gateway is the HTTP boundary to the remote analysis backend. The
// backend owns the analysis itself; this client only triggers runs and
// relays payloads.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type runRequest struct {
	Ticker string `json:"ticker"`
}

// Run triggers an analysis run for the ticker and returns the backend's
// raw JSON payload verbatim.
func (c *Client) Run(ctx context.Context, ticker string) (json.RawMessage, error) {
	body, err := json.Marshal(runRequest{Ticker: ticker})
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPost, "/api/run", bytes.NewReader(body))
}

// Health reports whether the backend pipeline is reachable and ready.
func (c *Client) Health(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/api/health", nil)
}

// DeleteCollection drops the backend's document collection.
func (c *Client) DeleteCollection(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, http.MethodDelete, "/api/collection", nil)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("analysis backend %s %s: status %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(data)))
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("analysis backend %s %s: invalid JSON response", method, path)
	}
	return json.RawMessage(data), nil
}
