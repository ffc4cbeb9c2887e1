package client

import (
	"encoding/json"
	"net/http"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// ReadyResponse represents the readiness probe response.
type ReadyResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Online   int    `json:"online"`
	Waiting  int    `json:"waiting"`
}

// Health checks the server health.
func (c *Client) Health() (*HealthResponse, error) {
	resp, err := c.httpClient.Get(c.server + "/health")
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    "health check failed",
		}
	}

	var health HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, err
	}

	return &health, nil
}

// Ready checks whether the server is ready and returns matchmaking stats.
func (c *Client) Ready() (*ReadyResponse, error) {
	resp, err := c.httpClient.Get(c.server + "/ready")
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	defer resp.Body.Close()

	var ready ReadyResponse
	if err := json.NewDecoder(resp.Body).Decode(&ready); err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return &ready, &APIError{
			StatusCode: resp.StatusCode,
			Message:    "server not ready",
		}
	}

	return &ready, nil
}
