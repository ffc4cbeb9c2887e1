package client

import (
	"net/http"
	"time"
)

// MaintenanceStatus represents the public maintenance flags.
type MaintenanceStatus struct {
	Mode    string `json:"maintenanceMode"`
	Message string `json:"maintenanceMessage"`
}

// MaintenanceEvent is one entry of the maintenance change history.
type MaintenanceEvent struct {
	ID        int64     `json:"id"`
	Mode      string    `json:"mode"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Login validates the configured admin password against the server.
func (c *Client) Login() error {
	body := map[string]string{"password": c.password}
	return c.doJSON(http.MethodPost, "/api/admin/login", body, false, nil)
}

// Maintenance returns the public maintenance flags.
func (c *Client) Maintenance() (*MaintenanceStatus, error) {
	var status MaintenanceStatus
	if err := c.doJSON(http.MethodGet, "/api/maintenance", nil, false, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// SetMaintenance updates the maintenance flags. Admin only.
func (c *Client) SetMaintenance(mode, message string) error {
	body := map[string]string{"mode": mode, "message": message}
	return c.doJSON(http.MethodPost, "/api/admin/maintenance", body, true, nil)
}

// MaintenanceHistory returns past maintenance changes, newest first. Admin only.
func (c *Client) MaintenanceHistory() ([]MaintenanceEvent, error) {
	var history []MaintenanceEvent
	if err := c.doJSON(http.MethodGet, "/api/admin/maintenance/history", nil, true, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// Blacklist returns the current word blacklist. Admin only.
func (c *Client) Blacklist() ([]string, error) {
	var resp struct {
		Words []string `json:"words"`
	}
	if err := c.doJSON(http.MethodGet, "/api/admin/blacklist", nil, true, &resp); err != nil {
		return nil, err
	}
	return resp.Words, nil
}

// SetBlacklist replaces the word blacklist. Admin only.
func (c *Client) SetBlacklist(words []string) error {
	body := map[string][]string{"words": words}
	return c.doJSON(http.MethodPut, "/api/admin/blacklist", body, true, nil)
}
