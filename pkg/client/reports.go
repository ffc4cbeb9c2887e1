package client

import (
	"net/http"
	"time"
)

// Report is a user-submitted report about a chat partner.
type Report struct {
	ID        int64     `json:"id"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

// SubmitReport files a report. Public, rate limited per IP.
func (c *Client) SubmitReport(reason string) error {
	body := map[string]string{"reason": reason}
	return c.doJSON(http.MethodPost, "/api/reports", body, false, nil)
}

// Reports lists all reports, newest first. Admin only.
func (c *Client) Reports() ([]Report, error) {
	var reports []Report
	if err := c.doJSON(http.MethodGet, "/api/admin/reports", nil, true, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}
