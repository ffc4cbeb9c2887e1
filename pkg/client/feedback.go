package client

import (
	"net/http"
	"time"
)

// Feedback is a user-submitted product feedback entry.
type Feedback struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// SubmitFeedback files a feedback entry. The name is optional.
func (c *Client) SubmitFeedback(name, message string) error {
	body := map[string]string{"message": message}
	if name != "" {
		body["name"] = name
	}
	return c.doJSON(http.MethodPost, "/api/feedback", body, false, nil)
}

// ListFeedback lists all feedback, newest first. Admin only.
func (c *Client) ListFeedback() ([]Feedback, error) {
	var feedback []Feedback
	if err := c.doJSON(http.MethodGet, "/api/admin/feedback", nil, true, &feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}
