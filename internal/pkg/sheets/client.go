package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"union-portal/internal/domain"
)

// Client appends recruitment applications to the union's spreadsheet
// through an Apps-Script style webhook. The webhook owns the sheet layout;
// this client only posts rows.
type Client struct {
	webhookURL string
	token      string
	httpClient *http.Client
}

func NewClient(webhookURL, token string, timeout time.Duration) *Client {
	return &Client{
		webhookURL: webhookURL,
		token:      token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type appendPayload struct {
	Token      string `json:"token,omitempty"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	StudentID  string `json:"student_id"`
	Department string `json:"department"`
	Motivation string `json:"motivation"`
	CreatedAt  string `json:"created_at"`
}

func (c *Client) Append(ctx context.Context, app domain.Application) error {
	if c.webhookURL == "" {
		return fmt.Errorf("sheet webhook URL not configured")
	}

	payload, err := json.Marshal(appendPayload{
		Token:      c.token,
		FullName:   app.FullName,
		Email:      app.Email,
		StudentID:  app.StudentID,
		Department: app.Department,
		Motivation: app.Motivation,
		CreatedAt:  app.CreatedAt.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sheet webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("sheet webhook returned status %d", resp.StatusCode)
	}
	return nil
}
