package scheduler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout is the default HTTP client timeout
const DefaultTimeout = 15 * time.Second

// Configuration errors.
var (
	ErrMissingEndpoint = errors.New("scheduler: endpoint is required")
)

// Client talks to the dentist scheduler REST API.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

var _ IScheduler = (*Client)(nil)

// New creates a scheduler client. The endpoint always ends with a slash.
func New(endpoint string, httpClient *http.Client) (*Client, error) {
	if endpoint == "" {
		return nil, ErrMissingEndpoint
	}
	if !strings.HasSuffix(endpoint, "/") {
		endpoint += "/"
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{endpoint: endpoint, httpClient: httpClient}, nil
}

// Availability fetches GET {endpoint}availability.
func (c *Client) Availability(ctx context.Context) ([]string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"availability", nil)
	if err != nil {
		return nil, fmt.Errorf("scheduler: failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("scheduler: failed to call availability: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("scheduler: availability error %d: %s", resp.StatusCode, string(raw))
	}

	var slots []string
	if err := json.NewDecoder(resp.Body).Decode(&slots); err != nil {
		return nil, fmt.Errorf("scheduler: failed to decode availability: %w", err)
	}
	return slots, nil
}

// Schedule posts {"time": timeText} to {endpoint}schedule.
func (c *Client) Schedule(ctx context.Context, timeText string) error {
	body, err := json.Marshal(ScheduleRequest{Time: timeText})
	if err != nil {
		return fmt.Errorf("scheduler: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"schedule", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("scheduler: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("scheduler: failed to call schedule: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("scheduler: schedule error %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}
