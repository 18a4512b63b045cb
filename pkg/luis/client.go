package luis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

var (
	ErrMissingEndpoint = errors.New("luis: endpoint is required")
	ErrMissingAppID    = errors.New("luis: app id is required")
	ErrMissingAPIKey   = errors.New("luis: api key is required")
	ErrQueryTooLong    = fmt.Errorf("luis: query exceeds %d characters", MaxQueryLength)
)

// Client is the LUIS v3 prediction client.
type Client struct {
	endpoint   string
	appID      string
	apiKey     string
	slot       string
	httpClient *http.Client
}

var _ ILUIS = (*Client)(nil)

// New creates a LUIS client. It fails when any connection setting is missing.
func New(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, ErrMissingEndpoint
	}
	if cfg.AppID == "" {
		return nil, ErrMissingAppID
	}
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	slot := cfg.Slot
	if slot == "" {
		slot = DefaultSlot
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		endpoint:   strings.TrimSuffix(cfg.Endpoint, "/"),
		appID:      cfg.AppID,
		apiKey:     cfg.APIKey,
		slot:       slot,
		httpClient: httpClient,
	}, nil
}

// Predict recognises intents and entities in query.
// All intents are scored and instance metadata is requested.
func (c *Client) Predict(ctx context.Context, query string) (*PredictionResponse, error) {
	if len([]rune(query)) > MaxQueryLength {
		return nil, ErrQueryTooLong
	}

	params := url.Values{}
	params.Set("verbose", "true")
	params.Set("show-all-intents", "true")
	params.Set("log", "true")
	params.Set("query", query)

	endpoint := fmt.Sprintf("%s/luis/prediction/v3.0/apps/%s/slots/%s/predict?%s",
		c.endpoint, url.PathEscape(c.appID), url.PathEscape(c.slot), params.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("luis: failed to create request: %w", err)
	}
	httpReq.Header.Set("Ocp-Apim-Subscription-Key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("luis: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp ErrorResponse
		if jsonErr := json.NewDecoder(resp.Body).Decode(&errResp); jsonErr == nil && errResp.Error.Message != "" {
			return nil, fmt.Errorf("luis: API error (%d): %s", resp.StatusCode, errResp.Error.Message)
		}
		return nil, fmt.Errorf("luis: API error: %d", resp.StatusCode)
	}

	var parsed PredictionResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("luis: failed to decode response: %w", err)
	}
	return &parsed, nil
}
