package qnamaker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrMissingEndpoint    = errors.New("qnamaker: endpoint is required")
	ErrMissingKnowledgeID = errors.New("qnamaker: knowledge base id is required")
	ErrMissingEndpointKey = errors.New("qnamaker: endpoint key is required")
)

// Client is the QnA Maker runtime client.
type Client struct {
	endpoint       string
	kbID           string
	endpointKey    string
	top            int
	scoreThreshold float64
	httpClient     *http.Client
}

var _ IQnAMaker = (*Client)(nil)

// New creates a QnA Maker client. It fails when any connection setting is missing.
func New(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, ErrMissingEndpoint
	}
	if cfg.KnowledgeBaseID == "" {
		return nil, ErrMissingKnowledgeID
	}
	if cfg.EndpointKey == "" {
		return nil, ErrMissingEndpointKey
	}

	top := cfg.Top
	if top <= 0 {
		top = DefaultTop
	}
	threshold := cfg.ScoreThreshold
	if threshold <= 0 {
		threshold = DefaultScoreThreshold
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
		endpoint:       strings.TrimSuffix(cfg.Endpoint, "/"),
		kbID:           cfg.KnowledgeBaseID,
		endpointKey:    cfg.EndpointKey,
		top:            top,
		scoreThreshold: threshold,
		httpClient:     httpClient,
	}, nil
}

// GenerateAnswer queries the knowledge base for question.
func (c *Client) GenerateAnswer(ctx context.Context, question string) ([]Answer, error) {
	url := fmt.Sprintf("%s/qnamaker/knowledgebases/%s/generateAnswer", c.endpoint, c.kbID)

	body, err := json.Marshal(GenerateAnswerRequest{
		Question:       question,
		Top:            c.top,
		ScoreThreshold: c.scoreThreshold * 100,
	})
	if err != nil {
		return nil, fmt.Errorf("qnamaker: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("qnamaker: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "EndpointKey "+c.endpointKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("qnamaker: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp ErrorResponse
		if jsonErr := json.NewDecoder(resp.Body).Decode(&errResp); jsonErr == nil && errResp.Error.Message != "" {
			return nil, fmt.Errorf("qnamaker: API error (%d): %s", resp.StatusCode, errResp.Error.Message)
		}
		return nil, fmt.Errorf("qnamaker: API error: %d", resp.StatusCode)
	}

	var parsed GenerateAnswerResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("qnamaker: failed to decode response: %w", err)
	}

	answers := make([]Answer, 0, len(parsed.Answers))
	for _, a := range parsed.Answers {
		if a.ID == noMatchID {
			continue
		}
		a.Score = a.Score / 100
		answers = append(answers, a)
	}
	return answers, nil
}
