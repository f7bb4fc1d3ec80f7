package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/helloakshay27/hi-society-backend-go/internal/config"
	"github.com/helloakshay27/hi-society-backend-go/internal/domain/patrol"
)

const patrollingSetupPath = "/pms/admin/patrollings.json"

// ErrNotConfigured is returned when the platform base URL or token is
// missing at submit time. It is a configuration failure, distinct from
// validation and transport errors.
var ErrNotConfigured = errors.New("platform API configuration is missing: set PLATFORM_BASE_URL and PLATFORM_TOKEN")

// APIError represents a non-success response from the platform.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("platform API error [%d]: %s", e.StatusCode, e.Message)
}

// Client submits assembled patrolling payloads to the facility platform.
type Client interface {
	CreatePatrolling(ctx context.Context, payload patrol.SubmissionPayload) error
}

type httpClient struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewClient(cfg config.PlatformConfig) Client {
	return &httpClient{
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *httpClient) CreatePatrolling(ctx context.Context, payload patrol.SubmissionPayload) error {
	if c.baseURL == "" || c.token == "" {
		return ErrNotConfigured
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode patrolling payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+patrollingSetupPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build patrolling request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach platform API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Prefer the server-provided message when the body carries one.
		var errBody struct {
			Message string `json:"message"`
		}
		message := "request failed"
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil && errBody.Message != "" {
			message = errBody.Message
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	return nil
}
