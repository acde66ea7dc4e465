// Package gateway is the HTTP client for the data-source service: it runs
// database queries and generic API calls on behalf of bindings and
// actions, carrying the app's bearer token.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/pageforge/pageforge/pkg/models"
	"github.com/pageforge/pageforge/pkg/protocol"
)

const defaultTimeout = 30 * time.Second

// Client talks to the data-source service. It satisfies both the query
// executor and API client collaborators.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
	logger  *slog.Logger
}

func NewClient(baseURL, token string, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: defaultTimeout},
		logger:  logger.With("module", "gateway"),
	}
}

// ExecuteQuery posts a query to the data-source service and returns the
// decoded result rows.
func (c *Client) ExecuteQuery(ctx context.Context, dataSourceID, query string, parameters map[string]any, limit int) (*models.QueryResult, error) {
	if parameters == nil {
		parameters = map[string]any{}
	}

	payload := map[string]any{
		"query":      query,
		"parameters": parameters,
		"limit":      limit,
	}

	url := fmt.Sprintf("%s/data-sources/%s/query", c.baseURL, dataSourceID)

	body, err := c.do(ctx, http.MethodPost, url, payload)
	if err != nil {
		return nil, err
	}

	var result models.QueryResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode query result: %w", err)
	}

	return &result, nil
}

// Call performs a generic request. Absolute endpoints go out as-is;
// relative ones resolve against the service base URL.
func (c *Client) Call(ctx context.Context, endpoint, method string, body map[string]any) (any, error) {
	if method == "" {
		method = http.MethodGet
	}

	url := endpoint
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		url = c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	}

	var payload any
	if body != nil && method != http.MethodGet {
		payload = body
	}

	respBody, err := c.do(ctx, method, url, payload)
	if err != nil {
		return nil, err
	}

	if len(respBody) == 0 {
		return nil, nil
	}

	var data any
	if err := json.Unmarshal(respBody, &data); err != nil {
		// Non-JSON responses come back as the raw text.
		return string(respBody), nil
	}

	return data, nil
}

func (c *Client) do(ctx context.Context, method, url string, payload any) ([]byte, error) {
	var bodyReader io.Reader

	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}

		bodyReader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	if bodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warn("failed to close response body", "error", err)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("request to %s returned status %d", url, resp.StatusCode)
	}

	return respBody, nil
}

var (
	_ protocol.QueryExecutor = (*Client)(nil)
	_ protocol.APIClient     = (*Client)(nil)
)
