package api

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

	"github.com/habitrow/habitctl/internal/config"
)

const (
	defaultBaseURL      = "https://api.notion.com/v1"
	defaultNotionAPIRev = "2022-06-28"
)

// Client talks to the official Notion REST API.
type Client struct {
	httpClient    *http.Client
	baseURL       string
	notionVersion string
	token         string
}

// Page is the subset of a Notion page object the habit flows care about.
type Page struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// QueryResponse is the subset of a database query response the habit flows
// care about.
type QueryResponse struct {
	Results    []Page `json:"results"`
	HasMore    bool   `json:"has_more"`
	NextCursor string `json:"next_cursor"`
}

// APIError is a non-2xx response from the Notion API. It carries the HTTP
// status and the upstream message so callers can decide exit behavior.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("notion API %s %s failed (%d): %s", e.Method, e.Path, e.StatusCode, e.Message)
}

// IsAPIError reports whether err wraps an upstream Notion API failure.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

func NewClient(cfg config.APIConfig) (*Client, error) {
	token := strings.TrimSpace(cfg.Token)
	if token == "" {
		return nil, fmt.Errorf("notion API token is required")
	}

	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	notionVersion := strings.TrimSpace(cfg.NotionVersion)
	if notionVersion == "" {
		notionVersion = defaultNotionAPIRev
	}

	return &Client{
		httpClient:    &http.Client{Timeout: 20 * time.Second},
		baseURL:       baseURL,
		notionVersion: notionVersion,
		token:         token,
	}, nil
}

// CreatePage creates a page via POST /pages and returns the created page.
func (c *Client) CreatePage(ctx context.Context, payload map[string]any) (*Page, error) {
	if len(payload) == 0 {
		return nil, fmt.Errorf("page payload is required")
	}

	var page Page
	if err := c.doJSON(ctx, http.MethodPost, "/pages", payload, &page); err != nil {
		return nil, err
	}
	if strings.TrimSpace(page.ID) == "" {
		return nil, fmt.Errorf("create page succeeded but response contained no page ID")
	}
	return &page, nil
}

// QueryDatabase runs POST /databases/{id}/query with the given query body.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, query map[string]any) (*QueryResponse, error) {
	databaseID = strings.TrimSpace(databaseID)
	if databaseID == "" {
		return nil, fmt.Errorf("database ID is required")
	}
	if query == nil {
		query = map[string]any{}
	}

	var out QueryResponse
	if err := c.doJSON(ctx, http.MethodPost, "/databases/"+databaseID+"/query", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyToken checks the configured token against GET /users/me.
func (c *Client) VerifyToken(ctx context.Context) error {
	var user struct {
		ID string `json:"id"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/users/me", nil, &user); err != nil {
		return err
	}
	if strings.TrimSpace(user.ID) == "" {
		return fmt.Errorf("token verification returned empty user ID")
	}
	return nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, payload any, out any) error {
	var bodyReader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return err
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("authorization", "Bearer "+c.token)
	req.Header.Set("notion-version", c.notionVersion)
	if payload != nil {
		req.Header.Set("content-type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		message := strings.TrimSpace(string(respBody))
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		} else {
			var errResp struct {
				Message string `json:"message"`
			}
			if err := json.Unmarshal(respBody, &errResp); err == nil && strings.TrimSpace(errResp.Message) != "" {
				message = strings.TrimSpace(errResp.Message)
			}
		}
		return &APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Message:    message,
		}
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("parse notion API response for %s %s: %w", method, path, err)
	}
	return nil
}
