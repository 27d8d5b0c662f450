package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/elyvra/storefront/internal/config"
	"github.com/elyvra/storefront/internal/domain"
	"github.com/elyvra/storefront/pkg/errors"
)

// Client talks to the storefront REST backend. All durable state lives on
// the backend; the client only carries requests and decodes responses.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new REST client for the storefront backend
func NewClient(cfg config.APIConfig, logger *zap.Logger) *Client {
	// Normalize base URL - strip trailing slashes, ensure the /api prefix
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if !strings.HasSuffix(baseURL, "/api") {
		baseURL += "/api"
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// errorResponse is the error body shape: a human-readable detail field,
// optionally absent
type errorResponse struct {
	Detail string `json:"detail"`
}

// do executes one JSON request against the backend and decodes the
// response into out when out is non-nil
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		c.logger.Warn("API request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return c.apiError(resp.StatusCode, path, data)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}

	return nil
}

// apiError converts a non-2xx response into a typed error. The backend
// optionally carries a detail string; absence falls back to a generic
// message.
func (c *Client) apiError(status int, path string, data []byte) error {
	var errResp errorResponse
	_ = json.Unmarshal(data, &errResp)
	detail := errResp.Detail

	switch status {
	case http.StatusNotFound:
		resource, id := resourceFromPath(path)
		return &errors.ErrNotFound{Resource: resource, ID: id}
	case http.StatusUnauthorized, http.StatusForbidden:
		if detail == "" {
			detail = "unauthorized"
		}
		return &errors.ErrUnauthorized{Message: detail}
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		if detail == "" {
			detail = "request rejected by the server"
		}
		return &errors.ErrValidation{Detail: detail}
	default:
		return &errors.ErrAPI{Status: status, Detail: detail}
	}
}

// resourceFromPath extracts a resource name and identifier from a request
// path such as /admin/products/123 or /cart/abc/items
func resourceFromPath(path string) (string, string) {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	resource := ""
	id := ""
	for _, seg := range segments {
		if seg == "admin" {
			continue
		}
		if resource == "" {
			resource = seg
			continue
		}
		if id == "" {
			id = seg
		}
		break
	}
	if resource == "" {
		resource = path
	}
	return resource, id
}

// loginResponse wraps the admin profile returned on successful login
type loginResponse struct {
	Admin domain.Admin `json:"admin"`
}

// Login submits admin credentials and returns the profile the backend
// issued. The caller decides where to persist it.
func (c *Client) Login(ctx context.Context, username, password string) (*domain.Admin, error) {
	payload := map[string]string{
		"username": username,
		"password": password,
	}

	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/admin/login", payload, &resp); err != nil {
		return nil, err
	}
	return &resp.Admin, nil
}

// DefaultAdminResult reports the outcome of the bootstrap convenience
// endpoint. Username and password are only set when a new admin was
// created.
type DefaultAdminResult struct {
	Existing bool   `json:"existing"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
}

// InitDefaultAdmin asks the backend to create a default admin account.
// Not for production use.
func (c *Client) InitDefaultAdmin(ctx context.Context) (*DefaultAdminResult, error) {
	var result DefaultAdminResult
	if err := c.do(ctx, http.MethodPost, "/admin/init-default-admin", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Stats fetches the aggregate dashboard metrics
func (c *Client) Stats(ctx context.Context) (*domain.AdminStats, error) {
	var stats domain.AdminStats
	if err := c.do(ctx, http.MethodGet, "/admin/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
