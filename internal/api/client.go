package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pisystem/client/internal/logging"
	"github.com/pisystem/client/internal/models"
)

// API is the remote surface consumed by the repositories. *Client is the
// production implementation; tests substitute fakes.
//
// Each call is a single round trip: no retry, no caching. The outcome
// (status code plus body bytes, or a transport error) is handed unmodified
// to the owning repository.
type API interface {
	Login(ctx context.Context, req models.LoginRequest) (*Response, error)
	Register(ctx context.Context, req models.RegisterRequest) (*Response, error)
	NetWorth(ctx context.Context, userID int64) (*Response, error)
	PortfolioSummary(ctx context.Context, userID int64) (*Response, error)
}

// Client is the pi_system REST API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        logging.Logger
}

// Config holds client configuration.
type Config struct {
	// BaseURL is the scheme://host[:port] of the backend. Required.
	BaseURL string
	// HTTPClient carries the transport (including the auth RoundTripper).
	// Defaults to a plain client with a 30s timeout.
	HTTPClient *http.Client
	// Logger defaults to a nop logger.
	Logger logging.Logger
}

// New creates a new API client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("BaseURL is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	log := cfg.Logger
	if log == nil {
		log = logging.NewNopLogger()
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: httpClient,
		log:        log,
	}, nil
}

// Login performs POST /api/auth/login.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*Response, error) {
	return c.post(ctx, "/api/auth/login", req)
}

// Register performs POST /api/auth/register.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*Response, error) {
	return c.post(ctx, "/api/auth/register", req)
}

// NetWorth performs GET /api/v1/net-worth/{userId}.
func (c *Client) NetWorth(ctx context.Context, userID int64) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/api/v1/net-worth/%d", userID))
}

// PortfolioSummary performs GET /api/v1/portfolio/summary/{userId}.
func (c *Client) PortfolioSummary(ctx context.Context, userID int64) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/api/v1/portfolio/summary/%d", userID))
}

func (c *Client) post(ctx context.Context, path string, body any) (*Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

func (c *Client) get(ctx context.Context, path string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	c.setHeaders(req)

	return c.do(req)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
}

func (c *Client) do(req *http.Request) (*Response, error) {
	c.log.Debug(req.Context(), "sending request",
		"method", req.Method, "url", req.URL.String(),
		"request_id", req.Header.Get("X-Request-ID"))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	c.log.Debug(req.Context(), "received response",
		"url", req.URL.String(), "status", resp.StatusCode, "body_length", len(body))

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
		Headers:    resp.Header,
	}, nil
}
