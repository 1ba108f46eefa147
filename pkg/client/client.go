// Package client is a typed Go client for the fleet backend API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// APIError represents a non-2xx response from the server
type APIError struct {
	StatusCode int
	Message    string
	Details    string
	Body       []byte
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("api error: status=%d message=%q details=%q", e.StatusCode, e.Message, e.Details)
	}
	return fmt.Sprintf("api error: status=%d message=%q", e.StatusCode, e.Message)
}

// RetryPolicy controls retries for GET requests. Mutating requests are never
// retried; the server generates ids from the clock and a replay would create
// duplicates.
type RetryPolicy struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
	Jitter     float64
}

// DefaultRetryPolicy is a conservative retry strategy
var DefaultRetryPolicy = RetryPolicy{
	MaxRetries: 3,
	BaseDelay:  250 * time.Millisecond,
	MaxDelay:   2 * time.Second,
	Jitter:     0.25,
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// WithRetryPolicy overrides the default retry configuration
func WithRetryPolicy(policy RetryPolicy) Option {
	return func(c *Client) {
		c.retryPolicy = policy
	}
}

// Client issues requests against one fleet backend
type Client struct {
	baseURL     *url.URL
	token       string
	httpClient  *http.Client
	retryPolicy RetryPolicy
}

// New creates a Client for the given base URL. token is sent as a bearer
// token on every request; pass "" for servers without auth.
func New(baseURL, token string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("client: base URL is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("client: invalid base URL: %w", err)
	}

	c := &Client{
		baseURL: parsed,
		token:   token,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		retryPolicy: DefaultRetryPolicy,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.retryPolicy.MaxRetries < 0 {
		c.retryPolicy.MaxRetries = 0
	}
	if c.retryPolicy.BaseDelay <= 0 {
		c.retryPolicy.BaseDelay = DefaultRetryPolicy.BaseDelay
	}
	if c.retryPolicy.MaxDelay <= 0 {
		c.retryPolicy.MaxDelay = DefaultRetryPolicy.MaxDelay
	}
	return c, nil
}

// Health calls GET /health
func (c *Client) Health(ctx context.Context) (*Health, error) {
	return doGet[*Health](ctx, c, "/health", nil)
}

// InitSchema calls POST /init-schema
func (c *Client) InitSchema(ctx context.Context) (*SeedResult, error) {
	return doSend[*SeedResult](ctx, c, http.MethodPost, "/init-schema", nil)
}

// Projectors calls GET /projectors
func (c *Client) Projectors(ctx context.Context) ([]Projector, error) {
	return doGet[[]Projector](ctx, c, "/projectors", nil)
}

// Projector calls GET /projector/:serial
func (c *Client) Projector(ctx context.Context, serial string) (*ProjectorDetail, error) {
	return doGet[*ProjectorDetail](ctx, c, "/projector/"+url.PathEscape(serial), nil)
}

// UpdateProjector calls PUT /projector/:serial
func (c *Client) UpdateProjector(ctx context.Context, serial string, patch Patch) (*Projector, error) {
	return doSend[*Projector](ctx, c, http.MethodPut, "/projector/"+url.PathEscape(serial), patch)
}

// Services calls GET /services
func (c *Client) Services(ctx context.Context) ([]ServiceRecord, error) {
	return doGet[[]ServiceRecord](ctx, c, "/services", nil)
}

// CreateService calls POST /service
func (c *Client) CreateService(ctx context.Context, input CreateServiceInput) (*ServiceRecord, error) {
	return doSend[*ServiceRecord](ctx, c, http.MethodPost, "/service", input)
}

// UpdateService calls PUT /service/:id
func (c *Client) UpdateService(ctx context.Context, id string, patch Patch) (*ServiceRecord, error) {
	return doSend[*ServiceRecord](ctx, c, http.MethodPut, "/service/"+url.PathEscape(id), patch)
}

// SpareParts calls GET /spare-parts
func (c *Client) SpareParts(ctx context.Context) ([]SparePart, error) {
	return doGet[[]SparePart](ctx, c, "/spare-parts", nil)
}

// CreateSparePart calls POST /spare-part
func (c *Client) CreateSparePart(ctx context.Context, input CreateSparePartInput) (*SparePart, error) {
	return doSend[*SparePart](ctx, c, http.MethodPost, "/spare-part", input)
}

// UpdateSparePart calls PUT /spare-part/:id
func (c *Client) UpdateSparePart(ctx context.Context, id string, patch Patch) (*SparePart, error) {
	return doSend[*SparePart](ctx, c, http.MethodPut, "/spare-part/"+url.PathEscape(id), patch)
}

// RMAs calls GET /rma
func (c *Client) RMAs(ctx context.Context) ([]RMA, error) {
	return doGet[[]RMA](ctx, c, "/rma", nil)
}

// CreateRMA calls POST /rma
func (c *Client) CreateRMA(ctx context.Context, input CreateRMAInput) (*RMA, error) {
	return doSend[*RMA](ctx, c, http.MethodPost, "/rma", input)
}

// UpdateRMA calls PUT /rma/:id
func (c *Client) UpdateRMA(ctx context.Context, id string, patch Patch) (*RMA, error) {
	return doSend[*RMA](ctx, c, http.MethodPut, "/rma/"+url.PathEscape(id), patch)
}

// Analytics calls GET /analytics
func (c *Client) Analytics(ctx context.Context) (*AnalyticsOverview, error) {
	return doGet[*AnalyticsOverview](ctx, c, "/analytics", nil)
}

// DashboardStats calls GET /dashboard-stats
func (c *Client) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	return doGet[*DashboardStats](ctx, c, "/dashboard-stats", nil)
}

// Search calls GET /search?q=
func (c *Client) Search(ctx context.Context, query string) (*SearchResults, error) {
	q := url.Values{}
	q.Set("q", query)
	return doGet[*SearchResults](ctx, c, "/search", q)
}

// Reindex calls POST /admin/reindex
func (c *Client) Reindex(ctx context.Context) (*ReindexResult, error) {
	return doSend[*ReindexResult](ctx, c, http.MethodPost, "/admin/reindex", nil)
}

// doGet issues a GET with retries for transient failures
func doGet[T any](ctx context.Context, c *Client, path string, query url.Values) (T, error) {
	var zero T

	var lastErr error
	for attempt := 0; ; attempt++ {
		out, err := do[T](ctx, c, http.MethodGet, path, query, nil)
		if err == nil {
			return out, nil
		}
		lastErr = err
		if attempt >= c.retryPolicy.MaxRetries || !retryable(err) {
			return zero, lastErr
		}
		if err := sleep(ctx, c.backoffDelay(attempt)); err != nil {
			return zero, err
		}
	}
}

// doSend issues a mutating request exactly once
func doSend[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	return do[T](ctx, c, method, path, nil, body)
}

func do[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any) (T, error) {
	var zero T

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return zero, fmt.Errorf("client: encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	ref, err := url.Parse(path)
	if err != nil {
		return zero, fmt.Errorf("client: invalid path %q: %w", path, err)
	}
	if len(query) > 0 {
		ref.RawQuery = query.Encode()
	}
	fullURL := c.baseURL.ResolveReference(ref).String()

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return zero, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return zero, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, fmt.Errorf("client: read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return zero, newAPIError(resp.StatusCode, data)
	}

	var out T
	if len(data) > 0 {
		if err := json.Unmarshal(data, &out); err != nil {
			return zero, fmt.Errorf("client: decode response: %w", err)
		}
	}
	return out, nil
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Body: body}
	var wire struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	if json.Unmarshal(body, &wire) == nil {
		apiErr.Message = wire.Error
		apiErr.Details = wire.Details
	}
	return apiErr
}

// retryable reports whether the request may be reissued: transport errors
// and 5xx responses, but never context cancellation
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500 && apiErr.StatusCode <= 599
	}
	return true
}

func (c *Client) backoffDelay(attempt int) time.Duration {
	delay := time.Duration(float64(c.retryPolicy.BaseDelay) * math.Pow(2, float64(attempt)))
	if delay <= 0 || delay > c.retryPolicy.MaxDelay {
		delay = c.retryPolicy.MaxDelay
	}
	if c.retryPolicy.Jitter > 0 {
		factor := 1 + (rand.Float64()*2-1)*math.Min(c.retryPolicy.Jitter, 1)
		if factor < 0 {
			factor = 0
		}
		delay = time.Duration(float64(delay) * factor)
	}
	return delay
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
