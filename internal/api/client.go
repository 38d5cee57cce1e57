// ABOUTME: Authenticated HTTP client for the Kerala Krishi Sahai backend
// ABOUTME: Injects bearer tokens, tags requests, and turns 401 into a forced sign-out

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/krishisahai/krishi-cli/internal/cache"
	"github.com/krishisahai/krishi-cli/internal/models"
)

const clientInfo = "krishi-cli/1.0.0"

// TokenSource supplies the bearer token for each request. It returns
// models.ErrNoSession when the user is signed out.
type TokenSource func(ctx context.Context) (string, error)

// Options tune the client; zero values get sensible defaults.
type Options struct {
	HTTPClient *http.Client
	// OnUnauthorized fires when the backend answers 401. The auth manager
	// hooks this to force a sign-out: a rejected token is dead regardless
	// of what the local expiry claims.
	OnUnauthorized func()
	// ChatPerMinute caps chat sends client-side so a busy chat loop cannot
	// exhaust the backend's model quota.
	ChatPerMinute int
	// MasterDataTTL controls caching of districts/soil types/crops, which
	// change rarely.
	MasterDataTTL time.Duration
}

// Client is the API client for the farming-assistant backend.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokens         TokenSource
	onUnauthorized func()
	chatLimiter    *rate.Limiter

	districts *cache.Cache[[]models.District]
	soilTypes *cache.Cache[[]models.SoilType]
	crops     *cache.Cache[[]models.Crop]
}

// New creates a client for the given base URL and token source.
func New(baseURL string, tokens TokenSource, opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	perMinute := opts.ChatPerMinute
	if perMinute <= 0 {
		perMinute = 10
	}
	ttl := opts.MasterDataTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &Client{
		baseURL:        baseURL,
		httpClient:     httpClient,
		tokens:         tokens,
		onUnauthorized: opts.OnUnauthorized,
		chatLimiter:    rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), perMinute),
		districts:      cache.New[[]models.District](ttl),
		soilTypes:      cache.New[[]models.SoilType](ttl),
		crops:          cache.New[[]models.Crop](ttl),
	}
}

// Close stops the client's cache maintenance goroutines.
func (c *Client) Close() {
	c.districts.Stop()
	c.soilTypes.Stop()
	c.crops.Stop()
}

// do runs one authenticated request. body and out may be nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	token, err := c.tokens(ctx)
	if err != nil {
		return fmt.Errorf("cannot authorize request: %w", err)
	}

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Client-Info", clientInfo)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.handleRequestError(ctx, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return fmt.Errorf("%w: backend rejected token for %s %s", models.ErrUnauthorized, method, path)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s %s", models.ErrNotFound, method, path)
	case resp.StatusCode >= 400:
		return c.handleErrorResponse(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("invalid response from backend: %w", err)
		}
	}
	return nil
}

// handleRequestError converts context errors to user-friendly messages
func (c *Client) handleRequestError(ctx context.Context, err error) error {
	if ctx.Err() == context.Canceled {
		return fmt.Errorf("request canceled")
	}
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("request timed out")
	}
	return fmt.Errorf("cannot connect to backend at %s: %w", c.baseURL, err)
}

// handleErrorResponse parses backend error payloads ({"detail": ...}).
func (c *Client) handleErrorResponse(resp *http.Response) error {
	var errResp struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
		return fmt.Errorf("backend returned status %d", resp.StatusCode)
	}
	msg := errResp.Detail
	if msg == "" {
		msg = errResp.Error
	}
	if msg == "" {
		return fmt.Errorf("backend returned status %d", resp.StatusCode)
	}
	return fmt.Errorf("backend error: %s", msg)
}
