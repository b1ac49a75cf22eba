package kalshi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Base URLs for the two Kalshi environments.
const (
	ProductionBaseURL = "https://trading-api.kalshi.com/trade-api/v2"
	DemoBaseURL       = "https://demo-api.kalshi.com/trade-api/v2"
)

// Client is a Kalshi API client. It is safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	apiSecret  string
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger

	closeOnce sync.Once
}

// NewClient creates a new Kalshi API client. baseURL, apiKey, and apiSecret
// are required; a trailing slash on baseURL is stripped.
func NewClient(baseURL, apiKey, apiSecret string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("%w: base URL is required", ErrInvalidConfig)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: API key is required", ErrInvalidConfig)
	}
	if apiSecret == "" {
		return nil, fmt.Errorf("%w: API secret is required", ErrInvalidConfig)
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.timeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		apiSecret:  apiSecret,
		userAgent:  options.userAgent,
		httpClient: httpClient,
		logger:     logger.With().Str("component", "kalshi").Logger(),
	}, nil
}

// doRequest performs a signed HTTP request and returns the raw response body
// and status code. Non-2xx statuses are mapped to the package error taxonomy;
// connection, timeout, and read failures come back as *TransportError.
//
// The body, when non-nil, is marshalled exactly once and those bytes are used
// for both the signature and the wire payload. Query parameters never enter
// the signature; only the path is signed.
func (c *Client) doRequest(ctx context.Context, method, path string, params url.Values, body any) ([]byte, int, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	c.setAuthHeaders(req, method, path, payload)

	c.logger.Trace().
		Str("method", method).
		Str("path", path).
		Msg("Sending API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, &TransportError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, &TransportError{Op: method + " " + path, Err: err}
	}

	if err := classify(resp.StatusCode, data); err != nil {
		c.logger.Debug().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Msg("API request failed")
		return nil, resp.StatusCode, err
	}

	return data, resp.StatusCode, nil
}

// Close releases idle connections held by the underlying HTTP client. The
// client must not be used after Close. Safe to call more than once.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		c.httpClient.CloseIdleConnections()
	})
}
