package kalshi

import (
	"net/http"
	"time"
)

// clientOptions holds tunables applied during NewClient.
type clientOptions struct {
	timeout    time.Duration
	userAgent  string
	httpClient *http.Client
}

// defaultOptions returns the options applied when the caller overrides
// nothing.
func defaultOptions() *clientOptions {
	return &clientOptions{
		timeout:   30 * time.Second,
		userAgent: "kalshictl",
	}
}

// Option configures optional client behavior.
type Option func(*clientOptions)

// WithTimeout sets the per-request timeout. Non-positive values leave the
// default in place.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(o *clientOptions) {
		if ua != "" {
			o.userAgent = ua
		}
	}
}

// WithHTTPClient supplies a custom *http.Client, e.g. for tests or custom
// transports. The client's own Timeout wins over WithTimeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *clientOptions) {
		if hc != nil {
			o.httpClient = hc
		}
	}
}
