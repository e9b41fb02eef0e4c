package httpclient

import (
	"log/slog"
	"net/http"
	"time"
)

const defaultUserAgent = "cinescout/0.1"

// Config holds transport configuration.
type Config struct {
	Timeout   time.Duration
	UserAgent string
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Timeout:   15 * time.Second,
		UserAgent: defaultUserAgent,
	}
}

// Client is a thin wrapper around http.Client that adds a request timeout,
// a User-Agent header, and debug logging of each call. Every request is
// made exactly once; failed calls are surfaced to the caller, not re-issued.
type Client struct {
	http   *http.Client
	config Config
	logger *slog.Logger
}

// New creates a Client with a default http.Client.
func New(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	return &Client{
		http: &http.Client{
			Timeout: cfg.Timeout,
		},
		config: cfg,
		logger: logger,
	}
}

// NewWithHTTPClient creates a Client with a custom http.Client.
func NewWithHTTPClient(cfg Config, httpClient *http.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	return &Client{
		http:   httpClient,
		config: cfg,
		logger: logger,
	}
}

// Do executes an HTTP request. The context attached to the request governs
// cancellation; the configured timeout caps total call duration.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.config.UserAgent)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	elapsed := time.Since(start)

	if err != nil {
		if req.Context().Err() != nil {
			return nil, req.Context().Err()
		}
		c.logger.Debug("request failed",
			slog.String("method", req.Method),
			slog.String("url", req.URL.Redacted()),
			slog.String("elapsed", elapsed.String()),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Debug("request completed",
		slog.String("method", req.Method),
		slog.String("url", req.URL.Redacted()),
		slog.Int("status", resp.StatusCode),
		slog.String("elapsed", elapsed.String()),
	)
	return resp, nil
}
