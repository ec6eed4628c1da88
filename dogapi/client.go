package dogapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/apex/log"
	"github.com/hashicorp/go-cleanhttp"

	"github.com/goliatone/go-breed-cache/breed"
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 1 << 20

// Interface assertion to ensure Client implements breed.Fetcher
var _ breed.Fetcher = (*Client)(nil)

// HTTPDoer is the subset of *http.Client the fetcher needs.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches sub-breed lists from the dog.ceo API.
// Every failure, including transport and parse errors, is reported as a
// *breed.NotFoundError.
type Client struct {
	cfg    Config
	http   HTTPDoer
	logger log.Interface
}

// Option configures a Client.
type Option func(*Client)

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(c *Client) {
		c.cfg = cfg
	}
}

// WithBaseURL points the client at a different API host.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.cfg.BaseURL = baseURL
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.cfg.UserAgent = ua
	}
}

// WithHTTPClient injects the HTTP client used for requests.
func WithHTTPClient(doer HTTPDoer) Option {
	return func(c *Client) {
		c.http = doer
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger log.Interface) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Client with DefaultConfig adjusted by opts.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		cfg:    DefaultConfig(),
		logger: log.Log,
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("dogapi: invalid config: %w", err)
	}
	c.cfg.BaseURL = strings.TrimRight(c.cfg.BaseURL, "/")

	if c.http == nil {
		hc := cleanhttp.DefaultPooledClient()
		hc.Timeout = c.cfg.Timeout
		c.http = hc
	}

	return c, nil
}

// Config returns the configuration in use.
func (c *Client) Config() Config {
	return c.cfg
}

// GetSubBreeds fetches the sub-breeds of b from /api/breed/<b>/list.
func (c *Client) GetSubBreeds(ctx context.Context, b string) ([]string, error) {
	segment := PathSegment(b)
	if segment == "" {
		return nil, breed.NotFound(b, "breed cannot be empty", nil)
	}

	endpoint := c.Endpoint(segment)
	logger := c.logger.WithFields(log.Fields{"breed": b, "url": endpoint})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, breed.NotFound(b, "building request", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	logger.Debug("requesting sub-breeds")
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, breed.NotFound(b, "request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, breed.NotFound(b, "reading response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.WithField("status", resp.StatusCode).Debug("unexpected status")
		return nil, breed.NotFound(b, fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
	}

	subs, err := parseSubBreeds(body)
	if err != nil {
		return nil, breed.NotFound(b, "parsing response", err)
	}

	logger.WithField("count", len(subs)).Debug("fetched sub-breeds")
	return subs, nil
}

// Endpoint returns the list URL for an already normalized path segment.
func (c *Client) Endpoint(segment string) string {
	return c.cfg.BaseURL + "/api/breed/" + url.PathEscape(segment) + "/list"
}

// PathSegment normalizes b for use in the request path: trimmed,
// lower-cased, with spaces replaced by hyphens.
func PathSegment(b string) string {
	return strings.ReplaceAll(breed.NormalizeKey(b), " ", "-")
}
