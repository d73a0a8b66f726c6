package poeditor

import (
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the production POEditor API endpoint.
const DefaultBaseURL = "https://api.poeditor.com/v2"

// MinUploadInterval is the smallest interval the service accepts between two
// file uploads on the same account. The client does not enforce it unless
// WithUploadInterval is set; callers issuing uploads in a loop must throttle
// themselves.
const MinUploadInterval = 30 * time.Second

// Client is a client for the POEditor translation management API.
//
// A Client holds only the immutable API token and its HTTP transport, so a
// single instance is safe for concurrent use. Every method performs one
// synchronous request/response round trip (Export performs two: the API call
// plus the signed-URL download) and returns only after it completes or fails.
type Client struct {
	apiToken string
	baseURL  string
	http     *resty.Client
	logger   *slog.Logger

	// uploadLimiter, when non-nil, paces Upload calls. Nil by default.
	uploadLimiter *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Useful for tests and proxies.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient replaces the underlying resty client. The caller owns its
// configuration (timeouts, proxy, TLS); the Client sets nothing on it.
func WithHTTPClient(httpClient *resty.Client) Option {
	return func(c *Client) {
		c.http = httpClient
	}
}

// WithTimeout sets the per-request timeout on the default transport.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.http.SetTimeout(timeout)
	}
}

// WithLogger enables debug logging of every request and response outcome.
// Without it the client logs nothing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithUploadInterval enables opt-in client-side pacing of Upload calls, one
// upload per interval. The service rejects more than one upload every 30
// seconds per account; pass MinUploadInterval to respect that. By default no
// pacing happens and the caller is responsible for throttling.
func WithUploadInterval(interval time.Duration) Option {
	return func(c *Client) {
		c.uploadLimiter = rate.NewLimiter(rate.Every(interval), 1)
	}
}

// New creates a POEditor API client. All requests carry the given api_token;
// you'll find yours under My Account > API Access on poeditor.com.
func New(apiToken string, opts ...Option) *Client {
	c := &Client{
		apiToken: apiToken,
		baseURL:  DefaultBaseURL,
		http:     resty.New().SetTimeout(30 * time.Second),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger != nil {
		c.http.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			c.logger.Debug("poeditor request",
				"method", resp.Request.Method,
				"url", resp.Request.URL,
				"status", resp.StatusCode(),
				"duration", resp.Time(),
			)
			return nil
		})
	}
	return c
}

// url builds a complete URL by appending the endpoint path to the base URL.
func (c *Client) url(path string) string {
	return c.baseURL + "/" + path
}
