package sanity

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
)

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the default request timeout. Ignored when a custom HTTP
// client is supplied with [WithHTTPClient].
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client. Timeouts, proxies, and
// connection pooling all belong to the supplied client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBaseURL replaces the endpoint root derived from the Config. Intended
// for tests and proxies; the dataset path segments are still appended.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithLogger sets the logger used for per-request debug lines. The default
// is a null logger.
func WithLogger(logger hclog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithFilesystem replaces the filesystem asset uploads read from. The
// default is the OS filesystem; tests can supply afero.NewMemMapFs().
func WithFilesystem(fs afero.Fs) Option {
	return func(c *Client) {
		c.fs = fs
	}
}

// WithGetURLLimit sets the URL length above which [Client.Fetch] switches
// from GET to the POST query form.
func WithGetURLLimit(n int) Option {
	return func(c *Client) {
		c.getURLLimit = n
	}
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}
