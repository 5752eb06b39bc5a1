package sanity

import (
	"io"
	"net/http"
	"path"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
)

const (
	defaultTimeout = 30 * time.Second

	// defaultGetURLLimit tracks the service's documented ceiling for GET
	// request URLs. Queries whose assembled URL would exceed it are sent
	// with the POST form instead. Tune with [WithGetURLLimit].
	defaultGetURLLimit = 11 * 1024
)

// Client is the Sanity API client.
//
// A Client is read-only after construction and safe for concurrent use by
// multiple goroutines; calls share no mutable state. There is no teardown
// beyond releasing the Client itself.
type Client struct {
	cfg         Config
	baseURL     string
	httpClient  *http.Client
	timeout     time.Duration
	getURLLimit int
	logger      hclog.Logger
	fs          afero.Fs
	userAgent   string
}

// NewClient creates a client from a built [Config].
//
//	cfg, err := sanity.NewConfig("abc123", "production").Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client := sanity.NewClient(cfg)
func NewClient(cfg Config, opts ...Option) *Client {
	c := &Client{
		cfg:         cfg,
		baseURL:     cfg.BaseURL(),
		timeout:     defaultTimeout,
		getURLLimit: defaultGetURLLimit,
		logger:      hclog.NewNullLogger(),
		fs:          afero.NewOsFs(),
		userAgent:   "sanity-go/" + Version,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}

	return c
}

// Config returns the configuration the client was built with.
func (c *Client) Config() Config {
	return c.cfg
}

// endpoint assembles an API URL of the form
// {base}/{content}/{operation}/{dataset}, e.g.
// https://abc123.api.sanity.io/v2021-06-07/data/query/production.
func (c *Client) endpoint(parts ...string) string {
	return c.baseURL + "/" + path.Join(parts...) + "/" + c.cfg.Dataset
}

// setHeaders applies the default headers. The Authorization header is set
// only when the configuration carries an access token.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", c.userAgent)
	if c.cfg.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.AccessToken)
	}
}

// do sends the request and buffers the complete response.
//
// HTTP status codes are not interpreted here: every completed round-trip,
// 2xx or not, is returned as a normal [Response] for the caller to inspect.
// Only transport failures produce an error, and they are never retried.
func (c *Client) do(req *http.Request) (*Response, error) {
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError("sending "+req.Method+" "+req.URL.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError("reading response body", err)
	}

	c.logger.Debug("request complete",
		"method", req.Method,
		"url", req.URL.String(),
		"status", resp.StatusCode,
		"elapsed", time.Since(start),
	)

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}
