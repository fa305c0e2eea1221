// Package transport implements the HTTP client used by every remote call:
// per-attempt timeouts, bounded retries with exponential backoff, and
// structured error parsing.
package transport

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"go.trai.ch/pantry/internal/core/domain"
	"go.trai.ch/pantry/internal/core/ports"
	"go.trai.ch/zerr"
)

// Client performs one logical HTTP request with bounded latency and a
// bounded number of attempts. Only transport-level failures (timeout,
// connection failure) are retried; any HTTP response, whatever its status,
// short-circuits the retry loop and is returned to the caller.
type Client struct {
	httpClient *http.Client
	tokens     ports.TokenSource
	logger     ports.Logger

	timeout    time.Duration
	retries    int
	retryDelay time.Duration
	debug      bool
}

// RequestOptions tunes a single logical request. Zero values fall back to
// the client's configured defaults.
type RequestOptions struct {
	Method     string
	Header     http.Header
	Body       []byte
	Timeout    time.Duration
	Retries    int
	RetryDelay time.Duration
}

// New creates a transport client from the session config. tokens may be
// nil, in which case requests go out unauthenticated.
func New(cfg *domain.Config, tokens ports.TokenSource, logger ports.Logger) *Client {
	c := &Client{
		// Per-attempt deadlines come from the request context, not the
		// http.Client, so a slow attempt can be aborted and retried.
		httpClient: &http.Client{},
		tokens:     tokens,
		logger:     logger,
		timeout:    cfg.Timeout,
		retries:    cfg.Retries,
		retryDelay: cfg.RetryDelay,
		debug:      cfg.Debug,
	}
	if c.timeout <= 0 {
		c.timeout = domain.DefaultTimeout
	}
	if c.retries <= 0 {
		c.retries = domain.DefaultRetries
	}
	if c.retryDelay <= 0 {
		c.retryDelay = domain.DefaultRetryDelay
	}
	return c
}

// Request performs the request against url, retrying transport failures up
// to the configured attempt budget. The delay before retry attempt k is
// retryDelay × 2^(k-1). The caller owns the returned response body.
func (c *Client) Request(ctx context.Context, url string, opts RequestOptions) (*http.Response, error) {
	retries := opts.Retries
	if retries <= 0 {
		retries = c.retries
	}
	delay := opts.RetryDelay
	if delay <= 0 {
		delay = c.retryDelay
	}

	var lastErr error
	for attempt := 0; attempt < retries; attempt++ {
		if attempt > 0 {
			wait := delay << (attempt - 1)
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return nil, zerr.Wrap(ctx.Err(), "request canceled during backoff")
			}
		}

		resp, err := c.attempt(ctx, url, opts, attempt)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		c.debugf("request attempt failed", "url", url, "attempt", attempt+1, "error", err.Error())

		// A canceled parent context is the caller's decision, not a
		// transient failure.
		if ctx.Err() != nil {
			return nil, lastErr
		}
	}

	return nil, zerr.With(zerr.With(zerr.Wrap(lastErr, "all request attempts exhausted"), "url", url), "attempts", retries)
}

func (c *Client) attempt(ctx context.Context, url string, opts RequestOptions, attempt int) (*http.Response, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = c.timeout
	}
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)

	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if len(opts.Body) > 0 {
		body = bytes.NewReader(opts.Body)
	}

	req, err := http.NewRequestWithContext(attemptCtx, method, url, body)
	if err != nil {
		cancel()
		return nil, zerr.Wrap(err, "failed to build request")
	}
	for k, vs := range opts.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if len(opts.Body) > 0 && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
	if err := c.attachToken(attemptCtx, req); err != nil {
		cancel()
		return nil, err
	}

	c.debugf("request", "method", method, "url", url, "attempt", attempt+1)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		deadlineHit := attemptCtx.Err() == context.DeadlineExceeded && ctx.Err() == nil
		cancel()
		if deadlineHit {
			return nil, zerr.With(zerr.With(errors.Join(domain.ErrTimeout, err), "url", url), "attempt", attempt+1)
		}
		return nil, zerr.With(zerr.With(errors.Join(domain.ErrNetwork, err), "url", url), "attempt", attempt+1)
	}

	c.debugf("response", "url", url, "status", resp.StatusCode)

	// The attempt context must outlive the response until the caller has
	// drained the body.
	resp.Body = &cancelOnClose{ReadCloser: resp.Body, cancel: cancel}
	return resp, nil
}

func (c *Client) attachToken(ctx context.Context, req *http.Request) error {
	if c.tokens == nil {
		return nil
	}
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return zerr.Wrap(err, "failed to obtain bearer token")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return nil
}

func (c *Client) debugf(msg string, args ...any) {
	if !c.debug || c.logger == nil {
		return
	}
	c.logger.Debug(msg, args...)
}

// IsRetryable classifies err for callers layering their own
// retry-with-feedback logic above this client: transport-class failures
// and server-class problem details are worth retrying, everything else is
// not.
func IsRetryable(err error) bool {
	if errors.Is(err, domain.ErrTimeout) || errors.Is(err, domain.ErrNetwork) {
		return true
	}
	var pd *domain.ProblemDetails
	if errors.As(err, &pd) {
		return pd.Status >= 500
	}
	return false
}

type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelOnClose) Close() error {
	err := c.ReadCloser.Close()
	c.cancel()
	return err
}
