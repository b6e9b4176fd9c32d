package httpx

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// StatusError reports a non-2xx upstream response.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string { return fmt.Sprintf("status %d", e.Code) }

type Client struct {
	HTTP    *http.Client
	Headers map[string]string
	Log     *zap.Logger

	// MaxElapsed bounds the whole retry loop; zero uses 3s.
	MaxElapsed time.Duration
}

func New(timeout time.Duration, log *zap.Logger) *Client {
	return &Client{HTTP: &http.Client{Timeout: timeout}, Log: log}
}

// DoJSON executes req and decodes a 2xx JSON body into out. Transport errors
// and 5xx responses are retried with exponential backoff; 4xx and decode
// errors are returned immediately.
func (c *Client) DoJSON(ctx context.Context, req *http.Request, out any) error {
	for k, v := range c.Headers {
		if req.Header.Get(k) == "" {
			req.Header.Set(k, v)
		}
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	log := c.Log
	if log == nil {
		log = zap.NewNop()
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = 200 * time.Millisecond
	exp.MaxInterval = 1 * time.Second
	exp.MaxElapsedTime = 3 * time.Second
	if c.MaxElapsed > 0 {
		exp.MaxElapsedTime = c.MaxElapsed
	}

	attempt := 0
	op := func() error {
		attempt++
		resp, err := client.Do(req.Clone(ctx))
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			log.Warn("http.retryable_error", zap.Int("attempt", attempt), zap.Error(err))
			return err
		}
		defer func() {
			_, _ = io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
		}()
		if resp.StatusCode >= 500 {
			log.Warn("http.server_error", zap.Int("attempt", attempt), zap.Int("status", resp.StatusCode))
			return &StatusError{Code: resp.StatusCode}
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return backoff.Permanent(&StatusError{Code: resp.StatusCode})
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return backoff.Permanent(fmt.Errorf("decode: %w", err))
		}
		return nil
	}
	return backoff.Retry(op, backoff.WithContext(exp, ctx))
}
