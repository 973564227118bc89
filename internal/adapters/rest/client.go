// Package rest is the remote data gateway: it translates domain
// operations into backend REST calls and back. Each call is a single
// best-effort attempt with no caching and no retry; retry policy, where it
// exists at all, belongs to the caller.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/config"
	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/metrics"
	"github.com/sony/gobreaker"
)

type Client struct {
	baseURL   string
	http      *http.Client
	logger    zerolog.Logger
	aiBreaker *gobreaker.CircuitBreaker
}

func NewClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      &http.Client{Timeout: timeout},
		logger:    logger.With().Str("component", "rest_client").Logger(),
		aiBreaker: config.NewCircuitBreaker("AI-Assistant"),
	}
}

// do issues one request and decodes the JSON response into out (skipped
// when out is nil). It returns a *Error classifying the failure as
// network, server or decode.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	op := method + " " + path
	start := time.Now()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindDecode, Op: op, Err: err}
		}
		reader = bytes.NewReader(encoded)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return &Error{Kind: KindNetwork, Op: op, Err: err}
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.observe(path, "network", start)
		return &Error{Kind: KindNetwork, Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		io.Copy(io.Discard, resp.Body)
		c.observe(path, "server", start)
		return &Error{Kind: KindServer, Status: resp.StatusCode, Op: op}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			c.observe(path, "decode", start)
			return &Error{Kind: KindDecode, Op: op, Err: err}
		}
	}

	c.observe(path, "ok", start)
	return nil
}

func (c *Client) observe(path, outcome string, start time.Time) {
	metrics.GatewayRequestDuration.
		WithLabelValues(resourceOf(path), outcome).
		Observe(time.Since(start).Seconds())
}

// resourceOf maps a request path to its resource label, e.g.
// "/patients/7/summary" -> "patients".
func resourceOf(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(trimmed, '/'); i >= 0 {
		return trimmed[:i]
	}
	return trimmed
}
