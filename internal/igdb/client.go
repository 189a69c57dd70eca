// TBP-Viz - Game Ranking Analytics and Visualization
// Copyright 2026 Wojciech Graj (wojciech-graj)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wojciech-graj/tbp-viz

package igdb

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/wojciech-graj/tbp-viz/internal/config"
	"github.com/wojciech-graj/tbp-viz/internal/logging"
	"github.com/wojciech-graj/tbp-viz/internal/metrics"
)

// maxErrorBodySize limits how much of a failed response body is read
// for error reporting, preventing unbounded allocation on large error
// pages.
const maxErrorBodySize = 64 * 1024 // 64KB

// readBodyForError reads a response body for error reporting (max 64KB).
// Returns the body content or a placeholder if reading fails.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}

// Client talks to the IGDB API.
//
// The token is acquired lazily on the first query and cached for the
// process lifetime; it is the only mutable state, guarded by mu. All
// other fields are set at construction, so the client is safe for
// concurrent use.
type Client struct {
	apiURL       string
	tokenURL     string
	clientID     string
	clientSecret string

	client        *http.Client
	limiter       *rate.Limiter
	retryCooldown time.Duration

	mu    sync.Mutex
	token string
}

// NewClient creates an IGDB client from the provided configuration.
// Zero config values fall back to the documented defaults (30s
// timeout, 4 requests/s, 60s retry cooldown).
func NewClient(cfg *config.IGDBConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	rps := cfg.RateLimit
	if rps <= 0 {
		rps = 4
	}
	cooldown := cfg.RetryCooldown
	if cooldown <= 0 {
		cooldown = 60 * time.Second
	}

	return &Client{
		apiURL:        strings.TrimSuffix(cfg.APIURL, "/"),
		tokenURL:      cfg.TokenURL,
		clientID:      cfg.ClientID,
		clientSecret:  cfg.ClientSecret,
		client:        &http.Client{Timeout: timeout},
		limiter:       rate.NewLimiter(rate.Limit(rps), 1),
		retryCooldown: cooldown,
	}
}

// requestSpec describes a request so that an identical one can be
// rebuilt for the rate-limit replay. http.Request bodies are one-shot;
// keeping the bytes here is what makes the replay byte-identical.
type requestSpec struct {
	method string
	url    string
	header http.Header
	body   []byte
}

func (s *requestSpec) build(ctx context.Context) (*http.Request, error) {
	var body io.Reader = http.NoBody
	if len(s.body) > 0 {
		body = bytes.NewReader(s.body)
	}
	req, err := http.NewRequestWithContext(ctx, s.method, s.url, body)
	if err != nil {
		return nil, err
	}
	for key, values := range s.header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	return req, nil
}

// sendOnce paces the request through the rate limiter and executes it.
func (c *Client) sendOnce(ctx context.Context, spec *requestSpec) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	req, err := spec.build(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	return resp, nil
}

// send executes the request, replaying it exactly once after the
// cooldown if IGDB answers 429. The second response is returned as-is;
// the caller rejects any remaining non-2xx status.
func (c *Client) send(ctx context.Context, spec *requestSpec) (*http.Response, error) {
	resp, err := c.sendOnce(ctx, spec)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusTooManyRequests {
		return resp, nil
	}
	_ = resp.Body.Close()

	logging.Warn().
		Str("url", spec.url).
		Dur("cooldown", c.retryCooldown).
		Msg("Reached IGDB API rate limit, sleeping")
	metrics.RecordIGDBRetry()

	select {
	case <-time.After(c.retryCooldown):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return c.sendOnce(ctx, spec)
}

// callJSON sends the request and decodes a 2xx JSON response into v.
// Non-2xx responses become errors carrying a body excerpt.
func (c *Client) callJSON(ctx context.Context, endpoint string, spec *requestSpec, v interface{}) error {
	resp, err := c.send(ctx, spec)
	if err != nil {
		return fmt.Errorf("failed to make %s request: %w", endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	metrics.RecordIGDBRequest(endpoint, resp.StatusCode)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body := readBodyForError(resp.Body)
		return fmt.Errorf("%s request failed with status %d: %s", endpoint, resp.StatusCode, body)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s response: %w", endpoint, err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}
	return nil
}

// tokenResponse is the Twitch OAuth token payload.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// ensureToken returns the cached app access token, acquiring one on
// first use. Twitch app tokens live for around 60 days, far longer
// than any run, so there is no expiry handling.
func (c *Client) ensureToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" {
		return c.token, nil
	}

	if c.clientID == "" || c.clientSecret == "" {
		return "", errors.New("IGDB credentials missing: set CLIENT_ID and CLIENT_SECRET")
	}

	logging.Info().Msg("Logging in to IGDB API")

	query := url.Values{}
	query.Set("client_id", c.clientID)
	query.Set("client_secret", c.clientSecret)
	query.Set("grant_type", "client_credentials")

	spec := &requestSpec{
		method: http.MethodPost,
		url:    c.tokenURL + "?" + query.Encode(),
		header: http.Header{"Accept": []string{"application/json"}},
	}

	var token tokenResponse
	if err := c.callJSON(ctx, "token", spec, &token); err != nil {
		return "", fmt.Errorf("IGDB login failed: %w", err)
	}
	if token.AccessToken == "" {
		return "", errors.New("IGDB login returned no access token")
	}

	c.token = token.AccessToken
	logging.Info().Msg("Logged in to IGDB API")
	return c.token, nil
}
