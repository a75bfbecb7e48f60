package sanity

import (
	"context"
	crand "crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"atrium_site/internal/adapters/observability"
)

// Client talks to the Sanity content query API:
// GET https://<project>.api.sanity.io/v<version>/data/query/<dataset>?query=<groq>
// Named parameters are passed as $-prefixed, JSON-encoded query values.
type Client struct {
	base  string
	token string
	hc    *http.Client
	rl    *rate.Limiter
}

var (
	ErrNotFound     = errors.New("sanity: not found")
	ErrUnauthorized = errors.New("sanity: unauthorized")
	ErrForbidden    = errors.New("sanity: forbidden")
)

func New(projectID, dataset, apiVersion, token string, rps int) (*Client, error) {
	if projectID == "" || dataset == "" {
		return nil, fmt.Errorf("project id and dataset are required")
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base:  fmt.Sprintf("https://%s.api.sanity.io/v%s/data/query/%s", projectID, apiVersion, dataset),
		token: token,
		hc:    &http.Client{Timeout: 20 * time.Second},
		rl:    rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

// NewWithBase is used by tests to point the client at an httptest server.
func NewWithBase(base, token string, rps int) *Client {
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base:  base,
		token: token,
		hc:    &http.Client{Timeout: 20 * time.Second},
		rl:    rate.NewLimiter(rate.Limit(rps), rps),
	}
}

// Query runs a GROQ query and decodes the {"result": ...} envelope into out.
func (c *Client) Query(ctx context.Context, query string, params map[string]any, out any) error {
	q := url.Values{}
	q.Set("query", query)
	for k, v := range params {
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode param %s: %w", k, err)
		}
		q.Set("$"+k, string(b))
	}

	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	if err := c.get(ctx, c.base+"?"+q.Encode(), &envelope); err != nil {
		return err
	}
	// A query that matches nothing yields "null"; leave out untouched so the
	// caller sees its zero value.
	if len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		return nil
	}
	return json.Unmarshal(envelope.Result, out)
}

// get performs a GET with client-side rate limiting, retries, and JSON decode
// into out. Retries on 429 and transient 5xx, honoring Retry-After.
func (c *Client) get(ctx context.Context, u string, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	start := time.Now()
	status := 0
	defer func() { observability.ObserveExternal("sanity", "query", status, time.Since(start)) }()

	var lastErr error
	for i := 0; i < 4; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return err
		}
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", "atrium-site/1.0")

		resp, err := c.hc.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
			if i < 3 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr
		}

		status = resp.StatusCode
		switch resp.StatusCode {
		case http.StatusOK:
			err := json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			return err

		case http.StatusNotFound:
			resp.Body.Close()
			return ErrNotFound

		case http.StatusUnauthorized:
			resp.Body.Close()
			return ErrUnauthorized

		case http.StatusForbidden:
			resp.Body.Close()
			return ErrForbidden

		case http.StatusTooManyRequests, http.StatusInternalServerError,
			http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			wait := retryAfter(resp)
			resp.Body.Close()
			if wait == 0 {
				wait = backoff(i)
			}
			lastErr = fmt.Errorf("sanity: remote %d", resp.StatusCode)
			if i < 3 && sleepCtx(ctx, wait) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr

		default:
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
			return fmt.Errorf("sanity: bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
		}
	}

	return lastErr
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses Retry-After (seconds or HTTP-date). Returns 0 if absent.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// backoff returns an exponential delay (200ms, 400ms, 800ms...) with up to
// +50% jitter to avoid thundering herds.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	j := time.Duration(0.5 * f * float64(base))
	return base + j
}
