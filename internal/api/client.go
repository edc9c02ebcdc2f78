package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"pracd-client/internal/session"
)

// bearer marks a call that must carry the session token. Calls without a
// valid local session fail with ErrAuthRequired before touching the network.
type authMode bool

const (
	public authMode = false
	bearer authMode = true
)

// Client consumes the PracD backend REST surface. The token is re-read from
// the session store on every bearer call rather than cached, since the local
// expiry can lapse between requests.
type Client struct {
	baseURL    string
	httpClient *http.Client
	sessions   *session.Store
	limiter    *rate.Limiter
}

func New(baseURL string, sessions *session.Store) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		sessions:   sessions,
		// polite client-side throttle; the server still enforces its own
		limiter: rate.NewLimiter(rate.Limit(10), 20),
	}
}

// WithHTTPClient swaps the transport, mainly for tests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

func (c *Client) do(ctx context.Context, method, path string, auth authMode, body, result any, fallback string) error {
	var token string
	if auth == bearer {
		var ok bool
		token, ok = c.sessions.Current()
		if !ok {
			return ErrAuthRequired
		}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	reqURL, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return fmt.Errorf("build url: %w", err)
	}
	// JoinPath would escape a query string
	if strings.Contains(path, "?") {
		reqURL = strings.TrimRight(c.baseURL, "/") + path
	}

	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-Request-Id", uuid.New().String())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return parseError(resp.StatusCode, fallback, respBody)
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("parse response: %w", err)
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, auth authMode, result any, fallback string) error {
	return c.do(ctx, http.MethodGet, path, auth, nil, result, fallback)
}

func (c *Client) post(ctx context.Context, path string, auth authMode, body, result any, fallback string) error {
	return c.do(ctx, http.MethodPost, path, auth, body, result, fallback)
}

func (c *Client) put(ctx context.Context, path string, auth authMode, body, result any, fallback string) error {
	return c.do(ctx, http.MethodPut, path, auth, body, result, fallback)
}
