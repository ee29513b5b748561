package slides

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/five82/carousel/internal/carousel"
)

// Client talks to the slide feed HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

var _ Loader = (*Client)(nil)

const (
	defaultFeedBind  = "127.0.0.1:7490"
	defaultUserAgent = "carousel/0.1"
	requestTimeout   = 5 * time.Second
	slidesPath       = "/api/slides"
)

// NewClient builds a Client for a host:port or URL.
func NewClient(feed string) (*Client, error) {
	base, err := parseBaseURL(feed)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL:   base,
		http:      &http.Client{Timeout: requestTimeout},
		userAgent: defaultUserAgent,
	}, nil
}

// Load implements Loader.
func (c *Client) Load(ctx context.Context) ([]carousel.SlideSource, error) {
	return c.FetchSlides(ctx)
}

// FetchSlides retrieves the current slide list.
func (c *Client) FetchSlides(ctx context.Context) ([]carousel.SlideSource, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	reqURL := c.baseURL.ResolveReference(&url.URL{Path: slidesPath})
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("api %s returned status %d", slidesPath, resp.StatusCode)
	}
	var payload Document
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return payload.Slides, nil
}

func parseBaseURL(feed string) (*url.URL, error) {
	trimmed := strings.TrimSpace(feed)
	if trimmed == "" {
		trimmed = defaultFeedBind
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse feed url %q: %w", feed, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
