package artic

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/five82/easel/internal/selection"
)

// PageFetcher loads one page of artworks. *Client implements it.
type PageFetcher interface {
	FetchPage(ctx context.Context, page int) (Page, error)
}

// Ensure Client implements PageFetcher at compile time.
var _ PageFetcher = (*Client)(nil)

// Page is one validated page of records.
type Page struct {
	Number     int
	Records    []Artwork
	Pagination Pagination
}

// Meta returns the page's pagination in the selection core's convention.
func (p Page) Meta() selection.Meta { return p.Pagination.Meta() }

// Client talks to the Art Institute of Chicago artworks endpoint.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	breaker   *gobreaker.CircuitBreaker
	userAgent string
	pageSize  int
}

const (
	DefaultBaseURL   = "https://api.artic.edu/api/v1/artworks"
	defaultUserAgent = "easel/0.1"
	requestTimeout   = 10 * time.Second

	breakerTrips   = 5
	breakerTimeout = 30 * time.Second
)

// ClientOptions tunes NewClient. Zero values use defaults.
type ClientOptions struct {
	PageSize int
	Timeout  time.Duration
}

// NewClient builds a Client for the given endpoint URL.
func NewClient(rawURL string, opts ClientOptions) (*Client, error) {
	base, err := parseBaseURL(rawURL)
	if err != nil {
		return nil, err
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = requestTimeout
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: timeout,
		},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "artic",
			Timeout: breakerTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= breakerTrips
			},
		}),
		userAgent: defaultUserAgent,
		pageSize:  max(opts.PageSize, 0),
	}, nil
}

// FetchPage retrieves and validates page (1-based).
func (c *Client) FetchPage(ctx context.Context, page int) (Page, error) {
	if c == nil {
		return Page{}, fmt.Errorf("client is nil")
	}
	if page < 1 {
		return Page{}, fmt.Errorf("page %d out of range", page)
	}

	values := url.Values{}
	values.Set("page", strconv.Itoa(page))
	if c.pageSize > 0 {
		values.Set("limit", strconv.Itoa(c.pageSize))
	}
	values.Set("fields", strings.Join(Fields, ","))

	result, err := c.breaker.Execute(func() (any, error) {
		var payload ListResponse
		if err := c.get(ctx, values, &payload); err != nil {
			return nil, err
		}
		return payload, nil
	})
	if err != nil {
		return Page{}, err
	}

	payload := result.(ListResponse)
	if err := payload.Validate(); err != nil {
		return Page{}, fmt.Errorf("validate page %d: %w", page, err)
	}
	return Page{
		Number:     page,
		Records:    payload.Data,
		Pagination: payload.Pagination,
	}, nil
}

func (c *Client) get(ctx context.Context, values url.Values, dest any) error {
	reqURL := *c.baseURL
	reqURL.RawQuery = values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", reqURL.Path, resp.StatusCode)
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api_url %q: missing host", raw)
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
