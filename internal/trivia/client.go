package trivia

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Fetcher defines the reads the game needs from the trivia service.
// This interface is implemented by *Client and can be used for testing.
type Fetcher interface {
	FetchCategoryPool(ctx context.Context, poolSize int) ([]CategoryID, error)
	FetchCategory(ctx context.Context, id CategoryID) (Category, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client talks to the trivia service HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	DefaultBaseURL   = "https://rithm-jeopardy.herokuapp.com/api/"
	defaultUserAgent = "clueboard/0.1"
	defaultTimeout   = 10 * time.Second
	maxResponseBytes = 4 << 20
)

// Option adjusts a Client at construction time.
type Option func(*Client)

// WithTimeout bounds every request issued by the client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua = strings.TrimSpace(ua); ua != "" {
			c.userAgent = ua
		}
	}
}

// NewClient builds a Client rooted at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: defaultTimeout,
		},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the normalized service root.
func (c *Client) BaseURL() string {
	if c == nil || c.baseURL == nil {
		return ""
	}
	return c.baseURL.String()
}

// FetchCategoryPool requests up to poolSize category identifiers.
func (c *Client) FetchCategoryPool(ctx context.Context, poolSize int) ([]CategoryID, error) {
	const op = "fetch category pool"
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if poolSize <= 0 {
		return nil, fmt.Errorf("%s: pool size must be positive, got %d", op, poolSize)
	}
	values := url.Values{}
	values.Set("count", strconv.Itoa(poolSize))
	rel := &url.URL{Path: "categories", RawQuery: values.Encode()}

	body, reqURL, err := c.get(ctx, op, rel)
	if err != nil {
		return nil, err
	}

	var entries []categoryRef
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, &NetworkError{Op: op, URL: reqURL, Err: fmt.Errorf("decode response: %w", err)}
	}
	ids := make([]CategoryID, 0, len(entries))
	for i, entry := range entries {
		if entry.ID == nil || *entry.ID == "" {
			return nil, &NetworkError{Op: op, URL: reqURL, Err: fmt.Errorf("decode response: entry %d has no id", i)}
		}
		ids = append(ids, *entry.ID)
	}
	return ids, nil
}

// FetchCategory requests the title and full clue list for one category.
func (c *Client) FetchCategory(ctx context.Context, id CategoryID) (Category, error) {
	const op = "fetch category"
	if c == nil {
		return Category{}, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(string(id)) == "" {
		return Category{}, fmt.Errorf("%s: category id required", op)
	}
	values := url.Values{}
	values.Set("id", string(id))
	rel := &url.URL{Path: "category", RawQuery: values.Encode()}

	body, _, err := c.get(ctx, op, rel)
	if err != nil {
		return Category{}, err
	}
	return decodeCategory(id, body)
}

func (c *Client) get(ctx context.Context, op string, rel *url.URL) ([]byte, string, error) {
	reqURL := c.baseURL.ResolveReference(rel).String()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, reqURL, fmt.Errorf("%s: create request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, reqURL, &NetworkError{Op: op, URL: reqURL, Err: fmt.Errorf("execute request: %w", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, reqURL, &NetworkError{Op: op, URL: reqURL, StatusCode: resp.StatusCode}
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, reqURL, &NetworkError{Op: op, URL: reqURL, Err: fmt.Errorf("read response: %w", err)}
	}
	return body, reqURL, nil
}

func decodeCategory(id CategoryID, body []byte) (Category, error) {
	var payload categoryPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		if !json.Valid(body) {
			return Category{}, &DataShapeError{CategoryID: id, Reason: "response is not valid JSON", Err: err}
		}
		return Category{}, &DataShapeError{CategoryID: id, Reason: "unexpected field types", Err: err}
	}
	if payload.Title == nil {
		return Category{}, &DataShapeError{CategoryID: id, Reason: "missing title"}
	}
	if payload.Clues == nil {
		return Category{}, &DataShapeError{CategoryID: id, Reason: "missing clues"}
	}

	cat := Category{
		ID:    id,
		Title: normalizeText(*payload.Title),
		Clues: make([]Clue, 0, len(*payload.Clues)),
	}
	for _, raw := range *payload.Clues {
		clue := Clue{
			Question: normalizeText(string(raw.Question)),
			Answer:   normalizeText(string(raw.Answer)),
		}
		// A clue without both halves cannot be played; dropping it lets the
		// sampler report a short category instead of revealing a blank cell.
		if clue.Question == "" || clue.Answer == "" {
			continue
		}
		cat.Clues = append(cat.Clues, clue)
	}
	return cat, nil
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
		return nil, fmt.Errorf("parse api base %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api base %q: missing host", raw)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
