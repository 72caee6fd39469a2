package jokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Fetcher retrieves one joke for a category.
// This interface is implemented by *Client and can be used for testing.
type Fetcher interface {
	FetchJoke(ctx context.Context, category Category) (Joke, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client talks to the JokeAPI HTTP service.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	blacklist string
}

const (
	DefaultBaseURL   = "https://v2.jokeapi.dev"
	defaultUserAgent = "jester/0.1"
)

// ClientOptions configure a Client. Zero values use defaults.
type ClientOptions struct {
	BaseURL   string
	Blacklist []string
	// Timeout bounds each request. Zero leaves it to the platform default.
	Timeout   time.Duration
	UserAgent string
}

// NewClient builds a Client for the given provider base URL.
func NewClient(opts ClientOptions) (*Client, error) {
	base, err := parseBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}
	blacklist := opts.Blacklist
	if blacklist == nil {
		blacklist = DefaultBlacklist
	}
	userAgent := strings.TrimSpace(opts.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: opts.Timeout,
		},
		userAgent: userAgent,
		blacklist: joinFlags(blacklist),
	}, nil
}

// FetchJoke retrieves a random joke from the given category.
func (c *Client) FetchJoke(ctx context.Context, category Category) (Joke, error) {
	if c == nil {
		return Joke{}, fmt.Errorf("client is nil")
	}
	if !category.Valid() {
		return Joke{}, fmt.Errorf("unknown category %q", category)
	}

	values := url.Values{}
	if c.blacklist != "" {
		values.Set("blacklistFlags", c.blacklist)
	}
	reqURL := c.baseURL.JoinPath("joke", category.String())
	reqURL.RawQuery = encodeQuery(values)

	var payload jokeResponse
	if err := c.get(ctx, reqURL, &payload); err != nil {
		return Joke{}, err
	}
	if payload.Error {
		return Joke{}, &ProviderError{
			Message: payload.Message,
			Code:    payload.Code,
			Causes:  payload.CausedBy,
		}
	}
	if err := payload.validate(); err != nil {
		return Joke{}, &ProviderError{Message: "malformed joke", Err: err}
	}
	return payload.Joke, nil
}

func (c *Client) get(ctx context.Context, reqURL *url.URL, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Path: reqURL.Path, Code: resp.StatusCode}
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return &ProviderError{Message: "decode response", Err: err}
	}
	return nil
}

// encodeQuery keeps the comma separators readable; url.Values would escape
// them to %2C, which the provider also accepts.
func encodeQuery(values url.Values) string {
	return strings.ReplaceAll(values.Encode(), "%2C", ",")
}

func joinFlags(flags []string) string {
	out := make([]string, 0, len(flags))
	for _, f := range flags {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" {
			out = append(out, f)
		}
	}
	return strings.Join(out, ",")
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
		return nil, fmt.Errorf("parse api url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api url %q: missing host", raw)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
