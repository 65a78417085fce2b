// Package feed reads the directory catalog from its remote JSON endpoint.
package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"tooldeck/internal/domain"
)

// Feed field names as published by the catalog sheet
const (
	FieldName        = "Tool Name"
	FieldCategory    = "Category"
	FieldDescription = "Description"
	FieldLink        = "Link"
)

// FailureMessage is what the visitor sees when the catalog cannot be loaded
const FailureMessage = "Failed to load AI tools. Please try again later."

// ErrFetchFailure matches every error returned by Client.Fetch
var ErrFetchFailure = errors.New("fetch failure")

// Reasons a fetch can fail
var (
	ErrBadStatus  = errors.New("unexpected HTTP status")
	ErrNotAnArray = errors.New("payload is not a JSON array")
	ErrEmptyFeed  = errors.New("no tools data received")
)

// FetchError describes a failed catalog fetch
type FetchError struct {
	URL    string
	Status int // HTTP status, 0 when no response arrived
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: %v (status %d)", e.URL, e.Err, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Is makes every FetchError match ErrFetchFailure
func (e *FetchError) Is(target error) bool { return target == ErrFetchFailure }

// UserMessage returns the message shown in the error panel
func (e *FetchError) UserMessage() string { return FailureMessage }

// Client fetches the catalog over HTTP
type Client struct {
	url    string
	http   *http.Client
	logger *zap.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) { c.logger = logger.Named("feed") }
}

// NewClient creates a client for the given endpoint
func NewClient(url string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		url:    url,
		http:   &http.Client{Timeout: timeout},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch issues the GET and decodes the catalog in feed order.
// Any failure is a *FetchError.
func (c *Client) Fetch(ctx context.Context) ([]domain.Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, c.fail(0, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.fail(0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, c.fail(resp.StatusCode, ErrBadStatus)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.fail(resp.StatusCode, err)
	}

	entries, err := Decode(body)
	if err != nil {
		return nil, c.fail(resp.StatusCode, err)
	}

	c.logger.Debug("catalog fetched",
		zap.Int("entries", len(entries)),
		zap.Duration("elapsed", time.Since(start)))
	return entries, nil
}

func (c *Client) fail(status int, err error) error {
	fe := &FetchError{URL: c.url, Status: status, Err: err}
	c.logger.Warn("catalog fetch failed", zap.Error(fe))
	return fe
}

// Decode parses a feed payload. The payload must be a non-empty JSON array;
// individual rows are read leniently.
func Decode(body []byte) ([]domain.Entry, error) {
	var rows []json.RawMessage
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAnArray, err)
	}
	if rows == nil {
		// A literal null decodes without error
		return nil, ErrNotAnArray
	}
	if len(rows) == 0 {
		return nil, ErrEmptyFeed
	}

	entries := make([]domain.Entry, 0, len(rows))
	for _, raw := range rows {
		entries = append(entries, decodeRow(raw))
	}
	return entries, nil
}

// decodeRow never fails: rows that are not objects become an entry with
// every field absent
func decodeRow(raw json.RawMessage) domain.Entry {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return domain.Entry{}
	}
	return domain.Entry{
		Name:        stringField(fields, FieldName),
		Category:    stringField(fields, FieldCategory),
		Description: stringField(fields, FieldDescription),
		Link:        stringField(fields, FieldLink),
	}
}

func stringField(fields map[string]any, key string) string {
	switch v := fields[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}
