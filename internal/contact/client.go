// Package contact submits the contact form.
package contact

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"tooldeck/internal/domain"
)

// Visitor-facing messages
const (
	SuccessMessage = "Your message has been sent successfully! We'll get back to you within 24 hours."
	ThankYouTitle  = "Thank you!"
	fallbackReason = "Form submission failed. Please try again."
)

// ErrSubmitFailure matches every error returned by Client.Submit
var ErrSubmitFailure = errors.New("submit failure")

// ErrNoAction is returned when no form endpoint is configured
var ErrNoAction = errors.New("no contact form action configured")

// SubmitError describes a rejected or failed submission
type SubmitError struct {
	Status int    // HTTP status, 0 when no response arrived
	Reason string // server-provided reason, or a generic one
	Err    error
}

func (e *SubmitError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("submit contact form: %s (status %d)", e.Reason, e.Status)
	}
	return fmt.Sprintf("submit contact form: %s", e.Reason)
}

func (e *SubmitError) Unwrap() error { return e.Err }

// Is makes every SubmitError match ErrSubmitFailure
func (e *SubmitError) Is(target error) bool { return target == ErrSubmitFailure }

// UserMessage returns the error notice shown under the form
func (e *SubmitError) UserMessage() string {
	return fmt.Sprintf("Error: %s. Please try again later.", strings.TrimRight(e.Reason, "."))
}

// Client posts the form to its action URL
type Client struct {
	action string
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
	return func(c *Client) { c.logger = logger.Named("contact") }
}

// NewClient creates a client for the form action URL
func NewClient(action string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		action: action,
		http:   &http.Client{Timeout: timeout},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Encode returns the form-encoded body for a submission
func Encode(sub domain.ContactSubmission) url.Values {
	v := url.Values{}
	v.Set("name", sub.Name)
	v.Set("email", sub.Email)
	v.Set("message", sub.Message)
	return v
}

// Submit posts the submission. Any failure is a *SubmitError.
func (c *Client) Submit(ctx context.Context, sub domain.ContactSubmission) error {
	if c.action == "" {
		return c.fail(&SubmitError{Reason: fallbackReason, Err: ErrNoAction})
	}

	body := Encode(sub).Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.action, strings.NewReader(body))
	if err != nil {
		return c.fail(&SubmitError{Reason: fallbackReason, Err: err})
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return c.fail(&SubmitError{Reason: fallbackReason, Err: err})
	}
	defer resp.Body.Close()

	payload, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		c.logger.Info("contact form submitted", zap.Int("status", resp.StatusCode))
		return nil
	}

	return c.fail(&SubmitError{
		Status: resp.StatusCode,
		Reason: reason(payload),
		Err:    fmt.Errorf("unexpected HTTP status %d", resp.StatusCode),
	})
}

func (c *Client) fail(err *SubmitError) error {
	c.logger.Warn("contact form failed", zap.Error(err))
	return err
}

// serverError covers the two shapes form backends answer with
type serverError struct {
	Error  string `json:"error"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// reason extracts the server's explanation, if it sent one
func reason(payload []byte) string {
	var se serverError
	if err := json.Unmarshal(payload, &se); err != nil {
		return fallbackReason
	}
	if se.Error != "" {
		return se.Error
	}
	for _, e := range se.Errors {
		if e.Message != "" {
			return e.Message
		}
	}
	return fallbackReason
}
