package discourses

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Version is the SDK release, reported in the User-Agent header.
const Version = "0.1.0"

const (
	defaultBaseURL = "https://discourses.io/api/v1"
	defaultTimeout = 30 * time.Second

	pathAnalyze     = "/analyze/era"
	pathCompareEras = "/analyze/compare-eras"
	pathBatch       = "/analyze/batch"

	// Responses larger than this are truncated on read.
	maxResponseBytes = 2 << 20
)

// Client talks to the Discourses sentiment-analysis API. Each operation
// performs exactly one blocking round trip; there is no retrying, pooling
// beyond the shared http.Client, or caching.
type Client struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	httpClient *http.Client
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the production API base URL. A trailing slash is
// stripped.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithTimeout overrides the per-request timeout (default 30s). A
// non-positive value disables the client-side deadline.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.timeout = timeout }
}

// WithHTTPClient sets the http.Client used for requests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// New returns a client for the given API key. The key must be non-empty;
// validation happens here, before any network activity.
func New(apiKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("%w: api key is required", ErrInvalidInput)
	}

	c := &Client{
		baseURL:   defaultBaseURL,
		apiKey:    apiKey,
		timeout:   defaultTimeout,
		userAgent: "discourses-go/" + Version,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.baseURL = strings.TrimRight(c.baseURL, "/")
	return c, nil
}

// BaseURL returns the normalized API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// BatchItem is a single independently identified text in a batch request.
type BatchItem struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Analyze runs sentiment analysis on a single text. A non-empty era is
// validated locally and attached to the request; the zero Era leaves the
// choice to the API default.
func (c *Client) Analyze(ctx context.Context, text string, era Era) (*AnalysisResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: text cannot be empty", ErrInvalidInput)
	}

	body := map[string]any{"text": text}
	if era != "" {
		parsed, err := ParseEra(string(era))
		if err != nil {
			return nil, err
		}
		body["era"] = parsed.String()
	}

	data, err := c.post(ctx, pathAnalyze, body)
	if err != nil {
		return nil, err
	}
	return newAnalysisResult(data), nil
}

// CompareEras analyzes the same text across multiple eras to measure
// semantic drift. With no eras given, the server compares all of them.
func (c *Client) CompareEras(ctx context.Context, text string, eras ...Era) (*CompareResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: text cannot be empty", ErrInvalidInput)
	}

	body := map[string]any{"text": text}
	if len(eras) > 0 {
		tokens := make([]string, 0, len(eras))
		for _, era := range eras {
			parsed, err := ParseEra(string(era))
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, parsed.String())
		}
		body["eras"] = tokens
	}

	data, err := c.post(ctx, pathCompareEras, body)
	if err != nil {
		return nil, err
	}
	return newCompareResult(data), nil
}

// Batch analyzes multiple texts in one request, keyed by the caller's item
// IDs. Every item needs both an ID and a text; the zero Era defaults to
// EraPresent.
func (c *Client) Batch(ctx context.Context, items []BatchItem, era Era) (*BatchResult, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: items list cannot be empty", ErrInvalidInput)
	}
	for i, item := range items {
		if strings.TrimSpace(item.ID) == "" {
			return nil, fmt.Errorf("%w: item %d is missing an id", ErrInvalidInput, i)
		}
		if strings.TrimSpace(item.Text) == "" {
			return nil, fmt.Errorf("%w: item %d is missing a text", ErrInvalidInput, i)
		}
	}

	if era == "" {
		era = EraPresent
	}
	parsed, err := ParseEra(string(era))
	if err != nil {
		return nil, err
	}

	body := map[string]any{"texts": items, "era": parsed.String()}

	data, err := c.post(ctx, pathBatch, body)
	if err != nil {
		return nil, err
	}
	return newBatchResult(data), nil
}

func (c *Client) post(ctx context.Context, path string, body any) (map[string]any, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	ctx, cancel := withTimeout(ctx, c.timeout)
	if cancel != nil {
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	client := c.httpClient
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &Error{Kind: ErrorKindAPI, Message: fmt.Sprintf("request timed out after %s", c.timeout)}
		}
		return nil, &Error{Kind: ErrorKindAPI, Message: fmt.Sprintf("request failed: %v", err)}
	}
	defer resp.Body.Close() // nolint:errcheck // best-effort cleanup

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &Error{Kind: ErrorKindAPI, Message: fmt.Sprintf("read response: %v", err)}
	}

	return interpret(resp, raw)
}

// interpret maps an HTTP response onto a decoded payload or a typed error.
func interpret(resp *http.Response, raw []byte) (map[string]any, error) {
	var data map[string]any
	decodeErr := json.Unmarshal(raw, &data)

	if resp.StatusCode == http.StatusOK {
		if decodeErr != nil || data == nil {
			return nil, &Error{
				Kind:       ErrorKindAPI,
				StatusCode: resp.StatusCode,
				Message:    "response body is not a JSON object",
			}
		}
		return data, nil
	}

	if decodeErr != nil || data == nil {
		data = map[string]any{"message": fallbackMessage(raw)}
	}
	message := errorMessage(data)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return nil, &Error{Kind: ErrorKindAuth, StatusCode: resp.StatusCode, Message: message, Response: data}
	case http.StatusTooManyRequests:
		return nil, &Error{
			Kind:       ErrorKindRateLimit,
			StatusCode: resp.StatusCode,
			Message:    message,
			Response:   data,
			RetryAfter: retryAfter(resp.Header),
		}
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return nil, &Error{Kind: ErrorKindValidation, StatusCode: resp.StatusCode, Message: message, Response: data}
	default:
		return nil, &Error{Kind: ErrorKindAPI, StatusCode: resp.StatusCode, Message: message, Response: data}
	}
}

func fallbackMessage(raw []byte) string {
	if text := strings.TrimSpace(string(raw)); text != "" {
		return text
	}
	return "unknown error"
}

func errorMessage(data map[string]any) string {
	if msg, ok := data["message"].(string); ok && msg != "" {
		return msg
	}
	if msg, ok := data["error"].(string); ok && msg != "" {
		return msg
	}
	return "unknown error"
}

// retryAfter reads the rate-limit reset header. An unparsable value is
// silently treated as absent.
func retryAfter(header http.Header) time.Duration {
	value := strings.TrimSpace(header.Get("X-RateLimit-Reset"))
	if value == "" {
		return 0
	}
	seconds, err := strconv.Atoi(value)
	if err != nil || seconds < 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, nil
	}
	return context.WithTimeout(ctx, timeout)
}
