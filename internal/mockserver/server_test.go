package mockserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/discourses/discourses-go"
)

func startMock(t *testing.T, opts Options) (*httptest.Server, *discourses.Client) {
	t.Helper()
	server := httptest.NewServer(New(opts).Handler())
	t.Cleanup(server.Close)

	key := opts.APIKey
	if key == "" {
		key = "any-key"
	}
	client, err := discourses.New(key,
		discourses.WithBaseURL(server.URL),
		discourses.WithHTTPClient(server.Client()))
	require.NoError(t, err)
	return server, client
}

func TestAnalyzeRoundTrip(t *testing.T) {
	_, client := startMock(t, Options{})

	result, err := client.Analyze(context.Background(), "Diamond hands! To the moon!", discourses.EraMeme)
	require.NoError(t, err)
	require.Equal(t, "very_bullish", result.Label)
	require.True(t, result.IsBullish())
	require.InDelta(t, 0.93, result.Outlook, 1e-9)
	require.Equal(t, 5, result.WordCount)
}

func TestAnalyzeUsesPresentEraByDefault(t *testing.T) {
	_, client := startMock(t, Options{})

	result, err := client.Analyze(context.Background(), "steady growth", "")
	require.NoError(t, err)
	require.Equal(t, "bullish", result.Label)
	require.InDelta(t, 0.70, result.Outlook, 1e-9)
}

func TestPinnedAPIKeyIsEnforced(t *testing.T) {
	server, _ := startMock(t, Options{APIKey: "secret"})

	wrong, err := discourses.New("not-secret",
		discourses.WithBaseURL(server.URL),
		discourses.WithHTTPClient(server.Client()))
	require.NoError(t, err)

	_, err = wrong.Analyze(context.Background(), "text", "")
	var apiErr *discourses.Error
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, discourses.ErrorKindAuth, apiErr.Kind)
	require.Equal(t, "invalid api key", apiErr.Message)

	right, err := discourses.New("secret",
		discourses.WithBaseURL(server.URL),
		discourses.WithHTTPClient(server.Client()))
	require.NoError(t, err)
	_, err = right.Analyze(context.Background(), "text", "")
	require.NoError(t, err)
}

func TestRateLimitScenario(t *testing.T) {
	_, client := startMock(t, Options{})

	_, err := client.Analyze(context.Background(), "please [ratelimit] me", "")
	var apiErr *discourses.Error
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, discourses.ErrorKindRateLimit, apiErr.Kind)
	require.Equal(t, 60*time.Second, apiErr.RetryAfter)
}

func TestCompareErasRoundTrip(t *testing.T) {
	_, client := startMock(t, Options{})

	result, err := client.CompareEras(context.Background(), "HODL", discourses.EraPrimitive, discourses.EraMeme)
	require.NoError(t, err)
	require.Len(t, result.Results, 2)
	require.Equal(t, "bullish", result.DriftDirection())
	require.InDelta(t, 0.43, result.DriftMagnitude(), 1e-9)
	require.Equal(t, "meme", result.PeakEra())
	require.Equal(t, "primitive", result.MinEra())
}

func TestCompareErasDefaultsToAllEras(t *testing.T) {
	_, client := startMock(t, Options{})

	result, err := client.CompareEras(context.Background(), "HODL")
	require.NoError(t, err)
	require.Len(t, result.Results, len(discourses.Eras()))
}

func TestBatchRoundTripPartitionsFailures(t *testing.T) {
	_, client := startMock(t, Options{})

	result, err := client.Batch(context.Background(), []discourses.BatchItem{
		{ID: "ok", Text: "Bullish!"},
		{ID: "bad", Text: "this one should [fail]"},
	}, discourses.EraRamp)
	require.NoError(t, err)

	require.Equal(t, 2, result.Len())
	require.Equal(t, 1, result.TextsProcessed())
	require.Equal(t, 1, result.TextsFailed())
	require.Equal(t, "ramp", result.Era())
	require.Contains(t, result.Failed(), "bad")
	require.Contains(t, result.Successful(), "ok")
}

// The SDK validates era tokens before sending, so the server-side rejection
// paths are exercised with raw requests.
func TestServerSideValidation(t *testing.T) {
	server, _ := startMock(t, Options{})

	post := func(path, body string) *http.Response {
		req, err := http.NewRequest(http.MethodPost, server.URL+path, strings.NewReader(body))
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer any-key")
		req.Header.Set("Content-Type", "application/json")
		resp, err := server.Client().Do(req)
		require.NoError(t, err)
		return resp
	}

	t.Run("unknown era", func(t *testing.T) {
		resp := post("/analyze/era", `{"text": "hi", "era": "medieval"}`)
		defer resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("empty text", func(t *testing.T) {
		resp := post("/analyze/era", `{"text": "  "}`)
		defer resp.Body.Close()
		require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("malformed body", func(t *testing.T) {
		resp := post("/analyze/compare-eras", `{`)
		defer resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("missing auth", func(t *testing.T) {
		resp, err := server.Client().Post(server.URL+"/analyze/era", "application/json", strings.NewReader(`{"text": "hi"}`))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestRequestIDHeaderIsEchoed(t *testing.T) {
	server, _ := startMock(t, Options{})

	req, err := http.NewRequest(http.MethodGet, server.URL+"/health", nil)
	require.NoError(t, err)
	req.Header.Set(RequestIDHeader, "trace-me")

	resp, err := server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, "trace-me", resp.Header.Get(RequestIDHeader))

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "ok", body["status"])
}
