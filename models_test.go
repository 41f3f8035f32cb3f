package discourses

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnalysisResultClassificationViews(t *testing.T) {
	cases := map[string]struct {
		bullish, bearish, neutral bool
	}{
		"very_bullish": {bullish: true},
		"bullish":      {bullish: true},
		"neutral":      {neutral: true},
		"bearish":      {bearish: true},
		"very_bearish": {bearish: true},
	}

	for label, want := range cases {
		result := newAnalysisResult(map[string]any{
			"classification": map[string]any{"label": label},
		})
		require.Equal(t, want.bullish, result.IsBullish(), "label %s", label)
		require.Equal(t, want.bearish, result.IsBearish(), "label %s", label)
		require.Equal(t, want.neutral, result.IsNeutral(), "label %s", label)
	}
}

func TestAnalysisResultIgnoresMistypedFields(t *testing.T) {
	result := newAnalysisResult(map[string]any{
		"classification": map[string]any{"label": 42, "confidence": "high"},
		"scores":         "not an object",
		"analysis":       map[string]any{"word_count": float64(7)},
	})
	require.Equal(t, "neutral", result.Label)
	require.Zero(t, result.Confidence)
	require.Zero(t, result.Scores.Bullish)
	require.Equal(t, 7, result.WordCount)
}

func TestCompareResultSkipsNonObjectEraEntries(t *testing.T) {
	result := newCompareResult(map[string]any{
		"results": map[string]any{
			"meme":   map[string]any{"scores": map[string]any{"outlook": 0.9}},
			"broken": "oops",
		},
	})
	require.Len(t, result.Results, 1)
	_, ok := result.EraResult("meme")
	require.True(t, ok)
	_, ok = result.EraResult("broken")
	require.False(t, ok)
}

func TestCompareResultDriftDefaults(t *testing.T) {
	result := newCompareResult(map[string]any{})
	require.Equal(t, "stable", result.DriftDirection())
	require.Zero(t, result.DriftMagnitude())
	require.Empty(t, result.PeakEra())
	require.Empty(t, result.MinEra())
}

func TestBatchResultPartitionUsesErrorMarkerOnly(t *testing.T) {
	result := newBatchResult(map[string]any{
		"results": map[string]any{
			"ok_1":  map[string]any{"classification": map[string]any{"label": "bullish"}},
			"ok_2":  map[string]any{"classification": map[string]any{"label": "bearish"}},
			"bad_1": map[string]any{"error": "too long"},
			"weird": map[string]any{"error": nil},
		},
	})

	successful := result.Successful()
	failed := result.Failed()
	require.Len(t, successful, 2)
	require.Len(t, failed, 2)
	require.Contains(t, failed, "bad_1")
	// A present-but-null error marker still counts as failed.
	require.Contains(t, failed, "weird")
}

func TestBatchResultProcessedFallsBackToResultCount(t *testing.T) {
	result := newBatchResult(map[string]any{
		"results": map[string]any{
			"a": map[string]any{},
			"b": map[string]any{},
		},
	})
	require.Equal(t, 2, result.TextsProcessed())
	require.Zero(t, result.TextsFailed())
	require.Empty(t, result.Era())
	require.Zero(t, result.ProcessingTime())
}
