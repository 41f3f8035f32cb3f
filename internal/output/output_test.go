package output

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/discourses/discourses-go"
)

func TestParseFormat(t *testing.T) {
	for input, want := range map[string]Format{
		"":         FormatTable,
		"table":    FormatTable,
		" JSON ":   FormatJSON,
		"Markdown": FormatMarkdown,
		"markdown": FormatMarkdown,
	} {
		format, err := ParseFormat(input)
		require.NoError(t, err, "input %q", input)
		require.Equal(t, want, format, "input %q", input)
	}

	_, err := ParseFormat("yaml")
	require.Error(t, err)
}

func TestEraOrderIsChronologicalThenAlphabetical(t *testing.T) {
	results := map[string]map[string]any{
		"present":   {},
		"meme":      {},
		"primitive": {},
		"zz_future": {},
		"aa_custom": {},
	}
	require.Equal(t, []string{"primitive", "meme", "present", "aa_custom", "zz_future"}, eraOrder(results))
}

func compareFixture() *discourses.CompareResult {
	return &discourses.CompareResult{
		Results: map[string]map[string]any{
			"primitive": {
				"classification": map[string]any{"label": "neutral"},
				"scores":         map[string]any{"outlook": 0.5},
			},
			"meme": {
				"classification": map[string]any{"label": "very_bullish"},
				"scores":         map[string]any{"outlook": 0.95},
			},
		},
		Drift: map[string]any{
			"direction": "bullish",
			"magnitude": 0.45,
			"peak_era":  "meme",
			"min_era":   "primitive",
		},
	}
}

func TestTableFormatterCompare(t *testing.T) {
	rendered, err := (&TableFormatter{}).FormatCompare(compareFixture())
	require.NoError(t, err)
	require.Contains(t, rendered, "very_bullish")
	require.Contains(t, rendered, "0.95")
	require.Contains(t, rendered, "drift bullish (0.45)")
	require.Contains(t, rendered, "peak meme")
}

func TestMarkdownFormatterEscapesCells(t *testing.T) {
	result := &discourses.BatchResult{
		Results: map[string]map[string]any{
			"a|b": {"error": "pipe|in|message"},
		},
	}
	rendered, err := (&MarkdownFormatter{}).FormatBatch(result)
	require.NoError(t, err)
	require.Contains(t, rendered, `a\|b`)
	require.Contains(t, rendered, `pipe\|in\|message`)
	require.Contains(t, rendered, "**Summary**: 0 processed, 0 failed")
}

func TestJSONFormatterRendersRawPayload(t *testing.T) {
	result := &discourses.AnalysisResult{
		Label: "bullish",
		Raw: map[string]any{
			"classification": map[string]any{"label": "bullish"},
			"experimental":   map[string]any{"novel_field": 1.0},
		},
	}
	rendered, err := (&JSONFormatter{Indent: true}).FormatAnalysis(result)
	require.NoError(t, err)
	require.Contains(t, rendered, `"novel_field"`)
}
