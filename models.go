package discourses

import (
	"sort"
	"strings"
	"time"
)

// Scores is the fixed per-category breakdown returned with every analysis.
type Scores struct {
	Bullish   float64
	Bearish   float64
	Neutral   float64
	Confusion float64
}

// AnalysisResult is the parsed response of a single-text analysis.
//
// Raw retains the full decoded payload so callers can reach fields the SDK
// does not surface yet.
type AnalysisResult struct {
	// Label is one of very_bullish, bullish, neutral, bearish, very_bearish.
	Label string
	// Confidence is the model's confidence in the label, in [0,1].
	Confidence float64
	// Outlook is the directional sentiment score in [0,1]; higher is more bullish.
	Outlook float64
	Scores  Scores

	WordCount     int
	MatchedCount  int
	NegationCount int

	Raw map[string]any
}

func newAnalysisResult(data map[string]any) *AnalysisResult {
	classification := mapField(data, "classification")
	scores := mapField(data, "scores")
	analysis := mapField(data, "analysis")

	return &AnalysisResult{
		Label:      stringField(classification, "label", "neutral"),
		Confidence: floatField(classification, "confidence"),
		Outlook:    floatField(scores, "outlook"),
		Scores: Scores{
			Bullish:   floatField(scores, "bullish"),
			Bearish:   floatField(scores, "bearish"),
			Neutral:   floatField(scores, "neutral"),
			Confusion: floatField(scores, "confusion"),
		},
		WordCount:     intField(analysis, "word_count"),
		MatchedCount:  intField(analysis, "matched_count"),
		NegationCount: intField(analysis, "negation_count"),
		Raw:           data,
	}
}

// IsBullish reports whether the label is bullish or very_bullish.
func (r *AnalysisResult) IsBullish() bool {
	return strings.Contains(r.Label, "bullish")
}

// IsBearish reports whether the label is bearish or very_bearish.
func (r *AnalysisResult) IsBearish() bool {
	return strings.Contains(r.Label, "bearish")
}

// IsNeutral reports whether the label is exactly neutral.
func (r *AnalysisResult) IsNeutral() bool {
	return r.Label == "neutral"
}

// CompareResult is the parsed response of a cross-era comparison.
//
// Results is keyed by era name as reported by the server; keys are not
// validated against the Era token set, so new server-side eras pass through.
type CompareResult struct {
	Results map[string]map[string]any
	Drift   map[string]any
	Meta    map[string]any
	Raw     map[string]any
}

func newCompareResult(data map[string]any) *CompareResult {
	return &CompareResult{
		Results: nestedMaps(mapField(data, "results")),
		Drift:   mapField(data, "drift"),
		Meta:    mapField(data, "meta"),
		Raw:     data,
	}
}

// EraResult returns the per-era payload for the named era.
func (r *CompareResult) EraResult(era string) (map[string]any, bool) {
	result, ok := r.Results[era]
	return result, ok
}

// DriftDirection reports which way sentiment moved across eras.
func (r *CompareResult) DriftDirection() string {
	return stringField(r.Drift, "direction", "stable")
}

// DriftMagnitude reports the size of the sentiment shift across eras.
func (r *CompareResult) DriftMagnitude() float64 {
	return floatField(r.Drift, "magnitude")
}

// PeakEra is the era with the highest sentiment.
func (r *CompareResult) PeakEra() string {
	return stringField(r.Drift, "peak_era", "")
}

// MinEra is the era with the lowest sentiment.
func (r *CompareResult) MinEra() string {
	return stringField(r.Drift, "min_era", "")
}

// BatchResult is the parsed response of a batch analysis, keyed by the
// caller-supplied item IDs. Failed items carry an "error" marker inside
// their payload; the client never retries them.
type BatchResult struct {
	Results map[string]map[string]any
	Meta    map[string]any
	Raw     map[string]any
}

func newBatchResult(data map[string]any) *BatchResult {
	return &BatchResult{
		Results: nestedMaps(mapField(data, "results")),
		Meta:    mapField(data, "meta"),
		Raw:     data,
	}
}

// Len returns the number of per-item results.
func (r *BatchResult) Len() int {
	return len(r.Results)
}

// Get returns the payload for the given item ID.
func (r *BatchResult) Get(id string) (map[string]any, bool) {
	result, ok := r.Results[id]
	return result, ok
}

// IDs returns the item IDs in sorted order for stable iteration.
func (r *BatchResult) IDs() []string {
	ids := make([]string, 0, len(r.Results))
	for id := range r.Results {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Successful returns the entries without an error marker.
func (r *BatchResult) Successful() map[string]map[string]any {
	return r.partition(false)
}

// Failed returns the entries carrying an error marker.
func (r *BatchResult) Failed() map[string]map[string]any {
	return r.partition(true)
}

func (r *BatchResult) partition(failed bool) map[string]map[string]any {
	out := make(map[string]map[string]any)
	for id, entry := range r.Results {
		if _, hasErr := entry["error"]; hasErr == failed {
			out[id] = entry
		}
	}
	return out
}

// TextsProcessed is the number of successfully processed texts. Falls back
// to the result count when the server omits the metadata field.
func (r *BatchResult) TextsProcessed() int {
	if _, ok := r.Meta["texts_processed"]; !ok {
		return len(r.Results)
	}
	return intField(r.Meta, "texts_processed")
}

// TextsFailed is the number of texts that failed processing.
func (r *BatchResult) TextsFailed() int {
	return intField(r.Meta, "texts_failed")
}

// Era is the era the batch was analyzed with.
func (r *BatchResult) Era() string {
	return stringField(r.Meta, "era", "")
}

// ProcessingTime is the server-reported total processing time.
func (r *BatchResult) ProcessingTime() time.Duration {
	return time.Duration(intField(r.Meta, "processing_time_ms")) * time.Millisecond
}

// Defensive payload accessors. Missing or mistyped optional fields yield the
// documented defaults instead of failing; only a structurally malformed body
// (non-object) is rejected, and that happens before these run.

func mapField(data map[string]any, key string) map[string]any {
	if m, ok := data[key].(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

func nestedMaps(data map[string]any) map[string]map[string]any {
	out := make(map[string]map[string]any, len(data))
	for key, value := range data {
		if m, ok := value.(map[string]any); ok {
			out[key] = m
		}
	}
	return out
}

func stringField(data map[string]any, key, fallback string) string {
	if s, ok := data[key].(string); ok {
		return s
	}
	return fallback
}

func floatField(data map[string]any, key string) float64 {
	switch v := data[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}

func intField(data map[string]any, key string) int {
	switch v := data[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}
