package mockserver

import (
	"strings"

	"github.com/discourses/discourses-go"
)

// fixture is the canned scoring the mock returns for an era. Values are
// arbitrary but fixed so integration tests can assert exact numbers.
type fixture struct {
	label      string
	confidence float64
	outlook    float64
	bullish    float64
	bearish    float64
	neutral    float64
	confusion  float64
}

var eraFixtures = map[discourses.Era]fixture{
	discourses.EraPrimitive: {
		label:      "neutral",
		confidence: 0.62,
		outlook:    0.50,
		bullish:    0.20,
		bearish:    0.20,
		neutral:    0.55,
		confusion:  0.05,
	},
	discourses.EraRamp: {
		label:      "bullish",
		confidence: 0.71,
		outlook:    0.64,
		bullish:    0.48,
		bearish:    0.14,
		neutral:    0.33,
		confusion:  0.05,
	},
	discourses.EraMeme: {
		label:      "very_bullish",
		confidence: 0.87,
		outlook:    0.93,
		bullish:    0.90,
		bearish:    0.02,
		neutral:    0.05,
		confusion:  0.03,
	},
	discourses.EraPresent: {
		label:      "bullish",
		confidence: 0.78,
		outlook:    0.70,
		bullish:    0.55,
		bearish:    0.12,
		neutral:    0.28,
		confusion:  0.05,
	},
}

// analysisPayload builds the canned response body for one text. Word counts
// are the only part derived from the input; scoring is pure fixture data.
func analysisPayload(text string, era discourses.Era) map[string]any {
	fx := eraFixtures[era]
	words := len(strings.Fields(text))

	return map[string]any{
		"classification": map[string]any{
			"label":      fx.label,
			"confidence": fx.confidence,
		},
		"scores": map[string]any{
			"outlook":   fx.outlook,
			"bullish":   fx.bullish,
			"bearish":   fx.bearish,
			"neutral":   fx.neutral,
			"confusion": fx.confusion,
		},
		"analysis": map[string]any{
			"word_count":     words,
			"matched_count":  words,
			"negation_count": 0,
		},
		"meta": map[string]any{
			"era": era.String(),
		},
	}
}

// driftPayload summarizes fixture outlooks across the requested eras, which
// must already be in chronological order.
func driftPayload(eras []discourses.Era) map[string]any {
	if len(eras) == 0 {
		return map[string]any{}
	}

	peak, min := eras[0], eras[0]
	for _, era := range eras[1:] {
		if eraFixtures[era].outlook > eraFixtures[peak].outlook {
			peak = era
		}
		if eraFixtures[era].outlook < eraFixtures[min].outlook {
			min = era
		}
	}

	first := eraFixtures[eras[0]].outlook
	last := eraFixtures[eras[len(eras)-1]].outlook
	direction := "stable"
	switch {
	case last > first:
		direction = "bullish"
	case last < first:
		direction = "bearish"
	}

	return map[string]any{
		"direction": direction,
		"magnitude": eraFixtures[peak].outlook - eraFixtures[min].outlook,
		"peak_era":  peak.String(),
		"min_era":   min.String(),
	}
}

// chronological orders the requested eras by their place in the canonical
// era sequence.
func chronological(eras []discourses.Era) []discourses.Era {
	ordered := make([]discourses.Era, 0, len(eras))
	requested := make(map[discourses.Era]bool, len(eras))
	for _, era := range eras {
		requested[era] = true
	}
	for _, era := range discourses.Eras() {
		if requested[era] {
			ordered = append(ordered, era)
		}
	}
	return ordered
}
