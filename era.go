package discourses

import (
	"fmt"
	"strings"
)

// Era identifies a financial language era. The API calibrates sentiment
// scoring against the lexicon of the requested era.
type Era string

const (
	// EraPrimitive covers pre-2016 filings and early-social market language.
	EraPrimitive Era = "primitive"
	// EraRamp covers the 2016-2019 fintech emergence and early crypto adoption.
	EraRamp Era = "ramp"
	// EraMeme covers the 2019-2023 retail-revolution vernacular.
	EraMeme Era = "meme"
	// EraPresent is the current aggregate lexicon and the API default.
	EraPresent Era = "present"
)

// Eras returns every supported era in chronological order.
func Eras() []Era {
	return []Era{EraPrimitive, EraRamp, EraMeme, EraPresent}
}

// ParseEra validates and normalizes an era token. Matching is
// case-insensitive and tolerant of surrounding whitespace; anything outside
// the fixed token set is rejected.
func ParseEra(value string) (Era, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	switch Era(normalized) {
	case EraPrimitive:
		return EraPrimitive, nil
	case EraRamp:
		return EraRamp, nil
	case EraMeme:
		return EraMeme, nil
	case EraPresent:
		return EraPresent, nil
	default:
		return "", fmt.Errorf("%w: unknown era %q (valid eras: primitive, ramp, meme, present)", ErrInvalidInput, value)
	}
}

func (e Era) String() string {
	return string(e)
}
