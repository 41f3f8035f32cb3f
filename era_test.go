package discourses

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseEraAcceptsEveryToken(t *testing.T) {
	for _, era := range Eras() {
		parsed, err := ParseEra(string(era))
		require.NoError(t, err)
		require.Equal(t, era, parsed)
	}
}

func TestParseEraIsCaseInsensitiveAndTrimsWhitespace(t *testing.T) {
	cases := map[string]Era{
		"PRIMITIVE":  EraPrimitive,
		"Ramp":       EraRamp,
		"  meme  ":   EraMeme,
		"\tPresent ": EraPresent,
		"MeMe":       EraMeme,
	}
	for input, want := range cases {
		parsed, err := ParseEra(input)
		require.NoError(t, err, "input %q", input)
		require.Equal(t, want, parsed, "input %q", input)
	}
}

func TestParseEraRejectsUnknownTokens(t *testing.T) {
	for _, input := range []string{"", "  ", "medieval", "presentt", "meme stocks"} {
		_, err := ParseEra(input)
		require.Error(t, err, "input %q", input)
		require.True(t, errors.Is(err, ErrInvalidInput), "input %q", input)
	}
}

func TestErasOrder(t *testing.T) {
	require.Equal(t, []Era{EraPrimitive, EraRamp, EraMeme, EraPresent}, Eras())
}
