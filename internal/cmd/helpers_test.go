package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/discourses/discourses-go"
	"github.com/discourses/discourses-go/internal/output"
)

func TestParseEraFlag(t *testing.T) {
	era, err := parseEraFlag("")
	require.NoError(t, err)
	require.Empty(t, era)

	era, err = parseEraFlag("MEME")
	require.NoError(t, err)
	require.Equal(t, discourses.EraMeme, era)

	_, err = parseEraFlag("medieval")
	require.Error(t, err)
	require.True(t, errors.Is(err, discourses.ErrInvalidInput))
	require.Contains(t, err.Error(), "--era")
}

func TestResolveFormatterFollowsFlag(t *testing.T) {
	orig := outputFormat
	t.Cleanup(func() { outputFormat = orig })

	outputFormat = "json"
	formatter, err := resolveFormatter()
	require.NoError(t, err)
	require.IsType(t, &output.JSONFormatter{}, formatter)

	outputFormat = "csv"
	_, err = resolveFormatter()
	require.Error(t, err)
}
