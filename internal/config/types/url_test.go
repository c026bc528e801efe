package types_test

import (
	"encoding/json"
	"net/url"
	"strings"
	"testing"

	"github.com/eduteams/eduteams-cli/internal/config/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

//nolint:exhaustruct
func TestURLIsEmpty(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name   string
		url    *types.URL
		expect bool
	}{
		{
			"nil",
			nil,
			true,
		},
		{
			"empty",
			&types.URL{},
			true,
		},
		{
			"non-empty",
			&types.URL{URL: &url.URL{Scheme: "http", Host: "localhost"}},
			false,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expect, tt.url.IsEmpty())
		})
	}
}

func TestURLIsHTTP(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		url    string
		expect bool
	}{
		{"https://webapp.eduteams.org/oidc", true},
		{"http://localhost:8080", true},
		{"unix:///run/socket", false},
		{"/relative/path", false},
		{"https://", false},
	} {
		t.Run(tt.url, func(t *testing.T) {
			t.Parallel()

			u, err := types.NewURL(tt.url)
			require.NoError(t, err)

			assert.Equal(t, tt.expect, u.IsHTTP())
		})
	}
}

func TestURLUnmarshalText(t *testing.T) {
	t.Parallel()

	actualURL := types.URL{}
	require.NoError(t, actualURL.UnmarshalText([]byte("https://example.com")))

	expectedURL, err := types.NewURL("https://example.com")
	require.NoError(t, err)

	require.Equal(t, expectedURL, actualURL)

	require.NoError(t, actualURL.UnmarshalText([]byte("")))
	require.True(t, actualURL.IsEmpty())
}

func TestURLMarshalText(t *testing.T) {
	t.Parallel()

	actualURL, err := types.NewURL("https://example.com")
	require.NoError(t, err)

	urlBytes, err := actualURL.MarshalText()
	require.NoError(t, err)

	require.Equal(t, []byte("https://example.com"), urlBytes)
}

func TestURLUnmarshalJSON(t *testing.T) {
	t.Parallel()

	actualURL := types.URL{}
	require.NoError(t, json.NewDecoder(strings.NewReader(`"https://example.com"`)).Decode(&actualURL))

	expectedURL, err := types.NewURL("https://example.com")
	require.NoError(t, err)

	require.Equal(t, expectedURL, actualURL)
}

func TestURLUnmarshalYAML(t *testing.T) {
	t.Parallel()

	actualURL := types.URL{}
	require.NoError(t, yaml.NewDecoder(strings.NewReader(`"https://example.com"`)).Decode(&actualURL))

	expectedURL, err := types.NewURL("https://example.com")
	require.NoError(t, err)

	require.Equal(t, expectedURL, actualURL)
}
