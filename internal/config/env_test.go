package config //nolint:testpackage

import (
	"log/slog"
	"net/url"
	"testing"
	"time"

	"github.com/eduteams/eduteams-cli/internal/config/types"
	"github.com/stretchr/testify/require"
)

func testLookupEnvOrDefault[T any](t *testing.T, defaultValue T, input, badInput string, expected T) {
	t.Helper()

	require.Equal(t, defaultValue, lookupEnvOrDefault("unset", defaultValue))

	t.Setenv("EDUTEAMS_SET", input)
	require.Equal(t, expected, lookupEnvOrDefault("set", defaultValue))

	if badInput != "" {
		t.Setenv("EDUTEAMS_BAD", badInput)
		require.Equal(t, defaultValue, lookupEnvOrDefault("bad", defaultValue))
	}
}

func TestLookupEnvOrDefault(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		testLookupEnvOrDefault(t, "test", "test2", "", "test2")
	})

	t.Run("bool", func(t *testing.T) {
		testLookupEnvOrDefault(t, false, "true", "A", true)
	})

	t.Run("int", func(t *testing.T) {
		testLookupEnvOrDefault(t, 1336, "1337", "A", 1337)
	})

	t.Run("time.Duration", func(t *testing.T) {
		testLookupEnvOrDefault(t, time.Minute, "5s", "A", 5*time.Second)
	})

	t.Run("TextUnmarshaler/URL", func(t *testing.T) {
		testLookupEnvOrDefault(t,
			types.URL{URL: &url.URL{Scheme: "http", Host: "localhost"}},
			"http://google.com",
			"://google.com",
			types.URL{URL: &url.URL{Scheme: "http", Host: "google.com"}},
		)
	})

	t.Run("TextUnmarshaler/Scopes", func(t *testing.T) {
		testLookupEnvOrDefault(t, types.Scopes{"openid"}, "openid+email", "", types.Scopes{"openid", "email"})
	})

	t.Run("TextUnmarshaler/ColorMode", func(t *testing.T) {
		testLookupEnvOrDefault(t, types.ColorModeAuto, "never", "rainbow", types.ColorModeNever)
	})

	t.Run("TextUnmarshaler/slog.Level", func(t *testing.T) {
		testLookupEnvOrDefault(t, slog.LevelWarn, "debug", "invalid", slog.LevelDebug)
	})

	t.Run("float32", func(t *testing.T) {
		t.Setenv("EDUTEAMS_SET", "1337")

		require.Panics(t, func() {
			lookupEnvOrDefault("set", float32(1336))
		})
	})
}

func TestLookupEnvLegacyNames(t *testing.T) {
	t.Setenv("EDUTEAMS_ISS", "https://legacy.example.com")
	require.Equal(t, "https://legacy.example.com", lookupEnvOrDefault("oidc.issuer", ""))

	t.Setenv("EDUTEAMS_OIDC_ISSUER", "https://current.example.com")
	require.Equal(t, "https://current.example.com", lookupEnvOrDefault("oidc.issuer", ""))
}

func TestGetEnvironmentVariableByFlagName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "EDUTEAMS_OIDC_CLIENT__ID", getEnvironmentVariableByFlagName("oidc.client-id"))
	require.Equal(t, "EDUTEAMS_LOG_LEVEL", getEnvironmentVariableByFlagName("log.level"))
}
