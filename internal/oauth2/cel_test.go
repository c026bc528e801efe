package oauth2_test

import (
	"encoding/json"
	"testing"

	"github.com/eduteams/eduteams-cli/internal/config"
	"github.com/eduteams/eduteams-cli/internal/oauth2"
	"github.com/eduteams/eduteams-cli/internal/utils/testutils"
	"github.com/stretchr/testify/require"
)

func TestCheckTokenCEL(t *testing.T) {
	t.Parallel()

	tokens := oauth2.Tokens{
		"access_token": "AT1",
		"expires_in":   json.Number("3600"),
		"scope":        "openid profile",
	}

	for _, tc := range []struct {
		name       string
		expression string
		err        string
	}{
		{
			name:       "no CEL expression configured",
			expression: "",
		},
		{
			name:       "claim present",
			expression: "has(tokens.access_token)",
		},
		{
			name:       "number comparison",
			expression: "tokens.expires_in > 60.0",
		},
		{
			name:       "claim missing",
			expression: "has(tokens.id_token)",
			err:        oauth2.ErrCELValidationFailed.Error(),
		},
		{
			name:       "no boolean result",
			expression: "tokens.access_token",
			err:        oauth2.ErrCELNoBooleanResult.Error(),
		},
		{
			name:       "evaluation error",
			expression: "tokens.refresh_token == 'x'",
			err:        "failed to evaluate CEL expression",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			conf := config.Defaults
			conf.OIDC.Validate.CEL = tc.expression

			client, err := oauth2.New(testutils.NewTestLogger().Logger, conf, nil)
			require.NoError(t, err)

			err = client.CheckTokenCEL(tokens)
			if tc.err == "" {
				require.NoError(t, err)
			} else {
				require.ErrorContains(t, err, tc.err)
			}
		})
	}
}

func TestNewInvalidCEL(t *testing.T) {
	t.Parallel()

	conf := config.Defaults
	conf.OIDC.Validate.CEL = "-"

	_, err := oauth2.New(testutils.NewTestLogger().Logger, conf, nil)
	require.ErrorContains(t, err, "failed to compile CEL expression")
}
