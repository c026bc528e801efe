package config

import (
	"log/slog"
	"net/url"
	"time"

	"github.com/eduteams/eduteams-cli/internal/config/types"
)

const (
	DefaultIssuer   = "https://webapp.eduteams.org/oidc"
	DefaultClientID = "APP-12345-56789"
	DefaultScope    = "openid profile"
)

//nolint:gochecknoglobals
var Defaults = Config{
	Log: Log{
		Format: "console",
		Level:  slog.LevelWarn,
	},
	OIDC: OIDC{
		Issuer: types.URL{URL: &url.URL{
			Scheme: "https",
			Host:   "webapp.eduteams.org",
			Path:   "/oidc",
		}},
		ClientID:      DefaultClientID,
		Scope:         types.NewScopes(DefaultScope),
		EnforceExpiry: true,
	},
	HTTP: HTTP{
		Timeout: 30 * time.Second,
	},
	Output: Output{
		QRCode: true,
		Color:  types.ColorModeAuto,
	},
}
