package config

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/eduteams/eduteams-cli/internal/config/types"
)

type Config struct {
	ConfigFile string `json:"config" yaml:"config"`
	Log        Log    `json:"log"    yaml:"log"`
	OIDC       OIDC   `json:"oidc"   yaml:"oidc"`
	HTTP       HTTP   `json:"http"   yaml:"http"`
	Output     Output `json:"output" yaml:"output"`
}

type Log struct {
	Format string     `json:"format" yaml:"format"`
	Level  slog.Level `json:"level"  yaml:"level"`
}

type OIDC struct {
	Issuer        types.URL    `json:"issuer"         yaml:"issuer"`
	DiscoveryURL  types.URL    `json:"discovery-url"  yaml:"discovery-url"`
	ClientID      string       `json:"client-id"      yaml:"client-id"`
	Scope         types.Scopes `json:"scope"          yaml:"scope"`
	EnforceExpiry bool         `json:"enforce-expiry" yaml:"enforce-expiry"`
	Validate      OIDCValidate `json:"validate"       yaml:"validate"`
}

type OIDCValidate struct {
	CEL string `json:"cel" yaml:"cel"`
}

type HTTP struct {
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
	CAFile  string        `json:"ca-file" yaml:"ca-file"`
}

type Output struct {
	QRCode bool            `json:"qrcode" yaml:"qrcode"`
	Color  types.ColorMode `json:"color"  yaml:"color"`
}

// String returns the configuration as JSON.
//
//goland:noinspection GoMixedReceiverTypes
func (c Config) String() string {
	jsonString, err := json.Marshal(c)
	if err != nil {
		panic(err)
	}

	return string(jsonString)
}
