package config

import (
	"flag"
)

//goland:noinspection GoMixedReceiverTypes
func (c *Config) flagSetLog(flagSet *flag.FlagSet) {
	flagSet.StringVar(
		&c.Log.Format,
		"log.format",
		lookupEnvOrDefault("log.format", c.Log.Format),
		"log format. json or console",
	)
	flagSet.TextVar(
		&c.Log.Level,
		"log.level",
		lookupEnvOrDefault("log.level", c.Log.Level),
		"log level. Can be one of: debug, info, warn, error",
	)
}

//goland:noinspection GoMixedReceiverTypes
func (c *Config) flagSetOIDC(flagSet *flag.FlagSet) {
	flagSet.TextVar(
		&c.OIDC.Issuer,
		"oidc.issuer",
		lookupEnvOrDefault("oidc.issuer", c.OIDC.Issuer),
		"base URI of the OpenID Connect provider. The discovery document is read from <issuer>/.well-known/openid-configuration",
	)
	flagSet.TextVar(
		&c.OIDC.DiscoveryURL,
		"oidc.discovery-url",
		lookupEnvOrDefault("oidc.discovery-url", c.OIDC.DiscoveryURL),
		"custom URL of the discovery document. Defaults to the well-known location of the issuer",
	)
	flagSet.StringVar(
		&c.OIDC.ClientID,
		"oidc.client-id",
		lookupEnvOrDefault("oidc.client-id", c.OIDC.ClientID),
		"client identifier registered at the provider",
	)
	flagSet.TextVar(
		&c.OIDC.Scope,
		"oidc.scope",
		lookupEnvOrDefault("oidc.scope", c.OIDC.Scope),
		"requested scopes. Space, comma or plus separated",
	)
	flagSet.BoolVar(
		&c.OIDC.EnforceExpiry,
		"oidc.enforce-expiry",
		lookupEnvOrDefault("oidc.enforce-expiry", c.OIDC.EnforceExpiry),
		"stop polling once the device code lifetime announced by the provider has passed",
	)
	flagSet.StringVar(
		&c.OIDC.Validate.CEL,
		"oidc.validate.cel",
		lookupEnvOrDefault("oidc.validate.cel", c.OIDC.Validate.CEL),
		"CEL expression which must evaluate to true for the received token set. "+
			"The token response is available as variable 'tokens'",
	)
}

//goland:noinspection GoMixedReceiverTypes
func (c *Config) flagSetHTTP(flagSet *flag.FlagSet) {
	flagSet.DurationVar(
		&c.HTTP.Timeout,
		"http.timeout",
		lookupEnvOrDefault("http.timeout", c.HTTP.Timeout),
		"timeout of a single request against the provider",
	)
	flagSet.StringVar(
		&c.HTTP.CAFile,
		"http.ca-file",
		lookupEnvOrDefault("http.ca-file", c.HTTP.CAFile),
		"path to a PEM bundle with additional trusted certificate authorities",
	)
}

//goland:noinspection GoMixedReceiverTypes
func (c *Config) flagSetOutput(flagSet *flag.FlagSet) {
	flagSet.BoolVar(
		&c.Output.QRCode,
		"output.qrcode",
		lookupEnvOrDefault("output.qrcode", c.Output.QRCode),
		"render a QR code of the verification URI",
	)
	flagSet.TextVar(
		&c.Output.Color,
		"output.color",
		lookupEnvOrDefault("output.color", c.Output.Color),
		"highlight output. Can be one of: auto, always, never",
	)
}
