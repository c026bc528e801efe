package oauth2

import (
	"log/slog"
	"time"
)

const (
	// DefaultInterval is used if the provider does not announce a polling interval.
	DefaultInterval = 5 * time.Second
	// SlowDownIncrement is added to the polling interval on every slow_down response.
	SlowDownIncrement = 5 * time.Second
)

// ProviderConfig holds the endpoints read from the discovery document of the issuer.
type ProviderConfig struct {
	Issuer                      string
	DeviceAuthorizationEndpoint string
	TokenEndpoint               string
}

// DeviceAuthorization is the result of a device authorization request.
// Interval is owned by the polling loop and only ever grows.
type DeviceAuthorization struct {
	// DeviceCode is a secret and must not be displayed or logged.
	DeviceCode              string
	UserCode                string
	VerificationURI         string
	VerificationURIComplete string
	ExpiresAt               time.Time
	Interval                time.Duration
}

// LogValue implements [slog.LogValuer]. The device code is omitted.
func (d DeviceAuthorization) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("user_code", d.UserCode),
		slog.String("verification_uri", d.VerificationURI),
		slog.String("verification_uri_complete", d.VerificationURIComplete),
		slog.Time("expires_at", d.ExpiresAt),
		slog.Duration("interval", d.Interval),
	)
}

// Tokens is the token response of the provider. Its members are provider-defined
// and passed through without interpretation.
type Tokens map[string]any

// deviceAuthorizationResponse is the wire format of the device authorization endpoint.
// expire_in and verification_url are accepted next to the RFC 8628 names.
type deviceAuthorizationResponse struct {
	DeviceCode              string `json:"device_code"`
	UserCode                string `json:"user_code"`
	VerificationURI         string `json:"verification_uri"`
	VerificationURL         string `json:"verification_url"`
	VerificationURIComplete string `json:"verification_uri_complete"`
	ExpiresIn               int64  `json:"expires_in"`
	ExpireIn                int64  `json:"expire_in"`
	Interval                int64  `json:"interval"`
}
