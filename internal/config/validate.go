package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/eduteams/eduteams-cli/internal/config/types"
)

// Validate validates the config.
func Validate(conf Config) error {
	if err := validateOIDCConfig(conf); err != nil {
		return err
	}

	if err := validateHTTPConfig(conf); err != nil {
		return err
	}

	if !slices.Contains([]string{"json", "console"}, conf.Log.Format) {
		return fmt.Errorf("log.format: unknown log format: %s", conf.Log.Format)
	}

	return nil
}

// validateOIDCConfig validates the OpenID Connect configuration.
func validateOIDCConfig(conf Config) error {
	if conf.OIDC.Issuer.IsEmpty() {
		return fmt.Errorf("oidc.issuer is %w", ErrRequired)
	}

	if !conf.OIDC.Issuer.IsHTTP() {
		return fmt.Errorf("oidc.issuer: %w", types.ErrNotAbsoluteURL)
	}

	if !conf.OIDC.DiscoveryURL.IsEmpty() && !conf.OIDC.DiscoveryURL.IsHTTP() {
		return fmt.Errorf("oidc.discovery-url: %w", types.ErrNotAbsoluteURL)
	}

	if conf.OIDC.ClientID == "" {
		return fmt.Errorf("oidc.client-id is %w", ErrRequired)
	}

	if len(conf.OIDC.Scope) == 0 {
		return fmt.Errorf("oidc.scope is %w", ErrRequired)
	}

	return nil
}

// validateHTTPConfig validates the HTTP client configuration.
func validateHTTPConfig(conf Config) error {
	if conf.HTTP.Timeout <= 0 {
		return errors.New("http.timeout must be greater than zero")
	}

	return nil
}
