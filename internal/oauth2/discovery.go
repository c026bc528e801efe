package oauth2

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/zitadel/logging"
	"github.com/zitadel/oidc/v3/pkg/client"
	"github.com/zitadel/oidc/v3/pkg/oidc"
)

// Discover fetches the discovery document of the issuer.
// A document without device authorization or token endpoint is rejected, as is a document
// whose issuer is neither the configured issuer nor the configured issuer with a trailing slash
// added or removed.
func (c *Client) Discover(ctx context.Context) (ProviderConfig, error) {
	issuer := c.conf.Issuer.String()
	ctx = logging.ToContext(ctx, c.logger)

	c.logger.LogAttrs(ctx, slog.LevelDebug, "discover OpenID configuration",
		slog.String("issuer", issuer),
	)

	var wellKnownURL []string
	if !c.conf.DiscoveryURL.IsEmpty() {
		wellKnownURL = append(wellKnownURL, c.conf.DiscoveryURL.String())
	}

	discoveryConfig, err := client.Discover(ctx, issuer, c.httpClient, wellKnownURL...)
	if errors.Is(err, oidc.ErrIssuerInvalid) {
		// https://idp and https://idp/ share one discovery document, only the advertised form is accepted.
		alternateIssuer := toggleTrailingSlash(issuer)

		c.logger.LogAttrs(ctx, slog.LevelDebug, "issuer does not match discovery document, retry with alternate form",
			slog.String("issuer", alternateIssuer),
		)

		discoveryConfig, err = client.Discover(ctx, alternateIssuer, c.httpClient, wellKnownURL...)
	}

	if err != nil {
		return ProviderConfig{}, &DiscoveryError{Issuer: issuer, Err: err}
	}

	if discoveryConfig.DeviceAuthorizationEndpoint == "" {
		return ProviderConfig{}, &DiscoveryError{
			Issuer: issuer,
			Err:    fmt.Errorf("%w: device_authorization_endpoint", ErrMissingEndpoint),
		}
	}

	if discoveryConfig.TokenEndpoint == "" {
		return ProviderConfig{}, &DiscoveryError{
			Issuer: issuer,
			Err:    fmt.Errorf("%w: token_endpoint", ErrMissingEndpoint),
		}
	}

	providerConfig := ProviderConfig{
		Issuer:                      discoveryConfig.Issuer,
		DeviceAuthorizationEndpoint: discoveryConfig.DeviceAuthorizationEndpoint,
		TokenEndpoint:               discoveryConfig.TokenEndpoint,
	}

	c.logger.LogAttrs(ctx, slog.LevelDebug, "discovered OpenID configuration",
		slog.String("device_authorization_endpoint", providerConfig.DeviceAuthorizationEndpoint),
		slog.String("token_endpoint", providerConfig.TokenEndpoint),
	)

	return providerConfig, nil
}

func toggleTrailingSlash(issuer string) string {
	if trimmed, ok := strings.CutSuffix(issuer, "/"); ok {
		return trimmed
	}

	return issuer + "/"
}
