package oauth2

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/zitadel/oidc/v3/pkg/oidc"
)

// Poll exchanges the device code for tokens until the provider grants or refuses the authorization.
// Every token request is preceded by a wait of the current interval. A slow_down response
// raises auth.Interval by [SlowDownIncrement] for the rest of the session.
//
// Poll returns the token response unmodified on success. Otherwise, the error wraps
// [ErrAccessDenied], [ErrExpiredToken] or [ErrUnknownResponse], or the cause of ctx.
func (c *Client) Poll(ctx context.Context, provider ProviderConfig, auth *DeviceAuthorization) (Tokens, error) {
	for attempt := 1; ; attempt++ {
		if err := c.wait(ctx, auth.Interval); err != nil {
			return nil, err
		}

		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("polling aborted: %w", context.Cause(ctx))
		}

		if c.conf.EnforceExpiry && !c.now().Before(auth.ExpiresAt) {
			c.logger.LogAttrs(ctx, slog.LevelDebug, "device code lifetime exceeded",
				slog.Time("expires_at", auth.ExpiresAt),
			)

			return nil, ErrDeviceCodeExpired
		}

		state, tokens, err := c.exchangeDeviceCode(ctx, provider, auth.DeviceCode)

		c.logger.LogAttrs(ctx, slog.LevelDebug, "token request",
			slog.Int("attempt", attempt),
			slog.Duration("interval", auth.Interval),
			slog.String("state", state.String()),
		)

		switch state {
		case StatePending:
			continue
		case StateSlowed:
			auth.Interval += SlowDownIncrement

			c.logger.LogAttrs(ctx, slog.LevelInfo, "provider requested slower polling",
				slog.Duration("interval", auth.Interval),
			)

			continue
		case StateSucceeded:
			return tokens, nil
		default:
			return nil, err
		}
	}
}

// exchangeDeviceCode sends a single token request and classifies the response.
func (c *Client) exchangeDeviceCode(ctx context.Context, provider ProviderConfig, deviceCode string) (State, Tokens, error) {
	resp, body, err := c.postForm(ctx, provider.TokenEndpoint, url.Values{
		"grant_type":  {string(oidc.GrantTypeDeviceCode)},
		"client_id":   {c.conf.ClientID},
		"device_code": {deviceCode},
	})
	if err != nil {
		if ctx.Err() != nil {
			return StateUnknownError, nil, fmt.Errorf("polling aborted: %w", context.Cause(ctx))
		}

		return StateUnknownError, nil, fmt.Errorf("%w: %w", ErrUnknownResponse, err)
	}

	return classifyTokenResponse(resp, body)
}

// classifyTokenResponse maps a token endpoint response to the next state of the polling loop.
func classifyTokenResponse(resp *http.Response, body []byte) (State, Tokens, error) {
	retrieveErr := newRetrieveError(resp, body)

	switch resp.StatusCode {
	case http.StatusOK:
		tokens, err := decodeTokens(body)
		if err != nil {
			return StateUnknownError, nil, fmt.Errorf("%w: %w", ErrUnknownResponse, retrieveErr)
		}

		return StateSucceeded, tokens, nil
	case http.StatusBadRequest:
		switch retrieveErr.ErrorCode {
		case string(oidc.AuthorizationPending):
			return StatePending, nil, nil
		case string(oidc.SlowDown):
			return StateSlowed, nil, nil
		case string(oidc.AccessDenied):
			return StateDenied, nil, fmt.Errorf("%w: %w", ErrAccessDenied, retrieveErr)
		case string(oidc.ExpiredToken):
			return StateExpired, nil, fmt.Errorf("%w: %w", ErrExpiredToken, retrieveErr)
		}
	}

	return StateUnknownError, nil, fmt.Errorf("%w: %w", ErrUnknownResponse, retrieveErr)
}

// decodeTokens decodes a body consisting of exactly one JSON object. Numbers are kept as [json.Number] to pass them through unchanged.
func decodeTokens(body []byte) (Tokens, error) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var tokens Tokens
	if err := decoder.Decode(&tokens); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	if tokens == nil {
		return nil, fmt.Errorf("%w: token response is not an object", ErrInvalidResponse)
	}

	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after token response", ErrInvalidResponse)
	}

	return tokens, nil
}
