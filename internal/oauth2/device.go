package oauth2

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/zitadel/oidc/v3/pkg/oidc"
	"golang.org/x/oauth2"
)

// maxExpiresIn is the largest device code lifetime in seconds that fits into a [time.Duration].
const maxExpiresIn = int64(math.MaxInt64 / time.Second)

// RequestDeviceAuthorization requests a device and user code from the device authorization endpoint.
func (c *Client) RequestDeviceAuthorization(ctx context.Context, provider ProviderConfig) (*DeviceAuthorization, error) {
	endpoint := provider.DeviceAuthorizationEndpoint

	resp, body, err := c.postForm(ctx, endpoint, url.Values{
		"client_id": {c.conf.ClientID},
		"scope":     {c.conf.Scope.String()},
	})
	if err != nil {
		return nil, &DeviceAuthorizationError{Endpoint: endpoint, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &DeviceAuthorizationError{Endpoint: endpoint, Err: newRetrieveError(resp, body)}
	}

	var response deviceAuthorizationResponse
	if err = json.Unmarshal(body, &response); err != nil {
		return nil, &DeviceAuthorizationError{
			Endpoint: endpoint,
			Err:      fmt.Errorf("%w: %w", ErrInvalidResponse, err),
		}
	}

	deviceAuthorization, err := c.newDeviceAuthorization(response)
	if err != nil {
		return nil, &DeviceAuthorizationError{Endpoint: endpoint, Err: err}
	}

	c.logger.LogAttrs(ctx, slog.LevelDebug, "device authorization granted",
		slog.Any("device_authorization", deviceAuthorization),
	)

	return deviceAuthorization, nil
}

func (c *Client) newDeviceAuthorization(response deviceAuthorizationResponse) (*DeviceAuthorization, error) {
	verificationURI := response.VerificationURI
	if verificationURI == "" {
		verificationURI = response.VerificationURL
	}

	expiresIn := response.ExpiresIn
	if expiresIn == 0 {
		expiresIn = response.ExpireIn
	}

	for _, field := range []struct{ name, value string }{
		{"device_code", response.DeviceCode},
		{"user_code", response.UserCode},
		{"verification_uri", verificationURI},
	} {
		if field.value == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingField, field.name)
		}
	}

	if expiresIn <= 0 {
		return nil, fmt.Errorf("%w: expires_in", ErrMissingField)
	}

	expiresIn = min(expiresIn, maxExpiresIn)

	interval := DefaultInterval
	if response.Interval > 0 {
		interval = time.Duration(response.Interval) * time.Second
	}

	return &DeviceAuthorization{
		DeviceCode:              response.DeviceCode,
		UserCode:                response.UserCode,
		VerificationURI:         verificationURI,
		VerificationURIComplete: response.VerificationURIComplete,
		ExpiresAt:               c.now().Add(time.Duration(expiresIn) * time.Second),
		Interval:                interval,
	}, nil
}

// newRetrieveError keeps status and body of an unexpected provider response.
// The OAuth2 error code is filled in if the body carries one.
func newRetrieveError(resp *http.Response, body []byte) *oauth2.RetrieveError {
	retrieveErr := &oauth2.RetrieveError{
		Response: resp,
		Body:     body,
	}

	var oidcErr oidc.Error
	if err := json.Unmarshal(body, &oidcErr); err == nil {
		retrieveErr.ErrorCode = string(oidcErr.ErrorType)
		retrieveErr.ErrorDescription = oidcErr.Description
	}

	return retrieveErr
}

// IsRetrieveError reports whether err carries a raw provider response and returns it.
func IsRetrieveError(err error) (*oauth2.RetrieveError, bool) {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		return retrieveErr, true
	}

	return nil, false
}
