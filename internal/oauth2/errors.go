package oauth2

import (
	"errors"
	"fmt"
)

var (
	ErrMissingEndpoint = errors.New("required endpoint is missing in discovery document")
	ErrMissingField    = errors.New("required field is missing in response")
	ErrInvalidResponse = errors.New("invalid response")

	ErrAccessDenied      = errors.New("authorization denied")
	ErrExpiredToken      = errors.New("device code expired")
	ErrDeviceCodeExpired = fmt.Errorf("%w: lifetime announced by the provider has passed", ErrExpiredToken)
	ErrUnknownResponse   = errors.New("unknown response from token endpoint")

	ErrCELValidationFailed = errors.New("CEL validation failed")
	ErrCELNoBooleanResult  = errors.New("CEL expression did not return a boolean")
)

// DiscoveryError is returned if the provider metadata could not be read.
type DiscoveryError struct {
	Issuer string
	Err    error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("discovery of %s failed: %s", e.Issuer, e.Err)
}

func (e *DiscoveryError) Unwrap() error {
	return e.Err
}

// DeviceAuthorizationError is returned if no device code could be obtained.
type DeviceAuthorizationError struct {
	Endpoint string
	Err      error
}

func (e *DeviceAuthorizationError) Error() string {
	return fmt.Sprintf("device authorization request to %s failed: %s", e.Endpoint, e.Err)
}

func (e *DeviceAuthorizationError) Unwrap() error {
	return e.Err
}
