package session

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/eduteams/eduteams-cli/internal/oauth2"
	"github.com/eduteams/eduteams-cli/internal/ui"
)

// Provider is the device authorization client used by a session.
type Provider interface {
	Discover(ctx context.Context) (oauth2.ProviderConfig, error)
	RequestDeviceAuthorization(ctx context.Context, provider oauth2.ProviderConfig) (*oauth2.DeviceAuthorization, error)
	Poll(ctx context.Context, provider oauth2.ProviderConfig, auth *oauth2.DeviceAuthorization) (oauth2.Tokens, error)
	CheckTokenCEL(tokens oauth2.Tokens) error
}

// Presenter shows messages to the user.
type Presenter interface {
	Clear()
	Echo(text string)
	Notice(text string)
	Result(text string)
}

// QRCodeRenderer renders content as QR code.
type QRCodeRenderer func(content string) (string, error)

// Session runs one interactive device login.
type Session struct {
	logger    *slog.Logger
	provider  Provider
	presenter Presenter
	qrCode    QRCodeRenderer
}

// New returns a session. If qrCode is nil, no QR code is shown.
func New(logger *slog.Logger, provider Provider, presenter Presenter, qrCode QRCodeRenderer) *Session {
	return &Session{
		logger:    logger,
		provider:  provider,
		presenter: presenter,
		qrCode:    qrCode,
	}
}

// Run discovers the provider, asks the user to authorize this device and waits until the
// provider issued the tokens. Failures are reported to the user before they are returned.
func (s *Session) Run(ctx context.Context) (oauth2.Tokens, error) {
	provider, err := s.provider.Discover(ctx)
	if err != nil {
		s.reportDiscoveryError(err)

		return nil, err
	}

	auth, err := s.provider.RequestDeviceAuthorization(ctx, provider)
	if err != nil {
		s.presenter.Echo("Could not retrieve device code")

		return nil, err
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "device authorization started",
		slog.Any("device_authorization", auth),
	)

	s.presentInstructions(ctx, auth)

	tokens, err := s.provider.Poll(ctx, provider, auth)
	if err != nil {
		s.reportPollError(err)

		return nil, err
	}

	if err = s.provider.CheckTokenCEL(tokens); err != nil {
		s.presenter.Echo("The issued tokens were rejected: " + err.Error())

		return nil, err
	}

	output, err := ui.FormatJSON(tokens)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	s.presenter.Clear()
	s.presenter.Result(output)

	return tokens, nil
}

func (s *Session) presentInstructions(ctx context.Context, auth *oauth2.DeviceAuthorization) {
	qrCode := s.renderQRCode(ctx, auth.VerificationURIComplete)

	s.presenter.Clear()

	if qrCode == "" {
		s.presenter.Echo("Using a browser on another device, visit:")
	} else {
		s.presenter.Echo("Scan the QR code or, using a browser on another device, visit:")
	}

	s.presenter.Echo(auth.VerificationURI)
	s.presenter.Echo("")
	s.presenter.Echo("And enter the code: " + auth.UserCode)

	if qrCode != "" {
		s.presenter.Echo("")
		s.presenter.Echo(qrCode)
	}

	s.presenter.Notice("Do not close the terminal")
}

// renderQRCode returns an empty string if the code could not be rendered.
func (s *Session) renderQRCode(ctx context.Context, content string) string {
	if s.qrCode == nil || content == "" {
		return ""
	}

	qrCode, err := s.qrCode(content)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "unable to render QR code",
			slog.Any("err", err),
		)

		return ""
	}

	return qrCode
}

func (s *Session) reportDiscoveryError(err error) {
	var discoveryErr *oauth2.DiscoveryError
	if errors.As(err, &discoveryErr) {
		s.presenter.Echo("Could not discover the OpenID configuration for " + discoveryErr.Issuer)

		return
	}

	s.presenter.Echo("Could not discover the OpenID configuration")
}

func (s *Session) reportPollError(err error) {
	state, ok := oauth2.StateFromError(err)
	if !ok {
		s.presenter.Echo("Login aborted")

		return
	}

	switch state {
	case oauth2.StateDenied:
		s.presenter.Echo("The authorization request was denied.")
	case oauth2.StateExpired:
		s.presenter.Echo("The device_code has expired")
	default:
		s.presenter.Echo("Unknown error")

		if retrieveErr, ok := oauth2.IsRetrieveError(err); ok && retrieveErr.Response != nil {
			s.presenter.Echo(strconv.Itoa(retrieveErr.Response.StatusCode))
			s.presenter.Echo(string(retrieveErr.Body))
		} else {
			s.presenter.Echo(err.Error())
		}
	}
}
