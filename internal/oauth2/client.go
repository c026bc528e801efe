package oauth2

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/eduteams/eduteams-cli/internal/config"
	"github.com/google/cel-go/cel"
)

// Waiter suspends the caller for the given duration or until ctx is done.
type Waiter func(ctx context.Context, d time.Duration) error

type Client struct {
	logger     *slog.Logger
	httpClient *http.Client
	conf       config.OIDC
	celPrg     cel.Program
	wait       Waiter
	now        func() time.Time
}

type Option func(*Client)

// WithWaiter replaces the pacing delay between two token requests.
func WithWaiter(waiter Waiter) Option {
	return func(c *Client) {
		c.wait = waiter
	}
}

// WithClock replaces the clock used to compute and enforce the device code lifetime.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// New returns a device authorization grant client for the configured provider.
func New(logger *slog.Logger, conf config.Config, httpClient *http.Client, opts ...Option) (*Client, error) {
	client := &Client{
		logger:     logger,
		httpClient: httpClient,
		conf:       conf.OIDC,
		wait:       Wait,
		now:        time.Now,
	}

	if conf.OIDC.Validate.CEL != "" {
		prg, err := compileCEL(conf.OIDC.Validate.CEL)
		if err != nil {
			return nil, err
		}

		client.celPrg = prg
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Wait blocks for d or until ctx is done, whatever happens first.
func Wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("wait: %w", context.Cause(ctx))
	case <-timer.C:
		return nil
	}
}
