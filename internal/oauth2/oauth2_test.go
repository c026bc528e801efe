package oauth2_test

import (
	"testing"
	"time"

	"github.com/eduteams/eduteams-cli/internal/config"
	"github.com/eduteams/eduteams-cli/internal/config/types"
	"github.com/eduteams/eduteams-cli/internal/oauth2"
	"github.com/eduteams/eduteams-cli/internal/utils/testutils"
	"github.com/stretchr/testify/require"
)

//nolint:gochecknoglobals
var now = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

// newTestClient returns a client for provider which records waits instead of sleeping.
func newTestClient(tb testing.TB, provider *testutils.Provider, mutate func(conf *config.Config)) (*oauth2.Client, *testutils.Waiter) {
	tb.Helper()

	issuer, err := types.NewURL(provider.Issuer)
	require.NoError(tb, err)

	conf := config.Defaults
	conf.OIDC.Issuer = issuer
	conf.OIDC.ClientID = testutils.ClientID

	if mutate != nil {
		mutate(&conf)
	}

	waiter := testutils.NewWaiter(testutils.NewClock(now))

	client, err := oauth2.New(testutils.NewTestLogger().Logger, conf, provider.Client(),
		oauth2.WithWaiter(waiter.Wait),
		oauth2.WithClock(waiter.Clock.Now),
	)
	require.NoError(tb, err)

	return client, waiter
}
