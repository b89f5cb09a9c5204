package browser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// These tests run createSuiteEnv directly (no browser) to check the suite
// honors the environment-driven configuration from internal/config.

func TestCreateSuiteEnv_FixtureDefaults(t *testing.T) {
	t.Setenv("PORTFOLIO_BASE_URL", "")
	t.Setenv("UITEST_TIMEOUT", "")
	t.Setenv("UITEST_POLL_INTERVAL", "")
	t.Setenv("HEADLESS", "")

	env := createSuiteEnv(t)
	t.Cleanup(func() { env.server.Close() })

	require.False(t, env.Live)
	require.NotEmpty(t, env.BaseURL)
	require.True(t, env.headless)
	require.Equal(t, 5*time.Second, env.Timeout)
	require.Equal(t, 100*time.Millisecond, env.PollInterval)
	for _, id := range []string{"github-link", "linkedin-link", "telegram-link"} {
		require.NotEmpty(t, env.Hosts.Suffixes(id), "fixture host table should cover %s", id)
	}
}

func TestCreateSuiteEnv_HonorsWaitBudgetsAndHeadless(t *testing.T) {
	t.Setenv("PORTFOLIO_BASE_URL", "")
	t.Setenv("UITEST_TIMEOUT", "2s")
	t.Setenv("UITEST_POLL_INTERVAL", "50ms")
	t.Setenv("HEADLESS", "false")

	env := createSuiteEnv(t)
	t.Cleanup(func() { env.server.Close() })

	require.Equal(t, 2*time.Second, env.Timeout)
	require.Equal(t, 50*time.Millisecond, env.PollInterval)
	require.False(t, env.headless)
	require.Equal(t, float64(2000), env.timeoutMS())
}

func TestCreateSuiteEnv_CapsTimeoutAtSuiteCeiling(t *testing.T) {
	t.Setenv("PORTFOLIO_BASE_URL", "")
	t.Setenv("UITEST_TIMEOUT", "30s")
	t.Setenv("UITEST_POLL_INTERVAL", "")
	t.Setenv("HEADLESS", "")

	env := createSuiteEnv(t)
	t.Cleanup(func() { env.server.Close() })

	require.Equal(t, browserMaxTimeout, env.Timeout)
}

func TestCreateSuiteEnv_LiveModeUsesConfiguredTarget(t *testing.T) {
	t.Setenv("PORTFOLIO_BASE_URL", "https://nadia-smirnova.example/")
	t.Setenv("UITEST_TIMEOUT", "")
	t.Setenv("UITEST_POLL_INTERVAL", "")
	t.Setenv("HEADLESS", "")

	env := createSuiteEnv(t)

	require.True(t, env.Live)
	require.Nil(t, env.server)
	require.Equal(t, "https://nadia-smirnova.example", env.BaseURL)
	require.True(t, env.Hosts.Match("github-link", "github.com"))
}
