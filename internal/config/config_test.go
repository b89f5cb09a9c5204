package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsPass(t *testing.T) {
	t.Setenv("PORTFOLIO_BASE_URL", "")
	t.Setenv("LISTEN_ADDR", "")
	t.Setenv("HEADLESS", "")
	t.Setenv("UITEST_TIMEOUT", "")
	t.Setenv("UITEST_POLL_INTERVAL", "")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.ListenAddr)
	require.Empty(t, cfg.BaseURL)
	require.True(t, cfg.Headless)
	require.Equal(t, 5*time.Second, cfg.DefaultTimeout)
	require.Equal(t, 100*time.Millisecond, cfg.PollInterval)
}

func TestLoad_FlagOverridesListenAddr(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":9000")

	cfg, err := Load(":7777")
	require.NoError(t, err)
	require.Equal(t, ":7777", cfg.ListenAddr)
}

func TestLoad_BaseURLTrimmedAndValidated(t *testing.T) {
	t.Setenv("PORTFOLIO_BASE_URL", " https://portfolio.example.com/ ")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "https://portfolio.example.com", cfg.BaseURL)

	t.Setenv("PORTFOLIO_BASE_URL", "not-a-url")
	_, err = Load("")
	require.Error(t, err)
}

func TestLoad_HeadlessToggle(t *testing.T) {
	t.Setenv("HEADLESS", "false")
	cfg, err := Load("")
	require.NoError(t, err)
	require.False(t, cfg.Headless)
}

func TestLoad_RejectsInvertedWaitBudgets(t *testing.T) {
	t.Setenv("UITEST_TIMEOUT", "50ms")
	t.Setenv("UITEST_POLL_INTERVAL", "1s")

	_, err := Load("")
	require.Error(t, err)
}

func TestHelperParsers_DefaultOnBadInput(t *testing.T) {
	t.Setenv("UITEST_TIMEOUT", "definitely-not-a-duration")
	t.Setenv("UITEST_POLL_INTERVAL", "")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 5*time.Second, cfg.DefaultTimeout)
}
