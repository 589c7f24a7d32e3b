package config_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/sujeethshingade/docster/pkg/cli/config"
)

func TestSentryFlags(t *testing.T) {
	sentryConfig := &config.Sentry{}
	flags := sentryConfig.Flags()

	gt.V(t, len(flags)).Equal(3)

	// Verify flag names
	flagNames := make(map[string]bool)
	for _, flag := range flags {
		flagNames[flag.Names()[0]] = true
	}

	gt.True(t, flagNames["sentry-dsn"])
	gt.True(t, flagNames["sentry-env"])
	gt.True(t, flagNames["sentry-release"])
}

func TestSentryConfigureWithoutDSN(t *testing.T) {
	unsetEnv(t, "DOCSTER_SENTRY_DSN")

	var cfg config.Sentry
	parseFlags(t, cfg.Flags())
	gt.NoError(t, cfg.Configure(t.Context()))
}
