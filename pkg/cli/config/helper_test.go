package config_test

import (
	"context"
	"os"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/urfave/cli/v3"
)

// parseFlags runs a throwaway command so that flag destinations are filled.
func parseFlags(t *testing.T, flags []cli.Flag, args ...string) {
	t.Helper()

	cmd := &cli.Command{
		Name:  "test",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			return nil
		},
	}
	gt.NoError(t, cmd.Run(t.Context(), append([]string{"test"}, args...)))
}

// unsetEnv removes keys for the duration of the test. A variable set to an
// empty string still overrides flag defaults.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		gt.NoError(t, os.Unsetenv(key))
	}
}
