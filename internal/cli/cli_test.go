package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("positional path populates config with defaults", func(t *testing.T) {
		t.Parallel()
		out := &bytes.Buffer{}

		cfg, exit, err := Parse([]string{"job.hcl"}, out)

		require.NoError(t, err)
		require.False(t, exit)
		require.NotNil(t, cfg)
		assert.Equal(t, "job.hcl", cfg.JobPath)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, 10, cfg.Workers)
		assert.Equal(t, "text", cfg.OutputFormat)
	})

	t.Run("-job flag wins over positional argument", func(t *testing.T) {
		t.Parallel()
		out := &bytes.Buffer{}

		cfg, _, err := Parse([]string{"-job", "a.hcl", "b.hcl"}, out)

		require.NoError(t, err)
		assert.Equal(t, "a.hcl", cfg.JobPath)
	})

	t.Run("-j shorthand works", func(t *testing.T) {
		t.Parallel()
		out := &bytes.Buffer{}

		cfg, _, err := Parse([]string{"-j", "short.hcl"}, out)

		require.NoError(t, err)
		assert.Equal(t, "short.hcl", cfg.JobPath)
	})

	t.Run("no path prints usage and requests clean exit", func(t *testing.T) {
		t.Parallel()
		out := &bytes.Buffer{}

		cfg, exit, err := Parse([]string{}, out)

		require.NoError(t, err)
		assert.True(t, exit)
		assert.Nil(t, cfg)
		assert.Contains(t, out.String(), "Usage:")
	})

	t.Run("help flag requests clean exit", func(t *testing.T) {
		t.Parallel()
		out := &bytes.Buffer{}

		cfg, exit, err := Parse([]string{"-h"}, out)

		require.NoError(t, err)
		assert.True(t, exit)
		assert.Nil(t, cfg)
	})

	t.Run("invalid log-format is an ExitError with code 2", func(t *testing.T) {
		t.Parallel()
		out := &bytes.Buffer{}

		_, _, err := Parse([]string{"-log-format", "xml", "job.hcl"}, out)

		require.Error(t, err)
		exitErr, ok := err.(*ExitError)
		require.True(t, ok)
		assert.Equal(t, 2, exitErr.Code)
		assert.Contains(t, exitErr.Message, "invalid log-format")
	})

	t.Run("invalid log-level is an ExitError with code 2", func(t *testing.T) {
		t.Parallel()
		out := &bytes.Buffer{}

		_, _, err := Parse([]string{"-log-level", "verbose", "job.hcl"}, out)

		require.Error(t, err)
		exitErr, ok := err.(*ExitError)
		require.True(t, ok)
		assert.Equal(t, 2, exitErr.Code)
	})

	t.Run("invalid output format is rejected by app config", func(t *testing.T) {
		t.Parallel()
		out := &bytes.Buffer{}

		_, _, err := Parse([]string{"-output", "yaml", "job.hcl"}, out)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid output format")
	})

	t.Run("unknown flag is an ExitError", func(t *testing.T) {
		t.Parallel()
		out := &bytes.Buffer{}

		_, _, err := Parse([]string{"--bogus"}, out)

		require.Error(t, err)
		_, ok := err.(*ExitError)
		assert.True(t, ok)
	})

	t.Run("mixed-case flag values are normalized", func(t *testing.T) {
		t.Parallel()
		out := &bytes.Buffer{}

		cfg, _, err := Parse([]string{"-log-level", "DEBUG", "-log-format", "Text", "job.hcl"}, out)

		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
	})
}
