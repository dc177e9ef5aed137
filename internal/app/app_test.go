package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qgridlab/qcostgo/internal/estimator"
	"github.com/qgridlab/qcostgo/internal/hcl"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	t.Run("job path is required", func(t *testing.T) {
		t.Parallel()
		_, err := NewConfig(Config{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JobPath")
	})

	t.Run("defaults are applied", func(t *testing.T) {
		t.Parallel()
		cfg, err := NewConfig(Config{JobPath: "job.hcl", Workers: 0})

		require.NoError(t, err)
		assert.Equal(t, 1, cfg.Workers)
		assert.Equal(t, "text", cfg.OutputFormat)
	})

	t.Run("invalid output format is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := NewConfig(Config{JobPath: "job.hcl", OutputFormat: "yaml"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid output format")
	})
}

// writeJobDir writes the baseline job used by the app-level tests.
func writeJobDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	job := `
		profile {
			logical_qubits    = 100
			magic_state_count = 1000
			logical_depth     = 10000
		}
		budget { total = 0.01 }
		context { preset = "gate-ns-e4" }
		code "surface" "main" {
			distance = { min = 3, max = 7, step = 2 }
		}
		factory "tfactory" "t1" {
			rounds = [1, 2]
			copies = 1
		}
	`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.hcl"), []byte(job), 0644))
	return dir
}

func TestAppRun(t *testing.T) {
	t.Parallel()

	t.Run("json output renders the estimate", func(t *testing.T) {
		t.Parallel()
		cfg, err := NewConfig(Config{
			JobPath:      writeJobDir(t),
			LogLevel:     "error", // keep the output buffer free of log lines
			LogFormat:    "text",
			Workers:      4,
			OutputFormat: "json",
		})
		require.NoError(t, err)

		out := &bytes.Buffer{}
		a := NewApp(out, cfg, hcl.NewLoader())
		require.NoError(t, a.Run(context.Background()))

		var view struct {
			PhysicalQubits int64  `json:"physical_qubits"`
			RuntimeNS      int64  `json:"runtime_ns"`
			CodeDistance   int64  `json:"code_distance"`
			ContextName    string `json:"context_name"`
		}
		require.NoError(t, json.Unmarshal(out.Bytes(), &view))
		assert.Equal(t, int64(11722), view.PhysicalQubits)
		assert.Equal(t, (28 * time.Millisecond).Nanoseconds(), view.RuntimeNS)
		assert.Equal(t, int64(7), view.CodeDistance)
		assert.Equal(t, "gate-ns-e4", view.ContextName)
	})

	t.Run("text output names the winning configuration", func(t *testing.T) {
		t.Parallel()
		cfg, err := NewConfig(Config{
			JobPath:      writeJobDir(t),
			LogLevel:     "error",
			LogFormat:    "text",
			Workers:      2,
			OutputFormat: "text",
		})
		require.NoError(t, err)

		out := &bytes.Buffer{}
		a := NewApp(out, cfg, hcl.NewLoader())
		require.NoError(t, a.Run(context.Background()))

		text := out.String()
		assert.Contains(t, text, "Optimal configuration")
		assert.Contains(t, text, "surface.main[distance=7]")
		assert.Contains(t, text, "tfactory.t1[rounds=1 copies=1]")
		assert.Contains(t, text, "physical qubits:     11722")
	})

	t.Run("startup panics on a missing job path", func(t *testing.T) {
		t.Parallel()
		cfg, err := NewConfig(Config{JobPath: "/nonexistent/job/dir", LogLevel: "error"})
		require.NoError(t, err)

		assert.Panics(t, func() {
			NewApp(&bytes.Buffer{}, cfg, hcl.NewLoader())
		})
	})

	t.Run("accessors expose the loaded job", func(t *testing.T) {
		t.Parallel()
		cfg, err := NewConfig(Config{JobPath: writeJobDir(t), LogLevel: "error", Workers: 1})
		require.NoError(t, err)

		a := NewApp(&bytes.Buffer{}, cfg, hcl.NewLoader())

		require.NotNil(t, a.Job())
		assert.Equal(t, int64(100), a.Job().Profile.LogicalQubits)
		assert.Equal(t, 2, a.Registry().ModelTypes())
	})
}

func TestRender(t *testing.T) {
	t.Parallel()

	est := &estimator.Estimate{
		PhysicalQubits:       11722,
		Runtime:              28 * time.Millisecond,
		NumFactories:         1,
		CodeDistance:         7,
		CodeConfiguration:    "surface.main[distance=7]",
		FactoryConfiguration: "tfactory.t1[rounds=1 copies=1]",
		AchievedError:        3e-4,
		BudgetTotal:          0.01,
		ContextName:          "gate-ns-e4",
		Seq:                  4,
		CandidatesExamined:   6,
	}

	t.Run("json round-trips every field", func(t *testing.T) {
		t.Parallel()
		out := &bytes.Buffer{}
		a := &App{outW: out, config: &Config{OutputFormat: "json"}}

		require.NoError(t, a.render(est))

		var view estimateView
		require.NoError(t, json.Unmarshal(out.Bytes(), &view))
		assert.Equal(t, est.PhysicalQubits, view.PhysicalQubits)
		assert.Equal(t, est.Runtime.Nanoseconds(), view.RuntimeNS)
		assert.Equal(t, est.NumFactories, view.NumFactories)
		assert.Equal(t, est.Seq, view.Seq)
		assert.Equal(t, est.CandidatesExamined, view.CandidatesExamined)
	})

	t.Run("text lists the headline numbers", func(t *testing.T) {
		t.Parallel()
		out := &bytes.Buffer{}
		a := &App{outW: out, config: &Config{OutputFormat: "text"}}

		require.NoError(t, a.render(est))

		text := out.String()
		assert.Contains(t, text, "error budget 0.01")
		assert.Contains(t, text, "28ms")
		assert.Contains(t, text, "candidates examined: 6")
	})
}
