package estimator

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileValidate(t *testing.T) {
	t.Parallel()

	t.Run("accepts a complete profile", func(t *testing.T) {
		t.Parallel()
		p := Profile{LogicalQubits: 100, MagicStateCount: 1000, RotationCount: 10, LogicalDepth: 10000}
		require.NoError(t, p.Validate())
	})

	t.Run("accepts zero magic states and rotations", func(t *testing.T) {
		t.Parallel()
		p := Profile{LogicalQubits: 1, LogicalDepth: 1}
		require.NoError(t, p.Validate())
	})

	t.Run("rejects missing qubit count", func(t *testing.T) {
		t.Parallel()
		p := Profile{LogicalDepth: 100}

		err := p.Validate()

		var profErr *InvalidResourceProfileError
		require.ErrorAs(t, err, &profErr)
		assert.Equal(t, "logical_qubits", profErr.Field)
	})

	t.Run("rejects missing depth", func(t *testing.T) {
		t.Parallel()
		p := Profile{LogicalQubits: 10}

		err := p.Validate()

		var profErr *InvalidResourceProfileError
		require.ErrorAs(t, err, &profErr)
		assert.Equal(t, "logical_depth", profErr.Field)
	})

	t.Run("rejects negative counts", func(t *testing.T) {
		t.Parallel()
		for _, tc := range []struct {
			field   string
			profile Profile
		}{
			{"magic_state_count", Profile{LogicalQubits: 1, LogicalDepth: 1, MagicStateCount: -1}},
			{"rotation_count", Profile{LogicalQubits: 1, LogicalDepth: 1, RotationCount: -5}},
		} {
			err := tc.profile.Validate()
			var profErr *InvalidResourceProfileError
			require.ErrorAs(t, err, &profErr)
			assert.Equal(t, tc.field, profErr.Field)
		}
	})
}

func TestTotalMagicStates(t *testing.T) {
	t.Parallel()

	t.Run("rotation-free profile passes magic count through", func(t *testing.T) {
		t.Parallel()
		p := Profile{LogicalQubits: 1, LogicalDepth: 1, MagicStateCount: 1234}

		total, err := p.TotalMagicStates(0, DefaultSynthesis())

		require.NoError(t, err)
		assert.Equal(t, int64(1234), total)
	})

	t.Run("rotations add a per-rotation synthesis cost", func(t *testing.T) {
		t.Parallel()
		p := Profile{LogicalQubits: 1, LogicalDepth: 1, MagicStateCount: 100, RotationCount: 10}

		total, err := p.TotalMagicStates(1e-3, DefaultSynthesis())

		require.NoError(t, err)
		// ceil(0.53*log2(10/1e-3) + 5.3) = ceil(0.53*13.287 + 5.3) = ceil(12.34) = 13
		assert.Equal(t, int64(100+10*13), total)
	})

	t.Run("tighter rotation budgets cost more states", func(t *testing.T) {
		t.Parallel()
		p := Profile{LogicalQubits: 1, LogicalDepth: 1, RotationCount: 100}

		loose, err := p.TotalMagicStates(1e-2, DefaultSynthesis())
		require.NoError(t, err)
		tight, err := p.TotalMagicStates(1e-9, DefaultSynthesis())
		require.NoError(t, err)

		assert.Greater(t, tight, loose)
	})

	t.Run("rotations with a zero budget share is an error", func(t *testing.T) {
		t.Parallel()
		p := Profile{LogicalQubits: 1, LogicalDepth: 1, RotationCount: 5}

		_, err := p.TotalMagicStates(0, DefaultSynthesis())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "rotation error budget is zero")
	})
}

func TestBudget(t *testing.T) {
	t.Parallel()

	t.Run("NewBudget splits into equal thirds", func(t *testing.T) {
		t.Parallel()
		b, err := NewBudget(0.03)

		require.NoError(t, err)
		assert.InDelta(t, 0.01, b.Logic, 1e-12)
		assert.InDelta(t, 0.01, b.Rotations, 1e-12)
		assert.InDelta(t, 0.01, b.Magic, 1e-12)
		assert.Equal(t, 0.03, b.Total)
	})

	t.Run("totals outside (0,1) are rejected", func(t *testing.T) {
		t.Parallel()
		for _, total := range []float64{0, -0.5, 1, 1.5} {
			_, err := NewBudget(total)
			require.Error(t, err, "total %g should be rejected", total)
		}
	})

	t.Run("explicit split keeps the given shares", func(t *testing.T) {
		t.Parallel()
		b, err := NewSplitBudget(0.01, 0.005, 0, 0.005)

		require.NoError(t, err)
		assert.Equal(t, 0.005, b.Logic)
		assert.Equal(t, 0.0, b.Rotations)
		assert.Equal(t, 0.005, b.Magic)
	})

	t.Run("split components must not exceed the total", func(t *testing.T) {
		t.Parallel()
		_, err := NewSplitBudget(0.01, 0.009, 0.009, 0.009)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "exceeding the total")
	})

	t.Run("negative components are rejected", func(t *testing.T) {
		t.Parallel()
		_, err := NewSplitBudget(0.01, -0.001, 0, 0)

		require.Error(t, err)
	})
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	profErr := &InvalidResourceProfileError{Field: "logical_qubits", Reason: "must be positive, got 0"}
	assert.Contains(t, profErr.Error(), "logical_qubits")

	noFeasible := &NoFeasibleConfigurationError{Budget: 0.01, Candidates: 42}
	assert.Contains(t, noFeasible.Error(), "42")
	assert.Contains(t, noFeasible.Error(), "0.01")

	// Both types travel intact through wrapping.
	wrapped := fmt.Errorf("estimation failed: %w", noFeasible)
	var target *NoFeasibleConfigurationError
	require.True(t, errors.As(wrapped, &target))
	assert.Equal(t, int64(42), target.Candidates)
}
