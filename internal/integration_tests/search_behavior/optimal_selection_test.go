package integration_tests

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qgridlab/qcostgo/internal/testutil"
)

// Test for: a full HCL job resolves to the cheapest feasible configuration.
func TestSearch_SelectsCheapestFeasibleConfiguration(t *testing.T) {
	t.Parallel()

	// Act
	result := testutil.RunIntegrationTest(t, testutil.DefaultJobFiles())

	// Assert
	require.NoError(t, result.Err)
	require.NotNil(t, result.Estimate)

	est := result.Estimate
	// Distances 3 and 5 blow the logic share of a 1% budget; distance 7 with
	// a single one-round factory is the cheapest survivor.
	assert.Equal(t, int64(7), est.CodeDistance)
	assert.Equal(t, int64(11722), est.PhysicalQubits)
	assert.Equal(t, int64(1), est.NumFactories)
	assert.Equal(t, 28*time.Millisecond, est.Runtime)
	assert.Equal(t, "surface.main[distance=7]", est.CodeConfiguration)
	assert.Equal(t, "tfactory.t1[rounds=1 copies=1]", est.FactoryConfiguration)
	assert.Equal(t, "gate-ns-e4", est.ContextName)
	assert.Equal(t, int64(6), est.CandidatesExamined)
	assert.Less(t, est.AchievedError, est.BudgetTotal)
}

// Test for: repeated runs of the same job report the identical winner.
func TestSearch_IsReproducible(t *testing.T) {
	t.Parallel()

	first := testutil.RunIntegrationTest(t, testutil.DefaultJobFiles())
	require.NoError(t, first.Err)

	for i := 0; i < 3; i++ {
		again := testutil.RunIntegrationTest(t, testutil.DefaultJobFiles())
		require.NoError(t, again.Err)
		assert.Equal(t, first.Estimate, again.Estimate, "run %d diverged", i)
	}
}
