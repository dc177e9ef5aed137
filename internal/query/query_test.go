package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qgridlab/qcostgo/internal/phys"
	"github.com/qgridlab/qcostgo/internal/space"
)

func testContext(t *testing.T) phys.Context {
	t.Helper()
	pctx, err := phys.Preset("gate-ns-e3")
	require.NoError(t, err)
	return pctx
}

// identityModel records the instance's "x" value in the result so tests can
// observe which instance produced which result.
func identityModel(inst space.Instance, _ phys.Context, _ *Result) Result {
	return Result{
		PhysicalQubits:  inst.Int("x"),
		OutputErrorRate: float64(inst.Int("x")),
		CycleTime:       time.Microsecond,
	}
}

// halvingModel consumes its source and halves the incoming error rate.
func halvingModel(inst space.Instance, _ phys.Context, source *Result) Result {
	in := 1.0
	if source != nil {
		in = source.OutputErrorRate
	}
	return Result{
		PhysicalQubits:  inst.Int("x"),
		OutputErrorRate: in / 2,
		CycleTime:       time.Microsecond,
	}
}

func mustLeaf(t *testing.T, name string, vals []int64, model Model, consumesSource bool) *Query {
	t.Helper()
	members := make([]space.Value, len(vals))
	for i, v := range vals {
		members[i] = space.IntVal(v)
	}
	spec, err := space.NewSpec(name, space.Var("x", space.MustExplicit(members...)))
	require.NoError(t, err)
	q, err := Leaf(spec, model, consumesSource)
	require.NoError(t, err)
	return q
}

func TestLeaf(t *testing.T) {
	t.Run("one candidate per instance", func(t *testing.T) {
		q := mustLeaf(t, "leaf", []int64{1, 2, 3}, identityModel, false)
		assert.Equal(t, 3, q.Cardinality())
		assert.Equal(t, 1, q.Depth())

		var qubits []int64
		for seq, c := range q.Candidates(testContext(t)) {
			assert.Equal(t, seq, c.Seq)
			require.Len(t, c.Levels, 1)
			qubits = append(qubits, c.Final().PhysicalQubits)
		}
		assert.Equal(t, []int64{1, 2, 3}, qubits)
	})

	t.Run("nil spec or model is a schema error", func(t *testing.T) {
		_, err := Leaf(nil, identityModel, false)
		var schemaErr *space.SchemaError
		require.ErrorAs(t, err, &schemaErr)

		spec, err := space.NewSpec("s", space.Fixed("x", space.IntVal(1)))
		require.NoError(t, err)
		_, err = Leaf(spec, nil, false)
		require.ErrorAs(t, err, &schemaErr)
	})
}

func TestCompose(t *testing.T) {
	t.Run("cardinality is the product", func(t *testing.T) {
		outer := mustLeaf(t, "outer", []int64{1, 2, 3}, halvingModel, true)
		inner := mustLeaf(t, "inner", []int64{10, 20, 30, 40}, identityModel, false)

		q, err := Compose(outer, inner)
		require.NoError(t, err)
		assert.Equal(t, 12, q.Cardinality())
		assert.Equal(t, 2, q.Depth())

		count := 0
		for _, c := range q.Candidates(testContext(t)) {
			require.Len(t, c.Levels, 2)
			count++
		}
		assert.Equal(t, 12, count)
	})

	t.Run("every outer instance is paired with every inner candidate", func(t *testing.T) {
		outer := mustLeaf(t, "outer", []int64{1, 2}, halvingModel, true)
		inner := mustLeaf(t, "inner", []int64{10, 20}, identityModel, false)
		q, err := Compose(outer, inner)
		require.NoError(t, err)

		var pairs [][2]int64
		for _, c := range q.Candidates(testContext(t)) {
			pairs = append(pairs, [2]int64{c.Levels[0].Instance.Int("x"), c.Levels[1].Instance.Int("x")})
		}
		// Inner varies slowest: for every inner candidate, every outer instance.
		assert.Equal(t, [][2]int64{{10, 1}, {10, 2}, {20, 1}, {20, 2}}, pairs)
	})

	t.Run("source result feeds the outer evaluation", func(t *testing.T) {
		outer := mustLeaf(t, "outer", []int64{7}, halvingModel, true)
		inner := mustLeaf(t, "inner", []int64{4}, identityModel, false)
		q, err := Compose(outer, inner)
		require.NoError(t, err)

		for _, c := range q.Candidates(testContext(t)) {
			assert.Equal(t, 4.0, c.Levels[0].Result.OutputErrorRate)
			assert.Equal(t, 2.0, c.Final().OutputErrorRate)
		}
	})

	t.Run("associativity, including order", func(t *testing.T) {
		a := mustLeaf(t, "a", []int64{1, 2}, halvingModel, true)
		b := mustLeaf(t, "b", []int64{3, 4, 5}, halvingModel, true)
		c := mustLeaf(t, "c", []int64{6, 7}, identityModel, false)

		ab, err := Compose(a, b)
		require.NoError(t, err)
		leftAssoc, err := Compose(ab, c)
		require.NoError(t, err)

		bc, err := Compose(b, c)
		require.NoError(t, err)
		rightAssoc, err := Compose(a, bc)
		require.NoError(t, err)

		require.Equal(t, leftAssoc.Cardinality(), rightAssoc.Cardinality())
		assert.Equal(t, 12, leftAssoc.Cardinality())

		var leftTokens, rightTokens []string
		for _, cand := range leftAssoc.Candidates(testContext(t)) {
			leftTokens = append(leftTokens, cand.Token())
		}
		for _, cand := range rightAssoc.Candidates(testContext(t)) {
			rightTokens = append(rightTokens, cand.Token())
		}
		assert.Equal(t, leftTokens, rightTokens)
	})

	t.Run("outer that ignores sources cannot be composed", func(t *testing.T) {
		outer := mustLeaf(t, "code", []int64{1}, identityModel, false)
		inner := mustLeaf(t, "factory", []int64{2}, identityModel, false)

		_, err := Compose(outer, inner)
		var schemaErr *space.SchemaError
		require.ErrorAs(t, err, &schemaErr)
		assert.ErrorContains(t, err, "does not consume a source")
	})

	t.Run("infeasible inner skips outer evaluation but keeps cardinality", func(t *testing.T) {
		badInner := mustLeaf(t, "inner", []int64{1, 2}, func(inst space.Instance, _ phys.Context, _ *Result) Result {
			if inst.Int("x") == 2 {
				return Infeasible("production rate is zero")
			}
			return Result{OutputErrorRate: 0.5}
		}, false)

		outerCalls := 0
		outer := mustLeaf(t, "outer", []int64{10}, func(inst space.Instance, pctx phys.Context, source *Result) Result {
			outerCalls++
			return halvingModel(inst, pctx, source)
		}, true)

		q, err := Compose(outer, badInner)
		require.NoError(t, err)

		var feasible, infeasible int
		for _, c := range q.Candidates(testContext(t)) {
			if c.Infeasible() {
				infeasible++
				assert.Contains(t, c.Final().Reason, "upstream level infeasible")
			} else {
				feasible++
			}
		}
		assert.Equal(t, 1, feasible)
		assert.Equal(t, 1, infeasible)
		assert.Equal(t, 1, outerCalls, "outer model must not run on infeasible sources")
	})
}

func TestCross(t *testing.T) {
	pctx := testContext(t)
	left := mustLeaf(t, "code", []int64{1, 2, 3}, identityModel, false)
	right := mustLeaf(t, "chain", []int64{10, 20}, identityModel, false)

	t.Run("full product with global sequence", func(t *testing.T) {
		var pairs [][2]int64
		prev := -1
		for p := range Cross(pctx, left, right) {
			require.Equal(t, prev+1, p.Seq)
			prev = p.Seq
			pairs = append(pairs, [2]int64{p.Left.Final().PhysicalQubits, p.Right.Final().PhysicalQubits})
		}
		assert.Equal(t, [][2]int64{
			{1, 10}, {1, 20},
			{2, 10}, {2, 20},
			{3, 10}, {3, 20},
		}, pairs)
	})

	t.Run("early break stops the stream", func(t *testing.T) {
		count := 0
		for range Cross(pctx, left, right) {
			count++
			if count == 2 {
				break
			}
		}
		assert.Equal(t, 2, count)
	})
}

func TestCandidateAccessors(t *testing.T) {
	pctx := testContext(t)
	outer := mustLeaf(t, "f.outer", []int64{5}, halvingModel, true)
	inner := mustLeaf(t, "f.inner", []int64{3}, identityModel, false)
	q, err := Compose(outer, inner)
	require.NoError(t, err)

	for _, c := range q.Candidates(pctx) {
		assert.Equal(t, int64(8), c.TotalQubits())
		assert.Equal(t, int64(5), c.Outermost().Int("x"))
		assert.Equal(t, "f.inner[x=3] -> f.outer[x=5]", c.Token())
		assert.False(t, c.Infeasible())
	}
}
