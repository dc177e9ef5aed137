package query

import (
	"iter"
	"strings"

	"github.com/qgridlab/qcostgo/internal/phys"
	"github.com/qgridlab/qcostgo/internal/space"
)

// EvaluatedLevel pairs one level's chosen instance with its model result.
type EvaluatedLevel struct {
	Instance space.Instance
	Result   Result
}

// Candidate is one full assignment across every level of a query, innermost
// first, plus its position in the canonical enumeration order. Candidates
// are ephemeral: produced, inspected and discarded per search step.
type Candidate struct {
	// Seq is the zero-based index of this candidate in the canonical
	// sequential enumeration. It is the final tie-break key.
	Seq    int
	Levels []EvaluatedLevel
}

// Final is the outermost level's result, the output of the whole chain.
func (c Candidate) Final() Result {
	return c.Levels[len(c.Levels)-1].Result
}

// Outermost is the outermost level's instance.
func (c Candidate) Outermost() space.Instance {
	return c.Levels[len(c.Levels)-1].Instance
}

// TotalQubits sums the physical qubit footprint of every level in the chain.
func (c Candidate) TotalQubits() int64 {
	var n int64
	for _, lv := range c.Levels {
		n += lv.Result.PhysicalQubits
	}
	return n
}

// Infeasible reports whether any level of the chain is infeasible.
func (c Candidate) Infeasible() bool {
	for _, lv := range c.Levels {
		if lv.Result.Infeasible {
			return true
		}
	}
	return false
}

// Token renders the full configuration as a stable, reproducible string,
// innermost level first, e.g.
// "tfactory.l1[copies=2 rounds=1] -> tfactory.l2[copies=1 rounds=2]".
func (c Candidate) Token() string {
	parts := make([]string, len(c.Levels))
	for i, lv := range c.Levels {
		parts[i] = lv.Instance.String()
	}
	return strings.Join(parts, " -> ")
}

// Candidates streams every candidate of the query in canonical order paired
// with its sequence index. Enumeration nests the level products: for every
// inner candidate, every outer instance is paired, with evaluation running
// source-first so each level's result is computed once and shared across all
// outer combinations built on top of it. An infeasible inner result
// propagates outward without invoking the outer models; the candidate count
// is always exactly Cardinality().
func (q *Query) Candidates(pctx phys.Context) iter.Seq2[int, Candidate] {
	return func(yield func(int, Candidate) bool) {
		seq := 0
		prefix := make([]EvaluatedLevel, 0, len(q.levels))
		q.walk(pctx, 0, nil, prefix, &seq, yield)
	}
}

// walk recursively enumerates level li and deeper, threading the current
// level's result into the next as its source.
func (q *Query) walk(pctx phys.Context, li int, source *Result, prefix []EvaluatedLevel, seq *int, yield func(int, Candidate) bool) bool {
	lv := q.levels[li]
	for _, inst := range space.Enumerate(lv.spec) {
		var res Result
		if source != nil && source.Infeasible {
			res = Infeasible("upstream level infeasible: " + source.Reason)
		} else {
			res = lv.model(inst, pctx, source)
		}

		step := append(prefix, EvaluatedLevel{Instance: inst, Result: res})
		if li == len(q.levels)-1 {
			levels := make([]EvaluatedLevel, len(step))
			copy(levels, step)
			if !yield(*seq, Candidate{Seq: *seq, Levels: levels}) {
				return false
			}
			*seq++
			continue
		}
		if !q.walk(pctx, li+1, &res, step, seq, yield) {
			return false
		}
	}
	return true
}
