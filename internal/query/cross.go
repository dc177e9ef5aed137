package query

import (
	"iter"

	"github.com/qgridlab/qcostgo/internal/phys"
)

// Pair is one element of the cross product of two independent candidate
// streams. Neither side feeds the other; Seq is the pair's position in the
// canonical order (left stream outer, right stream inner).
type Pair struct {
	Seq   int
	Left  Candidate
	Right Candidate
}

// Cross streams the full cross product of two queries' candidate sets with a
// single global sequence index. It is how the estimator pairs code
// candidates with factory-chain candidates: the code model does not consume
// the factory output, so source-fed composition would be the wrong tool.
// The right stream is materialized once (it is re-traversed per left
// candidate); the left stream stays lazy.
func Cross(pctx phys.Context, left, right *Query) iter.Seq[Pair] {
	rights := make([]Candidate, 0, right.Cardinality())
	for _, c := range right.Candidates(pctx) {
		rights = append(rights, c)
	}

	return func(yield func(Pair) bool) {
		seq := 0
		for _, lc := range left.Candidates(pctx) {
			for _, rc := range rights {
				if !yield(Pair{Seq: seq, Left: lc, Right: rc}) {
					return
				}
				seq++
			}
		}
	}
}
