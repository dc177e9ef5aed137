package estimator

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/qgridlab/qcostgo/internal/query"
)

// Candidate is one fully specified configuration: a code candidate paired
// with a factory-chain candidate. It is what the search selects and what
// EstimateCustom accepts directly.
type Candidate struct {
	Code  query.Candidate
	Chain query.Candidate
}

// metrics holds the derived figures of one feasible candidate.
type metrics struct {
	physicalQubits int64
	runtime        time.Duration
	numFactories   int64
	achievedError  float64
}

// evaluate runs the feasibility filter and cost computation for one
// candidate. It is the single metric path shared by the search and by
// EstimateCustom, so both produce identical numbers for the same
// configuration. The boolean reports feasibility; infeasibility is an
// outcome, not an error.
func evaluate(p Profile, b Budget, totalMagic int64, cand Candidate) (metrics, bool, string) {
	if cand.Code.Infeasible() {
		return metrics{}, false, "code configuration infeasible: " + cand.Code.Final().Reason
	}
	if cand.Chain.Infeasible() {
		return metrics{}, false, "factory chain infeasible: " + chainReason(cand.Chain)
	}

	code := cand.Code.Final()
	chain := cand.Chain.Final()

	// Total logical failure probability contributed by the code: one
	// per-cycle error rate per logical qubit per cycle.
	codeError := code.OutputErrorRate * float64(p.LogicalQubits) * float64(p.LogicalDepth)
	if codeError > b.Logic {
		return metrics{}, false, "code error exceeds logic budget"
	}

	// Every consumed magic state fails independently with the chain's
	// output error rate.
	magicError := chain.OutputErrorRate * float64(totalMagic)
	if magicError > b.Magic {
		return metrics{}, false, "factory output error exceeds magic budget"
	}

	if chain.ProducedPerCycle <= 0 || chain.CycleTime <= 0 {
		return metrics{}, false, "factory production rate is zero"
	}

	runtime := time.Duration(p.LogicalDepth) * code.CycleTime
	producedPerFactory := chain.ProducedPerCycle * float64(runtime) / float64(chain.CycleTime)
	if producedPerFactory <= 0 {
		return metrics{}, false, "factory produces nothing within the algorithm runtime"
	}
	numFactories := int64(math.Ceil(float64(totalMagic) / producedPerFactory))

	rotationError := 0.0
	if p.RotationCount > 0 {
		// Synthesis consumes its whole budget share by construction of the
		// per-rotation T count.
		rotationError = b.Rotations
	}

	return metrics{
		physicalQubits: code.PhysicalQubits*p.LogicalQubits + cand.Chain.TotalQubits()*numFactories,
		runtime:        runtime,
		numFactories:   numFactories,
		achievedError:  floats.Sum([]float64{codeError, magicError, rotationError}),
	}, true, ""
}

// chainReason surfaces the innermost infeasibility reason of a chain.
func chainReason(c query.Candidate) string {
	for _, lv := range c.Levels {
		if lv.Result.Infeasible {
			return lv.Result.Reason
		}
	}
	return c.Final().Reason
}

// better reports whether a beats b under the selection objective: minimum
// physical qubits, tie-break by minimum runtime, final tie-break by lowest
// canonical sequence index. The last rule makes the parallel reduction
// independent of evaluation order.
func better(aM metrics, aSeq int, bM metrics, bSeq int) bool {
	if aM.physicalQubits != bM.physicalQubits {
		return aM.physicalQubits < bM.physicalQubits
	}
	if aM.runtime != bM.runtime {
		return aM.runtime < bM.runtime
	}
	return aSeq < bSeq
}
