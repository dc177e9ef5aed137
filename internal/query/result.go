package query

import (
	"time"

	"github.com/qgridlab/qcostgo/internal/phys"
	"github.com/qgridlab/qcostgo/internal/space"
)

// Result is the derived output of evaluating one cost model against one
// instance: never enumerated, always computed.
type Result struct {
	// PhysicalQubits consumed by this level of the configuration.
	PhysicalQubits int64
	// OutputErrorRate is the error rate of what this level produces: the
	// per-qubit per-cycle logical error rate for a code, the output state
	// error for a factory.
	OutputErrorRate float64
	// CycleTime is the duration of one production cycle of this level.
	CycleTime time.Duration
	// ProducedPerCycle is the number of output states per cycle. Zero for
	// models that do not produce states (codes).
	ProducedPerCycle float64

	// Infeasible marks a physically impossible configuration. Infeasible
	// results carry a Reason and are filtered, not raised.
	Infeasible bool
	Reason     string
}

// Infeasible builds the sentinel result for a configuration that cannot be
// realized (for example a non-contracting distillation round).
func Infeasible(reason string) Result {
	return Result{Infeasible: true, Reason: reason}
}

// Model is a pure cost-model function. It derives a Result from one
// instance, the shared technology context, and (for source-consuming models)
// the already-evaluated result of the inner query. Models must be
// side-effect free and deterministic; infeasibility is returned, not raised.
type Model func(inst space.Instance, pctx phys.Context, source *Result) Result
