// Package surface implements the topological error-correcting code cost
// model: a surface code parameterized by a single odd distance d.
//
// The formulas follow the standard published scaling (Fowler, Mariantoni,
// Martinis, Cleland, "Surface codes: Towards practical large-scale quantum
// computation", 2012):
//
//	physical qubits per logical qubit = 2·d²
//	logical error rate per cycle      = A·(p/p_th)^((d+1)/2)
//
// where p is the worst physical gate error, p_th the code threshold and A
// the crossing prefactor. Both A and p_th are explicit, overridable
// parameters, as is the cycle-time formula, so refined models are value
// changes rather than code changes.
package surface

import (
	"fmt"
	"math"
	"time"

	"github.com/qgridlab/qcostgo/internal/config"
	"github.com/qgridlab/qcostgo/internal/phys"
	"github.com/qgridlab/qcostgo/internal/query"
	"github.com/qgridlab/qcostgo/internal/registry"
	"github.com/qgridlab/qcostgo/internal/space"
)

// TypeName is the model type job files refer to.
const TypeName = "surface"

// CycleTimeFunc computes the duration of one logical cycle (d rounds of
// syndrome extraction) for a given distance.
type CycleTimeFunc func(pctx phys.Context, distance int64) time.Duration

// Params are the designer-supplied constants of the model.
type Params struct {
	// Threshold is the physical error rate p_th below which increasing the
	// distance suppresses logical errors.
	Threshold float64
	// CrossingPrefactor is the multiplier A at the threshold crossing.
	CrossingPrefactor float64
	// CycleTime derives the logical cycle duration from the technology
	// context and the distance.
	CycleTime CycleTimeFunc
}

// DefaultParams returns the published defaults: a 1% threshold, a 0.03
// crossing prefactor, and a cycle of d syndrome-extraction rounds, each four
// two-qubit gates plus two measurement steps.
func DefaultParams() Params {
	return Params{
		Threshold:         1e-2,
		CrossingPrefactor: 0.03,
		CycleTime: func(pctx phys.Context, distance int64) time.Duration {
			round := 4*pctx.TwoQubitGateTime + 2*pctx.MeasurementTime
			return time.Duration(distance) * round
		},
	}
}

// New builds a code query searching the given distance field with the given
// parameters. Distances must be odd and at least 3.
func New(name string, distance space.Field, p Params) (*query.Query, error) {
	spec, err := space.NewSpec(name, distance)
	if err != nil {
		return nil, err
	}
	if err := checkDistances(spec); err != nil {
		return nil, err
	}
	return query.Leaf(spec, model(p), false)
}

func checkDistances(spec *space.Spec) error {
	for _, f := range spec.Fields() {
		if f.Domain == nil {
			if d := f.Default.Int(); d < 3 || d%2 == 0 {
				return &space.SchemaError{Msg: fmt.Sprintf("surface code distance must be odd and >= 3, got %d", d)}
			}
			continue
		}
		for v := range f.Domain.Values() {
			if d := v.Int(); d < 3 || d%2 == 0 {
				return &space.SchemaError{Msg: fmt.Sprintf("surface code distance must be odd and >= 3, got %d", d)}
			}
		}
	}
	return nil
}

// model evaluates one distance against the technology context. The code
// does not consume a source result.
func model(p Params) query.Model {
	return func(inst space.Instance, pctx phys.Context, _ *query.Result) query.Result {
		d := inst.Int("distance")
		physErr := pctx.WorstGateError()
		if physErr >= p.Threshold {
			return query.Infeasible(fmt.Sprintf("physical error rate %g is at or above the code threshold %g", physErr, p.Threshold))
		}
		return query.Result{
			PhysicalQubits:  2 * d * d,
			OutputErrorRate: p.CrossingPrefactor * math.Pow(physErr/p.Threshold, float64(d+1)/2),
			CycleTime:       p.CycleTime(pctx, d),
		}
	}
}

// Module registers the surface model builder.
type Module struct{}

// Register implements registry.Module.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterModel(TypeName, Build)
}

// Build is the registry builder: it reads the block's distance domain and
// optional parameter overrides.
func Build(block *config.ModelBlock) (*query.Query, error) {
	p := DefaultParams()
	var distance *space.Field

	for name, attr := range block.Attrs {
		switch name {
		case "distance":
			f, err := registry.IntField(name, attr)
			if err != nil {
				return nil, err
			}
			distance = &f
		case "threshold":
			v, err := registry.FloatParam(name, attr)
			if err != nil {
				return nil, err
			}
			p.Threshold = v
		case "crossing_prefactor":
			v, err := registry.FloatParam(name, attr)
			if err != nil {
				return nil, err
			}
			p.CrossingPrefactor = v
		default:
			return nil, fmt.Errorf("surface model does not recognize attribute %q", name)
		}
	}
	if distance == nil {
		return nil, fmt.Errorf("surface model requires a distance attribute")
	}
	return New(block.Label(), *distance, p)
}
