// Package tfactory implements the round-based magic-state factory cost
// model: a bank of 15-to-1 distillation modules that turn noisy T states
// into purified ones over one or more sequential rounds.
//
// Each round applies the Bravyi-Kitaev 15-to-1 error relation
//
//	e_out = C·e_in^k      (defaults C = 35, k = 3)
//
// to the incoming state error. The raw input error is the technology
// context's T-gate error for a leaf factory, or the source factory's output
// error when chained through query composition; chains of arbitrary depth
// work uniformly, there is no special depth-two handling. All constants are
// explicit, overridable parameters.
package tfactory

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
const TypeName = "tfactory"

// Params are the designer-supplied constants of the model.
type Params struct {
	// DistillationPrefactor and DistillationExponent parameterize the
	// per-round error relation e_out = prefactor·e_in^exponent.
	DistillationPrefactor float64
	DistillationExponent  float64
	// QubitsPerModule is the physical footprint of one 15-to-1 unit. The
	// default assumes the unit's 31 qubits encoded at distance 31, about
	// 2·31² physical qubits; deployments with a fixed layout override it.
	QubitsPerModule int64
	// CyclesPerRound is how many elementary factory steps one round takes.
	CyclesPerRound int64
}

// DefaultParams returns the documented defaults.
func DefaultParams() Params {
	return Params{
		DistillationPrefactor: 35,
		DistillationExponent:  3,
		QubitsPerModule:       2 * 31 * 31,
		CyclesPerRound:        10,
	}
}

// New builds a factory query over the given rounds and copies fields.
func New(name string, rounds, copies space.Field, p Params) (*query.Query, error) {
	spec, err := space.NewSpec(name, rounds, copies)
	if err != nil {
		return nil, err
	}
	return query.Leaf(spec, model(p), true)
}

// model evaluates one (rounds, copies) configuration. It consumes the
// source result as its raw input quality when composed.
func model(p Params) query.Model {
	return func(inst space.Instance, pctx phys.Context, source *query.Result) query.Result {
		rounds := inst.Int("rounds")
		copies := inst.Int("copies")
		if rounds < 1 || copies < 1 {
			return query.Infeasible(fmt.Sprintf("factory needs at least one round and one copy, got rounds=%d copies=%d", rounds, copies))
		}

		in := pctx.TGateError
		if source != nil {
			in = source.OutputErrorRate
		}

		out := in
		for r := int64(0); r < rounds; r++ {
			// The relation only purifies while prefactor·e^(k-1) < 1.
			if p.DistillationPrefactor*math.Pow(out, p.DistillationExponent-1) >= 1 {
				return query.Infeasible(fmt.Sprintf("distillation does not contract at input error %g", out))
			}
			out = p.DistillationPrefactor * math.Pow(out, p.DistillationExponent)
		}

		roundTime := time.Duration(p.CyclesPerRound) * (pctx.TwoQubitGateTime + pctx.MeasurementTime)
		return query.Result{
			// Rounds are pipelined: every round stage holds its own bank of
			// modules.
			PhysicalQubits:   copies * rounds * p.QubitsPerModule,
			OutputErrorRate:  out,
			CycleTime:        time.Duration(rounds) * roundTime,
			ProducedPerCycle: float64(copies),
		}
	}
}

// Module registers the tfactory model builder.
type Module struct{}

// Register implements registry.Module.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterModel(TypeName, Build)
}

// Build is the registry builder: it reads the rounds/copies domains and
// optional parameter overrides.
func Build(block *config.ModelBlock) (*query.Query, error) {
	p := DefaultParams()
	var rounds, copies *space.Field

	for name, attr := range block.Attrs {
		switch name {
		case "rounds":
			f, err := registry.IntField(name, attr)
			if err != nil {
				return nil, err
			}
			rounds = &f
		case "copies":
			f, err := registry.IntField(name, attr)
			if err != nil {
				return nil, err
			}
			copies = &f
		case "distillation_prefactor":
			v, err := registry.FloatParam(name, attr)
			if err != nil {
				return nil, err
			}
			p.DistillationPrefactor = v
		case "distillation_exponent":
			v, err := registry.FloatParam(name, attr)
			if err != nil {
				return nil, err
			}
			p.DistillationExponent = v
		case "qubits_per_module":
			v, err := registry.FloatParam(name, attr)
			if err != nil {
				return nil, err
			}
			p.QubitsPerModule = int64(v)
		case "cycles_per_round":
			v, err := registry.FloatParam(name, attr)
			if err != nil {
				return nil, err
			}
			p.CyclesPerRound = int64(v)
		default:
			return nil, fmt.Errorf("tfactory model does not recognize attribute %q", name)
		}
	}
	if rounds == nil {
		return nil, fmt.Errorf("tfactory model requires a rounds attribute")
	}
	if copies == nil {
		return nil, fmt.Errorf("tfactory model requires a copies attribute")
	}
	return New(block.Label(), *rounds, *copies, p)
}
