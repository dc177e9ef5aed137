package estimator

import (
	"context"
	"fmt"
	"sync"

	"github.com/qgridlab/qcostgo/internal/phys"
	"github.com/qgridlab/qcostgo/internal/query"
)

// Estimator drives the configuration search. Workers controls the size of
// the evaluation pool; Synthesis parameterizes the rotation synthesis cost.
type Estimator struct {
	Workers   int
	Synthesis SynthesisCoefficients
}

// New builds an Estimator with the given worker count (minimum one) and the
// default synthesis coefficients.
func New(workers int) *Estimator {
	if workers < 1 {
		workers = 1
	}
	return &Estimator{Workers: workers, Synthesis: DefaultSynthesis()}
}

// task is one candidate handed to the worker pool, tagged with its global
// sequence index across all chains.
type task struct {
	seq  int
	cand Candidate
}

// best is a worker-local or merged optimum.
type best struct {
	seq  int
	cand Candidate
	m    metrics
}

// Estimate searches every (code instance, factory-chain candidate)
// combination across all supplied chains and returns the optimal feasible
// configuration. Chains are tried in the order given; the global sequence
// index runs across them, so the result is independent of worker count and
// scheduling.
func (e *Estimator) Estimate(ctx context.Context, p Profile, pctx phys.Context, b Budget, code *query.Query, chains []*query.Query) (*Estimate, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := pctx.Validate(); err != nil {
		return nil, err
	}
	if err := b.validate(); err != nil {
		return nil, err
	}
	if code == nil {
		return nil, fmt.Errorf("estimate requires a code query")
	}
	if len(chains) == 0 {
		return nil, fmt.Errorf("estimate requires at least one factory chain")
	}

	totalMagic, err := p.TotalMagicStates(b.Rotations, e.Synthesis)
	if err != nil {
		return nil, err
	}
	if totalMagic == 0 {
		return nil, &InvalidResourceProfileError{
			Field:  "magic_state_count",
			Reason: "profile consumes no magic states, but factory chains were supplied",
		}
	}

	tasks := make(chan task, e.Workers)
	bests := make([]*best, e.Workers)
	var wg sync.WaitGroup

	for w := 0; w < e.Workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			var local *best
			for t := range tasks {
				m, ok, _ := evaluate(p, b, totalMagic, t.cand)
				if !ok {
					continue
				}
				if local == nil || better(m, t.seq, local.m, local.seq) {
					local = &best{seq: t.seq, cand: t.cand, m: m}
				}
			}
			bests[w] = local
		}(w)
	}

	// Producer: one canonical pass over chains in declaration order, code
	// instances outer, chain candidates inner, a single running index.
	var examined int64
	var produceErr error
	seq := 0
produce:
	for _, chain := range chains {
		for pair := range query.Cross(pctx, code, chain) {
			if ctxErr := ctx.Err(); ctxErr != nil {
				produceErr = ctxErr
				break produce
			}
			tasks <- task{seq: seq, cand: Candidate{Code: pair.Left, Chain: pair.Right}}
			seq++
			examined++
		}
	}
	close(tasks)
	wg.Wait()

	if produceErr != nil {
		return nil, produceErr
	}

	// Deterministic merge: fold worker-local optima with the same total
	// order used inside each worker.
	var winner *best
	for _, lb := range bests {
		if lb == nil {
			continue
		}
		if winner == nil || better(lb.m, lb.seq, winner.m, winner.seq) {
			winner = lb
		}
	}
	if winner == nil {
		return nil, &NoFeasibleConfigurationError{Budget: b.Total, Candidates: examined}
	}

	est := newEstimate(winner.cand, winner.m, b, pctx)
	est.Seq = winner.seq
	est.CandidatesExamined = examined
	return est, nil
}

// EstimateCustom evaluates one explicitly selected configuration, bypassing
// the search. It shares the exact metric computation with Estimate, so both
// entry points report identical numbers for the same configuration. An
// infeasible configuration is a NoFeasibleConfigurationError over a
// candidate set of one.
func (e *Estimator) EstimateCustom(p Profile, cand Candidate, pctx phys.Context, b Budget) (*Estimate, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := pctx.Validate(); err != nil {
		return nil, err
	}
	if err := b.validate(); err != nil {
		return nil, err
	}
	if len(cand.Code.Levels) == 0 {
		return nil, fmt.Errorf("custom estimate requires an evaluated code candidate")
	}
	if len(cand.Chain.Levels) == 0 {
		return nil, fmt.Errorf("custom estimate requires an evaluated factory-chain candidate")
	}

	totalMagic, err := p.TotalMagicStates(b.Rotations, e.Synthesis)
	if err != nil {
		return nil, err
	}

	m, ok, _ := evaluate(p, b, totalMagic, cand)
	if !ok {
		return nil, &NoFeasibleConfigurationError{Budget: b.Total, Candidates: 1}
	}

	est := newEstimate(cand, m, b, pctx)
	est.Seq = -1
	est.CandidatesExamined = 1
	return est, nil
}

// newEstimate assembles the output record from a winning candidate. Code
// models expose their tunable parameter under the conventional field name
// "distance"; models without one report a zero distance.
func newEstimate(cand Candidate, m metrics, b Budget, pctx phys.Context) *Estimate {
	var distance int64
	if v, ok := cand.Code.Outermost().Lookup("distance"); ok {
		distance = v.Int()
	}
	return &Estimate{
		PhysicalQubits:       m.physicalQubits,
		Runtime:              m.runtime,
		NumFactories:         m.numFactories,
		CodeDistance:         distance,
		CodeConfiguration:    cand.Code.Token(),
		FactoryConfiguration: cand.Chain.Token(),
		AchievedError:        m.achievedError,
		BudgetTotal:          b.Total,
		ContextName:          pctx.Name,
	}
}
