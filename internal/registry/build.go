package registry

import (
	"context"
	"fmt"

	"github.com/qgridlab/qcostgo/internal/config"
	"github.com/qgridlab/qcostgo/internal/ctxlog"
	"github.com/qgridlab/qcostgo/internal/query"
)

// BuildJob resolves a loaded job into the code query and the list of
// alternative factory-chain queries. A chain head is any factory block not
// referenced as another block's source; heads keep their declaration order
// so enumeration order, and with it the tie-break, is stable. Unknown model
// types, dangling source references and source cycles are all
// construction-time errors.
func (r *Registry) BuildJob(ctx context.Context, job *config.SearchJob) (*query.Query, []*query.Query, error) {
	logger := ctxlog.FromContext(ctx)

	if err := job.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid job: %w", err)
	}

	codeBuilder, err := r.builder(job.Code.Type)
	if err != nil {
		return nil, nil, fmt.Errorf("code block %s: %w", job.Code.Label(), err)
	}
	code, err := codeBuilder(job.Code)
	if err != nil {
		return nil, nil, fmt.Errorf("code block %s: %w", job.Code.Label(), err)
	}

	byName := make(map[string]*config.ModelBlock, len(job.Factories))
	referenced := make(map[string]bool)
	for _, f := range job.Factories {
		byName[f.Name] = f
	}
	for _, f := range job.Factories {
		if f.Source == "" {
			continue
		}
		if _, ok := byName[f.Source]; !ok {
			return nil, nil, fmt.Errorf("factory block %s: source %q does not name a factory block", f.Label(), f.Source)
		}
		referenced[f.Source] = true
	}

	leaves := make(map[string]*query.Query, len(job.Factories))
	for _, f := range job.Factories {
		b, err := r.builder(f.Type)
		if err != nil {
			return nil, nil, fmt.Errorf("factory block %s: %w", f.Label(), err)
		}
		leaf, err := b(f)
		if err != nil {
			return nil, nil, fmt.Errorf("factory block %s: %w", f.Label(), err)
		}
		leaves[f.Name] = leaf
	}

	var chains []*query.Query
	reached := make(map[string]bool, len(job.Factories))
	for _, f := range job.Factories {
		if referenced[f.Name] {
			continue // not a head, only feeds another factory
		}
		chain, err := r.resolveChain(f, byName, leaves, make(map[string]bool), reached)
		if err != nil {
			return nil, nil, err
		}
		chains = append(chains, chain)
	}
	if len(chains) == 0 {
		return nil, nil, fmt.Errorf("factory blocks form no chain head: every block is someone's source (cycle)")
	}
	for _, f := range job.Factories {
		if !reached[f.Name] {
			return nil, nil, fmt.Errorf("factory block %s: unreachable from any chain head (source cycle)", f.Label())
		}
	}

	logger.Debug("Job resolved into queries.", "code_cardinality", code.Cardinality(), "chains", len(chains))
	return code, chains, nil
}

// resolveChain composes a head block onto its transitive sources,
// innermost-source first, detecting reference cycles on the way down. Every
// block it consumes is recorded in reached so BuildJob can reject blocks no
// chain ever visits.
func (r *Registry) resolveChain(block *config.ModelBlock, byName map[string]*config.ModelBlock, leaves map[string]*query.Query, visiting, reached map[string]bool) (*query.Query, error) {
	if visiting[block.Name] {
		return nil, fmt.Errorf("factory block %s: source cycle detected", block.Label())
	}
	visiting[block.Name] = true
	reached[block.Name] = true

	q := leaves[block.Name]
	if block.Source == "" {
		return q, nil
	}
	inner, err := r.resolveChain(byName[block.Source], byName, leaves, visiting, reached)
	if err != nil {
		return nil, err
	}
	composed, err := query.Compose(q, inner)
	if err != nil {
		return nil, fmt.Errorf("factory block %s: %w", block.Label(), err)
	}
	return composed, nil
}
