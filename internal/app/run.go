package app

import (
	"context"
	"fmt"

	"github.com/qgridlab/qcostgo/internal/config"
	"github.com/qgridlab/qcostgo/internal/ctxlog"
	"github.com/qgridlab/qcostgo/internal/estimator"
	"github.com/qgridlab/qcostgo/internal/phys"
)

// Run executes the estimation and renders the winning configuration to the
// application's output writer.
func (a *App) Run(ctx context.Context) error {
	est, err := a.RunJob(ctx)
	if err != nil {
		return err
	}
	return a.render(est)
}

// RunJob executes the estimation and returns the raw Estimate. Tests and
// embedding callers use this to inspect the result directly.
func (a *App) RunJob(ctx context.Context) (*estimator.Estimate, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App run started.")

	pctx, err := a.technologyContext()
	if err != nil {
		return nil, err
	}

	profile := estimator.Profile{
		LogicalQubits:   a.job.Profile.LogicalQubits,
		MagicStateCount: a.job.Profile.MagicStateCount,
		RotationCount:   a.job.Profile.RotationCount,
		LogicalDepth:    a.job.Profile.LogicalDepth,
	}

	budget, err := a.budget()
	if err != nil {
		return nil, err
	}

	a.logger.Info("Starting configuration search.",
		"context", pctx.Name,
		"budget", budget.Total,
		"code_cardinality", a.code.Cardinality(),
		"chains", len(a.chains),
		"workers", a.config.Workers,
	)

	e := estimator.New(a.config.Workers)
	est, err := e.Estimate(ctx, profile, pctx, budget, a.code, a.chains)
	if err != nil {
		return nil, fmt.Errorf("estimation failed: %w", err)
	}

	a.logger.Info("Search finished.",
		"physical_qubits", est.PhysicalQubits,
		"runtime", est.Runtime,
		"code_distance", est.CodeDistance,
		"num_factories", est.NumFactories,
		"candidates_examined", est.CandidatesExamined,
	)
	return est, nil
}

// technologyContext resolves the job's context selection into a validated
// parameter record.
func (a *App) technologyContext() (phys.Context, error) {
	cc := a.job.Context
	if cc.Preset != "" {
		return phys.Preset(cc.Preset)
	}
	ex := cc.Explicit
	pctx := phys.Context{
		Name:              "custom",
		OneQubitGateTime:  ex.OneQubitGateTime,
		TwoQubitGateTime:  ex.TwoQubitGateTime,
		MeasurementTime:   ex.MeasurementTime,
		TGateTime:         ex.TGateTime,
		OneQubitGateError: ex.OneQubitGateError,
		TwoQubitGateError: ex.TwoQubitGateError,
		TGateError:        ex.TGateError,
	}
	if err := pctx.Validate(); err != nil {
		return phys.Context{}, err
	}
	return pctx, nil
}

// budget resolves the job's budget block.
func (a *App) budget() (estimator.Budget, error) {
	bc := a.job.Budget
	if !bc.Split() {
		return estimator.NewBudget(bc.Total)
	}
	return estimator.NewSplitBudget(
		bc.Total,
		config.Component(bc.Logic),
		config.Component(bc.Rotations),
		config.Component(bc.Magic),
	)
}
