package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/qgridlab/qcostgo/internal/config"
	"github.com/qgridlab/qcostgo/internal/ctxlog"
	"github.com/qgridlab/qcostgo/internal/query"
	"github.com/qgridlab/qcostgo/internal/registry"
)

// App encapsulates one application instance: its configuration, logger,
// loaded job, and the resolved code and factory-chain queries.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config

	registry *registry.Registry
	job      *config.SearchJob
	code     *query.Query
	chains   []*query.Query
}

// NewApp loads the job, registers the cost-model modules and resolves the
// job into queries. Any failure here is a startup error: the job and the
// registered models disagree, which cannot be recovered at runtime, so
// NewApp panics and the CLI boundary turns the panic into a clean exit.
func NewApp(outW io.Writer, cfg *Config, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	job, err := loader.Load(ctx, cfg.JobPath)
	if err != nil {
		panic(fmt.Errorf("failed to load job: %w", err))
	}
	logger.Debug("Job loaded into the agnostic model.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("Cost-model modules registered.", "count", len(modules), "model_types", reg.ModelTypes())

	code, chains, err := reg.BuildJob(ctx, job)
	if err != nil {
		panic(fmt.Errorf("failed to resolve job into queries: %w", err))
	}
	logger.Debug("Job resolved.", "code_cardinality", code.Cardinality(), "chains", len(chains))

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		registry: reg,
		job:      job,
		code:     code,
		chains:   chains,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Job returns the loaded job model. This is primarily for testing.
func (a *App) Job() *config.SearchJob {
	return a.job
}
